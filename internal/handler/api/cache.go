package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	xhttp "SectorScope/pkg/http"
	xlogger "SectorScope/pkg/logger"
)

// CacheInfoResponse reports the state of the in-process dataset snapshot.
type CacheInfoResponse struct {
	SnapshotPresent   bool       `json:"snapshot_present"`
	SnapshotFetchedAt *time.Time `json:"snapshot_fetched_at,omitempty"`
	SnapshotAgeSecs   float64    `json:"snapshot_age_seconds"`
	SourceErrors      int        `json:"source_errors"`
}

// CacheClearResponse confirms a cache flush.
type CacheClearResponse struct {
	Message string `json:"message"`
}

// CacheInfo reports dataset snapshot age and health.
func (h *Handler) CacheInfo(c echo.Context) error {
	srcErrs, fetchedAt, err := h.scores.SourceStatus(c.Request().Context())
	if err != nil {
		h.logger.Error("cache info usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	resp := CacheInfoResponse{SourceErrors: len(srcErrs)}
	if !fetchedAt.IsZero() {
		resp.SnapshotPresent = true
		resp.SnapshotFetchedAt = &fetchedAt
		resp.SnapshotAgeSecs = time.Since(fetchedAt).Seconds()
	}
	return xhttp.SuccessResponse(c, resp)
}

// CacheClear flushes provider caches and the dataset snapshot. The next
// request reassembles from upstream, so the operation is rate limited.
func (h *Handler) CacheClear(c echo.Context) error {
	if !h.limiter.Allow("cache_clear:"+c.RealIP(), refreshBurst, refreshPerSecond) {
		return xhttp.AppErrorResponse(c, xhttp.NewAppError("ERR_RATE_LIMITED", "", "cache clear rate limit exceeded", http.StatusTooManyRequests))
	}

	if err := h.appCache.DeleteByPattern(c.Request().Context(), "*"); err != nil {
		h.logger.Warn("provider cache flush failed", xlogger.Error(err))
	}
	h.data.Invalidate()

	h.logger.Info("caches cleared", xlogger.String("client", c.RealIP()))
	return xhttp.SuccessResponse(c, CacheClearResponse{Message: "caches cleared, next request refetches all sources"})
}

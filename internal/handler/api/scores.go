package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"SectorScope/internal/domain/models"
	svccache "SectorScope/internal/service/cache"
	svcmetrics "SectorScope/internal/service/metrics"
	"SectorScope/internal/service/ratelimit"
	"SectorScope/internal/usecase"
	pkgcache "SectorScope/pkg/cache"
	xhttp "SectorScope/pkg/http"
	xlogger "SectorScope/pkg/logger"
)

const (
	responseCacheTTL = 60 * time.Second

	// refresh and cache-clear force a full upstream refetch, so they are
	// token-bucket limited per client.
	refreshBurst     = 3.0
	refreshPerSecond = 0.05
)

// Handler serves the scoring API.
type Handler struct {
	logger    *xlogger.Logger
	scores    *usecase.ScoresUseCase
	data      *usecase.DatasetAssembler
	respCache svccache.BytesCache
	appCache  pkgcache.Service
	limiter   *ratelimit.Limiter
}

func NewHandler(
	logger *xlogger.Logger,
	scores *usecase.ScoresUseCase,
	data *usecase.DatasetAssembler,
	respCache svccache.BytesCache,
	appCache pkgcache.Service,
	limiter *ratelimit.Limiter,
) *Handler {
	return &Handler{
		logger:    logger,
		scores:    scores,
		data:      data,
		respCache: respCache,
		appCache:  appCache,
		limiter:   limiter,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	svcmetrics.RegisterScoring()

	g := e.Group("/api")
	g.GET("/scores", h.Scores)
	g.GET("/scores/summary", h.Summary)
	g.GET("/scores/:sector", h.SectorScore)
	g.GET("/data/sectors", h.Sectors)
	g.GET("/data/quality", h.DataQuality)
	g.GET("/cache/info", h.CacheInfo)
	g.POST("/cache/clear", h.CacheClear)
}

// Scores returns every sector's score breakdown, optionally with weight
// overrides and a forced data refresh.
func (h *Handler) Scores(c echo.Context) error {
	start := time.Now()
	defer func() {
		svcmetrics.ScoringLatency.WithLabelValues("scores").Observe(time.Since(start).Seconds())
	}()

	req := &models.ScoresRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if req.Refresh && !h.limiter.Allow("refresh:"+c.RealIP(), refreshBurst, refreshPerSecond) {
		return xhttp.AppErrorResponse(c, xhttp.NewAppError("ERR_RATE_LIMITED", "", "refresh rate limit exceeded", http.StatusTooManyRequests))
	}

	cacheKey := "resp:scores?" + c.QueryString()
	if !req.Refresh {
		if b, ok, _ := h.respCache.GetBytes(cacheKey); ok {
			return c.JSONBlob(http.StatusOK, b)
		}
	}

	weights, err := h.scores.ResolveWeights(req.Momentum, req.Valuation, req.Growth, req.Innovation, req.Macro)
	if err != nil {
		return xhttp.BadRequestResponse(c, xhttp.BadRequestError(err.Error()))
	}

	res, err := h.scores.List(c.Request().Context(), weights, req.Refresh)
	if err != nil {
		svcmetrics.ScoringErrors.WithLabelValues("scores").Inc()
		h.logger.Error("scores usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	return h.cachedSuccess(c, cacheKey, res)
}

// Summary returns the condensed report with top/bottom sectors.
func (h *Handler) Summary(c echo.Context) error {
	start := time.Now()
	defer func() {
		svcmetrics.ScoringLatency.WithLabelValues("summary").Observe(time.Since(start).Seconds())
	}()

	req := &models.SummaryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	cacheKey := "resp:summary?" + c.QueryString()
	if b, ok, _ := h.respCache.GetBytes(cacheKey); ok {
		return c.JSONBlob(http.StatusOK, b)
	}

	weights, err := h.scores.ResolveWeights(req.Momentum, req.Valuation, req.Growth, req.Innovation, req.Macro)
	if err != nil {
		return xhttp.BadRequestResponse(c, xhttp.BadRequestError(err.Error()))
	}

	res, err := h.scores.Summary(c.Request().Context(), weights)
	if err != nil {
		svcmetrics.ScoringErrors.WithLabelValues("summary").Inc()
		h.logger.Error("summary usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	return h.cachedSuccess(c, cacheKey, res)
}

// SectorScore returns one sector's record under default weights.
func (h *Handler) SectorScore(c echo.Context) error {
	start := time.Now()
	defer func() {
		svcmetrics.ScoringLatency.WithLabelValues("sector").Observe(time.Since(start).Seconds())
	}()

	name := c.Param("sector")
	res, err := h.scores.Sector(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, usecase.ErrSectorNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("sector %q not found", name))
		}
		svcmetrics.ScoringErrors.WithLabelValues("sector").Inc()
		h.logger.Error("sector usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// cachedSuccess renders the success envelope once, stores the bytes for
// subsequent identical requests and writes them out.
func (h *Handler) cachedSuccess(c echo.Context, key string, data interface{}) error {
	b, err := json.Marshal(xhttp.APIResponse{
		Status:  http.StatusOK,
		Message: http.StatusText(http.StatusOK),
		Data:    data,
	})
	if err != nil {
		return xhttp.SuccessResponse(c, data)
	}
	if err := h.respCache.SetBytes(key, b, responseCacheTTL); err != nil {
		h.logger.Debug("response cache write failed", xlogger.String("key", key), xlogger.Error(err))
	}
	return c.JSONBlob(http.StatusOK, b)
}

package api

import (
	"time"

	"github.com/labstack/echo/v4"

	xhttp "SectorScope/pkg/http"
	xlogger "SectorScope/pkg/logger"
)

// SectorListResponse lists the canonical sector names.
type SectorListResponse struct {
	Sectors []string `json:"sectors"`
}

// DataSourceStatus reports one upstream source's health.
type DataSourceStatus struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DataQualityResponse aggregates source health into an overall status.
type DataQualityResponse struct {
	Sources       []DataSourceStatus `json:"sources"`
	OverallStatus string             `json:"overall_status"`
	FetchedAt     *time.Time         `json:"fetched_at,omitempty"`
}

// Sectors returns the canonical sector list.
func (h *Handler) Sectors(c echo.Context) error {
	return xhttp.SuccessResponse(c, SectorListResponse{Sectors: h.scores.SectorNames()})
}

// DataQuality reports per-source status: configuration warnings plus the
// errors of the last assembly run.
func (h *Handler) DataQuality(c echo.Context) error {
	srcErrs, fetchedAt, err := h.scores.SourceStatus(c.Request().Context())
	if err != nil {
		h.logger.Error("data quality usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	sources := []DataSourceStatus{
		h.sourceStatus("Market Data", "prices", srcErrs, true, "Sector prices and fundamentals"),
		h.sourceStatus("FRED", "macro", srcErrs, h.scores.FREDConfigured(), "Macro economic data"),
		h.sourceStatus("Bureau of Labor Statistics", "employment", srcErrs, h.scores.BLSConfigured(), "Employment data"),
		h.sourceStatus("R&D Dataset", "rd", srcErrs, true, "R&D intensity metrics"),
	}

	overall := "ok"
	for _, s := range sources {
		if s.Status == "error" {
			overall = "error"
			break
		}
		if s.Status == "warning" {
			overall = "warning"
		}
	}

	resp := DataQualityResponse{Sources: sources, OverallStatus: overall}
	if !fetchedAt.IsZero() {
		resp.FetchedAt = &fetchedAt
	}
	return xhttp.SuccessResponse(c, resp)
}

func (h *Handler) sourceStatus(name, key string, srcErrs map[string]string, configured bool, okMsg string) DataSourceStatus {
	if msg, bad := srcErrs[key]; bad {
		return DataSourceStatus{Name: name, Status: "error", Message: msg}
	}
	if !configured {
		return DataSourceStatus{Name: name, Status: "warning", Message: "API key not configured"}
	}
	return DataSourceStatus{Name: name, Status: "ok", Message: okMsg}
}

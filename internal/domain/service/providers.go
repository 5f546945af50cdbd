package service

import (
	"context"

	"SectorScope/internal/domain/models"
)

// PriceProvider fetches daily price history for a ticker.
type PriceProvider interface {
	DailyBars(ctx context.Context, ticker string, years int) (models.PriceHistory, error)
}

// InfoProvider fetches fundamental snapshot data for a ticker.
type InfoProvider interface {
	TickerInfo(ctx context.Context, ticker string) (models.SectorInfo, error)
}

// MacroProvider fetches a macroeconomic time series by its source series ID.
type MacroProvider interface {
	MacroSeries(ctx context.Context, seriesID string, years int) (models.Series, error)
}

// EmploymentProvider fetches monthly employment series, keyed by series ID.
type EmploymentProvider interface {
	EmploymentSeries(ctx context.Context, seriesIDs []string, years int) (map[string]models.Series, error)
}

// RDProvider fetches R&D intensity (R&D spend over revenue) per industry.
type RDProvider interface {
	RDIntensity(ctx context.Context) (map[string]float64, error)
}

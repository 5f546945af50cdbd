package repository

import (
	"context"
	"time"

	"SectorScope/internal/domain/models"
)

// BarStore persists daily bars so repeated scoring runs do not refetch the
// full history from the upstream market data service.
type BarStore interface {
	GetDailyBars(ctx context.Context, ticker string, from, to time.Time) (models.PriceHistory, error)
	SaveDailyBars(ctx context.Context, ticker string, bars models.PriceHistory) error
}

type Metrics interface {
	RecordScoringRun(status string)
	RecordProviderFetch(provider string)
	RecordProviderError(provider string)
	RecordLatency(op string, seconds float64)
	RecordTopScore(sector string, score float64)
}

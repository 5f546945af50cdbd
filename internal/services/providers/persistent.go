package providers

import (
	"context"
	"time"

	"SectorScope/internal/domain/models"
	domrepo "SectorScope/internal/domain/repository"
	domsvc "SectorScope/internal/domain/service"
	applogger "SectorScope/pkg/logger"
)

// minStoredBars is the minimum history depth for a stored series to satisfy
// a request without going upstream. Covers the longest return horizon.
const minStoredBars = 252

// PersistentPriceProvider serves daily bars from the bar store and falls
// back to the upstream provider, writing fetched history back. Store
// failures degrade to a live fetch, never to an error.
type PersistentPriceProvider struct {
	inner domsvc.PriceProvider
	store domrepo.BarStore
	log   *applogger.Logger
}

var _ domsvc.PriceProvider = (*PersistentPriceProvider)(nil)

func NewPersistentPriceProvider(inner domsvc.PriceProvider, store domrepo.BarStore, log *applogger.Logger) *PersistentPriceProvider {
	return &PersistentPriceProvider{inner: inner, store: store, log: log}
}

func (p *PersistentPriceProvider) DailyBars(ctx context.Context, ticker string, years int) (models.PriceHistory, error) {
	now := time.Now().UTC()
	from := now.AddDate(-years, 0, 0)

	stored, err := p.store.GetDailyBars(ctx, ticker, from, now)
	if err != nil {
		if p.log != nil {
			p.log.Warn("bar store read failed, fetching upstream",
				applogger.String("ticker", ticker),
				applogger.Error(err),
			)
		}
	} else if len(stored) >= minStoredBars {
		return stored, nil
	}

	fetched, err := p.inner.DailyBars(ctx, ticker, years)
	if err != nil {
		return nil, err
	}

	if len(fetched) > 0 {
		if err := p.store.SaveDailyBars(ctx, ticker, fetched); err != nil && p.log != nil {
			p.log.Warn("bar store write failed",
				applogger.String("ticker", ticker),
				applogger.Int("bars", len(fetched)),
				applogger.Error(err),
			)
		}
	}
	return fetched, nil
}

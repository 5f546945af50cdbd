package providers

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"SectorScope/internal/domain/models"
	domsvc "SectorScope/internal/domain/service"
	pkgcache "SectorScope/pkg/cache"
	"SectorScope/pkg/config"
	applogger "SectorScope/pkg/logger"
	"SectorScope/pkg/util"
)

// MarketDataClient fetches daily bars and fundamental snapshots from the
// market data service.
type MarketDataClient struct {
	*HTTPProviderBase
	cache pkgcache.Service
	ttl   time.Duration
	log   *applogger.Logger
}

var (
	_ domsvc.PriceProvider = (*MarketDataClient)(nil)
	_ domsvc.InfoProvider  = (*MarketDataClient)(nil)
)

func NewMarketDataClient(cfg *config.Config, c pkgcache.Service, log *applogger.Logger) *MarketDataClient {
	return &MarketDataClient{
		HTTPProviderBase: NewHTTPProviderBase(cfg.Providers.MarketData.BaseURL, cfg.Providers.MarketData.Timeout),
		cache:            c,
		ttl:              cfg.Cache.TTL,
		log:              log,
	}
}

type dailyBarsResponse struct {
	Ticker string `json:"ticker"`
	Bars   []struct {
		Date   string  `json:"date"`
		Close  float64 `json:"close"`
		Volume float64 `json:"volume"`
	} `json:"bars"`
}

type tickerInfoResponse struct {
	Ticker        string   `json:"ticker"`
	ForwardPE     *float64 `json:"forward_pe"`
	TrailingPE    *float64 `json:"trailing_pe"`
	DividendYield *float64 `json:"dividend_yield"`
	AvgVolume     *float64 `json:"average_volume"`
}

// DailyBars returns the ticker's daily close/volume history, oldest first.
func (m *MarketDataClient) DailyBars(ctx context.Context, ticker string, years int) (models.PriceHistory, error) {
	key := pkgcache.GenerateKeyWithParams("md:bars", ticker, years)
	return fetchCached(ctx, m.cache, m.log, key, m.ttl, func(ctx context.Context) (models.PriceHistory, error) {
		var resp dailyBarsResponse
		err := m.GetJSON(ctx, "/v1/daily", map[string][]string{
			"ticker": {ticker},
			"years":  {strconv.Itoa(years)},
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("daily bars %s: %w", ticker, err)
		}

		hist := make(models.PriceHistory, 0, len(resp.Bars))
		for _, b := range resp.Bars {
			d, ok := util.ParseDate(b.Date)
			if !ok {
				continue
			}
			hist = append(hist, models.Bar{Date: d, Close: b.Close, Volume: b.Volume})
		}
		sort.Slice(hist, func(i, j int) bool { return hist[i].Date.Before(hist[j].Date) })
		return hist, nil
	})
}

// TickerInfo returns the fundamental snapshot for a ticker. Absent fields
// stay nil.
func (m *MarketDataClient) TickerInfo(ctx context.Context, ticker string) (models.SectorInfo, error) {
	key := pkgcache.GenerateKey("md:info", ticker)
	return fetchCached(ctx, m.cache, m.log, key, m.ttl, func(ctx context.Context) (models.SectorInfo, error) {
		var resp tickerInfoResponse
		err := m.GetJSON(ctx, "/v1/info", map[string][]string{
			"ticker": {ticker},
		}, &resp)
		if err != nil {
			return models.SectorInfo{}, fmt.Errorf("ticker info %s: %w", ticker, err)
		}
		return models.SectorInfo{
			ForwardPE:     resp.ForwardPE,
			TrailingPE:    resp.TrailingPE,
			DividendYield: resp.DividendYield,
			AvgVolume:     resp.AvgVolume,
		}, nil
	})
}

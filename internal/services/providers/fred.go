package providers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"SectorScope/internal/domain/models"
	domsvc "SectorScope/internal/domain/service"
	pkgcache "SectorScope/pkg/cache"
	"SectorScope/pkg/config"
	applogger "SectorScope/pkg/logger"
	"SectorScope/pkg/util"
)

// FREDClient fetches macroeconomic series from the FRED observations API.
type FREDClient struct {
	*HTTPProviderBase
	apiKey string
	cache  pkgcache.Service
	ttl    time.Duration
	log    *applogger.Logger
}

var _ domsvc.MacroProvider = (*FREDClient)(nil)

func NewFREDClient(cfg *config.Config, c pkgcache.Service, log *applogger.Logger) *FREDClient {
	return &FREDClient{
		HTTPProviderBase: NewHTTPProviderBase(cfg.Providers.FRED.BaseURL, cfg.Providers.FRED.Timeout),
		apiKey:           cfg.Providers.FRED.APIKey,
		cache:            c,
		ttl:              cfg.Cache.TTL,
		log:              log,
	}
}

type fredObservationsResponse struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}

// MacroSeries returns the series' observations for the trailing window,
// oldest first. FRED encodes missing observations as ".", which are
// dropped.
func (f *FREDClient) MacroSeries(ctx context.Context, seriesID string, years int) (models.Series, error) {
	if f.apiKey == "" {
		return nil, fmt.Errorf("fred api key not configured")
	}

	key := pkgcache.GenerateKeyWithParams("fred", seriesID, years)
	return fetchCached(ctx, f.cache, f.log, key, f.ttl, func(ctx context.Context) (models.Series, error) {
		start := time.Now().UTC().AddDate(-years, 0, 0)

		var resp fredObservationsResponse
		err := f.GetJSON(ctx, "/fred/series/observations", map[string][]string{
			"series_id":         {seriesID},
			"api_key":           {f.apiKey},
			"file_type":         {"json"},
			"observation_start": {util.FormatDate(start)},
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("fred series %s: %w", seriesID, err)
		}

		series := make(models.Series, 0, len(resp.Observations))
		for _, obs := range resp.Observations {
			if obs.Value == "." {
				continue
			}
			d, ok := util.ParseDate(obs.Date)
			if !ok {
				continue
			}
			v, err := strconv.ParseFloat(obs.Value, 64)
			if err != nil {
				continue
			}
			series = append(series, models.Observation{Date: d, Value: v})
		}
		return series, nil
	})
}

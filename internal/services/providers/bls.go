package providers

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"SectorScope/internal/domain/models"
	domsvc "SectorScope/internal/domain/service"
	pkgcache "SectorScope/pkg/cache"
	"SectorScope/pkg/config"
	applogger "SectorScope/pkg/logger"
)

// BLSClient fetches monthly employment series from the BLS timeseries API.
type BLSClient struct {
	*HTTPProviderBase
	apiKey string
	cache  pkgcache.Service
	ttl    time.Duration
	log    *applogger.Logger
}

var _ domsvc.EmploymentProvider = (*BLSClient)(nil)

func NewBLSClient(cfg *config.Config, c pkgcache.Service, log *applogger.Logger) *BLSClient {
	return &BLSClient{
		HTTPProviderBase: NewHTTPProviderBase(cfg.Providers.BLS.BaseURL, cfg.Providers.BLS.Timeout),
		apiKey:           cfg.Providers.BLS.APIKey,
		cache:            c,
		ttl:              cfg.Cache.TTL,
		log:              log,
	}
}

type blsRequest struct {
	SeriesID        []string `json:"seriesid"`
	StartYear       string   `json:"startyear"`
	EndYear         string   `json:"endyear"`
	RegistrationKey string   `json:"registrationkey,omitempty"`
}

type blsResponse struct {
	Status  string   `json:"status"`
	Message []string `json:"message"`
	Results struct {
		Series []struct {
			SeriesID string `json:"seriesID"`
			Data     []struct {
				Year   string `json:"year"`
				Period string `json:"period"`
				Value  string `json:"value"`
			} `json:"data"`
		} `json:"series"`
	} `json:"Results"`
}

// EmploymentSeries fetches the given series IDs for the trailing window and
// returns each as a monthly series keyed by ID, oldest first. Non-monthly
// periods (annual averages, quarters) are dropped.
func (b *BLSClient) EmploymentSeries(ctx context.Context, seriesIDs []string, years int) (map[string]models.Series, error) {
	if len(seriesIDs) == 0 {
		return map[string]models.Series{}, nil
	}

	key := pkgcache.GenerateKeyWithParams("bls", strings.Join(seriesIDs, ","), years)
	return fetchCached(ctx, b.cache, b.log, key, b.ttl, func(ctx context.Context) (map[string]models.Series, error) {
		endYear := time.Now().UTC().Year()
		req := blsRequest{
			SeriesID:        seriesIDs,
			StartYear:       strconv.Itoa(endYear - years),
			EndYear:         strconv.Itoa(endYear),
			RegistrationKey: b.apiKey,
		}

		var resp blsResponse
		if err := b.PostJSON(ctx, "/publicAPI/v2/timeseries/data/", req, &resp); err != nil {
			return nil, fmt.Errorf("bls timeseries: %w", err)
		}
		if resp.Status != "REQUEST_SUCCEEDED" {
			return nil, fmt.Errorf("bls api status %q: %s", resp.Status, strings.Join(resp.Message, "; "))
		}

		out := make(map[string]models.Series, len(resp.Results.Series))
		for _, series := range resp.Results.Series {
			obs := make(models.Series, 0, len(series.Data))
			for _, item := range series.Data {
				month, ok := parseMonthPeriod(item.Period)
				if !ok {
					continue
				}
				year, err := strconv.Atoi(item.Year)
				if err != nil {
					continue
				}
				value, err := strconv.ParseFloat(item.Value, 64)
				if err != nil {
					continue
				}
				obs = append(obs, models.Observation{
					Date:  time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
					Value: value,
				})
			}
			if len(obs) == 0 {
				continue
			}
			// API delivers newest first
			sort.Slice(obs, func(i, j int) bool { return obs[i].Date.Before(obs[j].Date) })
			out[series.SeriesID] = obs
		}
		return out, nil
	})
}

// parseMonthPeriod decodes BLS period codes: M01..M12 are calendar months,
// M13 is the annual average and is rejected.
func parseMonthPeriod(period string) (int, bool) {
	if !strings.HasPrefix(period, "M") {
		return 0, false
	}
	month, err := strconv.Atoi(period[1:])
	if err != nil || month < 1 || month > 12 {
		return 0, false
	}
	return month, true
}

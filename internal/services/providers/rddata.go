package providers

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	domsvc "SectorScope/internal/domain/service"
	pkgcache "SectorScope/pkg/cache"
	"SectorScope/pkg/config"
	applogger "SectorScope/pkg/logger"
)

// RDClient derives per-sector R&D intensity from an industry-level
// spreadsheet. Industry rows are mapped onto sectors via the configured
// mapping and averaged; sectors with no mapped industry report 0.0, which
// downstream treats as missing.
type RDClient struct {
	*HTTPProviderBase
	url      string
	sheet    string
	skipRows int
	mapping  map[string]string
	sectors  []string
	cache    pkgcache.Service
	ttl      time.Duration
	log      *applogger.Logger
}

var _ domsvc.RDProvider = (*RDClient)(nil)

func NewRDClient(cfg *config.Config, c pkgcache.Service, log *applogger.Logger) *RDClient {
	return &RDClient{
		HTTPProviderBase: NewHTTPProviderBase("", cfg.Providers.RD.Timeout),
		url:              cfg.Providers.RD.URL,
		sheet:            cfg.Providers.RD.Sheet,
		skipRows:         cfg.Providers.RD.SkipRows,
		mapping:          cfg.Providers.RD.Mapping,
		sectors:          cfg.SectorNames(),
		cache:            c,
		ttl:              cfg.Cache.TTL,
		log:              log,
	}
}

// RDIntensity downloads the workbook and returns average R&D/revenue per
// sector.
func (r *RDClient) RDIntensity(ctx context.Context) (map[string]float64, error) {
	return fetchCached(ctx, r.cache, r.log, "rd:intensity", r.ttl, func(ctx context.Context) (map[string]float64, error) {
		body, err := r.GetBytes(ctx, r.url)
		if err != nil {
			return nil, fmt.Errorf("rd workbook: %w", err)
		}
		return r.parseWorkbook(body)
	})
}

func (r *RDClient) parseWorkbook(body []byte) (map[string]float64, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("open rd workbook: %w", err)
	}
	defer wb.Close()

	sheet := r.sheet
	if sheet == "" {
		sheet = wb.GetSheetName(0)
	}
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) <= r.skipRows {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}
	rows = rows[r.skipRows:]

	industryCol, ratioCol := locateColumns(rows[0])

	perSector := make(map[string][]float64)
	for _, row := range rows[1:] {
		if len(row) <= industryCol || len(row) <= ratioCol {
			continue
		}
		industry := strings.TrimSpace(row[industryCol])
		ratio, ok := parseRatio(row[ratioCol])
		if !ok {
			continue
		}
		sector, ok := r.mapping[industry]
		if !ok {
			continue
		}
		perSector[sector] = append(perSector[sector], ratio)
	}

	out := make(map[string]float64, len(r.sectors))
	for _, sector := range r.sectors {
		values := perSector[sector]
		if len(values) == 0 {
			out[sector] = 0.0
			continue
		}
		var sum float64
		for _, v := range values {
			sum += v
		}
		out[sector] = sum / float64(len(values))
	}
	return out, nil
}

// locateColumns finds the industry and R&D/sales columns by header name,
// falling back to the layout the source has used for years: industry first,
// ratio third.
func locateColumns(header []string) (industryCol, ratioCol int) {
	industryCol, ratioCol = 0, 2
	for i, cell := range header {
		name := strings.ToLower(cell)
		if strings.Contains(name, "industry") {
			industryCol = i
		}
		if strings.Contains(name, "r&d") && strings.Contains(name, "sales") {
			ratioCol = i
		}
	}
	return industryCol, ratioCol
}

// parseRatio reads a numeric cell, tolerating percent formatting.
func parseRatio(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	percent := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if percent {
		v /= 100
	}
	return v, true
}

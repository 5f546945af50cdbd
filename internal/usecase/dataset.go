package usecase

import (
	"context"
	"sync"
	"time"

	"SectorScope/internal/domain/models"
	domrepo "SectorScope/internal/domain/repository"
	domsvc "SectorScope/internal/domain/service"
	"SectorScope/pkg/config"
	applogger "SectorScope/pkg/logger"
)

const datasetTimeout = 60 * time.Second

// Dataset is an assembled snapshot of every upstream source, plus the
// per-source errors of the run that produced it.
type Dataset struct {
	Input     models.AnalysisInput
	Errors    map[string]string
	FetchedAt time.Time
}

// DatasetAssembler fetches all scoring inputs concurrently and memoizes the
// result. A failing source contributes an empty collection and an error
// entry; the assembly itself never fails.
type DatasetAssembler struct {
	cfg        *config.Config
	prices     domsvc.PriceProvider
	info       domsvc.InfoProvider
	macro      domsvc.MacroProvider
	employment domsvc.EmploymentProvider
	rd         domsvc.RDProvider
	metrics    domrepo.Metrics
	log        *applogger.Logger

	mu       sync.Mutex
	snapshot *Dataset
}

func NewDatasetAssembler(
	cfg *config.Config,
	prices domsvc.PriceProvider,
	info domsvc.InfoProvider,
	macro domsvc.MacroProvider,
	employment domsvc.EmploymentProvider,
	rd domsvc.RDProvider,
	metrics domrepo.Metrics,
	log *applogger.Logger,
) *DatasetAssembler {
	return &DatasetAssembler{
		cfg:        cfg,
		prices:     prices,
		info:       info,
		macro:      macro,
		employment: employment,
		rd:         rd,
		metrics:    metrics,
		log:        log,
	}
}

// Dataset returns the memoized snapshot, assembling on first use. Refresh
// discards the snapshot and fetches everything again.
func (a *DatasetAssembler) Dataset(ctx context.Context, refresh bool) (*Dataset, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ttl := a.cfg.Cache.TTL
	if a.snapshot != nil && !refresh {
		if ttl <= 0 || time.Since(a.snapshot.FetchedAt) < ttl {
			return a.snapshot, nil
		}
	}

	snap := a.assemble(ctx)
	a.snapshot = snap
	return snap, nil
}

// Invalidate drops the memoized snapshot so the next call reassembles.
func (a *DatasetAssembler) Invalidate() {
	a.mu.Lock()
	a.snapshot = nil
	a.mu.Unlock()
}

func (a *DatasetAssembler) assemble(ctx context.Context) *Dataset {
	ctx, cancel := context.WithTimeout(ctx, datasetTimeout)
	defer cancel()

	start := time.Now()
	years := a.cfg.Providers.MarketData.PeriodYears
	if years <= 0 {
		years = 5
	}

	ds := &Dataset{
		Input: models.AnalysisInput{
			SectorPrices: map[string]models.PriceHistory{},
			SectorInfo:   map[string]models.SectorInfo{},
			Macro:        map[string]models.Series{},
			Employment:   map[string]models.Series{},
			RDIntensity:  map[string]float64{},
		},
		Errors:    map[string]string{},
		FetchedAt: start,
	}

	type item struct {
		name string
		err  error
	}
	ch := make(chan item, 5)
	var wg sync.WaitGroup
	var mu sync.Mutex

	wg.Add(1)
	go func() {
		defer wg.Done()
		prices, bench, err := a.fetchPrices(ctx, years)
		mu.Lock()
		ds.Input.SectorPrices = prices
		ds.Input.Benchmark = bench
		mu.Unlock()
		ch <- item{"prices", err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		info := a.fetchInfo(ctx)
		mu.Lock()
		ds.Input.SectorInfo = info
		mu.Unlock()
		ch <- item{"info", nil}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		macro, err := a.fetchMacro(ctx, years)
		mu.Lock()
		ds.Input.Macro = macro
		mu.Unlock()
		ch <- item{"macro", err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		employment, err := a.fetchEmployment(ctx, years)
		mu.Lock()
		ds.Input.Employment = employment
		mu.Unlock()
		ch <- item{"employment", err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		rd, err := a.fetchRD(ctx)
		mu.Lock()
		ds.Input.RDIntensity = rd
		mu.Unlock()
		ch <- item{"rd", err}
	}()

	go func() { wg.Wait(); close(ch) }()

	for it := range ch {
		if it.err != nil {
			ds.Errors[it.name] = it.err.Error()
			a.metrics.RecordProviderError(it.name)
			a.log.Warn("data source failed",
				applogger.String("source", it.name),
				applogger.Error(it.err),
			)
		} else {
			a.metrics.RecordProviderFetch(it.name)
		}
	}
	if len(ds.Errors) == 0 {
		ds.Errors = nil
	}

	a.metrics.RecordLatency("dataset_assemble", time.Since(start).Seconds())
	a.log.Info("dataset assembled",
		applogger.Int("sectors_with_prices", len(ds.Input.SectorPrices)),
		applogger.Int("macro_series", len(ds.Input.Macro)),
		applogger.Int("employment_series", len(ds.Input.Employment)),
		applogger.Int("source_errors", len(ds.Errors)),
		applogger.Duration("duration_ms", time.Since(start)),
	)
	return ds
}

// fetchPrices loads every sector ETF plus the benchmark. Individual tickers
// may drop out; the source as a whole only fails when nothing loads.
func (a *DatasetAssembler) fetchPrices(ctx context.Context, years int) (map[string]models.PriceHistory, models.PriceHistory, error) {
	prices := make(map[string]models.PriceHistory, len(a.cfg.Sectors.ETFs))
	var firstErr error

	for _, sector := range a.cfg.Sectors.ETFs {
		hist, err := a.prices.DailyBars(ctx, sector.Ticker, years)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			a.log.Warn("sector price fetch failed",
				applogger.String("sector", sector.Name),
				applogger.String("ticker", sector.Ticker),
				applogger.Error(err),
			)
			continue
		}
		if len(hist) > 0 {
			prices[sector.Name] = hist
		}
	}

	bench, err := a.prices.DailyBars(ctx, a.cfg.Sectors.Benchmark, years)
	if err != nil {
		if firstErr == nil {
			firstErr = err
		}
		a.log.Warn("benchmark price fetch failed",
			applogger.String("ticker", a.cfg.Sectors.Benchmark),
			applogger.Error(err),
		)
	}

	if len(prices) > 0 {
		firstErr = nil
	}
	return prices, bench, firstErr
}

// fetchInfo loads fundamental snapshots; failures just leave a sector out.
func (a *DatasetAssembler) fetchInfo(ctx context.Context) map[string]models.SectorInfo {
	info := make(map[string]models.SectorInfo, len(a.cfg.Sectors.ETFs))
	for _, sector := range a.cfg.Sectors.ETFs {
		rec, err := a.info.TickerInfo(ctx, sector.Ticker)
		if err != nil {
			a.log.Debug("ticker info fetch failed",
				applogger.String("ticker", sector.Ticker),
				applogger.Error(err),
			)
			continue
		}
		info[sector.Name] = rec
	}
	return info
}

func (a *DatasetAssembler) fetchMacro(ctx context.Context, years int) (map[string]models.Series, error) {
	macro := make(map[string]models.Series, len(a.cfg.Providers.FRED.Series))
	var firstErr error
	for name, seriesID := range a.cfg.Providers.FRED.Series {
		series, err := a.macro.MacroSeries(ctx, seriesID, years)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if len(series) > 0 {
			macro[name] = series
		}
	}
	if len(macro) > 0 {
		firstErr = nil
	}
	return macro, firstErr
}

func (a *DatasetAssembler) fetchEmployment(ctx context.Context, years int) (map[string]models.Series, error) {
	cfg := a.cfg.Providers.BLS
	seriesIDs := make([]string, 0, len(cfg.Series))
	idToSector := make(map[string]string, len(cfg.Series))
	for sector, id := range cfg.Series {
		seriesIDs = append(seriesIDs, id)
		idToSector[id] = sector
	}

	byID, err := a.employment.EmploymentSeries(ctx, seriesIDs, years)
	if err != nil {
		return map[string]models.Series{}, err
	}

	out := make(map[string]models.Series, len(byID))
	for id, series := range byID {
		if sector, ok := idToSector[id]; ok {
			out[sector] = series
		}
	}
	return out, nil
}

func (a *DatasetAssembler) fetchRD(ctx context.Context) (map[string]float64, error) {
	rd, err := a.rd.RDIntensity(ctx)
	if err != nil {
		return map[string]float64{}, err
	}
	return rd, nil
}

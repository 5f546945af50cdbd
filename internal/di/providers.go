package di

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"SectorScope/internal/domain/repository"
	domsvc "SectorScope/internal/domain/service"
	"SectorScope/internal/handler/api"
	internalrepo "SectorScope/internal/repository"
	svccache "SectorScope/internal/service/cache"
	"SectorScope/internal/service/ratelimit"
	"SectorScope/internal/services/providers"
	"SectorScope/internal/usecase"
	pkgcache "SectorScope/pkg/cache"
	pkgch "SectorScope/pkg/clickhouse"
	"SectorScope/pkg/config"
	"SectorScope/pkg/logger"
	"SectorScope/pkg/metrics"
	"SectorScope/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	lc := &logger.Config{Level: "info", Format: "console", Output: "stdout"}
	if cfg.Environment == "production" {
		lc.Format = "json"
	}
	l, err := logger.New(lc)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideCacheService creates the provider-data cache: layered over Redis
// when configured, in-memory otherwise.
func ProvideCacheService(cfg *config.Config) (pkgcache.Service, error) {
	if !cfg.Cache.Redis.Enabled {
		return pkgcache.NewMemoryCache(), nil
	}

	host, port, err := splitAddr(cfg.Cache.Redis.Addr)
	if err != nil {
		return nil, fmt.Errorf("redis addr: %w", err)
	}
	rc, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(host),
		pkgcache.WithRedisPort(port),
		pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
		pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
		pkgcache.WithRedisPrefix("sectorscope"),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return pkgcache.NewLayeredCache(rc), nil
}

// ProvideResponseCache creates the rendered-response cache.
func ProvideResponseCache(cfg *config.Config) svccache.BytesCache {
	if cfg.Cache.Redis.Enabled {
		return svccache.NewRedisCache(svccache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return svccache.NewTTLCache()
}

// ProvideClickHouseClient creates a ClickHouse client when the market data
// source is backed by it. Returns nil otherwise.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.Providers.MarketData.Source != "clickhouse" {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	// Initialize schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, []string{
		"CREATE DATABASE IF NOT EXISTS sectorscope",
		"CREATE TABLE IF NOT EXISTS sectorscope.daily_bars (ticker String, day Date, close Float64, volume Float64) ENGINE=ReplacingMergeTree ORDER BY (ticker, day)",
	}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideMarketDataClient creates the market data HTTP client.
func ProvideMarketDataClient(cfg *config.Config, c pkgcache.Service, l *logger.Logger) *providers.MarketDataClient {
	return providers.NewMarketDataClient(cfg, c, l)
}

// ProvidePriceProvider selects the daily-bar source: the HTTP client alone,
// or the same client behind the ClickHouse bar store.
func ProvidePriceProvider(cfg *config.Config, md *providers.MarketDataClient, ch *pkgch.Client, l *logger.Logger) domsvc.PriceProvider {
	if cfg.Providers.MarketData.Source != "clickhouse" || ch == nil {
		return md
	}
	store := internalrepo.NewCHBarStore(ch)
	store.SetLogger(l)
	return providers.NewPersistentPriceProvider(md, store, l)
}

// ProvideInfoProvider exposes the market data client as the fundamentals
// source.
func ProvideInfoProvider(md *providers.MarketDataClient) domsvc.InfoProvider {
	return md
}

// ProvideMacroProvider creates the FRED client.
func ProvideMacroProvider(cfg *config.Config, c pkgcache.Service, l *logger.Logger) domsvc.MacroProvider {
	return providers.NewFREDClient(cfg, c, l)
}

// ProvideEmploymentProvider creates the BLS client.
func ProvideEmploymentProvider(cfg *config.Config, c pkgcache.Service, l *logger.Logger) domsvc.EmploymentProvider {
	return providers.NewBLSClient(cfg, c, l)
}

// ProvideRDProvider creates the R&D dataset client.
func ProvideRDProvider(cfg *config.Config, c pkgcache.Service, l *logger.Logger) domsvc.RDProvider {
	return providers.NewRDClient(cfg, c, l)
}

// ProvideDatasetAssembler creates the dataset assembler use case.
func ProvideDatasetAssembler(
	cfg *config.Config,
	prices domsvc.PriceProvider,
	info domsvc.InfoProvider,
	macro domsvc.MacroProvider,
	employment domsvc.EmploymentProvider,
	rd domsvc.RDProvider,
	m repository.Metrics,
	l *logger.Logger,
) *usecase.DatasetAssembler {
	return usecase.NewDatasetAssembler(cfg, prices, info, macro, employment, rd, m, l)
}

// ProvideScoresUseCase creates the scoring use case.
func ProvideScoresUseCase(cfg *config.Config, data *usecase.DatasetAssembler, m repository.Metrics, l *logger.Logger) *usecase.ScoresUseCase {
	return usecase.NewScoresUseCase(cfg, data, m, l)
}

// ProvideLimiter creates the request rate limiter.
func ProvideLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvideHandler creates the API handler.
func ProvideHandler(
	l *logger.Logger,
	scores *usecase.ScoresUseCase,
	data *usecase.DatasetAssembler,
	respCache svccache.BytesCache,
	appCache pkgcache.Service,
	limiter *ratelimit.Limiter,
) *api.Handler {
	return api.NewHandler(l, scores, data, respCache, appCache, limiter)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *logger.Logger, handler *api.Handler, chClient *pkgch.Client) *server.App {
	return server.New(cfg, l, handler, chClient)
}

func splitAddr(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, err
	}
	return host, port, nil
}

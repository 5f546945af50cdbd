//go:build wireinject
// +build wireinject

package di

import (
	"SectorScope/pkg/config"
	"SectorScope/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient services
		ProvideLogger,
		ProvideMetrics,

		// Caches
		ProvideCacheService,
		ProvideResponseCache,

		// Infrastructure clients
		ProvideClickHouseClient,

		// Data providers
		ProvideMarketDataClient,
		ProvidePriceProvider,
		ProvideInfoProvider,
		ProvideMacroProvider,
		ProvideEmploymentProvider,
		ProvideRDProvider,

		// Use cases
		ProvideDatasetAssembler,
		ProvideScoresUseCase,

		// HTTP layer
		ProvideLimiter,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}

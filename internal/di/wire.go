//go:build wireinject
// +build wireinject

package di

import (
	"AlphaDesk/pkg/config"
	"AlphaDesk/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Simulation engine
		ProvideSimulator,
		ProvideEngine,

		// Use cases
		ProvideResultCache,
		ProvideRiskAnalyzer,

		// HTTP surface
		ProvideRateLimiter,
		ProvideRiskHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}

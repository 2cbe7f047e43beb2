package di

import (
	"fmt"

	"AlphaDesk/internal/handler/api"
	"AlphaDesk/internal/risk"
	"AlphaDesk/internal/service/cache"
	"AlphaDesk/internal/service/ratelimit"
	"AlphaDesk/internal/usecase"
	"AlphaDesk/pkg/config"
	xhttp "AlphaDesk/pkg/http"
	"AlphaDesk/pkg/logger"
	"AlphaDesk/pkg/metrics"
	"AlphaDesk/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideSimulator creates the path simulator with the configured worker pool.
func ProvideSimulator(cfg *config.Config) *risk.Simulator {
	return risk.NewSimulator(cfg.Simulation.Workers)
}

// ProvideEngine creates the Monte Carlo engine.
func ProvideEngine(sim *risk.Simulator, cfg *config.Config) *risk.Engine {
	return risk.NewEngine(sim, cfg.Simulation.SamplePaths)
}

// ProvideResultCache creates the memoization cache for seeded runs.
func ProvideResultCache(cfg *config.Config) *cache.ResultCache {
	return cache.New(cfg.Simulation.CacheSize, cfg.Simulation.CacheTTL)
}

// ProvideRiskAnalyzer creates the simulation use case.
func ProvideRiskAnalyzer(engine *risk.Engine, rec *metrics.Recorder, results *cache.ResultCache, cfg *config.Config) *usecase.RiskAnalyzer {
	return usecase.NewRiskAnalyzer(engine, rec, results, cfg.Simulation.Timeout)
}

// ProvideRateLimiter creates the per-client token bucket.
func ProvideRateLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvideRiskHandler creates the Echo handler for the risk endpoints.
func ProvideRiskHandler(l *logger.Logger, analyzer *usecase.RiskAnalyzer, limiter *ratelimit.Limiter, cfg *config.Config) xhttp.Handler {
	return api.NewRiskEchoHandler(l, analyzer, limiter, cfg)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *logger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, handler)
}

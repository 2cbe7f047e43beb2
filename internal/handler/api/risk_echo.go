package api

import (
	"context"
	"errors"
	"time"

	models "AlphaDesk/internal/domain/models"
	"AlphaDesk/internal/risk"
	"AlphaDesk/internal/scanner"
	"AlphaDesk/internal/service/ratelimit"
	"AlphaDesk/internal/usecase"
	xconfig "AlphaDesk/pkg/config"
	xhttp "AlphaDesk/pkg/http"
	xlogger "AlphaDesk/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RiskEchoHandler implements Echo-based HTTP handlers for the Monte Carlo
// risk endpoints.
type RiskEchoHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.RiskAnalyzer
	limiter  *ratelimit.Limiter
	cfg      *xconfig.Config
}

func NewRiskEchoHandler(logger *xlogger.Logger, analyzer *usecase.RiskAnalyzer, limiter *ratelimit.Limiter, cfg *xconfig.Config) *RiskEchoHandler {
	return &RiskEchoHandler{logger: logger, analyzer: analyzer, limiter: limiter, cfg: cfg}
}

func (h *RiskEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/risk")
	g.POST("/montecarlo", h.MonteCarlo)
	g.GET("/montecarlo/example", h.Example)
	g.GET("/health", h.Health)
}

// MonteCarlo runs one simulation request end to end.
func (h *RiskEchoHandler) MonteCarlo(c echo.Context) error {
	if h.cfg.RateLimit.Enabled {
		if !h.limiter.Allow(c.RealIP(), h.cfg.RateLimit.Capacity, h.cfg.RateLimit.RefillPerSec) {
			return xhttp.TooManyRequestsResponse(c)
		}
	}

	req := &models.MonteCarloRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	start := time.Now()
	res, err := h.analyzer.MonteCarlo(c.Request().Context(), req)
	if err != nil {
		var vErr *risk.ValidationFailedError
		switch {
		case errors.As(err, &vErr):
			return xhttp.BadRequestResponse(c, vErr.Issues)
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			h.logger.Warn("simulation aborted before completion",
				xlogger.Int("num_simulations", req.NumSimulations),
				xlogger.Duration("elapsed", time.Since(start)),
				xlogger.Error(err))
			return xhttp.AppErrorResponse(c, xhttp.TimeoutError("simulation aborted before completion"))
		default:
			h.logger.Error("montecarlo usecase error", xlogger.Error(err))
			return xhttp.AppErrorResponse(c, err)
		}
	}

	h.logger.Info("montecarlo simulation served",
		xlogger.Int("num_simulations", req.NumSimulations),
		xlogger.Int64("seed", res.Seed),
		xlogger.Float64("compute_ms", res.ComputationTimeMs))
	return xhttp.SuccessResponse(c, res)
}

// Example returns a ready-to-post request body with every parameter at its
// documented default, plus a short explanation per field.
func (h *RiskEchoHandler) Example(c echo.Context) error {
	fixedCost, slippage := 1.0, 10.0
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"request": models.MonteCarloRequest{
			WinProbability:    0.45,
			RewardMultiple:    2.5,
			RiskFraction:      0.005,
			TradesPerPeriod:   10,
			Periods:           52,
			FixedCostPerTrade: &fixedCost,
			SlippageBps:       &slippage,
			StartingCapital:   10000,
			NumSimulations:    1000,
		},
		"fields": map[string]string{
			"win_probability":      "chance each trade wins, 0.1-0.9; ignored when signal_score is set",
			"reward_multiple":      "payoff of a win in risk units (R), 1-5",
			"risk_fraction":        "fraction of current equity risked per trade, 0.001-0.05",
			"trades_per_period":    "trade events per period, 1-50",
			"periods":              "number of periods to simulate, 4-260",
			"fixed_cost_per_trade": "flat dollar cost charged to every trade, 0-100",
			"slippage_bps":         "slippage on the risk unit in basis points, 0-500",
			"starting_capital":     "initial account equity in dollars, 1000-10000000",
			"num_simulations":      "independent paths in the ensemble, 100-5000",
			"signal_score":         "optional 0-100 scanner score; calibrated to a win probability",
			"seed":                 "optional RNG seed for a reproducible ensemble; 0 draws one",
		},
	})
}

// Health reports readiness and engine capabilities, including the active
// score calibration.
func (h *RiskEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":      "ok",
		"environment": h.cfg.Environment,
		"workers":     h.cfg.Simulation.Workers,
		"calibration": scanner.Calibration(),
	})
}

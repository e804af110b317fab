package app

import (
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/team-report/external/loodibee"
	"github.com/riskibarqy/team-report/external/sportsdata"
	"github.com/riskibarqy/team-report/external/sportytrader"
	"github.com/riskibarqy/team-report/internal/chart"
	"github.com/riskibarqy/team-report/internal/config"
	"github.com/riskibarqy/team-report/internal/platform/logging"
	"github.com/riskibarqy/team-report/internal/platform/resilience"
	"github.com/riskibarqy/team-report/internal/report"
	"github.com/riskibarqy/team-report/internal/usecase"
)

// NewReportService wires the API client, both scrapers, the chart renderer
// and the PDF writer behind a ReportService. credential is the SportsDataIO
// subscription key.
func NewReportService(cfg config.Config, credential string, logger *logging.Logger) (*usecase.ReportService, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, fmt.Errorf("sportsdata credential cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	stats := sportsdata.NewClient(sportsdata.ClientConfig{
		HTTPClient: newTracedHTTPClient("sportsdata"),
		BaseURL:    cfg.SportsDataBaseURL,
		Credential: credential,
		Timeout:    cfg.SportsDataTimeout,
		MaxRetries: cfg.SportsDataMaxRetries,
		Logger:     logger.With("component", "sportsdata"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SportsDataCircuitEnabled,
			FailureThreshold: cfg.SportsDataCircuitFailureCount,
			OpenTimeout:      cfg.SportsDataCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SportsDataCircuitHalfOpenMaxReq,
		},
	})

	logos := loodibee.NewClient(loodibee.ClientConfig{
		HTTPClient:     newTracedHTTPClient("loodibee"),
		PageURL:        cfg.LogoPageURL,
		Timeout:        cfg.ScraperTimeout,
		FuzzyThreshold: cfg.LogoFuzzyThreshold,
		Logger:         logger.With("component", "loodibee"),
		CircuitBreaker: resilience.DefaultCircuitBreakerConfig(),
	})

	odds := sportytrader.NewClient(sportytrader.ClientConfig{
		HTTPClient: newTracedHTTPClient("sportytrader"),
		PageURL:    cfg.OddsPageURL,
		Timeout:    cfg.ScraperTimeout,
		Logger:     logger.With("component", "sportytrader"),
	})

	charts := chart.NewRenderer(chart.Config{
		Workers: cfg.ChartWorkers,
		Logger:  logger.With("component", "chart"),
	})
	writer := report.NewWriter(logger.With("component", "report"))

	return usecase.NewReportService(stats, logos, odds, charts, writer, logger), nil
}

// NewReportRequest maps the run parameters from config.
func NewReportRequest(cfg config.Config) usecase.ReportRequest {
	return usecase.ReportRequest{
		TeamKey:    cfg.TeamKey,
		Season:     cfg.Season,
		Author:     cfg.Author,
		OutputRoot: cfg.OutputDir,
	}
}

func newTracedHTTPClient(peer string) *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return peer + " " + r.Method + " " + r.URL.Path
			}),
		),
	}
}

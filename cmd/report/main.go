package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.opentelemetry.io/otel"

	"github.com/riskibarqy/team-report/internal/app"
	"github.com/riskibarqy/team-report/internal/config"
	"github.com/riskibarqy/team-report/internal/domain/metric"
	"github.com/riskibarqy/team-report/internal/observability"
	"github.com/riskibarqy/team-report/internal/platform/logging"
	"github.com/riskibarqy/team-report/internal/usecase"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}()

	stopProfiling, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		return 1
	}
	defer func() {
		if err := stopProfiling(); err != nil {
			logger.Warn("stop pyroscope", "error", err)
		}
	}()

	credential, err := config.LoadCredential(cfg.SportsDataCredentialFile)
	if err != nil {
		logger.Error("load sportsdata credential", "error", err)
		return 1
	}

	svc, err := app.NewReportService(cfg, credential, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, span := otel.Tracer("team-report/cmd/report").Start(ctx, "report.run")
	result, err := svc.Generate(ctx, app.NewReportRequest(cfg))
	span.End()
	if err != nil {
		logger.Error("generate report", "team", cfg.TeamKey, "season", cfg.Season, "error", err)
		return 1
	}

	renderSummary(os.Stdout, result)
	return 0
}

func renderSummary(w io.Writer, result usecase.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s %d", result.Team.Name, result.Season))
	t.AppendHeader(table.Row{"Item", "Value"})
	t.AppendRows([]table.Row{
		{"Players", result.Players},
		{"Games", result.Games},
		{"Win rate", formatRate(result.WinRates.Overall)},
		{"Home win rate", formatRate(result.WinRates.Home)},
		{"Away win rate", formatRate(result.WinRates.Away)},
		{"Charts", len(result.Artifacts.Paths)},
		{"Next match", nextMatchLabel(result)},
		{"Missing logos", missingLogosLabel(result.MissingLogos)},
		{"Report", result.ReportPath},
		{"Duration", result.Duration.Round(time.Millisecond)},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func formatRate(v metric.Value) string {
	rate, ok := v.Float()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", rate*100)
}

func nextMatchLabel(result usecase.Result) string {
	if result.NextMatch == nil {
		return "none scheduled"
	}
	label := result.NextMatch.Teams[0] + " vs " + result.NextMatch.Teams[1]
	if result.Prediction != "" {
		label += " (" + result.Prediction + ")"
	}
	return label
}

func missingLogosLabel(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/riskibarqy/team-report/internal/chart"
	"github.com/riskibarqy/team-report/internal/domain/game"
	"github.com/riskibarqy/team-report/internal/domain/nextmatch"
	"github.com/riskibarqy/team-report/internal/domain/player"
	"github.com/riskibarqy/team-report/internal/domain/playerstats"
	"github.com/riskibarqy/team-report/internal/domain/team"
	"github.com/riskibarqy/team-report/internal/platform/logging"
	"github.com/riskibarqy/team-report/internal/report"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	dirPermission  = 0o755
	filePermission = 0o644
)

type StatsSource interface {
	FetchPlayers(ctx context.Context, teamKey string) ([]player.Record, error)
	FetchGames(ctx context.Context, season int) ([]game.Record, error)
	FetchPlayerSeasonStats(ctx context.Context, season int, teamKey string) ([]playerstats.SeasonStat, error)
	FetchTeams(ctx context.Context) ([]team.Record, error)
}

type LogoSource interface {
	FetchLogo(ctx context.Context, teamName string) ([]byte, error)
}

type NextMatchSource interface {
	FetchNextMatch(ctx context.Context, familyName string) (nextmatch.Info, bool, error)
}

type ChartRenderer interface {
	RenderAll(ctx context.Context, in chart.Input) (chart.Artifacts, error)
}

type ReportWriter interface {
	Write(doc report.Document, path string) error
}

// ReportRequest is the run configuration handed to every stage.
type ReportRequest struct {
	TeamKey    string
	Season     int
	Author     string
	OutputRoot string
}

func (r ReportRequest) normalize() (ReportRequest, error) {
	r.TeamKey = strings.ToUpper(strings.TrimSpace(r.TeamKey))
	r.Author = strings.TrimSpace(r.Author)
	r.OutputRoot = strings.TrimSpace(r.OutputRoot)
	if r.TeamKey == "" {
		return ReportRequest{}, fmt.Errorf("%w: team key is required", ErrInvalidInput)
	}
	if r.Season <= 0 {
		return ReportRequest{}, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}
	if r.OutputRoot == "" {
		r.OutputRoot = "."
	}
	return r, nil
}

// ImageDir is the per-run directory holding every generated image.
func (r ReportRequest) ImageDir() string {
	return filepath.Join(r.OutputRoot, fmt.Sprintf("%s_%d_images", r.TeamKey, r.Season))
}

type Result struct {
	Team         team.Identity
	Season       int
	Players      int
	Games        int
	WinRates     game.WinRateSummary
	Artifacts    chart.Artifacts
	TeamLogo     string
	NextMatch    *nextmatch.Info
	Prediction   string
	ReportPath   string
	MissingLogos []string
	Duration     time.Duration
}

type ReportService struct {
	stats     StatsSource
	logos     LogoSource
	nextMatch NextMatchSource
	charts    ChartRenderer
	writer    ReportWriter
	logger    *logging.Logger
	now       func() time.Time
}

func NewReportService(
	stats StatsSource,
	logos LogoSource,
	nextMatch NextMatchSource,
	charts ChartRenderer,
	writer ReportWriter,
	logger *logging.Logger,
) *ReportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReportService{
		stats:     stats,
		logos:     logos,
		nextMatch: nextMatch,
		charts:    charts,
		writer:    writer,
		logger:    logger,
		now:       time.Now,
	}
}

// Generate runs fetch, resolve, derive, render, scrape, compose and write in
// that order. Stats and team failures abort the run before any PDF is
// written; logo and odds failures only degrade the report.
func (s *ReportService) Generate(ctx context.Context, req ReportRequest) (Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Generate")
	defer span.End()

	req, err := req.normalize()
	if err != nil {
		return Result{}, err
	}
	span.SetAttributes(attribute.String("team.key", req.TeamKey), attribute.Int("season", req.Season))

	started := s.now()
	logger := s.logger.With("team", req.TeamKey, "season", req.Season)

	result, err := s.generate(ctx, req, logger)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate report")
		logger.ErrorContext(ctx, "report generation failed", "error", err)
		return Result{}, err
	}

	result.Duration = s.now().Sub(started)
	logger.InfoContext(ctx, "report generated", "path", result.ReportPath, "duration", result.Duration)
	return result, nil
}

func (s *ReportService) generate(ctx context.Context, req ReportRequest, logger *logging.Logger) (Result, error) {
	imageDir := req.ImageDir()
	if err := os.MkdirAll(imageDir, dirPermission); err != nil {
		return Result{}, fmt.Errorf("create image dir %s: %w", imageDir, err)
	}

	logger.InfoContext(ctx, "fetching season data")
	data, err := s.fetchSeasonData(ctx, req)
	if err != nil {
		return Result{}, err
	}
	players, games, seasonStats, teams := data.players, data.games, data.stats, data.teams

	identity, err := ResolveTeam(teams, req.TeamKey)
	if err != nil {
		return Result{}, fmt.Errorf("resolve team: %w", err)
	}
	logger = logger.With("team_name", identity.Name)

	teamGames := game.FilterByTeam(games, identity.Key)
	for _, g := range teamGames {
		if err := g.Validate(); err != nil {
			return Result{}, fmt.Errorf("validate team games: %w", err)
		}
	}
	winRates := game.WinRates(teamGames, identity.Key)
	rows := playerstats.DeriveAll(seasonStats)
	logger.InfoContext(ctx, "metrics derived",
		"players", len(players),
		"games", len(teamGames),
		"decided_games", winRates.Played,
		"win_rate", winRates.Overall.String(),
	)

	artifacts, err := s.charts.RenderAll(ctx, chart.Input{
		Dir:      imageDir,
		Team:     identity,
		Players:  players,
		WinRates: winRates,
		Stats:    rows,
	})
	if err != nil {
		return Result{}, fmt.Errorf("render charts: %w", err)
	}
	logger.InfoContext(ctx, "charts rendered", "count", len(artifacts.Paths), "dir", imageDir)

	logos := newLogoFetcher(s.logos, imageDir, logger)
	teamLogo := logos.fetch(ctx, identity.Name)

	result := Result{
		Team:      identity,
		Season:    req.Season,
		Players:   len(players),
		Games:     len(teamGames),
		WinRates:  winRates,
		Artifacts: artifacts,
		TeamLogo:  teamLogo,
	}

	var card *report.MatchCard
	if info, found := s.fetchNextMatch(ctx, identity, logger); found {
		card = &report.MatchCard{
			Info:  info,
			Logos: [2]string{logos.fetch(ctx, info.Teams[0]), logos.fetch(ctx, info.Teams[1])},
		}
		result.NextMatch = &info
		if winner, err := info.PredictedWinner(); err == nil {
			result.Prediction = winner
		} else {
			logger.WarnContext(ctx, "odds could not be compared", "odds", info.Odds, "error", err)
		}
	}
	result.MissingLogos = logos.missing

	doc := report.Compose(report.Input{
		Team:      identity,
		Season:    req.Season,
		Author:    req.Author,
		Artifacts: artifacts,
		TeamLogo:  teamLogo,
		NextMatch: card,
	})

	path := filepath.Join(req.OutputRoot, fmt.Sprintf("%s_%d.pdf", identity.FileSlug(), req.Season))
	if err := s.writer.Write(doc, path); err != nil {
		return Result{}, fmt.Errorf("write report: %w", err)
	}
	result.ReportPath = path

	return result, nil
}

// fetchNextMatch treats a scrape failure the same as an empty listing.
func (s *ReportService) fetchNextMatch(ctx context.Context, identity team.Identity, logger *logging.Logger) (nextmatch.Info, bool) {
	if s.nextMatch == nil {
		return nextmatch.Info{}, false
	}

	info, found, err := s.nextMatch.FetchNextMatch(ctx, identity.FamilyName())
	if err != nil {
		logger.WarnContext(ctx, "next match lookup failed, continuing without prediction", "error", err)
		return nextmatch.Info{}, false
	}
	if !found {
		logger.InfoContext(ctx, "no upcoming match listed")
		return nextmatch.Info{}, false
	}
	return info, true
}

type seasonData struct {
	players []player.Record
	games   []game.Record
	stats   []playerstats.SeasonStat
	teams   []team.Record
}

// fetchSeasonData issues the four provider calls concurrently. The first
// failure cancels the siblings and is returned.
func (s *ReportService) fetchSeasonData(ctx context.Context, req ReportRequest) (seasonData, error) {
	var out seasonData
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()

	p.Go(func(ctx context.Context) error {
		players, err := s.stats.FetchPlayers(ctx, req.TeamKey)
		if err != nil {
			return fmt.Errorf("fetch players: %w", err)
		}
		out.players = players
		return nil
	})
	p.Go(func(ctx context.Context) error {
		games, err := s.stats.FetchGames(ctx, req.Season)
		if err != nil {
			return fmt.Errorf("fetch games: %w", err)
		}
		out.games = games
		return nil
	})
	p.Go(func(ctx context.Context) error {
		stats, err := s.stats.FetchPlayerSeasonStats(ctx, req.Season, req.TeamKey)
		if err != nil {
			return fmt.Errorf("fetch player season stats: %w", err)
		}
		out.stats = stats
		return nil
	})
	p.Go(func(ctx context.Context) error {
		teams, err := s.stats.FetchTeams(ctx)
		if err != nil {
			return fmt.Errorf("fetch teams: %w", err)
		}
		out.teams = teams
		return nil
	})

	if err := p.Wait(); err != nil {
		return seasonData{}, err
	}
	return out, nil
}

// logoFetcher downloads each team logo at most once per run and stores it as
// logo_{Team_Name}.png in the image directory.
type logoFetcher struct {
	source  LogoSource
	dir     string
	logger  *logging.Logger
	saved   map[string]string
	missing []string
}

func newLogoFetcher(source LogoSource, dir string, logger *logging.Logger) *logoFetcher {
	return &logoFetcher{
		source: source,
		dir:    dir,
		logger: logger,
		saved:  make(map[string]string, 3),
	}
}

// fetch returns the saved logo path, or "" when the logo is unavailable.
func (f *logoFetcher) fetch(ctx context.Context, teamName string) string {
	if path, ok := f.saved[teamName]; ok {
		return path
	}
	f.saved[teamName] = ""

	if f.source == nil {
		f.missing = append(f.missing, teamName)
		return ""
	}

	body, err := f.source.FetchLogo(ctx, teamName)
	if err != nil {
		f.logger.WarnContext(ctx, "team logo unavailable", "logo_team", teamName, "error", err)
		f.missing = append(f.missing, teamName)
		return ""
	}

	path := filepath.Join(f.dir, "logo_"+team.Slug(teamName)+".png")
	if err := os.WriteFile(path, body, filePermission); err != nil {
		f.logger.WarnContext(ctx, "team logo could not be saved", "logo_team", teamName, "path", path, "error", err)
		f.missing = append(f.missing, teamName)
		return ""
	}

	f.saved[teamName] = path
	return path
}

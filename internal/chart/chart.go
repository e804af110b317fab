package chart

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/team-report/internal/domain/game"
	"github.com/riskibarqy/team-report/internal/domain/player"
	"github.com/riskibarqy/team-report/internal/domain/playerstats"
	"github.com/riskibarqy/team-report/internal/domain/team"
	"github.com/riskibarqy/team-report/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

const (
	FileTablePlayers       = "table_players.png"
	FileWinRate            = "win_rate.png"
	FileWinRateHome        = "win_rate_home.png"
	FileWinRateAway        = "win_rate_away.png"
	FilePoints             = "points.png"
	FilePointsPerMinute    = "points_per_minute.png"
	FileShotAccuracy       = "shot_accuracy.png"
	FileShotsMade          = "shots_made.png"
	FileFreeThrowPercent   = "free_throw_percentage.png"
	FileDefense            = "defense.png"
	FileDefenseByMinute    = "defense_by_minute.png"
	FileTwoPointers        = "two_pointers.png"
	FileThreePointers      = "three_pointers.png"
	defaultWidth           = 10 * vg.Inch
	defaultHeight          = 5 * vg.Inch
	defaultWorkers         = 1
	imageFormat            = "png"
	artifactFilePermission = 0o644
)

// Files lists every artifact in render order.
var Files = []string{
	FileTablePlayers,
	FileWinRate,
	FileWinRateHome,
	FileWinRateAway,
	FilePoints,
	FilePointsPerMinute,
	FileShotAccuracy,
	FileShotsMade,
	FileFreeThrowPercent,
	FileDefense,
	FileDefenseByMinute,
	FileTwoPointers,
	FileThreePointers,
}

type Config struct {
	Width  vg.Length
	Height vg.Length
	// Workers bounds how many charts are encoded at once.
	Workers int
	Logger  *logging.Logger
}

type Renderer struct {
	width   vg.Length
	height  vg.Length
	workers int
	logger  *logging.Logger
}

func NewRenderer(cfg Config) *Renderer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	width := cfg.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := cfg.Height
	if height <= 0 {
		height = defaultHeight
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = defaultWorkers
	}

	return &Renderer{width: width, height: height, workers: workers, logger: logger}
}

// Input is everything the charts are drawn from. Nothing in it is modified.
type Input struct {
	Dir      string
	Team     team.Identity
	Players  []player.Record
	WinRates game.WinRateSummary
	Stats    []playerstats.Row
}

// Artifacts maps each written file name to its path on disk.
type Artifacts struct {
	Dir   string
	Paths map[string]string
}

func (a Artifacts) Path(file string) (string, bool) {
	path, ok := a.Paths[file]
	return path, ok
}

type figure struct {
	plot   *plot.Plot
	width  vg.Length
	height vg.Length
}

func (r *Renderer) RenderAll(ctx context.Context, in Input) (Artifacts, error) {
	if in.Dir == "" {
		return Artifacts{}, fmt.Errorf("chart output directory is required")
	}

	colors := newPalette(in.Team)
	builders := map[string]func() (figure, error){
		FileTablePlayers:     func() (figure, error) { return r.rosterTable(in.Players) },
		FileWinRate:          func() (figure, error) { return r.winRatePie("Win Rate - "+in.Team.Name, in.WinRates.Overall) },
		FileWinRateHome:      func() (figure, error) { return r.winRatePie("Win Rate Home - "+in.Team.Name, in.WinRates.Home) },
		FileWinRateAway:      func() (figure, error) { return r.winRatePie("Win Rate Away - "+in.Team.Name, in.WinRates.Away) },
		FilePoints:           func() (figure, error) { return r.points(in.Stats, colors) },
		FilePointsPerMinute:  func() (figure, error) { return r.pointsPerMinute(in.Stats, colors) },
		FileShotAccuracy:     func() (figure, error) { return r.shotAccuracy(in.Stats, colors) },
		FileShotsMade:        func() (figure, error) { return r.shotsMade(in.Stats, colors) },
		FileFreeThrowPercent: func() (figure, error) { return r.freeThrowPercentage(in.Stats, colors) },
		FileDefense:          func() (figure, error) { return r.defense(in.Stats, colors) },
		FileDefenseByMinute:  func() (figure, error) { return r.defenseByMinute(in.Stats, colors) },
		FileTwoPointers:      func() (figure, error) { return r.twoPointers(in.Stats) },
		FileThreePointers:    func() (figure, error) { return r.threePointers(in.Stats) },
	}

	pool, err := ants.NewPool(r.workers)
	if err != nil {
		return Artifacts{}, fmt.Errorf("create chart worker pool: %w", err)
	}
	defer pool.Release()

	errs := make([]error, len(Files))
	var workers sync.WaitGroup
	for i, file := range Files {
		i, file := i, file
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			errs[i] = r.render(ctx, builders[file], filepath.Join(in.Dir, file))
		}); err != nil {
			workers.Done()
			workers.Wait()
			return Artifacts{}, fmt.Errorf("submit chart %s to worker pool: %w", file, err)
		}
	}
	workers.Wait()

	out := Artifacts{Dir: in.Dir, Paths: make(map[string]string, len(Files))}
	for i, file := range Files {
		if errs[i] != nil {
			return Artifacts{}, fmt.Errorf("render chart %s: %w", file, errs[i])
		}
		out.Paths[file] = filepath.Join(in.Dir, file)
	}

	return out, nil
}

func (r *Renderer) render(ctx context.Context, build func() (figure, error), path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fig, err := build()
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	if err := save(fig, path); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	r.logger.DebugContext(ctx, "chart rendered", "path", path)
	return nil
}

func save(fig figure, path string) error {
	writer, err := fig.plot.WriterTo(fig.width, fig.height, imageFormat)
	if err != nil {
		return fmt.Errorf("encode image: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := writer.WriteTo(buf); err != nil {
		return fmt.Errorf("encode image: %w", err)
	}
	return os.WriteFile(path, buf.B, artifactFilePermission)
}

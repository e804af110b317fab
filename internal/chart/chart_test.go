package chart

import (
	"bytes"
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/team-report/internal/domain/game"
	"github.com/riskibarqy/team-report/internal/domain/metric"
	"github.com/riskibarqy/team-report/internal/domain/player"
	"github.com/riskibarqy/team-report/internal/domain/playerstats"
	"github.com/riskibarqy/team-report/internal/domain/team"
	"github.com/stretchr/testify/require"
)

func TestSortedBy_IsStableAndDescending(t *testing.T) {
	t.Parallel()

	rows := playerstats.DeriveAll([]playerstats.SeasonStat{
		{PlayerID: 1, Name: "A", Points: 10},
		{PlayerID: 2, Name: "B", Points: 30},
		{PlayerID: 3, Name: "C", Points: 10},
		{PlayerID: 4, Name: "D", Points: 30},
		{PlayerID: 5, Name: "E", Points: 20},
	})

	view := SortedBy(rows, func(row playerstats.Row) float64 { return row.Stat.Points })

	want := []string{"B", "D", "E", "A", "C"}
	got := view.Names()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order=%v, got=%v", want, got)
		}
	}
	if rows[0].Stat.Name != "A" || rows[1].Stat.Name != "B" {
		t.Fatalf("expected input rows to stay untouched, got first=%s second=%s", rows[0].Stat.Name, rows[1].Stat.Name)
	}
}

func TestViewWhere(t *testing.T) {
	t.Parallel()

	rows := playerstats.DeriveAll([]playerstats.SeasonStat{
		{PlayerID: 1, Name: "A", FreeThrowsPercentage: 0},
		{PlayerID: 2, Name: "B", FreeThrowsPercentage: 81.5},
	})
	view := SortedBy(rows, func(row playerstats.Row) float64 { return row.Stat.FreeThrowsPercentage }).
		Where(func(row playerstats.Row) bool { return row.Stat.FreeThrowsPercentage > 0 })

	if view.Len() != 1 || view.Names()[0] != "B" {
		t.Fatalf("expected only B to remain, got=%v", view.Names())
	}
}

func TestRosterRows_HeightInCentimetres(t *testing.T) {
	t.Parallel()

	rows := RosterRows([]player.Record{{
		PlayerID:  1,
		FirstName: "Jayson",
		LastName:  "Tatum",
		Position:  "SF",
		Height:    79,
		Weight:    210,
		BirthDate: "1998-03-03T00:00:00",
	}})

	want := [][]string{{"Jayson Tatum", "SF", "200.7 cm", "210", "1998-03-03", "", "", "-"}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("roster rows mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, rows[0], len(rosterHeader))
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	got := parseHex("#008348", fallbackPrimary)
	want := color.RGBA{R: 0x00, G: 0x83, B: 0x48, A: 255}
	if got != want {
		t.Fatalf("expected %v, got=%v", want, got)
	}
	if got := parseHex("zzz", fallbackPrimary); got != fallbackPrimary {
		t.Fatalf("expected fallback color, got=%v", got)
	}
}

func TestRenderAll_WritesEveryArtifact(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stats := playerstats.DeriveAll([]playerstats.SeasonStat{
		{PlayerID: 1, Name: "Jayson Tatum", Minutes: 2732, Points: 2225, TwoPointersMade: 510, TwoPointersAttempted: 957, ThreePointersMade: 240, ThreePointersAttempted: 686, FreeThrowsPercentage: 85.4, Steals: 78, BlockedShots: 51},
		{PlayerID: 2, Name: "Rookie", Minutes: 0},
	})

	renderer := NewRenderer(Config{})
	artifacts, err := renderer.RenderAll(context.Background(), Input{
		Dir:     dir,
		Team:    team.Identity{Key: "BOS", Name: "Boston Celtics", PrimaryColor: "#008348", SecondaryColor: "#BB9753"},
		Players: []player.Record{{PlayerID: 1, FirstName: "Jayson", LastName: "Tatum", Height: 79}},
		WinRates: game.WinRateSummary{
			Overall: metric.Of(0.5),
			Home:    metric.Of(1),
			Away:    metric.Undefined(),
		},
		Stats: stats,
	})
	require.NoError(t, err)

	for _, file := range Files {
		path, ok := artifacts.Path(file)
		if !ok {
			t.Fatalf("expected artifact %s to be reported", file)
		}
		if path != filepath.Join(dir, file) {
			t.Fatalf("expected %s under run dir, got=%s", file, path)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", file, err)
		}
		if info.Size() == 0 {
			t.Fatalf("expected %s to be non-empty", file)
		}
	}
}

func TestNewRenderer_DefaultsToSerialRendering(t *testing.T) {
	t.Parallel()

	if got := NewRenderer(Config{}).workers; got != 1 {
		t.Fatalf("expected workers=1 by default, got=%d", got)
	}
	if got := NewRenderer(Config{Workers: 4}).workers; got != 4 {
		t.Fatalf("expected workers=4, got=%d", got)
	}
}

func TestRenderAll_OutputDoesNotDependOnWorkers(t *testing.T) {
	t.Parallel()

	stats := playerstats.DeriveAll([]playerstats.SeasonStat{
		{PlayerID: 1, Name: "Jayson Tatum", Minutes: 2732, Points: 2225, TwoPointersMade: 510, TwoPointersAttempted: 957, Steals: 78, BlockedShots: 51},
		{PlayerID: 2, Name: "Jaylen Brown", Minutes: 2405, Points: 1841, TwoPointersMade: 513, TwoPointersAttempted: 976, Steals: 77, BlockedShots: 26},
	})
	render := func(workers int) string {
		dir := t.TempDir()
		_, err := NewRenderer(Config{Workers: workers}).RenderAll(context.Background(), Input{
			Dir:      dir,
			Team:     team.Identity{Key: "BOS", Name: "Boston Celtics"},
			WinRates: game.WinRateSummary{Overall: metric.Of(0.5), Home: metric.Of(1), Away: metric.Of(0)},
			Stats:    stats,
		})
		require.NoError(t, err)
		return dir
	}

	serial, parallel := render(1), render(4)
	for _, file := range Files {
		a, err := os.ReadFile(filepath.Join(serial, file))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(parallel, file))
		require.NoError(t, err)
		if !bytes.Equal(a, b) {
			t.Fatalf("expected %s to be identical for 1 and 4 workers", file)
		}
	}
}

func TestRenderAll_EmptyStatsStillProducesImages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	artifacts, err := NewRenderer(Config{}).RenderAll(context.Background(), Input{
		Dir:  dir,
		Team: team.Identity{Key: "BOS", Name: "Boston Celtics"},
	})
	require.NoError(t, err)
	if len(artifacts.Paths) != len(Files) {
		t.Fatalf("expected %d artifacts, got=%d", len(Files), len(artifacts.Paths))
	}
}

func TestRenderAll_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenderer(Config{}).RenderAll(ctx, Input{Dir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}

package chart

import (
	"image/color"
	"math"

	"github.com/riskibarqy/team-report/internal/domain/playerstats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const noStatsMessage = "No player statistics"

type series struct {
	label string
	value func(playerstats.Row) float64
	color color.Color
}

func (r *Renderer) points(rows []playerstats.Row, colors palette) (figure, error) {
	view := SortedBy(rows, func(row playerstats.Row) float64 { return row.Stat.Points })
	return r.overlaidFigure(view, "Points", "Player", "Points", []series{
		{value: func(row playerstats.Row) float64 { return row.Stat.Points }, color: colors.primary},
	})
}

func (r *Renderer) pointsPerMinute(rows []playerstats.Row, colors palette) (figure, error) {
	value := func(row playerstats.Row) float64 { return row.Derived.PointsPerMinute.OrZero() }
	return r.overlaidFigure(SortedBy(rows, value), "Points Per Minute", "Player", "Points Per Minute", []series{
		{value: value, color: colors.secondary},
	})
}

func (r *Renderer) shotAccuracy(rows []playerstats.Row, colors palette) (figure, error) {
	view := SortedBy(rows, func(row playerstats.Row) float64 { return row.Derived.TwoPointAccuracy.OrZero() })
	return r.groupedFigure(view, "Shot Accuracy", "Player", "Percentage", []series{
		{label: "Two Pointers", value: func(row playerstats.Row) float64 { return row.Derived.TwoPointAccuracy.OrZero() }, color: colors.primary},
		{label: "Three Pointers", value: func(row playerstats.Row) float64 { return row.Derived.ThreePointAccuracy.OrZero() }, color: colors.secondary},
	})
}

func (r *Renderer) shotsMade(rows []playerstats.Row, colors palette) (figure, error) {
	view := SortedBy(rows, func(row playerstats.Row) float64 { return row.Stat.TwoPointersMade })
	return r.groupedFigure(view, "Shots Scored", "Player", "Scored", []series{
		{label: "Two Pointers", value: func(row playerstats.Row) float64 { return row.Stat.TwoPointersMade }, color: colors.primary},
		{label: "Three Pointers", value: func(row playerstats.Row) float64 { return row.Stat.ThreePointersMade }, color: colors.secondary},
	})
}

// freeThrowPercentage leaves out players without a free throw percentage.
func (r *Renderer) freeThrowPercentage(rows []playerstats.Row, colors palette) (figure, error) {
	value := func(row playerstats.Row) float64 { return row.Stat.FreeThrowsPercentage }
	view := SortedBy(rows, value).Where(func(row playerstats.Row) bool { return value(row) > 0 })
	if view.Len() == 0 {
		return r.messageFigure("Free Throw Percentage", noStatsMessage), nil
	}

	p := plot.New()
	p.Title.Text = "Free Throw Percentage"
	p.X.Label.Text = "Free Throw Percentage"
	p.Y.Label.Text = "Player"
	p.X.Min = 0
	p.X.Max = 100

	bars, err := plotter.NewBarChart(view.Values(value), barWidth(view.Len(), 1, r.height))
	if err != nil {
		return figure{}, err
	}
	bars.Horizontal = true
	bars.Color = colors.primary
	p.Add(bars)
	p.NominalY(view.Names()...)

	return figure{plot: p, width: r.width, height: r.height}, nil
}

func (r *Renderer) defense(rows []playerstats.Row, colors palette) (figure, error) {
	view := SortedBy(rows, func(row playerstats.Row) float64 { return row.Derived.Defense })
	return r.stackedFigure(view, "Defensive Statistics", "Player", "Defensive Statistics", []series{
		{label: "Steals", value: func(row playerstats.Row) float64 { return row.Stat.Steals }, color: colors.primary},
		{label: "Blocked Shots", value: func(row playerstats.Row) float64 { return row.Stat.BlockedShots }, color: colors.secondary},
	})
}

func (r *Renderer) defenseByMinute(rows []playerstats.Row, colors palette) (figure, error) {
	view := SortedBy(rows, func(row playerstats.Row) float64 { return row.Derived.DefensePerMinute.OrZero() })
	return r.stackedFigure(view, "Defensive Statistics by minute played", "Player", "Defensive Statistics", []series{
		{label: "Steals", value: func(row playerstats.Row) float64 { return row.Derived.StealsPerMinute.OrZero() }, color: colors.primary},
		{label: "Blocked Shots", value: func(row playerstats.Row) float64 { return row.Derived.BlocksPerMinute.OrZero() }, color: colors.secondary},
	})
}

func (r *Renderer) twoPointers(rows []playerstats.Row) (figure, error) {
	view := SortedBy(rows, func(row playerstats.Row) float64 { return row.Stat.TwoPointersAttempted })
	return r.overlaidFigure(view, "Two Pointers", "Player", "Two Pointers", []series{
		{label: "Missed", value: func(row playerstats.Row) float64 { return row.Stat.TwoPointersAttempted }, color: colorRed},
		{label: "Scored", value: func(row playerstats.Row) float64 { return row.Stat.TwoPointersMade }, color: colorGreen},
	})
}

func (r *Renderer) threePointers(rows []playerstats.Row) (figure, error) {
	view := SortedBy(rows, func(row playerstats.Row) float64 { return row.Stat.ThreePointersAttempted })
	return r.overlaidFigure(view, "Three Pointers", "Player", "Three Pointers", []series{
		{label: "Missed", value: func(row playerstats.Row) float64 { return row.Stat.ThreePointersAttempted }, color: colorRed},
		{label: "Scored", value: func(row playerstats.Row) float64 { return row.Stat.ThreePointersMade }, color: colorGreen},
	})
}

// groupedFigure draws the series side by side around each player tick.
func (r *Renderer) groupedFigure(view View, title, xLabel, yLabel string, set []series) (figure, error) {
	if view.Len() == 0 {
		return r.messageFigure(title, noStatsMessage), nil
	}

	p := newBarPlot(title, xLabel, yLabel, view.Names())
	width := barWidth(view.Len(), len(set), r.width)
	for idx, s := range set {
		bars, err := plotter.NewBarChart(view.Values(s.value), width)
		if err != nil {
			return figure{}, err
		}
		bars.Color = s.color
		bars.Offset = vg.Length(float64(idx)-float64(len(set)-1)/2) * width
		p.Add(bars)
		p.Legend.Add(s.label, bars)
	}

	return figure{plot: p, width: r.width, height: r.height}, nil
}

// stackedFigure piles each series on top of the previous one.
func (r *Renderer) stackedFigure(view View, title, xLabel, yLabel string, set []series) (figure, error) {
	if view.Len() == 0 {
		return r.messageFigure(title, noStatsMessage), nil
	}

	p := newBarPlot(title, xLabel, yLabel, view.Names())
	width := barWidth(view.Len(), 1, r.width)
	var below *plotter.BarChart
	for _, s := range set {
		bars, err := plotter.NewBarChart(view.Values(s.value), width)
		if err != nil {
			return figure{}, err
		}
		bars.Color = s.color
		if below != nil {
			bars.StackOn(below)
		}
		p.Add(bars)
		p.Legend.Add(s.label, bars)
		below = bars
	}

	return figure{plot: p, width: r.width, height: r.height}, nil
}

// overlaidFigure draws every series at the same position; later series
// cover earlier ones.
func (r *Renderer) overlaidFigure(view View, title, xLabel, yLabel string, set []series) (figure, error) {
	if view.Len() == 0 {
		return r.messageFigure(title, noStatsMessage), nil
	}

	p := newBarPlot(title, xLabel, yLabel, view.Names())
	width := barWidth(view.Len(), 1, r.width)
	for _, s := range set {
		bars, err := plotter.NewBarChart(view.Values(s.value), width)
		if err != nil {
			return figure{}, err
		}
		bars.Color = s.color
		p.Add(bars)
		if s.label != "" {
			p.Legend.Add(s.label, bars)
		}
	}

	return figure{plot: p, width: r.width, height: r.height}, nil
}

func newBarPlot(title, xLabel, yLabel string, names []string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Y.Min = 0
	p.Legend.Top = true
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return p
}

// barWidth spreads groups of bars over roughly two thirds of the axis.
func barWidth(players, perGroup int, span vg.Length) vg.Length {
	if players < 1 {
		players = 1
	}
	if perGroup < 1 {
		perGroup = 1
	}
	width := span * 2 / 3 / vg.Length(players*perGroup)
	switch {
	case width < vg.Points(2):
		return vg.Points(2)
	case width > vg.Points(28):
		return vg.Points(28)
	default:
		return width
	}
}

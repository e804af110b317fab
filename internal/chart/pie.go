package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/riskibarqy/team-report/internal/domain/metric"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const noGamesMessage = "No games"

type slice struct {
	label string
	value float64
	color color.Color
}

// pie draws slices counter-clockwise from twelve o'clock. The first slice
// is pulled out of the circle.
type pie struct {
	slices []slice
}

func (pc pie) Plot(c draw.Canvas, plt *plot.Plot) {
	total := 0.0
	for _, s := range pc.slices {
		total += s.value
	}
	if total <= 0 {
		return
	}

	center := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	radius := 0.4 * minLength(c.Max.X-c.Min.X, c.Max.Y-c.Min.Y)

	label := plt.Title.TextStyle
	label.Font.Size = vg.Points(11)
	label.XAlign = draw.XCenter
	label.YAlign = draw.YCenter

	outline := draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
	start := math.Pi / 2
	for idx, s := range pc.slices {
		if s.value <= 0 {
			continue
		}
		sweep := 2 * math.Pi * s.value / total
		mid := start + sweep/2

		origin := center
		if idx == 0 && sweep < 2*math.Pi {
			origin = polar(center, 0.1*radius, mid)
		}

		var path vg.Path
		path.Move(origin)
		path.Arc(origin, radius, start, sweep)
		path.Close()

		c.SetColor(s.color)
		c.Fill(path)
		c.SetLineStyle(outline)
		c.Stroke(path)

		c.FillText(label, polar(origin, 0.6*radius, mid), fmt.Sprintf("%.1f%%", 100*s.value/total))
		c.FillText(label, polar(origin, 1.15*radius, mid), s.label)

		start += sweep
	}
}

// message draws a single centred line of text instead of data.
type message struct {
	text string
}

func (m message) Plot(c draw.Canvas, plt *plot.Plot) {
	sty := plt.Title.TextStyle
	sty.Font.Size = vg.Points(16)
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter
	c.FillText(sty, vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}, m.text)
}

func (r *Renderer) winRatePie(title string, rate metric.Value) (figure, error) {
	value, ok := rate.Float()
	if !ok {
		return r.messageFigure(title, noGamesMessage), nil
	}

	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.Add(pie{slices: []slice{
		{label: "Win", value: value, color: colorGreen},
		{label: "Lose", value: 1 - value, color: colorRed},
	}})

	return figure{plot: p, width: r.height, height: r.height}, nil
}

func (r *Renderer) messageFigure(title, text string) figure {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.Add(message{text: text})
	return figure{plot: p, width: r.width, height: r.height}
}

func polar(origin vg.Point, radius vg.Length, angle float64) vg.Point {
	return vg.Point{
		X: origin.X + radius*vg.Length(math.Cos(angle)),
		Y: origin.Y + radius*vg.Length(math.Sin(angle)),
	}
}

func minLength(a, b vg.Length) vg.Length {
	if a < b {
		return a
	}
	return b
}

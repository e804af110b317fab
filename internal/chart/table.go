package chart

import (
	"image/color"
	"strconv"

	"github.com/riskibarqy/team-report/internal/domain/player"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var rosterHeader = []string{"Player", "Position", "Height", "Weight", "BirthDate", "BirthCountry", "College", "Salary"}

// RosterRows formats the roster as table cells, one row per player in input
// order.
func RosterRows(players []player.Record) [][]string {
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, []string{
			p.Name(),
			p.Position,
			p.HeightLabel(),
			strconv.Itoa(p.Weight),
			p.BirthDay(),
			p.BirthCountry,
			p.College,
			p.SalaryLabel(),
		})
	}
	return rows
}

// grid draws a bordered text table anchored at the top of the canvas.
// Columns share the width in proportion to their widest cell.
type grid struct {
	header     []string
	rows       [][]string
	headerFill color.Color
}

const tableRowHeight = 18 // points

func (g grid) Plot(c draw.Canvas, plt *plot.Plot) {
	sty := plt.Title.TextStyle
	sty.Font.Size = vg.Points(8)
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter

	widths := make([]vg.Length, len(g.header))
	for col, cell := range g.header {
		widths[col] = sty.Width(cell)
	}
	for _, row := range g.rows {
		for col := 0; col < len(widths) && col < len(row); col++ {
			if w := sty.Width(row[col]); w > widths[col] {
				widths[col] = w
			}
		}
	}
	total := vg.Length(0)
	for col := range widths {
		widths[col] += vg.Points(8)
		total += widths[col]
	}
	if total <= 0 {
		return
	}
	scale := (c.Max.X - c.Min.X) / total
	if scale < 1 {
		sty.Font.Size *= scale
	}

	rowHeight := vg.Points(tableRowHeight)
	border := draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
	top := c.Max.Y
	for r := 0; r <= len(g.rows); r++ {
		cells := g.header
		if r > 0 {
			cells = g.rows[r-1]
		}
		y0 := top - vg.Length(r+1)*rowHeight
		y1 := y0 + rowHeight
		x0 := c.Min.X
		for col, w := range widths {
			x1 := x0 + w*scale
			box := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
			if r == 0 && g.headerFill != nil {
				c.FillPolygon(g.headerFill, box)
			}
			c.StrokeLines(border, append(box, box[0]))
			if col < len(cells) {
				c.FillText(sty, vg.Point{X: (x0 + x1) / 2, Y: (y0 + y1) / 2}, cells[col])
			}
			x0 = x1
		}
	}
}

func (r *Renderer) rosterTable(players []player.Record) (figure, error) {
	p := plot.New()
	p.Title.Text = "Players"
	p.HideAxes()
	p.Add(grid{header: rosterHeader, rows: RosterRows(players), headerFill: colorGrey})

	height := vg.Points(tableRowHeight)*vg.Length(len(players)+1) + vg.Inch
	if height < 2*vg.Inch {
		height = 2 * vg.Inch
	}
	return figure{plot: p, width: r.width, height: height}, nil
}

package chart

import (
	"sort"

	"github.com/riskibarqy/team-report/internal/domain/playerstats"
	"gonum.org/v1/plot/plotter"
)

// View is a read-only ordering of stat rows built for a single chart.
type View struct {
	rows []playerstats.Row
}

// SortedBy orders a copy of rows by key, descending. Equal keys keep their
// input order.
func SortedBy(rows []playerstats.Row, key func(playerstats.Row) float64) View {
	out := make([]playerstats.Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	return View{rows: out}
}

func (v View) Where(keep func(playerstats.Row) bool) View {
	out := make([]playerstats.Row, 0, len(v.rows))
	for _, row := range v.rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return View{rows: out}
}

func (v View) Len() int {
	return len(v.rows)
}

func (v View) Names() []string {
	out := make([]string, 0, len(v.rows))
	for _, row := range v.rows {
		out = append(out, row.Stat.Name)
	}
	return out
}

func (v View) Values(value func(playerstats.Row) float64) plotter.Values {
	out := make(plotter.Values, 0, len(v.rows))
	for _, row := range v.rows {
		out = append(out, value(row))
	}
	return out
}

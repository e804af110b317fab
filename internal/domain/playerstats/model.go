package playerstats

import (
	"fmt"
	"math"
	"strings"

	"github.com/riskibarqy/team-report/internal/domain/metric"
)

// SeasonStat is the season aggregate of one player on one team. Counts are
// floats because the provider scales them for partial seasons.
type SeasonStat struct {
	PlayerID               int64
	Name                   string
	Team                   string
	Games                  float64
	Minutes                float64
	Points                 float64
	TwoPointersMade        float64
	TwoPointersAttempted   float64
	ThreePointersMade      float64
	ThreePointersAttempted float64
	FreeThrowsMade         float64
	FreeThrowsAttempted    float64
	FreeThrowsPercentage   float64
	Steals                 float64
	BlockedShots           float64
}

func (s SeasonStat) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("player %d: name is required", s.PlayerID)
	}
	for field, v := range map[string]float64{
		"minutes":                  s.Minutes,
		"points":                   s.Points,
		"two pointers made":        s.TwoPointersMade,
		"two pointers attempted":   s.TwoPointersAttempted,
		"three pointers made":      s.ThreePointersMade,
		"three pointers attempted": s.ThreePointersAttempted,
		"steals":                   s.Steals,
		"blocked shots":            s.BlockedShots,
	} {
		if math.IsNaN(v) || v < 0 {
			return fmt.Errorf("player %s: %s must not be negative", s.Name, field)
		}
	}
	if s.TwoPointersMade > s.TwoPointersAttempted || s.ThreePointersMade > s.ThreePointersAttempted {
		return fmt.Errorf("player %s: made shots exceed attempts", s.Name)
	}

	return nil
}

// Derived holds the per-player metrics computed from a SeasonStat.
type Derived struct {
	PointsPerMinute    metric.Value
	TwoPointAccuracy   metric.Value // percent
	ThreePointAccuracy metric.Value // percent
	Defense            float64
	DefensePerMinute   metric.Value
	StealsPerMinute    metric.Value
	BlocksPerMinute    metric.Value
}

func Derive(s SeasonStat) Derived {
	return Derived{
		PointsPerMinute:    metric.Ratio(s.Points, s.Minutes),
		TwoPointAccuracy:   percent(s.TwoPointersMade, s.TwoPointersAttempted),
		ThreePointAccuracy: percent(s.ThreePointersMade, s.ThreePointersAttempted),
		Defense:            s.Steals + s.BlockedShots,
		DefensePerMinute:   metric.Ratio(s.Steals+s.BlockedShots, s.Minutes),
		StealsPerMinute:    metric.Ratio(s.Steals, s.Minutes),
		BlocksPerMinute:    metric.Ratio(s.BlockedShots, s.Minutes),
	}
}

// Row pairs a stat line with its derived metrics.
type Row struct {
	Stat    SeasonStat
	Derived Derived
}

// DeriveAll keeps the input order.
func DeriveAll(stats []SeasonStat) []Row {
	rows := make([]Row, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, Row{Stat: s, Derived: Derive(s)})
	}
	return rows
}

func percent(made, attempted float64) metric.Value {
	ratio := metric.Ratio(made, attempted)
	v, ok := ratio.Float()
	if !ok {
		return ratio
	}
	return metric.Of(v * 100)
}

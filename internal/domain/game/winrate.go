package game

import "github.com/riskibarqy/team-report/internal/domain/metric"

// WinRateSummary holds the overall and split win rates of one team. Each
// rate is undefined when its denominator is empty.
type WinRateSummary struct {
	Overall metric.Value
	Home    metric.Value
	Away    metric.Value

	Played     int
	Wins       int
	HomePlayed int
	HomeWins   int
	AwayPlayed int
	AwayWins   int
}

// WinRates counts decided games only; scheduled games have no winner yet.
func WinRates(games []Record, teamKey string) WinRateSummary {
	key := normalizeKey(teamKey)

	var out WinRateSummary
	for _, g := range games {
		if !g.Decided() || !g.Involves(key) {
			continue
		}
		won := g.Winner() == key

		out.Played++
		if won {
			out.Wins++
		}
		if g.HomeTeam == key {
			out.HomePlayed++
			if won {
				out.HomeWins++
			}
		}
		if g.AwayTeam == key {
			out.AwayPlayed++
			if won {
				out.AwayWins++
			}
		}
	}

	out.Overall = metric.Ratio(float64(out.Wins), float64(out.Played))
	out.Home = metric.Ratio(float64(out.HomeWins), float64(out.HomePlayed))
	out.Away = metric.Ratio(float64(out.AwayWins), float64(out.AwayPlayed))
	return out
}

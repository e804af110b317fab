package nextmatch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidOdds = errors.New("invalid odds")

// Info is the next listed match of a team with its decimal betting odds.
// Odds are kept as scraped; Odds[i] belongs to Teams[i].
type Info struct {
	Teams [2]string
	Odds  [2]string
	Date  string
}

// ParsedOdds accepts both "1.50" and "1,50".
func (i Info) ParsedOdds() ([2]float64, error) {
	var out [2]float64
	for idx, raw := range i.Odds {
		value := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return [2]float64{}, fmt.Errorf("%w: %q for %s", ErrInvalidOdds, raw, i.Teams[idx])
		}
		out[idx] = f
	}
	return out, nil
}

// PredictedWinner returns the participant with the lower odd. Equal odds
// resolve to the first-listed participant.
func (i Info) PredictedWinner() (string, error) {
	odds, err := i.ParsedOdds()
	if err != nil {
		return "", err
	}
	if odds[1] < odds[0] {
		return i.Teams[1], nil
	}
	return i.Teams[0], nil
}

// NormalizeTeamName expands the "LA " abbreviation used by odds listings.
func NormalizeTeamName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "LA ") {
		return "Los Angeles " + strings.TrimPrefix(name, "LA ")
	}
	return name
}

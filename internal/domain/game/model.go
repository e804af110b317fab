package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusFinal     = "FINAL"
)

// ErrTiedScore marks a finished game whose scores are equal. Basketball
// games cannot end tied, so such a row is malformed input.
var ErrTiedScore = errors.New("finished game has tied score")

// Record is one scheduled game. The winner is derived once by New and is
// read-only afterwards.
type Record struct {
	GameID    int64
	Season    int
	Status    string
	DateTime  string
	HomeTeam  string
	AwayTeam  string
	HomeScore *int
	AwayScore *int

	winner string
}

// New normalises the record and derives its winner. A finished game with
// equal scores is kept without a winner; Validate reports it.
func New(r Record) (Record, error) {
	r.HomeTeam = normalizeKey(r.HomeTeam)
	r.AwayTeam = normalizeKey(r.AwayTeam)
	r.Status = NormalizeStatus(r.Status)
	r.winner = ""

	if r.HomeTeam == "" || r.AwayTeam == "" {
		return Record{}, fmt.Errorf("game %d: home and away teams are required", r.GameID)
	}
	if !IsFinishedStatus(r.Status) || r.HomeScore == nil || r.AwayScore == nil {
		return r, nil
	}

	switch {
	case *r.HomeScore > *r.AwayScore:
		r.winner = r.HomeTeam
	case *r.AwayScore > *r.HomeScore:
		r.winner = r.AwayTeam
	}

	return r, nil
}

// Validate rejects a finished game whose scores are equal.
func (r Record) Validate() error {
	if !IsFinishedStatus(r.Status) || r.HomeScore == nil || r.AwayScore == nil {
		return nil
	}
	if *r.HomeScore == *r.AwayScore {
		return fmt.Errorf("%w: game %d %s %d-%d %s", ErrTiedScore, r.GameID, r.HomeTeam, *r.HomeScore, *r.AwayScore, r.AwayTeam)
	}
	return nil
}

func (r Record) Winner() string {
	return r.winner
}

// Decided reports whether the game is finished with a winner.
func (r Record) Decided() bool {
	return r.winner != ""
}

func (r Record) Involves(teamKey string) bool {
	key := normalizeKey(teamKey)
	return key != "" && (r.HomeTeam == key || r.AwayTeam == key)
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinal, "CLOSED", "F":
		return true
	default:
		return strings.HasPrefix(NormalizeStatus(status), "F/")
	}
}

// FilterByTeam keeps the games where the team plays home or away.
func FilterByTeam(games []Record, teamKey string) []Record {
	out := make([]Record, 0, len(games)/15+1)
	for _, g := range games {
		if g.Involves(teamKey) {
			out = append(out, g)
		}
	}
	return out
}

func normalizeKey(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

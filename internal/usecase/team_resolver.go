package usecase

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/team-report/internal/domain/team"
)

// ResolveTeam picks the single directory row whose key matches. Zero or
// several matches are errors.
func ResolveTeam(teams []team.Record, key string) (team.Identity, error) {
	key = strings.ToUpper(strings.TrimSpace(key))
	if key == "" {
		return team.Identity{}, fmt.Errorf("%w: team key is required", ErrInvalidInput)
	}

	matches := make([]team.Record, 0, 1)
	for _, item := range teams {
		if strings.EqualFold(strings.TrimSpace(item.Key), key) {
			matches = append(matches, item)
		}
	}

	switch len(matches) {
	case 0:
		return team.Identity{}, fmt.Errorf("%w: key=%s", ErrTeamNotFound, key)
	case 1:
		return matches[0].Identity(), nil
	default:
		return team.Identity{}, fmt.Errorf("%w: key=%s matches=%d", ErrTeamAmbiguous, key, len(matches))
	}
}

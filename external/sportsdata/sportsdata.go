package sportsdata

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/team-report/internal/domain/game"
	"github.com/riskibarqy/team-report/internal/domain/player"
	"github.com/riskibarqy/team-report/internal/domain/playerstats"
	"github.com/riskibarqy/team-report/internal/domain/team"
)

type playerItem struct {
	PlayerID     int64   `json:"PlayerID" validate:"gt=0"`
	FirstName    string  `json:"FirstName"`
	LastName     string  `json:"LastName" validate:"required"`
	Team         string  `json:"Team"`
	Position     string  `json:"Position"`
	Height       *int    `json:"Height" validate:"omitempty,gte=0"`
	Weight       *int    `json:"Weight" validate:"omitempty,gte=0"`
	BirthDate    *string `json:"BirthDate"`
	BirthCountry *string `json:"BirthCountry"`
	College      *string `json:"College"`
	Salary       *int64  `json:"Salary" validate:"omitempty,gte=0"`
}

type gameItem struct {
	GameID        int64   `json:"GameID" validate:"gt=0"`
	Season        int     `json:"Season"`
	Status        string  `json:"Status"`
	DateTime      *string `json:"DateTime"`
	HomeTeam      string  `json:"HomeTeam" validate:"required"`
	AwayTeam      string  `json:"AwayTeam" validate:"required"`
	HomeTeamScore *int    `json:"HomeTeamScore" validate:"omitempty,gte=0"`
	AwayTeamScore *int    `json:"AwayTeamScore" validate:"omitempty,gte=0"`
}

type playerSeasonStatItem struct {
	PlayerID               int64   `json:"PlayerID"`
	Name                   string  `json:"Name" validate:"required"`
	Team                   string  `json:"Team"`
	Games                  float64 `json:"Games" validate:"gte=0"`
	Minutes                float64 `json:"Minutes" validate:"gte=0"`
	Points                 float64 `json:"Points" validate:"gte=0"`
	TwoPointersMade        float64 `json:"TwoPointersMade" validate:"gte=0,ltefield=TwoPointersAttempted"`
	TwoPointersAttempted   float64 `json:"TwoPointersAttempted" validate:"gte=0"`
	ThreePointersMade      float64 `json:"ThreePointersMade" validate:"gte=0,ltefield=ThreePointersAttempted"`
	ThreePointersAttempted float64 `json:"ThreePointersAttempted" validate:"gte=0"`
	FreeThrowsMade         float64 `json:"FreeThrowsMade" validate:"gte=0"`
	FreeThrowsAttempted    float64 `json:"FreeThrowsAttempted" validate:"gte=0"`
	FreeThrowsPercentage   float64 `json:"FreeThrowsPercentage" validate:"gte=0,lte=100"`
	Steals                 float64 `json:"Steals" validate:"gte=0"`
	BlockedShots           float64 `json:"BlockedShots" validate:"gte=0"`
}

type teamItem struct {
	TeamID         int64   `json:"TeamID"`
	Key            string  `json:"Key" validate:"required"`
	Active         bool    `json:"Active"`
	City           string  `json:"City"`
	Name           string  `json:"Name" validate:"required"`
	PrimaryColor   *string `json:"PrimaryColor"`
	SecondaryColor *string `json:"SecondaryColor"`
}

func (c *Client) FetchPlayers(ctx context.Context, teamKey string) ([]player.Record, error) {
	key, err := normalizeTeamKey(teamKey)
	if err != nil {
		return nil, err
	}

	var items []playerItem
	if err := c.doJSON(ctx, "/scores/json/Players/"+url.PathEscape(key), &items); err != nil {
		return nil, fmt.Errorf("fetch players team=%s: %w", key, err)
	}

	out := make([]player.Record, 0, len(items))
	for idx, item := range items {
		if err := c.validate.StructCtx(ctx, item); err != nil {
			return nil, fmt.Errorf("%w: players[%d]: %v", ErrMalformedPayload, idx, err)
		}
		record := player.Record{
			PlayerID:     item.PlayerID,
			FirstName:    strings.TrimSpace(item.FirstName),
			LastName:     strings.TrimSpace(item.LastName),
			Position:     strings.TrimSpace(item.Position),
			Height:       derefInt(item.Height),
			Weight:       derefInt(item.Weight),
			BirthDate:    derefString(item.BirthDate),
			BirthCountry: derefString(item.BirthCountry),
			College:      derefString(item.College),
			Salary:       item.Salary,
		}
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("%w: players[%d]: %v", ErrMalformedPayload, idx, err)
		}
		out = append(out, record)
	}

	return out, nil
}

// FetchGames returns the league-wide schedule. Tied finals are kept without a
// winner; callers validate the games they use.
func (c *Client) FetchGames(ctx context.Context, season int) ([]game.Record, error) {
	if season <= 0 {
		return nil, fmt.Errorf("season must be greater than zero")
	}

	var items []gameItem
	if err := c.doJSON(ctx, "/scores/json/Games/"+strconv.Itoa(season), &items); err != nil {
		return nil, fmt.Errorf("fetch games season=%d: %w", season, err)
	}

	out := make([]game.Record, 0, len(items))
	for idx, item := range items {
		if err := c.validate.StructCtx(ctx, item); err != nil {
			return nil, fmt.Errorf("%w: games[%d]: %v", ErrMalformedPayload, idx, err)
		}
		record, err := game.New(game.Record{
			GameID:    item.GameID,
			Season:    item.Season,
			Status:    item.Status,
			DateTime:  derefString(item.DateTime),
			HomeTeam:  item.HomeTeam,
			AwayTeam:  item.AwayTeam,
			HomeScore: item.HomeTeamScore,
			AwayScore: item.AwayTeamScore,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: games[%d]: %w", ErrMalformedPayload, idx, err)
		}
		out = append(out, record)
	}

	return out, nil
}

func (c *Client) FetchPlayerSeasonStats(ctx context.Context, season int, teamKey string) ([]playerstats.SeasonStat, error) {
	key, err := normalizeTeamKey(teamKey)
	if err != nil {
		return nil, err
	}
	if season <= 0 {
		return nil, fmt.Errorf("season must be greater than zero")
	}

	var items []playerSeasonStatItem
	path := fmt.Sprintf("/stats/json/PlayerSeasonStatsByTeam/%d/%s", season, url.PathEscape(key))
	if err := c.doJSON(ctx, path, &items); err != nil {
		return nil, fmt.Errorf("fetch player season stats season=%d team=%s: %w", season, key, err)
	}

	out := make([]playerstats.SeasonStat, 0, len(items))
	for idx, item := range items {
		if err := c.validate.StructCtx(ctx, item); err != nil {
			return nil, fmt.Errorf("%w: player_season_stats[%d]: %v", ErrMalformedPayload, idx, err)
		}
		stat := playerstats.SeasonStat{
			PlayerID:               item.PlayerID,
			Name:                   strings.TrimSpace(item.Name),
			Team:                   strings.TrimSpace(item.Team),
			Games:                  item.Games,
			Minutes:                item.Minutes,
			Points:                 item.Points,
			TwoPointersMade:        item.TwoPointersMade,
			TwoPointersAttempted:   item.TwoPointersAttempted,
			ThreePointersMade:      item.ThreePointersMade,
			ThreePointersAttempted: item.ThreePointersAttempted,
			FreeThrowsMade:         item.FreeThrowsMade,
			FreeThrowsAttempted:    item.FreeThrowsAttempted,
			FreeThrowsPercentage:   item.FreeThrowsPercentage,
			Steals:                 item.Steals,
			BlockedShots:           item.BlockedShots,
		}
		if err := stat.Validate(); err != nil {
			return nil, fmt.Errorf("%w: player_season_stats[%d]: %v", ErrMalformedPayload, idx, err)
		}
		out = append(out, stat)
	}

	return out, nil
}

// FetchTeams returns the league team directory in provider order.
func (c *Client) FetchTeams(ctx context.Context) ([]team.Record, error) {
	var items []teamItem
	if err := c.doJSON(ctx, "/scores/json/teams", &items); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	out := make([]team.Record, 0, len(items))
	for idx, item := range items {
		if err := c.validate.StructCtx(ctx, item); err != nil {
			return nil, fmt.Errorf("%w: teams[%d]: %v", ErrMalformedPayload, idx, err)
		}
		record := team.Record{
			TeamID:         item.TeamID,
			Key:            strings.TrimSpace(item.Key),
			City:           strings.TrimSpace(item.City),
			Name:           strings.TrimSpace(item.Name),
			PrimaryColor:   derefString(item.PrimaryColor),
			SecondaryColor: derefString(item.SecondaryColor),
			Active:         item.Active,
		}
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("%w: teams[%d]: %v", ErrMalformedPayload, idx, err)
		}
		out = append(out, record)
	}

	return out, nil
}

func normalizeTeamKey(value string) (string, error) {
	key := strings.ToUpper(strings.TrimSpace(value))
	if key == "" {
		return "", fmt.Errorf("team key is required")
	}
	return key, nil
}

func derefInt(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

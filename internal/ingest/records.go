// Package ingest normalizes loosely-typed play-by-play source records into
// the relational schema. Every source field is optional: missing values
// degrade to NULL or zero instead of failing the load, and unknown fields
// are ignored by the JSON decoder.
package ingest

import "strings"

// TeamRecord is one entry of the teams collection.
type TeamRecord struct {
	TeamID *int64  `json:"team_id"`
	Name   *string `json:"name"`
}

// ShotRecord is a shot event nested under a player record.
type ShotRecord struct {
	ActionType *string  `json:"action_type"`
	LocX       *float64 `json:"shot_loc_x"`
	LocY       *float64 `json:"shot_loc_y"`
	Points     *int     `json:"points"`
	GameID     *int64   `json:"game_id"`
}

// PassRecord is a pass event nested under a player record. The three flags
// are independent of each other.
type PassRecord struct {
	ActionType      *string  `json:"action_type"`
	StartLocX       *float64 `json:"ball_start_loc_x"`
	StartLocY       *float64 `json:"ball_start_loc_y"`
	EndLocX         *float64 `json:"ball_end_loc_x"`
	EndLocY         *float64 `json:"ball_end_loc_y"`
	CompletedPass   *bool    `json:"completed_pass"`
	PotentialAssist *bool    `json:"potential_assist"`
	Turnover        *bool    `json:"turnover"`
	GameID          *int64   `json:"game_id"`
}

// TurnoverRecord is a standalone turnover event nested under a player record.
type TurnoverRecord struct {
	ActionType *string  `json:"action_type"`
	LocX       *float64 `json:"tov_loc_x"`
	LocY       *float64 `json:"tov_loc_y"`
	GameID     *int64   `json:"game_id"`
}

// PlayerRecord is one entry of the players collection, carrying the player's
// identity plus all of their raw events.
type PlayerRecord struct {
	PlayerID  *int64           `json:"player_id"`
	Name      *string          `json:"name"`
	TeamID    *int64           `json:"team_id"`
	Shots     []ShotRecord     `json:"shots"`
	Passes    []PassRecord     `json:"passes"`
	Turnovers []TurnoverRecord `json:"turnovers"`
}

// GameRecord is one entry of the games collection. The natural key field is
// named "id" in the source, unlike teams and players.
type GameRecord struct {
	GameID       *int64  `json:"id"`
	Date         *string `json:"date"`
	HomeTeamID   *int64  `json:"home_team_id"`
	AwayTeamID   *int64  `json:"away_team_id"`
	HomeScore    *int    `json:"home_score"`
	AwayScore    *int    `json:"away_score"`
	HomeRebounds *int    `json:"home_rebounds"`
	AwayRebounds *int    `json:"away_rebounds"`
	HomeAssists  *int    `json:"home_assists"`
	AwayAssists  *int    `json:"away_assists"`
}

// SplitName derives first/last name parts from a display name: the first
// whitespace-separated token becomes the first name, the remainder joined by
// single spaces becomes the last name. A single-token or empty name yields an
// empty last name.
func SplitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

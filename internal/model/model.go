// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

// Recognized offensive action types, stored verbatim in event rows and used
// as the grouping key for player summaries. Events carrying any other value
// are ignored by aggregation.
const (
	ActionPickAndRoll   = "pickAndRoll"
	ActionIsolation     = "isolation"
	ActionPostUp        = "postUp"
	ActionOffBallScreen = "offBallScreen"
)

// ActionTypes lists the recognized action types in summary order.
var ActionTypes = [4]string{ActionPickAndRoll, ActionIsolation, ActionPostUp, ActionOffBallScreen}

// Team represents a basketball team keyed by its source team_id.
type Team struct {
	ID     int64  `json:"-"`
	TeamID int64  `json:"teamID"`
	Name   string `json:"name"`
}

// Player represents an athlete. TeamID is nil when the source record carried
// no resolvable team reference.
type Player struct {
	ID        int64  `json:"-"`
	PlayerID  int64  `json:"playerID"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	TeamID    *int64 `json:"teamID"`
}

// Game represents a finished game with box-score level team totals.
// Date is kept as a plain YYYY-MM-DD string end to end.
type Game struct {
	ID           int64  `json:"-"`
	GameID       int64  `json:"gameID"`
	Date         string `json:"date"`
	HomeTeamID   *int64 `json:"homeTeamID"`
	AwayTeamID   *int64 `json:"awayTeamID"`
	HomeScore    int    `json:"homeScore"`
	AwayScore    int    `json:"awayScore"`
	HomeRebounds int    `json:"homeRebounds"`
	AwayRebounds int    `json:"awayRebounds"`
	HomeAssists  int    `json:"homeAssists"`
	AwayAssists  int    `json:"awayAssists"`
}

// Shot is a single field-goal attempt event.
type Shot struct {
	ID         int64
	PlayerID   int64
	ActionType string
	LocX       float64
	LocY       float64
	Points     int
	GameID     *int64
}

// Pass is a single pass event. The three flags are independent: a pass may
// be a turnover and not completed at the same time.
type Pass struct {
	ID                int64
	PlayerID          int64
	ActionType        string
	StartLocX         float64
	StartLocY         float64
	EndLocX           float64
	EndLocY           float64
	IsCompleted       bool
	IsPotentialAssist bool
	IsTurnover        bool
	GameID            *int64
}

// Turnover is a standalone turnover event, distinct from a passing turnover
// which lives on the pass row.
type Turnover struct {
	ID         int64
	PlayerID   int64
	ActionType string
	LocX       float64
	LocY       float64
	GameID     *int64
}

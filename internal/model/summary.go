package model

// ShotDetail is the wire shape of a single shot inside a summary breakdown.
type ShotDetail struct {
	Loc    [2]float64 `json:"loc"`
	Points int        `json:"points"`
}

// PassDetail is the wire shape of a single pass inside a summary breakdown.
type PassDetail struct {
	StartLoc          [2]float64 `json:"startLoc"`
	EndLoc            [2]float64 `json:"endLoc"`
	IsCompleted       bool       `json:"isCompleted"`
	IsPotentialAssist bool       `json:"isPotentialAssist"`
	IsTurnover        bool       `json:"isTurnover"`
}

// TurnoverDetail is the wire shape of a single turnover inside a summary breakdown.
type TurnoverDetail struct {
	Loc [2]float64 `json:"loc"`
}

// ActionBreakdown rolls up a single action type for one player: the six
// metrics plus the raw event lists they were computed from.
type ActionBreakdown struct {
	TotalShotAttempts     int              `json:"totalShotAttempts"`
	TotalPoints           int              `json:"totalPoints"`
	TotalPasses           int              `json:"totalPasses"`
	TotalPotentialAssists int              `json:"totalPotentialAssists"`
	TotalTurnovers        int              `json:"totalTurnovers"`
	TotalPassingTurnovers int              `json:"totalPassingTurnovers"`
	Shots                 []ShotDetail     `json:"shots"`
	Passes                []PassDetail     `json:"passes"`
	Turnovers             []TurnoverDetail `json:"turnovers"`
}

// ActionCount is the number of events attributed to an action type:
// shots + passes + turnover rows. Passing turnovers are not added again
// since each one is already counted as a pass.
func (b ActionBreakdown) ActionCount() int {
	return b.TotalShotAttempts + b.TotalPasses + b.TotalTurnovers
}

// PlayerSummary is the full playerSummary response: player identity,
// player-level totals across recognized action types, per-type event counts
// and the four per-type breakdowns. Events with an unrecognized action type
// appear nowhere in it.
type PlayerSummary struct {
	Name                  string `json:"name"`
	PlayerID              int64  `json:"playerID"`
	TotalShotAttempts     int    `json:"totalShotAttempts"`
	TotalPoints           int    `json:"totalPoints"`
	TotalPasses           int    `json:"totalPasses"`
	TotalPotentialAssists int    `json:"totalPotentialAssists"`
	TotalTurnovers        int    `json:"totalTurnovers"`
	TotalPassingTurnovers int    `json:"totalPassingTurnovers"`

	PickAndRollCount   int `json:"pickAndRollCount"`
	IsolationCount     int `json:"isolationCount"`
	PostUpCount        int `json:"postUpCount"`
	OffBallScreenCount int `json:"offBallScreenCount"`

	PickAndRoll   ActionBreakdown `json:"pickAndRoll"`
	Isolation     ActionBreakdown `json:"isolation"`
	PostUp        ActionBreakdown `json:"postUp"`
	OffBallScreen ActionBreakdown `json:"offBallScreen"`
}

package ingest

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hooplytics/playtype-stats-service/internal/model"
	"github.com/hooplytics/playtype-stats-service/internal/repository"
)

// Loader writes the three source collections into the normalized schema in
// a fixed order: teams, players with their nested events, then games.
// Team/player/game rows are insert-or-ignore on their natural keys; event
// rows are appended unconditionally. Each pass runs in its own transaction,
// so a failing pass rolls back whole while earlier passes stay committed.
type Loader struct {
	teams   repository.TeamRepository
	players repository.PlayerRepository
	games   repository.GameRepository
	events  repository.EventRepository
	tx      repository.TxManager
	log     zerolog.Logger
}

func NewLoader(
	teams repository.TeamRepository,
	players repository.PlayerRepository,
	games repository.GameRepository,
	events repository.EventRepository,
	tx repository.TxManager,
	logger zerolog.Logger,
) *Loader {
	l := logger.With().Str("module", "ingest").Str("component", "loader").Logger()
	return &Loader{teams: teams, players: players, games: games, events: events, tx: tx, log: l}
}

// Load runs the three passes to completion. Any storage failure aborts the
// current pass immediately; there are no retries.
func (l *Loader) Load(ctx context.Context, src Source) error {
	start := time.Now()
	if err := l.tx.WithinTx(ctx, func(ctx context.Context) error {
		return l.loadTeams(ctx, src.Teams)
	}); err != nil {
		l.log.Error().Err(err).Msg("team pass failed")
		return err
	}
	if err := l.tx.WithinTx(ctx, func(ctx context.Context) error {
		return l.loadPlayers(ctx, src.Players)
	}); err != nil {
		l.log.Error().Err(err).Msg("player pass failed")
		return err
	}
	if err := l.tx.WithinTx(ctx, func(ctx context.Context) error {
		return l.loadGames(ctx, src.Games)
	}); err != nil {
		l.log.Error().Err(err).Msg("game pass failed")
		return err
	}
	l.log.Info().
		Dur("took", time.Since(start)).
		Int("teams", len(src.Teams)).
		Int("players", len(src.Players)).
		Int("games", len(src.Games)).
		Msg("load completed")
	return nil
}

func (l *Loader) loadTeams(ctx context.Context, records []TeamRecord) error {
	for _, t := range records {
		team := model.Team{
			TeamID: i64Val(t.TeamID),
			Name:   strVal(t.Name),
		}
		if err := l.teams.InsertIgnore(ctx, team); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) loadPlayers(ctx context.Context, records []PlayerRecord) error {
	for _, p := range records {
		playerID := i64Val(p.PlayerID)
		name := strVal(p.Name)
		first, last := SplitName(name)

		player := model.Player{
			PlayerID:  playerID,
			FirstName: first,
			LastName:  last,
			FullName:  name,
			TeamID:    p.TeamID,
		}
		if err := l.players.InsertIgnore(ctx, player); err != nil {
			return err
		}

		for _, s := range p.Shots {
			shot := model.Shot{
				PlayerID:   playerID,
				ActionType: strVal(s.ActionType),
				LocX:       f64Val(s.LocX),
				LocY:       f64Val(s.LocY),
				Points:     intVal(s.Points),
				GameID:     s.GameID,
			}
			if err := l.events.InsertShot(ctx, shot); err != nil {
				return err
			}
		}
		for _, pr := range p.Passes {
			pass := model.Pass{
				PlayerID:          playerID,
				ActionType:        strVal(pr.ActionType),
				StartLocX:         f64Val(pr.StartLocX),
				StartLocY:         f64Val(pr.StartLocY),
				EndLocX:           f64Val(pr.EndLocX),
				EndLocY:           f64Val(pr.EndLocY),
				IsCompleted:       boolVal(pr.CompletedPass),
				IsPotentialAssist: boolVal(pr.PotentialAssist),
				IsTurnover:        boolVal(pr.Turnover),
				GameID:            pr.GameID,
			}
			if err := l.events.InsertPass(ctx, pass); err != nil {
				return err
			}
		}
		for _, t := range p.Turnovers {
			turnover := model.Turnover{
				PlayerID:   playerID,
				ActionType: strVal(t.ActionType),
				LocX:       f64Val(t.LocX),
				LocY:       f64Val(t.LocY),
				GameID:     t.GameID,
			}
			if err := l.events.InsertTurnover(ctx, turnover); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Loader) loadGames(ctx context.Context, records []GameRecord) error {
	for _, g := range records {
		game := model.Game{
			GameID:     i64Val(g.GameID),
			Date:       strVal(g.Date),
			HomeTeamID: g.HomeTeamID,
			AwayTeamID: g.AwayTeamID,
			HomeScore:  intVal(g.HomeScore),
			AwayScore:  intVal(g.AwayScore),
			// Rebounds and assists default to 0 when the source omits them.
			HomeRebounds: intVal(g.HomeRebounds),
			AwayRebounds: intVal(g.AwayRebounds),
			HomeAssists:  intVal(g.HomeAssists),
			AwayAssists:  intVal(g.AwayAssists),
		}
		if err := l.games.InsertIgnore(ctx, game); err != nil {
			return err
		}
	}
	return nil
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func i64Val(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}

func intVal(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

func f64Val(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func boolVal(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

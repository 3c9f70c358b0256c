package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hooplytics/playtype-stats-service/internal/model"
	"github.com/hooplytics/playtype-stats-service/internal/repository"
)

type summaryService struct {
	players repository.PlayerRepository
	events  repository.EventRepository
	log     zerolog.Logger
}

func NewSummaryService(players repository.PlayerRepository, events repository.EventRepository, logger zerolog.Logger) SummaryService {
	l := logger.With().Str("module", "service").Str("component", "summary").Logger()
	return &summaryService{players: players, events: events, log: l}
}

// GetPlayerSummary resolves the player's identity row, then aggregates their
// events independently per recognized action type. An unknown playerID
// surfaces repository.ErrNotFound; a known player with no events yields
// all-zero counts and empty lists. Events with an unrecognized action type
// are never fetched and therefore appear in no bucket and no total.
func (s *summaryService) GetPlayerSummary(ctx context.Context, playerID int64) (model.PlayerSummary, error) {
	start := time.Now()

	player, err := s.players.GetByPlayerID(ctx, playerID)
	if err != nil {
		if err != repository.ErrNotFound {
			s.log.Error().Err(err).Int64("player_id", playerID).Msg("resolve player failed")
		}
		return model.PlayerSummary{}, err
	}

	out := model.PlayerSummary{
		Name:     player.FullName,
		PlayerID: player.PlayerID,
	}

	for _, actionType := range model.ActionTypes {
		breakdown, err := s.aggregateAction(ctx, player.PlayerID, actionType)
		if err != nil {
			s.log.Error().Err(err).Int64("player_id", playerID).Str("action_type", actionType).Msg("aggregate action failed")
			return model.PlayerSummary{}, err
		}

		out.TotalShotAttempts += breakdown.TotalShotAttempts
		out.TotalPoints += breakdown.TotalPoints
		out.TotalPasses += breakdown.TotalPasses
		out.TotalPotentialAssists += breakdown.TotalPotentialAssists
		out.TotalTurnovers += breakdown.TotalTurnovers
		out.TotalPassingTurnovers += breakdown.TotalPassingTurnovers

		switch actionType {
		case model.ActionPickAndRoll:
			out.PickAndRoll = breakdown
			out.PickAndRollCount = breakdown.ActionCount()
		case model.ActionIsolation:
			out.Isolation = breakdown
			out.IsolationCount = breakdown.ActionCount()
		case model.ActionPostUp:
			out.PostUp = breakdown
			out.PostUpCount = breakdown.ActionCount()
		case model.ActionOffBallScreen:
			out.OffBallScreen = breakdown
			out.OffBallScreenCount = breakdown.ActionCount()
		}
	}

	s.log.Debug().Dur("took", time.Since(start)).Int64("player_id", playerID).Msg("player summary assembled")
	return out, nil
}

// aggregateAction fetches one (player, action type) slice of events and
// computes the six metrics. A passing turnover counts toward totalPasses and
// totalPassingTurnovers only; totalTurnovers counts the dedicated turnover
// table alone.
func (s *summaryService) aggregateAction(ctx context.Context, playerID int64, actionType string) (model.ActionBreakdown, error) {
	shots, err := s.events.ListShotsByAction(ctx, playerID, actionType)
	if err != nil {
		return model.ActionBreakdown{}, err
	}
	passes, err := s.events.ListPassesByAction(ctx, playerID, actionType)
	if err != nil {
		return model.ActionBreakdown{}, err
	}
	turnovers, err := s.events.ListTurnoversByAction(ctx, playerID, actionType)
	if err != nil {
		return model.ActionBreakdown{}, err
	}

	b := model.ActionBreakdown{
		TotalShotAttempts: len(shots),
		TotalPasses:       len(passes),
		TotalTurnovers:    len(turnovers),
		Shots:             make([]model.ShotDetail, 0, len(shots)),
		Passes:            make([]model.PassDetail, 0, len(passes)),
		Turnovers:         make([]model.TurnoverDetail, 0, len(turnovers)),
	}

	for _, shot := range shots {
		b.TotalPoints += shot.Points
		b.Shots = append(b.Shots, model.ShotDetail{
			Loc:    [2]float64{shot.LocX, shot.LocY},
			Points: shot.Points,
		})
	}
	for _, pass := range passes {
		if pass.IsPotentialAssist {
			b.TotalPotentialAssists++
		}
		if pass.IsTurnover {
			b.TotalPassingTurnovers++
		}
		b.Passes = append(b.Passes, model.PassDetail{
			StartLoc:          [2]float64{pass.StartLocX, pass.StartLocY},
			EndLoc:            [2]float64{pass.EndLocX, pass.EndLocY},
			IsCompleted:       pass.IsCompleted,
			IsPotentialAssist: pass.IsPotentialAssist,
			IsTurnover:        pass.IsTurnover,
		})
	}
	for _, turnover := range turnovers {
		b.Turnovers = append(b.Turnovers, model.TurnoverDetail{
			Loc: [2]float64{turnover.LocX, turnover.LocY},
		})
	}

	return b, nil
}

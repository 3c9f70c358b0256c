package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hooplytics/playtype-stats-service/internal/model"
	"github.com/hooplytics/playtype-stats-service/internal/repository"
)

// catalogService is a thin pass-through: the list endpoints carry no
// filtering or pagination contract, so there is nothing to validate here.
type catalogService struct {
	players repository.PlayerRepository
	teams   repository.TeamRepository
	games   repository.GameRepository
	log     zerolog.Logger
}

func NewCatalogService(players repository.PlayerRepository, teams repository.TeamRepository, games repository.GameRepository, logger zerolog.Logger) CatalogService {
	l := logger.With().Str("module", "service").Str("component", "catalog").Logger()
	return &catalogService{players: players, teams: teams, games: games, log: l}
}

func (s *catalogService) ListPlayers(ctx context.Context) ([]model.Player, error) {
	res, err := s.players.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list players failed")
		return nil, err
	}
	return res, nil
}

func (s *catalogService) ListTeams(ctx context.Context) ([]model.Team, error) {
	res, err := s.teams.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list teams failed")
		return nil, err
	}
	return res, nil
}

func (s *catalogService) ListGames(ctx context.Context) ([]model.Game, error) {
	res, err := s.games.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list games failed")
		return nil, err
	}
	return res, nil
}

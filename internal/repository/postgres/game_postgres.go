package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hooplytics/playtype-stats-service/internal/model"
	"github.com/hooplytics/playtype-stats-service/internal/repository"
)

type gameRepository struct{ pool *pgxpool.Pool }

func NewGameRepository(pool *pgxpool.Pool) repository.GameRepository {
	return &gameRepository{pool: pool}
}

// InsertIgnore writes a game keyed by game_id; duplicates no-op. The date
// arrives as a plain YYYY-MM-DD string and lets Postgres do the cast; an
// empty date degrades to NULL rather than failing the pass.
func (r *gameRepository) InsertIgnore(ctx context.Context, g model.Game) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	var date *string
	if g.Date != "" {
		date = &g.Date
	}
	exec := getQ(ctx, r.pool)
	_, err := exec.Exec(ctx,
		`INSERT INTO game (game_id, date, home_team_id, away_team_id, home_score, away_score,
		                   home_rebounds, away_rebounds, home_assists, away_assists)
		 VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (game_id) DO NOTHING`,
		g.GameID, date, g.HomeTeamID, g.AwayTeamID, g.HomeScore, g.AwayScore,
		g.HomeRebounds, g.AwayRebounds, g.HomeAssists, g.AwayAssists,
	)
	return repository.MapPgError(err)
}

func (r *gameRepository) List(ctx context.Context) ([]model.Game, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, game_id, COALESCE(date::text, ''), home_team_id, away_team_id,
		        COALESCE(home_score, 0), COALESCE(away_score, 0),
		        COALESCE(home_rebounds, 0), COALESCE(away_rebounds, 0),
		        COALESCE(home_assists, 0), COALESCE(away_assists, 0)
		 FROM game ORDER BY id`,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]model.Game, 0, 32)
	for rows.Next() {
		var it model.Game
		if err := rows.Scan(&it.ID, &it.GameID, &it.Date, &it.HomeTeamID, &it.AwayTeamID,
			&it.HomeScore, &it.AwayScore, &it.HomeRebounds, &it.AwayRebounds,
			&it.HomeAssists, &it.AwayAssists); err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, it)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

var _ repository.GameRepository = (*gameRepository)(nil)

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hooplytics/playtype-stats-service/internal/model"
	"github.com/hooplytics/playtype-stats-service/internal/repository"
)

type playerRepository struct{ pool *pgxpool.Pool }

func NewPlayerRepository(pool *pgxpool.Pool) repository.PlayerRepository {
	return &playerRepository{pool: pool}
}

// InsertIgnore writes a player keyed by player_id; duplicates no-op.
func (r *playerRepository) InsertIgnore(ctx context.Context, p model.Player) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	_, err := exec.Exec(ctx,
		`INSERT INTO player (player_id, first_name, last_name, full_name, team_id)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (player_id) DO NOTHING`,
		p.PlayerID, p.FirstName, p.LastName, p.FullName, p.TeamID,
	)
	return repository.MapPgError(err)
}

func (r *playerRepository) GetByPlayerID(ctx context.Context, playerID int64) (model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, player_id, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(full_name, ''), team_id
		 FROM player WHERE player_id = $1`, playerID,
	)
	var out model.Player
	if err := row.Scan(&out.ID, &out.PlayerID, &out.FirstName, &out.LastName, &out.FullName, &out.TeamID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Player{}, repository.ErrNotFound
		}
		return model.Player{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *playerRepository) List(ctx context.Context) ([]model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, player_id, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(full_name, ''), team_id
		 FROM player ORDER BY id`,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]model.Player, 0, 64)
	for rows.Next() {
		var it model.Player
		if err := rows.Scan(&it.ID, &it.PlayerID, &it.FirstName, &it.LastName, &it.FullName, &it.TeamID); err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, it)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

var _ repository.PlayerRepository = (*playerRepository)(nil)

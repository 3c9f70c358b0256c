package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hooplytics/playtype-stats-service/internal/model"
	"github.com/hooplytics/playtype-stats-service/internal/repository"
)

type teamRepository struct{ pool *pgxpool.Pool }

func NewTeamRepository(pool *pgxpool.Pool) repository.TeamRepository {
	return &teamRepository{pool: pool}
}

// InsertIgnore writes a team keyed by its natural team_id. An existing row
// with the same team_id wins: the insert silently no-ops, never updates.
// A missing name goes in as NULL; name carries a unique index and empty
// strings would collide where NULLs do not.
func (r *teamRepository) InsertIgnore(ctx context.Context, t model.Team) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	_, err := exec.Exec(ctx,
		`INSERT INTO team (team_id, name)
		 VALUES ($1, $2)
		 ON CONFLICT (team_id) DO NOTHING`,
		t.TeamID, nullIfEmpty(t.Name),
	)
	return repository.MapPgError(err)
}

func (r *teamRepository) List(ctx context.Context) ([]model.Team, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, team_id, COALESCE(name, '') FROM team ORDER BY id`,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]model.Team, 0, 32)
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.TeamID, &t.Name); err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

var _ repository.TeamRepository = (*teamRepository)(nil)

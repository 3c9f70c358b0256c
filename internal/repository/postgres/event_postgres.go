package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hooplytics/playtype-stats-service/internal/model"
	"github.com/hooplytics/playtype-stats-service/internal/repository"
)

// eventRepository handles the three append-only event tables. Unlike team,
// player and game there is no natural key here: inserting the same source
// event twice produces two rows, which is why a full reload must go through
// the schema manager first.
type eventRepository struct{ pool *pgxpool.Pool }

func NewEventRepository(pool *pgxpool.Pool) repository.EventRepository {
	return &eventRepository{pool: pool}
}

func (r *eventRepository) InsertShot(ctx context.Context, s model.Shot) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	_, err := exec.Exec(ctx,
		`INSERT INTO shot (player_id, action_type, loc_x, loc_y, points, game_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.PlayerID, nullIfEmpty(s.ActionType), s.LocX, s.LocY, s.Points, s.GameID,
	)
	return repository.MapPgError(err)
}

func (r *eventRepository) InsertPass(ctx context.Context, p model.Pass) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	_, err := exec.Exec(ctx,
		`INSERT INTO pass (player_id, action_type, start_loc_x, start_loc_y,
		                   end_loc_x, end_loc_y, is_completed, is_potential_assist, is_turnover, game_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.PlayerID, nullIfEmpty(p.ActionType), p.StartLocX, p.StartLocY,
		p.EndLocX, p.EndLocY, p.IsCompleted, p.IsPotentialAssist, p.IsTurnover, p.GameID,
	)
	return repository.MapPgError(err)
}

func (r *eventRepository) InsertTurnover(ctx context.Context, t model.Turnover) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	_, err := exec.Exec(ctx,
		`INSERT INTO turnover (player_id, action_type, loc_x, loc_y, game_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		t.PlayerID, nullIfEmpty(t.ActionType), t.LocX, t.LocY, t.GameID,
	)
	return repository.MapPgError(err)
}

// ListShotsByAction returns a player's shots for one action type in
// insertion order. NULL numeric columns degrade to zero so the aggregation
// layer never has to branch on missing values.
func (r *eventRepository) ListShotsByAction(ctx context.Context, playerID int64, actionType string) ([]model.Shot, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, player_id, action_type, COALESCE(loc_x, 0), COALESCE(loc_y, 0), COALESCE(points, 0), game_id
		 FROM shot
		 WHERE player_id = $1 AND action_type = $2
		 ORDER BY id`,
		playerID, actionType,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]model.Shot, 0, 16)
	for rows.Next() {
		var s model.Shot
		if err := rows.Scan(&s.ID, &s.PlayerID, &s.ActionType, &s.LocX, &s.LocY, &s.Points, &s.GameID); err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

func (r *eventRepository) ListPassesByAction(ctx context.Context, playerID int64, actionType string) ([]model.Pass, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, player_id, action_type,
		        COALESCE(start_loc_x, 0), COALESCE(start_loc_y, 0),
		        COALESCE(end_loc_x, 0), COALESCE(end_loc_y, 0),
		        COALESCE(is_completed, FALSE), COALESCE(is_potential_assist, FALSE), COALESCE(is_turnover, FALSE),
		        game_id
		 FROM pass
		 WHERE player_id = $1 AND action_type = $2
		 ORDER BY id`,
		playerID, actionType,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]model.Pass, 0, 16)
	for rows.Next() {
		var p model.Pass
		if err := rows.Scan(&p.ID, &p.PlayerID, &p.ActionType,
			&p.StartLocX, &p.StartLocY, &p.EndLocX, &p.EndLocY,
			&p.IsCompleted, &p.IsPotentialAssist, &p.IsTurnover, &p.GameID); err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

func (r *eventRepository) ListTurnoversByAction(ctx context.Context, playerID int64, actionType string) ([]model.Turnover, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, player_id, action_type, COALESCE(loc_x, 0), COALESCE(loc_y, 0), game_id
		 FROM turnover
		 WHERE player_id = $1 AND action_type = $2
		 ORDER BY id`,
		playerID, actionType,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]model.Turnover, 0, 8)
	for rows.Next() {
		var t model.Turnover
		if err := rows.Scan(&t.ID, &t.PlayerID, &t.ActionType, &t.LocX, &t.LocY, &t.GameID); err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

// nullIfEmpty keeps events with no recognized action type as NULL rows
// instead of empty strings, matching how the source data marks them.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ repository.EventRepository = (*eventRepository)(nil)

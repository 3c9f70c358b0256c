package repository

import (
	"context"

	"github.com/hooplytics/playtype-stats-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// SchemaManager rebuilds the normalized schema from scratch. Reset drops all
// six tables and recreates them in dependency order; a mid-sequence failure
// leaves the store inconsistent and must abort startup before any load runs.
type SchemaManager interface {
	Reset(ctx context.Context) error
}

// TeamRepository declares persistence operations for teams.
// InsertIgnore no-ops when a row with the same team_id already exists; it
// never updates in place.
type TeamRepository interface {
	InsertIgnore(ctx context.Context, t model.Team) error
	List(ctx context.Context) ([]model.Team, error)
}

// PlayerRepository declares persistence operations for players.
// Lookups key on the natural player_id, not the surrogate id.
type PlayerRepository interface {
	InsertIgnore(ctx context.Context, p model.Player) error
	GetByPlayerID(ctx context.Context, playerID int64) (model.Player, error)
	List(ctx context.Context) ([]model.Player, error)
}

// GameRepository declares persistence operations for games.
type GameRepository interface {
	InsertIgnore(ctx context.Context, g model.Game) error
	List(ctx context.Context) ([]model.Game, error)
}

// EventRepository declares append-only writes and per-action-type reads for
// the three event tables. Events carry no uniqueness constraint: inserting
// the same source event twice produces two rows. The per-action listings
// return rows in insertion order so summary output stays stable per query.
type EventRepository interface {
	InsertShot(ctx context.Context, s model.Shot) error
	InsertPass(ctx context.Context, p model.Pass) error
	InsertTurnover(ctx context.Context, t model.Turnover) error

	ListShotsByAction(ctx context.Context, playerID int64, actionType string) ([]model.Shot, error)
	ListPassesByAction(ctx context.Context, playerID int64, actionType string) ([]model.Pass, error)
	ListTurnoversByAction(ctx context.Context, playerID int64, actionType string) ([]model.Turnover, error)
}

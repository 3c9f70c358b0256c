package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/hooplytics/playtype-stats-service/internal/repository"
)

// dropStatements tear the schema down leaf-first. CASCADE keeps the drops
// safe even if a dependent table somehow survived a previous run.
var dropStatements = []string{
	`DROP TABLE IF EXISTS shot CASCADE`,
	`DROP TABLE IF EXISTS pass CASCADE`,
	`DROP TABLE IF EXISTS turnover CASCADE`,
	`DROP TABLE IF EXISTS game CASCADE`,
	`DROP TABLE IF EXISTS player CASCADE`,
	`DROP TABLE IF EXISTS team CASCADE`,
}

// createStatements build the schema in dependency order: team before player
// and game, players before the event tables. Event tables reference players
// by natural key; game_id on events is intentionally unconstrained.
var createStatements = []string{
	`CREATE TABLE team (
		id SERIAL PRIMARY KEY,
		team_id INT UNIQUE,
		name TEXT UNIQUE
	)`,
	`CREATE TABLE player (
		id SERIAL PRIMARY KEY,
		player_id INT UNIQUE,
		first_name TEXT,
		last_name TEXT,
		full_name TEXT,
		team_id INT REFERENCES team(team_id)
	)`,
	`CREATE TABLE game (
		id SERIAL PRIMARY KEY,
		game_id INT UNIQUE,
		date DATE,
		home_team_id INT REFERENCES team(team_id),
		away_team_id INT REFERENCES team(team_id),
		home_score INT,
		away_score INT,
		home_rebounds INT,
		away_rebounds INT,
		home_assists INT,
		away_assists INT
	)`,
	`CREATE TABLE shot (
		id SERIAL PRIMARY KEY,
		player_id INT REFERENCES player(player_id),
		action_type TEXT,
		loc_x FLOAT,
		loc_y FLOAT,
		points INT,
		game_id INT
	)`,
	`CREATE TABLE pass (
		id SERIAL PRIMARY KEY,
		player_id INT REFERENCES player(player_id),
		action_type TEXT,
		start_loc_x FLOAT,
		start_loc_y FLOAT,
		end_loc_x FLOAT,
		end_loc_y FLOAT,
		is_completed BOOLEAN,
		is_potential_assist BOOLEAN,
		is_turnover BOOLEAN,
		game_id INT
	)`,
	`CREATE TABLE turnover (
		id SERIAL PRIMARY KEY,
		player_id INT REFERENCES player(player_id),
		action_type TEXT,
		loc_x FLOAT,
		loc_y FLOAT,
		game_id INT
	)`,
}

type schemaManager struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewSchemaManager builds the drop-and-recreate schema manager. Reset wipes
// all loaded data; it is meant to run exactly once, before the loader.
func NewSchemaManager(pool *pgxpool.Pool, logger zerolog.Logger) repository.SchemaManager {
	l := logger.With().Str("module", "repository").Str("component", "schema").Logger()
	return &schemaManager{pool: pool, log: l}
}

// Reset drops and recreates all six tables inside one transaction, so a
// failure mid-sequence rolls back instead of leaving a half-built schema.
func (m *schemaManager) Reset(ctx context.Context) error {
	if err := ensurePool(m.pool); err != nil {
		return err
	}
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return repository.MapPgError(err)
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	for _, stmt := range dropStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return repository.MapPgError(err)
		}
	}
	for _, stmt := range createStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return repository.MapPgError(err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return repository.MapPgError(err)
	}
	m.log.Info().Msg("schema dropped and recreated")
	return nil
}

var _ repository.SchemaManager = (*schemaManager)(nil)

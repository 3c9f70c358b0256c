// Command server runs the play-type stats service: it rebuilds the schema,
// loads the three source collections and only then starts serving the API.
//
// Usage:
//
//	server serve --config config.yaml
//	server serve --teams teams.json --players players.json --games games.json
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/hooplytics/playtype-stats-service/internal/config"
	"github.com/hooplytics/playtype-stats-service/internal/handler"
	"github.com/hooplytics/playtype-stats-service/internal/ingest"
	"github.com/hooplytics/playtype-stats-service/internal/logger"
	"github.com/hooplytics/playtype-stats-service/internal/repository"
	"github.com/hooplytics/playtype-stats-service/internal/repository/postgres"
	"github.com/hooplytics/playtype-stats-service/internal/service"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	var (
		configPath  string
		teamsPath   string
		playersPath string
		gamesPath   string
	)

	root := &cobra.Command{
		Use:   "server",
		Short: "Play-type basketball stats service",
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Rebuild the schema, load source data and serve the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath, teamsPath, playersPath, gamesPath)
		},
	}
	serve.Flags().StringVar(&configPath, "config", "config.yaml", "path to YAML config")
	serve.Flags().StringVar(&teamsPath, "teams", "", "teams collection path (overrides config)")
	serve.Flags().StringVar(&playersPath, "players", "", "players collection path (overrides config)")
	serve.Flags().StringVar(&gamesPath, "games", "", "games collection path (overrides config)")
	root.AddCommand(serve)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, teamsPath, playersPath, gamesPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config loading failed: %w", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	if teamsPath != "" {
		cfg.Data.Teams = teamsPath
	}
	if playersPath != "" {
		cfg.Data.Players = playersPath
	}
	if gamesPath != "" {
		cfg.Data.Games = gamesPath
	}

	repo, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Error().Err(err).Msg("postgres connection failed")
		return err
	}
	defer repo.Close()
	pool := repo.Pool()

	// Startup is strictly ordered: reset the schema, finish the load, then
	// serve. A failure at any step is fatal; the API never serves partial or
	// stale data from a broken load.
	schema := postgres.NewSchemaManager(pool, appLogger)
	if err := schema.Reset(ctx); err != nil {
		appLogger.Error().Err(err).Msg("schema reset failed")
		return err
	}

	src, err := readSource(cfg.Data)
	if err != nil {
		appLogger.Error().Err(err).Msg("reading source collections failed")
		return err
	}

	teams := postgres.NewTeamRepository(pool)
	players := postgres.NewPlayerRepository(pool)
	games := postgres.NewGameRepository(pool)
	events := postgres.NewEventRepository(pool)
	tx := postgres.NewTxManager(pool)

	loader := ingest.NewLoader(teams, players, games, events, tx, appLogger)
	if err := loader.Load(ctx, src); err != nil {
		appLogger.Error().Err(err).Msg("load failed")
		return err
	}

	if cfg.Logger.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	summarySvc := service.NewSummaryService(players, events, appLogger)
	catalogSvc := service.NewCatalogService(players, teams, games, appLogger)
	handler.Register(router, postgres.NewPinger(pool), summarySvc, catalogSvc)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: corsHandler.Handler(router),
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().Int("port", cfg.Server.Port).Msg("🚀 Service started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		appLogger.Info().Msg("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			appLogger.Error().Err(err).Msg("graceful shutdown failed")
			return err
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error().Err(err).Msg("http server failed")
			return err
		}
		return nil
	}
}

// readSource opens the configured collection files and decodes them. A
// missing path means that collection simply loads as empty.
func readSource(data config.DataConfig) (ingest.Source, error) {
	var readers [3]io.Reader
	paths := [3]string{data.Teams, data.Players, data.Games}
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()
	for i, path := range paths {
		if path == "" {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return ingest.Source{}, fmt.Errorf("open %s: %w", path, err)
		}
		closers = append(closers, f)
		readers[i] = f
	}
	return ingest.ReadSource(readers[0], readers[1], readers[2])
}

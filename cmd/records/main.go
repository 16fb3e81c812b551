// Package main is the entry point for the academic records service CLI.
//
// The binary wires the full stack together and exposes a small set of
// administrative subcommands:
//
//	records migrate            apply pending schema migrations (default)
//	records status             show migration status
//	records transcript -nim N  print a student's transcript as JSON
//
// Architecture follows Clean Architecture and DDD:
// - Domain: pure business logic without external dependencies
// - Application: use-case orchestration (Commands/Queries)
// - Infrastructure: repositories over PostgreSQL, optional Redis cache
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campus-hub/academic-records/config"
	"github.com/campus-hub/academic-records/internal/application/query"
	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/internal/domain/student"
	"github.com/campus-hub/academic-records/internal/infrastructure/persistence/postgres"
	"github.com/campus-hub/academic-records/internal/infrastructure/persistence/redis"
	"github.com/campus-hub/academic-records/pkg/logger"
	"github.com/campus-hub/academic-records/pkg/retry"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cmd, nim, err := parseArgs(args)
	if err != nil {
		return err
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 1. LOAD CONFIGURATION
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. SET UP LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	log := setupLogger(cfg)
	ctx = logger.WithContext(ctx, log)
	log.Info("starting academic records service",
		logger.String("env", string(cfg.App.Environment)),
		logger.Bool("debug", cfg.App.Debug),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. CONNECT TO DATABASE (PostgreSQL)
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("connecting to database...")

	dbCfg := postgres.DefaultConfig(cfg.Database.URL)
	dbCfg.MaxConns = cfg.Database.MaxConns
	dbCfg.MinConns = cfg.Database.MinConns
	dbCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime
	dbCfg.MaxConnIdleTime = cfg.Database.ConnMaxIdleTime

	var conn *postgres.Connection
	connectCfg := retry.DefaultConfig()
	connectCfg.MaxAttempts = cfg.Database.ConnectAttempts
	connectCfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		log.Warn("database connection failed, retrying",
			logger.Int("attempt", attempt),
			logger.Duration("delay", delay),
			logger.Err(err),
		)
	}
	err = retry.Do(ctx, connectCfg, func(ctx context.Context) error {
		conn, err = postgres.NewConnection(ctx, dbCfg)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		log.Info("closing database connection...")
		conn.Close()
	}()
	log.Info("database connection established")

	// ─────────────────────────────────────────────────────────────────────────
	// 4. RUN MIGRATIONS
	// ─────────────────────────────────────────────────────────────────────────
	migrator := postgres.NewMigrator(conn)

	switch cmd {
	case "status":
		return printMigrationStatus(ctx, migrator)
	case "migrate":
		log.Info("running database migrations...")
		if err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("migrations completed")
		return nil
	}

	// The transcript subcommand needs the full stack. Migrations are still
	// applied first so a fresh database works out of the box.
	log.Info("running database migrations...")
	if err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. INITIALIZE REDIS (optional)
	// ─────────────────────────────────────────────────────────────────────────
	var transcriptCache grade.TranscriptCache
	if cfg.Redis.Enabled {
		log.Info("connecting to Redis...")
		cache, err := redis.NewCache(ctx, redis.DefaultConfig(cfg.Redis.URL))
		if err != nil {
			log.Warn("failed to connect to Redis, caching disabled", logger.Err(err))
		} else {
			defer cache.Close()
			transcriptCache = redis.NewTranscriptCache(cache)
			log.Info("Redis connection established")
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 6. INITIALIZE REPOSITORIES
	// ─────────────────────────────────────────────────────────────────────────
	studentRepo := postgres.NewStudentRepository(conn)
	gradeRepo := postgres.NewGradeRepository(conn, studentRepo)

	// ─────────────────────────────────────────────────────────────────────────
	// 7. INITIALIZE QUERY HANDLERS AND DISPATCH
	// ─────────────────────────────────────────────────────────────────────────
	transcriptHandler := query.NewGetTranscriptHandler(gradeRepo, transcriptCache, log)

	return printTranscript(ctx, studentRepo, transcriptHandler, nim)
}

// ══════════════════════════════════════════════════════════════════════════════
// SUBCOMMANDS
// ══════════════════════════════════════════════════════════════════════════════

// parseArgs resolves the subcommand and its flags. With no arguments the
// binary behaves as "migrate", which keeps deployments a single step.
func parseArgs(args []string) (cmd, nim string, err error) {
	cmd = "migrate"
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "migrate", "status":
		return cmd, "", nil
	case "transcript":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		nimFlag := fs.String("nim", "", "student identification number")
		// ExitOnError: parse failures terminate the process with usage output.
		_ = fs.Parse(args)
		if *nimFlag == "" {
			return "", "", fmt.Errorf("transcript requires -nim")
		}
		return cmd, *nimFlag, nil
	default:
		return "", "", fmt.Errorf("unknown command %q (want migrate, status or transcript)", cmd)
	}
}

func printMigrationStatus(ctx context.Context, migrator *postgres.Migrator) error {
	status, err := migrator.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	for _, m := range status {
		state := "pending"
		if m.IsApplied {
			state = fmt.Sprintf("applied at %s", m.AppliedAt.Format("2006-01-02 15:04:05"))
		}
		fmt.Printf("%3d  %-40s %s\n", m.Version, m.Name, state)
	}
	return nil
}

func printTranscript(
	ctx context.Context,
	students student.Repository,
	handler *query.GetTranscriptHandler,
	nim string,
) error {
	log := logger.FromContext(ctx)
	log.Debug("looking up student", logger.NIM(nim))

	s, err := students.GetByNIM(ctx, student.NIM(nim))
	if err != nil {
		return fmt.Errorf("failed to look up student %q: %w", nim, err)
	}

	dto, err := handler.Handle(ctx, query.GetTranscriptQuery{StudentID: s.ID})
	if err != nil {
		return fmt.Errorf("failed to build transcript: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(dto)
}

// ══════════════════════════════════════════════════════════════════════════════
// SETUP
// ══════════════════════════════════════════════════════════════════════════════

func setupLogger(cfg *config.Config) *logger.Logger {
	opts := logger.DefaultOptions()
	opts.Level = logger.ParseLevel(cfg.App.LogLevel)
	if cfg.App.Debug {
		opts.Level = logger.LevelDebug
	}
	return logger.New(opts)
}

package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib" // драйвер "pgx" для database/sql
	"github.com/pressly/goose/v3"
	"matching/internal/pkg/config"
	"matching/internal/pkg/postgres"
	"matching/migrations"
	"matching/pkg/logger"
	"matching/pkg/logger/zap_adapter"
)

// migrate [up|down|status|version]
func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	flag.Parse()
	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, command); err != nil {
		mainLog.Error("migrations failed",
			logger.NewField("command", command),
			logger.NewField("error", err),
		)
		os.Exit(1)
	}
	mainLog.Info("migrations done", logger.NewField("command", command))
}

func run(ctx context.Context, cfg *config.Database, command string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := sql.Open("pgx", postgres.DSN(cfg))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.RunContext(ctx, command, db, ".")
}

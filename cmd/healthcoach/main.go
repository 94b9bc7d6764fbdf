package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	walog "go.mau.fi/whatsmeow/util/log"
	_ "modernc.org/sqlite"

	"github.com/fardannozami/health-coach/internal/app/usecase"
	"github.com/fardannozami/health-coach/internal/config"
	"github.com/fardannozami/health-coach/internal/infra/api"
	"github.com/fardannozami/health-coach/internal/infra/sqlite"
	"github.com/fardannozami/health-coach/internal/infra/term"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Logger
	logger := newLogger(cfg)

	// 3. Device-local storage
	if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.SQLitePath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions := sqlite.NewSessionRepository(db)
	if err := sessions.InitTable(ctx); err != nil {
		log.Fatalf("Failed to init local storage: %v", err)
	}

	// 4. Backend client
	client := api.NewClient(cfg.BackendURL, api.ClientOptions{Logger: logger.Sub("API")})

	// 5. Terminal
	prompter := term.NewPrompter(os.Stdin, os.Stdout)
	opener := term.NewLinkOpener(os.Stdout, cfg.ShowQR)

	// 6. Use Cases
	a := &app{
		cfg:          cfg,
		out:          os.Stdout,
		prompter:     prompter,
		registration: usecase.NewRegistrationUsecase(client, sessions, logger.Sub("Register")),
		dailyLog:     usecase.NewDailyLogUsecase(client, sessions, logger.Sub("DailyLog")),
		reports:      usecase.NewHealthReportUsecase(client, sessions, prompter, logger.Sub("Reports")),
		workouts:     usecase.NewWorkoutPlanUsecase(client, sessions, prompter, opener, cfg.VideoSearchURL, logger.Sub("Workouts")),
		profile:      usecase.NewProfileUsecase(client, sessions, logger.Sub("Profile")),
	}

	code := a.run(ctx, os.Args[1:])
	stop()
	db.Close()
	os.Exit(code)
}

func newLogger(cfg config.Config) walog.Logger {
	if cfg.LogFormat == "json" {
		level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
		if err != nil || cfg.LogLevel == "" {
			level = zerolog.InfoLevel
		}
		zl := zerolog.New(os.Stderr).Level(level).With().Timestamp().Str("app", "healthcoach").Logger()
		return walog.Zerolog(zl)
	}
	return walog.Stdout("Client", cfg.LogLevel, cfg.LogColor)
}

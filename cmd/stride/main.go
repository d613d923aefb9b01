package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arlo/stride/internal/api"
	"github.com/arlo/stride/internal/auth"
	"github.com/arlo/stride/internal/config"
	"github.com/arlo/stride/internal/database"
	"github.com/arlo/stride/internal/database/repository"
	"github.com/arlo/stride/internal/service"
	"github.com/arlo/stride/internal/toast"
	"github.com/arlo/stride/internal/tui"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:           "stride",
		Short:         "Stride is a personal training companion for your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "reset",
			Short: "Wipe all local data and reseed the defaults",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runReset(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "demo",
			Short: "Print the demo account credentials",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("email:    %s\npassword: %s\n", database.DemoEmail, database.DemoPassword)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(version)
			},
		},
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runApp(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// first run: mint a signing secret and persist it
	if cfg.Session.Secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return fmt.Errorf("generate session secret: %w", err)
		}
		cfg.Session.Secret = hex.EncodeToString(buf)
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("persist session secret: %w", err)
		}
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	log, closeLog := newLogger(cfg)
	defer closeLog()

	users := repository.NewUserRepo(db)
	profiles := repository.NewProfileRepo(db)
	sessions := repository.NewSessionRepo(db)
	plans := repository.NewPlanRepo(db)
	exercises := repository.NewExerciseRepo(db)
	workoutLog := repository.NewWorkoutLogRepo(db)
	chat := repository.NewChatRepo(db)

	client := api.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutMS)*time.Millisecond, log)
	provider := auth.NewProvider(users, profiles, sessions, []byte(cfg.Session.Secret), client, log)
	toasts := toast.New(time.Duration(cfg.UI.ToastDurationMS) * time.Millisecond)

	services := tui.Services{
		Plan:  &service.PlanService{Plans: plans, Exercises: exercises, Log: workoutLog},
		Coach: &service.CoachService{Chat: chat, Client: client},
	}

	p := tea.NewProgram(tui.New(ctx, cfg, provider, toasts, services), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func runReset(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Reset(db); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	fmt.Println("local data wiped and reseeded")
	return nil
}

func openDatabase(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return db, nil
}

// newLogger writes structured logs to a file next to the database.
// The TUI owns the terminal, so nothing may log to stdout or stderr.
func newLogger(cfg config.Config) (*slog.Logger, func()) {
	path := filepath.Join(filepath.Dir(cfg.Database.Path), "stride.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo})), func() { f.Close() }
}

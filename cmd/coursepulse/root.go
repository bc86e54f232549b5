package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ganot/coursepulse/internal/config"
	"github.com/ganot/coursepulse/internal/domain/engagement"
	"github.com/ganot/coursepulse/internal/domain/progress"
	"github.com/ganot/coursepulse/internal/sqlite"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "coursepulse",
	Short:         "Learner progress and engagement analytics",
	Long:          "coursepulse computes course completion, popularity rankings and engagement series from a learning platform store.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides COURSEPULSE_CONFIG_PATH)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COURSEPULSE_DB_PATH)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(popularityCmd)
	rootCmd.AddCommand(engagementCmd)
	rootCmd.AddCommand(importCmd)
}

// app is the wiring shared by every subcommand.
type app struct {
	cfg        config.Config
	logger     *slog.Logger
	db         *sqlite.DB
	catalog    *sqlite.CatalogRepository
	records    *sqlite.ProgressRepository
	sessions   *sqlite.SessionRepository
	progress   *progress.Service
	engagement *engagement.Service
	closers    []namedCloser
	// logFile is the logger's own sink, so it is closed last and its close
	// error goes to stderr.
	logFile io.Closer
}

type namedCloser struct {
	name string
	io.Closer
}

// newApp loads configuration, opens the store and builds the services.
// Logs go to stderr, except for an HTTP server which logs to stdout. Stdout
// carries JSON-RPC in stdio mode and report output otherwise.
func newApp(cmd *cobra.Command, serving bool) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DB.Path = p
	}

	a := &app{cfg: cfg}

	logWriter := io.Writer(os.Stderr)
	if serving && cfg.Transport.Mode == "http" {
		logWriter = os.Stdout
	}

	if cfg.Log.Path != "" {
		fileWriter, file, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			a.logFile = file
			logWriter = fileWriter
		}
	}
	a.logger = slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to prepare database path: %w", err)
	}
	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.db = db
	a.closers = append(a.closers, namedCloser{name: "database", Closer: db})

	if err := db.RunMigrations(); err != nil {
		a.Close()
		return nil, err
	}

	a.catalog = sqlite.NewCatalogRepository(db)
	a.records = sqlite.NewProgressRepository(db)
	a.sessions = sqlite.NewSessionRepository(db)
	a.progress = progress.NewService(a.catalog, a.records, a.logger)
	a.engagement = engagement.NewService(a.sessions, a.logger)
	return a, nil
}

// Close releases resources in reverse order of opening, then the log file.
// Failures are logged at warn level.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("failed to close resource", "resource", a.closers[i].name, "error", err)
		}
	}
	a.closers = nil

	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "log file close error: %v\n", err)
		}
		a.logFile = nil
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

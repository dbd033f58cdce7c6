package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/swimlane/internal/app"
	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/database"
	"github.com/thenoetrevino/swimlane/internal/logging"
	"github.com/thenoetrevino/swimlane/internal/tui"
	"github.com/thenoetrevino/swimlane/internal/watch"
)

// Launch starts the TUI application
func Launch(parent context.Context) error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	if parent == nil {
		parent = context.Background()
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbPath, err := cfg.Board.DatabasePath()
	if err != nil {
		return fmt.Errorf("failed to resolve database path: %w", err)
	}

	db, err := database.InitDB(ctx, dbPath, cfg.Board.DefaultColumns())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// database cleanup
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	application := app.New(db, app.WithConfig(cfg))

	// Writes by the CLI in another process reload the board. The board
	// still works without them.
	var opts []tui.Option
	watcher, err := watch.New(dbPath)
	if err != nil {
		slog.Warn("failed to watch database, continuing without live updates", "path", dbPath, "error", err)
	} else {
		defer func() {
			if err := watcher.Close(); err != nil {
				slog.Error("error closing watcher", "error", err)
			}
		}()
		opts = append(opts, tui.WithChanges(watcher.Run(ctx)))
	}

	model, err := tui.New(ctx, application, opts...)
	if err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// Give in-flight saves a moment before the database closes
		select {
		case <-errChan:
		case <-time.After(2 * time.Second):
		}
	}

	return nil
}

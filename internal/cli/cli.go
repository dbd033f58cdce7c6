package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/swimlane/internal/app"
	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/database"
)

type contextKey string

const appKey contextKey = "swimlane.app"

// WithApp stores an already built App in ctx; NewCLI picks it up instead of
// opening the database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	db  *sql.DB  // nil when the App was injected
	ctx context.Context
}

// NewCLI loads the configuration and opens the board database
func NewCLI(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, ctx: ctx}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbPath, err := cfg.Board.DatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	db, err := database.InitDB(ctx, dbPath, cfg.Board.DefaultColumns())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App: app.New(db, app.WithConfig(cfg)),
		db:  db,
		ctx: ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if err := c.App.Close(); err != nil {
		return err
	}
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

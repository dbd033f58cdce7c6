package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/database"
	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/kanban"
	boardservice "github.com/thenoetrevino/swimlane/internal/services/board"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Board change notifications, shared by every container the app opens
	eventClient events.EventPublisher

	logger *slog.Logger
	config *config.Config

	// Service layer (business logic)
	BoardService boardservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.eventClient == nil {
		cfg.eventClient = events.NewBus()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.config == nil {
		cfg.config = config.DefaultConfig()
	}

	repo := database.NewRepository(db)
	return &App{
		repo:         repo,
		eventClient:  cfg.eventClient,
		logger:       cfg.logger,
		config:       cfg.config,
		BoardService: boardservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Events returns the publisher board containers report to
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Config returns the user configuration
func (a *App) Config() *config.Config {
	return a.config
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// ContainerOptions returns the engine options every board container opened
// by the app shares: configured sensors and orientation, the app's event
// publisher and logger.
func (a *App) ContainerOptions() []kanban.Option {
	orientation := kanban.Horizontal
	if a.config.Board.Orientation == "vertical" {
		orientation = kanban.Vertical
	}
	return []kanban.Option{
		kanban.WithSensors(a.config.Sensors.DndSensors(nil)),
		kanban.WithOrientation(orientation),
		kanban.WithEventPublisher(a.eventClient),
		kanban.WithLogger(a.logger),
	}
}

// Close performs cleanup of application resources.
// The database handle is owned by whoever opened it.
func (a *App) Close() error {
	return nil
}

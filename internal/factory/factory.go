package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/betalabs/feedback-intake/internal/dependencies/clock"
	"github.com/betalabs/feedback-intake/internal/mirror"
	"github.com/betalabs/feedback-intake/internal/services/auth"
	"github.com/betalabs/feedback-intake/internal/services/submission"
	"github.com/betalabs/feedback-intake/internal/storage"
	"github.com/betalabs/feedback-intake/internal/storage/memory"
	sqlitestorage "github.com/betalabs/feedback-intake/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage
	Clock   clock.Clock
	Mirror  mirror.Mirror

	AuthService       *auth.Service
	SubmissionService *submission.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// SQLiteConfig holds database settings (required if StorageType is "sqlite")
	SQLiteConfig *sqlitestorage.Config
	// Credentials is the tester credential store (optional)
	// If nil, the built-in beta tester accounts are used
	Credentials auth.CredentialStore
	// AuthConfig holds configuration for the auth service (optional)
	AuthConfig auth.Config
	// MirrorConfig enables the Google Sheets mirror (optional)
	// If nil, mirroring is disabled
	MirrorConfig *mirror.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeSQLite:
		sqliteCfg := sqlitestorage.DefaultConfig()
		if cfg.SQLiteConfig != nil {
			sqliteCfg = *cfg.SQLiteConfig
		}
		sqliteStore, err := sqlitestorage.New(sqliteCfg)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'sqlite'")
	}

	var m mirror.Mirror = mirror.NewDisabled()
	if cfg.MirrorConfig != nil {
		m = mirror.New(ctx, *cfg.MirrorConfig, logger)
	}

	credentials := cfg.Credentials
	if credentials == nil {
		credentials = auth.DefaultCredentials()
	}

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, m, clock.New(), credentials, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	m mirror.Mirror,
	clk clock.Clock,
	credentials auth.CredentialStore,
	authCfg auth.Config,
	logger *slog.Logger,
) *App {
	authService := auth.New(credentials, clk, authCfg, logger)
	submissionService := submission.New(store, m, clk, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Mirror:            m,
		AuthService:       authService,
		SubmissionService: submissionService,
	}
}

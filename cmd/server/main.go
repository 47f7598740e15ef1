package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/betalabs/feedback-intake/internal/api"
	"github.com/betalabs/feedback-intake/internal/factory"
	"github.com/betalabs/feedback-intake/internal/mirror"
	"github.com/betalabs/feedback-intake/internal/services/auth"
	sqlitestorage "github.com/betalabs/feedback-intake/internal/storage/sqlite"
)

type serverOptions struct {
	host            string
	port            int
	storageType     string
	dbPath          string
	spreadsheetName string
	credentialsFile string
	enableMirror    bool
	requireAuth     bool
}

func main() {
	opts := &serverOptions{}

	rootCmd := &cobra.Command{
		Use:   "feedback-server",
		Short: "Beta tester feedback intake server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&opts.host, "host", "", "Listen host")
	rootCmd.Flags().IntVar(&opts.port, "port", 8080, "Listen port")
	rootCmd.Flags().StringVar(&opts.storageType, "storage", envOrDefault("STORAGE_TYPE", factory.StorageTypeSQLite), "Storage backend: memory, sqlite")
	rootCmd.Flags().StringVar(&opts.dbPath, "db", envOrDefault("DB_PATH", "feedback.db"), "SQLite database path")
	rootCmd.Flags().StringVar(&opts.spreadsheetName, "spreadsheet", envOrDefault("SPREADSHEET_NAME", mirror.DefaultSpreadsheetName), "Target spreadsheet name")
	rootCmd.Flags().StringVar(&opts.credentialsFile, "credentials-file", envOrDefault("SERVICE_ACCOUNT_FILE", "config/service_account.json"), "Service account key file")
	rootCmd.Flags().BoolVar(&opts.enableMirror, "mirror", true, "Mirror submissions to Google Sheets when credentials resolve")
	rootCmd.Flags().BoolVar(&opts.requireAuth, "require-auth", false, "Require a session for feedback endpoints")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts *serverOptions) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := factory.Config{
		Logger:      logger,
		StorageType: opts.storageType,
		Credentials: credentialsFromEnv(logger),
	}

	if opts.storageType == factory.StorageTypeSQLite {
		cfg.SQLiteConfig = &sqlitestorage.Config{DSN: opts.dbPath}
	}

	if opts.enableMirror {
		mirrorCfg := mirror.DefaultConfig()
		mirrorCfg.SpreadsheetName = opts.spreadsheetName
		mirrorCfg.CredentialsFile = opts.credentialsFile
		if payload := os.Getenv("GOOGLE_SERVICE_ACCOUNT_KEY"); payload != "" {
			mirrorCfg.CredentialsJSON = []byte(payload)
		}
		cfg.MirrorConfig = &mirrorCfg
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := factory.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return err
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:                 logger,
		AuthService:            app.AuthService,
		SubmissionService:      app.SubmissionService,
		RequireAuthForFeedback: opts.requireAuth,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = opts.host
	serverConfig.Port = opts.port
	server := api.NewServer(router, serverConfig, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", opts.storageType),
		slog.Bool("mirror_available", app.Mirror.Available()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			return err
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}

// credentialsFromEnv parses TESTER_CREDENTIALS ("user:pass,user:pass") into a
// credential store. Returns nil when unset so the built-in accounts apply.
func credentialsFromEnv(logger *slog.Logger) auth.CredentialStore {
	raw := os.Getenv("TESTER_CREDENTIALS")
	if raw == "" {
		return nil
	}

	creds := auth.StaticCredentials{}
	for _, pair := range strings.Split(raw, ",") {
		username, secret, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || username == "" {
			logger.Warn("skipping malformed credential entry")
			continue
		}
		creds[username] = secret
	}

	if len(creds) == 0 {
		return nil
	}
	return creds
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

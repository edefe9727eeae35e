package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/digital-prison-cli/internal/adapters/audio/theme"
	"github.com/bnema/digital-prison-cli/internal/adapters/remote"
	"github.com/bnema/digital-prison-cli/internal/adapters/render/terminal"
	tomlrepo "github.com/bnema/digital-prison-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/digital-prison-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/digital-prison-cli/internal/adapters/secrets/file"
	"github.com/bnema/digital-prison-cli/internal/application"
	"github.com/bnema/digital-prison-cli/internal/observe"
	"github.com/bnema/digital-prison-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	serverURLKey      = "server.url"
	serverTimeoutKey  = "server.timeout"
	logPathKey        = "log.path"
	logLevelKey       = "log.level"
	markdownKey       = "render.markdown"
	markdownStyleKey  = "render.style"
	secretsBackendKey = "secrets.backend"
)

type app struct {
	session     *application.Session
	remote      ports.RemoteSession
	credentials *application.CredentialService
	persistence *application.Persistence
	audio       *theme.Engine
	savesPath   string
	serverURL   string
	render      terminal.RenderOptions
	logger      *slog.Logger
	logLevel    *slog.LevelVar
	logFile     io.Closer
	telemetry   *observe.Provider
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, tomlrepo.ConfigDir)

	config := viper.New()
	repo, err := tomlrepo.NewRepository(config)
	if err != nil {
		return nil, fmt.Errorf("wire saves repository: %w", err)
	}

	config.SetDefault(serverURLKey, remote.DefaultBaseURL)
	config.SetDefault(serverTimeoutKey, remote.DefaultTimeout)
	config.SetDefault(logPathKey, filepath.Join(baseDir, "client.log"))
	config.SetDefault(logLevelKey, "info")
	config.SetDefault(markdownKey, true)
	config.SetDefault(markdownStyleKey, "dark")
	config.SetDefault(secretsBackendKey, "chain")

	logLevel := new(slog.LevelVar)
	if err := logLevel.UnmarshalText([]byte(envOrDefault("PRISON_LOG_LEVEL", config.GetString(logLevelKey)))); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logFile, err := openLogFile(config.GetString(logPathKey))
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: logLevel}))

	secretStore, err := wireSecretStore(envOrDefault("PRISON_SECRETS_BACKEND", config.GetString(secretsBackendKey)), filepath.Join(baseDir, "credentials.toml"))
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}
	credentials := application.NewCredentialService(secretStore)

	telemetry, err := observe.InitProvider()
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("wire metrics: %w", err)
	}
	metrics := telemetry.Metrics
	audio := theme.New(
		theme.WithMetrics(metrics),
		theme.WithListener(func(t theme.Theme) {
			logger.Debug("sector theme changed", "sector", int(t.Sector), "theme", t.Name)
		}),
	)

	serverURL := envOrDefault("PRISON_SERVER_URL", config.GetString(serverURLKey))
	client := remote.Client{
		BaseURL:     serverURL,
		HTTPClient:  http.DefaultClient,
		Timeout:     config.GetDuration(serverTimeoutKey),
		Credentials: credentials,
		Metrics:     metrics,
		Logger:      logger.With("component", "remote"),
	}

	persistence := application.NewPersistence(repo, ports.SystemClock{})
	session := application.NewSession(application.SessionConfig{
		Remote:       client,
		Persistence:  persistence,
		Audio:        audio,
		Preprocessor: application.DefaultPreprocessor(),
		ServerLabel:  serverURL,
		Metrics:      metrics,
		Logger:       logger.With("component", "session"),
	})

	return &app{
		session:     session,
		remote:      client,
		credentials: credentials,
		persistence: persistence,
		audio:       audio,
		savesPath:   repo.Path(),
		serverURL:   serverURL,
		render: terminal.RenderOptions{
			Width:         80,
			Markdown:      config.GetBool(markdownKey),
			MarkdownStyle: config.GetString(markdownStyleKey),
		},
		logger:    logger,
		logLevel:  logLevel,
		logFile:   logFile,
		telemetry: telemetry,
	}, nil
}

// Close writes the metric totals to the debug log before the log file is
// closed.
func (a *app) Close() error {
	ctx := context.Background()
	return errors.Join(
		a.telemetry.Flush(ctx, a.logger),
		a.telemetry.Shutdown(ctx),
		a.audio.Close(),
		a.logFile.Close(),
	)
}

func wireSecretStore(backend string, credentialsPath string) (ports.SecretStore, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "chain":
		store, err := chainstore.NewPassFirstWithFileFallback(credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("wire secret store chain: %w", err)
		}
		return store, nil
	case "file":
		return filestore.NewStore(credentialsPath), nil
	default:
		return nil, fmt.Errorf("unknown secrets backend %q", backend)
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

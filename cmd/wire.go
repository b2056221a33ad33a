package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/pharmacy-intel-cli/internal/adapters/api"
	sessionfile "github.com/bnema/pharmacy-intel-cli/internal/adapters/session/file"
	"github.com/bnema/pharmacy-intel-cli/internal/application"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".pharmintel"

	baseURLKey    = "api.base_url"
	perPageKey    = "api.per_page"
	debounceMsKey = "browse.debounce_ms"
	sessionKey    = "session.path"
)

type app struct {
	sessions *application.SessionStore
	guard    application.RouteGuard
	registry *api.Client
	export   application.ExportAction
	debounce time.Duration
}

func wireApp() (*app, error) {
	cfg := viper.New()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(baseURLKey, envOrDefault("PMI_BASE_URL", "http://localhost:8000"))
	cfg.SetDefault(perPageKey, 50)
	cfg.SetDefault(debounceMsKey, 250)
	cfg.SetDefault(sessionKey, filepath.Join(homeDir, configDir, "session.toml"))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	tokenStore, err := sessionfile.NewStore(cfg.GetString(sessionKey))
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	a := &app{
		debounce: time.Duration(cfg.GetInt(debounceMsKey)) * time.Millisecond,
	}

	// The registry client reads the token through the session store so a
	// login or logout mid-process is picked up by the next request.
	a.registry = api.NewClient(
		cfg.GetString(baseURLKey),
		http.DefaultClient,
		func() string { return a.sessions.Token() },
		cfg.GetInt(perPageKey),
	)
	a.sessions = application.NewSessionStore(tokenStore, a.registry)
	a.guard = application.NewRouteGuard(a.sessions)
	a.export = application.NewExportAction(a.registry)

	return a, nil
}

// requireSession bootstraps the session once and admits only
// authenticated callers.
func (a *app) requireSession(ctx context.Context) error {
	if err := a.sessions.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap session: %w", err)
	}

	if err := a.guard.Admit(); err != nil {
		return fmt.Errorf("%w: run `pmi login` first", err)
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

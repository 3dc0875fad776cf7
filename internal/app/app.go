package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/scout/internal/catalog"
	"github.com/five82/scout/internal/config"
	"github.com/five82/scout/internal/nav"
	"github.com/five82/scout/internal/prefs"
	"github.com/five82/scout/internal/theme"
	"github.com/five82/scout/internal/ui"
)

// Options configure the Scout application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/scout/prefs.toml
	APIURL     string // overrides api_url from the config file
	Location   string // shareable location to open, e.g. "/?q=term+life"
	Query      string // shorthand for Location "/?q=<query>"
}

// Run boots the Scout TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIURL); v != "" {
		cfg.APIURL = v
	}

	start, err := StartLocation(opts.Location, opts.Query)
	if err != nil {
		return err
	}

	logger, closeLog, err := OpenLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		logger.Warn().Err(err).Msg("load prefs failed, using defaults")
	}

	client, err := catalog.NewClient(cfg.APIURL,
		catalog.WithTimeout(cfg.Timeout),
		catalog.WithRateLimit(cfg.RateLimit),
		catalog.WithLogger(logger.With().Str("component", "catalog").Logger()),
	)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	logger.Info().
		Str("api_url", client.BaseURL()).
		Str("location", start.String()).
		Str("theme", userPrefs.Theme).
		Msg("scout starting")

	err = ui.Run(ui.Options{
		Context:   ctx,
		Catalog:   client,
		Theme:     theme.NewContext(userPrefs.Variant()),
		History:   nav.NewHistory(start),
		PrefsPath: prefsPath,
		LogPath:   cfg.LogFile,
		Logger:    logger,
	})
	if err != nil {
		logger.Error().Err(err).Msg("ui exited with error")
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info().Msg("scout exiting")
	return nil
}

// StartLocation resolves the initial location from the CLI. A query takes
// precedence over a raw location; neither yields the empty search view.
func StartLocation(raw, query string) (nav.Location, error) {
	if q := strings.TrimSpace(query); q != "" {
		return nav.SearchLocation(q), nil
	}
	if strings.TrimSpace(raw) == "" {
		return nav.SearchLocation(""), nil
	}
	loc, err := nav.Parse(raw)
	if err != nil {
		return nav.Location{}, fmt.Errorf("start location: %w", err)
	}
	return loc, nil
}

// OpenLogger opens path for appending and returns a JSON zerolog logger on it.
// An empty path disables logging. The returned func closes the file.
func OpenLogger(path string, level zerolog.Level) (zerolog.Logger, func(), error) {
	if strings.TrimSpace(path) == "" {
		return zerolog.Nop(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, level), func() { _ = f.Close() }, nil
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

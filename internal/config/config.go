package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/catalog-sync/internal/app"
	"github.com/atomicstack/catalog-sync/internal/catalog"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envEndpoint   = "CATALOG_SYNC_ENDPOINT"
	envSlots      = "CATALOG_SYNC_SLOTS"
	envTimeout    = "CATALOG_SYNC_TIMEOUT"
	envWidth      = "CATALOG_SYNC_WIDTH"
	envHeight     = "CATALOG_SYNC_HEIGHT"
	envShowFooter = "CATALOG_SYNC_FOOTER"
	envTrace      = "CATALOG_SYNC_TRACE"
	envLogFile    = "CATALOG_SYNC_LOG_FILE"
)

const (
	defaultSlots   = 3
	defaultLogFile = "catalog-sync.log"
)

// LoadArgs allows tests to supply specific args/environment. Flags take
// precedence over environment variables, which take precedence over defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	var envErrs []error
	intEnv := func(key string, fallback int) int {
		v, err := envOrInt(env, key, fallback)
		envErrs = append(envErrs, err)
		return v
	}
	boolEnv := func(key string, fallback bool) bool {
		v, err := envOrBool(env, key, fallback)
		envErrs = append(envErrs, err)
		return v
	}
	durationEnv := func(key string, fallback time.Duration) time.Duration {
		v, err := envOrDuration(env, key, fallback)
		envErrs = append(envErrs, err)
		return v
	}

	fs := flag.NewFlagSet("catalog-sync", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	endpoint := fs.String("endpoint", envOrDefault(env, envEndpoint, catalog.DefaultEndpoint), "URL of the product catalog")
	slots := fs.Int("slots", intEnv(envSlots, defaultSlots), "number of display slots")
	timeout := fs.Duration("timeout", durationEnv(envTimeout, 0), "catalog request timeout (0 disables)")
	width := fs.Int("width", intEnv(envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", intEnv(envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", boolEnv(envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", boolEnv(envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, defaultLogFile), "path to the log file")

	if err := errors.Join(envErrs...); err != nil {
		return Config{}, err
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Config{
		App: app.Config{
			Endpoint:   strings.TrimSpace(*endpoint),
			Slots:      *slots,
			Timeout:    *timeout,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"endpoint": *endpoint,
			"slots":    strconv.Itoa(*slots),
			"timeout":  timeout.String(),
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) (int, error) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return parsed, nil
}

func envOrBool(env map[string]string, key string, fallback bool) (bool, error) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return parsed, nil
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) (time.Duration, error) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return parsed, nil
}

// Validate rejects values the application cannot run with.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Slots < 1 {
		return fmt.Errorf("slots must be >= 1 (got %d)", a.Slots)
	}
	if a.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	}
	if a.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", a.Height)
	}
	if a.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %s)", a.Timeout)
	}
	u, err := url.Parse(a.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint must be an absolute http(s) URL (got %q)", a.Endpoint)
	}
	return nil
}

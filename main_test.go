package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/catalog-sync/internal/app"
	"github.com/atomicstack/catalog-sync/internal/config"
	"github.com/atomicstack/catalog-sync/internal/logging"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Endpoint:   "http://localhost/products",
			Slots:      4,
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"endpoint": "http://localhost/products",
			"slots":    "4",
			"width":    "80",
			"height":   "24",
			"footer":   "true",
		},
		Args: []string{"-endpoint", "http://localhost/products"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["endpoint"] != "http://localhost/products" {
		t.Fatalf("unexpected endpoint flag %v", flagsValue["endpoint"])
	}
	if flagsValue["slots"] != "4" {
		t.Fatalf("expected slots 4, got %v", flagsValue["slots"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["slots"] != 4 {
		t.Fatalf("expected slots in payload, got %v", payload["slots"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.log")
	t.Cleanup(func() {
		logging.Configure("")
		logging.SetTraceEnabled(false)
	})
	return path
}

func TestRunConfigurationErrorExitsWithTwo(t *testing.T) {
	var stderr strings.Builder
	started := false
	code := run([]string{"-slots", "0"}, nil, &stderr, func(app.Config) error {
		started = true
		return nil
	})
	if code != 2 {
		t.Fatalf("expected exit status 2, got %d", code)
	}
	if started {
		t.Fatalf("expected app not started")
	}
	if !strings.Contains(stderr.String(), "Configuration error") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestRunPassesConfigToApp(t *testing.T) {
	logPath := useTempLog(t)
	var got app.Config
	code := run([]string{"-slots", "5", "-log-file", logPath}, nil, new(strings.Builder), func(cfg app.Config) error {
		got = cfg
		return nil
	})
	if code != 0 {
		t.Fatalf("expected exit status 0, got %d", code)
	}
	if got.Slots != 5 {
		t.Fatalf("expected 5 slots, got %d", got.Slots)
	}
	if logging.Path() != logPath {
		t.Fatalf("expected log path %q, got %q", logPath, logging.Path())
	}
}

func TestRunAppFailureExitsWithOne(t *testing.T) {
	logPath := useTempLog(t)
	var stderr strings.Builder
	code := run([]string{"-log-file", logPath}, nil, &stderr, func(app.Config) error {
		return errors.New("terminal unavailable")
	})
	if code != 1 {
		t.Fatalf("expected exit status 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "terminal unavailable") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

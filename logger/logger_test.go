package logger

import (
	"strings"
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format console, got %s", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Level: "info", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg = Config{Level: "verbose", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	} else if !strings.Contains(err.Error(), "logging.level") {
		t.Errorf("unexpected error message: %v", err)
	}

	cfg = Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestFields(t *testing.T) {
	m := Fields("op", "get_quotas", "organization", "org-1")
	if m["op"] != "get_quotas" || m["organization"] != "org-1" {
		t.Errorf("unexpected fields map: %v", m)
	}

	// Odd trailing value is ignored.
	m = Fields("only")
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
}

func TestWithComponent(t *testing.T) {
	log := Nop().WithComponent("account")
	// Must not panic and must stay chainable.
	log.WithFields(map[string]interface{}{"k": "v"}).Debug("noop")
	log.WithError(nil).Info("noop")
}

func TestGlobalLogger(t *testing.T) {
	SetGlobalLogger(Nop())
	defer SetGlobalLogger(nil)

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	if GetGlobalLogger() == nil {
		t.Fatal("global logger should never be nil")
	}
}

package logging

import (
	"testing"

	"github.com/aiql-org/aiql-core/internal/config"
)

func TestNew(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "debug", Development: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger == nil {
		t.Fatal("New() returned nil logger")
	}
	logger.Debug("debug logging enabled")
	_ = logger.Sync()
}

func TestNewDefaultLevel(t *testing.T) {
	logger, err := New(config.LoggingConfig{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger.Core().Enabled(-1) { // -1 is zapcore.DebugLevel
		t.Error("default level should not enable debug")
	}
}

func TestNewUnknownLevel(t *testing.T) {
	if _, err := New(config.LoggingConfig{Level: "verbose"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

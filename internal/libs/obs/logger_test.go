package obs

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{"info level", "info", zerolog.InfoLevel},
		{"debug level", "debug", zerolog.DebugLevel},
		{"warn level", "warn", zerolog.WarnLevel},
		{"empty defaults to info", "", zerolog.InfoLevel},
		{"invalid level defaults to info", "invalid", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level)
			if zerolog.GlobalLevel() != tt.expected {
				t.Errorf("expected level %v, got %v", tt.expected, zerolog.GlobalLevel())
			}
		})
	}
}

func TestLogger(t *testing.T) {
	logger := Logger("test-component")

	ctx := logger.With().Logger().GetLevel()
	if ctx == zerolog.Disabled {
		t.Error("logger should not be disabled")
	}
}

func TestNewLogger(t *testing.T) {
	InitLogger("info")

	var buf bytes.Buffer
	logger := NewLogger(&buf, "cli")
	logger.Info().Str("catalog", "default").Msg("loaded")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["component"] != "cli" {
		t.Errorf("expected component=cli, got %v", entry["component"])
	}
	if entry["message"] != "loaded" {
		t.Errorf("expected message=loaded, got %v", entry["message"])
	}
}

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	return result
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test-service"}, &buf)
	log.Info().Msg("test message")

	result := decode(t, &buf)
	assert.Equal(t, "info", result["level"])
	assert.Equal(t, "test message", result["message"])
	assert.Equal(t, "test-service", result["service"])
	assert.NotEmpty(t, result["time"])
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console", ServiceName: "test-service"}, &buf)
	log.Info().Msg("test message")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "INF")
}

func TestNewLogger_LogLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logged at debug level", "debug", "debug", true},
		{"debug NOT logged at info level", "info", "debug", false},
		{"warn logged at info level", "info", "warn", true},
		{"info NOT logged at warn level", "warn", "info", false},
		{"warn NOT logged at error level", "error", "warn", false},
		{"invalid level falls back to info", "loud", "info", true},
		{"empty level falls back to info", "", "debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithOutput(Config{Level: tt.configLevel, Format: "json"}, &buf)

			switch tt.logLevel {
			case "debug":
				log.Debug().Msg("test")
			case "info":
				log.Info().Msg("test")
			case "warn":
				log.Warn().Msg("test")
			}

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String(), "expected log output")
			} else {
				assert.Empty(t, buf.String(), "expected no log output")
			}
		})
	}
}

func TestNewLogger_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", EnableCaller: true}, &buf)
	log.Info().Msg("test")

	result := decode(t, &buf)
	require.Contains(t, result, "caller")
	assert.Contains(t, result["caller"].(string), "logger_test.go")
}

func TestLogger_ContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json"}, &buf)

	log.WithComponent("persister").
		WithRoute("NYC", "LON").
		WithRequestID("req-123").
		Info().
		Msg("trip stored")

	result := decode(t, &buf)
	assert.Equal(t, "persister", result["component"])
	assert.Equal(t, "NYC", result["origin"])
	assert.Equal(t, "LON", result["destination"])
	assert.Equal(t, "req-123", result["request_id"])
}

func TestNop(t *testing.T) {
	log := Nop()

	assert.NotPanics(t, func() {
		log.Error().Str("origin", "NYC").Msg("this should not appear")
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.EnableCaller)
	assert.Equal(t, "qpx-trips", cfg.ServiceName)
}

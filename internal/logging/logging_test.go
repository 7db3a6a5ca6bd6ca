package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agilomatrix/Trolley-List/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"", "INFO"},
		{"bogus", "INFO"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input).String(), "level %q", tt.input)
	}
}

func TestInitWithWriterTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := InitWithWriter(config.LoggingConfig{Level: "info", Format: "text"}, false, &buf)

	logger.Info("generation complete", "pages", 3)

	assert.Contains(t, buf.String(), "generation complete")
	assert.Contains(t, buf.String(), "pages=3")
}

func TestInitWithWriterJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := InitWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, false, &buf)

	logger.Info("generation complete", "pages", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "generation complete", entry["msg"])
	assert.Equal(t, float64(3), entry["pages"])
}

func TestVerboseForcesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := InitWithWriter(config.LoggingConfig{Level: "error", Format: "text"}, true, &buf)

	logger.Debug("pipeline step")

	assert.Contains(t, buf.String(), "pipeline step")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := InitWithWriter(config.LoggingConfig{Level: "warn", Format: "text"}, false, &buf)

	logger.Info("suppressed")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "suppressed")
	assert.Contains(t, buf.String(), "kept")
}

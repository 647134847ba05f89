package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "unknown", input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger_JSON(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, slog.LevelDebug, "json"))

	LogError(errors.New("boom"), "generation failed", Fields{"scenario": "default", "seed": 42})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "generation failed", line["msg"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "default", line["scenario"])
	assert.EqualValues(t, 42, line["seed"])
}

func TestSetupLogger_LevelFilters(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, slog.LevelInfo, "console"))

	LogDebug("hidden", nil)
	assert.Empty(t, buf.String())

	LogInfo("visible", Fields{"b": 2, "a": 1})
	out := buf.String()
	assert.Contains(t, out, "msg=visible")
	assert.Less(t, bytes.Index([]byte(out), []byte("a=1")), bytes.Index([]byte(out), []byte("b=2")))
}

func TestSetupLogger_InvalidFormat(t *testing.T) {
	err := SetupLogger(&bytes.Buffer{}, slog.LevelInfo, "xml")
	assert.EqualError(t, err, "invalid log format: xml")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/scenario"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("FINSECURE_TEST_DIR", "/tmp/finsecure")

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "~", want: home},
		{input: "~/exports", want: filepath.Join(home, "exports")},
		{input: "$FINSECURE_TEST_DIR/out", want: "/tmp/finsecure/out"},
		{input: "/abs/path", want: "/abs/path"},
		{input: "relative/~/path", want: "relative/~/path"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}

func TestOutputDir(t *testing.T) {
	base := t.TempDir()
	dir, err := OutputDir(filepath.Join(base, "nested", "exports"))
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadScenario_Defaults(t *testing.T) {
	cfg, err := LoadScenario(viper.New())
	require.NoError(t, err)
	assert.Equal(t, scenario.Default(), cfg)
}

func TestLoadScenario_Overrides(t *testing.T) {
	v := viper.New()
	v.Set(KeyPreset, scenario.PresetQuiet)
	v.Set(KeySeed, 42)
	v.Set(KeyTransactions, 75)
	v.Set(KeyFraudProbability, 0.3)
	v.Set(KeyAmountMin, "10.50")
	v.Set(KeyAmountMax, "999")
	v.Set(KeyStartMonth, "2025-03")
	v.Set(KeyChurnThreshold, 0.8)

	cfg, err := LoadScenario(v)
	require.NoError(t, err)

	assert.Equal(t, scenario.PresetQuiet, cfg.Name)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, 75, cfg.TransactionCount)
	assert.InDelta(t, 0.3, cfg.FraudProbability, 1e-12)
	assert.True(t, decimal.RequireFromString("10.50").Equal(cfg.AmountRange.Min))
	assert.True(t, decimal.NewFromInt(999).Equal(cfg.AmountRange.Max))
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), cfg.StartMonth)
	assert.InDelta(t, 0.8, cfg.KPI.ChurnThreshold, 1e-12)
	// Untouched keys keep the preset's values.
	assert.Equal(t, 20, cfg.CustomerCount)
}

func TestLoadScenario_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		values  map[string]any
		name    string
	}{
		{name: "unknown preset", values: map[string]any{KeyPreset: "chaos"}, wantErr: common.ErrUnknownScenario},
		{name: "probability out of range", values: map[string]any{KeyFraudProbability: 1.5}, wantErr: common.ErrInvalidParameter},
		{name: "bad amount", values: map[string]any{KeyAmountMin: "lots"}, wantErr: common.ErrInvalidParameter},
		{name: "bad month", values: map[string]any{KeyStartMonth: "January"}, wantErr: common.ErrInvalidParameter},
		{name: "inverted amounts", values: map[string]any{KeyAmountMin: "500", KeyAmountMax: "10"}, wantErr: common.ErrInvalidRange},
		{name: "zero tickets", values: map[string]any{KeyTickets: 0}, wantErr: common.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.values {
				v.Set(k, val)
			}
			_, err := LoadScenario(v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth(" 2024-01-20 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseMonth("24/01")
	assert.ErrorIs(t, err, common.ErrInvalidParameter)
}

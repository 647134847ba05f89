package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/export"
	"github.com/Veraticus/finsecure-hub/internal/scenario"
)

// useTestConfig resets viper and points the CLI at an empty config file.
func useTestConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: console\n"), 0o600))
	cfgFile = path
	t.Cleanup(func() { cfgFile = "" })
}

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	useTestConfig(t)

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--log-level=error"}, args...))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "finsecure dev\n", out)
}

func TestPresetsCmd(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)
	for _, name := range scenario.PresetNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "TRANSACTIONS")
}

func TestGenerateCmd_JSON(t *testing.T) {
	out, err := execute(t, "generate", "--seed", "42", "--format", "json")
	require.NoError(t, err)

	var bundle struct {
		Scenario     string            `json:"scenario"`
		Seed         uint64            `json:"seed"`
		Transactions []json.RawMessage `json:"transactions"`
		KPIs         struct {
			FraudsToday int `json:"frauds_today"`
		} `json:"kpis"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &bundle))
	assert.Equal(t, scenario.PresetDefault, bundle.Scenario)
	assert.Equal(t, uint64(42), bundle.Seed)
	assert.Len(t, bundle.Transactions, 60)
	assert.Equal(t, 24, bundle.KPIs.FraudsToday)
}

func TestGenerateCmd_Reproducible(t *testing.T) {
	first, err := execute(t, "generate", "--seed", "7", "--format", "yaml", "--preset", "quiet")
	require.NoError(t, err)
	second, err := execute(t, "generate", "--seed", "7", "--format", "yaml", "--preset", "quiet")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateCmd_Overrides(t *testing.T) {
	out, err := execute(t, "generate", "--seed", "1", "--format", "json", "--transactions", "5", "--fraud-probability", "1")
	require.NoError(t, err)

	var bundle struct {
		Transactions []json.RawMessage `json:"transactions"`
		KPIs         struct {
			FraudsToday int `json:"frauds_today"`
		} `json:"kpis"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &bundle))
	assert.Len(t, bundle.Transactions, 5)
	assert.Equal(t, 5, bundle.KPIs.FraudsToday)
}

func TestGenerateCmd_Table(t *testing.T) {
	out, err := execute(t, "generate", "--seed", "42", "--rows", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Frauds today")
	assert.Contains(t, out, "Real-time fraud detection")
	assert.Contains(t, out, "more rows")
}

func TestGenerateCmd_CSV(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "generate", "--seed", "42", "--format", "csv", "--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 10 CSV files")
	assert.FileExists(t, filepath.Join(dir, "transactions.csv"))
	assert.FileExists(t, filepath.Join(dir, "users.csv"))
}

func TestGenerateCmd_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		args    []string
	}{
		{name: "unknown format", args: []string{"generate", "--format", "xml"}, wantErr: common.ErrUnknownFormat},
		{name: "unknown preset", args: []string{"generate", "--preset", "nope"}, wantErr: common.ErrUnknownScenario},
		{name: "bad probability", args: []string{"generate", "--fraud-probability", "1.5"}, wantErr: common.ErrInvalidParameter},
		{name: "zero transactions", args: []string{"generate", "--transactions", "0"}, wantErr: common.ErrInvalidParameter},
		{name: "transactions above cap", args: []string{"generate", "--transactions", "1000000"}, wantErr: common.ErrInvalidParameter},
		{name: "amount above cap", args: []string{"generate", "--amount-max", "1e20"}, wantErr: common.ErrInvalidParameter},
		{name: "inverted amounts", args: []string{"generate", "--amount-min", "500", "--amount-max", "100"}, wantErr: common.ErrInvalidRange},
		{name: "bad month", args: []string{"generate", "--start-month", "January"}, wantErr: common.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateCmd_EnvOverride(t *testing.T) {
	t.Setenv("FINSECURE_SCENARIO_TRANSACTION_COUNT", "3")

	out, err := execute(t, "generate", "--seed", "1", "--format", "json")
	require.NoError(t, err)

	var bundle struct {
		Transactions []json.RawMessage `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &bundle))
	assert.Len(t, bundle.Transactions, 3)
}

func TestReportCmd(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{name: "json", format: "json", want: "finsecure-default-42.json"},
		{name: "yaml", format: "yaml", want: "finsecure-default-42.yaml"},
		{name: "csv", format: "csv", want: filepath.Join("finsecure-default-42", "transactions.csv")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			out, err := execute(t, "report", "--seed", "42", "--delay", "0s", "--format", tt.format, "--output", dir)
			require.NoError(t, err)
			assert.Contains(t, out, "Report ready")
			assert.FileExists(t, filepath.Join(dir, tt.want))
		})
	}
}

func TestReportCmd_Canceled(t *testing.T) {
	useTestConfig(t)

	dir := t.TempDir()
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--log-level=error", "report", "--seed", "42", "--delay", "1h", "--output", dir})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := root.ExecuteContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "canceled report must not write files")
}

func TestWriteReport_FailureLeavesNoOutput(t *testing.T) {
	b, err := scenario.Generate(scenario.Default().WithSeed(42))
	require.NoError(t, err)

	tests := []struct {
		setup   func(t *testing.T, dir string)
		check   func(t *testing.T, dir string)
		wantErr error
		name    string
		format  export.Format
	}{
		{
			name:    "unstreamable format",
			format:  export.Format("xml"),
			wantErr: common.ErrUnknownFormat,
			check: func(t *testing.T, dir string) {
				entries, err := os.ReadDir(dir)
				require.NoError(t, err)
				assert.Empty(t, entries)
			},
		},
		{
			name:   "csv table blocked in existing directory",
			format: export.FormatCSV,
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.MkdirAll(filepath.Join(dir, "finsecure-default-42", "transactions.csv"), 0o750))
				require.NoError(t, os.WriteFile(filepath.Join(dir, "finsecure-default-42", "notes.txt"), []byte("keep"), 0o600))
			},
			check: func(t *testing.T, dir string) {
				out := filepath.Join(dir, "finsecure-default-42")
				assert.NoFileExists(t, filepath.Join(out, "kpis.csv"))
				assert.FileExists(t, filepath.Join(out, "notes.txt"))
				assert.DirExists(t, filepath.Join(out, "transactions.csv"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.setup != nil {
				tt.setup(t, dir)
			}

			path, err := writeReport(dir, b, tt.format)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Empty(t, path)
			tt.check(t, dir)
		})
	}
}

func TestReportCmd_BadDelay(t *testing.T) {
	_, err := execute(t, "report", "--delay=-1s", "--output", t.TempDir())
	assert.ErrorIs(t, err, common.ErrInvalidParameter)
}

func TestServeUntilDone(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler(), ReadHeaderTimeout: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveUntilDone(ctx, srv) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeUntilDone_ListenError(t *testing.T) {
	srv := &http.Server{Addr: "not-an-address", Handler: http.NotFoundHandler(), ReadHeaderTimeout: time.Second}

	err := serveUntilDone(context.Background(), srv)
	assert.Error(t, err)
}

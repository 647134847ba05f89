package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/model"
	"github.com/Veraticus/finsecure-hub/internal/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testBundle(t *testing.T) *model.DatasetBundle {
	t.Helper()
	cfg, err := scenario.Preset(scenario.PresetQuiet)
	require.NoError(t, err)
	seed := uint64(7)
	cfg.Seed = &seed
	b, err := scenario.Generate(cfg)
	require.NoError(t, err)
	return b
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: " YAML ", want: FormatYAML},
		{in: "yml", want: FormatYAML},
		{in: "csv", want: FormatCSV},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTables(t *testing.T) {
	b := testBundle(t)
	tables := Tables(b)

	names := make([]string, 0, len(tables))
	for _, tbl := range tables {
		names = append(names, tbl.Name)
		for _, row := range tbl.Rows {
			assert.Len(t, row, len(tbl.Header), "table %s", tbl.Name)
		}
	}
	assert.Equal(t, []string{
		"kpis", "transactions", "customers", "tickets", "access_events",
		"financials", "ranking", "benchmarks", "trend", "users",
	}, names)

	byName := map[string]Table{}
	for _, tbl := range tables {
		byName[tbl.Name] = tbl
	}
	assert.Len(t, byName["transactions"].Rows, len(b.Transactions))
	assert.Len(t, byName["financials"].Rows, 12)
	assert.Equal(t, "2024-01", byName["financials"].Rows[0][0])
	assert.Len(t, byName["kpis"].Rows, 1)
	assert.Equal(t, b.KPIs.AmountRecovered.StringFixed(2), byName["kpis"].Rows[0][1])
}

func TestRankingTableOrder(t *testing.T) {
	tests := []struct {
		name string
		rows model.InstitutionRankings
		want [][]string
	}{
		{name: "empty", rows: model.InstitutionRankings{}, want: [][]string{}},
		{
			name: "most frauds first",
			rows: model.InstitutionRankings{
				{Institution: "Santander", FraudCount: 95},
				{Institution: "BBVA", FraudCount: 240},
				{Institution: "Banorte", FraudCount: 130},
			},
			want: [][]string{{"BBVA", "240"}, {"Banorte", "130"}, {"Santander", "95"}},
		},
		{
			name: "ties by name",
			rows: model.InstitutionRankings{
				{Institution: "HSBC", FraudCount: 50},
				{Institution: "Citibanamex", FraudCount: 50},
			},
			want: [][]string{{"Citibanamex", "50"}, {"HSBC", "50"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append(model.InstitutionRankings{}, tt.rows...)

			assert.Equal(t, tt.want, rankingTable(tt.rows).Rows)
			assert.Equal(t, before, tt.rows, "input order is kept")
		})
	}
}

func TestBenchmarkTableBlankRecall(t *testing.T) {
	tbl := benchmarkTable([]model.ModelBenchmark{{ModelName: "KMeans", Precision: 0.79, TrainSeconds: 2}})
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"KMeans", "0.79", "", "2"}, tbl.Rows[0])
}

func TestWriteJSON(t *testing.T) {
	b := testBundle(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, b))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, b.ID.String(), decoded["id"])
	assert.Equal(t, scenario.PresetQuiet, decoded["scenario"])
	assert.Len(t, decoded["transactions"], len(b.Transactions))
}

func TestWriteYAML(t *testing.T) {
	b := testBundle(t)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, b))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, b.ID.String(), decoded["id"])
	assert.Contains(t, decoded, "kpis")
	assert.Len(t, decoded["tickets"], len(b.Tickets))
}

func TestWrite(t *testing.T) {
	b := testBundle(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, b, FormatJSON))
	assert.NotZero(t, buf.Len())

	err := Write(&buf, b, FormatCSV)
	assert.ErrorIs(t, err, common.ErrUnknownFormat)
}

func TestWriteCSV(t *testing.T) {
	b := testBundle(t)
	dir := t.TempDir()

	paths, err := WriteCSV(dir, b)
	require.NoError(t, err)
	assert.Len(t, paths, len(Tables(b)))

	f, err := os.Open(filepath.Join(dir, "transactions.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(b.Transactions)+1)
	assert.Equal(t, []string{"user_id", "amount", "city", "is_suspected_fraud"}, records[0])
	assert.Equal(t, b.Transactions[0].UserID, records[1][0])
}

func TestWriteCSVMissingDir(t *testing.T) {
	b := testBundle(t)
	_, err := WriteCSV(filepath.Join(t.TempDir(), "missing"), b)
	assert.Error(t, err)
}

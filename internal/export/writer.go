package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/model"
	"gopkg.in/yaml.v3"
)

// Format selects a serialization.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want json, yaml or csv)", common.ErrUnknownFormat, s)
	}
}

// WriteJSON writes the bundle as indented JSON.
func WriteJSON(w io.Writer, b *model.DatasetBundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("failed to encode bundle as JSON: %w", err)
	}
	return nil
}

// WriteYAML writes the bundle as YAML.
func WriteYAML(w io.Writer, b *model.DatasetBundle) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("failed to encode bundle as YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML: %w", err)
	}
	return nil
}

// WriteTableCSV writes one table with its header row.
func WriteTableCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", t.Name, err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", t.Name, err)
	}
	return nil
}

// WriteCSV writes one <table>.csv per table into dir and returns the paths.
func WriteCSV(dir string, b *model.DatasetBundle) ([]string, error) {
	tables := Tables(b)
	paths := make([]string, 0, len(tables))

	for _, t := range tables {
		path := filepath.Join(dir, t.Name+".csv")
		if err := writeCSVFile(path, t); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCSVFile(path string, t Table) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is built from a fixed table name
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	return WriteTableCSV(f, t)
}

// Write serializes the bundle in a single-stream format. CSV needs a
// directory and goes through WriteCSV instead.
func Write(w io.Writer, b *model.DatasetBundle, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, b)
	case FormatYAML:
		return WriteYAML(w, b)
	default:
		return fmt.Errorf("%w: %q cannot be streamed", common.ErrUnknownFormat, format)
	}
}

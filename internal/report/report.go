// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report serializes extracted records to CSV, JSON, or YAML files.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-screen/pkg/types"
)

// Options controls the output format and CSV column selection.
type Options struct {
	// Format selects csv, json, or yaml. Empty means csv.
	Format types.OutputFormat

	// Columns restricts and orders the CSV columns. Nil means the full
	// fixed column list. Ignored for JSON and YAML output.
	Columns []string
}

// Write serializes records to path, overwriting any existing file, and
// reports the destination on w. An empty record slice performs no file
// I/O: it logs "No data to save." and returns nil.
func Write(records []types.Record, path string, opts Options, w io.Writer) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No data to save.")
		return nil
	}

	var err error
	switch opts.Format {
	case types.FormatCSV, "":
		err = writeCSV(records, path, opts.Columns)
	case types.FormatJSON:
		err = writeJSON(records, path)
	case types.FormatYAML:
		err = writeYAML(records, path)
	default:
		return fmt.Errorf("unsupported format %q: use csv, json, or yaml", opts.Format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Data saved to %s\n", path)
	return nil
}

// writeCSV writes a header row then one row per record. Fields containing
// the delimiter, quotes, or newlines are quoted by the csv encoder.
func writeCSV(records []types.Record, path string, columns []string) error {
	if columns == nil {
		columns = types.RecordColumns
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := make([]string, len(columns))
	for _, rec := range records {
		for i, c := range columns {
			row[i] = rec.Field(c)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record %s: %w", rec.PubMedID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return f.Close()
}

func writeJSON(records []types.Record, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func writeYAML(records []types.Record, path string) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

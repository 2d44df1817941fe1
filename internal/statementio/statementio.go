// Package statementio handles reading raw transaction batches from disk and
// writing classified statements back out. All file I/O for the CLI lives
// here so the pipeline packages stay pure.
package statementio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"snapengine/internal/models"
	"snapengine/internal/normalizer"
)

// Batch is the JSON envelope the extraction service exports: the records,
// the shape tag, and an optional pre-computed period label.
type Batch struct {
	SourceShape  normalizer.SourceShape `json:"source_shape,omitempty"`
	Period       string                 `json:"period,omitempty"`
	Transactions []normalizer.RawRecord `json:"transactions"`
}

// ReadJSONBatch reads a raw batch from a JSON file. Both the envelope form
// and a bare top-level array of records are accepted; a bare array carries
// no shape tag and no period.
func ReadJSONBatch(path string) (Batch, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied input path
	if err != nil {
		return Batch{}, fmt.Errorf("failed to read input file: %w", err)
	}

	var batch Batch
	if err := json.Unmarshal(data, &batch); err == nil && batch.Transactions != nil {
		return batch, nil
	}

	var records []normalizer.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return Batch{}, fmt.Errorf("failed to parse input file %s: %w", path, err)
	}
	return Batch{Transactions: records}, nil
}

// ReadPartnerCSV reads the partner feed's CSV export and converts each row
// into the union record shape. The returned batch is always tagged
// partner_enriched.
func ReadPartnerCSV(path string) (Batch, error) {
	f, err := os.Open(path) // #nosec G304 -- user-supplied input path
	if err != nil {
		return Batch{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	var rows []normalizer.PartnerCSVRecord
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return Batch{}, fmt.Errorf("failed to parse partner CSV %s: %w", path, err)
	}

	records := make([]normalizer.RawRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToRawRecord())
	}
	return Batch{SourceShape: normalizer.ShapePartnerEnriched, Transactions: records}, nil
}

// WriteStatement writes the classified statement as indented JSON. An empty
// path writes to stdout.
func WriteStatement(path string, data models.BankStatementData) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode statement: %w", err)
	}
	out = append(out, '\n')

	if path == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

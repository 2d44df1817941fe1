// Package engineerror defines the error taxonomy of the classification
// engine. Per-transaction "no match" and "ambiguous match" outcomes are
// terminal classification states, not errors; only structural problems are
// represented here.
package engineerror

import (
	"fmt"
	"strings"
)

// MalformedRecordError reports a raw record that is missing a required field
// or carries a value of the wrong kind. It is unrecoverable for that single
// record; the caller decides whether to skip it or abort the batch.
type MalformedRecordError struct {
	Index int    // position of the record in the input batch
	Field string // offending field name
	Value string // raw value, empty when the field was absent
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("record %d: missing or invalid required field %q: %v",
			e.Index, e.Field, e.Err)
	}
	return fmt.Sprintf("record %d: failed to parse %s=%q: %v",
		e.Index, e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// EmptyInputError signals that there is nothing to process. It is distinct
// from a structural failure so callers can branch on "no transactions found"
// versus "extraction failed".
type EmptyInputError struct {
	Operation string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: empty input, nothing to process", e.Operation)
}

// CatalogUnavailableError signals that the classifier cannot proceed because
// no rule catalog is loaded. Fatal for the run, not per-transaction.
type CatalogUnavailableError struct {
	Reason string
}

func (e *CatalogUnavailableError) Error() string {
	return fmt.Sprintf("rule catalog unavailable: %s", e.Reason)
}

// RecordErrors aggregates per-record failures from a lenient normalization
// pass so a caller can report "3 of 40 transactions could not be parsed"
// without aborting the whole batch.
type RecordErrors struct {
	Total  int // number of records in the input batch
	Errors []*MalformedRecordError
}

func (e *RecordErrors) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, re := range e.Errors {
		parts = append(parts, re.Error())
	}
	return fmt.Sprintf("%d of %d records could not be normalized: %s",
		len(e.Errors), e.Total, strings.Join(parts, "; "))
}

// HasErrors returns true if any record failed.
func (e *RecordErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

package engine

import (
	"time"

	"github.com/google/uuid"

	"snapengine/internal/engineerror"
	"snapengine/internal/models"
	"snapengine/internal/normalizer"
)

// RunReport is the audit record for one pipeline run. Case workers need to
// answer "which catalog version produced this classification" months later,
// so every run carries an id, the catalog version and per-state counts.
type RunReport struct {
	RunID          string                    `json:"run_id"`
	CatalogVersion string                    `json:"catalog_version"`
	SourceShape    normalizer.SourceShape    `json:"source_shape"`
	StartedAt      time.Time                 `json:"started_at"`
	CompletedAt    time.Time                 `json:"completed_at"`
	RecordsIn      int                       `json:"records_in"`
	Normalized     int                       `json:"normalized"`
	Failed         int                       `json:"failed"`
	FailedRecords  []string                  `json:"failed_records,omitempty"`
	StateCounts    map[models.FinalState]int `json:"state_counts"`
}

func newRunReport(catalogVersion string, shape normalizer.SourceShape, recordsIn int) *RunReport {
	return &RunReport{
		RunID:          uuid.New().String(),
		CatalogVersion: catalogVersion,
		SourceShape:    shape,
		StartedAt:      time.Now().UTC(),
		RecordsIn:      recordsIn,
		StateCounts:    make(map[models.FinalState]int, len(models.AllFinalStates())),
	}
}

func (r *RunReport) recordNormalization(normalized int, recErrs *engineerror.RecordErrors) {
	r.Normalized = normalized
	if recErrs == nil || !recErrs.HasErrors() {
		return
	}
	r.Failed = len(recErrs.Errors)
	r.FailedRecords = make([]string, 0, len(recErrs.Errors))
	for _, recErr := range recErrs.Errors {
		r.FailedRecords = append(r.FailedRecords, recErr.Error())
	}
}

func (r *RunReport) recordClassifications(classifications []models.Classification) {
	for _, cls := range classifications {
		r.StateCounts[cls.FinalState]++
	}
}

func (r *RunReport) finish() {
	r.CompletedAt = time.Now().UTC()
}

// ReviewRate returns the fraction of classified transactions that landed in
// FLAG_FOR_REVIEW, or zero when nothing was classified.
func (r *RunReport) ReviewRate() float64 {
	total := 0
	for _, n := range r.StateCounts {
		total += n
	}
	if total == 0 {
		return 0
	}
	return float64(r.StateCounts[models.StateFlagForReview]) / float64(total)
}

// Package engine wires the normalizer, rule catalog, classifier and summary
// builder into the two entry points exposed to collaborators: the wizard's
// review step hands in raw records tagged by origin and gets back a fully
// normalized, classified, aggregated statement.
package engine

import (
	"errors"

	"snapengine/internal/catalog"
	"snapengine/internal/classifier"
	"snapengine/internal/engineerror"
	"snapengine/internal/logging"
	"snapengine/internal/models"
	"snapengine/internal/normalizer"
	"snapengine/internal/summary"
)

// Options configure an engine instance.
type Options struct {
	// Lenient makes malformed records a per-record report instead of a
	// batch failure, so callers can show "3 of 40 transactions could not be
	// parsed".
	Lenient bool

	// Classifier tunes the countability pass.
	Classifier classifier.Options
}

// Input is one statement's worth of raw records plus the optional period
// string some extraction sources supply alongside the transactions.
type Input struct {
	Records []normalizer.RawRecord
	Shape   normalizer.SourceShape
	Period  string
}

// Engine is the classification pipeline pinned to one catalog snapshot.
// Catalog hot-reloads never affect an existing Engine; build a new one for
// the new version.
type Engine struct {
	normalizer *normalizer.Normalizer
	classifier *classifier.Classifier
	builder    *summary.Builder
	logger     logging.Logger
	lenient    bool
}

// New creates an Engine over the given catalog snapshot.
func New(cat *catalog.Catalog, opts Options, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		normalizer: normalizer.New(logger),
		classifier: classifier.New(cat, opts.Classifier, logger),
		builder:    summary.NewBuilder(logger),
		logger:     logger,
		lenient:    opts.Lenient,
	}
}

// NormalizeAndClassify is the primary entry point: raw records in, complete
// BankStatementData out. Equivalent to ProcessStatement without an explicit
// period string.
func (e *Engine) NormalizeAndClassify(records []normalizer.RawRecord, shape normalizer.SourceShape) (models.BankStatementData, error) {
	data, _, err := e.ProcessStatement(Input{Records: records, Shape: shape})
	return data, err
}

// ProcessStatement runs the full pipeline (normalize, classify, aggregate)
// and additionally returns the audit report for the run. In lenient mode
// per-record normalization failures appear in the report instead of failing
// the batch; an EmptyInputError or (in strict mode) RecordErrors fails the
// run.
func (e *Engine) ProcessStatement(in Input) (models.BankStatementData, *RunReport, error) {
	report := newRunReport(e.classifier.CatalogVersion(), in.Shape, len(in.Records))

	var (
		txs     []models.Transaction
		recErrs *engineerror.RecordErrors
		err     error
	)
	if e.lenient {
		txs, recErrs, err = e.normalizer.NormalizeLenient(in.Records, in.Shape)
	} else {
		txs, err = e.normalizer.Normalize(in.Records, in.Shape)
		var batchErrs *engineerror.RecordErrors
		if errors.As(err, &batchErrs) {
			recErrs = batchErrs
		}
	}
	report.recordNormalization(len(txs), recErrs)
	if err != nil {
		return models.BankStatementData{}, report, err
	}

	classifications, err := e.classifier.ClassifyAll(txs)
	if err != nil {
		return models.BankStatementData{}, report, err
	}
	for i := range txs {
		cls := classifications[i]
		txs[i].SnapClassification = &cls
	}
	report.recordClassifications(classifications)

	data := e.builder.Build(txs, in.Period)
	report.finish()

	e.logger.Info("Statement processed",
		logging.Field{Key: "run_id", Value: report.RunID},
		logging.Field{Key: "catalog_version", Value: report.CatalogVersion},
		logging.Field{Key: "transactions", Value: len(txs)},
		logging.Field{Key: "flagged", Value: report.StateCounts[models.StateFlagForReview]})

	return data, report, nil
}

// Classify is the lower-level entry point for callers that already hold
// canonical transactions, e.g. a re-classification pass after a catalog
// update. The input is not mutated; each returned Classification replaces
// the transaction's previous one wholesale; there is no partial mutation.
func (e *Engine) Classify(txs []models.Transaction) ([]models.Classification, error) {
	if len(txs) == 0 {
		return nil, &engineerror.EmptyInputError{Operation: "classify"}
	}
	return e.classifier.ClassifyAll(txs)
}

// CatalogVersion returns the catalog snapshot version this engine is pinned
// to.
func (e *Engine) CatalogVersion() string {
	return e.classifier.CatalogVersion()
}

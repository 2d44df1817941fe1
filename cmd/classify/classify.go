// Package classify handles the single-statement classification command
package classify

import (
	"github.com/spf13/cobra"

	"snapengine/cmd/root"
	"snapengine/internal/catalog"
	"snapengine/internal/classifier"
	"snapengine/internal/engine"
	"snapengine/internal/normalizer"
	"snapengine/internal/statementio"
)

var (
	shapeFlag  string
	csvFlag    bool
	periodFlag string
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Normalize and classify one statement",
	Long: `Normalize a raw transaction batch and classify every transaction for
SNAP countability. Input is a JSON batch (envelope or bare array) or, with
--csv, the partner feed's CSV export. Output is the classified statement as
JSON with totals and the covered period.

Example:
  snapengine classify -i statement.json -o classified.json --shape document_extracted`,
	Run: classifyFunc,
}

func init() {
	Cmd.Flags().StringVar(&shapeFlag, "shape", "", "Source shape: document_extracted or partner_enriched (overrides the envelope)")
	Cmd.Flags().BoolVar(&csvFlag, "csv", false, "Read the input as a partner CSV export instead of JSON")
	Cmd.Flags().StringVar(&periodFlag, "period", "", "Explicit period label, e.g. '2024-01-01 to 2024-01-31'")
}

func classifyFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Classify command called")
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file must be specified")
	}

	logger := root.GetLogger()

	var (
		batch statementio.Batch
		err   error
	)
	if csvFlag {
		batch, err = statementio.ReadPartnerCSV(root.SharedFlags.Input)
	} else {
		batch, err = statementio.ReadJSONBatch(root.SharedFlags.Input)
	}
	if err != nil {
		root.Log.Fatalf("Error reading input: %v", err)
	}

	shape := batch.SourceShape
	if shapeFlag != "" {
		shape = normalizer.SourceShape(shapeFlag)
	}
	if !shape.Valid() {
		root.Log.Fatalf("Unknown source shape %q (want document_extracted or partner_enriched)", shape)
	}

	period := batch.Period
	if periodFlag != "" {
		period = periodFlag
	}

	cat, err := catalog.NewStore(root.Cfg.Catalog.File, logger).Load()
	if err != nil {
		root.Log.Fatalf("Error loading rule catalog: %v", err)
	}

	eng := engine.New(cat, engine.Options{
		Lenient: root.SharedFlags.Lenient || root.Cfg.Normalization.Lenient,
		Classifier: classifier.Options{
			HighThreshold: root.Cfg.Classification.ConfidenceThreshold,
			WorkerCount:   root.Cfg.Classification.Workers,
		},
	}, logger)

	data, report, err := eng.ProcessStatement(engine.Input{
		Records: batch.Transactions,
		Shape:   shape,
		Period:  period,
	})
	if err != nil {
		root.Log.Fatalf("Error processing statement: %v", err)
	}

	if report.Failed > 0 {
		root.Log.Warnf("%d of %d records could not be parsed", report.Failed, report.RecordsIn)
		for _, msg := range report.FailedRecords {
			root.Log.Warn(msg)
		}
	}

	if err := statementio.WriteStatement(root.SharedFlags.Output, data); err != nil {
		root.Log.Fatalf("Error writing output: %v", err)
	}
	root.Log.Infof("Classified %d transactions (run %s, catalog %s)",
		report.Normalized, report.RunID, report.CatalogVersion)
}

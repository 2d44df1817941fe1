// Package batch handles batch processing of statement files
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"snapengine/cmd/root"
	"snapengine/internal/catalog"
	"snapengine/internal/classifier"
	"snapengine/internal/engine"
	"snapengine/internal/normalizer"
	"snapengine/internal/statementio"
)

var (
	shapeFlag   string
	workersFlag int
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Classify every statement file in a directory",
	Long: `Classify all JSON statement batches in an input directory and write the
classified statements to an output directory. Files are processed
independently; one malformed file does not stop the others, but the command
exits non-zero if any file failed.

Example:
  snapengine batch -i statements/ -o classified/`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVar(&shapeFlag, "shape", "", "Source shape for files without an envelope tag")
	Cmd.Flags().IntVar(&workersFlag, "workers", 4, "Number of files processed in parallel")
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		root.Log.Fatal("Input and output directories must be specified")
	}
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		root.Log.Fatalf("Failed to create output directory: %v", err)
	}

	logger := root.GetLogger()
	cat, err := catalog.NewStore(root.Cfg.Catalog.File, logger).Load()
	if err != nil {
		root.Log.Fatalf("Error loading rule catalog: %v", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		root.Log.Fatalf("Failed to read input directory: %v", err)
	}

	eng := engine.New(cat, engine.Options{
		Lenient: root.SharedFlags.Lenient || root.Cfg.Normalization.Lenient,
		Classifier: classifier.Options{
			HighThreshold: root.Cfg.Classification.ConfidenceThreshold,
			WorkerCount:   root.Cfg.Classification.Workers,
		},
	}, logger)

	var g errgroup.Group
	g.SetLimit(workersFlag)

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		count++
		name := entry.Name()
		g.Go(func() error {
			return processFile(eng, inputDir, outputDir, name)
		})
	}

	if err := g.Wait(); err != nil {
		root.Log.Fatalf("Batch processing failed: %v", err)
	}
	root.Log.Infof("Batch processing completed successfully! Classified %d files.", count)
}

func processFile(eng *engine.Engine, inputDir, outputDir, name string) error {
	batch, err := statementio.ReadJSONBatch(filepath.Join(inputDir, name))
	if err != nil {
		return err
	}

	shape := batch.SourceShape
	if shape == "" {
		shape = normalizer.SourceShape(shapeFlag)
	}
	if !shape.Valid() {
		return fmt.Errorf("%s: unknown source shape %q", name, shape)
	}

	data, report, err := eng.ProcessStatement(engine.Input{
		Records: batch.Transactions,
		Shape:   shape,
		Period:  batch.Period,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if report.Failed > 0 {
		root.Log.Warnf("%s: %d of %d records could not be parsed", name, report.Failed, report.RecordsIn)
	}

	return statementio.WriteStatement(filepath.Join(outputDir, name), data)
}

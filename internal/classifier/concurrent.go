package classifier

import (
	"runtime"
	"sync"

	"snapengine/internal/logging"
	"snapengine/internal/models"
)

// concurrencyThreshold is the batch size below which the worker pool costs
// more than it saves.
const concurrencyThreshold = 100

type indexedJob struct {
	index int
	tx    *models.Transaction
}

type indexedResult struct {
	index int
	cls   models.Classification
}

// classifyBatch dispatches the pass sequentially or across workers depending
// on batch size. Classification is pure, so the only coordination needed is
// carrying the original index with each result.
func (c *Classifier) classifyBatch(txs []models.Transaction) []models.Classification {
	if len(txs) < concurrencyThreshold {
		return c.classifySequential(txs)
	}
	return c.classifyConcurrent(txs)
}

func (c *Classifier) classifySequential(txs []models.Transaction) []models.Classification {
	results := make([]models.Classification, len(txs))
	for i := range txs {
		// The catalog was checked by the caller; per-transaction errors
		// cannot occur past that point.
		results[i], _ = c.Classify(&txs[i])
	}
	return results
}

func (c *Classifier) classifyConcurrent(txs []models.Transaction) []models.Classification {
	workers := c.workerCount
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan indexedJob, workers)
	out := make(chan indexedResult, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				cls, _ := c.Classify(job.tx)
				out <- indexedResult{index: job.index, cls: cls}
			}
		}()
	}

	go func() {
		for i := range txs {
			jobs <- indexedJob{index: i, tx: &txs[i]}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]models.Classification, len(txs))
	for r := range out {
		results[r.index] = r.cls
	}

	c.logger.Debug("Concurrent classification pass completed",
		logging.Field{Key: "transactions", Value: len(txs)},
		logging.Field{Key: "workers", Value: workers})

	return results
}

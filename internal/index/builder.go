package index

import (
	"fmt"
	"os"

	"webdex/internal/core"
	"webdex/internal/extract"
	"webdex/internal/ingest"
	"webdex/internal/logger"
	"webdex/internal/storage"
)

// BuildOptions configures one index build
type BuildOptions struct {
	// IndexDir is where all artifacts are written
	IndexDir string

	// ChunkSize is the number of documents per in-memory partition
	ChunkSize int

	// Progress, if set, is called after each ingested document (count so
	// far and a short message). Used by the CLI progress line.
	Progress func(done int, message string)
}

// Build runs the whole offline pipeline against a document source:
// ingest -> spill -> merge -> finalize. Any error is fatal to the build;
// partial files are left in place for inspection.
//
// Documents must arrive from the source in ascending doc_id order with
// unique doc_ids (see ingest.Source).
func Build(source ingest.Source, opts BuildOptions) (*core.BuildSummary, error) {
	if opts.IndexDir == "" {
		return nil, fmt.Errorf("build: index dir not set")
	}
	if opts.ChunkSize <= 0 {
		return nil, fmt.Errorf("build: chunk size must be positive, got %d", opts.ChunkSize)
	}

	if err := os.MkdirAll(opts.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create index dir %s: %w", opts.IndexDir, err)
	}

	// spill files left by an earlier build would otherwise be merged in
	if err := os.RemoveAll(storage.PartialIndexDir(opts.IndexDir)); err != nil {
		return nil, fmt.Errorf("failed to clear partial index dir: %w", err)
	}

	spill, err := NewSpillWriter(storage.PartialIndexDir(opts.IndexDir))
	if err != nil {
		return nil, err
	}

	acc := NewAccumulator(opts.ChunkSize)
	docCount := 0

	logger.Info("Starting index build")

	err = source.Walk(func(doc core.Document) error {
		tokens := Tokenize(extract.Text(doc.HTML))
		acc.AddDocument(doc.ID, tokens, doc.URL)
		docCount++

		if opts.Progress != nil {
			opts.Progress(docCount, doc.ID)
		}

		if acc.Full() {
			if _, err := spill.Spill(acc.Partition()); err != nil {
				return err
			}
			acc.Reset()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if docCount == 0 {
		return nil, fmt.Errorf("build: no documents found in corpus")
	}

	// the tail partition, if the corpus size is not a chunk multiple
	if acc.PartitionDocs() > 0 {
		if _, err := spill.Spill(acc.Partition()); err != nil {
			return nil, err
		}
		acc.Reset()
	}

	finalPath := storage.FinalIndexPath(opts.IndexDir)
	if _, err := Merge(storage.PartialIndexDir(opts.IndexDir), finalPath); err != nil {
		return nil, err
	}

	docURLs := acc.DocURLs()
	if err := storage.SaveDocIDURLMap(opts.IndexDir, docURLs); err != nil {
		return nil, err
	}

	secondary, docLens, err := Finalize(finalPath, len(docURLs))
	if err != nil {
		return nil, err
	}
	if err := storage.SaveSecondaryIndex(opts.IndexDir, secondary); err != nil {
		return nil, err
	}
	if err := storage.SaveDocLengths(opts.IndexDir, docLens); err != nil {
		return nil, err
	}

	info, err := os.Stat(finalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat final index %s: %w", finalPath, err)
	}

	summary := &core.BuildSummary{
		IndexedDocs:  docCount,
		UniqueTokens: acc.UniqueTokenCount(),
		IndexKB:      float64(info.Size()) / 1024,
		Partials:     spill.Count(),
	}

	logger.Infof("Index build completed: %d docs, %d unique tokens, %.1f KB final index",
		summary.IndexedDocs, summary.UniqueTokens, summary.IndexKB)

	return summary, nil
}

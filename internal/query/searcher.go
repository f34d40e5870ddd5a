// Package query evaluates keyword queries against a built index: ranked
// TF-IDF cosine retrieval and conjunctive boolean retrieval, both served
// by offset-based random access into the final index.
package query

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"webdex/internal/constants"
	"webdex/internal/core"
	"webdex/internal/index"
	"webdex/internal/storage"
)

// ErrCorruptIndex is returned when the on-disk index contradicts itself: a
// secondary-index offset does not land on the expected record, a line
// fails to parse, or a posting references a doc_id the URL map has never
// heard of. The searcher does not attempt repair.
var ErrCorruptIndex = errors.New("corrupt index")

// Searcher answers queries against an immutable index. All loaded state is
// read-only after Open; the final-index file handle is shared, so seek+read
// pairs are serialized by a mutex and a Searcher is safe for concurrent use.
type Searcher struct {
	mu    sync.Mutex
	final *os.File

	secondary map[string]int64
	docURLs   map[string]string
	docLens   map[string]float64

	// n is the corpus cardinality, fixed for the index lifetime
	n    int
	topK int
}

// Open loads the query-time artifacts from indexDir and opens the final
// index read-only. A missing artifact fails with storage.ErrMissingArtifact
// naming the file.
func Open(indexDir string, topK int) (*Searcher, error) {
	if err := storage.VerifyArtifacts(indexDir); err != nil {
		return nil, err
	}

	secondary, err := storage.LoadSecondaryIndex(indexDir)
	if err != nil {
		return nil, err
	}
	docURLs, err := storage.LoadDocIDURLMap(indexDir)
	if err != nil {
		return nil, err
	}
	docLens, err := storage.LoadDocLengths(indexDir)
	if err != nil {
		return nil, err
	}

	final, err := os.Open(storage.FinalIndexPath(indexDir))
	if err != nil {
		return nil, fmt.Errorf("failed to open final index: %w", err)
	}

	if topK <= 0 {
		topK = constants.DefaultTopK
	}

	return &Searcher{
		final:     final,
		secondary: secondary,
		docURLs:   docURLs,
		docLens:   docLens,
		n:         len(docURLs),
		topK:      topK,
	}, nil
}

// Close releases the final index handle
func (s *Searcher) Close() error {
	return s.final.Close()
}

// N returns the corpus cardinality
func (s *Searcher) N() int {
	return s.n
}

// getPostings fetches one term's posting list with a single seek+read into
// the final index. Unknown terms return an empty list.
func (s *Searcher) getPostings(term string) ([]core.Posting, error) {
	offset, ok := s.secondary[term]
	if !ok {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.final.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek final index to %d: %w", offset, err)
	}

	reader := bufio.NewReaderSize(s.final, constants.ScannerInitialBufSize)
	line, err := reader.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return nil, fmt.Errorf("%w: no record at offset %d for term %q", ErrCorruptIndex, offset, term)
	}
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}

	token, postings, err := index.ParseRecord(line)
	if err != nil {
		return nil, fmt.Errorf("%w: offset %d for term %q: %v", ErrCorruptIndex, offset, term, err)
	}
	if token != term {
		return nil, fmt.Errorf("%w: offset %d points at %q, expected %q", ErrCorruptIndex, offset, token, term)
	}

	return postings, nil
}

// idf computes ln(N / df). df == N yields 0: a term in every document
// carries no signal.
func (s *Searcher) idf(df int) float64 {
	return math.Log(float64(s.n) / float64(df))
}

func errCorruptMagnitude(docID string) error {
	return fmt.Errorf("%w: doc_id %q has no positive magnitude", ErrCorruptIndex, docID)
}

// url maps a doc_id through the ID->URL map, treating an absent entry as
// index corruption.
func (s *Searcher) url(docID string) (string, error) {
	url, ok := s.docURLs[docID]
	if !ok {
		return "", fmt.Errorf("%w: doc_id %q has no URL mapping", ErrCorruptIndex, docID)
	}
	return url, nil
}

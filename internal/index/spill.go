package index

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"webdex/internal/constants"
	"webdex/internal/core"
	"webdex/internal/logger"
)

// SpillWriter serializes in-memory partitions as sorted partial-index
// files, partial_index_<k>.jsonl with k increasing from 0.
type SpillWriter struct {
	dir  string
	next int
}

// NewSpillWriter creates the partial-index directory if needed
func NewSpillWriter(dir string) (*SpillWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create partial index dir %s: %w", dir, err)
	}
	return &SpillWriter{dir: dir}, nil
}

// Spill writes the partition as one sorted partial-index file: tokens in
// ascending order, one line per token, postings sorted by doc_id.
func (w *SpillWriter) Spill(partition map[string][]core.Posting) (string, error) {
	tokens := make([]string, 0, len(partition))
	for token := range partition {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	path := filepath.Join(w.dir, fmt.Sprintf(constants.PartialIndexPattern, w.next))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create partial index %s: %w", path, err)
	}

	buf := bufio.NewWriter(file)
	for _, token := range tokens {
		postings := partition[token]
		sort.Slice(postings, func(i, j int) bool {
			return postings[i].DocID < postings[j].DocID
		})

		line, err := MarshalRecord(token, postings)
		if err != nil {
			file.Close()
			return "", fmt.Errorf("failed to encode token %q in %s: %w", token, path, err)
		}
		if _, err := buf.Write(line); err != nil {
			file.Close()
			return "", fmt.Errorf("failed to write partial index %s: %w", path, err)
		}
		if err := buf.WriteByte('\n'); err != nil {
			file.Close()
			return "", fmt.Errorf("failed to write partial index %s: %w", path, err)
		}
	}

	if err := buf.Flush(); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to flush partial index %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close partial index %s: %w", path, err)
	}

	logger.Debugf("Spilled partial index %s (%d tokens)", path, len(tokens))
	w.next++
	return path, nil
}

// Count returns how many partial files have been written
func (w *SpillWriter) Count() int {
	return w.next
}

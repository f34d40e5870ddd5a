package index

import (
	"bufio"
	"container/heap"
	"fmt"
	"os"
	"path/filepath"

	"webdex/internal/constants"
	"webdex/internal/core"
	"webdex/internal/logger"
)

// mergeEntry is one buffered record from one partial file
type mergeEntry struct {
	token     string
	fileIndex int
	postings  []core.Posting
}

// mergeHeap orders entries by token, with the file index as a stable
// tie-break so concatenation order matches spill order.
type mergeHeap []*mergeEntry

func (h mergeHeap) Len() int { return len(h) }
func (h mergeHeap) Less(i, j int) bool {
	if h[i].token != h[j].token {
		return h[i].token < h[j].token
	}
	return h[i].fileIndex < h[j].fileIndex
}
func (h mergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *mergeHeap) Push(x any) {
	*h = append(*h, x.(*mergeEntry))
}

func (h *mergeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// partialReader streams one partial file, one parsed record buffered at a
// time, tracking byte offsets for diagnostics.
type partialReader struct {
	path      string
	fileIndex int
	file      *os.File
	scanner   *bufio.Scanner
	offset    int64
}

func openPartial(path string, fileIndex int) (*partialReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open partial index %s: %w", path, err)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, constants.ScannerInitialBufSize), constants.ScannerMaxBufSize)

	return &partialReader{path: path, fileIndex: fileIndex, file: file, scanner: scanner}, nil
}

// next returns the next record, or nil at end of file. A line that fails
// to parse aborts the merge with the file name and byte offset.
func (r *partialReader) next() (*mergeEntry, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed reading partial index %s at offset %d: %w", r.path, r.offset, err)
		}
		return nil, nil
	}

	line := r.scanner.Bytes()
	token, postings, err := ParseRecord(line)
	if err != nil {
		return nil, fmt.Errorf("malformed partial index %s at offset %d: %w", r.path, r.offset, err)
	}

	r.offset += int64(len(line)) + 1
	return &mergeEntry{token: token, fileIndex: r.fileIndex, postings: postings}, nil
}

func (r *partialReader) close() {
	r.file.Close()
}

// listPartials returns partial_index_<k>.jsonl paths for k = 0..n-1, in k
// order. The sequence must be gap-free; a hole means an earlier spill
// failed and the build is not recoverable.
func listPartials(dir string) ([]string, error) {
	var paths []string
	for k := 0; ; k++ {
		path := filepath.Join(dir, fmt.Sprintf(constants.PartialIndexPattern, k))
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				break
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Merge combines all partial indexes under partialDir into a single
// token-sorted, line-delimited final index at finalPath, and returns the
// number of distinct tokens written.
//
// Precondition: no doc_id occurs in more than one partial, and the corpus
// was ingested in ascending doc_id order. Partials partition the corpus by
// chunk, so under that feeding order the concatenated posting lists come
// out doc_id-sorted without re-sorting here.
func Merge(partialDir, finalPath string) (int, error) {
	paths, err := listPartials(partialDir)
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("no partial indexes found in %s", partialDir)
	}

	readers := make([]*partialReader, 0, len(paths))
	defer func() {
		for _, r := range readers {
			r.close()
		}
	}()

	h := &mergeHeap{}
	heap.Init(h)

	// seed the heap with the first record of each partial
	for i, path := range paths {
		reader, err := openPartial(path, i)
		if err != nil {
			return 0, err
		}
		readers = append(readers, reader)

		entry, err := reader.next()
		if err != nil {
			return 0, err
		}
		if entry != nil {
			heap.Push(h, entry)
		}
	}

	out, err := os.Create(finalPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create final index %s: %w", finalPath, err)
	}
	buf := bufio.NewWriter(out)

	tokenCount := 0
	flush := func(token string, postings []core.Posting) error {
		line, err := MarshalRecord(token, postings)
		if err != nil {
			return fmt.Errorf("failed to encode token %q: %w", token, err)
		}
		if _, err := buf.Write(line); err != nil {
			return fmt.Errorf("failed to write final index: %w", err)
		}
		if err := buf.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write final index: %w", err)
		}
		tokenCount++
		return nil
	}

	var currentToken string
	var currentPostings []core.Posting
	haveRun := false

	for h.Len() > 0 {
		entry := heap.Pop(h).(*mergeEntry)

		if haveRun && entry.token == currentToken {
			currentPostings = append(currentPostings, entry.postings...)
		} else {
			if haveRun {
				if err := flush(currentToken, currentPostings); err != nil {
					out.Close()
					return 0, err
				}
			}
			currentToken = entry.token
			currentPostings = entry.postings
			haveRun = true
		}

		// advance the source file the popped record came from
		next, err := readers[entry.fileIndex].next()
		if err != nil {
			out.Close()
			return 0, err
		}
		if next != nil {
			heap.Push(h, next)
		}
	}

	if haveRun {
		if err := flush(currentToken, currentPostings); err != nil {
			out.Close()
			return 0, err
		}
	}

	if err := buf.Flush(); err != nil {
		out.Close()
		return 0, fmt.Errorf("failed to flush final index %s: %w", finalPath, err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("failed to close final index %s: %w", finalPath, err)
	}

	logger.Infof("Merged %d partial indexes into %s (%d tokens)", len(paths), finalPath, tokenCount)
	return tokenCount, nil
}

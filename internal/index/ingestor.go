package index

import (
	"webdex/internal/core"
)

// Accumulator builds one in-memory inverted-index partition at a time.
// The doc->URL map and the unique-token set span the whole build; only the
// partition itself is cleared when a chunk spills.
//
// Callers must not add the same doc_id twice within one build.
type Accumulator struct {
	chunkSize int
	docCount  int

	partition    map[string][]core.Posting
	docURLs      map[string]string
	uniqueTokens map[string]struct{}
}

// NewAccumulator returns an accumulator that is Full after chunkSize
// documents.
func NewAccumulator(chunkSize int) *Accumulator {
	return &Accumulator{
		chunkSize:    chunkSize,
		partition:    make(map[string][]core.Posting),
		docURLs:      make(map[string]string),
		uniqueTokens: make(map[string]struct{}),
	}
}

// AddDocument computes term frequencies over tokens and appends one posting
// per distinct token to the current partition.
func (a *Accumulator) AddDocument(docID string, tokens []string, url string) {
	termFrequency := make(map[string]int)
	for _, token := range tokens {
		termFrequency[token]++
		a.uniqueTokens[token] = struct{}{}
	}

	for token, count := range termFrequency {
		a.partition[token] = append(a.partition[token], core.Posting{
			DocID: docID,
			TF:    count,
		})
	}

	a.docURLs[docID] = url
	a.docCount++
}

// Full reports whether the current partition has reached the chunk size
func (a *Accumulator) Full() bool {
	return a.docCount >= a.chunkSize
}

// Partition exposes the current in-memory partition for spilling
func (a *Accumulator) Partition() map[string][]core.Posting {
	return a.partition
}

// Reset clears the partition after a spill. Build-wide state (URL map,
// unique tokens) is kept.
func (a *Accumulator) Reset() {
	a.partition = make(map[string][]core.Posting)
	a.docCount = 0
}

// PartitionDocs returns how many documents the current partition holds
func (a *Accumulator) PartitionDocs() int {
	return a.docCount
}

// DocURLs returns the build-wide doc_id -> URL map
func (a *Accumulator) DocURLs() map[string]string {
	return a.docURLs
}

// UniqueTokenCount returns how many distinct tokens the build has seen
func (a *Accumulator) UniqueTokenCount() int {
	return len(a.uniqueTokens)
}

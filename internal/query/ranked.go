package query

import (
	"math"
	"sort"

	"webdex/internal/core"
	"webdex/internal/index"
	"webdex/internal/logger"
	"webdex/internal/utils"
)

// Search runs ranked retrieval: cosine similarity between the TF-IDF query
// vector and each candidate document, term-at-a-time, rarest term first.
// At most topK results come back, highest score first, score ties by
// ascending doc_id. An empty query, a query of only unknown terms, or a
// zero-magnitude query vector all yield an empty result.
func (s *Searcher) Search(queryString string) ([]core.RankedResult, error) {
	tokens := index.Tokenize(queryString)
	if len(tokens) == 0 {
		logger.Debugf("Query %q is empty after tokenization", queryString)
		return []core.RankedResult{}, nil
	}

	// raw query term frequencies
	queryTF := make(map[string]int)
	for _, token := range tokens {
		queryTF[token]++
	}

	// fetch each distinct known term's posting list once; the same list
	// serves idf ordering and scoring below
	type queryTerm struct {
		term     string
		weight   float64 // tf_q * idf
		idf      float64
		postings []core.Posting
	}

	terms := make([]queryTerm, 0, len(queryTF))
	for term, tf := range queryTF {
		postings, err := s.getPostings(term)
		if err != nil {
			return nil, err
		}
		if len(postings) == 0 {
			continue // unknown terms contribute nothing
		}
		idf := s.idf(len(postings))
		terms = append(terms, queryTerm{
			term:     term,
			weight:   float64(tf) * idf,
			idf:      idf,
			postings: postings,
		})
	}
	if len(terms) == 0 {
		return []core.RankedResult{}, nil
	}

	// rarest first; equal idf orders by term so accumulation is deterministic
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].idf != terms[j].idf {
			return terms[i].idf > terms[j].idf
		}
		return terms[i].term < terms[j].term
	})

	scores := make(map[string]float64)
	var querySumSquares float64

	for _, qt := range terms {
		querySumSquares += qt.weight * qt.weight

		for _, posting := range qt.postings {
			docWeight := float64(posting.TF) * qt.idf
			scores[posting.DocID] += docWeight * qt.weight
		}
	}

	if querySumSquares == 0 {
		// every matched term occurs in all N documents; nothing can rank
		return []core.RankedResult{}, nil
	}
	queryMagnitude := math.Sqrt(querySumSquares)

	results := make([]core.RankedResult, 0, len(scores))
	for docID, score := range scores {
		docMagnitude, ok := s.docLens[docID]
		if !ok || docMagnitude <= 0 {
			return nil, errCorruptMagnitude(docID)
		}
		url, err := s.url(docID)
		if err != nil {
			return nil, err
		}

		results = append(results, core.RankedResult{
			DocID: docID,
			URL:   url,
			Score: score / (docMagnitude * queryMagnitude),
		})
	}

	return utils.TopK(results, s.topK), nil
}

package query

import (
	"sort"
	"strings"

	"webdex/internal/core"
	"webdex/internal/index"
	"webdex/internal/logger"
)

// BoolSearch runs conjunctive retrieval: the query is whitespace-split and
// Porter-stemmed, and only documents containing every stemmed term
// qualify. Result URLs are deduplicated, ordered by descending term
// frequency of the surviving postings, first-seen on ties.
func (s *Searcher) BoolSearch(queryString string) ([]string, error) {
	fields := strings.Fields(queryString)
	if len(fields) == 0 {
		return []string{}, nil
	}

	terms := make([]string, len(fields))
	for i, field := range fields {
		terms[i] = index.StemToken(field)
	}

	// all posting lists up front; any term with none empties the result
	lists := make([][]core.Posting, 0, len(terms))
	for _, term := range terms {
		postings, err := s.getPostings(term)
		if err != nil {
			return nil, err
		}
		if len(postings) == 0 {
			logger.Debugf("Boolean term %q has no postings", term)
			return []string{}, nil
		}
		lists = append(lists, postings)
	}

	// smallest list first so the candidate set only ever shrinks
	sort.SliceStable(lists, func(i, j int) bool {
		return len(lists[i]) < len(lists[j])
	})

	candidates := make(map[string]struct{}, len(lists[0]))
	for _, posting := range lists[0] {
		candidates[posting.DocID] = struct{}{}
	}

	for _, list := range lists[1:] {
		next := make(map[string]struct{})
		for _, posting := range list {
			if _, ok := candidates[posting.DocID]; ok {
				next[posting.DocID] = struct{}{}
			}
		}
		candidates = next
		if len(candidates) == 0 {
			return []string{}, nil
		}
	}

	// gather every surviving posting across all lists, heaviest tf first
	var survivors []core.Posting
	for _, list := range lists {
		for _, posting := range list {
			if _, ok := candidates[posting.DocID]; ok {
				survivors = append(survivors, posting)
			}
		}
	}
	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].TF > survivors[j].TF
	})

	urls := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, posting := range survivors {
		url, err := s.url(posting.DocID)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		urls = append(urls, url)
	}

	return urls, nil
}

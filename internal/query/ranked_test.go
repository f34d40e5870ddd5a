package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webdex/internal/index"
)

func urlsOf(t *testing.T, s *Searcher, queryString string) []string {
	t.Helper()
	results, err := s.Search(queryString)
	require.NoError(t, err)
	urls := make([]string, len(results))
	for i, r := range results {
		urls[i] = r.URL
	}
	return urls
}

func TestSearch(t *testing.T) {
	t.Run("single term ranks by cosine", func(t *testing.T) {
		searcher, _ := buildFixture(t)

		// fox occurs once in d1 and d3; d1's vector is shorter, so it
		// normalizes higher
		assert.Equal(t, []string{"u1", "u3"}, urlsOf(t, searcher, "fox"))
	})

	t.Run("documents covering more query terms rank higher", func(t *testing.T) {
		searcher, _ := buildFixture(t)

		urls := urlsOf(t, searcher, "quick brown fox")
		assert.Equal(t, []string{"u1", "u2", "u3"}, urls)
	})

	t.Run("scores are normalized cosines in (0,1]", func(t *testing.T) {
		searcher, _ := buildFixture(t)

		results, err := searcher.Search("quick brown fox")
		require.NoError(t, err)
		require.NotEmpty(t, results)
		for _, r := range results {
			assert.Greater(t, r.Score, 0.0)
			assert.LessOrEqual(t, r.Score, 1.0+1e-12)
		}

		// d1 contains all three query terms with tf 1 each, so its cosine
		// is 3/(2*sqrt(3)) against the uniform query vector
		assert.InDelta(t, 3.0/(2.0*math.Sqrt(3.0)), results[0].Score, 1e-9)
	})

	t.Run("unknown terms yield empty", func(t *testing.T) {
		searcher, _ := buildFixture(t)
		assert.Empty(t, urlsOf(t, searcher, "unknownterm"))
	})

	t.Run("empty query yields empty", func(t *testing.T) {
		searcher, _ := buildFixture(t)
		assert.Empty(t, urlsOf(t, searcher, ""))
		assert.Empty(t, urlsOf(t, searcher, "...!!!"))
	})

	t.Run("term in every document carries no signal", func(t *testing.T) {
		indexDir := t.TempDir()
		source := corpusSource{
			{ID: "d1", URL: "u1", HTML: []byte("<p>common alpha</p>")},
			{ID: "d2", URL: "u2", HTML: []byte("<p>common beta</p>")},
		}
		_, err := index.Build(source, index.BuildOptions{IndexDir: indexDir, ChunkSize: 10})
		require.NoError(t, err)

		searcher, err := Open(indexDir, 10)
		require.NoError(t, err)
		defer searcher.Close()

		// df == N makes idf 0, so the query vector has zero magnitude
		assert.Empty(t, urlsOf(t, searcher, "common"))

		// a term with signal still ranks; the dead term only drags d2 in
		// at score zero, behind the real match
		assert.Equal(t, []string{"u1", "u2"}, urlsOf(t, searcher, "common alpha"))
	})

	t.Run("at most top-k results", func(t *testing.T) {
		searcher, _ := buildFixture(t)

		results, err := searcher.Search("the quick brown fox lazy dogs jump sleeps")
		require.NoError(t, err)
		assert.LessOrEqual(t, len(results), 10)
	})

	t.Run("query repetition weights terms", func(t *testing.T) {
		searcher, _ := buildFixture(t)

		// doubling "dog" pulls d2 above d3's fox-only match
		urls := urlsOf(t, searcher, "dogs dogs fox")
		require.NotEmpty(t, urls)
		assert.Equal(t, "u2", urls[0])
	})
}

func TestSearchTopKBound(t *testing.T) {
	searcher, _ := buildFixture(t)

	for _, queryString := range []string{"fox", "the quick brown fox", "quick lazy dogs"} {
		results, err := searcher.Search(queryString)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(results), 10, "query %q", queryString)
	}
}

package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webdex/internal/core"
	"webdex/internal/storage"
)

// sliceSource feeds a fixed document slice, already in doc_id order
type sliceSource []core.Document

func (s sliceSource) Walk(fn func(core.Document) error) error {
	for _, doc := range s {
		if err := fn(doc); err != nil {
			return err
		}
	}
	return nil
}

func testCorpus() sliceSource {
	return sliceSource{
		{ID: "d1", URL: "u1", HTML: []byte("<html><body>the quick brown fox</body></html>")},
		{ID: "d2", URL: "u2", HTML: []byte("<html><body>quick brown dogs jump</body></html>")},
		{ID: "d3", URL: "u3", HTML: []byte("<html><body>the lazy fox sleeps</body></html>")},
	}
}

func TestBuild(t *testing.T) {
	t.Run("produces every artifact", func(t *testing.T) {
		indexDir := t.TempDir()
		summary, err := Build(testCorpus(), BuildOptions{IndexDir: indexDir, ChunkSize: 10})
		require.NoError(t, err)

		assert.Equal(t, 3, summary.IndexedDocs)
		assert.Equal(t, 8, summary.UniqueTokens)
		assert.Equal(t, 1, summary.Partials)
		assert.Greater(t, summary.IndexKB, 0.0)

		require.NoError(t, storage.VerifyArtifacts(indexDir))
	})

	t.Run("spills one partial per chunk plus the tail", func(t *testing.T) {
		indexDir := t.TempDir()
		summary, err := Build(testCorpus(), BuildOptions{IndexDir: indexDir, ChunkSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 2, summary.Partials)

		_, err = os.Stat(filepath.Join(storage.PartialIndexDir(indexDir), "partial_index_1.jsonl"))
		assert.NoError(t, err)
	})

	t.Run("final index tokens are strictly ascending", func(t *testing.T) {
		indexDir := t.TempDir()
		_, err := Build(testCorpus(), BuildOptions{IndexDir: indexDir, ChunkSize: 1})
		require.NoError(t, err)

		tokens, lists := readTokens(t, storage.FinalIndexPath(indexDir))
		for i := 1; i < len(tokens); i++ {
			assert.Less(t, tokens[i-1], tokens[i])
		}

		// doc_ids fed in ascending order stay ascending after concatenation
		for token, postings := range lists {
			for i := 1; i < len(postings); i++ {
				assert.Less(t, postings[i-1].DocID, postings[i].DocID, "token %q", token)
			}
		}
	})

	t.Run("identical input order builds byte-identical artifacts", func(t *testing.T) {
		dirA, dirB := t.TempDir(), t.TempDir()
		_, err := Build(testCorpus(), BuildOptions{IndexDir: dirA, ChunkSize: 2})
		require.NoError(t, err)
		_, err = Build(testCorpus(), BuildOptions{IndexDir: dirB, ChunkSize: 2})
		require.NoError(t, err)

		for _, name := range []string{"final_index", "secondary_index.json", "doc_id_url_map.json", "doc_len_file.json"} {
			a, err := os.ReadFile(filepath.Join(dirA, name))
			require.NoError(t, err)
			b, err := os.ReadFile(filepath.Join(dirB, name))
			require.NoError(t, err)
			assert.Equal(t, a, b, "artifact %s differs between builds", name)
		}
	})

	t.Run("empty corpus fails the build", func(t *testing.T) {
		_, err := Build(sliceSource{}, BuildOptions{IndexDir: t.TempDir(), ChunkSize: 10})
		assert.Error(t, err)
	})

	t.Run("progress callback sees every document", func(t *testing.T) {
		var calls int
		_, err := Build(testCorpus(), BuildOptions{
			IndexDir:  t.TempDir(),
			ChunkSize: 10,
			Progress:  func(done int, message string) { calls = done },
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})
}

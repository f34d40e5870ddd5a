package index

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webdex/internal/core"
)

func spillPartials(t *testing.T, dir string, partitions []map[string][]core.Posting) {
	t.Helper()
	w, err := NewSpillWriter(dir)
	require.NoError(t, err)
	for _, partition := range partitions {
		_, err := w.Spill(partition)
		require.NoError(t, err)
	}
}

func readTokens(t *testing.T, finalPath string) ([]string, map[string][]core.Posting) {
	t.Helper()
	file, err := os.Open(finalPath)
	require.NoError(t, err)
	defer file.Close()

	var tokens []string
	lists := make(map[string][]core.Posting)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		token, postings, err := ParseRecord(scanner.Bytes())
		require.NoError(t, err)
		tokens = append(tokens, token)
		lists[token] = postings
	}
	require.NoError(t, scanner.Err())
	return tokens, lists
}

func TestMerge(t *testing.T) {
	t.Run("tokens globally sorted, postings concatenated in file order", func(t *testing.T) {
		partialDir := t.TempDir()
		spillPartials(t, partialDir, []map[string][]core.Posting{
			{
				"brown": {{DocID: "d1", TF: 1}},
				"fox":   {{DocID: "d1", TF: 2}, {DocID: "d2", TF: 1}},
			},
			{
				"apple": {{DocID: "d3", TF: 1}},
				"fox":   {{DocID: "d3", TF: 5}},
			},
		})

		finalPath := filepath.Join(t.TempDir(), "final_index")
		count, err := Merge(partialDir, finalPath)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		tokens, lists := readTokens(t, finalPath)
		assert.Equal(t, []string{"apple", "brown", "fox"}, tokens)
		assert.Equal(t, []core.Posting{
			{DocID: "d1", TF: 2},
			{DocID: "d2", TF: 1},
			{DocID: "d3", TF: 5},
		}, lists["fox"], "postings across partials concatenate in file index order")
	})

	t.Run("single partial passes through", func(t *testing.T) {
		partialDir := t.TempDir()
		spillPartials(t, partialDir, []map[string][]core.Posting{
			{"fox": {{DocID: "d1", TF: 1}}},
		})

		finalPath := filepath.Join(t.TempDir(), "final_index")
		count, err := Merge(partialDir, finalPath)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("no partials is an error", func(t *testing.T) {
		_, err := Merge(t.TempDir(), filepath.Join(t.TempDir(), "final_index"))
		assert.Error(t, err)
	})

	t.Run("malformed partial names the file", func(t *testing.T) {
		partialDir := t.TempDir()
		bad := filepath.Join(partialDir, "partial_index_0.jsonl")
		require.NoError(t, os.WriteFile(bad, []byte("garbage\n"), 0o644))

		_, err := Merge(partialDir, filepath.Join(t.TempDir(), "final_index"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "partial_index_0.jsonl")
	})

	t.Run("malformed line after the first reports its offset", func(t *testing.T) {
		partialDir := t.TempDir()
		good := `{"a":[{"doc_id":"d1","tf":1}]}` + "\n"
		bad := good + "garbage\n"
		path := filepath.Join(partialDir, "partial_index_0.jsonl")
		require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

		_, err := Merge(partialDir, filepath.Join(t.TempDir(), "final_index"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "offset 31")
	})
}

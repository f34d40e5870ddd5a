package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webdex/internal/core"
)

func writeRecord(t *testing.T, dir, domain, name, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, domain), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain, name), []byte(body), 0o644))
}

func collect(t *testing.T, source Source) []core.Document {
	t.Helper()
	var docs []core.Document
	require.NoError(t, source.Walk(func(doc core.Document) error {
		docs = append(docs, doc)
		return nil
	}))
	return docs
}

func TestFileSource(t *testing.T) {
	t.Run("walks records in ascending doc_id order", func(t *testing.T) {
		dir := t.TempDir()
		writeRecord(t, dir, "bbb.com", "2.json", `{"url":"http://b/2","content":"<p>two</p>"}`)
		writeRecord(t, dir, "aaa.com", "1.json", `{"url":"http://a/1","content":"<p>one</p>"}`)
		writeRecord(t, dir, "aaa.com", "0.json", `{"url":"http://a/0","content":"<p>zero</p>"}`)

		docs := collect(t, NewFileSource(dir))
		require.Len(t, docs, 3)
		assert.Equal(t, "aaa.com/0.json", docs[0].ID)
		assert.Equal(t, "aaa.com/1.json", docs[1].ID)
		assert.Equal(t, "bbb.com/2.json", docs[2].ID)
	})

	t.Run("strips url fragments", func(t *testing.T) {
		dir := t.TempDir()
		writeRecord(t, dir, "a.com", "p.json", `{"url":"http://a.com/page#section","content":"<p>x</p>"}`)

		docs := collect(t, NewFileSource(dir))
		require.Len(t, docs, 1)
		assert.Equal(t, "http://a.com/page", docs[0].URL)
	})

	t.Run("skips malformed and empty records", func(t *testing.T) {
		dir := t.TempDir()
		writeRecord(t, dir, "a.com", "bad.json", `not json at all`)
		writeRecord(t, dir, "a.com", "empty.json", `{"url":"http://a.com/e","content":""}`)
		writeRecord(t, dir, "a.com", "good.json", `{"url":"http://a.com/g","content":"<p>ok</p>"}`)

		docs := collect(t, NewFileSource(dir))
		require.Len(t, docs, 1)
		assert.Equal(t, "a.com/good.json", docs[0].ID)
	})

	t.Run("missing corpus dir is an error", func(t *testing.T) {
		err := NewFileSource(filepath.Join(t.TempDir(), "nope")).Walk(func(core.Document) error { return nil })
		assert.Error(t, err)
	})
}

func TestStripFragment(t *testing.T) {
	assert.Equal(t, "http://x/y", StripFragment("http://x/y#frag"))
	assert.Equal(t, "http://x/y", StripFragment("http://x/y"))
	assert.Equal(t, "", StripFragment("#only"))
}

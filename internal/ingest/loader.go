// Package ingest provides document sources for indexing. A source yields
// (doc_id, html, url) records; the corpus layout on disk is one
// subdirectory per domain, one JSON record per document.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"webdex/internal/core"
	"webdex/internal/logger"
)

// Source yields corpus documents for indexing.
//
// Walk must visit documents in ascending doc_id order with unique doc_ids:
// the index merger relies on that ordering to keep concatenated posting
// lists doc_id-sorted.
type Source interface {
	// Walk calls fn once per document. A non-nil error from fn stops the
	// walk and is returned as-is.
	Walk(fn func(doc core.Document) error) error
}

// docRecord is the per-document JSON file layout in the corpus snapshot.
// Encoding is informational; record files are UTF-8 JSON so the content
// string arrives already decoded.
type docRecord struct {
	URL      string `json:"url"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// FileSource reads a corpus snapshot from the local filesystem
type FileSource struct {
	dir string
}

// NewFileSource returns a source over the corpus rooted at dir
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Walk visits every document record under the corpus root. Domains are
// visited in doc_id-prefix order and files in name order, so doc_ids
// ("domain/file") come out ascending. Records that cannot be read or parsed are logged and skipped,
// matching the loader contract that a bad page never aborts a build.
func (s *FileSource) Walk(fn func(doc core.Document) error) error {
	domains, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read corpus dir %s: %w", s.dir, err)
	}
	// order domains by their doc_id prefix ("name/"), so "a.com.au" comes
	// before "a.com" just as "a.com.au/x" sorts before "a.com/x"
	sort.Slice(domains, func(i, j int) bool {
		return domains[i].Name()+"/" < domains[j].Name()+"/"
	})

	for _, domain := range domains {
		if !domain.IsDir() {
			continue
		}

		domainPath := filepath.Join(s.dir, domain.Name())
		files, err := os.ReadDir(domainPath)
		if err != nil {
			return fmt.Errorf("failed to read corpus dir %s: %w", domainPath, err)
		}

		for _, file := range files {
			if file.IsDir() {
				continue
			}

			filePath := filepath.Join(domainPath, file.Name())
			data, err := os.ReadFile(filePath)
			if err != nil {
				logger.Errorf("Skipping unreadable document %s: %+v", filePath, err)
				continue
			}

			var record docRecord
			if err := json.Unmarshal(data, &record); err != nil {
				logger.Errorf("Skipping malformed document %s: %+v", filePath, err)
				continue
			}
			if record.Content == "" {
				logger.Debugf("Skipping empty document %s", filePath)
				continue
			}

			doc := core.Document{
				ID:   path.Join(domain.Name(), file.Name()),
				URL:  StripFragment(record.URL),
				HTML: []byte(record.Content),
			}
			if err := fn(doc); err != nil {
				return err
			}
		}
	}

	return nil
}

// StripFragment removes any #fragment from a URL
func StripFragment(url string) string {
	if i := strings.IndexByte(url, '#'); i >= 0 {
		return url[:i]
	}
	return url
}

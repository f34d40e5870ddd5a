// Package storage reads and writes the index artifacts the searcher opens
// at startup. Everything here is plain JSON: the byte layout of the
// artifacts is part of the index contract.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"webdex/internal/constants"
	"webdex/internal/logger"
)

// ErrMissingArtifact is returned when a required index artifact is absent
// at searcher startup: run 'webdex index' first to build the index.
var ErrMissingArtifact = errors.New("missing index artifact")

// FinalIndexPath returns the final index location under the index dir
func FinalIndexPath(indexDir string) string {
	return filepath.Join(indexDir, constants.FinalIndexFile)
}

// PartialIndexDir returns the spill directory under the index dir
func PartialIndexDir(indexDir string) string {
	return filepath.Join(indexDir, constants.PartialIndexDir)
}

func secondaryIndexPath(indexDir string) string {
	return filepath.Join(indexDir, constants.SecondaryIndexFile)
}

func docIDURLMapPath(indexDir string) string {
	return filepath.Join(indexDir, constants.DocIDURLMapFile)
}

func docLengthsPath(indexDir string) string {
	return filepath.Join(indexDir, constants.DocLengthsFile)
}

// FileExists checks if a regular file exists at the given path
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return !info.IsDir(), nil
}

// VerifyArtifacts checks that every artifact the searcher needs exists.
// The first missing one is reported by name.
func VerifyArtifacts(indexDir string) error {
	required := []string{
		FinalIndexPath(indexDir),
		secondaryIndexPath(indexDir),
		docIDURLMapPath(indexDir),
		docLengthsPath(indexDir),
	}

	for _, path := range required {
		exists, err := FileExists(path)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrMissingArtifact, path)
		}
	}
	return nil
}

func saveJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debugf("Wrote %s (%d bytes)", path, len(data))
	return nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// SaveSecondaryIndex persists the token -> byte offset map
func SaveSecondaryIndex(indexDir string, secondary map[string]int64) error {
	return saveJSON(secondaryIndexPath(indexDir), secondary)
}

// LoadSecondaryIndex loads the token -> byte offset map
func LoadSecondaryIndex(indexDir string) (map[string]int64, error) {
	secondary := make(map[string]int64)
	if err := loadJSON(secondaryIndexPath(indexDir), &secondary); err != nil {
		return nil, err
	}
	return secondary, nil
}

// SaveDocIDURLMap persists the doc_id -> URL map
func SaveDocIDURLMap(indexDir string, docURLs map[string]string) error {
	return saveJSON(docIDURLMapPath(indexDir), docURLs)
}

// LoadDocIDURLMap loads the doc_id -> URL map
func LoadDocIDURLMap(indexDir string) (map[string]string, error) {
	docURLs := make(map[string]string)
	if err := loadJSON(docIDURLMapPath(indexDir), &docURLs); err != nil {
		return nil, err
	}
	return docURLs, nil
}

// SaveDocLengths persists the doc_id -> vector magnitude map
func SaveDocLengths(indexDir string, docLens map[string]float64) error {
	return saveJSON(docLengthsPath(indexDir), docLens)
}

// LoadDocLengths loads the doc_id -> vector magnitude map
func LoadDocLengths(indexDir string) (map[string]float64, error) {
	docLens := make(map[string]float64)
	if err := loadJSON(docLengthsPath(indexDir), &docLens); err != nil {
		return nil, err
	}
	return docLens, nil
}

package index

import (
	"encoding/json"
	"fmt"

	"webdex/internal/core"
)

// Index files are line-delimited: each line is a JSON object with exactly
// one key, {"<token>": [postings...]}. The single-key object keeps a whole
// posting list addressable by one byte offset.

// MarshalRecord encodes one token's posting list as an index line, without
// the trailing newline.
func MarshalRecord(token string, postings []core.Posting) ([]byte, error) {
	return json.Marshal(map[string][]core.Posting{token: postings})
}

// ParseRecord decodes one index line into its token and posting list.
func ParseRecord(line []byte) (string, []core.Posting, error) {
	var record map[string][]core.Posting
	if err := json.Unmarshal(line, &record); err != nil {
		return "", nil, fmt.Errorf("invalid index record: %w", err)
	}
	if len(record) != 1 {
		return "", nil, fmt.Errorf("invalid index record: expected 1 token, got %d", len(record))
	}
	for token, postings := range record {
		if len(postings) == 0 {
			return "", nil, fmt.Errorf("invalid index record: empty posting list for %q", token)
		}
		return token, postings, nil
	}
	return "", nil, fmt.Errorf("invalid index record: empty object")
}

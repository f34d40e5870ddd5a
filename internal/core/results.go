package core

// RankedResult represents one ranked retrieval hit
type RankedResult struct {
	DocID string
	URL   string
	Score float64
}

// GetScore implements utils.Scored interface
func (r RankedResult) GetScore() float64 {
	return r.Score
}

// GetKey implements utils.Keyed interface; score ties order by doc_id
func (r RankedResult) GetKey() string {
	return r.DocID
}

// BuildSummary reports what a completed index build produced
type BuildSummary struct {
	IndexedDocs  int
	UniqueTokens int
	IndexKB      float64
	Partials     int
}

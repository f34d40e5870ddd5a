package constants

const (
	// PartialIndexDir is the subdirectory of the index dir holding spill files
	PartialIndexDir = "PARTIAL_INDEXES"

	// PartialIndexPattern formats spill file names; the sequence number is
	// monotonically increasing from 0
	PartialIndexPattern = "partial_index_%d.jsonl"

	// FinalIndexFile is the merged, token-sorted, line-delimited inverted index
	FinalIndexFile = "final_index"

	// SecondaryIndexFile maps token -> byte offset into the final index
	SecondaryIndexFile = "secondary_index.json"

	// DocIDURLMapFile maps doc_id -> URL
	DocIDURLMapFile = "doc_id_url_map.json"

	// DocLengthsFile maps doc_id -> TF-IDF vector magnitude
	DocLengthsFile = "doc_len_file.json"

	// DefaultChunkSize is how many documents a partition accumulates
	// before spilling a partial index
	DefaultChunkSize = 10000

	// DefaultTopK is the ranked retrieval result cap
	DefaultTopK = 10

	// ScannerInitialBufSize is the initial buffer size for bufio.Scanner (64KB)
	ScannerInitialBufSize = 64 * 1024
	// ScannerMaxBufSize is the maximum buffer size for bufio.Scanner (16MB).
	// A posting list line for a very common token can get long.
	ScannerMaxBufSize = 16 * 1024 * 1024
)

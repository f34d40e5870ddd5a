package core

type Config struct {
	Version uint8         `toml:"version"`
	Corpus  CorpusConfig  `toml:"corpus"`
	Index   IndexConfig   `toml:"index"`
	Search  SearchConfig  `toml:"search"`
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

type CorpusConfig struct {
	// DataDir is the root of the corpus snapshot: one subdirectory per
	// domain, one JSON record per document.
	DataDir string `toml:"data_dir"`
}

type IndexConfig struct {
	// Dir is where all index artifacts live: final_index, the JSON side
	// files, and the PARTIAL_INDEXES subdirectory.
	Dir string `toml:"dir"`

	// ChunkSize is the number of documents accumulated in memory before
	// a partial index is spilled to disk.
	ChunkSize int `toml:"chunk_size"`
}

type SearchConfig struct {
	TopK int `toml:"top_k"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

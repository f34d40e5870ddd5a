package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"webdex/internal/constants"
	"webdex/internal/core"
)

// DefaultConfigFile is looked up in the working directory when no --config
// flag is given.
const DefaultConfigFile = "webdex.toml"

// Default is the configuration used when no config file exists.
var Default = core.Config{
	Version: 1,
	Corpus: core.CorpusConfig{
		DataDir: "DEV",
	},
	Index: core.IndexConfig{
		Dir:       "index",
		ChunkSize: constants.DefaultChunkSize,
	},
	Search: core.SearchConfig{
		TopK: constants.DefaultTopK,
	},
	Server: core.ServerConfig{
		Addr: ":8080",
	},
	Logging: core.LoggingConfig{
		Level: "info",
		JSON:  false,
	},
}

// Load reads the TOML config at path. A missing file is not an error: the
// compiled-in defaults are returned so every command works out of the box.
func Load(path string) (*core.Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Index.ChunkSize <= 0 {
		cfg.Index.ChunkSize = constants.DefaultChunkSize
	}
	if cfg.Search.TopK <= 0 {
		cfg.Search.TopK = constants.DefaultTopK
	}

	return &cfg, nil
}

// Save writes cfg as TOML to path.
func Save(cfg *core.Config, path string) error {
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

package cli

import (
	"github.com/spf13/cobra"

	"webdex/internal/config"
	"webdex/internal/logger"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage webdex configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger.Header("Effective configuration")
		logger.Print("corpus.data_dir: %s", cfg.Corpus.DataDir)
		logger.Print("index.dir: %s", cfg.Index.Dir)
		logger.Print("index.chunk_size: %d", cfg.Index.ChunkSize)
		logger.Print("search.top_k: %d", cfg.Search.TopK)
		logger.Print("server.addr: %s", cfg.Server.Addr)
		logger.Print("logging.level: %s", cfg.Logging.Level)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default
		path := configPath
		if path == "" {
			path = config.DefaultConfigFile
		}
		if err := config.Save(&cfg, path); err != nil {
			return err
		}
		logger.Success("Wrote default config to %s", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

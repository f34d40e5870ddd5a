package cli

import (
	"github.com/spf13/cobra"

	"webdex/internal/config"
	"webdex/internal/core"
	"webdex/internal/logger"
)

var (
	verbose    bool
	quiet      bool
	configPath string
)

// loadConfig loads the effective configuration for a command run
func loadConfig() (*core.Config, error) {
	return config.Load(configPath)
}

var rootCmd = &cobra.Command{
	Use:   "webdex",
	Short: "Webdex - a search engine over a static HTML corpus",
	Long: `Webdex builds an on-disk inverted index over a static corpus of HTML
documents and answers keyword queries against it with TF-IDF cosine
ranking or boolean AND retrieval.`,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger after flags are parsed, with log level from config
		logLevel := ""
		jsonOutput := false
		if cfg, err := config.Load(configPath); err == nil {
			logLevel = cfg.Logging.Level
			jsonOutput = cfg.Logging.JSON
		}
		logger.Init(verbose, quiet, jsonOutput, logLevel)
	},

	Run: func(cmd *cobra.Command, args []string) {
		logger.Header("Webdex")
		logger.Print("Use 'webdex --help' to see available commands")
	},
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Enable quiet mode (only errors)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default webdex.toml)")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

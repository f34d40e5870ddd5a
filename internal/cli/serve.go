package cli

import (
	"github.com/spf13/cobra"

	"webdex/internal/logger"
	"webdex/internal/query"
	"webdex/internal/server"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search API over HTTP",
	Long: `Load the index and serve GET /search?q=<query>&mode=ranked|bool.
The index is opened read-only once at startup; queries run concurrently.`,
	Example: `  webdex serve
  webdex serve --addr :9000`,
	RunE: serveCmdExecute,
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (overrides config)")
}

func serveCmdExecute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	searcher, err := query.Open(cfg.Index.Dir, cfg.Search.TopK)
	if err != nil {
		logger.PrintError("No usable index: %v", err)
		return err
	}
	defer searcher.Close()

	addr := cfg.Server.Addr
	if addrFlag != "" {
		addr = addrFlag
	}

	return server.Run(searcher, addr)
}

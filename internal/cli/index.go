package cli

import (
	"github.com/spf13/cobra"

	"webdex/internal/display"
	"webdex/internal/index"
	"webdex/internal/ingest"
	"webdex/internal/logger"
)

var dataDirFlag string

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the search index from the corpus",
	Long: `Walk the corpus directory, build sorted partial indexes chunk by
chunk, merge them into the final on-disk index and derive the secondary
index and document magnitudes. Any existing index is rebuilt from scratch.`,
	Example: `  webdex index
  webdex index --data ./DEV`,
	RunE: indexCmdExecute,
}

func init() {
	indexCmd.Flags().StringVar(&dataDirFlag, "data", "", "Corpus directory (overrides config)")
}

func indexCmdExecute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dataDir := cfg.Corpus.DataDir
	if dataDirFlag != "" {
		dataDir = dataDirFlag
	}

	opts := index.BuildOptions{
		IndexDir:  cfg.Index.Dir,
		ChunkSize: cfg.Index.ChunkSize,
	}

	var progress *display.Progress
	if display.ShouldShowProgress() {
		progress = display.NewProgress("Indexing")
		opts.Progress = progress.Update
	}

	summary, err := index.Build(ingest.NewFileSource(dataDir), opts)
	if progress != nil {
		progress.Complete()
	}
	if err != nil {
		logger.PrintError("Index build failed: %v", err)
		return err
	}

	logger.Success("Index built in %s", cfg.Index.Dir)
	logger.Print("Number of Indexed Documents: %d", summary.IndexedDocs)
	logger.Print("Number of Unique Tokens: %d", summary.UniqueTokens)
	logger.Print("Total Number KBs of Index: %.1f kbs", summary.IndexKB)
	return nil
}

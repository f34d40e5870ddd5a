package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"webdex/internal/display"
	"webdex/internal/logger"
	"webdex/internal/query"
)

var booleanFlag bool

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the index",
	Long: `Search the built index. With a query on the command line one search
runs and the process exits; with no arguments an interactive loop reads
queries from stdin.

Ranked mode (default) scores documents by TF-IDF cosine similarity and
returns the top search.top_k (10 by default). Boolean mode (--boolean) returns every document
containing all query terms.`,
	Example: `  webdex search quick brown fox
  webdex search --boolean quick brown
  webdex search`,
	RunE: searchCmdExecute,
}

func init() {
	searchCmd.Flags().BoolVarP(&booleanFlag, "boolean", "b", false, "Boolean AND retrieval instead of ranked")
}

func searchCmdExecute(cmd *cobra.Command, args []string) error {
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

	if len(args) > 0 {
		return runQuery(searcher, strings.Join(args, " "))
	}

	// interactive loop
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter search query: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		queryString := strings.TrimSpace(scanner.Text())
		if queryString == "" {
			continue
		}
		if err := runQuery(searcher, queryString); err != nil {
			return err
		}
	}
}

func runQuery(searcher *query.Searcher, queryString string) error {
	start := time.Now()

	if booleanFlag {
		urls, err := searcher.BoolSearch(queryString)
		if err != nil {
			return err
		}
		display.RenderURLs(urls, time.Since(start))
		return nil
	}

	results, err := searcher.Search(queryString)
	if err != nil {
		return err
	}
	display.RenderRanked(results, time.Since(start))
	return nil
}

package display

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"webdex/internal/core"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold).SprintfFunc()
	rankColor   = color.New(color.FgYellow).SprintfFunc()
	timeColor   = color.New(color.FgWhite).SprintFunc()
)

// RenderRanked prints ranked results as a rank/score/URL table
func RenderRanked(results []core.RankedResult, elapsed time.Duration) {
	if len(results) == 0 {
		fmt.Println("No results.")
		renderElapsed(elapsed)
		return
	}

	tbl := table.New("#", "Score", "URL")
	tbl.WithHeaderFormatter(headerColor).WithFirstColumnFormatter(rankColor)

	for i, result := range results {
		tbl.AddRow(i+1, fmt.Sprintf("%.4f", result.Score), result.URL)
	}
	tbl.Print()

	renderElapsed(elapsed)
}

// RenderURLs prints boolean results as a numbered URL list
func RenderURLs(urls []string, elapsed time.Duration) {
	if len(urls) == 0 {
		fmt.Println("No results.")
		renderElapsed(elapsed)
		return
	}

	for i, url := range urls {
		fmt.Printf("%s %s\n", rankColor("%2d.", i+1), url)
	}

	renderElapsed(elapsed)
}

func renderElapsed(elapsed time.Duration) {
	fmt.Println(timeColor(fmt.Sprintf("Query processed in %.2f ms", float64(elapsed.Microseconds())/1000)))
}

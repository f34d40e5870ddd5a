// Package server exposes the query evaluator over HTTP.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"webdex/internal/core"
	"webdex/internal/logger"
	"webdex/internal/query"
)

// searchResponse is the JSON body of a successful /search call
type searchResponse struct {
	URLs      []string `json:"urls"`
	ElapsedMS float64  `json:"elapsed_ms"`
}

// New builds the HTTP router around an opened searcher. The searcher is
// safe for concurrent handlers; nothing here mutates index state.
func New(searcher *query.Searcher) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "docs": searcher.N()})
	})

	router.GET("/search", func(c *gin.Context) {
		queryString := c.Query("q")
		if queryString == "" {
			queryString = c.Query("query")
		}
		mode := c.DefaultQuery("mode", "ranked")

		start := time.Now()

		var urls []string
		var err error
		switch mode {
		case "ranked":
			var results []core.RankedResult
			results, err = searcher.Search(queryString)
			if err == nil {
				urls = make([]string, len(results))
				for i, result := range results {
					urls[i] = result.URL
				}
			}
		case "bool":
			urls, err = searcher.BoolSearch(queryString)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be 'ranked' or 'bool'"})
			return
		}

		if err != nil {
			if errors.Is(err, query.ErrCorruptIndex) {
				logger.Errorf("Corrupt index serving %q: %+v", queryString, err)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, searchResponse{
			URLs:      urls,
			ElapsedMS: float64(time.Since(start).Microseconds()) / 1000,
		})
	})

	return router
}

// Run starts the server on addr and blocks
func Run(searcher *query.Searcher, addr string) error {
	logger.Infof("Serving search API on %s", addr)
	return New(searcher).Run(addr)
}

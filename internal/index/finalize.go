package index

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"webdex/internal/constants"
	"webdex/internal/logger"
)

// Finalize makes one sequential pass over the final index and derives the
// two query-time artifacts: the secondary index (token -> byte offset of
// its line) and the document magnitude map (doc_id -> L2 norm of the
// document's TF-IDF vector). n is the corpus cardinality.
//
// idf(t) = ln(n / df(t)); a token present in every document has idf 0 and
// contributes nothing to any magnitude.
func Finalize(finalPath string, n int) (map[string]int64, map[string]float64, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("finalize: corpus cardinality must be positive, got %d", n)
	}

	file, err := os.Open(finalPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open final index %s: %w", finalPath, err)
	}
	defer file.Close()

	reader := bufio.NewReaderSize(file, constants.ScannerInitialBufSize)

	secondary := make(map[string]int64)
	acc := make(map[string]float64)

	var offset int64
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) == 0 && err == io.EOF {
			break
		}
		if err != nil && err != io.EOF {
			return nil, nil, fmt.Errorf("failed reading final index %s at offset %d: %w", finalPath, offset, err)
		}

		record := line
		if record[len(record)-1] == '\n' {
			record = record[:len(record)-1]
		}

		token, postings, perr := ParseRecord(record)
		if perr != nil {
			return nil, nil, fmt.Errorf("malformed final index %s at offset %d: %w", finalPath, offset, perr)
		}

		secondary[token] = offset

		idf := math.Log(float64(n) / float64(len(postings)))
		for _, posting := range postings {
			weight := float64(posting.TF) * idf
			acc[posting.DocID] += weight * weight
		}

		offset += int64(len(line))
		if err == io.EOF {
			break
		}
	}

	docLens := make(map[string]float64, len(acc))
	for docID, sumSquares := range acc {
		docLens[docID] = math.Sqrt(sumSquares)
	}

	logger.Infof("Finalized index: %d tokens, %d document magnitudes", len(secondary), len(docLens))
	return secondary, docLens, nil
}

package parser

import (
	"strings"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
)

// HeaderScanRows limits how deep into a table the locator looks.
const HeaderScanRows = 15

// minHeaderScore rejects rows that only match by accident.
const minHeaderScore = 2

// HeaderLocator scores candidate rows to identify the column header.
type HeaderLocator struct {
	cfg Config
}

// NewHeaderLocator creates a locator over the given keyword config.
func NewHeaderLocator(cfg Config) *HeaderLocator {
	return &HeaderLocator{cfg: cfg}
}

// Locate scans the first HeaderScanRows rows and returns the 0-based index
// and cells of the best-scoring row. Each cell containing a header keyword
// scores one point (only the first keyword per cell counts), and a row with
// at least 3 non-empty cells scores one bonus point. Ties keep the earliest
// row. Fails with no_header_found when nothing reaches minHeaderScore.
func (l *HeaderLocator) Locate(rows [][]string) (int, []string, error) {
	bestScore := 0
	bestIdx := -1
	var bestRow []string

	limit := len(rows)
	if limit > HeaderScanRows {
		limit = HeaderScanRows
	}

	for idx := 0; idx < limit; idx++ {
		row := rows[idx]
		if len(row) == 0 {
			continue
		}

		score := 0
		nonEmpty := 0
		for _, cell := range row {
			c := strings.ToLower(strings.TrimSpace(cell))
			if c == "" {
				continue
			}
			nonEmpty++
			for _, kw := range l.cfg.HeaderKeywords {
				if strings.Contains(c, kw) {
					score++
					break
				}
			}
		}
		if nonEmpty >= 3 {
			score++
		}

		if score > bestScore {
			bestScore = score
			bestIdx = idx
			bestRow = row
		}
	}

	if bestScore < minHeaderScore {
		return 0, nil, model.NewParseError(model.ErrNoHeaderFound, "")
	}
	return bestIdx, bestRow, nil
}

package parser

import "strings"

// minRowCells is the fewest non-empty cells a data row may have.
const minRowCells = 2

// IsEndRow reports whether a row marks the end of a data block: every cell
// empty, or a terminal keyword (total, i alt, ...) in one of the first three
// cells.
func (c Config) IsEndRow(row []string) bool {
	if len(row) == 0 {
		return true
	}

	if nonEmptyCount(row) == 0 {
		return true
	}

	limit := len(row)
	if limit > 3 {
		limit = 3
	}
	for _, cell := range row[:limit] {
		lower := strings.ToLower(strings.TrimSpace(cell))
		if lower == "" {
			continue
		}
		if containsAny(lower, c.EndRowKeywords) {
			return true
		}
	}
	return false
}

// rowSignature builds the case-insensitive, order-preserving tuple of a
// row's non-empty cells, used to recognize repeated headers across merged
// tables. The unit separator keeps distinct tuples from colliding.
func rowSignature(row []string) string {
	parts := make([]string, 0, len(row))
	for _, cell := range row {
		c := strings.ToLower(strings.TrimSpace(cell))
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, "\x1f")
}

func nonEmptyCount(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}

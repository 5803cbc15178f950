package reader

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/parser"
)

// Geometry thresholds in PDF points, relative to the fragment font size.
// Glyphs inside a word nearly touch; a word gap is about a quarter em and a
// column gap is well over one em.
const (
	lineTolerance = 2.0
	wordGapEm     = 0.25
	cellGapEm     = 1.1
)

// PDF extracts tables from the text layer of a PDF through ledongthuc/pdf.
// Each page with tabular text yields one table: text fragments are grouped
// into rows by baseline and split into cells on horizontal gaps.
type PDF struct{}

// ExtractTables implements parser.TableExtractor.
func (PDF) ExtractTables(path string) ([]parser.Table, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) ||
			strings.Contains(strings.ToLower(err.Error()), "encrypted") {
			return nil, 0, model.NewParseError(model.ErrPasswordProtected, "")
		}
		return nil, 0, model.NewParseError(model.ErrCorruptedFile,
			fmt.Sprintf("Could not open PDF: %v", err))
	}
	defer f.Close()

	pages := r.NumPage()
	var tables []parser.Table
	for pageNum := 1; pageNum <= pages; pageNum++ {
		rows := extractPageRows(r, pageNum)
		if len(rows) > 0 {
			tables = append(tables, parser.Table{Page: pageNum, Rows: rows})
		}
	}
	return tables, pages, nil
}

// extractPageRows reads one page's text fragments into cell rows. The
// underlying reader panics on some malformed content streams; such pages
// are treated as empty.
func extractPageRows(r *pdf.Reader, pageNum int) (rows [][]string) {
	defer func() {
		if recover() != nil {
			rows = nil
		}
	}()

	page := r.Page(pageNum)
	if page.V.IsNull() {
		return nil
	}

	texts := page.Content().Text
	if len(texts) == 0 {
		return nil
	}

	// Top-to-bottom (PDF Y grows upward), then left-to-right.
	sort.SliceStable(texts, func(i, j int) bool {
		if texts[i].Y != texts[j].Y {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	var line []pdf.Text
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		if len(line) > 0 && line[0].Y-t.Y > lineTolerance {
			if cells := lineCells(line); len(cells) > 0 {
				rows = append(rows, cells)
			}
			line = line[:0]
		}
		line = append(line, t)
	}
	if cells := lineCells(line); len(cells) > 0 {
		rows = append(rows, cells)
	}
	return rows
}

// lineCells joins a baseline's fragments, starting a new cell at every
// column-sized gap and a new word at every word-sized gap.
func lineCells(line []pdf.Text) []string {
	if len(line) == 0 {
		return nil
	}

	var cells []string
	var cell strings.Builder

	flush := func() {
		if s := strings.TrimSpace(cell.String()); s != "" {
			cells = append(cells, s)
		}
		cell.Reset()
	}

	prevEnd := line[0].X
	for i, t := range line {
		if i > 0 {
			gap := t.X - prevEnd
			em := t.FontSize
			if em <= 0 {
				em = 10
			}
			switch {
			case gap > em*cellGapEm:
				flush()
			case gap > em*wordGapEm:
				cell.WriteByte(' ')
			}
		}
		cell.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	flush()
	return cells
}

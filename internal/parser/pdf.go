package parser

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
)

var ocrCellSplit = regexp.MustCompile(`\s{2,}|\t`)

// parsePDF merges extracted tables across pages in page order. Tables
// concatenate sequentially, so sentinel rows are skipped rather than
// terminating extraction, and any row matching a previously accepted header
// signature is dropped. When the extractor finds no tables the OCR engine
// takes over with a low-confidence pseudo-table per page.
func (s *Service) parsePDF(path string) (*model.ParseResult, error) {
	result := &model.ParseResult{
		Filename:      filepath.Base(path),
		SourceType:    model.SourcePDF,
		Columns:       []string{},
		ColumnMapping: map[string]model.FieldTag{},
		ParseWarnings: []string{},
		Confidence:    model.ConfidenceHigh,
	}

	extracted, pages, err := s.pdfTables.ExtractTables(path)
	if err != nil {
		return nil, err
	}
	result.SourceInfo.Pages = pages

	// One header line alone is not a table.
	var tables []Table
	for _, t := range extracted {
		if len(t.Rows) > 1 {
			tables = append(tables, t)
		}
	}
	result.SourceInfo.TablesFound = len(tables)

	if len(tables) == 0 {
		result.ParseWarnings = append(result.ParseWarnings,
			"No tables found in text layer, attempting OCR")
		tables, err = s.ocrTables(path)
		if err != nil {
			return nil, err
		}
		result.SourceInfo.OCRUsed = true
		result.Confidence = result.Confidence.Downgrade(model.ConfidenceLow)
	}

	if len(tables) == 0 {
		return nil, model.NewParseError(model.ErrNoDataFound, "No tables found in PDF")
	}

	var allRows []model.RawRow
	headerFound := false
	seenHeaders := make(map[string]bool)

	for _, table := range tables {
		rows := table.Rows
		var dataRows [][]string

		if !headerFound {
			headerIdx, headerRow, err := s.locator.Locate(rows)
			if err != nil {
				continue
			}
			result.HeaderRow = headerIdx + 1
			result.Columns = cleanCells(headerRow)
			result.ColumnMapping = s.mapper.Map(headerRow)
			headerFound = true

			seenHeaders[rowSignature(headerRow)] = true
			dataRows = rows[headerIdx+1:]
		} else {
			// Later tables often repeat the header as their first row.
			if len(rows) > 0 && seenHeaders[rowSignature(rows[0])] {
				dataRows = rows[1:]
			} else {
				dataRows = rows
			}
		}

		for offset, row := range dataRows {
			if s.cfg.IsEndRow(row) {
				continue
			}
			raw := cleanCells(row)
			if nonEmptyCount(raw) < minRowCells {
				continue
			}
			if seenHeaders[rowSignature(raw)] {
				continue
			}
			allRows = append(allRows, model.RawRow{
				Raw:    raw,
				Source: fmt.Sprintf("page_%d", table.Page),
				RowNum: offset + 1, // table-local; Source disambiguates
			})
		}
	}

	if !headerFound {
		return nil, model.NewParseError(model.ErrNoHeaderFound, "")
	}
	if len(allRows) == 0 {
		return nil, model.NewParseError(model.ErrNoDataFound, "")
	}

	result.Rows = allRows
	result.TotalRows = len(allRows)
	result.Summary, result.DataQuality = s.aggregator.Summarize(allRows, result.Columns, result.ColumnMapping)
	return result, nil
}

// ocrTables turns each OCR'd page into one pseudo-table: non-blank lines
// split into cells on runs of two or more spaces or a tab.
func (s *Service) ocrTables(path string) ([]Table, error) {
	texts, err := s.ocr.RecognizePages(path)
	if err != nil {
		return nil, err
	}

	var tables []Table
	for pageIdx, text := range texts {
		var rows [][]string
		for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			var cells []string
			for _, cell := range ocrCellSplit.Split(line, -1) {
				if c := strings.TrimSpace(cell); c != "" {
					cells = append(cells, c)
				}
			}
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
		}
		if len(rows) > 0 {
			tables = append(tables, Table{Page: pageIdx + 1, Rows: rows})
		}
	}
	return tables, nil
}

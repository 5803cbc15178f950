package parser

import (
	"fmt"
	"path/filepath"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
)

// minSheetRows is the fewest raw rows a sheet needs to be considered; a
// header plus anything less than two rows is noise.
const minSheetRows = 3

// parseSpreadsheet iterates sheets in workbook order. The header and column
// mapping are fixed by the first sheet where the locator succeeds; every
// later sheet still re-runs the locator to find its own data-start offset.
// Per-sheet read failures become warnings and downgrade confidence to
// medium instead of aborting the file.
func (s *Service) parseSpreadsheet(path string) (*model.ParseResult, error) {
	src, err := s.spreadsheets.OpenSpreadsheet(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	result := &model.ParseResult{
		Filename:      filepath.Base(path),
		SourceType:    model.SourceSpreadsheet,
		Columns:       []string{},
		ColumnMapping: map[string]model.FieldTag{},
		ParseWarnings: []string{},
		Confidence:    model.ConfidenceHigh,
	}

	sheetNames := src.SheetNames()
	result.SourceInfo.SheetsFound = sheetNames
	result.SourceInfo.SheetsUsed = []string{}

	var allRows []model.RawRow
	headerFound := false

	for _, sheetName := range sheetNames {
		rows, err := src.SheetRows(sheetName)
		if err != nil {
			result.ParseWarnings = append(result.ParseWarnings,
				fmt.Sprintf("Sheet '%s' error: %v", sheetName, err))
			result.Confidence = result.Confidence.Downgrade(model.ConfidenceMedium)
			continue
		}

		if len(rows) < minSheetRows {
			result.ParseWarnings = append(result.ParseWarnings,
				fmt.Sprintf("Sheet '%s' skipped - insufficient rows", sheetName))
			continue
		}

		headerIdx, headerRow, err := s.locator.Locate(rows)
		if err != nil {
			result.ParseWarnings = append(result.ParseWarnings,
				fmt.Sprintf("Sheet '%s' skipped - no header found", sheetName))
			continue
		}
		if !headerFound {
			result.HeaderRow = headerIdx + 1 // 1-indexed
			result.Columns = cleanCells(headerRow)
			result.ColumnMapping = s.mapper.Map(headerRow)
			headerFound = true
		}

		rentType := GetRentType(sheetName)
		sheetRowCount := 0

		for offset, row := range rows[headerIdx+1:] {
			if s.cfg.IsEndRow(row) {
				break
			}
			raw := cleanCells(row)
			if nonEmptyCount(raw) < minRowCells {
				continue
			}
			allRows = append(allRows, model.RawRow{
				Raw:      raw,
				Source:   sheetName,
				RowNum:   headerIdx + offset + 2, // 1-indexed, after the header
				RentType: rentType,
			})
			sheetRowCount++
		}

		if sheetRowCount > 0 {
			result.SourceInfo.SheetsUsed = append(result.SourceInfo.SheetsUsed, sheetName)
		} else {
			result.ParseWarnings = append(result.ParseWarnings,
				fmt.Sprintf("Sheet '%s' skipped - no data rows", sheetName))
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

// cleanCells copies a row so later filtering cannot alias reader buffers.
func cleanCells(row []string) []string {
	out := make([]string, len(row))
	copy(out, row)
	return out
}

package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
)

const (
	dataSheet    = "Data"
	summarySheet = "Summary"
)

// WriteWorkbook renders a parse result into a normalized two-sheet workbook:
// the cleaned rows under their original header, and the summary with the
// data-quality counts.
func WriteWorkbook(result *model.ParseResult) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := fillData(f, result); err != nil {
		return nil, err
	}
	if err := fillSummary(f, result); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func fillData(f *excelize.File, result *model.ParseResult) error {
	header := append([]string{"Source", "Row"}, result.Columns...)
	if err := setRow(f, dataSheet, 1, header); err != nil {
		return err
	}

	for i, row := range result.Rows {
		cells := append([]string{row.Source, fmt.Sprintf("%d", row.RowNum)}, row.Raw...)
		if err := setRow(f, dataSheet, i+2, cells); err != nil {
			return err
		}
	}

	return f.SetColWidth(dataSheet, "A", "B", 14)
}

func fillSummary(f *excelize.File, result *model.ParseResult) error {
	s := result.Summary
	q := result.DataQuality

	lines := [][]interface{}{
		{"Filename", result.Filename},
		{"Confidence", string(result.Confidence)},
		{"Total units", s.TotalUnits},
		{"Total sqm", s.TotalSqm},
		{"Total annual rent", s.TotalAnnualRent},
		{"Avg rent per sqm", s.AvgRentPerSqm},
		{"Units with rent", s.UnitsWithRent},
		{"Units with sqm", s.UnitsWithSqm},
		{"Total vacant", s.TotalVacant},
		{"Rows missing sqm", len(q.RowsMissingSqm)},
		{"Rows missing rent", len(q.RowsMissingRent)},
		{"Suspicious rows", len(q.RowsSuspicious)},
	}

	row := 1
	for _, line := range lines {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(summarySheet, cell, &line); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
		row++
	}

	// Category breakdown block.
	row++
	headerCell, _ := excelize.CoordinatesToCellName(1, row)
	header := []interface{}{"Category", "Count", "Sqm", "Rent", "Vacant"}
	if err := f.SetSheetRow(summarySheet, headerCell, &header); err != nil {
		return fmt.Errorf("failed to write breakdown header: %w", err)
	}
	row++
	for _, cat := range []string{"bolig", "erhverv", "parkering", "andet"} {
		stats := s.UnitTypeBreakdown[cat]
		cell, _ := excelize.CoordinatesToCellName(1, row)
		line := []interface{}{cat, stats.Count, stats.Sqm, stats.Rent, stats.Vacant}
		if err := f.SetSheetRow(summarySheet, cell, &line); err != nil {
			return fmt.Errorf("failed to write breakdown row: %w", err)
		}
		row++
	}

	return f.SetColWidth(summarySheet, "A", "A", 20)
}

func setRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	cell, _ := excelize.CoordinatesToCellName(1, rowNum)
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}

package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
)

func TestExcel_OpenAndReadSheets(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lejeliste.xlsx")

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Oversigt"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	if _, err := f.NewSheet("Parkering"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	rows := [][]interface{}{
		{"Lejemål", "Areal", "Leje"},
		{"A1", 50, "10.000"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Oversigt", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	_ = f.Close()

	src, err := Excel{}.OpenSpreadsheet(path)
	if err != nil {
		t.Fatalf("OpenSpreadsheet: %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })

	names := src.SheetNames()
	if len(names) != 2 || names[0] != "Oversigt" {
		t.Fatalf("sheet names=%v", names)
	}

	got, err := src.SheetRows("Oversigt")
	if err != nil {
		t.Fatalf("SheetRows: %v", err)
	}
	if len(got) != 2 || got[0][0] != "Lejemål" || got[1][1] != "50" {
		t.Fatalf("rows=%v", got)
	}
}

func TestExcel_CorruptedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("not a workbook"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Excel{}.OpenSpreadsheet(path)
	pe, ok := model.AsParseError(err)
	if !ok || pe.Kind != model.ErrCorruptedFile {
		t.Fatalf("expected corrupted_file, got %v", err)
	}
}

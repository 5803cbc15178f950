package reader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/parser"
)

// Excel reads spreadsheet workbooks through excelize.
type Excel struct{}

// OpenSpreadsheet opens a workbook, translating open failures into the
// password_protected / corrupted_file kinds.
func (Excel) OpenSpreadsheet(path string) (parser.SheetSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "password") || strings.Contains(msg, "encrypted") {
			return nil, model.NewParseError(model.ErrPasswordProtected, "")
		}
		return nil, model.NewParseError(model.ErrCorruptedFile,
			fmt.Sprintf("Could not open file: %v", err))
	}
	return &excelSource{f: f}, nil
}

type excelSource struct {
	f *excelize.File
}

func (s *excelSource) SheetNames() []string {
	return s.f.GetSheetList()
}

func (s *excelSource) SheetRows(name string) ([][]string, error) {
	rows, err := s.f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return rows, nil
}

func (s *excelSource) Close() error {
	return s.f.Close()
}

package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
)

// Service is the per-file orchestrator. It holds no mutable state across
// files, so one Service may parse independent files concurrently as long as
// the injected collaborators are re-entrant.
type Service struct {
	cfg          Config
	locator      *HeaderLocator
	mapper       *ColumnMapper
	aggregator   *Aggregator
	spreadsheets SpreadsheetOpener
	pdfTables    TableExtractor
	ocr          OCREngine
}

// NewService wires the engine with its external collaborators.
func NewService(cfg Config, spreadsheets SpreadsheetOpener, pdfTables TableExtractor, ocr OCREngine) *Service {
	return &Service{
		cfg:          cfg,
		locator:      NewHeaderLocator(cfg),
		mapper:       NewColumnMapper(cfg),
		aggregator:   NewAggregator(cfg),
		spreadsheets: spreadsheets,
		pdfTables:    pdfTables,
		ocr:          ocr,
	}
}

// ParseFile parses one rent roll file, selecting the pipeline by extension.
// Unknown extensions fail with invalid_file_type before any read attempt.
func (s *Service) ParseFile(path string) (*model.ParseResult, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, model.NewParseError(model.ErrFileNotFound, fmt.Sprintf("File not found: %s", path))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls", ".xlsm":
		return s.parseSpreadsheet(path)
	case ".pdf":
		return s.parsePDF(path)
	default:
		return nil, model.NewParseError(model.ErrInvalidFileType, "")
	}
}

// GetRentType infers the rent type from a sheet name, or returns "".
func GetRentType(sheetName string) string {
	name := strings.ToLower(sheetName)
	if strings.Contains(name, "parkering") || strings.Contains(name, "p-plads") {
		return "parkering"
	}
	if strings.Contains(name, "erhverv") || strings.Contains(name, "commercial") {
		return "erhverv"
	}
	return ""
}

package parser

// The external collaborators (spreadsheet reader, PDF table extractor, OCR
// engine) are modeled as blocking, all-or-nothing interfaces: they return
// the full content or a *model.ParseError, never partial results. The engine
// owns no cancellation; callers bound file size and wall clock at the edge.

// SheetSource is one opened spreadsheet.
type SheetSource interface {
	// SheetNames returns the sheet names in workbook order.
	SheetNames() []string
	// SheetRows returns every row of a sheet as cell strings.
	SheetRows(name string) ([][]string, error)
	Close() error
}

// SpreadsheetOpener opens spreadsheet files.
type SpreadsheetOpener interface {
	OpenSpreadsheet(path string) (SheetSource, error)
}

// Table is one extracted table and the 1-based page it came from.
type Table struct {
	Page int
	Rows [][]string
}

// TableExtractor pulls tables out of a text-layer PDF in page order.
type TableExtractor interface {
	// ExtractTables returns all tables plus the page count. An empty table
	// slice with a nil error means the PDF has no extractable text tables
	// and the caller should fall back to OCR.
	ExtractTables(path string) (tables []Table, pages int, err error)
}

// OCREngine renders PDF pages to images and recognizes their text. Fallback
// only.
type OCREngine interface {
	// RecognizePages returns the recognized text of every page in page
	// order; pages that could not be recognized come back blank.
	RecognizePages(path string) ([]string, error)
}

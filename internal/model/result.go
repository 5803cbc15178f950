package model

// SourceType tells which pipeline produced a result.
type SourceType string

const (
	SourceSpreadsheet SourceType = "spreadsheet"
	SourcePDF         SourceType = "pdf"
)

// Confidence is the coarse reliability grade of an extraction.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

var confidenceRank = map[Confidence]int{
	ConfidenceHigh:   3,
	ConfidenceMedium: 2,
	ConfidenceLow:    1,
}

// Downgrade lowers c to target. The grade never improves: downgrading a low
// result to medium keeps it low.
func (c Confidence) Downgrade(target Confidence) Confidence {
	if confidenceRank[target] < confidenceRank[c] {
		return target
	}
	return c
}

// FieldTag is a canonical semantic column identifier.
type FieldTag string

const (
	TagUnitID         FieldTag = "unit_id"
	TagSqm            FieldTag = "sqm"
	TagAnnualRent     FieldTag = "annual_rent"
	TagFloor          FieldTag = "floor"
	TagUnitType       FieldTag = "unit_type"
	TagLeaseStart     FieldTag = "lease_start"
	TagLeaseEnd       FieldTag = "lease_end"
	TagNotes          FieldTag = "notes"
	TagRentAdjustment FieldTag = "rent_adjustment"
	TagAddress        FieldTag = "address"
	TagPostalCode     FieldTag = "postal_code"
	TagDoor           FieldTag = "door"
	TagRooms          FieldTag = "rooms"
	TagTenantName     FieldTag = "tenant_name"
	TagUnitStatus     FieldTag = "unit_status"
)

// RawRow is one cleaned data row with its provenance. RowNum is 1-based and
// unique only within its source segment (sheet, or table on a PDF page).
type RawRow struct {
	Raw      []string `json:"raw"`
	Source   string   `json:"source"`
	RowNum   int      `json:"row_num"`
	RentType string   `json:"rent_type,omitempty"`
}

// SourceInfo describes what the collaborators found in the file. The
// spreadsheet pipeline fills the sheet fields, the PDF pipeline the rest.
type SourceInfo struct {
	SheetsFound []string `json:"sheets_found,omitempty"`
	SheetsUsed  []string `json:"sheets_used,omitempty"`
	Pages       int      `json:"pages,omitempty"`
	TablesFound int      `json:"tables_found,omitempty"`
	OCRUsed     bool     `json:"ocr_used,omitempty"`
}

// CategoryStats is the per-category slice of the summary breakdown.
type CategoryStats struct {
	Count  int     `json:"count"`
	Sqm    float64 `json:"sqm"`
	Rent   float64 `json:"rent"`
	Vacant int     `json:"vacant"`
}

// Summary holds the aggregate statistics over all accepted rows.
type Summary struct {
	TotalUnits        int                      `json:"total_units"`
	TotalSqm          float64                  `json:"total_sqm"`
	TotalAnnualRent   float64                  `json:"total_annual_rent"`
	AvgRentPerSqm     float64                  `json:"avg_rent_per_sqm"`
	UnitsWithRent     int                      `json:"units_with_rent"`
	UnitsWithSqm      int                      `json:"units_with_sqm"`
	TotalVacant       int                      `json:"total_vacant"`
	UnitTypeBreakdown map[string]CategoryStats `json:"unit_type_breakdown"`
}

// SuspiciousRow flags a value that parsed but looks wrong.
type SuspiciousRow struct {
	RowNum int     `json:"row_num"`
	Issue  string  `json:"issue"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
}

// DataQuality is the diagnostics report accompanying a summary.
type DataQuality struct {
	RowsMissingSqm  []int           `json:"rows_missing_sqm"`
	RowsMissingRent []int           `json:"rows_missing_rent"`
	RowsSuspicious  []SuspiciousRow `json:"rows_suspicious"`
	UnmappedColumns []string        `json:"unmapped_columns"`
}

// ParseResult is the normalized record for one parsed file. It is built once
// by the pipeline and not mutated afterwards.
type ParseResult struct {
	Filename      string              `json:"filename"`
	SourceType    SourceType          `json:"source_type"`
	SourceInfo    SourceInfo          `json:"source_info"`
	HeaderRow     int                 `json:"header_row"`
	Columns       []string            `json:"columns"`
	ColumnMapping map[string]FieldTag `json:"column_mapping"`
	Rows          []RawRow            `json:"rows"`
	TotalRows     int                 `json:"total_rows"`
	ParseWarnings []string            `json:"parse_warnings"`
	Confidence    Confidence          `json:"confidence"`
	Summary       Summary             `json:"summary"`
	DataQuality   DataQuality         `json:"data_quality"`
}

package store

import (
	"path/filepath"
	"testing"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "rentroll.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestParseLog_RoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	result := &model.ParseResult{
		Filename:      "lejeliste.xlsx",
		SourceType:    model.SourceSpreadsheet,
		HeaderRow:     3,
		Columns:       []string{"Lejemål", "Areal"},
		ColumnMapping: map[string]model.FieldTag{"Lejemål": model.TagUnitID, "Areal": model.TagSqm},
		Rows: []model.RawRow{
			{Raw: []string{"A1", "50"}, Source: "Ark1", RowNum: 4},
		},
		TotalRows:  1,
		Confidence: model.ConfidenceHigh,
	}

	id, err := s.LogSuccess(result)
	if err != nil {
		t.Fatalf("LogSuccess: %v", err)
	}
	if id <= 0 {
		t.Fatalf("id=%d", id)
	}

	loaded, err := s.GetResult(id)
	if err != nil {
		t.Fatalf("GetResult: %v", err)
	}
	if loaded.Filename != "lejeliste.xlsx" || loaded.TotalRows != 1 {
		t.Fatalf("loaded=%+v", loaded)
	}
	if loaded.ColumnMapping["Areal"] != model.TagSqm {
		t.Fatalf("column_mapping lost: %v", loaded.ColumnMapping)
	}
}

func TestParseLog_ListRecent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	if _, err := s.LogSuccess(&model.ParseResult{Filename: "a.xlsx", SourceType: model.SourceSpreadsheet, TotalRows: 2, Confidence: model.ConfidenceHigh}); err != nil {
		t.Fatalf("LogSuccess: %v", err)
	}
	if err := s.LogFailure("b.pdf", model.NewParseError(model.ErrNoHeaderFound, "")); err != nil {
		t.Fatalf("LogFailure: %v", err)
	}

	entries, err := s.ListRecent(10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries=%d want=2", len(entries))
	}
	// Newest first.
	if entries[0].Filename != "b.pdf" || entries[0].Status != "error" {
		t.Fatalf("entries[0]=%+v", entries[0])
	}
	if entries[0].ErrorKind != "no_header_found" {
		t.Fatalf("error_kind=%q", entries[0].ErrorKind)
	}
	if entries[1].Filename != "a.xlsx" || entries[1].Status != "ok" {
		t.Fatalf("entries[1]=%+v", entries[1])
	}
}

func TestParseLog_GetResultRejectsFailures(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.LogFailure("broken.pdf", model.NewParseError(model.ErrCorruptedFile, "")); err != nil {
		t.Fatalf("LogFailure: %v", err)
	}
	if _, err := s.GetResult(1); err == nil {
		t.Fatalf("expected error for failed entry")
	}
}

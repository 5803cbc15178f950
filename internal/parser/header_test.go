package parser

import (
	"testing"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
)

func TestHeaderLocator_FindsDanishHeader(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Ejendomsoversigt 2024"},
		{""},
		{"Lejnr.", "Areal", "Leje", "Etage", "Bem."},
		{"A1", "50", "10.000", "1", ""},
	}

	idx, header, err := NewHeaderLocator(DefaultConfig()).Locate(rows)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if idx != 2 {
		t.Fatalf("header index=%d want=2", idx)
	}
	if header[0] != "Lejnr." {
		t.Fatalf("unexpected header row: %v", header)
	}
}

func TestHeaderLocator_TiesFavorEarliestRow(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Lejemål", "Areal", "Leje"},
		{"Lejemål", "Areal", "Leje"},
	}

	idx, _, err := NewHeaderLocator(DefaultConfig()).Locate(rows)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if idx != 0 {
		t.Fatalf("header index=%d want=0", idx)
	}
}

func TestHeaderLocator_NoHeaderBelowThreshold(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"hello", "world"},
		{"foo", "bar", "baz"},
	}

	_, _, err := NewHeaderLocator(DefaultConfig()).Locate(rows)
	pe, ok := model.AsParseError(err)
	if !ok || pe.Kind != model.ErrNoHeaderFound {
		t.Fatalf("expected no_header_found, got %v", err)
	}
}

func TestHeaderLocator_OnlyScansFirst15Rows(t *testing.T) {
	t.Parallel()

	rows := make([][]string, 0, 20)
	for i := 0; i < 16; i++ {
		rows = append(rows, []string{"x"})
	}
	rows = append(rows, []string{"Lejemål", "Areal", "Leje"})

	_, _, err := NewHeaderLocator(DefaultConfig()).Locate(rows)
	pe, ok := model.AsParseError(err)
	if !ok || pe.Kind != model.ErrNoHeaderFound {
		t.Fatalf("expected no_header_found for header beyond scan window, got %v", err)
	}
}

func TestHeaderLocator_InjectedKeywords(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.HeaderKeywords = []string{"alpha", "beta"}

	rows := [][]string{
		{"Alpha", "Beta"},
	}

	idx, _, err := NewHeaderLocator(cfg).Locate(rows)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if idx != 0 {
		t.Fatalf("header index=%d want=0", idx)
	}
}

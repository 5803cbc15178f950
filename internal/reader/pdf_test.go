package reader

import (
	"reflect"
	"testing"

	"github.com/ledongthuc/pdf"
)

func frag(s string, x, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, W: w, FontSize: 10}
}

func TestLineCells_SplitsOnColumnGaps(t *testing.T) {
	t.Parallel()

	// "A1" | gap | "50" | gap | "10.000", with word-sized gaps inside cells.
	line := []pdf.Text{
		frag("A", 10, 6), frag("1", 16, 6),
		frag("5", 60, 6), frag("0", 66, 6),
		frag("10.000", 120, 36),
	}

	cells := lineCells(line)
	want := []string{"A1", "50", "10.000"}
	if !reflect.DeepEqual(cells, want) {
		t.Fatalf("cells=%v want=%v", cells, want)
	}
}

func TestLineCells_WordGapStaysInCell(t *testing.T) {
	t.Parallel()

	// A 4pt gap at 10pt font is a word break, not a column break.
	line := []pdf.Text{
		frag("Til", 10, 18),
		frag("leje", 32, 24),
	}

	cells := lineCells(line)
	if !reflect.DeepEqual(cells, []string{"Til leje"}) {
		t.Fatalf("cells=%v", cells)
	}
}

func TestLineCells_Empty(t *testing.T) {
	t.Parallel()

	if cells := lineCells(nil); cells != nil {
		t.Fatalf("cells=%v want=nil", cells)
	}
}

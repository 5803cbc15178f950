package parser

import (
	"reflect"
	"testing"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
)

func TestAggregator_BasicScenario(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	columns := []string{"Lejemål", "Areal", "Leje"}
	mapping := NewColumnMapper(cfg).Map(columns)

	rows := []model.RawRow{
		{Raw: []string{"A1", "50", "10.000"}, Source: "Ark1", RowNum: 2},
		{Raw: []string{"A2", "0", "0"}, Source: "Ark1", RowNum: 3},
		{Raw: []string{"A3", "", "5.000"}, Source: "Ark1", RowNum: 4},
	}

	summary, quality := NewAggregator(cfg).Summarize(rows, columns, mapping)

	if summary.TotalUnits != 3 {
		t.Fatalf("total_units=%d want=3", summary.TotalUnits)
	}
	if summary.TotalSqm != 50 {
		t.Fatalf("total_sqm=%v want=50", summary.TotalSqm)
	}
	if summary.TotalAnnualRent != 15000 {
		t.Fatalf("total_annual_rent=%v want=15000", summary.TotalAnnualRent)
	}
	// Mean of per-row ratios, A1 only: 10000/50.
	if summary.AvgRentPerSqm != 200 {
		t.Fatalf("avg_rent_per_sqm=%v want=200", summary.AvgRentPerSqm)
	}
	if summary.UnitsWithSqm != 1 || summary.UnitsWithRent != 2 {
		t.Fatalf("units_with_sqm=%d units_with_rent=%d", summary.UnitsWithSqm, summary.UnitsWithRent)
	}
	if !reflect.DeepEqual(quality.RowsMissingSqm, []int{3, 4}) {
		t.Fatalf("rows_missing_sqm=%v want=[3 4]", quality.RowsMissingSqm)
	}
	if !reflect.DeepEqual(quality.RowsMissingRent, []int{3}) {
		t.Fatalf("rows_missing_rent=%v want=[3]", quality.RowsMissingRent)
	}
	// A2's zero rent comes with a zero sqm, so it is missing, not suspicious.
	if len(quality.RowsSuspicious) != 0 {
		t.Fatalf("rows_suspicious=%v want empty", quality.RowsSuspicious)
	}
}

func TestAggregator_ZeroRentWithSqmIsSuspicious(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	columns := []string{"Lejemål", "Areal", "Leje"}
	mapping := NewColumnMapper(cfg).Map(columns)

	rows := []model.RawRow{
		{Raw: []string{"A1", "75", "0"}, Source: "Ark1", RowNum: 2},
	}

	_, quality := NewAggregator(cfg).Summarize(rows, columns, mapping)

	if len(quality.RowsSuspicious) != 1 {
		t.Fatalf("rows_suspicious=%v want one entry", quality.RowsSuspicious)
	}
	got := quality.RowsSuspicious[0]
	want := model.SuspiciousRow{RowNum: 2, Issue: "Zero rent", Value: 0, Unit: "kr"}
	if got != want {
		t.Fatalf("suspicious=%+v want=%+v", got, want)
	}
	if !reflect.DeepEqual(quality.RowsMissingRent, []int{2}) {
		t.Fatalf("rows_missing_rent=%v want=[2]", quality.RowsMissingRent)
	}
}

func TestAggregator_CategoryBreakdownAndVacancy(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	columns := []string{"Lejemål", "Areal", "Leje", "Type", "Status"}
	mapping := NewColumnMapper(cfg).Map(columns)

	rows := []model.RawRow{
		{Raw: []string{"A1", "80", "96.000", "Lejlighed", "Udlejet"}, RowNum: 2},
		{Raw: []string{"A2", "120", "180.000", "Butik", "Udlejet"}, RowNum: 3},
		{Raw: []string{"A3", "15", "9.000", "P-plads", "Ledig"}, RowNum: 4},
		{Raw: []string{"A4", "", "", "", "Ledig"}, RowNum: 5},
	}

	summary, _ := NewAggregator(cfg).Summarize(rows, columns, mapping)

	bolig := summary.UnitTypeBreakdown["bolig"]
	if bolig.Count != 1 || bolig.Sqm != 80 || bolig.Rent != 96000 || bolig.Vacant != 0 {
		t.Fatalf("bolig=%+v", bolig)
	}
	erhverv := summary.UnitTypeBreakdown["erhverv"]
	if erhverv.Count != 1 || erhverv.Rent != 180000 {
		t.Fatalf("erhverv=%+v", erhverv)
	}
	parkering := summary.UnitTypeBreakdown["parkering"]
	if parkering.Count != 1 || parkering.Vacant != 1 {
		t.Fatalf("parkering=%+v", parkering)
	}
	andet := summary.UnitTypeBreakdown["andet"]
	if andet.Count != 1 || andet.Vacant != 1 || andet.Sqm != 0 {
		t.Fatalf("andet=%+v", andet)
	}
	if summary.TotalVacant != 2 {
		t.Fatalf("total_vacant=%d want=2", summary.TotalVacant)
	}
}

func TestAggregator_UnmappedColumnsListed(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	columns := []string{"Lejemål", "Xyzzy", "", "Areal"}
	mapping := NewColumnMapper(cfg).Map(columns)

	_, quality := NewAggregator(cfg).Summarize(nil, columns, mapping)
	if !reflect.DeepEqual(quality.UnmappedColumns, []string{"Xyzzy"}) {
		t.Fatalf("unmapped_columns=%v want=[Xyzzy]", quality.UnmappedColumns)
	}
}

func TestAggregator_MissingTagUnavailableForAllRows(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	columns := []string{"Lejemål"}
	mapping := NewColumnMapper(cfg).Map(columns)

	rows := []model.RawRow{
		{Raw: []string{"A1"}, RowNum: 2},
		{Raw: []string{"A2"}, RowNum: 3},
	}
	summary, quality := NewAggregator(cfg).Summarize(rows, columns, mapping)

	if summary.TotalSqm != 0 || summary.TotalAnnualRent != 0 {
		t.Fatalf("totals should be zero without sqm/rent columns")
	}
	if !reflect.DeepEqual(quality.RowsMissingSqm, []int{2, 3}) {
		t.Fatalf("rows_missing_sqm=%v", quality.RowsMissingSqm)
	}
	if !reflect.DeepEqual(quality.RowsMissingRent, []int{2, 3}) {
		t.Fatalf("rows_missing_rent=%v", quality.RowsMissingRent)
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	if got := round2(10.006); got != 10.01 {
		t.Fatalf("round2(10.006)=%v", got)
	}
	if got := round2(1234.5649); got != 1234.56 {
		t.Fatalf("round2(1234.5649)=%v", got)
	}
}

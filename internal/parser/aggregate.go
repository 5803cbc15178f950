package parser

import (
	"math"
	"strings"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
)

// Aggregator folds mapped rows into summary statistics and a data-quality
// report.
type Aggregator struct {
	cfg Config
}

// NewAggregator creates an aggregator over the given config.
func NewAggregator(cfg Config) *Aggregator {
	return &Aggregator{cfg: cfg}
}

type categoryAccum struct {
	count  int
	sqm    float64
	rent   float64
	vacant int
}

// Summarize scans rows once, accumulating at full precision; monetary and
// area figures are rounded to 2 decimals only in the returned values.
//
// Totals take strictly positive values only. Rows without a positive sqm go
// to rows_missing_sqm; rows without a positive rent go to rows_missing_rent,
// and a rent of exactly 0 next to a positive sqm is additionally flagged
// suspicious. The category breakdown counts every row, while its sqm, rent
// and vacancy fields honor the same validity rules. avg_rent_per_sqm is the
// mean of each qualifying row's own rent/sqm ratio, not the ratio of totals.
func (a *Aggregator) Summarize(rows []model.RawRow, columns []string, mapping map[string]model.FieldTag) (model.Summary, model.DataQuality) {
	// Tag → column index; a tag absent here is unavailable for every row.
	tagIdx := make(map[model.FieldTag]int)
	for idx, col := range columns {
		if tag, ok := mapping[col]; ok {
			tagIdx[tag] = idx
		}
	}

	sqmIdx, hasSqm := tagIdx[model.TagSqm]
	rentIdx, hasRent := tagIdx[model.TagAnnualRent]
	typeIdx, hasType := tagIdx[model.TagUnitType]
	statusIdx, hasStatus := tagIdx[model.TagUnitStatus]

	var (
		totalSqm        float64
		totalRent       float64
		totalVacant     int
		unitsWithSqm    int
		unitsWithRent   int
		rentPerSqmSum   float64
		rentPerSqmCount int

		rowsMissingSqm  = []int{}
		rowsMissingRent = []int{}
		rowsSuspicious  = []model.SuspiciousRow{}
	)

	breakdown := make(map[string]*categoryAccum)
	for _, cat := range a.cfg.Categories() {
		breakdown[cat] = &categoryAccum{}
	}

	for _, row := range rows {
		raw := row.Raw

		var sqmValue float64
		sqmOK := false
		if hasSqm && sqmIdx < len(raw) {
			sqmValue, sqmOK = ParseNumber(raw[sqmIdx])
		}
		if sqmOK && sqmValue > 0 {
			totalSqm += sqmValue
			unitsWithSqm++
		} else {
			rowsMissingSqm = append(rowsMissingSqm, row.RowNum)
		}

		var rentValue float64
		rentOK := false
		if hasRent && rentIdx < len(raw) {
			rentValue, rentOK = ParseNumber(raw[rentIdx])
		}
		switch {
		case rentOK && rentValue > 0:
			totalRent += rentValue
			unitsWithRent++
		case rentOK && rentValue == 0:
			rowsMissingRent = append(rowsMissingRent, row.RowNum)
			if sqmOK && sqmValue > 0 {
				rowsSuspicious = append(rowsSuspicious, model.SuspiciousRow{
					RowNum: row.RowNum,
					Issue:  "Zero rent",
					Value:  0,
					Unit:   "kr",
				})
			}
		default:
			rowsMissingRent = append(rowsMissingRent, row.RowNum)
		}

		category := a.cfg.DefaultCategory
		if hasType && typeIdx < len(raw) {
			category = a.cfg.CategorizeUnitType(raw[typeIdx])
		}
		accum, ok := breakdown[category]
		if !ok {
			accum = &categoryAccum{}
			breakdown[category] = accum
		}
		accum.count++
		if sqmOK && sqmValue > 0 {
			accum.sqm += sqmValue
		}
		if rentOK && rentValue > 0 {
			accum.rent += rentValue
		}

		if hasStatus && statusIdx < len(raw) && a.cfg.IsVacant(raw[statusIdx]) {
			accum.vacant++
			totalVacant++
		}

		if sqmOK && sqmValue > 0 && rentOK && rentValue > 0 {
			rentPerSqmSum += rentValue / sqmValue
			rentPerSqmCount++
		}
	}

	avgRentPerSqm := 0.0
	if rentPerSqmCount > 0 {
		avgRentPerSqm = rentPerSqmSum / float64(rentPerSqmCount)
	}

	unmapped := []string{}
	for _, col := range columns {
		if strings.TrimSpace(col) != "" {
			if _, ok := mapping[col]; !ok {
				unmapped = append(unmapped, col)
			}
		}
	}

	outBreakdown := make(map[string]model.CategoryStats, len(breakdown))
	for cat, accum := range breakdown {
		outBreakdown[cat] = model.CategoryStats{
			Count:  accum.count,
			Sqm:    round2(accum.sqm),
			Rent:   round2(accum.rent),
			Vacant: accum.vacant,
		}
	}

	summary := model.Summary{
		TotalUnits:        len(rows),
		TotalSqm:          round2(totalSqm),
		TotalAnnualRent:   round2(totalRent),
		AvgRentPerSqm:     round2(avgRentPerSqm),
		UnitsWithRent:     unitsWithRent,
		UnitsWithSqm:      unitsWithSqm,
		TotalVacant:       totalVacant,
		UnitTypeBreakdown: outBreakdown,
	}
	quality := model.DataQuality{
		RowsMissingSqm:  rowsMissingSqm,
		RowsMissingRent: rowsMissingRent,
		RowsSuspicious:  rowsSuspicious,
		UnmappedColumns: unmapped,
	}
	return summary, quality
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

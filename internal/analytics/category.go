package analytics

import (
	"orderanalytics/internal/model"

	"github.com/shopspring/decimal"
)

var (
	categoryALimit = decimal.NewFromInt(70)
	categoryBLimit = decimal.NewFromInt(90)
)

// CategoryFor maps an accumulated profit share to its tier:
// (-inf, 70] is A, (70, 90] is B and (90, +inf) is C.
func CategoryFor(accumulated decimal.Decimal) model.Category {
	switch {
	case accumulated.LessThanOrEqual(categoryALimit):
		return model.CategoryA
	case accumulated.LessThanOrEqual(categoryBLimit):
		return model.CategoryB
	default:
		return model.CategoryC
	}
}

// Categorize assigns an ABC tier to every ranked row, preserving order
func Categorize(rows []model.RankedRow) []model.CategorizedRow {
	out := make([]model.CategorizedRow, len(rows))
	for i, row := range rows {
		out[i] = model.CategorizedRow{
			RankedRow: row,
			Category:  CategoryFor(row.AccumulatedPercentProfitProductOfWarehouse),
		}
	}
	return out
}

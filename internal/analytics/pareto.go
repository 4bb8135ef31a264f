package analytics

import (
	"cmp"
	"slices"

	"orderanalytics/internal/model"

	"github.com/shopspring/decimal"
)

// Rank orders rows by warehouse (descending), then by profit share
// (descending), then by product name, and attaches the running share within
// each warehouse. The input slice is left untouched.
func Rank(rows []model.ProfitDistributionRow) []model.RankedRow {
	sorted := slices.Clone(rows)
	slices.SortFunc(sorted, compareForRanking)

	ranked := make([]model.RankedRow, len(sorted))
	var (
		warehouse   string
		accumulated decimal.Decimal
	)
	for i, row := range sorted {
		if i == 0 || row.WarehouseName != warehouse {
			warehouse = row.WarehouseName
			accumulated = decimal.Zero
		}
		accumulated = accumulated.Add(row.PercentProfitProductOfWarehouse)
		ranked[i] = model.RankedRow{
			ProfitDistributionRow:                      row,
			AccumulatedPercentProfitProductOfWarehouse: accumulated,
		}
	}
	return ranked
}

func compareForRanking(a, b model.ProfitDistributionRow) int {
	if c := cmp.Compare(b.WarehouseName, a.WarehouseName); c != 0 {
		return c
	}
	if c := b.PercentProfitProductOfWarehouse.Cmp(a.PercentProfitProductOfWarehouse); c != 0 {
		return c
	}
	return cmp.Compare(a.Product, b.Product)
}

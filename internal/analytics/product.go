package analytics

import (
	"sort"

	"orderanalytics/internal/model"

	"github.com/samber/lo"
)

// ProductStats aggregates quantity, income, allocated shipping expenses and
// profit per product across all warehouses. Rows are sorted by product name.
func ProductStats(orders []model.Order) ([]model.ProductStat, error) {
	items, err := explode(orders)
	if err != nil {
		return nil, err
	}

	acc := make(map[string]*model.ProductStat)
	for _, it := range items {
		qty := it.quantity()
		income := it.Price.Mul(qty)
		expenses := it.tariff().Mul(qty)

		stat, ok := acc[it.Product]
		if !ok {
			stat = &model.ProductStat{Product: it.Product}
			acc[it.Product] = stat
		}
		stat.Quantity += it.Quantity
		stat.Income = stat.Income.Add(income)
		stat.Expenses = stat.Expenses.Add(expenses)
		stat.Profit = stat.Profit.Add(income.Sub(expenses))
	}

	names := lo.Keys(acc)
	sort.Strings(names)

	stats := make([]model.ProductStat, 0, len(names))
	for _, name := range names {
		stats = append(stats, *acc[name])
	}
	return stats, nil
}

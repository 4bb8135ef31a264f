package analytics

import (
	"cmp"
	"slices"

	"orderanalytics/internal/model"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type warehouseProduct struct {
	warehouse string
	product   string
}

type productTotals struct {
	quantity int
	profit   decimal.Decimal
}

// ProfitDistribution computes, for every (warehouse, product) pair, the
// quantity sold, the profit including allocated shipping, and the pair's
// percentage of its warehouse's total profit. Rows are sorted by warehouse
// and product.
func ProfitDistribution(orders []model.Order) ([]model.ProfitDistributionRow, error) {
	items, err := explode(orders)
	if err != nil {
		return nil, err
	}

	grouped := make(map[warehouseProduct]*productTotals)
	for _, it := range items {
		key := warehouseProduct{warehouse: it.WarehouseName, product: it.Product}
		totals, ok := grouped[key]
		if !ok {
			totals = &productTotals{}
			grouped[key] = totals
		}
		totals.quantity += it.Quantity
		totals.profit = totals.profit.Add(it.Price.Add(it.tariff()).Mul(it.quantity()))
	}

	keys := lo.Keys(grouped)
	slices.SortFunc(keys, func(a, b warehouseProduct) int {
		if c := cmp.Compare(a.warehouse, b.warehouse); c != 0 {
			return c
		}
		return cmp.Compare(a.product, b.product)
	})

	warehouseProfit := make(map[string]decimal.Decimal)
	for _, k := range keys {
		warehouseProfit[k.warehouse] = warehouseProfit[k.warehouse].Add(grouped[k].profit)
	}

	rows := make([]model.ProfitDistributionRow, 0, len(keys))
	for _, k := range keys {
		total, ok := warehouseProfit[k.warehouse]
		if !ok {
			return nil, &RecordError{Kind: ErrMissingWarehouseTotal, Warehouse: k.warehouse}
		}
		if total.IsZero() {
			return nil, &RecordError{Kind: ErrZeroWarehouseProfit, Warehouse: k.warehouse}
		}
		t := grouped[k]
		rows = append(rows, model.ProfitDistributionRow{
			WarehouseName:                   k.warehouse,
			Product:                         k.product,
			Quantity:                        t.quantity,
			Profit:                          t.profit,
			PercentProfitProductOfWarehouse: t.profit.Mul(hundred).Div(total),
		})
	}
	return rows, nil
}

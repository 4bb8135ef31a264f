package analytics

import (
	"orderanalytics/internal/model"

	"github.com/shopspring/decimal"
)

// OrderStats computes the profit of every order and their mean. Order profit
// is the merchandise value plus the order's highway cost.
func OrderStats(orders []model.Order) (model.OrderSummary, error) {
	if len(orders) == 0 {
		return model.OrderSummary{}, ErrEmptyDataset
	}

	stats := make([]model.OrderStat, 0, len(orders))
	profits := make([]decimal.Decimal, 0, len(orders))
	for _, o := range orders {
		revenue := decimal.Zero
		for _, p := range o.Products {
			revenue = revenue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		}
		profit := revenue.Add(o.HighwayCost)

		stats = append(stats, model.OrderStat{OrderID: o.OrderID, OrderProfit: profit})
		profits = append(profits, profit)
	}

	return model.OrderSummary{
		Orders:             stats,
		AverageOrderProfit: decimal.Avg(profits[0], profits[1:]...),
	}, nil
}

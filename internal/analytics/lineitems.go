package analytics

import (
	"orderanalytics/internal/model"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// lineItem is one product of an order, carrying the order fields every
// product of that order shares.
type lineItem struct {
	OrderID       model.OrderID
	WarehouseName string
	HighwayCost   decimal.Decimal
	TotalQuantity int
	Product       string
	Price         decimal.Decimal
	Quantity      int
}

func (l lineItem) quantity() decimal.Decimal {
	return decimal.NewFromInt(int64(l.Quantity))
}

// tariff is the order's shipping cost per unit
func (l lineItem) tariff() decimal.Decimal {
	return l.HighwayCost.Div(decimal.NewFromInt(int64(l.TotalQuantity)))
}

// orderTariff divides the shipping cost of an order by its total quantity
func orderTariff(o model.Order) (decimal.Decimal, error) {
	total := o.TotalQuantity()
	if total == 0 {
		return decimal.Zero, zeroQuantity(o)
	}
	return o.HighwayCost.Div(decimal.NewFromInt(int64(total))), nil
}

// explode emits one lineItem per product of every order, in dataset order
func explode(orders []model.Order) ([]lineItem, error) {
	for _, o := range orders {
		if o.TotalQuantity() == 0 {
			return nil, zeroQuantity(o)
		}
	}
	return lo.FlatMap(orders, func(o model.Order, _ int) []lineItem {
		total := o.TotalQuantity()
		return lo.Map(o.Products, func(p model.LineItem, _ int) lineItem {
			return lineItem{
				OrderID:       o.OrderID,
				WarehouseName: o.WarehouseName,
				HighwayCost:   o.HighwayCost,
				TotalQuantity: total,
				Product:       p.Product,
				Price:         p.Price,
				Quantity:      p.Quantity,
			}
		})
	}), nil
}

package analytics

import (
	"testing"

	"orderanalytics/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var epsilon = decimal.RequireFromString("0.000000001")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(product, price string, qty int) model.LineItem {
	return model.LineItem{Product: product, Price: dec(price), Quantity: qty}
}

func order(id, warehouse, highway string, items ...model.LineItem) model.Order {
	return model.Order{
		OrderID:       model.OrderID(id),
		WarehouseName: warehouse,
		HighwayCost:   dec(highway),
		Products:      items,
	}
}

func assertDecimal(t *testing.T, name, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s = %s, want %s", name, got, want)
}

func assertNear(t *testing.T, name string, want, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, want.Sub(got).Abs().LessThan(epsilon), "%s = %s, want %s", name, got, want)
}

// sampleOrders spans two warehouses with repeated products and a shipping
// cost that does not divide evenly.
func sampleOrders() []model.Order {
	return []model.Order{
		order("1", "North", "100", item("apple", "10", 5), item("pear", "20", 5)),
		order("2", "North", "30", item("apple", "12", 1), item("plum", "4", 2)),
		order("3", "South", "50", item("pear", "18", 3), item("apple", "9", 2)),
		order("4", "South", "50", item("kiwi", "2", 5)),
		order("5", "North", "0", item("apple", "11", 4)),
	}
}

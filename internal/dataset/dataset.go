// Package dataset reads order datasets: a JSON array of order records, each
// with order_id, warehouse_name, highway_cost and a products list.
package dataset

import (
	"fmt"
	"io"
	"os"

	"orderanalytics/internal/analytics"
	"orderanalytics/internal/model"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

type rawOrder struct {
	OrderID       *model.OrderID   `json:"order_id"`
	WarehouseName *string          `json:"warehouse_name"`
	HighwayCost   *decimal.Decimal `json:"highway_cost"`
	Products      *[]rawLineItem   `json:"products"`
}

type rawLineItem struct {
	Product  *string          `json:"product"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *decimal.Decimal `json:"quantity"`
}

// Load opens and decodes a dataset file
func Load(path string) ([]model.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a dataset from r. Missing fields and values of the wrong type
// are reported as analytics.ErrMalformedRecord; sign and range checks are
// left to analytics.Validate.
func Decode(r io.Reader) ([]model.Order, error) {
	var raw []rawOrder
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &analytics.RecordError{Kind: analytics.ErrMalformedRecord, Reason: err.Error()}
	}

	orders := make([]model.Order, 0, len(raw))
	for i, ro := range raw {
		o, err := ro.toOrder(i)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (ro rawOrder) toOrder(index int) (model.Order, error) {
	var o model.Order
	missing := func(field string) error {
		return &analytics.RecordError{
			Kind:      analytics.ErrMalformedRecord,
			OrderID:   o.OrderID,
			Warehouse: o.WarehouseName,
			Field:     field,
			Reason:    fmt.Sprintf("missing in record #%d", index),
		}
	}

	if ro.OrderID == nil {
		return o, missing("order_id")
	}
	o.OrderID = *ro.OrderID
	if ro.WarehouseName == nil {
		return o, missing("warehouse_name")
	}
	o.WarehouseName = *ro.WarehouseName
	if ro.HighwayCost == nil {
		return o, missing("highway_cost")
	}
	o.HighwayCost = *ro.HighwayCost
	if ro.Products == nil {
		return o, missing("products")
	}

	o.Products = make([]model.LineItem, 0, len(*ro.Products))
	for i, rl := range *ro.Products {
		field := func(name string) string { return fmt.Sprintf("products[%d].%s", i, name) }
		switch {
		case rl.Product == nil:
			return o, missing(field("product"))
		case rl.Price == nil:
			return o, missing(field("price"))
		case rl.Quantity == nil:
			return o, missing(field("quantity"))
		}
		if reason := quantityProblem(*rl.Quantity); reason != "" {
			return o, &analytics.RecordError{
				Kind:      analytics.ErrMalformedRecord,
				OrderID:   o.OrderID,
				Warehouse: o.WarehouseName,
				Field:     field("quantity"),
				Reason:    reason,
			}
		}
		o.Products = append(o.Products, model.LineItem{
			Position: i,
			Product:  *rl.Product,
			Price:    *rl.Price,
			Quantity: int(rl.Quantity.IntPart()),
		})
	}
	return o, nil
}

var maxQuantity = decimal.NewFromInt(model.MaxQuantity)

// quantityProblem rejects values that cannot be held in a line item's int
// quantity without losing digits. The sign is checked by analytics.Validate.
func quantityProblem(q decimal.Decimal) string {
	if !q.IsInteger() {
		return "not an integer: " + q.String()
	}
	if q.Abs().GreaterThan(maxQuantity) {
		return fmt.Sprintf("out of range: %s exceeds %d", q.String(), model.MaxQuantity)
	}
	return ""
}

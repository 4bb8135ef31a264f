package analytics

import (
	"errors"
	"fmt"
	"strings"

	"orderanalytics/internal/model"
)

// Error kinds returned by the pipeline. Match them with errors.Is.
var (
	ErrMalformedRecord       = errors.New("malformed record")
	ErrZeroQuantity          = errors.New("order total quantity is zero")
	ErrEmptyDataset          = errors.New("dataset contains no orders")
	ErrMissingWarehouseTotal = errors.New("warehouse total profit is missing")
	ErrZeroWarehouseProfit   = errors.New("warehouse total profit is zero")
)

// RecordError locates a pipeline failure in the input dataset
type RecordError struct {
	Kind      error
	OrderID   model.OrderID
	Warehouse string
	Field     string
	Reason    string
}

func (e *RecordError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.OrderID != "" {
		fmt.Fprintf(&b, ": order %q", string(e.OrderID))
	}
	if e.Warehouse != "" {
		fmt.Fprintf(&b, ": warehouse %q", e.Warehouse)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %s", e.Field)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

func (e *RecordError) Unwrap() error {
	return e.Kind
}

// Details lists the located parts of the error, keyed by dataset field name
func (e *RecordError) Details() map[string]string {
	details := map[string]string{"kind": e.Kind.Error()}
	if e.OrderID != "" {
		details["order_id"] = string(e.OrderID)
	}
	if e.Warehouse != "" {
		details["warehouse_name"] = e.Warehouse
	}
	if e.Field != "" {
		details["field"] = e.Field
	}
	return details
}

func malformed(o model.Order, field, reason string) error {
	return &RecordError{Kind: ErrMalformedRecord, OrderID: o.OrderID, Warehouse: o.WarehouseName, Field: field, Reason: reason}
}

func zeroQuantity(o model.Order) error {
	return &RecordError{Kind: ErrZeroQuantity, OrderID: o.OrderID, Warehouse: o.WarehouseName}
}

package analytics

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"orderanalytics/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field paths with the dataset's JSON names, e.g. products[1].quantity
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every order before any report is computed. The first
// offending record aborts the run.
func Validate(orders []model.Order) error {
	if len(orders) == 0 {
		return ErrEmptyDataset
	}
	for _, o := range orders {
		if err := validateOrder(o); err != nil {
			return err
		}
	}
	return nil
}

func validateOrder(o model.Order) error {
	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return malformed(o, fieldPath(fe), fmt.Sprintf("failed %q check", fe.Tag()))
		}
		return malformed(o, "", err.Error())
	}
	if strings.TrimSpace(o.WarehouseName) == "" {
		return malformed(o, "warehouse_name", "blank value")
	}
	if o.HighwayCost.IsNegative() {
		return malformed(o, "highway_cost", "negative value "+o.HighwayCost.String())
	}
	for i, p := range o.Products {
		if p.Price.IsNegative() {
			return malformed(o, fmt.Sprintf("products[%d].price", i), "negative value "+p.Price.String())
		}
		if p.Quantity > model.MaxQuantity {
			return malformed(o, fmt.Sprintf("products[%d].quantity", i), fmt.Sprintf("%d exceeds %d", p.Quantity, model.MaxQuantity))
		}
	}
	total := o.TotalQuantity()
	if total < 0 {
		return malformed(o, "products", fmt.Sprintf("total quantity overflowed to %d", total))
	}
	if total == 0 {
		return zeroQuantity(o)
	}
	return nil
}

// fieldPath drops the root struct name from the validator namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

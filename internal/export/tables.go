// Package export renders a model.Report as text tables, CSV files or an
// XLSX workbook.
package export

import (
	"fmt"
	"slices"

	"orderanalytics/internal/model"

	"github.com/shopspring/decimal"
)

// Report sections, in presentation order
const (
	SectionTariffs      = "tariffs"
	SectionProducts     = "products"
	SectionOrders       = "orders"
	SectionOrderSummary = "order_summary"
	SectionDistribution = "distribution"
	SectionABC          = "abc"
)

var Sections = []string{
	SectionTariffs,
	SectionProducts,
	SectionOrders,
	SectionOrderSummary,
	SectionDistribution,
	SectionABC,
}

// decimalPlaces used when a value is rendered as text
const decimalPlaces = 4

// Table is one report flattened into a header and rows. Cells hold string,
// int or decimal.Decimal values.
type Table struct {
	Name   string
	Header []string
	Rows   [][]any
}

// ValidSection reports whether name is a known section
func ValidSection(name string) bool {
	return slices.Contains(Sections, name)
}

// Tables flattens every section of the report
func Tables(r model.Report) []Table {
	tables := make([]Table, 0, len(Sections))
	for _, s := range Sections {
		t, _ := TableFor(r, s)
		tables = append(tables, t)
	}
	return tables
}

// TableFor flattens a single section
func TableFor(r model.Report, section string) (Table, error) {
	t := Table{Name: section}
	switch section {
	case SectionTariffs:
		t.Header = []string{"warehouse_name", "tariff"}
		for _, row := range r.Tariffs {
			t.Rows = append(t.Rows, []any{row.WarehouseName, row.Tariff})
		}
	case SectionProducts:
		t.Header = []string{"product", "quantity", "income", "expenses", "profit"}
		for _, row := range r.Products {
			t.Rows = append(t.Rows, []any{row.Product, row.Quantity, row.Income, row.Expenses, row.Profit})
		}
	case SectionOrders:
		t.Header = []string{"order_id", "order_profit"}
		for _, row := range r.Orders.Orders {
			t.Rows = append(t.Rows, []any{string(row.OrderID), row.OrderProfit})
		}
	case SectionOrderSummary:
		t.Header = []string{"orders", "average_order_profit"}
		t.Rows = [][]any{{len(r.Orders.Orders), r.Orders.AverageOrderProfit}}
	case SectionDistribution:
		t.Header = []string{"warehouse_name", "product", "quantity", "profit", "percent_profit_product_of_warehouse"}
		for _, row := range r.Distribution {
			t.Rows = append(t.Rows, []any{row.WarehouseName, row.Product, row.Quantity, row.Profit, row.PercentProfitProductOfWarehouse})
		}
	case SectionABC:
		t.Header = []string{
			"warehouse_name", "product", "quantity", "profit",
			"percent_profit_product_of_warehouse", "accumulated_percent_profit_product_of_warehouse", "category",
		}
		for _, row := range r.ABC {
			t.Rows = append(t.Rows, []any{
				row.WarehouseName, row.Product, row.Quantity, row.Profit,
				row.PercentProfitProductOfWarehouse, row.AccumulatedPercentProfitProductOfWarehouse, string(row.Category),
			})
		}
	default:
		return Table{}, fmt.Errorf("unknown report section %q", section)
	}
	return t, nil
}

func formatCell(v any) string {
	switch val := v.(type) {
	case decimal.Decimal:
		return val.StringFixed(decimalPlaces)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

func formatRow(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = formatCell(v)
	}
	return out
}

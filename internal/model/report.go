package model

import "github.com/shopspring/decimal"

// Category is the ABC tier of a (warehouse, product) pair
type Category string

const (
	CategoryA Category = "A"
	CategoryB Category = "B"
	CategoryC Category = "C"
)

// WarehouseTariff is the shipping cost per unit derived from one order of a warehouse
type WarehouseTariff struct {
	WarehouseName string          `json:"warehouse_name"`
	Tariff        decimal.Decimal `json:"tariff"`
}

// ProductStat aggregates a product over the whole dataset
type ProductStat struct {
	Product  string          `json:"product"`
	Quantity int             `json:"quantity"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"` // allocated shipping cost
	Profit   decimal.Decimal `json:"profit"`
}

type OrderStat struct {
	OrderID     OrderID         `json:"order_id"`
	OrderProfit decimal.Decimal `json:"order_profit"`
}

// OrderSummary holds per-order profit and the dataset-wide mean
type OrderSummary struct {
	Orders             []OrderStat     `json:"orders"`
	AverageOrderProfit decimal.Decimal `json:"average_order_profit"`
}

// ProfitDistributionRow is the share of a product in its warehouse's profit
type ProfitDistributionRow struct {
	WarehouseName                   string          `json:"warehouse_name"`
	Product                         string          `json:"product"`
	Quantity                        int             `json:"quantity"`
	Profit                          decimal.Decimal `json:"profit"`
	PercentProfitProductOfWarehouse decimal.Decimal `json:"percent_profit_product_of_warehouse"`
}

// RankedRow adds the running share within the warehouse
type RankedRow struct {
	ProfitDistributionRow
	AccumulatedPercentProfitProductOfWarehouse decimal.Decimal `json:"accumulated_percent_profit_product_of_warehouse"`
}

type CategorizedRow struct {
	RankedRow
	Category Category `json:"category"`
}

// Report bundles every derived table of one pipeline run
type Report struct {
	Tariffs      []WarehouseTariff       `json:"tariffs"`
	Products     []ProductStat           `json:"products"`
	Orders       OrderSummary            `json:"orders"`
	Distribution []ProfitDistributionRow `json:"distribution"`
	ABC          []CategorizedRow        `json:"abc"`
	Fingerprint  string                  `json:"fingerprint"`
}

// ReportEvent is pushed to websocket subscribers after a successful run
type ReportEvent struct {
	Type        string `json:"type"`
	Source      string `json:"source"`
	Orders      int    `json:"orders"`
	Warehouses  int    `json:"warehouses"`
	Products    int    `json:"products"`
	Fingerprint string `json:"fingerprint"`
}

const EventReportGenerated = "report.generated"

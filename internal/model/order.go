package model

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest quantity accepted for a single line item
const MaxQuantity = math.MaxInt32

// OrderID is the business identifier of an order. Datasets carry it either
// as a JSON string or as a JSON number; both are kept in their textual form.
type OrderID string

func (id *OrderID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = OrderID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("order_id must be a string or a number, got %s", raw)
	}
	*id = OrderID(n.String())
	return nil
}

// Order is a single shipment from one warehouse
type Order struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	Seq           int64           `gorm:"type:bigserial;autoIncrement;not null;uniqueIndex" json:"-"` // insertion order
	OrderID       OrderID         `gorm:"column:order_id;type:varchar(100);uniqueIndex;not null" json:"order_id" validate:"required"`
	WarehouseName string          `gorm:"type:varchar(255);not null;index" json:"warehouse_name" validate:"required"`
	HighwayCost   decimal.Decimal `gorm:"type:numeric;not null" json:"highway_cost"` // shipping cost of the whole order
	Products      []LineItem      `gorm:"foreignKey:OrderRef" json:"products" validate:"dive"`
	CreatedAt     time.Time       `json:"-"`
	UpdatedAt     time.Time       `json:"-"`
}

// TotalQuantity sums the quantities of all line items of the order
func (o Order) TotalQuantity() int {
	return lo.SumBy(o.Products, func(p LineItem) int { return p.Quantity })
}

// LineItem represents one purchased product within an Order
type LineItem struct {
	ID       uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	OrderRef uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Position int             `gorm:"type:int;not null" json:"-"` // keeps the dataset ordering of products
	Product  string          `gorm:"type:varchar(255);not null;index" json:"product" validate:"required"`
	Price    decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Quantity int             `gorm:"type:int;not null" json:"quantity" validate:"gt=0"`
}

func (LineItem) TableName() string {
	return "order_line_items"
}

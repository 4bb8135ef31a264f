package analytics

import (
	"context"
	"errors"
	"testing"

	"orderanalytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SingleOrderEndToEnd(t *testing.T) {
	orders := []model.Order{order("1", "W1", "100", item("X", "10", 5), item("Y", "20", 5))}

	report, err := Run(context.Background(), orders)
	require.NoError(t, err)

	require.Len(t, report.Tariffs, 1)
	assertDecimal(t, "tariff", "10", report.Tariffs[0].Tariff)

	require.Len(t, report.ABC, 2)
	y, x := report.ABC[0], report.ABC[1]
	assert.Equal(t, "Y", y.Product)
	assertDecimal(t, "Y accumulated", "60", y.AccumulatedPercentProfitProductOfWarehouse)
	assert.Equal(t, model.CategoryA, y.Category)
	assert.Equal(t, "X", x.Product)
	assertDecimal(t, "X accumulated", "100", x.AccumulatedPercentProfitProductOfWarehouse)
	assert.Equal(t, model.CategoryC, x.Category)

	require.Len(t, report.Orders.Orders, 1)
	assertDecimal(t, "order profit", "250", report.Orders.Orders[0].OrderProfit)
	assertDecimal(t, "average", "250", report.Orders.AverageOrderProfit)

	require.Len(t, report.Products, 2)
	assertDecimal(t, "X expenses", "50", report.Products[0].Expenses)
	assertDecimal(t, "Y profit", "50", report.Products[1].Profit)

	assert.Len(t, report.Fingerprint, 64)
}

func TestRun_Deterministic(t *testing.T) {
	first, err := Run(context.Background(), sampleOrders())
	require.NoError(t, err)
	second, err := Run(context.Background(), sampleOrders())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)

	fp, err := Fingerprint(first)
	require.NoError(t, err)
	assert.Equal(t, first.Fingerprint, fp)
}

func TestRun_FingerprintChangesWithInput(t *testing.T) {
	first, err := Run(context.Background(), sampleOrders())
	require.NoError(t, err)

	orders := sampleOrders()
	orders[0].HighwayCost = dec("101")
	second, err := Run(context.Background(), orders)
	require.NoError(t, err)

	assert.NotEqual(t, first.Fingerprint, second.Fingerprint)
}

func TestRun_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		orders  []model.Order
		wantErr error
		field   string
	}{
		{
			name:    "no orders",
			orders:  nil,
			wantErr: ErrEmptyDataset,
		},
		{
			name:    "order without products",
			orders:  []model.Order{order("1", "W", "10")},
			wantErr: ErrZeroQuantity,
		},
		{
			name:    "negative price",
			orders:  []model.Order{order("1", "W", "10", item("a", "1", 1), item("b", "-1", 1))},
			wantErr: ErrMalformedRecord,
			field:   "products[1].price",
		},
		{
			name:    "non-positive quantity",
			orders:  []model.Order{order("1", "W", "10", item("a", "1", 0))},
			wantErr: ErrMalformedRecord,
			field:   "products[0].quantity",
		},
		{
			name:    "quantity above cap",
			orders:  []model.Order{order("1", "W", "100", item("a", "1", model.MaxQuantity+1))},
			wantErr: ErrMalformedRecord,
			field:   "products[0].quantity",
		},
		{
			name:    "quantities whose sum overflows",
			orders:  []model.Order{order("1", "W", "100", item("a", "1", 1<<62), item("b", "1", 1<<62))},
			wantErr: ErrMalformedRecord,
			field:   "products[0].quantity",
		},
		{
			name:    "negative highway cost",
			orders:  []model.Order{order("1", "W", "-10", item("a", "1", 1))},
			wantErr: ErrMalformedRecord,
			field:   "highway_cost",
		},
		{
			name:    "missing warehouse",
			orders:  []model.Order{order("1", "", "10", item("a", "1", 1))},
			wantErr: ErrMalformedRecord,
			field:   "warehouse_name",
		},
		{
			name:    "blank warehouse",
			orders:  []model.Order{order("1", "   ", "10", item("a", "1", 1))},
			wantErr: ErrMalformedRecord,
			field:   "warehouse_name",
		},
		{
			name:    "missing product name",
			orders:  []model.Order{order("1", "W", "10", item("", "1", 1))},
			wantErr: ErrMalformedRecord,
			field:   "products[0].product",
		},
		{
			name:    "missing order id",
			orders:  []model.Order{order("", "W", "10", item("a", "1", 1))},
			wantErr: ErrMalformedRecord,
			field:   "order_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Run(context.Background(), tt.orders)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Empty(t, report.ABC)
			if tt.field != "" {
				var recErr *RecordError
				require.True(t, errors.As(err, &recErr))
				assert.Equal(t, tt.field, recErr.Field)
			}
		})
	}
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, sampleOrders())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecordError_Message(t *testing.T) {
	err := &RecordError{Kind: ErrMalformedRecord, OrderID: "42", Warehouse: "W", Field: "highway_cost", Reason: "negative value -1"}
	assert.Equal(t, `malformed record: order "42": warehouse "W": field highway_cost: negative value -1`, err.Error())
}

func TestRecordError_Details(t *testing.T) {
	err := &RecordError{Kind: ErrMalformedRecord, OrderID: "42", Field: "products[0].price", Reason: "negative value -1"}
	assert.Equal(t, map[string]string{
		"kind":     "malformed record",
		"order_id": "42",
		"field":    "products[0].price",
	}, err.Details())

	assert.Equal(t, map[string]string{"kind": "order total quantity is zero"},
		(&RecordError{Kind: ErrZeroQuantity}).Details())
}

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"orderanalytics/internal/analytics"
	"orderanalytics/internal/database"
	"orderanalytics/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// newTestDB starts a throwaway PostgreSQL container
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "analytics",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/analytics?sslmode=disable", host, port.Port())
	db, err := database.NewConnection(dsn)
	require.NoError(t, err)
	return db
}

func storedOrder(id, warehouse string, highway int64, items ...model.LineItem) model.Order {
	for i := range items {
		items[i].Position = i
	}
	return model.Order{
		OrderID:       model.OrderID(id),
		WarehouseName: warehouse,
		HighwayCost:   decimal.NewFromInt(highway),
		Products:      items,
	}
}

func TestOrderRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	orders := []model.Order{
		storedOrder("1", "W1", 100,
			model.LineItem{Product: "Y", Price: decimal.NewFromInt(20), Quantity: 5},
			model.LineItem{Product: "X", Price: decimal.RequireFromString("10.25"), Quantity: 5},
		),
		storedOrder("2", "W2", 0, model.LineItem{Product: "Z", Price: decimal.NewFromInt(1), Quantity: 1}),
	}
	require.NoError(t, repo.CreateBatch(ctx, orders))

	loaded, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	first := loaded[0]
	assert.Equal(t, model.OrderID("1"), first.OrderID)
	require.Len(t, first.Products, 2)
	assert.Equal(t, "Y", first.Products[0].Product)
	assert.Equal(t, "X", first.Products[1].Product)
	assert.True(t, decimal.RequireFromString("10.25").Equal(first.Products[1].Price))

	page, total, err := repo.List(ctx, 2, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, page, 1)
	assert.Equal(t, model.OrderID("2"), page[0].OrderID)
}

func TestOrderRepository_DuplicateOrderRollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	item := model.LineItem{Product: "X", Price: decimal.NewFromInt(1), Quantity: 1}
	require.NoError(t, repo.CreateBatch(ctx, []model.Order{storedOrder("1", "W", 1, item)}))

	err := repo.CreateBatch(ctx, []model.Order{
		storedOrder("2", "W", 1, item),
		storedOrder("1", "W", 1, item),
	})
	assert.ErrorIs(t, err, ErrDuplicateOrder)

	loaded, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestOrderRepository_KeepsDecimalPrecision(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	orders := []model.Order{
		storedOrder("1", "W1", 0,
			model.LineItem{Product: "X", Price: decimal.RequireFromString("0.12345"), Quantity: 3},
			model.LineItem{Product: "Y", Price: decimal.RequireFromString("123456789012345.678901"), Quantity: 1},
		),
	}
	orders[0].HighwayCost = decimal.RequireFromString("7.000001")

	want, err := analytics.Run(ctx, orders)
	require.NoError(t, err)
	require.NoError(t, repo.CreateBatch(ctx, orders))

	loaded, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, decimal.RequireFromString("0.12345").Equal(loaded[0].Products[0].Price))
	assert.True(t, decimal.RequireFromString("7.000001").Equal(loaded[0].HighwayCost))

	got, err := analytics.Run(ctx, loaded)
	require.NoError(t, err)
	assert.Equal(t, want.Fingerprint, got.Fingerprint)
}

func TestOrderRepository_ListsInInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	item := model.LineItem{Product: "X", Price: decimal.NewFromInt(1), Quantity: 1}
	require.NoError(t, repo.CreateBatch(ctx, []model.Order{
		storedOrder("10", "W", 1, item),
		storedOrder("2", "W", 1, item),
		storedOrder("b", "W", 1, item),
	}))
	require.NoError(t, repo.CreateBatch(ctx, []model.Order{storedOrder("1", "W", 1, item)}))

	loaded, err := repo.ListAll(ctx)
	require.NoError(t, err)
	ids := make([]model.OrderID, 0, len(loaded))
	for _, o := range loaded {
		ids = append(ids, o.OrderID)
	}
	assert.Equal(t, []model.OrderID{"10", "2", "b", "1"}, ids)

	page, _, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, model.OrderID("b"), page[0].OrderID)
}

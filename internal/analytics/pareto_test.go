package analytics

import (
	"testing"

	"orderanalytics/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func distRow(warehouse, product, percent string) model.ProfitDistributionRow {
	return model.ProfitDistributionRow{
		WarehouseName:                   warehouse,
		Product:                         product,
		PercentProfitProductOfWarehouse: dec(percent),
	}
}

func TestRank_SortsAndResetsPerWarehouse(t *testing.T) {
	rows := []model.ProfitDistributionRow{
		distRow("A-wh", "x", "20"),
		distRow("A-wh", "y", "80"),
		distRow("B-wh", "p", "10"),
		distRow("B-wh", "q", "50"),
		distRow("B-wh", "r", "40"),
	}

	ranked := Rank(rows)
	require.Len(t, ranked, 5)

	want := []struct {
		warehouse, product, accumulated string
	}{
		{"B-wh", "q", "50"},
		{"B-wh", "r", "90"},
		{"B-wh", "p", "100"},
		{"A-wh", "y", "80"},
		{"A-wh", "x", "100"},
	}
	for i, w := range want {
		assert.Equal(t, w.warehouse, ranked[i].WarehouseName, "row %d", i)
		assert.Equal(t, w.product, ranked[i].Product, "row %d", i)
		assertDecimal(t, "accumulated "+w.product, w.accumulated, ranked[i].AccumulatedPercentProfitProductOfWarehouse)
	}
}

func TestRank_TiesBrokenByProductName(t *testing.T) {
	rows := []model.ProfitDistributionRow{
		distRow("W", "zeta", "25"),
		distRow("W", "alpha", "25"),
		distRow("W", "mid", "50"),
	}

	ranked := Rank(rows)

	assert.Equal(t, "mid", ranked[0].Product)
	assert.Equal(t, "alpha", ranked[1].Product)
	assert.Equal(t, "zeta", ranked[2].Product)
}

func TestRank_LeavesInputUntouched(t *testing.T) {
	rows := []model.ProfitDistributionRow{distRow("W", "a", "10"), distRow("W", "b", "90")}

	Rank(rows)

	assert.Equal(t, "a", rows[0].Product)
	assert.Equal(t, "b", rows[1].Product)
}

func TestRank_AccumulatedReachesHundred(t *testing.T) {
	dist, err := ProfitDistribution(sampleOrders())
	require.NoError(t, err)

	ranked := Rank(dist)

	last := make(map[string]decimal.Decimal)
	prev := make(map[string]decimal.Decimal)
	for _, r := range ranked {
		acc := r.AccumulatedPercentProfitProductOfWarehouse
		if p, ok := prev[r.WarehouseName]; ok {
			assert.True(t, acc.GreaterThanOrEqual(p), "accumulated share must not decrease")
		}
		prev[r.WarehouseName] = acc
		last[r.WarehouseName] = acc
	}
	for warehouse, acc := range last {
		assertNear(t, warehouse+" final share", hundred, acc)
	}
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}

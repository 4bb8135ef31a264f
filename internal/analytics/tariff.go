package analytics

import (
	"orderanalytics/internal/model"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Tariffs derives a (warehouse, tariff) pair from every order. Pairs that
// repeat an already seen warehouse and tariff exactly are dropped; a
// warehouse with differing tariffs keeps all of them, in first-seen order.
func Tariffs(orders []model.Order) ([]model.WarehouseTariff, error) {
	tariffs := make([]model.WarehouseTariff, 0, len(orders))
	seen := make(map[string][]decimal.Decimal)

	for _, o := range orders {
		tariff, err := orderTariff(o)
		if err != nil {
			return nil, err
		}
		if lo.ContainsBy(seen[o.WarehouseName], tariff.Equal) {
			continue
		}
		seen[o.WarehouseName] = append(seen[o.WarehouseName], tariff)
		tariffs = append(tariffs, model.WarehouseTariff{
			WarehouseName: o.WarehouseName,
			Tariff:        tariff,
		})
	}
	return tariffs, nil
}

package service

import (
	"context"

	"orderanalytics/internal/analytics"
	"orderanalytics/internal/model"
	"orderanalytics/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type OrderService interface {
	Import(ctx context.Context, orders []model.Order) (int, error)
	List(ctx context.Context, page, limit int) ([]model.Order, int64, error)
}

type orderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

// Import validates a dataset and stores it atomically. Order ids must be
// unique within the batch and against stored orders.
func (s *orderService) Import(ctx context.Context, orders []model.Order) (int, error) {
	if err := analytics.Validate(orders); err != nil {
		return 0, err
	}
	if dup := lo.FindDuplicatesBy(orders, func(o model.Order) model.OrderID { return o.OrderID }); len(dup) > 0 {
		return 0, &analytics.RecordError{
			Kind:      repository.ErrDuplicateOrder,
			OrderID:   dup[0].OrderID,
			Warehouse: dup[0].WarehouseName,
			Reason:    "order_id repeated in dataset",
		}
	}

	if err := s.orders.CreateBatch(ctx, orders); err != nil {
		return 0, err
	}
	log.Info().Int("orders", len(orders)).Msg("orders imported")
	return len(orders), nil
}

func (s *orderService) List(ctx context.Context, page, limit int) ([]model.Order, int64, error) {
	return s.orders.List(ctx, page, limit)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"orderanalytics/internal/model"

	"gorm.io/gorm"
)

// ErrDuplicateOrder is returned when an imported order_id is already stored
var ErrDuplicateOrder = errors.New("order already exists")

type OrderRepository interface {
	CreateBatch(ctx context.Context, orders []model.Order) error
	ListAll(ctx context.Context) ([]model.Order, error)
	List(ctx context.Context, page, limit int) ([]model.Order, int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateBatch stores orders together with their line items in a single
// transaction. Nothing is stored when any order fails.
func (r *orderRepository) CreateBatch(ctx context.Context, orders []model.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(orders, 100).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateOrder
	}
	if err != nil {
		return fmt.Errorf("failed to store orders: %w", err)
	}
	return nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := r.withProducts(ctx).
		Order("seq ASC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) List(ctx context.Context, page, limit int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&model.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := r.withProducts(ctx).
		Order("seq ASC").
		Offset(offset).Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) withProducts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

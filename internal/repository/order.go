package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"toko-backend/internal/apperr"
	"toko-backend/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order) error
	CreateOrderItems(ctx context.Context, tx *gorm.DB, items []*model.OrderItem) error
	FindByID(ctx context.Context, orderID uint) (*model.Order, error)
	MarkPaid(ctx context.Context, tx *gorm.DB, orderID uint) error
	MarkFailed(ctx context.Context, tx *gorm.DB, orderID uint) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{db: db}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) CreateOrderItems(ctx context.Context, tx *gorm.DB, items []*model.OrderItem) error {
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", orderID).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find order: %v", apperr.ErrPersistence, err)
	}
	return &order, nil
}

// MarkPaid is idempotent: a second call on an already-paid order matches
// zero rows and succeeds. A missing order is NotFound.
func (r *orderRepoImpl) MarkPaid(ctx context.Context, tx *gorm.DB, orderID uint) error {
	return r.transition(ctx, tx, orderID, model.OrderStatusPaid)
}

func (r *orderRepoImpl) MarkFailed(ctx context.Context, tx *gorm.DB, orderID uint) error {
	return r.transition(ctx, tx, orderID, model.OrderStatusFailed)
}

func (r *orderRepoImpl) transition(ctx context.Context, tx *gorm.DB, orderID uint, status model.OrderStatus) error {
	result := tx.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status = ?", orderID, model.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("%w: mark order %s: %v", apperr.ErrPersistence, status, result.Error)
	}
	if result.RowsAffected == 0 {
		// Either already in a terminal state (replayed callback) or absent.
		var count int64
		if err := tx.WithContext(ctx).Model(&model.Order{}).
			Where("id = ?", orderID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("%w: check order: %v", apperr.ErrPersistence, err)
		}
		if count == 0 {
			return apperr.ErrNotFound
		}
	}
	return nil
}

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

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	FindByExternalID(ctx context.Context, externalID string) (*model.Payment, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, externalID string, status model.PaymentStatus) error
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{db: db}
}

func (r *paymentRepoImpl) Create(ctx context.Context, payment *model.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("%w: create payment: %v", apperr.ErrPersistence, err)
	}
	return nil
}

func (r *paymentRepoImpl) FindByExternalID(ctx context.Context, externalID string) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find payment: %v", apperr.ErrPersistence, err)
	}
	return &payment, nil
}

func (r *paymentRepoImpl) UpdateStatus(ctx context.Context, tx *gorm.DB, externalID string, status model.PaymentStatus) error {
	err := tx.WithContext(ctx).Model(&model.Payment{}).
		Where("external_id = ?", externalID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("%w: update payment status: %v", apperr.ErrPersistence, err)
	}
	return nil
}

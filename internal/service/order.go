package service

import (
	"context"
	"fmt"
	"strings"

	"toko-backend/internal/apperr"
	"toko-backend/internal/config"
	"toko-backend/internal/dto"
	"toko-backend/internal/model"
	"toko-backend/internal/repository"

	"gorm.io/gorm"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, userID string, items []dto.OrderItemRequest, city string) (*model.Order, error)
	GetOrder(ctx context.Context, orderID uint) (*model.Order, error)
}

type orderServiceImpl struct {
	db        *gorm.DB
	orderRepo repository.OrderRepository
	shipping  config.Shipping
}

func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository, shipping config.Shipping) OrderService {
	return &orderServiceImpl{
		db:        db,
		orderRepo: orderRepo,
		shipping:  shipping,
	}
}

// PlaceOrder computes the total and writes the order and all its items in
// one transaction; a partial order is never observable.
func (s *orderServiceImpl) PlaceOrder(ctx context.Context, userID string, items []dto.OrderItemRequest, city string) (*model.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	itemsTotal := 0.0
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be positive")
		}
		itemsTotal += item.Price * float64(item.Quantity)
	}

	shippingCost := 0.0
	if strings.EqualFold(city, s.shipping.FlatRateCity) {
		shippingCost = s.shipping.FlatRate
	}

	order := &model.Order{
		UserID:       userID,
		TotalAmount:  itemsTotal + shippingCost,
		City:         city,
		ShippingCost: shippingCost,
		Status:       model.OrderStatusPending,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		orderItems := make([]*model.OrderItem, len(items))
		for i, item := range items {
			orderItems[i] = &model.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.Price,
			}
		}
		if err := s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: place order: %v", apperr.ErrPersistence, err)
	}

	return order, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, orderID uint) (*model.Order, error) {
	return s.orderRepo.FindByID(ctx, orderID)
}

package service

import (
	"context"
	"testing"

	"toko-backend/internal/apperr"
	"toko-backend/internal/config"
	"toko-backend/internal/dto"
	"toko-backend/internal/model"
	"toko-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db), config.Shipping{
		FlatRateCity: "semarang",
		FlatRate:     15.0,
	})
	return svc, db
}

func TestOrderService_PlaceOrder_Shipping(t *testing.T) {
	ctx := context.Background()

	items := []dto.OrderItemRequest{
		{ProductID: 5, Quantity: 2, Price: 10.0},
	}

	cases := []struct {
		name         string
		city         string
		wantShipping float64
		wantTotal    float64
	}{
		{"flat rate city", "Semarang", 15.0, 35.0},
		{"flat rate city lowercase", "semarang", 15.0, 35.0},
		{"other city", "Jakarta", 0, 20.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newOrderService(t)

			order, err := svc.PlaceOrder(ctx, "user-1", items, tc.city)
			require.NoError(t, err)
			assert.Equal(t, tc.wantShipping, order.ShippingCost)
			assert.Equal(t, tc.wantTotal, order.TotalAmount)
			assert.Equal(t, model.OrderStatusPending, order.Status)
		})
	}
}

func TestOrderService_PlaceOrder_PersistsOrderAndItems(t *testing.T) {
	ctx := context.Background()
	svc, db := newOrderService(t)

	order, err := svc.PlaceOrder(ctx, "user-1", []dto.OrderItemRequest{
		{ProductID: 1, Quantity: 1, Price: 5.0},
		{ProductID: 2, Quantity: 3, Price: 2.5},
	}, "Jakarta")
	require.NoError(t, err)
	assert.Equal(t, 12.5, order.TotalAmount)

	var itemCount int64
	require.NoError(t, db.Model(&model.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.EqualValues(t, 2, itemCount)

	stored, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
}

func TestOrderService_PlaceOrder_Validation(t *testing.T) {
	ctx := context.Background()
	svc, db := newOrderService(t)

	_, err := svc.PlaceOrder(ctx, "user-1", nil, "Jakarta")
	assert.Error(t, err)

	_, err = svc.PlaceOrder(ctx, "user-1", []dto.OrderItemRequest{
		{ProductID: 1, Quantity: 0, Price: 5.0},
	}, "Jakarta")
	assert.Error(t, err)

	// Nothing was written on either failure.
	var orderCount int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	assert.EqualValues(t, 0, orderCount)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.GetOrder(context.Background(), 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

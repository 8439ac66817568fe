package service

import (
	"context"
	"errors"
	"testing"

	"toko-backend/internal/apperr"
	"toko-backend/internal/client"
	"toko-backend/internal/config"
	"toko-backend/internal/dto"
	"toko-backend/internal/model"
	"toko-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMidtrans struct {
	lastRequest *client.SnapRequest
	fail        bool
}

func (f *fakeMidtrans) CreateSnapTransaction(_ context.Context, req *client.SnapRequest) (*client.SnapResponse, error) {
	if f.fail {
		return nil, errors.New("midtrans error 500: upstream down")
	}
	f.lastRequest = req
	return &client.SnapResponse{
		Token:       "snap-token-1",
		RedirectURL: "https://app.midtrans.com/snap/v2/vtweb/snap-token-1",
	}, nil
}

type paymentFixture struct {
	db       *gorm.DB
	gateway  *fakeMidtrans
	orders   OrderService
	payments PaymentService
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	db := newTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	gateway := &fakeMidtrans{}
	return &paymentFixture{
		db:      db,
		gateway: gateway,
		orders: NewOrderService(db, orderRepo, config.Shipping{
			FlatRateCity: "semarang",
			FlatRate:     15.0,
		}),
		payments: NewPaymentService(db, gateway, orderRepo, repository.NewPaymentRepository(db)),
	}
}

func (f *paymentFixture) placeOrder(t *testing.T) *model.Order {
	t.Helper()
	order, err := f.orders.PlaceOrder(context.Background(), "user-1", []dto.OrderItemRequest{
		{ProductID: 5, Quantity: 2, Price: 10.0},
	}, "Semarang")
	require.NoError(t, err)
	return order
}

func (f *paymentFixture) orderStatus(t *testing.T, orderID uint) model.OrderStatus {
	t.Helper()
	var order model.Order
	require.NoError(t, f.db.First(&order, orderID).Error)
	return order.Status
}

func (f *paymentFixture) paymentStatus(t *testing.T, externalID string) model.PaymentStatus {
	t.Helper()
	var payment model.Payment
	require.NoError(t, f.db.Where("external_id = ?", externalID).First(&payment).Error)
	return payment.Status
}

func TestPaymentService_CreateTransaction(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture(t)
	order := f.placeOrder(t)

	resp, err := f.payments.CreateTransaction(ctx, order.ID, Customer{
		UserID: "user-1",
		Email:  "alice@example.com",
		Name:   "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "snap-token-1", resp.Token)
	assert.NotEmpty(t, resp.RedirectURL)

	// The gateway request carries a shipping row and an items-total row.
	req := f.gateway.lastRequest
	require.NotNil(t, req)
	assert.Equal(t, 35.0, req.TransactionDetails.GrossAmount)
	require.Len(t, req.ItemDetails, 2)
	assert.Equal(t, "shipping_cost", req.ItemDetails[0].ID)
	assert.Equal(t, 15.0, req.ItemDetails[0].Price)
	assert.Equal(t, "order_total", req.ItemDetails[1].ID)
	assert.Equal(t, 20.0, req.ItemDetails[1].Price)

	assert.Equal(t, model.PaymentStatusPending, f.paymentStatus(t, "snap-token-1"))
}

func TestPaymentService_CreateTransaction_OrderMissing(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.payments.CreateTransaction(context.Background(), 999, Customer{})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPaymentService_CreateTransaction_GatewayDown(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.placeOrder(t)
	f.gateway.fail = true

	_, err := f.payments.CreateTransaction(context.Background(), order.ID, Customer{})
	assert.ErrorIs(t, err, apperr.ErrGateway)

	// No payment row was recorded for the failed call.
	var count int64
	require.NoError(t, f.db.Model(&model.Payment{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestPaymentService_Settlement_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture(t)
	order := f.placeOrder(t)

	_, err := f.payments.CreateTransaction(ctx, order.ID, Customer{})
	require.NoError(t, err)

	require.NoError(t, f.payments.HandleNotification(ctx, "snap-token-1", "settlement"))
	assert.Equal(t, model.OrderStatusPaid, f.orderStatus(t, order.ID))
	assert.Equal(t, model.PaymentStatusSuccess, f.paymentStatus(t, "snap-token-1"))

	// Replay of the same final status must not error or double-apply.
	require.NoError(t, f.payments.HandleNotification(ctx, "snap-token-1", "settlement"))
	assert.Equal(t, model.OrderStatusPaid, f.orderStatus(t, order.ID))
}

func TestPaymentService_CancelAndExpire(t *testing.T) {
	ctx := context.Background()

	for _, status := range []string{"cancel", "expire"} {
		t.Run(status, func(t *testing.T) {
			f := newPaymentFixture(t)
			order := f.placeOrder(t)
			_, err := f.payments.CreateTransaction(ctx, order.ID, Customer{})
			require.NoError(t, err)

			require.NoError(t, f.payments.HandleNotification(ctx, "snap-token-1", status))
			assert.Equal(t, model.PaymentStatusFailure, f.paymentStatus(t, "snap-token-1"))
			assert.Equal(t, model.OrderStatusFailed, f.orderStatus(t, order.ID))
		})
	}
}

func TestPaymentService_UnknownStatus_NoTransition(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture(t)
	order := f.placeOrder(t)
	_, err := f.payments.CreateTransaction(ctx, order.ID, Customer{})
	require.NoError(t, err)

	require.NoError(t, f.payments.HandleNotification(ctx, "snap-token-1", "pending"))
	require.NoError(t, f.payments.HandleNotification(ctx, "snap-token-1", "deny-ish-unknown"))

	assert.Equal(t, model.PaymentStatusPending, f.paymentStatus(t, "snap-token-1"))
	assert.Equal(t, model.OrderStatusPending, f.orderStatus(t, order.ID))
}

func TestPaymentService_UnknownExternalID(t *testing.T) {
	f := newPaymentFixture(t)

	err := f.payments.HandleNotification(context.Background(), "no-such-token", "settlement")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

package service

import (
	"context"
	"fmt"

	"toko-backend/internal/apperr"
	"toko-backend/internal/client"
	"toko-backend/internal/model"
	"toko-backend/internal/repository"

	"gorm.io/gorm"
)

type PaymentService interface {
	CreateTransaction(ctx context.Context, orderID uint, customer Customer) (*client.SnapResponse, error)
	HandleNotification(ctx context.Context, externalID, transactionStatus string) error
}

type Customer struct {
	UserID string
	Email  string
	Name   string
}

type paymentServiceImpl struct {
	db          *gorm.DB
	midtrans    client.MidtransClient
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(
	db *gorm.DB,
	midtrans client.MidtransClient,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
) PaymentService {
	return &paymentServiceImpl{
		db:          db,
		midtrans:    midtrans,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *paymentServiceImpl) CreateTransaction(ctx context.Context, orderID uint, customer Customer) (*client.SnapResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	snapReq := &client.SnapRequest{
		TransactionDetails: client.TransactionDetails{
			OrderID:     fmt.Sprintf("order-%d", order.ID),
			GrossAmount: order.TotalAmount,
		},
		CustomerDetails: client.CustomerDetails{
			UserID:    customer.UserID,
			Email:     customer.Email,
			FirstName: customer.Name,
		},
		ItemDetails: []client.ItemDetail{
			{
				ID:       "shipping_cost",
				Price:    order.ShippingCost,
				Quantity: 1,
				Name:     "Shipping Cost",
			},
			{
				ID:       "order_total",
				Price:    order.TotalAmount - order.ShippingCost,
				Quantity: 1,
				Name:     "Order Items Total",
			},
		},
	}

	resp, err := s.midtrans.CreateSnapTransaction(ctx, snapReq)
	if err != nil {
		return nil, fmt.Errorf("%w: create snap transaction: %v", apperr.ErrGateway, err)
	}

	payment := &model.Payment{
		OrderID:    order.ID,
		ExternalID: resp.Token,
		Amount:     order.TotalAmount,
		Status:     model.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return resp, nil
}

// HandleNotification applies a gateway callback. Replays of the same final
// status are no-ops; ambiguous statuses leave everything pending.
func (s *paymentServiceImpl) HandleNotification(ctx context.Context, externalID, transactionStatus string) error {
	status := mapGatewayStatus(transactionStatus)
	if status == model.PaymentStatusPending {
		return nil
	}

	payment, err := s.paymentRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.UpdateStatus(ctx, tx, externalID, status); err != nil {
			return err
		}
		if status == model.PaymentStatusSuccess {
			return s.orderRepo.MarkPaid(ctx, tx, payment.OrderID)
		}
		return s.orderRepo.MarkFailed(ctx, tx, payment.OrderID)
	})
}

func mapGatewayStatus(transactionStatus string) model.PaymentStatus {
	switch transactionStatus {
	case "settlement":
		return model.PaymentStatusSuccess
	case "expire", "cancel":
		return model.PaymentStatusFailure
	default:
		return model.PaymentStatusPending
	}
}

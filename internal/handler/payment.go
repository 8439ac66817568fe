package handler

import (
	"net/http"

	"toko-backend/internal/dto"
	"toko-backend/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	log            *zap.Logger
}

func NewPaymentHandler(paymentService service.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		log:            log,
	}
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.OrderID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "orderId is required")
	}

	resp, err := h.paymentService.CreateTransaction(ctx, req.OrderID, service.Customer{
		UserID: req.UserID,
		Email:  req.Email,
		Name:   req.Name,
	})
	if err != nil {
		h.log.Error("create payment failed", zap.Uint("order_id", req.OrderID), zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CreatePaymentResponse{
		Message:     "Payment created",
		SnapToken:   resp.Token,
		RedirectURL: resp.RedirectURL,
	})
}

// Webhook always answers 200. A failed state update is logged server-side;
// erroring here would put the gateway into an endless retry loop.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	ctx := c.Request().Context()

	var notification dto.MidtransNotification
	if err := c.Bind(&notification); err != nil {
		h.log.Warn("webhook payload unreadable", zap.Error(err))
		return c.JSON(http.StatusOK, map[string]string{"message": "Notification received"})
	}

	err := h.paymentService.HandleNotification(ctx, notification.OrderID, notification.TransactionStatus)
	if err != nil {
		h.log.Error("webhook processing failed",
			zap.String("external_id", notification.OrderID),
			zap.String("transaction_status", notification.TransactionStatus),
			zap.Error(err))
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Notification received"})
}

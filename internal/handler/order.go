package handler

import (
	"net/http"
	"strconv"

	"toko-backend/internal/dto"
	"toko-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UserID == "" || req.City == "" || len(req.Items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "userId, city and items are required")
	}

	order, err := h.orderService.PlaceOrder(ctx, req.UserID, req.Items, req.City)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.PlaceOrderResponse{
		Message:      "Order created",
		OrderID:      order.ID,
		ShippingCost: order.ShippingCost,
		TotalAmount:  order.TotalAmount,
	})
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := h.orderService.GetOrder(ctx, uint(orderID))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

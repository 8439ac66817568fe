package dto

import "toko-backend/internal/model"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type GoogleLoginRequest struct {
	Token string `json:"token"`
}

type GoogleLoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    *model.User `json:"user"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type OrderItemRequest struct {
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type PlaceOrderRequest struct {
	UserID string             `json:"userId"`
	Items  []OrderItemRequest `json:"items"`
	City   string             `json:"city"`
}

type PlaceOrderResponse struct {
	Message      string  `json:"message"`
	OrderID      uint    `json:"orderId"`
	ShippingCost float64 `json:"shippingCost"`
	TotalAmount  float64 `json:"totalAmount"`
}

type CreatePaymentRequest struct {
	OrderID uint   `json:"orderId"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

type CreatePaymentResponse struct {
	Message     string `json:"message"`
	SnapToken   string `json:"snapToken"`
	RedirectURL string `json:"redirectUrl"`
}

// MidtransNotification is the gateway's webhook payload. order_id carries
// the snap token the payment row was keyed by.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

package handler

import (
	"net/http"

	"toko-backend/internal/dto"
	"toko-backend/internal/middleware"
	"toko-backend/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService service.AuthService
	log         *zap.Logger
}

func NewAuthHandler(authService service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username, email and password are required")
	}

	userID, err := h.authService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		h.log.Warn("register failed", zap.String("email", req.Email), zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		UserID:  userID,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	token, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}

func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.GoogleLoginRequest
	if err := c.Bind(&req); err != nil || req.Token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token is required")
	}

	result, err := h.authService.GoogleLogin(ctx, req.Token)
	if err != nil {
		return writeError(c, err)
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	return c.JSON(status, dto.GoogleLoginResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    result.User,
	})
}

func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	ctx := c.Request().Context()

	userID := middleware.UserID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "currentPassword and newPassword are required")
	}

	if err := h.authService.UpdatePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

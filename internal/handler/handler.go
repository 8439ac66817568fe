package handler

import (
	"errors"
	"net/http"

	"toko-backend/internal/apperr"
	"toko-backend/internal/dto"

	"github.com/labstack/echo/v4"
)

// writeError maps the error taxonomy onto HTTP statuses. Persistence and
// gateway failures come back as an opaque 500; the detail is the caller's
// to log, never the client's to read.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperr.ErrDuplicateIdentity):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "username or email already registered"})
	case errors.Is(err, apperr.ErrNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "not found"})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid credentials"})
	case errors.Is(err, apperr.ErrInvalidToken):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid token"})
	case errors.Is(err, apperr.ErrUpload):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "upload rejected"})
	default:
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "something went wrong"})
	}
}

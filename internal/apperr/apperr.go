// Package apperr defines the error taxonomy shared by every layer.
// Repositories and services wrap these sentinels with context; handlers
// map them to HTTP statuses.
package apperr

import "errors"

var (
	// ErrDuplicateIdentity means a username or email is already taken.
	ErrDuplicateIdentity = errors.New("duplicate identity")

	// ErrNotFound covers missing users, orders, products and payments.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials means a password check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers bad signatures, expiry and audience mismatch
	// for both session tokens and federated ID tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrPersistence is a storage-layer failure.
	ErrPersistence = errors.New("persistence error")

	// ErrGateway is a payment-gateway failure. Never retried.
	ErrGateway = errors.New("gateway error")

	// ErrUpload is an object-store or file-validation failure.
	ErrUpload = errors.New("upload error")
)

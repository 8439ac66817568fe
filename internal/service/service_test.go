package service

import (
	"context"
	"fmt"
	"testing"

	"toko-backend/internal/apperr"
	"toko-backend/internal/auth"
	"toko-backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database with shared cache keeps every pooled
	// connection on the same schema; the uuid isolates tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
	))
	return db
}

// fakeVerifier stands in for the Google token verifier.
type fakeVerifier struct {
	identities map[string]*auth.Identity
}

func (f *fakeVerifier) Verify(_ context.Context, idToken string) (*auth.Identity, error) {
	identity, ok := f.identities[idToken]
	if !ok {
		return nil, apperr.ErrInvalidToken
	}
	return identity, nil
}

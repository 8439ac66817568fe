package auth

import (
	"testing"
	"time"

	"toko-backend/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue("user-1", "alice@example.com")
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestTokenIssuer_Expiry(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer("test-secret", time.Hour)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Issue("user-1", "alice@example.com")
	require.NoError(t, err)

	cases := []struct {
		name  string
		now   time.Time
		valid bool
	}{
		{"just issued", issued.Add(time.Second), true},
		{"one second before expiry", issued.Add(time.Hour - time.Second), true},
		{"at expiry instant", issued.Add(time.Hour), false},
		{"after expiry", issued.Add(2 * time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			issuer.now = func() time.Time { return tc.now }
			_, err := issuer.Verify(token)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperr.ErrInvalidToken)
			}
		})
	}
}

func TestTokenIssuer_RejectsForeignSignature(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("another-secret", time.Hour)

	token, err := other.Issue("user-1", "alice@example.com")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	_, err := issuer.Verify("not.a.token")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"toko-backend/internal/apperr"
	"toko-backend/internal/auth"
	"toko-backend/internal/model"
	"toko-backend/internal/repository"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GoogleLogin(ctx context.Context, idToken string) (*GoogleLoginResult, error)
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// GoogleLoginResult reports whether the federated login created the user,
// so the handler can answer 201 for first-time sign-ins.
type GoogleLoginResult struct {
	Token   string
	User    *model.User
	Created bool
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	hasher   *auth.PasswordHasher
	issuer   *auth.TokenIssuer
	verifier auth.FederatedVerifier
}

func NewAuthService(
	userRepo repository.UserRepository,
	hasher *auth.PasswordHasher,
	issuer *auth.TokenIssuer,
	verifier auth.FederatedVerifier,
) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		verifier: verifier,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, username, email, password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: &hash,
		Provider:     "local",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if user.PasswordHash == nil || !s.hasher.Verify(password, *user.PasswordHash) {
		return "", apperr.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return token, nil
}

func (s *authServiceImpl) GoogleLogin(ctx context.Context, idToken string) (*GoogleLoginResult, error) {
	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	created := false
	user, err := s.userRepo.FindByGoogleID(ctx, identity.SubjectID)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		user = &model.User{
			ID:       uuid.NewString(),
			Username: identity.Email,
			Email:    identity.Email,
			GoogleID: &identity.SubjectID,
			Name:     identity.Name,
			Picture:  identity.Picture,
			Provider: "google",
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		created = true
	case err != nil:
		return nil, err
	default:
		// Refresh the profile claims on every federated login.
		if err := s.userRepo.UpdateProfile(ctx, user.ID, identity.Name, identity.Picture); err != nil {
			return nil, err
		}
		user.Name = identity.Name
		user.Picture = identity.Picture
	}

	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("google login: %w", err)
	}

	return &GoogleLoginResult{Token: token, User: user, Created: created}, nil
}

func (s *authServiceImpl) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.PasswordHash == nil || !s.hasher.Verify(currentPassword, *user.PasswordHash) {
		return apperr.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return s.userRepo.UpdatePassword(ctx, userID, hash)
}

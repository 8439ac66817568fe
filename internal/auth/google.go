package auth

import (
	"context"
	"fmt"

	"toko-backend/internal/apperr"
	"toko-backend/internal/config"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Identity is the profile extracted from a verified federated ID token.
type Identity struct {
	SubjectID string
	Email     string
	Name      string
	Picture   string
}

// FederatedVerifier validates a third-party identity token. Pure
// verification boundary; the provider's key set is fetched and cached by
// the underlying SDK.
type FederatedVerifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

type googleVerifier struct {
	client    *fbauth.Client
	projectID string
}

func NewGoogleVerifier(ctx context.Context, cfg *config.Google) (FederatedVerifier, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}

	return &googleVerifier{client: client, projectID: cfg.ProjectID}, nil
}

func (v *googleVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, apperr.ErrInvalidToken
	}

	if token.Audience != v.projectID {
		return nil, apperr.ErrInvalidToken
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)

	return &Identity{
		SubjectID: token.UID,
		Email:     email,
		Name:      name,
		Picture:   picture,
	}, nil
}

// Package firebaseauth turns Firebase ID tokens into a domain.UserContext.
package firebaseauth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"hotel_booking/internal/domain"
)

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Verifier implements domain.TokenVerifier.
type Verifier struct{ client idTokenVerifier }

var _ domain.TokenVerifier = (*Verifier)(nil)

// New initializes the Firebase app. An empty credentialsFile falls back to
// application default credentials.
func New(ctx context.Context, credentialsFile, projectID string) (*Verifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return &Verifier{client: client}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (domain.UserContext, error) {
	if token == "" {
		return domain.UserContext{}, domain.ErrUnauthenticated
	}
	t, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return domain.UserContext{}, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	email, _ := t.Claims["email"].(string)
	return domain.UserContext{ID: t.UID, Email: email}, nil
}

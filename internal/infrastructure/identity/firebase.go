package identity

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseVerifier checks Firebase ID tokens with the Admin SDK.
type FirebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier builds the Admin SDK auth client. serviceAccount is
// either the service-account JSON itself or a path to it.
func NewFirebaseVerifier(ctx context.Context, serviceAccount string) (*FirebaseVerifier, error) {
	var cred option.ClientOption
	if strings.HasPrefix(strings.TrimSpace(serviceAccount), "{") {
		cred = option.WithCredentialsJSON([]byte(serviceAccount))
	} else {
		cred = option.WithCredentialsFile(serviceAccount)
	}

	app, err := firebase.NewApp(ctx, nil, cred)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) VerifyEmail(ctx context.Context, token string) (string, error) {
	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}
	return emailClaim(tok.Claims)
}

func emailClaim(claims map[string]interface{}) (string, error) {
	email, _ := claims["email"].(string)
	if email == "" {
		return "", ErrMissingEmail
	}
	return email, nil
}

package ports

import "context"

// TokenVerifier validates a bearer token with the identity provider and
// returns the email it was issued to.
type TokenVerifier interface {
	VerifyEmail(ctx context.Context, token string) (string, error)
}

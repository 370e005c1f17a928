package ports

import (
	"context"
	"time"

	"github.com/doctors-portal/portal-server/internal/core/domain"
)

// PaymentGateway creates card payment intents at the payment processor.
type PaymentGateway interface {
	CreateCardIntent(ctx context.Context, amount int64, currency, idempotencyKey string) (*domain.PaymentIntent, error)
}

// IdempotencyStore remembers the intent issued for an idempotency key.
type IdempotencyStore interface {
	// Lookup returns ok=false when the key has not been seen.
	Lookup(ctx context.Context, key string) (replay domain.IntentReplay, ok bool, err error)
	Remember(ctx context.Context, key string, replay domain.IntentReplay, ttl time.Duration) error
}

// PaymentService turns a checkout price into a payment intent client secret.
type PaymentService interface {
	CreateIntent(ctx context.Context, price float64, idempotencyKey string) (string, error)
}

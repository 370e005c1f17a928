// Package payment creates payment intents at Stripe.
package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/doctors-portal/portal-server/internal/core/domain"
)

// StripeGateway implements ports.PaymentGateway.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a gateway for secretKey. backends may be nil to use
// the public Stripe API.
func NewStripeGateway(secretKey string, backends *stripe.Backends) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, backends)}
}

// CreateCardIntent creates a card-only payment intent for amount minor units.
func (g *StripeGateway) CreateCardIntent(ctx context.Context, amount int64, currency, idempotencyKey string) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}

	return &domain.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}

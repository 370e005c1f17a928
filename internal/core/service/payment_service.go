package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/doctors-portal/portal-server/internal/api/metrics"
	"github.com/doctors-portal/portal-server/internal/core/domain"
	"github.com/doctors-portal/portal-server/internal/core/ports"
)

const idempotencyTTL = 24 * time.Hour

type paymentService struct {
	gateway ports.PaymentGateway
	replays ports.IdempotencyStore
	log     zerolog.Logger
}

// NewPaymentService returns a PaymentService. replays may be nil, in which
// case idempotency keys are only forwarded to the processor.
func NewPaymentService(gateway ports.PaymentGateway, replays ports.IdempotencyStore, log zerolog.Logger) ports.PaymentService {
	return &paymentService{gateway: gateway, replays: replays, log: log}
}

// CreateIntent requests a USD card payment intent for price dollars and
// returns its client secret.
func (s *paymentService) CreateIntent(ctx context.Context, price float64, idempotencyKey string) (string, error) {
	amount, err := domain.ToMinorUnits(price)
	if err != nil {
		return "", err
	}

	// 1. Replay a previously issued secret for the same key.
	if idempotencyKey != "" && s.replays != nil {
		replay, ok, err := s.replays.Lookup(ctx, idempotencyKey)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("idempotency_key", idempotencyKey).Msg("idempotency lookup failed, calling processor")
		case ok && replay.Amount != amount:
			metrics.PaymentIntentsTotal.WithLabelValues("conflict").Inc()
			s.log.Warn().
				Str("idempotency_key", idempotencyKey).
				Int64("stored_amount", replay.Amount).
				Int64("amount", amount).
				Msg("idempotency key reused with a different amount")
			return "", domain.ErrIdempotencyMismatch
		case ok:
			metrics.PaymentIntentsTotal.WithLabelValues("replayed").Inc()
			s.log.Debug().Str("idempotency_key", idempotencyKey).Msg("payment intent replayed")
			return replay.ClientSecret, nil
		}
	}

	// 2. Ask the processor.
	start := time.Now()
	intent, err := s.gateway.CreateCardIntent(ctx, amount, domain.CurrencyUSD, idempotencyKey)
	metrics.PaymentProviderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("failed").Inc()
		s.log.Error().Err(err).Int64("amount", amount).Msg("payment intent failed")
		return "", fmt.Errorf("create payment intent: %w: %v", domain.ErrPaymentFailed, err)
	}

	// 3. Remember the secret (non-fatal on failure).
	if idempotencyKey != "" && s.replays != nil {
		if err := s.replays.Remember(ctx, idempotencyKey, domain.IntentReplay{Amount: amount, ClientSecret: intent.ClientSecret}, idempotencyTTL); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", idempotencyKey).Msg("failed to store idempotency key")
		}
	}

	metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	s.log.Info().Str("intent_id", intent.ID).Int64("amount", amount).Str("currency", intent.Currency).Msg("payment intent created")
	return intent.ClientSecret, nil
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/doctors-portal/portal-server/internal/core/domain"
)

// IntentReplays remembers the intent issued for an Idempotency-Key so a
// retried checkout gets the same payment intent back.
// Key format:   payment-intent:<idempotency_key>
// Value format: <amount_minor_units>:<client_secret>
type IntentReplays struct {
	client *redis.Client
}

// NewIntentReplays creates an IntentReplays wrapping the given Redis client.
func NewIntentReplays(client *redis.Client) *IntentReplays {
	return &IntentReplays{client: client}
}

// Lookup returns the remembered intent for key, if any.
func (s *IntentReplays) Lookup(ctx context.Context, key string) (domain.IntentReplay, bool, error) {
	raw, err := s.client.Get(ctx, intentKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.IntentReplay{}, false, nil
	}
	if err != nil {
		return domain.IntentReplay{}, false, fmt.Errorf("intent replay lookup: %w", err)
	}

	replay, err := decodeReplay(raw)
	if err != nil {
		return domain.IntentReplay{}, false, fmt.Errorf("intent replay lookup: %w", err)
	}
	return replay, true, nil
}

// Remember stores the intent for key. The first stored intent wins.
func (s *IntentReplays) Remember(ctx context.Context, key string, replay domain.IntentReplay, ttl time.Duration) error {
	if err := s.client.SetNX(ctx, intentKey(key), encodeReplay(replay), ttl).Err(); err != nil {
		return fmt.Errorf("intent replay remember: %w", err)
	}
	return nil
}

func intentKey(key string) string {
	return fmt.Sprintf("payment-intent:%s", key)
}

func encodeReplay(r domain.IntentReplay) string {
	return strconv.FormatInt(r.Amount, 10) + ":" + r.ClientSecret
}

func decodeReplay(raw string) (domain.IntentReplay, error) {
	amount, secret, ok := strings.Cut(raw, ":")
	if !ok || secret == "" {
		return domain.IntentReplay{}, fmt.Errorf("malformed replay value %q", raw)
	}
	n, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		return domain.IntentReplay{}, fmt.Errorf("malformed replay amount %q", amount)
	}
	return domain.IntentReplay{Amount: n, ClientSecret: secret}, nil
}

package domain

import (
	"errors"
	"math"
)

const CurrencyUSD = "usd"

var ErrInvalidPrice = errors.New("price must be greater than zero")
var ErrPaymentFailed = errors.New("payment provider error")
var ErrIdempotencyMismatch = errors.New("idempotency key was already used for a different amount")

// PaymentIntent is the client-facing part of a processor payment intent.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// IntentReplay is what an idempotency key remembers: the amount it was
// issued for and the resulting client secret.
type IntentReplay struct {
	Amount       int64
	ClientSecret string
}

// ToMinorUnits converts a dollar price into cents, rounding to the nearest cent.
func ToMinorUnits(price float64) (int64, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, ErrInvalidPrice
	}
	return int64(math.Round(price * 100)), nil
}

package service

import (
	"context"
	"fmt"
	"math"

	"flc_backend/internals/configs"
)

// Gateway creates a card payment intent and hands back the secret the client confirms with.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// ToMinorUnits converts a decimal price to cents, truncating past the second decimal.
// The value is rounded at 1e-6 first so 19.99 does not land on 1998.
func ToMinorUnits(price float64) int64 {
	return int64(math.Trunc(math.Round(price*1e6) / 1e4))
}

// NewGateway picks the provider named in PAYMENT_PROVIDER.
func NewGateway(cfg *configs.Config) (Gateway, error) {
	switch cfg.PaymentProvider {
	case configs.PaymentProviderStripe:
		return NewStripeGateway(cfg.PaymentSecretKey), nil
	case configs.PaymentProviderMidtrans:
		return NewMidtransGateway(cfg.PaymentSecretKey, cfg.MidtransProduction), nil
	default:
		return nil, fmt.Errorf("unknown payment provider %q", cfg.PaymentProvider)
	}
}

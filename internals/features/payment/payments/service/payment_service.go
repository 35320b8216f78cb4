package service

import (
	"context"
	"log"
)

type PaymentService struct {
	gateway  Gateway
	currency string
}

func NewPaymentService(gateway Gateway, currency string) *PaymentService {
	return &PaymentService{gateway: gateway, currency: currency}
}

// CreateIntent charges price (major units, > 0) in the configured currency.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := ToMinorUnits(price)
	secret, err := s.gateway.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		log.Printf("[ERROR] create intent %d %s: %v", amount, s.currency, err)
		return "", err
	}
	log.Printf("[INFO] intent created: %d %s", amount, s.currency)
	return secret, nil
}

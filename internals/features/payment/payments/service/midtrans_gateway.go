package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// MidtransGateway uses a Snap token as the client secret.
type MidtransGateway struct {
	snap snap.Client
}

func NewMidtransGateway(serverKey string, production bool) *MidtransGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	g := &MidtransGateway{}
	g.snap.New(serverKey, env)
	return g
}

// CreateIntent ignores currency: Snap charges IDR, which has no minor unit.
func (g *MidtransGateway) CreateIntent(_ context.Context, amount int64, _ string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  "FLC-" + uuid.NewString(),
			GrossAmt: amount / 100,
		},
		EnabledPayments: []snap.SnapPaymentType{snap.PaymentTypeCreditCard},
	}

	resp, merr := g.snap.CreateTransaction(req)
	// merr is a *midtrans.Error; compare before it becomes an error interface
	if merr != nil {
		return "", fmt.Errorf("midtrans snap (status %d): %s", merr.StatusCode, merr.Message)
	}
	return resp.Token, nil
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	helper "flc_backend/internals/helpers"
)

// PaymentModel is written once per completed checkout and never updated.
type PaymentModel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	StudentEmail  string             `bson:"studentEmail" json:"studentEmail" validate:"required,email"`
	Price         float64            `bson:"price" json:"price" validate:"gte=0"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreateAt      time.Time          `bson:"createAt" json:"createAt"`

	Extra map[string]any `bson:",inline" json:"-"`
}

type paymentAlias PaymentModel

func (m PaymentModel) MarshalJSON() ([]byte, error) {
	return helper.MarshalWithExtra(paymentAlias(m), m.Extra)
}

func (m *PaymentModel) UnmarshalJSON(data []byte) error {
	var known paymentAlias
	extra, err := helper.UnmarshalWithExtra(data, &known)
	if err != nil {
		return err
	}
	*m = PaymentModel(known)
	m.Extra = extra
	return nil
}

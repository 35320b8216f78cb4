package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	helper "flc_backend/internals/helpers"
)

// SavedClassModel is a student's selection waiting for payment.
type SavedClassModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ClassID      string             `bson:"classId,omitempty" json:"classId,omitempty"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	StudentEmail string             `bson:"studentEmail" json:"studentEmail" validate:"required,email"`
	Price        float64            `bson:"price" json:"price" validate:"gte=0"`

	Extra map[string]any `bson:",inline" json:"-"`
}

type savedClassAlias SavedClassModel

func (m SavedClassModel) MarshalJSON() ([]byte, error) {
	return helper.MarshalWithExtra(savedClassAlias(m), m.Extra)
}

func (m *SavedClassModel) UnmarshalJSON(data []byte) error {
	var known savedClassAlias
	extra, err := helper.UnmarshalWithExtra(data, &known)
	if err != nil {
		return err
	}
	*m = SavedClassModel(known)
	m.Extra = extra
	return nil
}

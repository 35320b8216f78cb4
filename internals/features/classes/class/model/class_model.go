package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	helper "flc_backend/internals/helpers"
)

// ClassModel is a document of the classes collection.
type ClassModel struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name            string             `bson:"name" json:"name" validate:"required"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName  string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	InstructorEmail string             `bson:"instructorEmail" json:"instructorEmail"`
	AvailableSeats  int                `bson:"availableSeats" json:"availableSeats" validate:"gte=0"`
	Price           float64            `bson:"price" json:"price" validate:"gte=0"`
	Status          string             `bson:"status" json:"status"`
	Booking         int                `bson:"booking" json:"booking"`

	Extra map[string]any `bson:",inline" json:"-"`
}

type classAlias ClassModel

func (m ClassModel) MarshalJSON() ([]byte, error) {
	return helper.MarshalWithExtra(classAlias(m), m.Extra)
}

func (m *ClassModel) UnmarshalJSON(data []byte) error {
	var known classAlias
	extra, err := helper.UnmarshalWithExtra(data, &known)
	if err != nil {
		return err
	}
	*m = ClassModel(known)
	m.Extra = extra
	return nil
}

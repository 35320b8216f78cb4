package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	helper "flc_backend/internals/helpers"
)

// UserModel is a document of the users collection.
// Profile fields the client sends beyond the typed ones live in Extra.
type UserModel struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email" validate:"required,email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`

	Extra map[string]any `bson:",inline" json:"-"`
}

type userAlias UserModel

func (u UserModel) MarshalJSON() ([]byte, error) {
	return helper.MarshalWithExtra(userAlias(u), u.Extra)
}

func (u *UserModel) UnmarshalJSON(data []byte) error {
	var known userAlias
	extra, err := helper.UnmarshalWithExtra(data, &known)
	if err != nil {
		return err
	}
	*u = UserModel(known)
	u.Extra = extra
	return nil
}

func (u *UserModel) HasRole(role string) bool {
	return u != nil && u.Role == role
}

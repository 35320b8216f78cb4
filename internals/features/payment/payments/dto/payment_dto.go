package dto

import database "flc_backend/internals/databases"

type CreateIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type RecordPaymentResponse struct {
	InsertResult database.InsertResult `json:"insertResult"`
	DeleteResult database.DeleteResult `json:"deleteResult"`
}

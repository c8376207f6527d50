package model

import (
	"rentdesk/shared/model"
	"time"
)

const (
	TableName  = "booking_access_tokens"
	EntityName = "booking_access_token"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldCreatedAt = "created_at"
)

type AccessToken struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	model.Metadata
}

func (a AccessToken) Expired(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}

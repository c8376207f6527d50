package model

import (
	"rentdesk/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "security_deposit_authorizations"
	EntityName = "security_deposit_authorization"

	FieldID        = "id"
	FieldBookingID = "booking_id"
)

// Authorization is written by the payment-provider integration and only read here.
type Authorization struct {
	ID               string          `db:"id"                json:"id"`
	BookingID        string          `db:"booking_id"        json:"booking_id"`
	AuthorizedAmount decimal.Decimal `db:"authorized_amount" json:"authorized_amount"`
	CapturedAmount   decimal.Decimal `db:"captured_amount"   json:"captured_amount"`
	CaptureReason    *string         `db:"capture_reason"    json:"capture_reason,omitempty"`
	CapturedAt       *time.Time      `db:"captured_at"       json:"captured_at,omitempty"`
	model.Metadata
}

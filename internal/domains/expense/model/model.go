package model

import (
	"rentdesk/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "expenses"
	EntityName = "expense"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldIncurred  = "incurred_at"
)

type Expense struct {
	ID          string          `db:"id"          json:"id"`
	BookingID   string          `db:"booking_id"  json:"booking_id"`
	Category    string          `db:"category"    json:"category"`
	Amount      decimal.Decimal `db:"amount"      json:"amount"`
	Description *string         `db:"description" json:"description,omitempty"`
	IncurredAt  time.Time       `db:"incurred_at" json:"incurred_at"`
	model.Metadata
}

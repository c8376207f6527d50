package model

import (
	"rentdesk/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "fines"
	EntityName = "fine"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldPaymentStatus = "payment_status"
)

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

type Fine struct {
	ID            string          `db:"id"`
	BookingID     string          `db:"booking_id"`
	Amount        decimal.Decimal `db:"amount"`
	IssuedAt      time.Time       `db:"issued_at"`
	PaymentStatus string          `db:"payment_status"`
	DocumentURL   *string         `db:"document_url"`
	Description   *string         `db:"description"`
	DeletedAt     *time.Time      `db:"deleted_at"`
	model.Metadata
}

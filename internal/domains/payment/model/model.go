package model

import (
	"rentdesk/shared/model"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldFineID    = "fine_id"
	FieldStatus    = "status"
	FieldPaidAt    = "paid_at"
)

const (
	MethodCard         = "card"
	MethodBankTransfer = "bank_transfer"
	MethodCash         = "cash"
	MethodTwint        = "twint"
	MethodOther        = "other"
)

const (
	IntentDownPayment     = "down_payment"
	IntentBalancePayment  = "balance_payment"
	IntentSecurityDeposit = "security_deposit"
	IntentFines           = "fines"
	IntentExtras          = "extras"
	IntentOther           = "other"
)

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

var rentalIntents = []string{IntentDownPayment, IntentBalancePayment}

type Payment struct {
	ID            string          `db:"id"`
	BookingID     string          `db:"booking_id"`
	FineID        *string         `db:"fine_id"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	Method        string          `db:"method"`
	Intent        string          `db:"payment_intent"`
	Status        string          `db:"status"`
	PaidAt        *time.Time      `db:"paid_at"`
	TransactionID *string         `db:"transaction_id"`
	LinkID        *string         `db:"link_id"`
	LinkURL       *string         `db:"link_url"`
	model.Metadata
}

// IsRentalIntent reports whether a payment with this intent pays off the rental itself.
func IsRentalIntent(intent string) bool {
	return slices.Contains(rentalIntents, intent)
}

// Settled reports whether the payment counts toward the amount actually paid.
func (p Payment) Settled() bool {
	return p.Status == StatusPaid && p.PaidAt != nil && IsRentalIntent(p.Intent)
}

package model

import (
	"rentdesk/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ClientTableName    = "client_invoices"
	ClientEntityName   = "client_invoice"
	SupplierTableName  = "supplier_invoices"
	SupplierEntityName = "supplier_invoice"

	FieldID        = "id"
	FieldBookingID = "booking_id"
)

const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

const (
	TypeRental       = "rental"
	TypeDepositExtra = "deposit_extra"
	TypeOther        = "other"
)

type ClientInvoice struct {
	ID            string          `db:"id"`
	BookingID     string          `db:"booking_id"`
	InvoiceNumber string          `db:"invoice_number"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	VATRate       decimal.Decimal `db:"vat_rate"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaymentStatus string          `db:"payment_status"`
	IssuedAt      time.Time       `db:"issued_at"`
	DueAt         *time.Time      `db:"due_at"`
	DeletedAt     *time.Time      `db:"deleted_at"`
	model.Metadata
}

type SupplierInvoice struct {
	ID            string          `db:"id"`
	BookingID     string          `db:"booking_id"`
	InvoiceNumber string          `db:"invoice_number"`
	InvoiceType   string          `db:"invoice_type"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentStatus string          `db:"payment_status"`
	DeletedAt     *time.Time      `db:"deleted_at"`
	model.Metadata
}

// IsDepositExtra marks supplier charges settled out of the captured security deposit.
func (s SupplierInvoice) IsDepositExtra() bool {
	return s.InvoiceType == TypeDepositExtra
}

package model

import (
	"rentdesk/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldReferenceCode = "reference_code"
	FieldStatus        = "status"
	FieldSource        = "source"
	FieldClientEmail   = "client_email"
	FieldDeliveryAt    = "delivery_at"
	FieldSupplierName  = "supplier_name"
)

const (
	StatusDraft     = "draft"
	StatusConfirmed = "confirmed"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	SourceManual      = "manual"
	SourceCMS         = "cms"
	SourceEmailImport = "email_import"
)

type Booking struct {
	ID                 string          `db:"id"`
	ReferenceCode      string          `db:"reference_code"`
	Status             string          `db:"status"`
	Source             string          `db:"source"`
	ClientName         string          `db:"client_name"`
	ClientEmail        string          `db:"client_email"`
	ClientPhone        *string         `db:"client_phone"`
	GuestName          *string         `db:"guest_name"`
	VehicleMake        string          `db:"vehicle_make"`
	VehicleModel       string          `db:"vehicle_model"`
	VehiclePlate       *string         `db:"vehicle_plate"`
	DeliveryLocation   string          `db:"delivery_location"`
	DeliveryAt         time.Time       `db:"delivery_at"`
	CollectionLocation string          `db:"collection_location"`
	CollectionAt       time.Time       `db:"collection_at"`
	RentalPriceGross   decimal.Decimal `db:"rental_price_gross"`
	VATRate            decimal.Decimal `db:"vat_rate"`
	SupplierPrice      decimal.Decimal `db:"supplier_price"`
	SecurityDeposit    decimal.Decimal `db:"security_deposit"`
	ExtraDeduction     decimal.Decimal `db:"extra_deduction"`
	AmountTotal        decimal.Decimal `db:"amount_total"`
	AmountPaid         decimal.Decimal `db:"amount_paid"`
	Currency           string          `db:"currency"`
	SupplierName       *string         `db:"supplier_name"`
	SupplierEmail      *string         `db:"supplier_email"`
	TermsAcceptedAt    *time.Time      `db:"terms_accepted_at"`
	TermsSignature     *string         `db:"terms_signature"`
	Notes              *string         `db:"notes"`
	model.Metadata
}

func (b Booking) IsEmailImport() bool {
	return b.Source == SourceEmailImport
}

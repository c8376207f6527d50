package dto

import (
	"rentdesk/internal/domains/booking/model"
	"rentdesk/shared"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/failure"
	"rentdesk/shared/hook"
	gModel "rentdesk/shared/model"
	"rentdesk/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	ReferenceCode      string          `json:"reference_code"      validate:"required,max=50"`
	Source             string          `json:"source"              validate:"omitempty,oneof=manual cms email_import"`
	ClientName         string          `json:"client_name"         validate:"required,max=100"`
	ClientEmail        string          `json:"client_email"        validate:"required,email,max=100"`
	ClientPhone        *string         `json:"client_phone"        validate:"omitempty,max=30"`
	GuestName          *string         `json:"guest_name"          validate:"omitempty,max=100"`
	VehicleMake        string          `json:"vehicle_make"        validate:"required,max=50"`
	VehicleModel       string          `json:"vehicle_model"       validate:"required,max=50"`
	VehiclePlate       *string         `json:"vehicle_plate"       validate:"omitempty,max=20"`
	DeliveryLocation   string          `json:"delivery_location"   validate:"required"`
	DeliveryAt         time.Time       `json:"delivery_at"         validate:"required"`
	CollectionLocation string          `json:"collection_location" validate:"required"`
	CollectionAt       time.Time       `json:"collection_at"       validate:"required"`
	RentalPriceGross   decimal.Decimal `json:"rental_price_gross"  validate:"gte=0"`
	VATRate            decimal.Decimal `json:"vat_rate"            validate:"gte=0,lte=100"`
	SupplierPrice      decimal.Decimal `json:"supplier_price"      validate:"gte=0"`
	SecurityDeposit    decimal.Decimal `json:"security_deposit"    validate:"gte=0"`
	ExtraDeduction     decimal.Decimal `json:"extra_deduction"     validate:"gte=0"`
	AmountTotal        decimal.Decimal `json:"amount_total"        validate:"gte=0"`
	Currency           string          `json:"currency"            validate:"omitempty,iso4217"`
	SupplierName       *string         `json:"supplier_name"       validate:"omitempty,max=100"`
	SupplierEmail      *string         `json:"supplier_email"      validate:"omitempty,email"`
	Notes              *string         `json:"notes"`
}

// ToModel builds a draft booking. A missing amount_total falls back to the gross rental price.
func (c *CreateBookingRequest) ToModel(user, currency string) (model.Booking, error) {
	if c.CollectionAt.Before(c.DeliveryAt) {
		return model.Booking{}, failure.BadRequestFromString("collection_at must not be before delivery_at") // nolint:wrapcheck
	}

	source := model.SourceManual
	if c.Source != "" {
		source = c.Source
	}

	if c.Currency != "" {
		currency = strings.ToUpper(c.Currency)
	}

	total := c.AmountTotal
	if total.IsZero() {
		total = c.RentalPriceGross
	}

	return model.Booking{
		ID:                 uuid.NewString(),
		ReferenceCode:      c.ReferenceCode,
		Status:             model.StatusDraft,
		Source:             source,
		ClientName:         c.ClientName,
		ClientEmail:        c.ClientEmail,
		ClientPhone:        c.ClientPhone,
		GuestName:          c.GuestName,
		VehicleMake:        c.VehicleMake,
		VehicleModel:       c.VehicleModel,
		VehiclePlate:       c.VehiclePlate,
		DeliveryLocation:   c.DeliveryLocation,
		DeliveryAt:         c.DeliveryAt,
		CollectionLocation: c.CollectionLocation,
		CollectionAt:       c.CollectionAt,
		RentalPriceGross:   c.RentalPriceGross,
		VATRate:            c.VATRate,
		SupplierPrice:      c.SupplierPrice,
		SecurityDeposit:    c.SecurityDeposit,
		ExtraDeduction:     c.ExtraDeduction,
		AmountTotal:        total,
		AmountPaid:         decimal.Zero,
		Currency:           currency,
		SupplierName:       c.SupplierName,
		SupplierEmail:      c.SupplierEmail,
		Notes:              c.Notes,
		Metadata:           gModel.NewMetadata(timezone.Now(), user),
	}, nil
}

// UpdateBookingRequest only writes the fields that were sent. Status moves through Confirm and Cancel.
type UpdateBookingRequest struct {
	ClientName         string          `db:"client_name"         json:"client_name"         validate:"omitempty,max=100"`
	ClientEmail        string          `db:"client_email"        json:"client_email"        validate:"omitempty,email,max=100"`
	ClientPhone        *string         `db:"client_phone"        json:"client_phone"        validate:"omitempty,max=30"`
	GuestName          *string         `db:"guest_name"          json:"guest_name"          validate:"omitempty,max=100"`
	VehicleMake        string          `db:"vehicle_make"        json:"vehicle_make"        validate:"omitempty,max=50"`
	VehicleModel       string          `db:"vehicle_model"       json:"vehicle_model"       validate:"omitempty,max=50"`
	VehiclePlate       *string         `db:"vehicle_plate"       json:"vehicle_plate"       validate:"omitempty,max=20"`
	DeliveryLocation   string          `db:"delivery_location"   json:"delivery_location"`
	DeliveryAt         time.Time       `db:"delivery_at"         json:"delivery_at"`
	CollectionLocation string          `db:"collection_location" json:"collection_location"`
	CollectionAt       time.Time       `db:"collection_at"       json:"collection_at"`
	RentalPriceGross   decimal.Decimal `db:"rental_price_gross"  json:"rental_price_gross"  validate:"gte=0"`
	VATRate            decimal.Decimal `db:"vat_rate"            json:"vat_rate"            validate:"gte=0,lte=100"`
	SupplierPrice      decimal.Decimal `db:"supplier_price"      json:"supplier_price"      validate:"gte=0"`
	SecurityDeposit    decimal.Decimal `db:"security_deposit"    json:"security_deposit"    validate:"gte=0"`
	ExtraDeduction     decimal.Decimal `db:"extra_deduction"     json:"extra_deduction"     validate:"gte=0"`
	AmountTotal        decimal.Decimal `db:"amount_total"        json:"amount_total"        validate:"gte=0"`
	SupplierName       *string         `db:"supplier_name"       json:"supplier_name"       validate:"omitempty,max=100"`
	SupplierEmail      *string         `db:"supplier_email"      json:"supplier_email"      validate:"omitempty,email"`
	TermsAcceptedAt    *time.Time      `db:"terms_accepted_at"   json:"terms_accepted_at"`
	TermsSignature     *string         `db:"terms_signature"     json:"terms_signature"     validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=2"`
	Notes              *string         `db:"notes"               json:"notes"`
}

func (u UpdateBookingRequest) IsEmpty() bool {
	return len(shared.TransformFields(u, "")) == 2
}

type BookingResponse struct {
	ID                 string          `json:"id"`
	ReferenceCode      string          `json:"reference_code"`
	Status             string          `json:"status"`
	Source             string          `json:"source"`
	ClientName         string          `json:"client_name"`
	ClientEmail        string          `json:"client_email"`
	ClientPhone        *string         `json:"client_phone,omitempty"`
	GuestName          *string         `json:"guest_name,omitempty"`
	VehicleMake        string          `json:"vehicle_make"`
	VehicleModel       string          `json:"vehicle_model"`
	VehiclePlate       *string         `json:"vehicle_plate,omitempty"`
	DeliveryLocation   string          `json:"delivery_location"`
	DeliveryAt         time.Time       `json:"delivery_at"`
	CollectionLocation string          `json:"collection_location"`
	CollectionAt       time.Time       `json:"collection_at"`
	RentalPriceGross   decimal.Decimal `json:"rental_price_gross"`
	VATRate            decimal.Decimal `json:"vat_rate"`
	SupplierPrice      decimal.Decimal `json:"supplier_price"`
	SecurityDeposit    decimal.Decimal `json:"security_deposit"`
	ExtraDeduction     decimal.Decimal `json:"extra_deduction"`
	AmountTotal        decimal.Decimal `json:"amount_total"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	Currency           string          `json:"currency"`
	SupplierName       *string         `json:"supplier_name,omitempty"`
	SupplierEmail      *string         `json:"supplier_email,omitempty"`
	TermsAcceptedAt    *time.Time      `json:"terms_accepted_at,omitempty"`
	HasSignature       bool            `json:"has_signature"`
	Notes              *string         `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ReferenceCode = model.ReferenceCode
	r.Status = model.Status
	r.Source = model.Source
	r.ClientName = model.ClientName
	r.ClientEmail = model.ClientEmail
	r.ClientPhone = model.ClientPhone
	r.GuestName = model.GuestName
	r.VehicleMake = model.VehicleMake
	r.VehicleModel = model.VehicleModel
	r.VehiclePlate = model.VehiclePlate
	r.DeliveryLocation = model.DeliveryLocation
	r.DeliveryAt = model.DeliveryAt
	r.CollectionLocation = model.CollectionLocation
	r.CollectionAt = model.CollectionAt
	r.RentalPriceGross = model.RentalPriceGross
	r.VATRate = model.VATRate
	r.SupplierPrice = model.SupplierPrice
	r.SecurityDeposit = model.SecurityDeposit
	r.ExtraDeduction = model.ExtraDeduction
	r.AmountTotal = model.AmountTotal
	r.AmountPaid = model.AmountPaid
	r.Currency = model.Currency
	r.SupplierName = model.SupplierName
	r.SupplierEmail = model.SupplierEmail
	r.TermsAcceptedAt = model.TermsAcceptedAt
	r.HasSignature = model.TermsSignature != nil && *model.TermsSignature != ""
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type CreateBookingResponse struct {
	ID string `json:"id"`
}

// MutationResponse is returned by status transitions. Warnings list side effects that failed
// after the status change was stored.
type MutationResponse struct {
	ID          string         `json:"id"`
	Status      string         `json:"status"`
	SoftDeleted int            `json:"soft_deleted,omitempty"`
	Warnings    []hook.Failure `json:"warnings,omitempty"`
}

package dto

import (
	"encoding/json"
	"rentdesk/internal/domains/harness/payload"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TargetCMSBooking   = "cms-booking"
	TargetPaymentEvent = "payment-event"
)

type CMSBookingRequest struct {
	ReferenceCode      string          `json:"reference_code"`
	ClientName         string          `json:"client_name"         validate:"required"`
	ClientEmail        string          `json:"client_email"        validate:"required,email"`
	ClientPhone        string          `json:"client_phone"`
	VehicleMake        string          `json:"vehicle_make"        validate:"required"`
	VehicleModel       string          `json:"vehicle_model"       validate:"required"`
	DeliveryLocation   string          `json:"delivery_location"`
	DeliveryAt         time.Time       `json:"delivery_at"`
	CollectionLocation string          `json:"collection_location"`
	CollectionAt       time.Time       `json:"collection_at"`
	RentalPrice        decimal.Decimal `json:"rental_price"`
	SecurityDeposit    decimal.Decimal `json:"security_deposit"`
	Currency           string          `json:"currency"            validate:"omitempty,len=3"`
	Overrides          map[string]any  `json:"overrides"`
}

func (r *CMSBookingRequest) ToPayload() payload.CMSBooking {
	return payload.CMSBooking{
		ReferenceCode:      r.ReferenceCode,
		ClientName:         r.ClientName,
		ClientEmail:        r.ClientEmail,
		ClientPhone:        r.ClientPhone,
		VehicleMake:        r.VehicleMake,
		VehicleModel:       r.VehicleModel,
		DeliveryLocation:   r.DeliveryLocation,
		DeliveryAt:         r.DeliveryAt,
		CollectionLocation: r.CollectionLocation,
		CollectionAt:       r.CollectionAt,
		RentalPrice:        r.RentalPrice,
		SecurityDeposit:    r.SecurityDeposit,
		Currency:           r.Currency,
	}
}

type PaymentEventRequest struct {
	Event         string          `json:"event"          validate:"required,oneof=succeeded failed expired"`
	SessionID     string          `json:"session_id"`
	TransactionID string          `json:"transaction_id"`
	BookingID     string          `json:"booking_id"`
	PaymentID     string          `json:"payment_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"       validate:"omitempty,len=3"`
	Overrides     map[string]any  `json:"overrides"`
}

func (r *PaymentEventRequest) ToPayload() payload.PaymentEvent {
	return payload.PaymentEvent{
		Event:         r.Event,
		SessionID:     r.SessionID,
		TransactionID: r.TransactionID,
		BookingID:     r.BookingID,
		PaymentID:     r.PaymentID,
		Amount:        r.Amount,
		Currency:      r.Currency,
	}
}

// InvokeResponse echoes what was sent and the function's answer, untouched.
type InvokeResponse struct {
	Function string          `json:"function"`
	Payload  map[string]any  `json:"payload"`
	Status   int             `json:"status"`
	Body     json.RawMessage `json:"body"`
}

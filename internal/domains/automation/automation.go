// Package automation builds the flat payload the email automation platform
// receives after a payment is confirmed.
package automation

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	bookingModel "rentdesk/internal/domains/booking/model"
	paymentModel "rentdesk/internal/domains/payment/model"
	"rentdesk/shared/money"
	"time"
)

const dateFormat = "02.01.2006 15:04"

//go:embed templates/payment_confirmed.html
var paymentConfirmedHTML string

var paymentConfirmed = template.Must(template.New("payment_confirmed").Parse(paymentConfirmedHTML))

type BookingDetails struct {
	Vehicle            string `json:"vehicle"`
	DeliveryLocation   string `json:"delivery_location"`
	DeliveryAt         string `json:"delivery_at"`
	CollectionLocation string `json:"collection_location"`
	CollectionAt       string `json:"collection_at"`
	AmountTotal        string `json:"amount_total"`
	Status             string `json:"status"`
}

type PaymentDetails struct {
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Method        string `json:"method"`
	Intent        string `json:"payment_intent"`
	PaidAt        string `json:"paid_at"`
	TransactionID string `json:"transaction_id,omitempty"`
}

type Payload struct {
	ClientEmail            string         `json:"client_email"`
	ClientName             string         `json:"client_name"`
	EmailSubject           string         `json:"email_subject"`
	EmailHTML              string         `json:"email_html"`
	PaymentReceiptURL      string         `json:"payment_receipt_url"`
	BookingConfirmationURL string         `json:"booking_confirmation_url"`
	BookingReference       string         `json:"booking_reference"`
	BookingDetails         BookingDetails `json:"booking_details"`
	PaymentDetails         PaymentDetails `json:"payment_details"`
	Timestamp              time.Time      `json:"timestamp"`
}

type Input struct {
	Booking         bookingModel.Booking
	Payment         paymentModel.Payment
	ConfirmationURL string
	Now             time.Time
}

// Build assembles the payload. The receipt URL is the provider link the client paid through, if any.
func Build(in Input) (Payload, error) {
	b, p := in.Booking, in.Payment

	payload := Payload{
		ClientEmail:            b.ClientEmail,
		ClientName:             b.ClientName,
		EmailSubject:           fmt.Sprintf("Payment received for booking %s", b.ReferenceCode),
		BookingConfirmationURL: in.ConfirmationURL,
		BookingReference:       b.ReferenceCode,
		BookingDetails: BookingDetails{
			Vehicle:            b.VehicleMake + " " + b.VehicleModel,
			DeliveryLocation:   b.DeliveryLocation,
			DeliveryAt:         b.DeliveryAt.Format(dateFormat),
			CollectionLocation: b.CollectionLocation,
			CollectionAt:       b.CollectionAt.Format(dateFormat),
			AmountTotal:        money.FormatWith(b.Currency, b.AmountTotal),
			Status:             b.Status,
		},
		PaymentDetails: PaymentDetails{
			Amount:   money.FormatWith(p.Currency, p.Amount),
			Currency: p.Currency,
			Method:   p.Method,
			Intent:   p.Intent,
		},
		Timestamp: in.Now,
	}

	if p.LinkURL != nil {
		payload.PaymentReceiptURL = *p.LinkURL
	}

	if p.PaidAt != nil {
		payload.PaymentDetails.PaidAt = p.PaidAt.Format(dateFormat)
	}

	if p.TransactionID != nil {
		payload.PaymentDetails.TransactionID = *p.TransactionID
	}

	var body bytes.Buffer
	if err := paymentConfirmed.Execute(&body, payload); err != nil {
		return payload, fmt.Errorf("failed to render automation email: %w", err)
	}

	payload.EmailHTML = body.String()

	return payload, nil
}

package dto

import (
	"rentdesk/internal/domains/payment/model"
	"rentdesk/shared/hook"
	gModel "rentdesk/shared/model"
	"rentdesk/shared/money"
	"rentdesk/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultLinkExpiryHours = 72
	maxLinkExpiryHours     = 720
)

// RecordPaymentRequest stores a payment taken outside the provider, for example cash at delivery.
type RecordPaymentRequest struct {
	BookingID     string          `json:"booking_id"     validate:"required"`
	FineID        *string         `json:"fine_id"`
	Amount        decimal.Decimal `json:"amount"         validate:"gt=0"`
	Currency      string          `json:"currency"       validate:"omitempty,iso4217"`
	Method        string          `json:"method"         validate:"required,oneof=card bank_transfer cash twint other"`
	Intent        string          `json:"payment_intent" validate:"required,oneof=down_payment balance_payment security_deposit fines extras other"`
	Paid          bool            `json:"paid"`
	TransactionID *string         `json:"transaction_id"`
}

func (r *RecordPaymentRequest) ToModel(user, currency string) model.Payment {
	now := timezone.Now()

	if r.Currency != "" {
		currency = strings.ToUpper(r.Currency)
	}

	payment := model.Payment{
		ID:            uuid.NewString(),
		BookingID:     r.BookingID,
		FineID:        r.FineID,
		Amount:        money.Round2(r.Amount),
		Currency:      currency,
		Method:        r.Method,
		Intent:        r.Intent,
		Status:        model.StatusPending,
		TransactionID: r.TransactionID,
		Metadata:      gModel.NewMetadata(now, user),
	}

	if r.Paid {
		payment.Status = model.StatusPaid
		payment.PaidAt = &now
	}

	return payment
}

// GenerateLinkRequest asks the provider for a hosted checkout link.
type GenerateLinkRequest struct {
	BookingID   string          `json:"booking_id"     validate:"required"`
	FineID      *string         `json:"fine_id"`
	Amount      decimal.Decimal `json:"amount"         validate:"gt=0"`
	Intent      string          `json:"payment_intent" validate:"required,oneof=down_payment balance_payment security_deposit fines extras other"`
	Method      string          `json:"method"         validate:"omitempty,oneof=card bank_transfer twint"`
	ExpiryHours int             `json:"expiry_hours"   validate:"omitempty,min=1,max=720"`
	Description string          `json:"description"    validate:"omitempty,max=255"`
	SendEmail   bool            `json:"send_email"`
}

// LinkPayload is the body sent to the payment-link function.
type LinkPayload struct {
	BookingID   string          `json:"booking_id"`
	PaymentID   string          `json:"payment_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Intent      string          `json:"payment_intent"`
	Method      string          `json:"method"`
	ExpiryHours int             `json:"expiry_hours"`
	Description string          `json:"description,omitempty"`
	SendEmail   bool            `json:"send_email"`
}

func (g *GenerateLinkRequest) ToPayload(paymentID, currency string) LinkPayload {
	hours := g.ExpiryHours
	if hours <= 0 {
		hours = DefaultLinkExpiryHours
	}

	hours = min(hours, maxLinkExpiryHours)

	method := g.Method
	if method == "" {
		method = model.MethodCard
	}

	return LinkPayload{
		BookingID:   g.BookingID,
		PaymentID:   paymentID,
		Amount:      money.Round2(g.Amount),
		Currency:    currency,
		Intent:      g.Intent,
		Method:      method,
		ExpiryHours: hours,
		Description: g.Description,
		SendEmail:   g.SendEmail,
	}
}

// LinkResult is what the payment-link function answers.
type LinkResult struct {
	LinkID  string `json:"link_id"`
	LinkURL string `json:"link_url"`
}

func (g *GenerateLinkRequest) ToModel(paymentID, currency, user string, link LinkResult) model.Payment {
	payload := g.ToPayload(paymentID, currency)

	return model.Payment{
		ID:        paymentID,
		BookingID: g.BookingID,
		FineID:    g.FineID,
		Amount:    payload.Amount,
		Currency:  currency,
		Method:    payload.Method,
		Intent:    g.Intent,
		Status:    model.StatusPending,
		LinkID:    &link.LinkID,
		LinkURL:   &link.LinkURL,
		Metadata:  gModel.NewMetadata(timezone.Now(), user),
	}
}

type PaymentResponse struct {
	ID            string          `json:"id"`
	BookingID     string          `json:"booking_id"`
	FineID        *string         `json:"fine_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Method        string          `json:"method"`
	Intent        string          `json:"payment_intent"`
	Status        string          `json:"status"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	TransactionID *string         `json:"transaction_id,omitempty"`
	LinkURL       *string         `json:"link_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (r *PaymentResponse) FromModel(m model.Payment) {
	r.ID = m.ID
	r.BookingID = m.BookingID
	r.FineID = m.FineID
	r.Amount = m.Amount
	r.Currency = m.Currency
	r.Method = m.Method
	r.Intent = m.Intent
	r.Status = m.Status
	r.PaidAt = m.PaidAt
	r.TransactionID = m.TransactionID
	r.LinkURL = m.LinkURL
	r.CreatedAt = m.CreatedAt
}

type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

func (r *ListPaymentsResponse) FromModels(models []model.Payment) {
	r.Payments = make([]PaymentResponse, len(models))
	for i, m := range models {
		r.Payments[i].FromModel(m)
	}
}

type CreatePaymentResponse struct {
	ID string `json:"id"`
}

type GenerateLinkResponse struct {
	ID      string `json:"id"`
	LinkID  string `json:"link_id"`
	LinkURL string `json:"link_url"`
}

type ConfirmResponse struct {
	ID       string         `json:"id"`
	Status   string         `json:"status"`
	PaidAt   time.Time      `json:"paid_at"`
	Warnings []hook.Failure `json:"warnings,omitempty"`
}

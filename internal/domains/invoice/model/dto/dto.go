package dto

import (
	"rentdesk/internal/domains/invoice/model"
	gModel "rentdesk/shared/model"
	"rentdesk/shared/money"
	"rentdesk/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateClientInvoiceRequest struct {
	BookingID     string          `json:"booking_id"     validate:"required"`
	InvoiceNumber string          `json:"invoice_number" validate:"required,max=50"`
	Subtotal      decimal.Decimal `json:"subtotal"       validate:"gte=0"`
	VATRate       decimal.Decimal `json:"vat_rate"       validate:"gte=0,lte=100"`
	PaymentStatus string          `json:"payment_status" validate:"omitempty,oneof=unpaid partial paid"`
	IssuedAt      *time.Time      `json:"issued_at"`
	DueAt         *time.Time      `json:"due_at"`
}

func (c *CreateClientInvoiceRequest) ToModel(user string) model.ClientInvoice {
	now := timezone.Now()

	issuedAt := now
	if c.IssuedAt != nil {
		issuedAt = *c.IssuedAt
	}

	status := model.PaymentStatusUnpaid
	if c.PaymentStatus != "" {
		status = c.PaymentStatus
	}

	return model.ClientInvoice{
		ID:            uuid.NewString(),
		BookingID:     c.BookingID,
		InvoiceNumber: c.InvoiceNumber,
		Subtotal:      money.Round2(c.Subtotal),
		VATRate:       c.VATRate,
		TotalAmount:   money.WithVAT(c.Subtotal, c.VATRate),
		PaymentStatus: status,
		IssuedAt:      issuedAt,
		DueAt:         c.DueAt,
		Metadata:      gModel.NewMetadata(now, user),
	}
}

// EditClientInvoiceRequest changes only the sent fields. total_amount is always
// recomputed from the resulting subtotal and VAT rate.
type EditClientInvoiceRequest struct {
	InvoiceNumber string           `json:"invoice_number" validate:"omitempty,max=50"`
	Subtotal      *decimal.Decimal `json:"subtotal"       validate:"omitempty,gte=0"`
	VATRate       *decimal.Decimal `json:"vat_rate"       validate:"omitempty,gte=0,lte=100"`
	PaymentStatus string           `json:"payment_status" validate:"omitempty,oneof=unpaid partial paid"`
	DueAt         *time.Time       `json:"due_at"`
}

func (e EditClientInvoiceRequest) IsEmpty() bool {
	return e == (EditClientInvoiceRequest{})
}

// Apply merges the edit into current and returns the columns to write.
func (e EditClientInvoiceRequest) Apply(current model.ClientInvoice) (model.ClientInvoice, map[string]any) {
	fields := map[string]any{}

	if e.InvoiceNumber != "" {
		current.InvoiceNumber = e.InvoiceNumber
		fields["invoice_number"] = e.InvoiceNumber
	}

	if e.PaymentStatus != "" {
		current.PaymentStatus = e.PaymentStatus
		fields["payment_status"] = e.PaymentStatus
	}

	if e.DueAt != nil {
		current.DueAt = e.DueAt
		fields["due_at"] = *e.DueAt
	}

	if e.Subtotal != nil {
		current.Subtotal = money.Round2(*e.Subtotal)
	}

	if e.VATRate != nil {
		current.VATRate = *e.VATRate
	}

	current.TotalAmount = money.WithVAT(current.Subtotal, current.VATRate)

	fields["subtotal"] = current.Subtotal
	fields["vat_rate"] = current.VATRate
	fields["total_amount"] = current.TotalAmount

	return current, fields
}

type CreateSupplierInvoiceRequest struct {
	BookingID     string          `json:"booking_id"     validate:"required"`
	InvoiceNumber string          `json:"invoice_number" validate:"required,max=50"`
	InvoiceType   string          `json:"invoice_type"   validate:"required,oneof=rental deposit_extra other"`
	Amount        decimal.Decimal `json:"amount"         validate:"gte=0"`
	PaymentStatus string          `json:"payment_status" validate:"omitempty,oneof=unpaid partial paid"`
}

func (c *CreateSupplierInvoiceRequest) ToModel(user string) model.SupplierInvoice {
	status := model.PaymentStatusUnpaid
	if c.PaymentStatus != "" {
		status = c.PaymentStatus
	}

	return model.SupplierInvoice{
		ID:            uuid.NewString(),
		BookingID:     c.BookingID,
		InvoiceNumber: c.InvoiceNumber,
		InvoiceType:   c.InvoiceType,
		Amount:        money.Round2(c.Amount),
		PaymentStatus: status,
		Metadata:      gModel.NewMetadata(timezone.Now(), user),
	}
}

type EditSupplierInvoiceRequest struct {
	InvoiceNumber string           `json:"invoice_number" validate:"omitempty,max=50"`
	InvoiceType   string           `json:"invoice_type"   validate:"omitempty,oneof=rental deposit_extra other"`
	Amount        *decimal.Decimal `json:"amount"         validate:"omitempty,gte=0"`
	PaymentStatus string           `json:"payment_status" validate:"omitempty,oneof=unpaid partial paid"`
}

func (e EditSupplierInvoiceRequest) IsEmpty() bool {
	return e.InvoiceNumber == "" && e.InvoiceType == "" && e.PaymentStatus == "" && e.Amount == nil
}

// Fields returns the columns the edit touches. An explicit zero amount is kept.
func (e EditSupplierInvoiceRequest) Fields() map[string]any {
	fields := make(map[string]any)

	if e.InvoiceNumber != "" {
		fields["invoice_number"] = e.InvoiceNumber
	}

	if e.InvoiceType != "" {
		fields["invoice_type"] = e.InvoiceType
	}

	if e.Amount != nil {
		fields["amount"] = money.Round2(*e.Amount)
	}

	if e.PaymentStatus != "" {
		fields["payment_status"] = e.PaymentStatus
	}

	return fields
}

type ClientInvoiceResponse struct {
	ID            string          `json:"id"`
	BookingID     string          `json:"booking_id"`
	InvoiceNumber string          `json:"invoice_number"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	VATRate       decimal.Decimal `json:"vat_rate"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentStatus string          `json:"payment_status"`
	IssuedAt      time.Time       `json:"issued_at"`
	DueAt         *time.Time      `json:"due_at,omitempty"`
}

func (r *ClientInvoiceResponse) FromModel(m model.ClientInvoice) {
	r.ID = m.ID
	r.BookingID = m.BookingID
	r.InvoiceNumber = m.InvoiceNumber
	r.Subtotal = m.Subtotal
	r.VATRate = m.VATRate
	r.TotalAmount = m.TotalAmount
	r.PaymentStatus = m.PaymentStatus
	r.IssuedAt = m.IssuedAt
	r.DueAt = m.DueAt
}

type SupplierInvoiceResponse struct {
	ID            string          `json:"id"`
	BookingID     string          `json:"booking_id"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceType   string          `json:"invoice_type"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus string          `json:"payment_status"`
}

func (r *SupplierInvoiceResponse) FromModel(m model.SupplierInvoice) {
	r.ID = m.ID
	r.BookingID = m.BookingID
	r.InvoiceNumber = m.InvoiceNumber
	r.InvoiceType = m.InvoiceType
	r.Amount = m.Amount
	r.PaymentStatus = m.PaymentStatus
}

type ListInvoicesResponse struct {
	ClientInvoices   []ClientInvoiceResponse   `json:"client_invoices"`
	SupplierInvoices []SupplierInvoiceResponse `json:"supplier_invoices"`
}

func (r *ListInvoicesResponse) FromModels(clients []model.ClientInvoice, suppliers []model.SupplierInvoice) {
	r.ClientInvoices = make([]ClientInvoiceResponse, len(clients))
	for i, c := range clients {
		r.ClientInvoices[i].FromModel(c)
	}

	r.SupplierInvoices = make([]SupplierInvoiceResponse, len(suppliers))
	for i, s := range suppliers {
		r.SupplierInvoices[i].FromModel(s)
	}
}

type CreateInvoiceResponse struct {
	ID string `json:"id"`
}

package dto

import (
	"mime/multipart"
	"rentdesk/internal/domains/fine/model"
	"rentdesk/shared/hook"
	gModel "rentdesk/shared/model"
	"rentdesk/shared/money"
	"rentdesk/shared/timezone"
	"time"

	"github.com/shopspring/decimal"
)

type UploadFineRequest struct {
	BookingID    string                `json:"booking_id"  validate:"required"`
	Document     *multipart.FileHeader `json:"document"    swaggerignore:"true" validate:"required,mimetypes=image/png image/jpeg application/pdf,maxfilesize=10"`
	DocumentFile multipart.File        `json:"-"`
	Amount       *decimal.Decimal      `json:"amount"      validate:"omitempty,gt=0"`
	IssuedAt     *time.Time            `json:"issued_at"`
	Description  string                `json:"description" validate:"omitempty,max=500"`
}

func (u *UploadFineRequest) ToModel(id, user, documentURL string, amount decimal.Decimal) model.Fine {
	now := timezone.Now()

	issuedAt := now
	if u.IssuedAt != nil {
		issuedAt = *u.IssuedAt
	}

	fine := model.Fine{
		ID:            id,
		BookingID:     u.BookingID,
		Amount:        money.Round2(amount),
		IssuedAt:      issuedAt,
		PaymentStatus: model.PaymentStatusUnpaid,
		DocumentURL:   &documentURL,
		Metadata:      gModel.NewMetadata(now, user),
	}

	if u.Description != "" {
		fine.Description = &u.Description
	}

	return fine
}

// UploadCheck is sent to the upload validation function before anything is stored.
type UploadCheck struct {
	BookingID   string `json:"booking_id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	SHA256      string `json:"sha256"`
}

type UploadVerdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

type AmountRequest struct {
	DocumentURL string `json:"document_url"`
	ContentType string `json:"content_type"`
}

type AmountResult struct {
	Amount   *decimal.Decimal `json:"amount"`
	Currency string           `json:"currency"`
}

type FineResponse struct {
	ID            string          `json:"id"`
	BookingID     string          `json:"booking_id"`
	Amount        decimal.Decimal `json:"amount"`
	IssuedAt      time.Time       `json:"issued_at"`
	PaymentStatus string          `json:"payment_status"`
	DocumentURL   *string         `json:"document_url,omitempty"`
	Description   *string         `json:"description,omitempty"`
}

func (r *FineResponse) FromModel(m model.Fine) {
	r.ID = m.ID
	r.BookingID = m.BookingID
	r.Amount = m.Amount
	r.IssuedAt = m.IssuedAt
	r.PaymentStatus = m.PaymentStatus
	r.DocumentURL = m.DocumentURL
	r.Description = m.Description
}

type ListFinesResponse struct {
	Fines []FineResponse `json:"fines"`
}

func (r *ListFinesResponse) FromModels(models []model.Fine) {
	r.Fines = make([]FineResponse, len(models))
	for i, m := range models {
		r.Fines[i].FromModel(m)
	}
}

type UploadFineResponse struct {
	FineResponse
	AmountExtracted bool           `json:"amount_extracted"`
	Warnings        []hook.Failure `json:"warnings,omitempty"`
}

// Package document turns bookings and invoices into printable layouts.
//
// Every renderer is a pure function of its input: the same record and settings
// always yield the same Document, and therefore the same Encode and PDF bytes.
package document

import (
	"encoding/json"
	"fmt"
	"rentdesk/shared/duration"
	"time"

	"github.com/shopspring/decimal"
)

const (
	VariantAdmin    = "admin"
	VariantSupplier = "supplier"
	VariantClient   = "client"
	VariantProforma = "proforma"
)

const (
	PageA4     = "A4"
	PageLetter = "LETTER"
)

// Settings carries the optional company branding printed in headers and footers.
type Settings struct {
	CompanyName    string `json:"company_name,omitempty"`
	Address        string `json:"address,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Website        string `json:"website,omitempty"`
	Logo           []byte `json:"logo,omitempty"`
	ToleranceHours int    `json:"tolerance_hours"`
}

// tolerance is zero when configured so; only missing settings fall back.
func (s *Settings) tolerance() int {
	if s == nil {
		return duration.DefaultToleranceHours
	}

	return s.ToleranceHours
}

// Figures are derived booking totals an admin copy may print. Nil fields are left out.
type Figures struct {
	ActualAmountPaid *decimal.Decimal
	NetCommission    *decimal.Decimal
	DepositMargin    *decimal.Decimal
}

type Margins struct {
	Top   float64 `json:"top"`
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

type Header struct {
	Logo         []byte   `json:"logo,omitempty"`
	CompanyLines []string `json:"company_lines,omitempty"`
	Title        string   `json:"title"`
	Badge        string   `json:"badge"`
}

type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section is one titled block of the two-column info grid.
type Section struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

type Summary struct {
	Title string `json:"title"`
	Lines []Row  `json:"lines"`
	Total Row    `json:"total"`
}

type Signature struct {
	Image    []byte `json:"image"`
	Format   string `json:"format"`
	SignedAt string `json:"signed_at,omitempty"`
}

type Document struct {
	Variant   string     `json:"variant"`
	FileName  string     `json:"file_name"`
	PageSize  string     `json:"page_size"`
	Margins   Margins    `json:"margins"`
	Header    Header     `json:"header"`
	Sections  []Section  `json:"sections"`
	Summary   *Summary   `json:"summary,omitempty"`
	Signature *Signature `json:"signature,omitempty"`
	Footer    []string   `json:"footer,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Encode serializes the layout. The output is stable for equal documents.
func Encode(doc Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	return data, nil
}

// BookingFileName names a booking copy, e.g. client-booking-RD-1001.pdf.
func BookingFileName(variant, referenceCode string) string {
	return fmt.Sprintf("%s-booking-%s.pdf", variant, referenceCode)
}

func InvoiceFileName(invoiceNumber string) string {
	return invoiceNumber + ".pdf"
}

// section drops rows with empty values and the whole section when nothing is left.
func section(title string, rows ...Row) []Section {
	kept := make([]Row, 0, len(rows))

	for _, row := range rows {
		if row.Value != "" {
			kept = append(kept, row)
		}
	}

	if len(kept) == 0 {
		return nil
	}

	return []Section{{Title: title, Rows: kept}}
}

func header(s *Settings, title, badge string) Header {
	h := Header{Title: title, Badge: badge}

	if s == nil {
		return h
	}

	h.Logo = s.Logo

	for _, line := range []string{s.CompanyName, s.Address, s.Email, s.Phone} {
		if line != "" {
			h.CompanyLines = append(h.CompanyLines, line)
		}
	}

	return h
}

func footer(s *Settings, note string) []string {
	lines := []string{note}

	if s == nil {
		return lines
	}

	contact := ""

	for _, part := range []string{s.CompanyName, s.Website, s.Email} {
		if part == "" {
			continue
		}

		if contact != "" {
			contact += " | "
		}

		contact += part
	}

	if contact != "" {
		lines = append(lines, contact)
	}

	return lines
}

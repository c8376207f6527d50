package model

import "github.com/shopspring/decimal"

const (
	SummaryTableName  = "booking_financial_summaries"
	SummaryEntityName = "booking_financial_summary"

	FieldSummaryBookingID = "booking_id"
)

// FinancialSummary is a database view. Its amount_paid mirrors the stored booking
// field and is shown as a hint only.
type FinancialSummary struct {
	BookingID        string          `db:"booking_id"        json:"booking_id"`
	AmountTotal      decimal.Decimal `db:"amount_total"      json:"amount_total"`
	AmountPaid       decimal.Decimal `db:"amount_paid"       json:"amount_paid"`
	ClientInvoiced   decimal.Decimal `db:"client_invoiced"   json:"client_invoiced"`
	SupplierInvoiced decimal.Decimal `db:"supplier_invoiced" json:"supplier_invoiced"`
}

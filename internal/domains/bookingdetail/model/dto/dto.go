package dto

import (
	accessDto "rentdesk/internal/domains/accesstoken/model/dto"
	bookingModel "rentdesk/internal/domains/booking/model"
	bookingDto "rentdesk/internal/domains/booking/model/dto"
	depositModel "rentdesk/internal/domains/deposit/model"
	expenseModel "rentdesk/internal/domains/expense/model"
	fineDto "rentdesk/internal/domains/fine/model/dto"
	invoiceDto "rentdesk/internal/domains/invoice/model/dto"
	paymentDto "rentdesk/internal/domains/payment/model/dto"
	"rentdesk/shared/duration"

	"github.com/shopspring/decimal"
)

// Figures are recomputed on every read from the loaded collections.
type Figures struct {
	ActualAmountPaid decimal.Decimal  `json:"actual_amount_paid"`
	StoredAmountPaid decimal.Decimal  `json:"stored_amount_paid"`
	BalanceDue       decimal.Decimal  `json:"balance_due"`
	PaymentProgress  decimal.Decimal  `json:"payment_progress"`
	BaseCommission   decimal.Decimal  `json:"base_commission"`
	DepositMargin    decimal.Decimal  `json:"deposit_margin"`
	NetCommission    decimal.Decimal  `json:"net_commission"`
	Duration         duration.Summary `json:"duration"`
}

type DetailResponse struct {
	Booking          *bookingDto.BookingResponse          `json:"booking"`
	Summary          *bookingModel.FinancialSummary       `json:"financial_summary,omitempty"`
	Payments         []paymentDto.PaymentResponse         `json:"payments"`
	Fines            []fineDto.FineResponse               `json:"fines"`
	SupplierInvoices []invoiceDto.SupplierInvoiceResponse `json:"supplier_invoices"`
	ClientInvoices   []invoiceDto.ClientInvoiceResponse   `json:"client_invoices"`
	Expenses         []expenseModel.Expense               `json:"expenses"`
	Deposit          *depositModel.Authorization          `json:"deposit_authorization,omitempty"`
	AccessToken      *accessDto.AccessTokenResponse       `json:"access_token,omitempty"`
	Figures          *Figures                             `json:"figures,omitempty"`
	// Errors maps a query name to the reason it failed; its collection is shown empty.
	Errors map[string]string `json:"errors,omitempty"`
}

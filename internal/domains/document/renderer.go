package document

import (
	"fmt"
	bookingModel "rentdesk/internal/domains/booking/model"
	"rentdesk/internal/domains/bookingdetail/derive"
	invoiceModel "rentdesk/internal/domains/invoice/model"
	paymentModel "rentdesk/internal/domains/payment/model"
	"rentdesk/shared/base64"
	"rentdesk/shared/duration"
	"rentdesk/shared/money"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const displayTime = "02.01.2006 15:04"

const displayDate = "02.01.2006"

var intentLabels = map[string]string{
	paymentModel.IntentDownPayment:     "Down payment",
	paymentModel.IntentBalancePayment:  "Balance payment",
	paymentModel.IntentSecurityDeposit: "Security deposit",
	paymentModel.IntentFines:           "Fines",
	paymentModel.IntentExtras:          "Extras",
	paymentModel.IntentOther:           "Other",
}

// AdminCopy shows every figure of a booking, including supplier price and commission.
func AdminCopy(b bookingModel.Booking, fig *Figures, s *Settings) Document {
	format := formatter(b.Currency)

	lines := []Row{
		{Label: "Rental price", Value: format(b.RentalPriceGross)},
		{Label: "VAT (" + percent(b.VATRate) + ")", Value: format(derive.VATAmount(b.RentalPriceGross, b.VATRate))},
		{Label: "Supplier price", Value: format(b.SupplierPrice)},
		{Label: "Security deposit", Value: nonZero(format, b.SecurityDeposit)},
		{Label: "Extra deduction", Value: nonZero(format, b.ExtraDeduction)},
		{Label: "Base commission", Value: format(derive.BaseCommission(b))},
	}

	if fig != nil {
		lines = append(lines,
			Row{Label: "Deposit margin", Value: optionalAmount(format, fig.DepositMargin)},
			Row{Label: "Net commission", Value: optionalAmount(format, fig.NetCommission)},
			Row{Label: "Amount paid", Value: optionalAmount(format, fig.ActualAmountPaid)},
		)
	}

	sections := bookingSection(b)
	sections = append(sections, clientSection(b, true)...)
	sections = append(sections, vehicleSection(b)...)
	sections = append(sections, periodSection(b, s)...)
	sections = append(sections, section("Supplier",
		Row{Label: "Name", Value: optional(b.SupplierName)},
		Row{Label: "Email", Value: optional(b.SupplierEmail)},
	)...)
	sections = append(sections, section("Notes", Row{Label: "Internal", Value: optional(b.Notes)})...)

	return Document{
		Variant:   VariantAdmin,
		FileName:  BookingFileName(VariantAdmin, b.ReferenceCode),
		PageSize:  PageA4,
		Margins:   Margins{Top: 10, Left: 10, Right: 10},
		Header:    header(s, "Booking "+b.ReferenceCode, "ADMIN COPY"),
		Sections:  sections,
		Summary:   &Summary{Title: "Financial summary", Lines: compact(lines), Total: Row{Label: "Amount total", Value: format(b.AmountTotal)}},
		Signature: signature(b),
		Footer:    footer(s, "Internal document. Do not forward to the client or the supplier."),
		CreatedAt: stamp(b),
	}
}

// SupplierCopy leaves out the client price and VAT.
func SupplierCopy(b bookingModel.Booking, s *Settings) Document {
	format := formatter(b.Currency)

	driver := b.ClientName
	if b.GuestName != nil && *b.GuestName != "" {
		driver = *b.GuestName
	}

	sections := bookingSection(b)
	sections = append(sections, section("Driver", Row{Label: "Name", Value: driver})...)
	sections = append(sections, vehicleSection(b)...)
	sections = append(sections, periodSection(b, s)...)

	lines := []Row{
		{Label: "Supplier price", Value: format(b.SupplierPrice)},
		{Label: "Security deposit", Value: nonZero(format, b.SecurityDeposit)},
		{Label: "Commission", Value: format(derive.BaseCommission(b))},
	}

	return Document{
		Variant:   VariantSupplier,
		FileName:  BookingFileName(VariantSupplier, b.ReferenceCode),
		PageSize:  PageA4,
		Margins:   Margins{Top: 15, Left: 15, Right: 15},
		Header:    header(s, "Booking "+b.ReferenceCode, "SUPPLIER COPY"),
		Sections:  sections,
		Summary:   &Summary{Title: "Supplier statement", Lines: compact(lines), Total: Row{Label: "Payable to supplier", Value: format(b.SupplierPrice)}},
		Footer:    footer(s, "Please confirm vehicle availability for the period above."),
		CreatedAt: stamp(b),
	}
}

// ClientCopy never shows supplier price or commission.
func ClientCopy(b bookingModel.Booking, payments []paymentModel.Payment, s *Settings) Document {
	format := formatter(b.Currency)
	paid := derive.ActualAmountPaid(b, payments)

	sections := bookingSection(b)
	sections = append(sections, clientSection(b, false)...)
	sections = append(sections, vehicleSection(b)...)
	sections = append(sections, periodSection(b, s)...)

	received := make([]Row, 0, len(payments))

	for _, p := range payments {
		if p.Status != paymentModel.StatusPaid || p.PaidAt == nil {
			continue
		}

		received = append(received, Row{
			Label: fmt.Sprintf("%s, %s", intentLabel(p.Intent), p.PaidAt.Format(displayDate)),
			Value: money.FormatWith(p.Currency, p.Amount),
		})
	}

	sections = append(sections, section("Payments received", received...)...)

	lines := []Row{
		{Label: "Rental price", Value: format(b.RentalPriceGross)},
		{Label: "VAT (" + percent(b.VATRate) + ")", Value: format(derive.VATAmount(b.RentalPriceGross, b.VATRate))},
		{Label: "Amount total", Value: format(b.AmountTotal)},
		{Label: "Amount paid", Value: format(paid)},
		{Label: "Security deposit (held separately)", Value: nonZero(format, b.SecurityDeposit)},
	}

	return Document{
		Variant:   VariantClient,
		FileName:  BookingFileName(VariantClient, b.ReferenceCode),
		PageSize:  PageA4,
		Margins:   Margins{Top: 20, Left: 15, Right: 15},
		Header:    header(s, "Booking "+b.ReferenceCode, "BOOKING CONFIRMATION"),
		Sections:  sections,
		Summary:   &Summary{Title: "Payment summary", Lines: compact(lines), Total: Row{Label: "Balance due", Value: format(derive.BalanceDue(b.AmountTotal, paid))}},
		Signature: signature(b),
		Footer:    footer(s, "Thank you for your booking."),
		CreatedAt: stamp(b),
	}
}

func Proforma(inv invoiceModel.ClientInvoice, b bookingModel.Booking, s *Settings) Document {
	format := formatter(b.Currency)

	sections := section("Invoice",
		Row{Label: "Number", Value: inv.InvoiceNumber},
		Row{Label: "Issued", Value: inv.IssuedAt.Format(displayDate)},
		Row{Label: "Due", Value: optionalDate(inv.DueAt)},
		Row{Label: "Status", Value: inv.PaymentStatus},
	)
	sections = append(sections, section("Bill to",
		Row{Label: "Name", Value: b.ClientName},
		Row{Label: "Email", Value: b.ClientEmail},
		Row{Label: "Phone", Value: optional(b.ClientPhone)},
	)...)
	sections = append(sections, section("Rental",
		Row{Label: "Booking", Value: b.ReferenceCode},
		Row{Label: "Vehicle", Value: strings.TrimSpace(b.VehicleMake + " " + b.VehicleModel)},
		Row{Label: "Period", Value: b.DeliveryAt.Format(displayDate) + " - " + b.CollectionAt.Format(displayDate)},
		Row{Label: "Duration", Value: duration.Describe(b.DeliveryAt, b.CollectionAt, s.tolerance()).Total},
	)...)

	lines := []Row{
		{Label: "Subtotal", Value: format(inv.Subtotal)},
		{Label: "VAT (" + percent(inv.VATRate) + ")", Value: format(inv.TotalAmount.Sub(inv.Subtotal))},
	}

	return Document{
		Variant:   VariantProforma,
		FileName:  InvoiceFileName(inv.InvoiceNumber),
		PageSize:  PageLetter,
		Margins:   Margins{Top: 20, Left: 20, Right: 20},
		Header:    header(s, "Proforma invoice "+inv.InvoiceNumber, "PROFORMA"),
		Sections:  sections,
		Summary:   &Summary{Title: "Amount", Lines: lines, Total: Row{Label: "Total", Value: format(inv.TotalAmount)}},
		Footer:    footer(s, "This proforma invoice is not a receipt of payment."),
		CreatedAt: inv.IssuedAt,
	}
}

func bookingSection(b bookingModel.Booking) []Section {
	return section("Booking",
		Row{Label: "Reference", Value: b.ReferenceCode},
		Row{Label: "Status", Value: b.Status},
		Row{Label: "Booked", Value: formatTime(b.CreatedAt)},
	)
}

func clientSection(b bookingModel.Booking, withSource bool) []Section {
	source := ""
	if withSource {
		source = b.Source
	}

	return section("Client",
		Row{Label: "Name", Value: b.ClientName},
		Row{Label: "Email", Value: b.ClientEmail},
		Row{Label: "Phone", Value: optional(b.ClientPhone)},
		Row{Label: "Guest", Value: optional(b.GuestName)},
		Row{Label: "Source", Value: source},
	)
}

func vehicleSection(b bookingModel.Booking) []Section {
	return section("Vehicle",
		Row{Label: "Model", Value: strings.TrimSpace(b.VehicleMake + " " + b.VehicleModel)},
		Row{Label: "Plate", Value: optional(b.VehiclePlate)},
	)
}

func periodSection(b bookingModel.Booking, s *Settings) []Section {
	summary := duration.Describe(b.DeliveryAt, b.CollectionAt, s.tolerance())

	return section("Rental period",
		Row{Label: "Delivery", Value: strings.TrimSpace(formatTime(b.DeliveryAt) + " " + b.DeliveryLocation)},
		Row{Label: "Collection", Value: strings.TrimSpace(formatTime(b.CollectionAt) + " " + b.CollectionLocation)},
		Row{Label: "Rental days", Value: summary.Total},
		Row{Label: "Duration", Value: summary.Precise},
	)
}

func signature(b bookingModel.Booking) *Signature {
	if b.TermsSignature == nil {
		return nil
	}

	data, contentType, err := base64.Decode(*b.TermsSignature)
	if err != nil || len(data) == 0 {
		return nil
	}

	format := strings.TrimPrefix(contentType, "image/")
	if format != "png" && format != "jpeg" && format != "jpg" {
		return nil
	}

	return &Signature{Image: data, Format: format, SignedAt: optionalTime(b.TermsAcceptedAt)}
}

func stamp(b bookingModel.Booking) time.Time {
	if !b.ModifiedAt.IsZero() {
		return b.ModifiedAt
	}

	return b.CreatedAt
}

func formatter(currency string) func(decimal.Decimal) string {
	return func(amount decimal.Decimal) string {
		return money.FormatWith(currency, amount)
	}
}

func nonZero(format func(decimal.Decimal) string, amount decimal.Decimal) string {
	if amount.IsZero() {
		return ""
	}

	return format(amount)
}

func optionalAmount(format func(decimal.Decimal) string, amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}

	return format(*amount)
}

func compact(rows []Row) []Row {
	kept := rows[:0:0]

	for _, row := range rows {
		if row.Value != "" {
			kept = append(kept, row)
		}
	}

	return kept
}

func percent(rate decimal.Decimal) string {
	return rate.String() + "%"
}

func optional(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func optionalTime(value *time.Time) string {
	if value == nil {
		return ""
	}

	return formatTime(*value)
}

func optionalDate(value *time.Time) string {
	if value == nil {
		return ""
	}

	return value.Format(displayDate)
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(displayTime)
}

func intentLabel(intent string) string {
	if label, ok := intentLabels[intent]; ok {
		return label
	}

	return intent
}

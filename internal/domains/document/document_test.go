package document_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "rentdesk/internal/domains/booking/model"
	"rentdesk/internal/domains/document"
	invoiceModel "rentdesk/internal/domains/invoice/model"
	paymentModel "rentdesk/internal/domains/payment/model"
	"rentdesk/shared/duration"
	gModel "rentdesk/shared/model"
)

// 1x1 transparent PNG.
const signaturePNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func ptr[T any](v T) *T { return &v }

func sampleBooking() bookingModel.Booking {
	delivery := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	return bookingModel.Booking{
		ID:                 "b-1",
		ReferenceCode:      "RD-1001",
		Status:             bookingModel.StatusConfirmed,
		Source:             bookingModel.SourceManual,
		ClientName:         "Anna Keller",
		ClientEmail:        "anna@example.com",
		VehicleMake:        "Audi",
		VehicleModel:       "A4",
		DeliveryLocation:   "Zurich Airport",
		DeliveryAt:         delivery,
		CollectionLocation: "Zurich Airport",
		CollectionAt:       delivery.Add(4*24*time.Hour + 30*time.Minute),
		RentalPriceGross:   decimal.NewFromInt(1500),
		VATRate:            decimal.RequireFromString("8.1"),
		SupplierPrice:      decimal.NewFromInt(1200),
		SecurityDeposit:    decimal.NewFromInt(1000),
		AmountTotal:        decimal.NewFromInt(1500),
		Currency:           "CHF",
		Metadata:           gModel.NewMetadata(delivery.Add(-72*time.Hour), "operator-1"),
	}
}

func rowValues(doc document.Document) map[string]string {
	values := map[string]string{}

	for _, sec := range doc.Sections {
		for _, row := range sec.Rows {
			values[sec.Title+"/"+row.Label] = row.Value
		}
	}

	if doc.Summary != nil {
		for _, row := range doc.Summary.Lines {
			values["summary/"+row.Label] = row.Value
		}

		values["summary/"+doc.Summary.Total.Label] = doc.Summary.Total.Value
	}

	return values
}

func hasLabel(values map[string]string, fragment string) bool {
	for key := range values {
		if strings.Contains(key, fragment) {
			return true
		}
	}

	return false
}

func TestAdminCopy_ShowsEveryFigure(t *testing.T) {
	net := decimal.NewFromInt(420)
	doc := document.AdminCopy(sampleBooking(), &document.Figures{NetCommission: &net}, nil)
	values := rowValues(doc)

	assert.Equal(t, "admin-booking-RD-1001.pdf", doc.FileName)
	assert.Equal(t, "CHF 1500.00", values["summary/Rental price"])
	assert.Equal(t, "CHF 121.50", values["summary/VAT (8.1%)"])
	assert.Equal(t, "CHF 1200.00", values["summary/Supplier price"])
	assert.Equal(t, "CHF 300.00", values["summary/Base commission"])
	assert.Equal(t, "CHF 420.00", values["summary/Net commission"])
	assert.False(t, hasLabel(values, "Deposit margin"))
	assert.False(t, hasLabel(values, "Extra deduction"))
	assert.Equal(t, "4 days", values["Rental period/Rental days"])
	assert.Equal(t, "4 days 30 minutes", values["Rental period/Duration"])
}

func TestSupplierCopy_HidesClientPriceAndVAT(t *testing.T) {
	b := sampleBooking()
	b.GuestName = ptr("Marc Keller")

	doc := document.SupplierCopy(b, nil)
	values := rowValues(doc)

	assert.Equal(t, "supplier-booking-RD-1001.pdf", doc.FileName)
	assert.Equal(t, "CHF 1200.00", values["summary/Supplier price"])
	assert.Equal(t, "CHF 1000.00", values["summary/Security deposit"])
	assert.Equal(t, "CHF 300.00", values["summary/Commission"])
	assert.Equal(t, "Marc Keller", values["Driver/Name"])
	assert.False(t, hasLabel(values, "Rental price"))
	assert.False(t, hasLabel(values, "VAT"))
	assert.False(t, hasLabel(values, "Email"))
}

func TestClientCopy_HidesSupplierFigures(t *testing.T) {
	paidAt := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
	payments := []paymentModel.Payment{
		{Intent: paymentModel.IntentDownPayment, Status: paymentModel.StatusPaid, Amount: decimal.NewFromInt(500), Currency: "CHF", PaidAt: &paidAt},
		{Intent: paymentModel.IntentSecurityDeposit, Status: paymentModel.StatusPaid, Amount: decimal.NewFromInt(1000), Currency: "CHF", PaidAt: &paidAt},
		{Intent: paymentModel.IntentBalancePayment, Status: paymentModel.StatusPending, Amount: decimal.NewFromInt(1000), Currency: "CHF"},
	}

	doc := document.ClientCopy(sampleBooking(), payments, nil)
	values := rowValues(doc)

	assert.Equal(t, "client-booking-RD-1001.pdf", doc.FileName)
	assert.Equal(t, "CHF 500.00", values["summary/Amount paid"])
	assert.Equal(t, "CHF 1000.00", values["summary/Balance due"])
	assert.Len(t, doc.Sections[len(doc.Sections)-1].Rows, 2)
	assert.False(t, hasLabel(values, "Supplier"))
	assert.False(t, hasLabel(values, "ommission"))
}

func TestProforma(t *testing.T) {
	inv := invoiceModel.ClientInvoice{
		InvoiceNumber: "INV-2025-014",
		Subtotal:      decimal.NewFromInt(1500),
		VATRate:       decimal.RequireFromString("8.1"),
		TotalAmount:   decimal.RequireFromString("1621.50"),
		PaymentStatus: invoiceModel.PaymentStatusUnpaid,
		IssuedAt:      time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
	}

	doc := document.Proforma(inv, sampleBooking(), nil)
	values := rowValues(doc)

	assert.Equal(t, "INV-2025-014.pdf", doc.FileName)
	assert.Equal(t, document.PageLetter, doc.PageSize)
	assert.Equal(t, "CHF 1621.50", values["summary/Total"])
	assert.Equal(t, "CHF 121.50", values["summary/VAT (8.1%)"])
	assert.False(t, hasLabel(values, "Invoice/Due"))
}

func TestRenderers_OmitAbsentOptionalRows(t *testing.T) {
	doc := document.AdminCopy(sampleBooking(), nil, nil)
	values := rowValues(doc)

	for _, label := range []string{"Phone", "Guest", "Plate", "Supplier/", "Notes/", "Net commission"} {
		assert.False(t, hasLabel(values, label), label)
	}

	assert.Nil(t, doc.Signature)
	assert.Empty(t, doc.Header.CompanyLines)
}

func TestRenderers_BrandingAndSignature(t *testing.T) {
	b := sampleBooking()
	b.TermsSignature = ptr(signaturePNG)
	b.TermsAcceptedAt = ptr(time.Date(2025, 5, 20, 18, 45, 0, 0, time.UTC))

	settings := &document.Settings{CompanyName: "Lakeside Cars", Email: "desk@lakeside.example"}

	doc := document.ClientCopy(b, nil, settings)

	require.NotNil(t, doc.Signature)
	assert.Equal(t, "png", doc.Signature.Format)
	assert.Equal(t, "20.05.2025 18:45", doc.Signature.SignedAt)
	assert.Equal(t, []string{"Lakeside Cars", "desk@lakeside.example"}, doc.Header.CompanyLines)
	assert.Contains(t, doc.Footer, "Lakeside Cars | desk@lakeside.example")

	b.TermsSignature = ptr("data:application/pdf;base64,JVBERi0=")
	assert.Nil(t, document.ClientCopy(b, nil, settings).Signature)
}

func TestRenderers_Idempotent(t *testing.T) {
	b := sampleBooking()
	b.TermsSignature = ptr(signaturePNG)

	renders := map[string]func() document.Document{
		"admin":    func() document.Document { return document.AdminCopy(b, nil, nil) },
		"supplier": func() document.Document { return document.SupplierCopy(b, nil) },
		"client":   func() document.Document { return document.ClientCopy(b, nil, nil) },
		"proforma": func() document.Document {
			return document.Proforma(invoiceModel.ClientInvoice{InvoiceNumber: "INV-1", IssuedAt: b.CreatedAt}, b, nil)
		},
	}

	for name, render := range renders {
		t.Run(name, func(t *testing.T) {
			first, err := document.Encode(render())
			require.NoError(t, err)

			second, err := document.Encode(render())
			require.NoError(t, err)

			assert.True(t, bytes.Equal(first, second))

			firstPDF, err := document.PDF(render())
			require.NoError(t, err)

			secondPDF, err := document.PDF(render())
			require.NoError(t, err)

			assert.True(t, bytes.Equal(firstPDF, secondPDF), "pdf bytes differ between renders")
		})
	}
}

func TestRenderers_ZeroToleranceMatchesDetailView(t *testing.T) {
	b := sampleBooking()
	expected := duration.Describe(b.DeliveryAt, b.CollectionAt, 0).Total

	values := rowValues(document.AdminCopy(b, nil, &document.Settings{ToleranceHours: 0}))

	assert.Equal(t, "5 days", expected)
	assert.Equal(t, expected, values["Rental period/Rental days"])

	values = rowValues(document.AdminCopy(b, nil, nil))
	assert.Equal(t, "4 days", values["Rental period/Rental days"])
}

func TestPDF(t *testing.T) {
	b := sampleBooking()
	b.TermsSignature = ptr(signaturePNG)

	data, err := document.PDF(document.ClientCopy(b, nil, &document.Settings{CompanyName: "Lakeside Cars"}))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

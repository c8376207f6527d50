package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rentdesk/config"
	"rentdesk/infras/otel/mocks"
	bookingMocks "rentdesk/internal/domains/booking/mocks"
	bookingModel "rentdesk/internal/domains/booking/model"
	invoiceMocks "rentdesk/internal/domains/invoice/mocks"
	"rentdesk/internal/domains/invoice/model"
	"rentdesk/internal/domains/invoice/model/dto"
	"rentdesk/internal/domains/invoice/service"
	cacheMocks "rentdesk/shared/cache/mocks"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/failure"
	invMocks "rentdesk/shared/invalidator/mocks"
)

type fixture struct {
	clients     *invoiceMocks.MockClientInvoice
	suppliers   *invoiceMocks.MockSupplierInvoice
	bookings    *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
	invalidator *invMocks.MockInvalidator
	svc         service.Invoice
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		clients:     invoiceMocks.NewMockClientInvoice(ctrl),
		suppliers:   invoiceMocks.NewMockSupplierInvoice(ctrl),
		bookings:    bookingMocks.NewMockBooking(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		invalidator: invMocks.NewMockInvalidator(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.clients, f.suppliers, f.bookings, nil, cfg, f.cache, mocks.NewOtel(), f.invalidator)

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "operator-1")
}

func amount(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func storedInvoice() model.ClientInvoice {
	return model.ClientInvoice{
		ID:            "ci-1",
		BookingID:     "b-1",
		InvoiceNumber: "INV-2025-014",
		Subtotal:      amount("1500"),
		VATRate:       amount("8.1"),
		TotalAmount:   amount("1621.50"),
		PaymentStatus: model.PaymentStatusUnpaid,
		IssuedAt:      time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestInvoiceService_CreateClient(t *testing.T) {
	f := newFixture(t)

	var stored model.ClientInvoice

	f.clients.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv model.ClientInvoice) error {
		stored = inv

		return nil
	})
	f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")

	res, err := f.svc.CreateClient(userContext(), dto.CreateClientInvoiceRequest{
		BookingID:     "b-1",
		InvoiceNumber: "INV-1",
		Subtotal:      amount("999.99"),
		VATRate:       amount("7.7"),
	})

	require.NoError(t, err)
	assert.Equal(t, stored.ID, res.ID)
	assert.Equal(t, "1076.99", stored.TotalAmount.StringFixed(2))
	assert.Equal(t, model.PaymentStatusUnpaid, stored.PaymentStatus)
	assert.Equal(t, "operator-1", stored.CreatedBy)
}

func TestInvoiceService_EditClient_TotalRoundTrip(t *testing.T) {
	cases := []struct {
		subtotal string
		vat      string
		total    string
	}{
		{"1500", "8.1", "1621.50"},
		{"1000", "0", "1000.00"},
		{"99.99", "7.7", "107.69"},
		{"0.01", "8.1", "0.01"},
		{"250", "100", "500.00"},
	}

	for _, tc := range cases {
		t.Run(tc.subtotal+"@"+tc.vat, func(t *testing.T) {
			f := newFixture(t)

			subtotal := amount(tc.subtotal)
			vat := amount(tc.vat)

			var written map[string]any

			f.clients.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedInvoice(), nil)
			f.clients.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
					written = fields

					return 1, nil
				})
			f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")

			res, err := f.svc.EditClient(userContext(), dto.EditClientInvoiceRequest{Subtotal: &subtotal, VATRate: &vat}, "ci-1")

			require.NoError(t, err)
			assert.Equal(t, tc.total, res.TotalAmount.StringFixed(2))

			total, ok := written["total_amount"].(decimal.Decimal)
			require.True(t, ok)
			assert.Equal(t, tc.total, total.StringFixed(2))
			assert.Equal(t, "operator-1", written[constant.FieldModifiedBy])
		})
	}
}

func TestInvoiceService_EditClient_KeepsUnsentFields(t *testing.T) {
	f := newFixture(t)

	vat := amount("7.7")

	f.clients.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedInvoice(), nil)
	f.clients.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")

	res, err := f.svc.EditClient(userContext(), dto.EditClientInvoiceRequest{VATRate: &vat}, "ci-1")

	require.NoError(t, err)
	assert.True(t, res.Subtotal.Equal(amount("1500")))
	assert.Equal(t, "1615.50", res.TotalAmount.StringFixed(2))
	assert.Equal(t, "INV-2025-014", res.InvoiceNumber)
}

func TestInvoiceService_EditClient_Failures(t *testing.T) {
	subtotal := amount("100")

	t.Run("empty request", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.EditClient(userContext(), dto.EditClientInvoiceRequest{}, "ci-1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("zero rows is forbidden", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedInvoice(), nil)
		f.clients.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := f.svc.EditClient(userContext(), dto.EditClientInvoiceRequest{Subtotal: &subtotal}, "ci-1")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("soft-deleted invoice is forbidden", func(t *testing.T) {
		f := newFixture(t)

		deleted := storedInvoice()
		deletedAt := time.Now()
		deleted.DeletedAt = &deletedAt

		f.clients.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deleted, nil)

		_, err := f.svc.EditClient(userContext(), dto.EditClientInvoiceRequest{Subtotal: &subtotal}, "ci-1")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("write failure", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedInvoice(), nil)
		f.clients.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))

		_, err := f.svc.EditClient(userContext(), dto.EditClientInvoiceRequest{Subtotal: &subtotal}, "ci-1")

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestInvoiceService_List(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "invoice:list:b-1", gomock.Any()).Return(nil)

		_, err := f.svc.List(context.Background(), "b-1")

		assert.NoError(t, err)
	})

	t.Run("loads active invoices", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.clients.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.ClientInvoice{storedInvoice()}, nil)
		f.suppliers.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.SupplierInvoice{
			{ID: "si-1", BookingID: "b-1", InvoiceType: model.TypeRental, Amount: amount("1200")},
		}, nil)

		res, err := f.svc.List(context.Background(), "b-1")

		require.NoError(t, err)
		assert.Len(t, res.ClientInvoices, 1)
		assert.Len(t, res.SupplierInvoices, 1)
		assert.Equal(t, model.TypeRental, res.SupplierInvoices[0].InvoiceType)
	})

	t.Run("supplier fetch fails", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.clients.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.suppliers.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := f.svc.List(context.Background(), "b-1")

		assert.Error(t, err)
	})
}

func TestInvoiceService_DeleteSupplier(t *testing.T) {
	stored := model.SupplierInvoice{ID: "si-1", BookingID: "b-1"}

	t.Run("soft deletes", func(t *testing.T) {
		f := newFixture(t)
		f.suppliers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.suppliers.EXPECT().SoftDelete(gomock.Any(), gomock.Any(), "operator-1").Return(int64(1), nil)
		f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")

		assert.NoError(t, f.svc.DeleteSupplier(userContext(), "si-1"))
	})

	t.Run("missing invoice is forbidden", func(t *testing.T) {
		f := newFixture(t)
		f.suppliers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SupplierInvoice{}, nil)

		err := f.svc.DeleteSupplier(userContext(), "si-1")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("zero rows is forbidden", func(t *testing.T) {
		f := newFixture(t)
		f.suppliers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.suppliers.EXPECT().SoftDelete(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := f.svc.DeleteSupplier(userContext(), "si-1")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestInvoiceService_EditSupplier(t *testing.T) {
	f := newFixture(t)
	f.suppliers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SupplierInvoice{ID: "si-1", BookingID: "b-1"}, nil)
	f.suppliers.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
			assert.Equal(t, model.PaymentStatusPaid, fields["payment_status"])
			assert.NotContains(t, fields, "invoice_number")

			return 1, nil
		})
	f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")

	err := f.svc.EditSupplier(userContext(), dto.EditSupplierInvoiceRequest{PaymentStatus: model.PaymentStatusPaid}, "si-1")

	assert.NoError(t, err)
}

func TestInvoiceService_EditSupplierAmount(t *testing.T) {
	t.Run("explicit zero is written", func(t *testing.T) {
		f := newFixture(t)
		zero := decimal.Zero
		f.suppliers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SupplierInvoice{ID: "si-1", BookingID: "b-1"}, nil)
		f.suppliers.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				require.Contains(t, fields, "amount")
				written, ok := fields["amount"].(decimal.Decimal)
				require.True(t, ok)
				assert.Equal(t, "0.00", written.StringFixed(2))
				assert.Equal(t, "operator-1", fields[constant.FieldModifiedBy])

				return 1, nil
			})
		f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")

		err := f.svc.EditSupplier(userContext(), dto.EditSupplierInvoiceRequest{Amount: &zero}, "si-1")

		assert.NoError(t, err)
	})

	t.Run("amount is rounded to cents", func(t *testing.T) {
		f := newFixture(t)
		edited := amount("12.345")
		f.suppliers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SupplierInvoice{ID: "si-1", BookingID: "b-1"}, nil)
		f.suppliers.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				written, ok := fields["amount"].(decimal.Decimal)
				require.True(t, ok)
				assert.True(t, written.Equal(amount("12.35")), written.String())

				return 1, nil
			})
		f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")

		err := f.svc.EditSupplier(userContext(), dto.EditSupplierInvoiceRequest{Amount: &edited}, "si-1")

		assert.NoError(t, err)
	})

	t.Run("no fields is rejected", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.EditSupplier(userContext(), dto.EditSupplierInvoiceRequest{}, "si-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestInvoiceService_Proforma(t *testing.T) {
	t.Run("renders pdf", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedInvoice(), nil)
		f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{
			ID:            "b-1",
			ReferenceCode: "RD-1001",
			ClientName:    "Anna Keller",
			ClientEmail:   "anna@example.com",
			Currency:      "CHF",
		}, nil)

		name, pdf, err := f.svc.Proforma(context.Background(), "ci-1")

		require.NoError(t, err)
		assert.Equal(t, "INV-2025-014.pdf", name)
		assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	})

	t.Run("invoice not found", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ClientInvoice{}, nil)

		_, _, err := f.svc.Proforma(context.Background(), "ci-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

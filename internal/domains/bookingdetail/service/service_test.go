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
	accessMocks "rentdesk/internal/domains/accesstoken/mocks"
	bookingMocks "rentdesk/internal/domains/booking/mocks"
	bookingModel "rentdesk/internal/domains/booking/model"
	"rentdesk/internal/domains/bookingdetail/service"
	depositMocks "rentdesk/internal/domains/deposit/mocks"
	depositModel "rentdesk/internal/domains/deposit/model"
	"rentdesk/internal/domains/document"
	expenseMocks "rentdesk/internal/domains/expense/mocks"
	fineMocks "rentdesk/internal/domains/fine/mocks"
	invoiceMocks "rentdesk/internal/domains/invoice/mocks"
	invoiceModel "rentdesk/internal/domains/invoice/model"
	paymentMocks "rentdesk/internal/domains/payment/mocks"
	paymentModel "rentdesk/internal/domains/payment/model"
	cacheMocks "rentdesk/shared/cache/mocks"
	"rentdesk/shared/failure"
)

var errMiss = errors.New("redis: nil")

type fixture struct {
	booking  *bookingMocks.MockBooking
	summary  *bookingMocks.MockSummary
	payment  *paymentMocks.MockPayment
	fine     *fineMocks.MockFine
	supplier *invoiceMocks.MockSupplierInvoice
	client   *invoiceMocks.MockClientInvoice
	expense  *expenseMocks.MockExpense
	deposit  *depositMocks.MockAuthorization
	token    *accessMocks.MockAccessToken
	cache    *cacheMocks.MockRedisCache
	svc      service.Detail
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		booking:  bookingMocks.NewMockBooking(ctrl),
		summary:  bookingMocks.NewMockSummary(ctrl),
		payment:  paymentMocks.NewMockPayment(ctrl),
		fine:     fineMocks.NewMockFine(ctrl),
		supplier: invoiceMocks.NewMockSupplierInvoice(ctrl),
		client:   invoiceMocks.NewMockClientInvoice(ctrl),
		expense:  expenseMocks.NewMockExpense(ctrl),
		deposit:  depositMocks.NewMockAuthorization(ctrl),
		token:    accessMocks.NewMockAccessToken(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Rental.ToleranceHours = 1

	f.svc = service.New(service.Repositories{
		Booking:         f.booking,
		Summary:         f.summary,
		Payment:         f.payment,
		Fine:            f.fine,
		SupplierInvoice: f.supplier,
		ClientInvoice:   f.client,
		Expense:         f.expense,
		Deposit:         f.deposit,
		AccessToken:     f.token,
	}, &document.Settings{CompanyName: "Rentdesk AG"}, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func sampleBooking() bookingModel.Booking {
	delivery := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

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
		SupplierPrice:      decimal.NewFromInt(1000),
		ExtraDeduction:     decimal.NewFromInt(50),
		AmountTotal:        decimal.NewFromInt(1500),
		AmountPaid:         decimal.NewFromInt(200),
		Currency:           "CHF",
	}
}

func paidAt() *time.Time {
	t := time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)

	return &t
}

func samplePayments() []paymentModel.Payment {
	return []paymentModel.Payment{
		{ID: "p-1", BookingID: "b-1", Amount: decimal.NewFromInt(500), Currency: "CHF", Intent: paymentModel.IntentDownPayment, Status: paymentModel.StatusPaid, PaidAt: paidAt()},
		{ID: "p-2", BookingID: "b-1", Amount: decimal.NewFromInt(250), Currency: "CHF", Intent: paymentModel.IntentBalancePayment, Status: paymentModel.StatusPaid, PaidAt: paidAt()},
		{ID: "p-3", BookingID: "b-1", Amount: decimal.NewFromInt(750), Currency: "CHF", Intent: paymentModel.IntentBalancePayment, Status: paymentModel.StatusPending},
		{ID: "p-4", BookingID: "b-1", Amount: decimal.NewFromInt(1000), Currency: "CHF", Intent: paymentModel.IntentSecurityDeposit, Status: paymentModel.StatusPaid, PaidAt: paidAt()},
	}
}

// expectAll wires every repository with a successful load; individual tests override by order.
func (f *fixture) expectAll(booking bookingModel.Booking) {
	f.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil).AnyTimes()
	f.summary.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.FinancialSummary{BookingID: "b-1", AmountPaid: decimal.NewFromInt(200)}, nil).AnyTimes()
	f.payment.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(samplePayments(), nil).AnyTimes()
	f.supplier.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]invoiceModel.SupplierInvoice{
		{ID: "s-1", BookingID: "b-1", InvoiceType: invoiceModel.TypeRental, Amount: decimal.NewFromInt(1000)},
		{ID: "s-2", BookingID: "b-1", InvoiceType: invoiceModel.TypeDepositExtra, Amount: decimal.NewFromInt(120)},
	}, nil).AnyTimes()
	f.client.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]invoiceModel.ClientInvoice{
		{ID: "c-1", BookingID: "b-1", TotalAmount: decimal.NewFromInt(1500)},
	}, nil).AnyTimes()
	f.expense.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.deposit.EXPECT().Get(gomock.Any(), gomock.Any()).Return(depositModel.Authorization{
		ID: "d-1", BookingID: "b-1", AuthorizedAmount: decimal.NewFromInt(1000), CapturedAmount: decimal.NewFromInt(300),
	}, nil).AnyTimes()
	f.token.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func TestDetailService_Get(t *testing.T) {
	t.Run("derives figures from the loaded collections", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errMiss).AnyTimes()
		f.fine.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.expectAll(sampleBooking())

		res, err := f.svc.Get(context.Background(), "b-1")

		require.NoError(t, err)
		require.NotNil(t, res.Booking)
		require.NotNil(t, res.Figures)
		assert.Empty(t, res.Errors)
		assert.Len(t, res.Payments, 4)
		assert.Nil(t, res.AccessToken)

		fig := res.Figures
		assert.Equal(t, "750.00", fig.ActualAmountPaid.StringFixed(2))
		assert.Equal(t, "200.00", fig.StoredAmountPaid.StringFixed(2))
		assert.Equal(t, "750.00", fig.BalanceDue.StringFixed(2))
		assert.Equal(t, "50.0", fig.PaymentProgress.StringFixed(1))
		assert.Equal(t, "500.00", fig.BaseCommission.StringFixed(2))
		// 300 captured - 120 deposit extra
		assert.Equal(t, "180.00", fig.DepositMargin.StringFixed(2))
		// 1500 invoiced - 1000 owed - 50 deduction + 180 margin
		assert.Equal(t, "630.00", fig.NetCommission.StringFixed(2))
		assert.Equal(t, 4, fig.Duration.Days)
		assert.Equal(t, "4 days", fig.Duration.Total)
	})

	t.Run("failed query is reported and shown empty", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errMiss).AnyTimes()
		f.fine.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("permission denied"))
		f.expectAll(sampleBooking())

		res, err := f.svc.Get(context.Background(), "b-1")

		require.NoError(t, err)
		assert.Equal(t, map[string]string{service.QueryFines: "permission denied"}, res.Errors)
		assert.NotNil(t, res.Fines)
		assert.Empty(t, res.Fines)
		assert.NotNil(t, res.Figures)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errMiss).AnyTimes()
		f.fine.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.expectAll(bookingModel.Booking{})

		_, err := f.svc.Get(context.Background(), "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("booking query failure leaves the rest visible", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errMiss).AnyTimes()
		f.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, errors.New("timeout"))
		f.fine.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.expectAll(sampleBooking())

		res, err := f.svc.Get(context.Background(), "b-1")

		require.NoError(t, err)
		assert.Nil(t, res.Booking)
		assert.Nil(t, res.Figures)
		assert.Contains(t, res.Errors, service.QueryBooking)
		assert.Len(t, res.Payments, 4)
	})

	t.Run("cached query skips the repository", func(t *testing.T) {
		f := newFixture(t)
		booking := sampleBooking()

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key string, value any) error {
				if key != "booking-detail:booking:b-1" {
					return errMiss
				}

				*value.(**bookingModel.Booking) = &booking //nolint:forcetypeassert

				return nil
			}).AnyTimes()
		f.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
		f.summary.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.FinancialSummary{}, nil)
		f.payment.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.fine.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.supplier.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.client.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.expense.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.deposit.EXPECT().Get(gomock.Any(), gomock.Any()).Return(depositModel.Authorization{}, nil)
		f.token.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := f.svc.Get(context.Background(), "b-1")

		require.NoError(t, err)
		require.NotNil(t, res.Booking)
		assert.Equal(t, "RD-1001", res.Booking.ReferenceCode)
		assert.Nil(t, res.Summary)
		assert.Nil(t, res.Deposit)
		assert.True(t, res.Figures.ActualAmountPaid.IsZero())
	})
}

func TestDetailService_Document(t *testing.T) {
	t.Run("client copy", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errMiss).AnyTimes()
		f.fine.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.expectAll(sampleBooking())

		name, pdf, err := f.svc.Document(context.Background(), "b-1", document.VariantClient)

		require.NoError(t, err)
		assert.Equal(t, "client-booking-RD-1001.pdf", name)
		assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	})

	t.Run("admin copy needs its collections", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errMiss).AnyTimes()
		f.fine.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.deposit.EXPECT().Get(gomock.Any(), gomock.Any()).Return(depositModel.Authorization{}, errors.New("timeout"))
		f.expectAll(sampleBooking())

		_, _, err := f.svc.Document(context.Background(), "b-1", document.VariantAdmin)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("unknown variant", func(t *testing.T) {
		f := newFixture(t)

		_, _, err := f.svc.Document(context.Background(), "b-1", document.VariantProforma)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

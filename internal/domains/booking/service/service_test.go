package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rentdesk/config"
	fnMocks "rentdesk/infras/functions/mocks"
	"rentdesk/infras/kafka"
	kafkaMocks "rentdesk/infras/kafka/mocks"
	"rentdesk/infras/otel/mocks"
	bookingMocks "rentdesk/internal/domains/booking/mocks"
	"rentdesk/internal/domains/booking/model"
	"rentdesk/internal/domains/booking/model/dto"
	"rentdesk/internal/domains/booking/service"
	fineMocks "rentdesk/internal/domains/fine/mocks"
	invoiceMocks "rentdesk/internal/domains/invoice/mocks"
	cacheMocks "rentdesk/shared/cache/mocks"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/failure"
	invMocks "rentdesk/shared/invalidator/mocks"
)

type fixture struct {
	repo        *bookingMocks.MockBooking
	clients     *invoiceMocks.MockClientInvoice
	suppliers   *invoiceMocks.MockSupplierInvoice
	fines       *fineMocks.MockFine
	cache       *cacheMocks.MockRedisCache
	invalidator *invMocks.MockInvalidator
	functions   *fnMocks.MockClient
	kafka       *kafkaMocks.MockClient
	svc         service.Booking
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:        bookingMocks.NewMockBooking(ctrl),
		clients:     invoiceMocks.NewMockClientInvoice(ctrl),
		suppliers:   invoiceMocks.NewMockSupplierInvoice(ctrl),
		fines:       fineMocks.NewMockFine(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		invalidator: invMocks.NewMockInvalidator(ctrl),
		functions:   fnMocks.NewMockClient(ctrl),
		kafka:       kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Rental.Currency = "CHF"

	f.svc = service.New(f.repo, f.clients, f.suppliers, f.fines, cfg, f.cache, mocks.NewOtel(), f.invalidator, f.functions, f.kafka)

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "operator-1")
}

func TestBookingService_Create(t *testing.T) {
	delivery := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	valid := dto.CreateBookingRequest{
		ReferenceCode:      "RD-1001",
		ClientName:         "Anna Keller",
		ClientEmail:        "anna@example.com",
		VehicleMake:        "Audi",
		VehicleModel:       "A4",
		DeliveryLocation:   "Zurich Airport",
		DeliveryAt:         delivery,
		CollectionLocation: "Zurich Airport",
		CollectionAt:       delivery.Add(96 * time.Hour),
		RentalPriceGross:   decimal.NewFromInt(1500),
	}

	t.Run("stores a draft booking", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		var stored model.Booking

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.Booking) error {
			stored = b

			return nil
		})

		res, err := f.svc.Create(userContext(), valid)

		assert.NoError(t, err)
		assert.Equal(t, stored.ID, res.ID)
		assert.Equal(t, model.StatusDraft, stored.Status)
		assert.Equal(t, model.SourceManual, stored.Source)
		assert.Equal(t, "CHF", stored.Currency)
		assert.True(t, stored.AmountTotal.Equal(decimal.NewFromInt(1500)))
		assert.Equal(t, "operator-1", stored.CreatedBy)
	})

	t.Run("rejects collection before delivery", func(t *testing.T) {
		f := newFixture(t)

		req := valid
		req.CollectionAt = delivery.Add(-time.Hour)

		_, err := f.svc.Create(userContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		_, err := f.svc.Create(userContext(), valid)

		assert.Error(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "booking:get:b-1", gomock.Any()).Return(nil)

		_, err := f.svc.Get(context.Background(), "b-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Get(context.Background(), "b-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("loads from repository on miss", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: "b-1", ReferenceCode: "RD-1001"}, nil)

		res, err := f.svc.Get(context.Background(), "b-1")

		assert.NoError(t, err)
		assert.Equal(t, "RD-1001", res.ReferenceCode)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)
	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Booking{{ID: "b-1"}, {ID: "b-2"}}, nil)

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

func TestBookingService_Update(t *testing.T) {
	notes := "late delivery requested"

	t.Run("empty request", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(userContext(), dto.UpdateBookingRequest{}, "b-1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("zero rows is forbidden", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := f.svc.Update(userContext(), dto.UpdateBookingRequest{Notes: &notes}, "b-1")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("writes only sent fields and invalidates", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				assert.Equal(t, &notes, fields["notes"])
				assert.NotContains(t, fields, "client_name")

				return 1, nil
			})
		f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")

		err := f.svc.Update(userContext(), dto.UpdateBookingRequest{Notes: &notes}, "b-1")

		assert.NoError(t, err)
	})
}

func TestBookingService_Confirm(t *testing.T) {
	booking := model.Booking{ID: "b-1", ReferenceCode: "RD-1001", ClientEmail: "anna@example.com"}

	t.Run("confirms and runs hooks", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				assert.Equal(t, model.StatusConfirmed, fields["status"])

				return 1, nil
			})
		f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.functions.EXPECT().Call(gomock.Any(), "send-booking-confirmation", gomock.Any(), nil).Return(nil)
		f.kafka.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, events ...kafka.Event) error {
			assert.Equal(t, kafka.EventBookingConfirmed, events[0].Type)
			assert.Equal(t, "operator-1", events[0].Actor)

			return nil
		})

		res, err := f.svc.Confirm(userContext(), "b-1")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
		assert.Empty(t, res.Warnings)
	})

	t.Run("email failure is a warning", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.functions.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp unavailable"))
		f.kafka.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Confirm(userContext(), "b-1")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
		assert.Len(t, res.Warnings, 1)
		assert.Equal(t, "booking-confirmation-email", res.Warnings[0].Hook)
	})

	t.Run("zero rows is forbidden and skips hooks", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := f.svc.Confirm(userContext(), "b-1")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("write failure", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection reset"))

		_, err := f.svc.Confirm(userContext(), "b-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("soft-deletes every dependent record", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				assert.Equal(t, model.StatusCancelled, fields["status"])

				return 1, nil
			})
		f.clients.EXPECT().SoftDelete(gomock.Any(), gomock.Any(), "operator-1").Return(int64(2), nil)
		f.suppliers.EXPECT().SoftDelete(gomock.Any(), gomock.Any(), "operator-1").Return(int64(1), nil)
		f.fines.EXPECT().SoftDelete(gomock.Any(), gomock.Any(), "operator-1").Return(int64(3), nil)
		f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")
		f.kafka.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Cancel(userContext(), "b-1")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, res.Status)
		assert.Equal(t, 6, res.SoftDeleted)
		assert.Empty(t, res.Warnings)
	})

	t.Run("a failed soft-delete does not stop the others", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.clients.EXPECT().SoftDelete(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(2), nil)
		f.suppliers.EXPECT().SoftDelete(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("permission denied"))
		f.fines.EXPECT().SoftDelete(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(3), nil)
		f.invalidator.EXPECT().Booking(gomock.Any(), "b-1")
		f.kafka.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		res, err := f.svc.Cancel(userContext(), "b-1")

		assert.NoError(t, err)
		assert.Equal(t, 5, res.SoftDeleted)
		assert.Len(t, res.Warnings, 2)
		assert.Equal(t, "soft-delete-supplier-invoices", res.Warnings[0].Hook)
		assert.Equal(t, "booking-lifecycle-event", res.Warnings[1].Hook)
	})

	t.Run("zero rows is forbidden", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := f.svc.Cancel(userContext(), "b-1")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rentdesk/config"
	"rentdesk/infras/functions"
	fnMocks "rentdesk/infras/functions/mocks"
	"rentdesk/infras/otel/mocks"
	"rentdesk/internal/domains/harness/model/dto"
	"rentdesk/internal/domains/harness/service"
)

func newService(t *testing.T) (service.Harness, *fnMocks.MockClient) {
	ctrl := gomock.NewController(t)
	fn := fnMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Rental.Currency = "CHF"

	return service.New(cfg, mocks.NewOtel(), fn), fn
}

func TestHarness_PaymentEvent(t *testing.T) {
	t.Run("returns the raw answer even when it is an error status", func(t *testing.T) {
		svc, fn := newService(t)

		var sent map[string]any

		fn.EXPECT().Invoke(gomock.Any(), functions.PaymentWebhook, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload any) (functions.Response, error) {
				sent = payload.(map[string]any) //nolint:forcetypeassert

				return functions.Response{Status: http.StatusBadRequest, Body: []byte(`{"error":"unknown session"}`)}, nil
			})

		res, err := svc.PaymentEvent(context.Background(), dto.PaymentEventRequest{
			Event:     "failed",
			SessionID: "cs_1",
			Amount:    decimal.NewFromInt(80),
			Overrides: map[string]any{"data": map[string]any{"reason": "card_declined"}},
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, res.Status)
		assert.JSONEq(t, `{"error":"unknown session"}`, string(res.Body))

		data := sent["data"].(map[string]any) //nolint:forcetypeassert
		assert.Equal(t, "cs_1", data["session_id"])
		assert.Equal(t, "CHF", data["currency"])
		assert.Equal(t, "card_declined", data["reason"])
	})

	t.Run("non json body is quoted", func(t *testing.T) {
		svc, fn := newService(t)
		fn.EXPECT().Invoke(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(functions.Response{Status: http.StatusBadGateway, Body: []byte("upstream down")}, nil)

		res, err := svc.PaymentEvent(context.Background(), dto.PaymentEventRequest{Event: "succeeded"})

		require.NoError(t, err)
		assert.JSONEq(t, `"upstream down"`, string(res.Body))
	})

	t.Run("transport failure", func(t *testing.T) {
		svc, fn := newService(t)
		fn.EXPECT().Invoke(gomock.Any(), gomock.Any(), gomock.Any()).Return(functions.Response{}, errors.New("dial tcp"))

		_, err := svc.PaymentEvent(context.Background(), dto.PaymentEventRequest{Event: "succeeded"})

		assert.Error(t, err)
	})
}

func TestHarness_CMSBooking(t *testing.T) {
	svc, fn := newService(t)
	fn.EXPECT().Invoke(gomock.Any(), functions.CMSWebhook, gomock.Any()).
		Return(functions.Response{Status: http.StatusCreated, Body: []byte(`{"id":"b-9"}`)}, nil)

	res, err := svc.CMSBooking(context.Background(), dto.CMSBookingRequest{
		ClientName:  "Anna Keller",
		ClientEmail: "anna@example.com",
		Overrides:   map[string]any{"source": "cms-staging"},
	})

	require.NoError(t, err)
	assert.Equal(t, functions.CMSWebhook, res.Function)
	assert.Equal(t, http.StatusCreated, res.Status)
	assert.Equal(t, "cms-staging", res.Payload["source"])
}

package functions_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"rentdesk/config"
	"rentdesk/infras/functions"
	"rentdesk/infras/otel/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(url string) functions.Client {
	cfg := &config.Config{}
	cfg.External.Platform.FunctionsURL = url + "/functions/v1/"
	cfg.External.Platform.ServiceKey = "service-key"

	return functions.New(cfg, mocks.NewOtel())
}

func TestCallDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/functions/v1/create-payment-link", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"amount":"500"}`, string(body))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"link_id":"pl_1","url":"https://pay.example.com/pl_1"}`))
	}))
	defer server.Close()

	var out struct {
		LinkID string `json:"link_id"`
		URL    string `json:"url"`
	}

	err := newClient(server.URL).Call(context.Background(), functions.CreatePaymentLink, map[string]string{"amount": "500"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "pl_1", out.LinkID)
	assert.Equal(t, "https://pay.example.com/pl_1", out.URL)
}

func TestCallNon2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"provider down"}`))
	}))
	defer server.Close()

	err := newClient(server.URL).Call(context.Background(), functions.SendBookingConfirmation, map[string]string{}, nil)

	var fnErr *functions.Error
	require.True(t, errors.As(err, &fnErr))
	assert.Equal(t, http.StatusBadGateway, fnErr.Status)
	assert.Equal(t, functions.SendBookingConfirmation, fnErr.Function)
}

func TestInvokeReturnsRawStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"received":false}`))
	}))
	defer server.Close()

	res, err := newClient(server.URL).Invoke(context.Background(), functions.PaymentWebhook, map[string]string{"type": "x"})
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Equal(t, http.StatusUnprocessableEntity, res.Status)
	assert.Equal(t, json.RawMessage(`{"received":false}`), res.Body)
}

func TestPostSkipsServiceKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	res, err := newClient("http://unused").Post(context.Background(), server.URL+"/hook", map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, res.Status)
}

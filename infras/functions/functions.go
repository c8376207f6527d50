// Package functions calls the platform's named serverless functions over HTTP.
package functions

//go:generate go run go.uber.org/mock/mockgen -source=./functions.go -destination=./mocks/functions_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"rentdesk/config"
	"rentdesk/infras/otel"
	"rentdesk/shared/constant"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	CMSWebhook                 = "cms-booking-webhook"
	PaymentWebhook             = "payment-provider-webhook"
	CreatePaymentLink          = "create-payment-link"
	ConfirmBankTransfer        = "confirm-bank-transfer"
	SendPaymentConfirmation    = "send-payment-confirmation"
	SendBookingConfirmation    = "send-booking-confirmation"
	ExtractFineAmount          = "extract-fine-amount"
	ValidateUpload             = "validate-upload"
	defaultTimeoutSeconds      = 30
	maxResponseBodyBytes int64 = 1 << 20
)

// Response is the raw outcome of an invocation.
type Response struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

func (r Response) OK() bool {
	return r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices
}

type Client interface {
	// Invoke sends payload to the named function and returns whatever came back.
	Invoke(ctx context.Context, name string, payload any) (Response, error)
	// Call invokes the function, treats any non-2xx status as an error and decodes the body into out.
	Call(ctx context.Context, name string, payload any, out any) error
	// Post sends payload to an arbitrary webhook URL.
	Post(ctx context.Context, url string, payload any) (Response, error)
}

type clientImpl struct {
	config *config.Config
	otel   otel.Otel
	http   *http.Client
}

func New(cfg *config.Config, ot otel.Otel) Client {
	timeout := cfg.External.Platform.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	return &clientImpl{
		config: cfg,
		otel:   ot,
		http: &http.Client{
			Timeout:   time.Duration(timeout) * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *clientImpl) Invoke(ctx context.Context, name string, payload any) (res Response, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelFunctionScopeName, constant.OtelFunctionScopeName+".Invoke")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("function.name", name)

	url := strings.TrimSuffix(c.config.External.Platform.FunctionsURL, "/") + "/" + name

	res, err = c.post(ctx, url, payload, true)
	if err != nil {
		return res, fmt.Errorf("failed to invoke function %s: %w", name, err)
	}

	scope.SetAttribute("function.status", res.Status)

	return res, nil
}

func (c *clientImpl) Call(ctx context.Context, name string, payload any, out any) error {
	res, err := c.Invoke(ctx, name, payload)
	if err != nil {
		return err
	}

	if !res.OK() {
		log.Error().Str("function", name).Int("status", res.Status).RawJSON("body", safeJSON(res.Body)).Msg("function returned an error")

		return &Error{Function: name, Status: res.Status, Body: string(res.Body)}
	}

	if out == nil || len(res.Body) == 0 {
		return nil
	}

	if err := json.Unmarshal(res.Body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", name, err)
	}

	return nil
}

func (c *clientImpl) Post(ctx context.Context, url string, payload any) (res Response, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Post")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = c.post(ctx, url, payload, false)
	if err != nil {
		return res, err
	}

	if !res.OK() {
		return res, &Error{Function: url, Status: res.Status, Body: string(res.Body)}
	}

	return res, nil
}

func (c *clientImpl) post(ctx context.Context, url string, payload any, withKey bool) (Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	if withKey && c.config.External.Platform.ServiceKey != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.config.External.Platform.ServiceKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		return Response{Status: resp.StatusCode}, fmt.Errorf("failed to read response: %w", err)
	}

	return Response{Status: resp.StatusCode, Body: raw}, nil
}

// Error reports a function or webhook that answered with a non-2xx status.
type Error struct {
	Function string
	Status   int
	Body     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Function, e.Status, e.Body)
}

func safeJSON(body []byte) []byte {
	if json.Valid(body) {
		return body
	}

	quoted, _ := json.Marshal(string(body))

	return quoted
}

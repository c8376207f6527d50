package service

import (
	"context"
	"encoding/json"
	"fmt"
	"rentdesk/config"
	"rentdesk/infras/functions"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/harness/model/dto"
	"rentdesk/internal/domains/harness/payload"
	"rentdesk/shared/constant"
	"rentdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Harness interface {
	CMSBooking(ctx context.Context, req dto.CMSBookingRequest) (dto.InvokeResponse, error)
	PaymentEvent(ctx context.Context, req dto.PaymentEventRequest) (dto.InvokeResponse, error)
}

type serviceImpl struct {
	cfg       *config.Config
	otel      otel.Otel
	functions functions.Client
}

func New(cfg *config.Config, otel otel.Otel, fn functions.Client) Harness {
	return &serviceImpl{
		cfg:       cfg,
		otel:      otel,
		functions: fn,
	}
}

func (s *serviceImpl) CMSBooking(ctx context.Context, req dto.CMSBookingRequest) (res dto.InvokeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CMSBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Currency == "" {
		req.Currency = s.cfg.Rental.Currency
	}

	body := payload.Merge(payload.BuildCMSBooking(req.ToPayload(), timezone.Now()), req.Overrides)

	return s.send(ctx, functions.CMSWebhook, body)
}

func (s *serviceImpl) PaymentEvent(ctx context.Context, req dto.PaymentEventRequest) (res dto.InvokeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PaymentEvent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Currency == "" {
		req.Currency = s.cfg.Rental.Currency
	}

	body := payload.Merge(payload.BuildPaymentEvent(req.ToPayload(), timezone.Now()), req.Overrides)

	return s.send(ctx, functions.PaymentWebhook, body)
}

// send reports any HTTP answer as-is; only a transport failure is an error.
func (s *serviceImpl) send(ctx context.Context, function string, body map[string]any) (dto.InvokeResponse, error) {
	res := dto.InvokeResponse{Function: function, Payload: body}

	out, err := s.functions.Invoke(ctx, function, body)
	if err != nil {
		log.Error().Err(err).Str("function", function).Msg("failed to invoke webhook")

		return res, fmt.Errorf("failed to invoke %s: %w", function, err)
	}

	log.Info().Str("function", function).Int("status", out.Status).Msg("webhook invoked")

	res.Status = out.Status
	res.Body = out.Body

	if !json.Valid(out.Body) {
		res.Body, _ = json.Marshal(string(out.Body))
	}

	return res, nil
}

package payment

import (
	"net/http"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/payment/model"
	"rentdesk/internal/domains/payment/model/dto"
	"rentdesk/internal/domains/payment/service"
	"rentdesk/shared/constant"
	"rentdesk/shared/validator"
	"rentdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RecordPayment)
		routerGroup.Get("/", handler.GetPayments)
		routerGroup.Post("/links", handler.GenerateLink)
		routerGroup.Post("/{id}/confirm", handler.ConfirmPayment)
	})
}

// RecordPayment stores a payment taken outside the provider.
// @Summary Record a payment
// @Description Record a manual payment against a booking, optionally settling a fine.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.RecordPaymentRequest true "Record Payment Request"
// @Success 201 {object} response.Data[dto.CreatePaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [post]
// @Security BearerAuth
func (handler *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	req := dto.RecordPaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Record(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment recorded by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPayments lists the active payments of a booking, newest first.
// @Summary List payments of a booking
// @Tags Payment
// @Produce json
// @Param booking_id query string true "Booking ID"
// @Success 200 {object} response.Data[dto.ListPaymentsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	bookingID := r.URL.Query().Get(model.FieldBookingID)
	if err := validator.ValidateVar(bookingID, "required"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.List(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ConfirmPayment marks a pending manual payment as paid.
// @Summary Confirm a manual payment
// @Description Marks the payment paid, settles its fine and notifies automation. Hook failures come back as warnings.
// @Tags Payment
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Data[dto.ConfirmResponse]
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id}/confirm [post]
// @Security BearerAuth
func (handler *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.ConfirmManual(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("payment", id).Msg("failed to confirm payment")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("warnings", len(res.Warnings))

	response.WithJSON(w, http.StatusOK, res)
}

// GenerateLink creates a hosted checkout link for a booking.
// @Summary Generate a payment link
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.GenerateLinkRequest true "Generate Link Request"
// @Success 201 {object} response.Data[dto.GenerateLinkResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/links [post]
// @Security BearerAuth
func (handler *Handler) GenerateLink(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateLink")
	defer scope.End()

	req := dto.GenerateLinkRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GenerateLink(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate payment link")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment link generated")

	response.WithJSON(w, http.StatusCreated, res)
}

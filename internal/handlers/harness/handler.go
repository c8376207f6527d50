package harness

import (
	"net/http"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/harness/model/dto"
	"rentdesk/internal/domains/harness/service"
	"rentdesk/shared/constant"
	"rentdesk/shared/failure"
	"rentdesk/shared/validator"
	"rentdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Harness
	otel    otel.Otel
}

func New(service service.Harness, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/harness", func(routerGroup chi.Router) {
		routerGroup.Post("/{target}", handler.Invoke)
	})
}

// Invoke sends a synthetic payload to a platform function.
// @Summary Send a test payload
// @Description Builds a CMS booking or payment event payload, sends it, and returns the function's raw answer.
// @Tags Harness
// @Accept json
// @Produce json
// @Param target path string true "Target" Enums(cms-booking, payment-event)
// @Param request body object true "dto.CMSBookingRequest or dto.PaymentEventRequest"
// @Success 200 {object} response.Data[dto.InvokeResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/harness/{target} [post]
// @Security BearerAuth
func (handler *Handler) Invoke(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Invoke")
	defer scope.End()

	target := chi.URLParam(r, constant.RequestParamTarget)

	var (
		res dto.InvokeResponse
		err error
	)

	switch target {
	case dto.TargetCMSBooking:
		req := dto.CMSBookingRequest{}
		if err = validator.Validate(r.Body, &req); err == nil {
			res, err = handler.service.CMSBooking(ctx, req)
		}
	case dto.TargetPaymentEvent:
		req := dto.PaymentEventRequest{}
		if err = validator.Validate(r.Body, &req); err == nil {
			res, err = handler.service.PaymentEvent(ctx, req)
		}
	default:
		err = failure.BadRequestFromString("unknown harness target " + target)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("target", target).Msg("failed to invoke harness target")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("status", res.Status)

	response.WithJSON(w, http.StatusOK, res)
}

package accesstoken

import (
	"net/http"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/accesstoken/model/dto"
	"rentdesk/internal/domains/accesstoken/service"
	"rentdesk/shared/constant"
	"rentdesk/shared/validator"
	"rentdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.AccessToken
	otel    otel.Otel
}

func New(service service.AccessToken, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/access-tokens", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.IssueAccessToken)
		routerGroup.Get("/{bookingID}", handler.GetLatestAccessToken)
	})
}

// IssueAccessToken issues a client portal token for a booking.
// @Summary Issue a portal access token
// @Tags AccessToken
// @Accept json
// @Produce json
// @Param request body dto.IssueAccessTokenRequest true "Issue Access Token Request"
// @Success 201 {object} response.Data[dto.AccessTokenResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/access-tokens [post]
// @Security BearerAuth
func (handler *Handler) IssueAccessToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IssueAccessToken")
	defer scope.End()

	req := dto.IssueAccessTokenRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Issue(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to issue access token")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Access token issued by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetLatestAccessToken returns the newest token of a booking, expired or not.
// @Summary Get the latest portal access token
// @Tags AccessToken
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} response.Data[dto.AccessTokenResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/access-tokens/{bookingID} [get]
// @Security BearerAuth
func (handler *Handler) GetLatestAccessToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLatestAccessToken")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	res, err := handler.service.Latest(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get access token")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

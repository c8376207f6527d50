package bookingdetail

import (
	"net/http"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/bookingdetail/service"
	"rentdesk/shared/constant"
	"rentdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Detail
	otel    otel.Otel
}

func New(service service.Detail, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking-details/{bookingID}", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDetail)
		routerGroup.Get("/documents/{document}", handler.DownloadDocument)
	})
}

// GetDetail assembles everything known about a booking in one response.
// @Summary Get the booking detail view
// @Description Collections that fail to load are listed under errors and returned empty.
// @Tags BookingDetail
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} response.Data[dto.DetailResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-details/{bookingID} [get]
// @Security BearerAuth
func (handler *Handler) GetDetail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDetail")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	res, err := handler.service.Get(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking detail")

		response.WithError(w, err)

		return
	}

	if len(res.Errors) > 0 {
		scope.SetAttribute("failed_queries", len(res.Errors))
		log.Warn().Str("booking", bookingID).Interface("errors", res.Errors).Msg("booking detail is partial")
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DownloadDocument renders one of the booking copies as PDF.
// @Summary Download a booking document
// @Tags BookingDetail
// @Produce application/pdf
// @Param bookingID path string true "Booking ID"
// @Param document path string true "Variant" Enums(admin, supplier, client)
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-details/{bookingID}/documents/{document} [get]
// @Security BearerAuth
func (handler *Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadDocument")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamBookingID)
	variant := chi.URLParam(r, constant.RequestParamDocument)

	fileName, pdf, err := handler.service.Document(ctx, bookingID, variant)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("variant", variant).Msg("failed to render booking document")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, constant.ContentTypePDF, fileName, pdf)
}

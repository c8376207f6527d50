package fine

import (
	"net/http"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/fine/model"
	"rentdesk/internal/domains/fine/model/dto"
	"rentdesk/internal/domains/fine/service"
	"rentdesk/shared/constant"
	"rentdesk/shared/failure"
	"rentdesk/shared/validator"
	"rentdesk/transport/http/response"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	formBookingID   = "booking_id"
	formAmount      = "amount"
	formIssuedAt    = "issued_at"
	formDescription = "description"
)

type Handler struct {
	service service.Fine
	otel    otel.Otel
}

func New(service service.Fine, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/fines", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadFine)
		routerGroup.Get("/", handler.GetFines)
	})
}

// UploadFine stores a traffic fine document for a booking.
// @Summary Upload a fine
// @Description The document is validated, stored, and its amount read when none is given. A failed read is returned as a warning.
// @Tags Fine
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Fine document (png, jpeg or pdf)"
// @Param booking_id formData string true "Booking ID"
// @Param amount formData string false "Amount, skips extraction"
// @Param issued_at formData string false "Issue date (RFC3339)"
// @Param description formData string false "Description"
// @Success 201 {object} response.Data[dto.UploadFineResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/fines [post]
// @Security BearerAuth
func (handler *Handler) UploadFine(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadFine")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	req, err := fromForm(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req.Document = fileHeader
	req.DocumentFile = file

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate fine upload")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload fine")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Fine uploaded by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetFines lists the active fines of a booking.
// @Summary List fines of a booking
// @Tags Fine
// @Produce json
// @Param booking_id query string true "Booking ID"
// @Success 200 {object} response.Data[dto.ListFinesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/fines [get]
// @Security BearerAuth
func (handler *Handler) GetFines(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFines")
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
		log.Error().Err(err).Msg("failed to get fines")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func fromForm(r *http.Request) (dto.UploadFineRequest, error) {
	req := dto.UploadFineRequest{
		BookingID:   r.FormValue(formBookingID),
		Description: r.FormValue(formDescription),
	}

	if raw := r.FormValue(formAmount); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return req, failure.BadRequest(errors.Wrap(err, "invalid amount")) // nolint:wrapcheck
		}

		req.Amount = &amount
	}

	if raw := r.FormValue(formIssuedAt); raw != "" {
		issuedAt, err := time.Parse(constant.DateFormat, raw)
		if err != nil {
			return req, failure.BadRequest(errors.Wrap(err, "invalid issued_at")) // nolint:wrapcheck
		}

		req.IssuedAt = &issuedAt
	}

	return req, nil
}

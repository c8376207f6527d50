package invoice

import (
	"net/http"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/invoice/model"
	"rentdesk/internal/domains/invoice/model/dto"
	"rentdesk/internal/domains/invoice/service"
	"rentdesk/shared/constant"
	"rentdesk/shared/validator"
	"rentdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Invoice
	otel    otel.Otel
}

func New(service service.Invoice, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/invoices", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetInvoices)

		routerGroup.Route("/client", func(client chi.Router) {
			client.Post("/", handler.CreateClientInvoice)
			client.Patch("/{id}", handler.EditClientInvoice)
			client.Delete("/{id}", handler.DeleteClientInvoice)
			client.Get("/{id}/proforma", handler.DownloadProforma)
		})

		routerGroup.Route("/supplier", func(supplier chi.Router) {
			supplier.Post("/", handler.CreateSupplierInvoice)
			supplier.Patch("/{id}", handler.EditSupplierInvoice)
			supplier.Delete("/{id}", handler.DeleteSupplierInvoice)
		})
	})
}

// CreateClientInvoice creates an invoice billed to the client.
// @Summary Create a client invoice
// @Description total_amount is computed from subtotal and vat_rate.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param request body dto.CreateClientInvoiceRequest true "Create Client Invoice Request"
// @Success 201 {object} response.Data[dto.CreateInvoiceResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/client [post]
// @Security BearerAuth
func (handler *Handler) CreateClientInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClientInvoice")
	defer scope.End()

	req := dto.CreateClientInvoiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateClient(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create client invoice")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Client invoice created by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// CreateSupplierInvoice records an invoice received from the supplier.
// @Summary Create a supplier invoice
// @Tags Invoice
// @Accept json
// @Produce json
// @Param request body dto.CreateSupplierInvoiceRequest true "Create Supplier Invoice Request"
// @Success 201 {object} response.Data[dto.CreateInvoiceResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/supplier [post]
// @Security BearerAuth
func (handler *Handler) CreateSupplierInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSupplierInvoice")
	defer scope.End()

	req := dto.CreateSupplierInvoiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateSupplier(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create supplier invoice")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Supplier invoice created by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetInvoices lists client and supplier invoices of a booking.
// @Summary List invoices of a booking
// @Tags Invoice
// @Produce json
// @Param booking_id query string true "Booking ID"
// @Success 200 {object} response.Data[dto.ListInvoicesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices [get]
// @Security BearerAuth
func (handler *Handler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoices")
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
		log.Error().Err(err).Msg("failed to get invoices")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// EditClientInvoice changes the sent fields of a client invoice.
// @Summary Edit a client invoice
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.EditClientInvoiceRequest true "Edit Client Invoice Request"
// @Success 200 {object} response.Data[dto.ClientInvoiceResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/client/{id} [patch]
// @Security BearerAuth
func (handler *Handler) EditClientInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditClientInvoice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.EditClientInvoiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.EditClient(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to edit client invoice")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// EditSupplierInvoice changes the sent fields of a supplier invoice.
// @Summary Edit a supplier invoice
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.EditSupplierInvoiceRequest true "Edit Supplier Invoice Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/supplier/{id} [patch]
// @Security BearerAuth
func (handler *Handler) EditSupplierInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditSupplierInvoice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.EditSupplierInvoiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.EditSupplier(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to edit supplier invoice")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Supplier invoice updated successfully")
}

// DeleteClientInvoice soft-deletes a client invoice.
// @Summary Delete a client invoice
// @Tags Invoice
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/client/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteClientInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClientInvoice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteClient(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete client invoice")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Client invoice deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Client invoice deleted successfully")
}

// DeleteSupplierInvoice soft-deletes a supplier invoice.
// @Summary Delete a supplier invoice
// @Tags Invoice
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/supplier/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSupplierInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSupplierInvoice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteSupplier(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete supplier invoice")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Supplier invoice deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Supplier invoice deleted successfully")
}

// DownloadProforma renders the proforma PDF of a client invoice.
// @Summary Download a proforma invoice
// @Tags Invoice
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/client/{id}/proforma [get]
// @Security BearerAuth
func (handler *Handler) DownloadProforma(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadProforma")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	fileName, pdf, err := handler.service.Proforma(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render proforma")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, constant.ContentTypePDF, fileName, pdf)
}

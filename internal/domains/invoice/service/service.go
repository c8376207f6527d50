package service

import (
	"context"
	"fmt"
	"rentdesk/config"
	"rentdesk/infras/otel"
	bookingModel "rentdesk/internal/domains/booking/model"
	bookingRepo "rentdesk/internal/domains/booking/repository"
	"rentdesk/internal/domains/document"
	"rentdesk/internal/domains/invoice/model"
	"rentdesk/internal/domains/invoice/model/dto"
	"rentdesk/internal/domains/invoice/repository"
	"rentdesk/shared"
	"rentdesk/shared/cache"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/failure"
	"rentdesk/shared/invalidator"
	"rentdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Invoice interface {
	CreateClient(ctx context.Context, req dto.CreateClientInvoiceRequest) (dto.CreateInvoiceResponse, error)
	CreateSupplier(ctx context.Context, req dto.CreateSupplierInvoiceRequest) (dto.CreateInvoiceResponse, error)
	List(ctx context.Context, bookingID string) (dto.ListInvoicesResponse, error)
	EditClient(ctx context.Context, req dto.EditClientInvoiceRequest, id string) (dto.ClientInvoiceResponse, error)
	EditSupplier(ctx context.Context, req dto.EditSupplierInvoiceRequest, id string) error
	DeleteClient(ctx context.Context, id string) error
	DeleteSupplier(ctx context.Context, id string) error
	Proforma(ctx context.Context, id string) (fileName string, pdf []byte, err error)
}

type serviceImpl struct {
	clientRepo   repository.ClientInvoice
	supplierRepo repository.SupplierInvoice
	bookingRepo  bookingRepo.Booking
	settings     *document.Settings
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	invalidator  invalidator.Invalidator
}

func New(
	clientRepo repository.ClientInvoice,
	supplierRepo repository.SupplierInvoice,
	bookingRepo bookingRepo.Booking,
	settings *document.Settings,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	inv invalidator.Invalidator,
) Invoice {
	return &serviceImpl{
		clientRepo:   clientRepo,
		supplierRepo: supplierRepo,
		bookingRepo:  bookingRepo,
		settings:     settings,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		invalidator:  inv,
	}
}

func (s *serviceImpl) CreateClient(ctx context.Context, req dto.CreateClientInvoiceRequest) (res dto.CreateInvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateClient")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	invoice := req.ToModel(user)

	if err = s.clientRepo.Insert(ctx, invoice); err != nil {
		log.Error().Err(err).Msg("failed to create client invoice")

		return res, fmt.Errorf("failed to create client invoice: %w", err)
	}

	s.invalidator.Booking(ctx, invoice.BookingID)

	res.ID = invoice.ID

	return res, nil
}

func (s *serviceImpl) CreateSupplier(ctx context.Context, req dto.CreateSupplierInvoiceRequest) (res dto.CreateInvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSupplier")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	invoice := req.ToModel(user)

	if err = s.supplierRepo.Insert(ctx, invoice); err != nil {
		log.Error().Err(err).Msg("failed to create supplier invoice")

		return res, fmt.Errorf("failed to create supplier invoice: %w", err)
	}

	s.invalidator.Booking(ctx, invoice.BookingID)

	res.ID = invoice.ID

	return res, nil
}

// List returns the active client and supplier invoices of a booking.
func (s *serviceImpl) List(ctx context.Context, bookingID string) (res dto.ListInvoicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(invalidator.CacheInvoiceList, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoices")

		return res, nil
	}

	clients, err := s.clientRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterActiveByBooking(bookingID, model.FieldBookingID, model.ClientTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client invoices")

		return res, fmt.Errorf("failed to get client invoices: %w", err)
	}

	suppliers, err := s.supplierRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterActiveByBooking(bookingID, model.FieldBookingID, model.SupplierTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get supplier invoices")

		return res, fmt.Errorf("failed to get supplier invoices: %w", err)
	}

	res.FromModels(clients, suppliers)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoices to cache")
		}
	}()

	return res, nil
}

// EditClient merges the edit into the stored invoice and writes the recomputed total with it.
func (s *serviceImpl) EditClient(ctx context.Context, req dto.EditClientInvoiceRequest, id string) (res dto.ClientInvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EditClient")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	current, err := s.activeClient(ctx, id)
	if err != nil {
		return res, err
	}

	updated, fields := req.Apply(current)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = user

	affected, err := s.clientRepo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.ClientTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update client invoice")

		return res, fmt.Errorf("failed to update client invoice: %w", err)
	}

	if err = shared.RequireAffected(affected, model.ClientEntityName); err != nil {
		log.Error().Err(err).Str("invoice_id", id).Msg("client invoice update touched no rows")

		return res, err
	}

	s.invalidator.Booking(ctx, updated.BookingID)

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) EditSupplier(ctx context.Context, req dto.EditSupplierInvoiceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EditSupplier")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	current, err := s.activeSupplier(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := req.Fields()
	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = user

	affected, err := s.supplierRepo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.SupplierTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update supplier invoice")

		return fmt.Errorf("failed to update supplier invoice: %w", err)
	}

	if err = shared.RequireAffected(affected, model.SupplierEntityName); err != nil {
		log.Error().Err(err).Str("invoice_id", id).Msg("supplier invoice update touched no rows")

		return err
	}

	s.invalidator.Booking(ctx, current.BookingID)

	return nil
}

func (s *serviceImpl) DeleteClient(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteClient")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.activeClient(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	affected, err := s.clientRepo.SoftDelete(ctx, shared.FilterByID(id, model.FieldID, model.ClientTableName), user)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete client invoice")

		return fmt.Errorf("failed to delete client invoice: %w", err)
	}

	if err = shared.RequireAffected(affected, model.ClientEntityName); err != nil {
		return err
	}

	s.invalidator.Booking(ctx, current.BookingID)

	return nil
}

func (s *serviceImpl) DeleteSupplier(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteSupplier")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.activeSupplier(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	affected, err := s.supplierRepo.SoftDelete(ctx, shared.FilterByID(id, model.FieldID, model.SupplierTableName), user)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete supplier invoice")

		return fmt.Errorf("failed to delete supplier invoice: %w", err)
	}

	if err = shared.RequireAffected(affected, model.SupplierEntityName); err != nil {
		return err
	}

	s.invalidator.Booking(ctx, current.BookingID)

	return nil
}

// Proforma renders a client invoice together with its booking.
func (s *serviceImpl) Proforma(ctx context.Context, id string) (fileName string, pdf []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Proforma")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	invoice, err := s.clientRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.ClientTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client invoice")

		return "", nil, fmt.Errorf("failed to get client invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return "", nil, failure.NotFound("client invoice not found") // nolint:wrapcheck
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(invoice.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for proforma")

		return "", nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return "", nil, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	doc := document.Proforma(invoice, booking, s.settings)

	pdf, err = document.PDF(doc)
	if err != nil {
		log.Error().Err(err).Str("invoice_id", id).Msg("failed to render proforma")

		return "", nil, fmt.Errorf("failed to render proforma: %w", err)
	}

	return doc.FileName, pdf, nil
}

// activeClient loads a live client invoice. A missing or hidden row is treated
// the same way as a write that touched no rows.
func (s *serviceImpl) activeClient(ctx context.Context, id string) (model.ClientInvoice, error) {
	invoice, err := s.clientRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.ClientTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client invoice")

		return invoice, fmt.Errorf("failed to get client invoice: %w", err)
	}

	if invoice.ID == constant.Empty || invoice.DeletedAt != nil {
		return invoice, shared.RequireAffected(0, model.ClientEntityName)
	}

	return invoice, nil
}

func (s *serviceImpl) activeSupplier(ctx context.Context, id string) (model.SupplierInvoice, error) {
	invoice, err := s.supplierRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.SupplierTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get supplier invoice")

		return invoice, fmt.Errorf("failed to get supplier invoice: %w", err)
	}

	if invoice.ID == constant.Empty || invoice.DeletedAt != nil {
		return invoice, shared.RequireAffected(0, model.SupplierEntityName)
	}

	return invoice, nil
}

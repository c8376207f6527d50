package service

import (
	"context"
	"fmt"
	"rentdesk/config"
	"rentdesk/infras/functions"
	"rentdesk/infras/kafka"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/booking/model"
	"rentdesk/internal/domains/booking/model/dto"
	"rentdesk/internal/domains/booking/repository"
	fineModel "rentdesk/internal/domains/fine/model"
	fineRepo "rentdesk/internal/domains/fine/repository"
	invoiceModel "rentdesk/internal/domains/invoice/model"
	invoiceRepo "rentdesk/internal/domains/invoice/repository"
	"rentdesk/shared"
	"rentdesk/shared/cache"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/failure"
	"rentdesk/shared/hook"
	"rentdesk/shared/invalidator"
	"rentdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	hookConfirmationEmail  = "booking-confirmation-email"
	hookLifecycleEvent     = "booking-lifecycle-event"
	hookSoftDeleteClient   = "soft-delete-client-invoices"
	hookSoftDeleteSupplier = "soft-delete-supplier-invoices"
	hookSoftDeleteFines    = "soft-delete-fines"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Confirm(ctx context.Context, id string) (dto.MutationResponse, error)
	Cancel(ctx context.Context, id string) (dto.MutationResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	clientRepo   invoiceRepo.ClientInvoice
	supplierRepo invoiceRepo.SupplierInvoice
	fineRepo     fineRepo.Fine
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	invalidator  invalidator.Invalidator
	functions    functions.Client
	kafka        kafka.Client
}

func New(
	repo repository.Booking,
	clientRepo invoiceRepo.ClientInvoice,
	supplierRepo invoiceRepo.SupplierInvoice,
	fineRepo fineRepo.Fine,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	inv invalidator.Invalidator,
	fn functions.Client,
	kafka kafka.Client,
) Booking {
	return &serviceImpl{
		repo:         repo,
		clientRepo:   clientRepo,
		supplierRepo: supplierRepo,
		fineRepo:     fineRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		invalidator:  inv,
		functions:    fn,
		kafka:        kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user, s.cfg.Rental.Currency)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, invalidator.CacheBookingGets)
		shared.InvalidateCaches(c, s.cache, invalidator.CacheBookingCount)
	}()

	res.ID = booking.ID

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(invalidator.CacheBookingGets, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(invalidator.CacheBookingCount, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(invalidator.CacheBookingGet, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if !req.DeliveryAt.IsZero() && !req.CollectionAt.IsZero() && req.CollectionAt.Before(req.DeliveryAt) {
		return failure.BadRequestFromString("collection_at must not be before delivery_at") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	affected, err := s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	if err = shared.RequireAffected(affected, model.EntityName); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("booking update touched no rows")

		return err
	}

	s.invalidator.Booking(ctx, id)

	return nil
}

// Confirm moves a booking to confirmed. The confirmation email and the lifecycle
// event run afterwards and only produce warnings when they fail.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.MutationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.setStatus(ctx, id, model.StatusConfirmed); err != nil {
		return res, err
	}

	s.invalidator.Booking(ctx, id)

	var runner hook.Runner

	runner.Add(hookConfirmationEmail, func(ctx context.Context) error {
		booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to load booking for confirmation email: %w", err)
		}

		return s.functions.Call(ctx, functions.SendBookingConfirmation, map[string]any{ // nolint:wrapcheck
			"booking_id":     booking.ID,
			"reference_code": booking.ReferenceCode,
			"client_email":   booking.ClientEmail,
			"client_name":    booking.ClientName,
		}, nil)
	})
	runner.Add(hookLifecycleEvent, s.publish(ctx, kafka.EventBookingConfirmed, id, nil))

	res.ID = id
	res.Status = model.StatusConfirmed
	res.Warnings = runner.Run(ctx)

	return res, nil
}

// Cancel moves a booking to cancelled and then soft-deletes its invoices and fines one
// table at a time. A failed soft-delete is reported as a warning and does not stop the others.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.MutationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.setStatus(ctx, id, model.StatusCancelled); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var (
		runner      hook.Runner
		softDeleted int64
	)

	count := func(affected int64, err error) error {
		softDeleted += affected

		return err
	}

	runner.Add(hookSoftDeleteClient, func(ctx context.Context) error {
		return count(s.clientRepo.SoftDelete(ctx, shared.FilterByBooking(id, invoiceModel.FieldBookingID, invoiceModel.ClientTableName), user))
	})
	runner.Add(hookSoftDeleteSupplier, func(ctx context.Context) error {
		return count(s.supplierRepo.SoftDelete(ctx, shared.FilterByBooking(id, invoiceModel.FieldBookingID, invoiceModel.SupplierTableName), user))
	})
	runner.Add(hookSoftDeleteFines, func(ctx context.Context) error {
		return count(s.fineRepo.SoftDelete(ctx, shared.FilterByBooking(id, fineModel.FieldBookingID, fineModel.TableName), user))
	})

	res.Warnings = runner.Run(ctx)

	s.invalidator.Booking(ctx, id)

	if err := s.publish(ctx, kafka.EventBookingCancelled, id, map[string]any{"soft_deleted": softDeleted})(ctx); err != nil {
		res.Warnings = append(res.Warnings, hook.Warn(hookLifecycleEvent, err))
	}

	res.ID = id
	res.Status = model.StatusCancelled
	res.SoftDeleted = int(softDeleted)

	return res, nil
}

func (s *serviceImpl) setStatus(ctx context.Context, id, status string) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	affected, err := s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("status", status).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if err := shared.RequireAffected(affected, model.EntityName); err != nil {
		log.Error().Err(err).Str("booking_id", id).Str("status", status).Msg("booking status update touched no rows")

		return err
	}

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType, bookingID string, data map[string]any) func(context.Context) error {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return func(ctx context.Context) error {
		return s.kafka.Publish(ctx, kafka.Event{ // nolint:wrapcheck
			Type:       eventType,
			BookingID:  bookingID,
			Actor:      actor,
			OccurredAt: timezone.Now(),
			Data:       data,
		})
	}
}

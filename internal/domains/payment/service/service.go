package service

import (
	"context"
	"errors"
	"fmt"
	"rentdesk/config"
	"rentdesk/infras/functions"
	"rentdesk/infras/kafka"
	"rentdesk/infras/otel"
	"rentdesk/infras/s3"
	"rentdesk/internal/domains/automation"
	bookingModel "rentdesk/internal/domains/booking/model"
	bookingRepo "rentdesk/internal/domains/booking/repository"
	"rentdesk/internal/domains/document"
	fineModel "rentdesk/internal/domains/fine/model"
	fineRepo "rentdesk/internal/domains/fine/repository"
	"rentdesk/internal/domains/payment/model"
	"rentdesk/internal/domains/payment/model/dto"
	"rentdesk/internal/domains/payment/repository"
	"rentdesk/shared"
	"rentdesk/shared/cache"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/failure"
	"rentdesk/shared/hook"
	"rentdesk/shared/invalidator"
	"rentdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	hookMarkFinePaid       = "mark-fine-paid"
	hookConfirmationEmail  = "payment-confirmation-email"
	hookBankTransferFollow = "bank-transfer-confirmation"
	hookAutomationWebhook  = "automation-webhook"
	hookPaymentLifecycle   = "payment-lifecycle-event"
)

var (
	errBookingMissing = errors.New("booking not found")
	errMissingLinkURL = errors.New("payment link function returned no link")
)

type Payment interface {
	Record(ctx context.Context, req dto.RecordPaymentRequest) (dto.CreatePaymentResponse, error)
	List(ctx context.Context, bookingID string) (dto.ListPaymentsResponse, error)
	ConfirmManual(ctx context.Context, id string) (dto.ConfirmResponse, error)
	GenerateLink(ctx context.Context, req dto.GenerateLinkRequest) (dto.GenerateLinkResponse, error)
}

type serviceImpl struct {
	repo        repository.Payment
	fineRepo    fineRepo.Fine
	bookingRepo bookingRepo.Booking
	storage     s3.Storage
	settings    *document.Settings
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	invalidator invalidator.Invalidator
	functions   functions.Client
	kafka       kafka.Client
}

func New(
	repo repository.Payment,
	fineRepo fineRepo.Fine,
	bookingRepo bookingRepo.Booking,
	storage s3.Storage,
	settings *document.Settings,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	inv invalidator.Invalidator,
	fn functions.Client,
	kafka kafka.Client,
) Payment {
	return &serviceImpl{
		repo:        repo,
		fineRepo:    fineRepo,
		bookingRepo: bookingRepo,
		storage:     storage,
		settings:    settings,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		invalidator: inv,
		functions:   fn,
		kafka:       kafka,
	}
}

func (s *serviceImpl) Record(ctx context.Context, req dto.RecordPaymentRequest) (res dto.CreatePaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	payment := req.ToModel(user, s.cfg.Rental.Currency)

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to record payment")

		return res, fmt.Errorf("failed to record payment: %w", err)
	}

	s.invalidator.Booking(ctx, payment.BookingID)

	res.ID = payment.ID

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, bookingID string) (res dto.ListPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(invalidator.CachePaymentList, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	payments, err := s.repo.GetAll(ctx, newestFirst(), shared.FilterByBooking(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(payments)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

// ConfirmManual marks a payment as paid. Linked fine, emails, the follow-up link
// for rental payments, the automation webhook and the lifecycle event run afterwards
// and only produce warnings.
func (s *serviceImpl) ConfirmManual(ctx context.Context, id string) (res dto.ConfirmResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmManual")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, shared.RequireAffected(0, model.EntityName)
	}

	if payment.Status == model.StatusPaid {
		return res, failure.Conflict("payment is already paid") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	affected, err := s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        model.StatusPaid,
		model.FieldPaidAt:        now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to confirm payment")

		return res, fmt.Errorf("failed to confirm payment: %w", err)
	}

	if err = shared.RequireAffected(affected, model.EntityName); err != nil {
		log.Error().Err(err).Str("payment_id", id).Msg("payment confirmation touched no rows")

		return res, err
	}

	s.invalidator.Booking(ctx, payment.BookingID)

	payment.Status = model.StatusPaid
	payment.PaidAt = &now

	var runner hook.Runner

	if payment.FineID != nil {
		runner.Add(hookMarkFinePaid, s.markFinePaid(*payment.FineID, user))
	}

	runner.Add(hookConfirmationEmail, func(ctx context.Context) error {
		return s.functions.Call(ctx, functions.SendPaymentConfirmation, map[string]any{ // nolint:wrapcheck
			"payment_id": payment.ID,
			"booking_id": payment.BookingID,
		}, nil)
	})

	if model.IsRentalIntent(payment.Intent) {
		runner.Add(hookBankTransferFollow, func(ctx context.Context) error {
			return s.functions.Call(ctx, functions.ConfirmBankTransfer, map[string]any{ // nolint:wrapcheck
				"payment_id":     payment.ID,
				"booking_id":     payment.BookingID,
				"payment_intent": payment.Intent,
			}, nil)
		})
	}

	if s.cfg.External.Automation.WebhookURL != "" {
		runner.Add(hookAutomationWebhook, func(ctx context.Context) error {
			return s.notifyAutomation(ctx, payment)
		})
	}

	runner.Add(hookPaymentLifecycle, func(ctx context.Context) error {
		return s.kafka.Publish(ctx, kafka.Event{ // nolint:wrapcheck
			Type:       kafka.EventPaymentConfirmed,
			BookingID:  payment.BookingID,
			Actor:      user,
			OccurredAt: now,
			Data: map[string]any{
				"payment_id":     payment.ID,
				"amount":         payment.Amount.StringFixed(2),
				"payment_intent": payment.Intent,
			},
		})
	})

	res.ID = payment.ID
	res.Status = payment.Status
	res.PaidAt = now
	res.Warnings = runner.Run(ctx)

	return res, nil
}

// GenerateLink asks the provider for a checkout link and stores the pending payment.
// Nothing is written when the provider call fails.
func (s *serviceImpl) GenerateLink(ctx context.Context, req dto.GenerateLinkRequest) (res dto.GenerateLinkResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GenerateLink")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	paymentID := uuid.NewString()
	currency := s.cfg.Rental.Currency

	var link dto.LinkResult

	if err = s.functions.Call(ctx, functions.CreatePaymentLink, req.ToPayload(paymentID, currency), &link); err != nil {
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to create payment link")

		return res, fmt.Errorf("failed to create payment link: %w", err)
	}

	if link.LinkURL == constant.Empty {
		return res, errMissingLinkURL
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	payment := req.ToModel(paymentID, currency, user, link)

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to store payment link")

		return res, fmt.Errorf("failed to store payment link: %w", err)
	}

	s.invalidator.Booking(ctx, payment.BookingID)

	res.ID = payment.ID
	res.LinkID = link.LinkID
	res.LinkURL = link.LinkURL

	return res, nil
}

func (s *serviceImpl) markFinePaid(fineID, user string) func(context.Context) error {
	return func(ctx context.Context) error {
		affected, err := s.fineRepo.Update(ctx, map[string]any{
			fineModel.FieldPaymentStatus: fineModel.PaymentStatusPaid,
			constant.FieldModifiedAt:     timezone.Now(),
			constant.FieldModifiedBy:     user,
		}, shared.FilterByID(fineID, fineModel.FieldID, fineModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to mark fine paid: %w", err)
		}

		return shared.RequireAffected(affected, fineModel.EntityName)
	}
}

// notifyAutomation uploads the client copy and hands the payload to the automation platform.
func (s *serviceImpl) notifyAutomation(ctx context.Context, payment model.Payment) error {
	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(payment.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to load booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return errBookingMissing
	}

	payments, err := s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByBooking(booking.ID, model.FieldBookingID, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to load payments: %w", err)
	}

	doc := document.ClientCopy(booking, payments, s.settings)

	pdf, err := document.PDF(doc)
	if err != nil {
		return fmt.Errorf("failed to render client copy: %w", err)
	}

	url, err := s.storage.Put(ctx, s3.ObjectKey(s3.DirectoryDocuments, booking.ID, doc.FileName), constant.ContentTypePDF, pdf)
	if err != nil {
		return fmt.Errorf("failed to upload client copy: %w", err)
	}

	payload, err := automation.Build(automation.Input{
		Booking:         booking,
		Payment:         payment,
		ConfirmationURL: url,
		Now:             timezone.Now(),
	})
	if err != nil {
		return err // nolint:wrapcheck
	}

	_, err = s.functions.Post(ctx, s.cfg.External.Automation.WebhookURL, payload)

	return err // nolint:wrapcheck
}

func newestFirst() gDto.QueryParams {
	return gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}
}

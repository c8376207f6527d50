package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"rentdesk/config"
	"rentdesk/infras/functions"
	"rentdesk/infras/openai"
	"rentdesk/infras/otel"
	"rentdesk/infras/s3"
	"rentdesk/internal/domains/fine/model"
	"rentdesk/internal/domains/fine/model/dto"
	"rentdesk/internal/domains/fine/repository"
	"rentdesk/shared"
	"rentdesk/shared/cache"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/failure"
	"rentdesk/shared/hook"
	"rentdesk/shared/invalidator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const hookAmountExtraction = "fine-amount-extraction"

var errNoExtractedAmount = errors.New("extraction returned no amount")

type Fine interface {
	Upload(ctx context.Context, req dto.UploadFineRequest) (dto.UploadFineResponse, error)
	List(ctx context.Context, bookingID string) (dto.ListFinesResponse, error)
}

type serviceImpl struct {
	repo        repository.Fine
	storage     s3.Storage
	extractor   openai.Extractor
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	invalidator invalidator.Invalidator
	functions   functions.Client
}

func New(
	repo repository.Fine,
	storage s3.Storage,
	extractor openai.Extractor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	inv invalidator.Invalidator,
	fn functions.Client,
) Fine {
	return &serviceImpl{
		repo:        repo,
		storage:     storage,
		extractor:   extractor,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		invalidator: inv,
		functions:   fn,
	}
}

// Upload checks the document with the platform, stores it and records the fine.
// Reading the amount off the document is best effort: without it the fine is
// stored with a zero amount and a warning.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadFineRequest) (res dto.UploadFineResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	data, err := io.ReadAll(req.DocumentFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to read fine document")

		return res, fmt.Errorf("failed to read fine document: %w", err)
	}

	contentType := req.Document.Header.Get(constant.RequestHeaderContentType)
	sum := sha256.Sum256(data)

	var verdict dto.UploadVerdict

	err = s.functions.Call(ctx, functions.ValidateUpload, dto.UploadCheck{
		BookingID:   req.BookingID,
		FileName:    req.Document.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		SHA256:      hex.EncodeToString(sum[:]),
	}, &verdict)
	if err != nil {
		log.Error().Err(err).Msg("failed to validate fine document")

		return res, fmt.Errorf("failed to validate fine document: %w", err)
	}

	if !verdict.Valid {
		return res, failure.BadRequestFromString("document rejected: " + verdict.Reason) // nolint:wrapcheck
	}

	id := uuid.NewString()
	key := s3.ObjectKey(s3.DirectoryFines, req.BookingID, id+"-"+req.Document.Filename)

	url, err := s.storage.Put(ctx, key, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to store fine document")

		return res, fmt.Errorf("failed to store fine document: %w", err)
	}

	amount := decimal.Zero

	if req.Amount != nil {
		amount = *req.Amount
	} else {
		extracted, err := s.extractAmount(ctx, url, contentType, data)
		if err != nil {
			res.Warnings = append(res.Warnings, hook.Warn(hookAmountExtraction, err))
		} else {
			amount = extracted
			res.AmountExtracted = true
		}
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	fine := req.ToModel(id, user, url, amount)

	if err = s.repo.Insert(ctx, fine); err != nil {
		log.Error().Err(err).Msg("failed to create fine")

		if err := s.storage.Delete(context.WithoutCancel(ctx), key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to remove orphaned fine document")
		}

		return res, fmt.Errorf("failed to create fine: %w", err)
	}

	s.invalidator.Booking(ctx, fine.BookingID)

	res.FromModel(fine)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, bookingID string) (res dto.ListFinesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(invalidator.CacheFineList, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for fines")

		return res, nil
	}

	fines, err := s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterActiveByBooking(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get fines")

		return res, fmt.Errorf("failed to get fines: %w", err)
	}

	res.FromModels(fines)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save fines to cache")
		}
	}()

	return res, nil
}

// extractAmount asks the platform first and falls back to reading the image directly.
func (s *serviceImpl) extractAmount(ctx context.Context, url, contentType string, data []byte) (decimal.Decimal, error) {
	var result dto.AmountResult

	err := s.functions.Call(ctx, functions.ExtractFineAmount, dto.AmountRequest{DocumentURL: url, ContentType: contentType}, &result)
	if err == nil && result.Amount != nil && result.Amount.IsPositive() {
		return *result.Amount, nil
	}

	if err == nil {
		err = errNoExtractedAmount
	}

	log.Warn().Err(err).Msg("platform fine extraction failed, trying fallback")

	extraction, fallbackErr := s.extractor.ExtractFineAmount(ctx, data, contentType)
	if fallbackErr != nil {
		return decimal.Zero, errors.Join(err, fallbackErr)
	}

	return extraction.Amount, nil
}

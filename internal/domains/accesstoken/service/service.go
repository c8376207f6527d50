package service

import (
	"context"
	"fmt"
	"rentdesk/config"
	"rentdesk/infras/jwt"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/accesstoken/model"
	"rentdesk/internal/domains/accesstoken/model/dto"
	"rentdesk/internal/domains/accesstoken/repository"
	bookingModel "rentdesk/internal/domains/booking/model"
	bookingRepo "rentdesk/internal/domains/booking/repository"
	"rentdesk/shared"
	"rentdesk/shared/cache"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/failure"
	"rentdesk/shared/invalidator"
	"rentdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type AccessToken interface {
	Issue(ctx context.Context, req dto.IssueAccessTokenRequest) (dto.AccessTokenResponse, error)
	Latest(ctx context.Context, bookingID string) (dto.AccessTokenResponse, error)
}

type serviceImpl struct {
	repo        repository.AccessToken
	bookingRepo bookingRepo.Booking
	jwt         jwt.JWT
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	invalidator invalidator.Invalidator
}

func New(
	repo repository.AccessToken,
	bookingRepo bookingRepo.Booking,
	jwt jwt.JWT,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	inv invalidator.Invalidator,
) AccessToken {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		jwt:         jwt,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		invalidator: inv,
	}
}

// Issue signs a client-portal token for the booking and records it.
func (s *serviceImpl) Issue(ctx context.Context, req dto.IssueAccessTokenRequest) (res dto.AccessTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Issue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName),
		bookingModel.FieldID, bookingModel.FieldReferenceCode)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	now := timezone.Now()

	issued, err := s.jwt.IssuePortalToken(ctx, booking.ID, booking.ReferenceCode, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue portal token")

		return res, fmt.Errorf("failed to issue portal token: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	token := req.ToModel(issued, user, now)

	if err = s.repo.Insert(ctx, token); err != nil {
		log.Error().Err(err).Msg("failed to create access token")

		return res, fmt.Errorf("failed to create access token: %w", err)
	}

	s.invalidator.Booking(ctx, token.BookingID)

	res.FromModel(token, now)

	return res, nil
}

// Latest returns the most recently issued token of a booking, expired or not.
func (s *serviceImpl) Latest(ctx context.Context, bookingID string) (res dto.AccessTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Latest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(invalidator.CacheAccessToken, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for access token")

		res.Expired = !timezone.Now().Before(res.ExpiresAt)

		return res, nil
	}

	tokens, err := s.repo.GetAll(ctx,
		gDto.QueryParams{Page: 1, Limit: 1, SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc},
		shared.FilterByBooking(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get access tokens")

		return res, fmt.Errorf("failed to get access tokens: %w", err)
	}

	if len(tokens) == 0 {
		return res, failure.NotFound("access token not found") // nolint:wrapcheck
	}

	res.FromModel(tokens[0], timezone.Now())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save access token to cache")
		}
	}()

	return res, nil
}

// Package invalidator drops cached reads of a booking after a write and tells
// every console session, on this instance and others, to refetch.
package invalidator

//go:generate go run go.uber.org/mock/mockgen -source=./invalidator.go -destination=./mocks/invalidator_mock.go -package=mocks

import (
	"context"
	"rentdesk/infras/kafka"
	"rentdesk/infras/live"
	"rentdesk/shared"
	"rentdesk/shared/cache"
	"rentdesk/shared/constant"
	"rentdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// CacheDetail prefixes every aggregation-view entry: booking-detail:<query>:<bookingID>.
	CacheDetail = "booking-detail"

	CacheBookingGet   = "booking:get"
	CacheBookingGets  = "booking:gets"
	CacheBookingCount = "booking:count"
	CacheInvoiceList  = "invoice:list"
	CacheFineList     = "fine:list"
	CachePaymentList  = "payment:list"
	CacheAccessToken  = "accesstoken:get"
)

type Invalidator interface {
	// Booking drops every cached read tied to bookingID and announces it.
	Booking(ctx context.Context, bookingID string)
	// Listen forwards invalidations published by other instances to local sessions.
	Listen(ctx context.Context)
}

type invalidatorImpl struct {
	cache    cache.RedisCache
	kafka    kafka.Client
	hub      live.Hub
	instance string
}

func New(c cache.RedisCache, k kafka.Client, hub live.Hub) Invalidator {
	return &invalidatorImpl{
		cache:    c,
		kafka:    k,
		hub:      hub,
		instance: uuid.NewString(),
	}
}

// DetailKey is the cache key of one aggregation-view query.
func DetailKey(query, bookingID string) string {
	return shared.BuildCacheKey(CacheDetail, query, bookingID)
}

func (i *invalidatorImpl) Booking(ctx context.Context, bookingID string) {
	ctx = context.WithoutCancel(ctx)
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	i.clear(ctx, bookingID)

	event := kafka.Event{
		Type:       kafka.EventInvalidated,
		BookingID:  bookingID,
		Actor:      actor,
		OccurredAt: timezone.Now(),
		Origin:     i.instance,
	}

	i.hub.Broadcast(live.Notice{Type: event.Type, BookingID: bookingID, At: event.OccurredAt})

	if err := i.kafka.Publish(ctx, event); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to publish invalidation")
	}
}

func (i *invalidatorImpl) clear(ctx context.Context, bookingID string) {
	if err := i.cache.Clear(ctx, shared.BuildCacheKey(CacheDetail, constant.Asterix, bookingID)); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to clear booking detail cache")
	}

	if err := i.cache.Delete(ctx, shared.BuildCacheKey(CacheBookingGet, bookingID)); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to delete booking cache")
	}

	for _, prefix := range []string{CacheBookingGets, CacheBookingCount} {
		shared.InvalidateCaches(ctx, i.cache, prefix)
	}

	for _, prefix := range []string{CacheInvoiceList, CacheFineList, CachePaymentList, CacheAccessToken} {
		shared.InvalidateCaches(ctx, i.cache, shared.BuildCacheKey(prefix, bookingID))
	}
}

func (i *invalidatorImpl) Listen(ctx context.Context) {
	i.kafka.Consume(ctx, func(_ context.Context, event kafka.Event) {
		if event.Origin == i.instance || event.BookingID == "" {
			return
		}

		i.hub.Broadcast(live.Notice{Type: event.Type, BookingID: event.BookingID, At: event.OccurredAt})
	})
}

package invalidator_test

import (
	"context"
	"net/http"
	"rentdesk/infras/kafka"
	kafkaMocks "rentdesk/infras/kafka/mocks"
	"rentdesk/infras/live"
	cacheMocks "rentdesk/shared/cache/mocks"
	"rentdesk/shared/constant"
	"rentdesk/shared/invalidator"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type recordingHub struct {
	mu      sync.Mutex
	notices []live.Notice
}

func (h *recordingHub) Broadcast(notice live.Notice) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.notices = append(h.notices, notice)
}

func (h *recordingHub) ServeHTTP(http.ResponseWriter, *http.Request) {}

func (h *recordingHub) Subscribers() int { return 0 }

func TestDetailKey(t *testing.T) {
	assert.Equal(t, "booking-detail:payments:b-1", invalidator.DetailKey("payments", "b-1"))
}

func TestBookingClearsCachesAndAnnounces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	hub := &recordingHub{}

	inv := invalidator.New(mockCache, mockKafka, hub)

	mockCache.EXPECT().Clear(gomock.Any(), "booking-detail:*:b-1").Return(nil)
	mockCache.EXPECT().Delete(gomock.Any(), "booking:get:b-1").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "booking:gets*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "booking:count*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "invoice:list:b-1*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "fine:list:b-1*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "payment:list:b-1*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "accesstoken:get:b-1*").Return(nil)

	mockKafka.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, events ...kafka.Event) error {
		assert.Len(t, events, 1)
		assert.Equal(t, kafka.EventInvalidated, events[0].Type)
		assert.Equal(t, "b-1", events[0].BookingID)
		assert.Equal(t, "operator-1", events[0].Actor)
		assert.NotEmpty(t, events[0].Origin)

		return nil
	})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "operator-1")
	inv.Booking(ctx, "b-1")

	assert.Len(t, hub.notices, 1)
	assert.Equal(t, "b-1", hub.notices[0].BookingID)
}

func TestListenSkipsOwnEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	hub := &recordingHub{}

	inv := invalidator.New(mockCache, mockKafka, hub)

	var ownOrigin string

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, events ...kafka.Event) error {
		ownOrigin = events[0].Origin

		return nil
	})

	inv.Booking(context.Background(), "b-1")

	mockKafka.EXPECT().Consume(gomock.Any(), gomock.Any()).Do(func(ctx context.Context, handler func(context.Context, kafka.Event)) {
		handler(ctx, kafka.Event{Type: kafka.EventInvalidated, BookingID: "b-1", Origin: ownOrigin})
		handler(ctx, kafka.Event{Type: kafka.EventInvalidated, BookingID: "b-2", Origin: "other-instance"})
		handler(ctx, kafka.Event{Type: kafka.EventInvalidated, Origin: "other-instance"})
	})

	inv.Listen(context.Background())

	assert.Len(t, hub.notices, 2)
	assert.Equal(t, "b-2", hub.notices[1].BookingID)
}

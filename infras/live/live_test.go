package live_test

import (
	"context"
	"net/http/httptest"
	"net/http"
	"rentdesk/config"
	"rentdesk/infras/jwt"
	jwtMocks "rentdesk/infras/jwt/mocks"
	"rentdesk/infras/live"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const consoleToken = "console-token"

func newHub(t *testing.T) live.Hub {
	t.Helper()

	tokens := jwtMocks.NewMockJWT(gomock.NewController(t))
	tokens.EXPECT().ValidateToken(gomock.Any(), consoleToken).
		Return(&jwt.Claims{UserID: "op-1", Email: "op@rentdesk.test"}, nil).AnyTimes()
	tokens.EXPECT().ValidateToken(gomock.Any(), gomock.Not(consoleToken)).
		Return(nil, jwt.ErrInvalidToken).AnyTimes()

	return live.New(&config.Config{}, tokens)
}

func dial(t *testing.T, ctx context.Context, serverURL, query string) *websocket.Conn {
	t.Helper()

	separator := "?"
	if strings.HasPrefix(query, "?") {
		separator = "&"
	}

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(serverURL, "http")+query+separator+"token="+consoleToken, nil)
	require.NoError(t, err)

	return conn
}

func waitForSubscribers(t *testing.T, hub live.Hub, n int) {
	t.Helper()

	require.Eventually(t, func() bool { return hub.Subscribers() == n }, time.Second, 5*time.Millisecond)
}

func TestBroadcastFiltersByBooking(t *testing.T) {
	hub := newHub(t)
	server := httptest.NewServer(hub)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	all := dial(t, ctx, server.URL, "")
	defer all.CloseNow()

	scoped := dial(t, ctx, server.URL, "?booking_id=b-2")
	defer scoped.CloseNow()

	waitForSubscribers(t, hub, 2)

	hub.Broadcast(live.Notice{Type: "booking.invalidated", BookingID: "b-1"})
	hub.Broadcast(live.Notice{Type: "booking.invalidated", BookingID: "b-2"})

	var first, second, scopedNotice live.Notice

	require.NoError(t, wsjson.Read(ctx, all, &first))
	require.NoError(t, wsjson.Read(ctx, all, &second))
	require.NoError(t, wsjson.Read(ctx, scoped, &scopedNotice))

	assert.Equal(t, "b-1", first.BookingID)
	assert.Equal(t, "b-2", second.BookingID)
	assert.Equal(t, "b-2", scopedNotice.BookingID)
}

func TestSubscriberRemovedOnClose(t *testing.T) {
	hub := newHub(t)
	server := httptest.NewServer(hub)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	conn := dial(t, ctx, server.URL, "")
	waitForSubscribers(t, hub, 1)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, "bye"))
	waitForSubscribers(t, hub, 0)
}

func TestHandshakeRequiresAccessToken(t *testing.T) {
	hub := newHub(t)
	server := httptest.NewServer(hub)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	base := "ws" + strings.TrimPrefix(server.URL, "http")

	for name, query := range map[string]string{
		"missing": "",
		"forged":  "?token=forged",
	} {
		t.Run(name, func(t *testing.T) {
			_, resp, err := websocket.Dial(ctx, base+query, nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}

	assert.Zero(t, hub.Subscribers())
}

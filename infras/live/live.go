// Package live pushes booking invalidations to connected console sessions so
// an open detail view knows to refetch.
package live

import (
	"context"
	"net/http"
	"rentdesk/config"
	"rentdesk/infras/jwt"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog/log"
)

const (
	subscriberBuffer = 16
	writeTimeout     = 5 * time.Second
	queryBookingID   = "booking_id"
	queryToken       = "token"
)

type Notice struct {
	Type      string    `json:"type"`
	BookingID string    `json:"booking_id"`
	At        time.Time `json:"at"`
}

type Hub interface {
	Broadcast(notice Notice)
	ServeHTTP(w http.ResponseWriter, r *http.Request)
	Subscribers() int
}

type subscriber struct {
	bookingID string
	notices   chan Notice
}

type hubImpl struct {
	mu          sync.RWMutex
	subscribers map[*subscriber]struct{}
	origins     []string
	tokens      jwt.JWT
}

func New(cfg *config.Config, tokens jwt.JWT) Hub {
	origins := cfg.App.CORS.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &hubImpl{
		subscribers: map[*subscriber]struct{}{},
		origins:     origins,
		tokens:      tokens,
	}
}

// Broadcast never blocks; a subscriber whose buffer is full misses the notice.
func (h *hubImpl) Broadcast(notice Notice) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers {
		if sub.bookingID != "" && sub.bookingID != notice.BookingID {
			continue
		}

		select {
		case sub.notices <- notice:
		default:
			log.Warn().Str("booking_id", notice.BookingID).Msg("live subscriber is slow, dropping notice")
		}
	}
}

func (h *hubImpl) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}

// ServeHTTP upgrades a console session. Browsers cannot set headers on a
// websocket handshake, so the access token travels in ?token= and is checked
// before the upgrade.
func (h *hubImpl) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get(queryToken)
	if token == "" {
		http.Error(w, "missing access token", http.StatusUnauthorized)

		return
	}

	claims, err := h.tokens.ValidateToken(r.Context(), token)
	if err != nil {
		log.Warn().Err(err).Msg("rejected live connection")
		http.Error(w, "invalid access token", http.StatusUnauthorized)

		return
	}

	log.Debug().Str("user_id", claims.UserID).Msg("live connection accepted")

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to accept live connection")

		return
	}
	defer conn.CloseNow()

	sub := h.subscribe(r.URL.Query().Get(queryBookingID))
	defer h.unsubscribe(sub)

	ctx := conn.CloseRead(r.Context())

	for {
		select {
		case <-ctx.Done():
			return
		case notice := <-sub.notices:
			if err := h.write(ctx, conn, notice); err != nil {
				log.Debug().Err(err).Msg("live connection closed")

				return
			}
		}
	}
}

func (h *hubImpl) write(ctx context.Context, conn *websocket.Conn, notice Notice) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	return wsjson.Write(ctx, conn, notice) //nolint:wrapcheck
}

func (h *hubImpl) subscribe(bookingID string) *subscriber {
	sub := &subscriber{bookingID: bookingID, notices: make(chan Notice, subscriberBuffer)}

	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

func (h *hubImpl) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	delete(h.subscribers, sub)
	h.mu.Unlock()
}

// Package payload builds synthetic webhook bodies for manual integration checks.
// Builders return plain maps so user overrides can replace or add any field.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventSucceeded = "succeeded"
	EventFailed    = "failed"
	EventExpired   = "expired"

	sessionPrefix = "cs_test_"
	pathSeparator = "."
)

var ErrInvalidOverride = errors.New("override must look like path=value")

type CMSBooking struct {
	ReferenceCode      string
	ClientName         string
	ClientEmail        string
	ClientPhone        string
	VehicleMake        string
	VehicleModel       string
	DeliveryLocation   string
	DeliveryAt         time.Time
	CollectionLocation string
	CollectionAt       time.Time
	RentalPrice        decimal.Decimal
	SecurityDeposit    decimal.Decimal
	Currency           string
}

type PaymentEvent struct {
	Event         string
	SessionID     string
	TransactionID string
	BookingID     string
	PaymentID     string
	Amount        decimal.Decimal
	Currency      string
}

// BuildCMSBooking shapes a booking as the CMS form submits it.
func BuildCMSBooking(b CMSBooking, now time.Time) map[string]any {
	if b.ReferenceCode == "" {
		b.ReferenceCode = "TEST-" + strings.ToUpper(uuid.NewString()[:8])
	}

	if b.DeliveryAt.IsZero() {
		b.DeliveryAt = now.Add(7 * 24 * time.Hour).Truncate(time.Hour)
	}

	if b.CollectionAt.IsZero() {
		b.CollectionAt = b.DeliveryAt.Add(3 * 24 * time.Hour)
	}

	return map[string]any{
		"event":  "booking.created",
		"source": "cms",
		"test":   true,
		"booking": map[string]any{
			"reference_code":      b.ReferenceCode,
			"client_name":         b.ClientName,
			"client_email":        b.ClientEmail,
			"client_phone":        b.ClientPhone,
			"vehicle_make":        b.VehicleMake,
			"vehicle_model":       b.VehicleModel,
			"delivery_location":   b.DeliveryLocation,
			"delivery_at":         b.DeliveryAt.Format(time.RFC3339),
			"collection_location": b.CollectionLocation,
			"collection_at":       b.CollectionAt.Format(time.RFC3339),
			"rental_price_gross":  b.RentalPrice.StringFixed(2),
			"security_deposit":    b.SecurityDeposit.StringFixed(2),
			"currency":            b.Currency,
		},
		"sent_at": now.Format(time.RFC3339),
	}
}

// BuildPaymentEvent shapes a payment-provider checkout notification.
// A missing session id is generated; the transaction id is sent only when given.
func BuildPaymentEvent(p PaymentEvent, now time.Time) map[string]any {
	if p.SessionID == "" {
		p.SessionID = sessionPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	data := map[string]any{
		"session_id": p.SessionID,
		"status":     p.Event,
		"booking_id": p.BookingID,
		"payment_id": p.PaymentID,
		"amount":     p.Amount.StringFixed(2),
		"currency":   p.Currency,
	}

	if p.TransactionID != "" {
		data["transaction_id"] = p.TransactionID
	}

	return map[string]any{
		"id":         "evt_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		"type":       "checkout.session." + p.Event,
		"test":       true,
		"created_at": now.Unix(),
		"data":       data,
	}
}

// Merge copies overrides into base. Nested maps merge key by key, anything else replaces.
func Merge(base, overrides map[string]any) map[string]any {
	for key, value := range overrides {
		nested, ok := value.(map[string]any)
		current, isMap := base[key].(map[string]any)

		if ok && isMap {
			base[key] = Merge(current, nested)

			continue
		}

		base[key] = value
	}

	return base
}

// ParseOverride turns "data.amount=12.5" into {"data": {"amount": 12.5}}.
// Values that parse as JSON keep their type; everything else is a string.
func ParseOverride(expr string) (map[string]any, error) {
	path, raw, found := strings.Cut(expr, "=")
	if !found || strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOverride, expr)
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}

	keys := strings.Split(strings.TrimSpace(path), pathSeparator)
	out := map[string]any{keys[len(keys)-1]: value}

	for i := len(keys) - 2; i >= 0; i-- {
		out = map[string]any{keys[i]: out}
	}

	return out, nil
}

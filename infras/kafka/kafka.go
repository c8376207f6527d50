package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"rentdesk/config"
	"rentdesk/infras/otel"
	"rentdesk/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventPaymentConfirmed = "payment.confirmed"
	EventInvalidated      = "booking.invalidated"
)

// Event is the envelope published for every booking lifecycle change. The
// booking id is the message key so events of one booking stay ordered.
type Event struct {
	Type       string         `json:"type"`
	BookingID  string         `json:"booking_id"`
	Actor      string         `json:"actor,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
	Origin     string         `json:"origin,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
}

func (e Event) ToKafkaMessage() (kafkaGo.Message, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(e.BookingID),
		Value: value,
	}, nil
}

func DecodeEvent(msg kafkaGo.Message) (Event, error) {
	var event Event

	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return Event{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.BookingID == "" {
		event.BookingID = string(msg.Key)
	}

	return event, nil
}

type Client interface {
	Publish(ctx context.Context, events ...Event) error
	Consume(ctx context.Context, handler func(ctx context.Context, event Event))
}

type kafkaClientImpl struct {
	config *config.Config
	otel   otel.Otel
	dialer *kafkaGo.Dialer
	writer *kafkaGo.Writer
}

// New returns a no-op client when kafka is disabled so publishers need no branching.
func New(config *config.Config, ot otel.Otel) Client {
	if !config.Kafka.Enable || len(config.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, booking events will not be published")

		return disabled{}
	}

	mechanism := plain.Mechanism{
		Username: config.Kafka.SASL.Username,
		Password: config.Kafka.SASL.Password,
	}

	dialer := &kafkaGo.Dialer{
		DualStack:     true,
		SASLMechanism: mechanism,
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(config.Kafka.Brokers...),
		Topic:                  config.Kafka.Topic,
		Balancer:               &kafkaGo.Hash{},
		Transport:              &kafkaGo.Transport{SASL: mechanism},
		AllowAutoTopicCreation: true,
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Str("topic", config.Kafka.Topic).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		config: config,
		otel:   ot,
		dialer: dialer,
		writer: writer,
	}
}

func (k *kafkaClientImpl) Publish(ctx context.Context, events ...Event) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	msgs := make([]kafkaGo.Message, 0, len(events))

	for _, event := range events {
		msg, err := event.ToKafkaMessage()
		if err != nil {
			return err
		}

		msgs = append(msgs, msg)
	}

	if err = k.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", k.config.Kafka.Topic).Msg("Failed to publish booking events")

		return fmt.Errorf("failed to publish booking events: %w", err)
	}

	return nil
}

// Consume blocks until ctx is done. Each instance uses its own consumer group
// when ConsumerGroup is empty so every instance sees every event.
func (k *kafkaClientImpl) Consume(ctx context.Context, handler func(ctx context.Context, event Event)) {
	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       k.config.Kafka.Topic,
		GroupID:     k.config.Kafka.ConsumerGroup,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka reader")
		}
	}()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				log.Info().Msg("Kafka consumer stopped")

				return
			}

			log.Error().Err(err).Msg("Failed to read booking event")

			continue
		}

		event, err := DecodeEvent(msg)
		if err != nil {
			log.Error().Err(err).Str("key", string(msg.Key)).Msg("Skipping malformed booking event")

			continue
		}

		handler(ctx, event)
	}
}

type disabled struct{}

func (disabled) Publish(_ context.Context, _ ...Event) error { return nil }

func (disabled) Consume(ctx context.Context, _ func(ctx context.Context, event Event)) {
	<-ctx.Done()
}

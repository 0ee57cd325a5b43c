package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"adscape/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	dialTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	retryBackoff = time.Second
)

// Message is published with Value encoded as JSON. Messages sharing a Key land on the same partition.
type Message struct {
	Key   string
	Value any
}

func (m Message) encode(topic string) (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to encode message %s: %w", m.Key, err)
	}

	return kafkaGo.Message{
		Topic: topic,
		Key:   []byte(m.Key),
		Value: value,
	}, nil
}

// Decode reads a JSON message body into T.
func Decode[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to decode message from %s: %w", msg.Topic, err)
	}

	return value, nil
}

// Handler processes one message. The offset is committed once it returns.
type Handler func(ctx context.Context, message kafkaGo.Message)

type Client interface {
	Publish(ctx context.Context, topic string, messages ...Message) error
	// Consume blocks until ctx is done. Messages of a partition are handled one at a time, in order.
	Consume(ctx context.Context, consumerGroup, topic string, handler Handler)
	Close() error
}

type kafkaClientImpl struct {
	config *config.Config
	dialer *kafkaGo.Dialer
	writer *kafkaGo.Writer
}

func New(config *config.Config) Client {
	var mechanism sasl.Mechanism

	if config.Kafka.SASL.Username != "" {
		mechanism = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(config.Kafka.Brokers...),
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireOne,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
		Transport:              &kafkaGo.Transport{SASL: mechanism, DialTimeout: dialTimeout},
	}

	if config.Kafka.Enable {
		log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka client initialized")
	}

	return &kafkaClientImpl{
		config: config,
		dialer: &kafkaGo.Dialer{Timeout: dialTimeout, DualStack: true, SASLMechanism: mechanism},
		writer: writer,
	}
}

func (k *kafkaClientImpl) Publish(ctx context.Context, topic string, messages ...Message) error {
	if topic == "" {
		return errors.New("publishing without a topic")
	}

	batch := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.encode(topic)
		if err != nil {
			return err
		}

		batch = append(batch, msg)
	}

	if err := k.writer.WriteMessages(ctx, batch...); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	log.Debug().Str("topic", topic).Int("count", len(batch)).Msg("Published messages")

	return nil
}

func (k *kafkaClientImpl) Consume(ctx context.Context, consumerGroup, topic string, handler Handler) {
	groupID := consumerGroup
	if groupID == "" {
		groupID = k.config.Kafka.ConsumerGroup
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     groupID,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to close Kafka reader")
		}
	}()

	for {
		msg, err := reader.FetchMessage(ctx)
		if ctx.Err() != nil {
			log.Info().Str("topic", topic).Msg("Consumer stopped")

			return
		}

		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to fetch message from Kafka")
			time.Sleep(retryBackoff)

			continue
		}

		handler(ctx, msg)

		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Str("topic", topic).Int64("offset", msg.Offset).Msg("Failed to commit offset")
		}
	}
}

// Close flushes pending writes.
func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}

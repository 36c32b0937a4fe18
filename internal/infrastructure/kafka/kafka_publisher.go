package publisher

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

const writeTimeout = 10 * time.Second

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish writes msgs to topic. Messages sharing a key land on the same
// partition, so per-participant ordering is preserved.
func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	km := make([]kafka.Message, 0, len(msgs))
	now := time.Now()
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Topic: topic,
			Key:   m.Key,
			Value: m.Value,
			Time:  now,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := k.writer.WriteMessages(ctx, km...); err != nil {
		return fmt.Errorf("failed to write %d messages to %s: %w", len(km), topic, err)
	}
	return nil
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}

// NopPublisher drops every message. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(string, ...domain.Message) error { return nil }

func (NopPublisher) Close() error { return nil }

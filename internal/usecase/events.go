package usecase

import (
	"encoding/json"
	"strconv"

	"github.com/LavaJover/cognit-service/internal/domain"
	publisher "github.com/LavaJover/cognit-service/internal/infrastructure/kafka"
	"go.uber.org/zap"
)

// EventSink publishes domain events after the owning transaction committed.
// Publication is fire-and-forget: failures are logged and never reach the
// caller.
type EventSink struct {
	publisher   domain.PublisherPort
	topicPrefix string
	log         *zap.Logger
}

func NewEventSink(pub domain.PublisherPort, topicPrefix string, log *zap.Logger) *EventSink {
	return &EventSink{publisher: pub, topicPrefix: topicPrefix, log: log}
}

func (s *EventSink) emit(topic string, participantKey int64, event interface{}) {
	if s == nil || s.publisher == nil {
		return
	}
	go func() {
		payload, err := json.Marshal(event)
		if err != nil {
			s.log.Error("failed to marshal event", zap.String("topic", topic), zap.Error(err))
			return
		}
		fullTopic := publisher.Topic(s.topicPrefix, topic)
		msg := domain.Message{
			Key:   []byte(strconv.FormatInt(participantKey, 10)),
			Value: payload,
		}
		if err := s.publisher.Publish(fullTopic, msg); err != nil {
			s.log.Error("failed to publish event",
				zap.String("topic", fullTopic),
				zap.Int64("participant_key", participantKey),
				zap.Error(err),
			)
		}
	}()
}

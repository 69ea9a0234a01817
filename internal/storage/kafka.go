package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"catering-platform/internal/domain"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.BookingID),
		Value: payload,
	})
}

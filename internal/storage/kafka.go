package storage

import (
	"context"
	"encoding/json"

	"tableside/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error {
	payload, _ := json.Marshal(evt)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.OrderID),
		Value: payload,
	})
}

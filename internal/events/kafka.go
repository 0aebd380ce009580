// Package events publishes order events to a message broker.
package events

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Shopify/sarama"
	"github.com/nikolayk812/swiftcart/internal/domain"
)

const (
	headerEventID   = "event_id"
	headerEventType = "event_type"
)

// KafkaPublisher sends order events to one topic. Messages are keyed by order ID, so events of one
// order land on the same partition in the order they were written.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("brokers are empty")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic is empty")
	}

	producer, err := sarama.NewSyncProducer(brokers, NewKafkaConfig())
	if err != nil {
		return nil, fmt.Errorf("sarama.NewSyncProducer: %w", err)
	}

	return NewKafkaPublisherFromProducer(producer, topic), nil
}

func NewKafkaPublisherFromProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
	}
}

// NewKafkaConfig returns the producer settings: every send waits for all in-sync replicas.
func NewKafkaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Version = sarama.V2_1_0_0
	return cfg
}

func (p *KafkaPublisher) Publish(ctx context.Context, events []domain.OrderEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := p.producer.SendMessages(toKafkaMessages(events, p.topic)); err != nil {
		return fmt.Errorf("producer.SendMessages: %w", err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

func toKafkaMessages(events []domain.OrderEvent, topic string) []*sarama.ProducerMessage {
	messages := make([]*sarama.ProducerMessage, 0, len(events))
	for _, event := range events {
		messages = append(messages, &sarama.ProducerMessage{
			Topic: topic,
			Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
			Value: sarama.ByteEncoder(event.Payload),
			Headers: []sarama.RecordHeader{
				{Key: []byte(headerEventID), Value: []byte(event.ID.String())},
				{Key: []byte(headerEventType), Value: []byte(event.Type)},
			},
		})
	}
	return messages
}

package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

var _ domain.PublisherPort = (*KafkaPublisher)(nil)

type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
		topic: topic,
	}
}

func (k *KafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	km := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Topic: topic,
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
		})
	}
	return k.writer.WriteMessages(ctx, km...)
}

// PublishRequisite sends the event keyed by trader so one trader's changes
// stay ordered within a partition.
func (k *KafkaPublisher) PublishRequisite(event RequisiteEvent) error {
	msg, err := EncodeRequisiteEvent(event)
	if err != nil {
		return err
	}
	return k.Publish(k.topic, msg)
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}

func EncodeRequisiteEvent(event RequisiteEvent) (domain.Message, error) {
	v, err := json.Marshal(event)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{Key: []byte(event.TraderID), Value: v}, nil
}

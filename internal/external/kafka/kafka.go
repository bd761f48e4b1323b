package cards

import (
	"context"

	"github.com/glkeru/loyalty/cards/internal/config"
	"github.com/segmentio/kafka-go"
)

// Топики кассовой системы
const (
	TopicPurchases = "purchases"
	TopicReturns   = "returns"
)

type KafkaReader struct {
	reader *kafka.Reader
}

func NewReader(cfg config.Kafka, topic string) *KafkaReader {
	kafkaconfig := kafka.ReaderConfig{
		Brokers: []string{cfg.Broker()},
		Topic:   topic,
		GroupID: cfg.Group + "_" + topic,
	}
	return &KafkaReader{kafka.NewReader(kafkaconfig)}
}

func (k *KafkaReader) GetNewMessage(ctx context.Context) (string, error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return "", err
	}
	return string(msg.Value), nil
}

func (k *KafkaReader) Close() error {
	return k.reader.Close()
}

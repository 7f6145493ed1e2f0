package venues

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

const EventLayoutSaved = "LAYOUT_SAVED"

// LayoutEvent is published whenever a layout document is persisted.
type LayoutEvent struct {
	EventType        string    `json:"event_type"`
	LayoutID         string    `json:"layout_id"`
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	Version          int       `json:"version"`
	TotalCapacity    int       `json:"total_capacity"`
	SellableCapacity int       `json:"sellable_capacity"`
	StandCount       int       `json:"stand_count"`
	SavedAt          time.Time `json:"saved_at"`
}

// Publisher announces layout changes to downstream consumers.
type Publisher interface {
	PublishLayoutSaved(ctx context.Context, event LayoutEvent) error
	Close() error
}

// KafkaPublisherConfig contains configuration for the Kafka layout publisher
type KafkaPublisherConfig struct {
	Brokers  []string
	Topic    string
	RetryMax int
	Timeout  time.Duration
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher connects a synchronous producer with idempotent writes.
func NewKafkaPublisher(cfg KafkaPublisherConfig) (Publisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = cfg.RetryMax
	saramaConfig.Producer.Timeout = cfg.Timeout
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Events for one layout stay ordered on one partition
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("📤 Kafka layout publisher created for topic %s", cfg.Topic)
	return newKafkaPublisher(producer, cfg.Topic), nil
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string) *kafkaPublisher {
	return &kafkaPublisher{producer: producer, topic: topic}
}

func (k *kafkaPublisher) PublishLayoutSaved(ctx context.Context, event LayoutEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal layout event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(event.LayoutID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.EventType)},
			{Key: []byte("version"), Value: []byte(fmt.Sprintf("%d", event.Version))},
		},
		Timestamp: event.SavedAt,
	}

	partition, offset, err := k.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send layout event to Kafka: %w", err)
	}

	log.Printf("📤 Layout event published - Topic: %s, Partition: %d, Offset: %d, Layout: %s, Version: %d",
		k.topic, partition, offset, event.LayoutID, event.Version)
	return nil
}

func (k *kafkaPublisher) Close() error {
	if err := k.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher is used when Kafka is disabled.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishLayoutSaved(context.Context, LayoutEvent) error { return nil }

func (noopPublisher) Close() error { return nil }

package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/metrics"
)

// SinkedEvents are the event types mirrored to Kafka
var SinkedEvents = []event.Type{
	domain.EventTypeSpinCompleted,
	domain.EventTypeJackpotWon,
	domain.EventTypeItemBought,
	domain.EventTypeEffectActivated,
	domain.EventTypePlayerRegistered,
	domain.EventTypeDailyClaimed,
	domain.EventTypeTransferCompleted,
}

// Sink mirrors domain events onto a Kafka topic for downstream consumers
type Sink struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducerConfig returns the producer settings the sink expects
func NewProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Compression = sarama.CompressionSnappy
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.Timeout = 5 * time.Second
	return cfg
}

// NewSink dials brokers and creates a sink for topic
func NewSink(brokers []string, topic string) (*Sink, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf(ErrMsgNewProducer, err)
	}
	return NewSinkWithProducer(producer, topic), nil
}

// NewSinkWithProducer wraps an existing producer
func NewSinkWithProducer(producer sarama.SyncProducer, topic string) *Sink {
	return &Sink{producer: producer, topic: topic}
}

// Register subscribes the sink to every mirrored event type
func (s *Sink) Register(bus event.Bus) {
	for _, t := range SinkedEvents {
		bus.Subscribe(t, s.HandleEvent)
	}
	logger.Info(LogMsgSinkStarted, "topic", s.topic)
}

// partitionKey keeps one player's events on one partition
type partitionKey struct {
	PlayerID string `json:"player_id"`
	SenderID string `json:"sender_id"`
}

// HandleEvent publishes evt as JSON. Errors are returned so a resilient
// publisher can retry.
func (s *Sink) HandleEvent(ctx context.Context, evt event.Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf(ErrMsgMarshal, evt.Type, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte(HeaderEventType), Value: []byte(evt.Type)},
			{Key: []byte(HeaderEventVersion), Value: []byte(evt.Version)},
		},
	}
	if evt.RequestID != "" {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{Key: []byte(HeaderRequestID), Value: []byte(evt.RequestID)})
	}
	if k, err := event.DecodePayload[partitionKey](evt.Payload); err == nil {
		key := k.PlayerID
		if key == "" {
			key = k.SenderID
		}
		if key != "" {
			msg.Key = sarama.StringEncoder(key)
		}
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		metrics.KafkaPublishErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Error(LogMsgPublishFailed, "type", evt.Type, "error", err)
		return fmt.Errorf(ErrMsgSend, evt.Type, err)
	}

	logger.FromContext(ctx).Debug(LogMsgEventPublished, "type", evt.Type, "partition", partition, "offset", offset)
	return nil
}

// Close flushes and closes the producer
func (s *Sink) Close() error {
	return s.producer.Close()
}

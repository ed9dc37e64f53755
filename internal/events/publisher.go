// Package events publishes an audit trail of admin writes to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	kafka "github.com/segmentio/kafka-go"
)

// Event describes one admin write.
type Event struct {
	Resource string    `json:"resource"` // coupon, product, order, user
	Action   string    `json:"action"`   // created, updated, deleted, ...
	ID       string    `json:"id"`
	ActorID  string    `json:"actor_id,omitempty"`
	At       time.Time `json:"at"`
	Data     any       `json:"data,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	w messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{w: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}}
}

// Publish keys the message by resource id so events for one record keep
// their order within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(e.Resource + ":" + e.ID),
		Value: body,
		Headers: []kafka.Header{
			{Key: "resource", Value: []byte(e.Resource)},
			{Key: "action", Value: []byte(e.Action)},
		},
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("[kafka] write %s %s: %w", e.Resource, e.Action, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

// Nop drops every event. Used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// New returns a Kafka publisher, or Nop when brokers is empty.
func New(brokers []string, topic string) Publisher {
	if len(brokers) == 0 {
		log.Printf("[kafka] no brokers configured, audit events disabled")
		return Nop{}
	}
	return NewKafkaPublisher(brokers, topic)
}

package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	kafka "github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisherPublish(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{w: w}

	err := p.Publish(context.Background(), Event{Resource: "coupon", Action: "created", ID: "c1", ActorID: "u1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("wrote %d messages", len(w.msgs))
	}

	msg := w.msgs[0]
	if string(msg.Key) != "coupon:c1" {
		t.Fatalf("key = %s", msg.Key)
	}
	if len(msg.Headers) != 2 || string(msg.Headers[1].Value) != "created" {
		t.Fatalf("headers = %+v", msg.Headers)
	}

	var got Event
	if err := json.Unmarshal(msg.Value, &got); err != nil {
		t.Fatal(err)
	}
	if got.ActorID != "u1" || got.At.IsZero() {
		t.Fatalf("unexpected event %+v", got)
	}

	if err := p.Close(); err != nil || !w.closed {
		t.Fatal("close not forwarded")
	}
}

func TestKafkaPublisherWriteError(t *testing.T) {
	p := &KafkaPublisher{w: &fakeWriter{err: errors.New("broker down")}}
	if err := p.Publish(context.Background(), Event{Resource: "order", Action: "status_changed", ID: "o1"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewWithoutBrokersIsNop(t *testing.T) {
	p := New(nil, "admin-events")
	if _, ok := p.(Nop); !ok {
		t.Fatalf("got %T", p)
	}
	if err := p.Publish(context.Background(), Event{}); err != nil {
		t.Fatal(err)
	}
}

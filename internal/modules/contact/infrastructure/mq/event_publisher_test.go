package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ContactBook/internal/modules/contact/domain/entity"
	"ContactBook/internal/modules/contact/domain/event"
)

type fakeProducer struct {
	recs   []Record
	err    error
	closed bool
}

func (f *fakeProducer) Send(_ context.Context, rec Record) (Receipt, error) {
	f.recs = append(f.recs, rec)
	return Receipt{Topic: rec.Topic, Offset: int64(len(f.recs))}, f.err
}

func (f *fakeProducer) Close() error {
	f.closed = true
	return nil
}

func TestEventPublisherEncodesEvent(t *testing.T) {
	fp := &fakeProducer{}
	p := NewEventPublisher(fp, "contacts")

	evt := event.ContactEvent{
		EventId:    "e-1",
		Type:       event.TypeContactAdded,
		Contact:    entity.NewContact("John Doe", "john.doe@example.com", "1234567890"),
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := p.Publish(context.Background(), evt); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if len(fp.recs) != 1 {
		t.Fatalf("got %d records", len(fp.recs))
	}
	msg := fp.recs[0]
	if msg.Topic != "contacts" || string(msg.Key) != "1234567890" {
		t.Errorf("topic/key = %q/%q", msg.Topic, msg.Key)
	}
	want := []Header{
		{Key: "event_id", Value: "e-1"},
		{Key: "event_type", Value: "contact.added"},
		{Key: "content_type", Value: "application/json"},
	}
	if len(msg.Headers) != len(want) {
		t.Fatalf("headers = %v", msg.Headers)
	}
	for i, h := range want {
		if msg.Headers[i] != h {
			t.Errorf("header[%d] = %+v, want %+v", i, msg.Headers[i], h)
		}
	}

	var decoded event.ContactEvent
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Contact != evt.Contact || !decoded.OccurredAt.Equal(evt.OccurredAt) {
		t.Errorf("decoded = %+v", decoded)
	}

	if err := p.Close(); err != nil || !fp.closed {
		t.Error("Close() was not forwarded")
	}
}

func TestEventPublisherReturnsError(t *testing.T) {
	fp := &fakeProducer{err: errors.New("broker down")}
	if err := NewEventPublisher(fp, "contacts").Publish(context.Background(), event.ContactEvent{}); err == nil {
		t.Fatal("expected error")
	}
}

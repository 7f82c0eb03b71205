package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"ContactBook/internal/modules/contact/domain/event"
)

// EventPublisher 把 ContactEvent 编码成 JSON 写入 topic，key 为手机号
type EventPublisher struct {
	producer Producer
	topic    string
}

func NewEventPublisher(producer Producer, topic string) *EventPublisher {
	return &EventPublisher{producer: producer, topic: topic}
}

func (p *EventPublisher) Publish(ctx context.Context, evt event.ContactEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", evt.Type, err)
	}
	_, err = p.producer.Send(ctx, Record{
		Topic: p.topic,
		Key:   []byte(evt.Contact.PhoneNumber),
		Value: value,
		Headers: []Header{
			{Key: "event_id", Value: evt.EventId},
			{Key: "event_type", Value: evt.Type},
			{Key: "content_type", Value: "application/json"},
		},
	})
	return err
}

func (p *EventPublisher) Close() error {
	return p.producer.Close()
}

package event

import (
	"context"
	"errors"
	"time"

	"ContactBook/internal/modules/contact/domain/entity"
)

const (
	TypeContactAdded   = "contact.added"
	TypeContactRemoved = "contact.removed"
)

// ContactEvent 通讯录变更通知
type ContactEvent struct {
	EventId    string         `json:"event_id"`
	Type       string         `json:"type"`
	Contact    entity.Contact `json:"contact"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, evt ContactEvent) error
}

// Fanout 依次投递给每个 Publisher，错误合并返回
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, evt ContactEvent) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

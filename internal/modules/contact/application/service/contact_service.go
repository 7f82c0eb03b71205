package service

import (
	"context"
	"time"

	"ContactBook/internal/modules/contact/domain/entity"
	"ContactBook/internal/modules/contact/domain/event"
	"ContactBook/internal/modules/contact/domain/repository"
	"ContactBook/pkg/util"
	"ContactBook/pkg/zlog"

	"go.uber.org/zap"
)

// ContactService 把原始字段组装成 Contact 后交给仓储，仓储错误原样返回
type ContactService interface {
	AddContact(ctx context.Context, name, email, phoneNumber string) error
	GetContacts(ctx context.Context) []entity.Contact
	GetContactsByName(ctx context.Context, name string) ([]entity.Contact, error)
	GetContactsByPhoneNumber(ctx context.Context, phoneNumber string) ([]entity.Contact, error)
	RemoveContactByPhoneNumber(ctx context.Context, phoneNumber string) error
}

type contactServiceImpl struct {
	contactRepo repository.ContactRepository
	publisher   event.Publisher
	now         func() time.Time
}

// NewContactService publisher 可以为 nil
func NewContactService(contactRepo repository.ContactRepository, publisher event.Publisher) ContactService {
	return &contactServiceImpl{
		contactRepo: contactRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *contactServiceImpl) AddContact(ctx context.Context, name, email, phoneNumber string) error {
	contact := entity.NewContact(name, email, phoneNumber)
	if err := s.contactRepo.AddContact(contact); err != nil {
		zlog.Warn("add contact rejected", zap.Error(err), zap.String("phone_number", phoneNumber))
		return err
	}

	zlog.Info("contact added", zap.String("name", name), zap.String("phone_number", phoneNumber))
	s.publish(ctx, event.TypeContactAdded, contact)
	return nil
}

func (s *contactServiceImpl) GetContacts(ctx context.Context) []entity.Contact {
	return s.contactRepo.GetContacts()
}

func (s *contactServiceImpl) GetContactsByName(ctx context.Context, name string) ([]entity.Contact, error) {
	return s.contactRepo.GetContactsByName(name)
}

func (s *contactServiceImpl) GetContactsByPhoneNumber(ctx context.Context, phoneNumber string) ([]entity.Contact, error) {
	return s.contactRepo.GetContactsByPhoneNumber(phoneNumber)
}

func (s *contactServiceImpl) RemoveContactByPhoneNumber(ctx context.Context, phoneNumber string) error {
	// 事件里带仓储实际删掉的那一条
	removed, err := s.contactRepo.RemoveContactByPhoneNumber(phoneNumber)
	if err != nil {
		zlog.Warn("remove contact rejected", zap.Error(err), zap.String("phone_number", phoneNumber))
		return err
	}

	zlog.Info("contact removed", zap.String("name", removed.Name), zap.String("phone_number", phoneNumber))
	s.publish(ctx, event.TypeContactRemoved, removed)
	return nil
}

// publish 失败只记录日志，仓储已经变更，不回滚
func (s *contactServiceImpl) publish(ctx context.Context, typ string, contact entity.Contact) {
	if s.publisher == nil {
		return
	}
	evt := event.ContactEvent{
		EventId:    util.GenerateUUID(),
		Type:       typ,
		Contact:    contact,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		zlog.Error("publish contact event failed", zap.Error(err), zap.String("event_id", evt.EventId), zap.String("type", typ))
	}
}

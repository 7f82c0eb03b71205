package persistence

import (
	"sync"

	"ContactBook/internal/modules/contact/domain/entity"
	"ContactBook/internal/modules/contact/domain/repository"
)

const phoneNumberLength = 10

// memoryContactRepository 按插入顺序保存联系人，读写都在锁内完成
type memoryContactRepository struct {
	mu       sync.RWMutex
	contacts []entity.Contact
}

func NewContactRepository() repository.ContactRepository {
	return &memoryContactRepository{}
}

func (r *memoryContactRepository) AddContact(contact entity.Contact) error {
	if contact.Name == "" {
		return repository.NewValidationError(repository.MsgContactNameEmpty)
	}
	if contact.PhoneNumber == "" {
		return repository.NewValidationError(repository.MsgContactPhoneNumberEmpty)
	}
	if err := validatePhoneNumber(contact.PhoneNumber); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contacts {
		if c.Equal(contact) {
			return repository.NewDuplicateError(repository.MsgContactAlreadyExists)
		}
	}
	r.contacts = append(r.contacts, contact)
	return nil
}

func (r *memoryContactRepository) GetContacts() []entity.Contact {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Contact, len(r.contacts))
	copy(out, r.contacts)
	return out
}

func (r *memoryContactRepository) GetContactsByPhoneNumber(phoneNumber string) ([]entity.Contact, error) {
	if err := validatePhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	return r.filter(func(c entity.Contact) bool { return c.PhoneNumber == phoneNumber }), nil
}

func (r *memoryContactRepository) GetContactsByName(name string) ([]entity.Contact, error) {
	if name == "" {
		return nil, repository.NewValidationError(repository.MsgNameNullOrEmpty)
	}
	return r.filter(func(c entity.Contact) bool { return c.Name == name }), nil
}

// RemoveContactByPhoneNumber 先校验格式，再检查是否存在；
// 不存在时复用 "Invalid phone number" 文案。返回被删除的那一条
func (r *memoryContactRepository) RemoveContactByPhoneNumber(phoneNumber string) (entity.Contact, error) {
	if err := validatePhoneNumber(phoneNumber); err != nil {
		return entity.Contact{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.contacts {
		if c.PhoneNumber == phoneNumber {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return c, nil
		}
	}
	return entity.Contact{}, repository.NewValidationError(repository.MsgInvalidPhoneNumber)
}

func (r *memoryContactRepository) filter(match func(entity.Contact) bool) []entity.Contact {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Contact, 0)
	for _, c := range r.contacts {
		if match(c) {
			out = append(out, c)
		}
	}
	return out
}

// validatePhoneNumber 长度检查在数字检查之前
func validatePhoneNumber(phoneNumber string) error {
	if len(phoneNumber) != phoneNumberLength {
		return repository.NewValidationError(repository.MsgInvalidPhoneNumber)
	}
	for i := 0; i < len(phoneNumber); i++ {
		if phoneNumber[i] < '0' || phoneNumber[i] > '9' {
			return repository.NewValidationError(repository.MsgPhoneNumberNotANumber)
		}
	}
	return nil
}

package repository

import "ContactBook/internal/modules/contact/domain/entity"

// ContactRepository 通讯录仓储。
// 返回的切片都是副本，调用方修改不会影响仓储内部状态。
type ContactRepository interface {
	AddContact(contact entity.Contact) error
	GetContacts() []entity.Contact
	GetContactsByPhoneNumber(phoneNumber string) ([]entity.Contact, error)
	GetContactsByName(name string) ([]entity.Contact, error)
	// RemoveContactByPhoneNumber 删除第一条匹配的联系人并返回它
	RemoveContactByPhoneNumber(phoneNumber string) (entity.Contact, error)
}

package respond

import "ContactBook/internal/modules/contact/domain/entity"

type ContactItem struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func NewContactItems(contacts []entity.Contact) []ContactItem {
	out := make([]ContactItem, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, ContactItem{
			Name:        c.Name,
			Email:       c.Email,
			PhoneNumber: c.PhoneNumber,
		})
	}
	return out
}

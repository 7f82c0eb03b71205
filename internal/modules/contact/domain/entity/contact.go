package entity

// Contact 通讯录条目，没有独立 ID，按值比较
type Contact struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func NewContact(name, email, phoneNumber string) Contact {
	return Contact{Name: name, Email: email, PhoneNumber: phoneNumber}
}

// Equal 三个字段全部相等
func (c Contact) Equal(other Contact) bool {
	return c == other
}

package request

type AddContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type GetContactsByNameRequest struct {
	Name string `json:"name"`
}

// PhoneNumberRequest 按手机号查询或删除
type PhoneNumberRequest struct {
	PhoneNumber string `json:"phone_number"`
}

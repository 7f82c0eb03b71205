package repository

import "errors"

// 错误类别，配合 errors.Is 使用
var (
	ErrValidation = errors.New("validation error")
	ErrDuplicate  = errors.New("duplicate error")
)

// 固定的错误文案，调用方可能直接展示给用户
const (
	MsgContactNameEmpty        = "Contact name is empty"
	MsgContactPhoneNumberEmpty = "Contact phone number is empty"
	MsgContactAlreadyExists    = "Contact already exists"
	MsgInvalidPhoneNumber      = "Invalid phone number"
	MsgPhoneNumberNotANumber   = "Phone number is not a number"
	MsgNameNullOrEmpty         = "Name is null or empty."
)

// ContactError 携带类别和文案的仓储错误
type ContactError struct {
	Kind    error
	Message string
}

func (e *ContactError) Error() string {
	return e.Message
}

func (e *ContactError) Unwrap() error {
	return e.Kind
}

func NewValidationError(msg string) *ContactError {
	return &ContactError{Kind: ErrValidation, Message: msg}
}

func NewDuplicateError(msg string) *ContactError {
	return &ContactError{Kind: ErrDuplicate, Message: msg}
}

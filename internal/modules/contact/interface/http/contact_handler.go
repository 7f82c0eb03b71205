package handler

import (
	"errors"

	contactRequest "ContactBook/internal/modules/contact/application/dto/request"
	contactRespond "ContactBook/internal/modules/contact/application/dto/respond"
	"ContactBook/internal/modules/contact/application/service"
	"ContactBook/internal/modules/contact/domain/repository"
	"ContactBook/pkg/back"
	"ContactBook/pkg/xerr"
	"ContactBook/pkg/zlog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	svc service.ContactService
}

func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) AddContact(c *gin.Context) {
	var req contactRequest.AddContactRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error("add contact bind error", zap.Error(err))
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	err := h.svc.AddContact(c.Request.Context(), req.Name, req.Email, req.PhoneNumber)
	back.Result(c, nil, toCodeError(err))
}

func (h *ContactHandler) GetContacts(c *gin.Context) {
	contacts := h.svc.GetContacts(c.Request.Context())
	back.Success(c, contactRespond.NewContactItems(contacts))
}

func (h *ContactHandler) GetContactsByName(c *gin.Context) {
	var req contactRequest.GetContactsByNameRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error("get contacts by name bind error", zap.Error(err))
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	contacts, err := h.svc.GetContactsByName(c.Request.Context(), req.Name)
	if err != nil {
		back.Result(c, nil, toCodeError(err))
		return
	}
	back.Success(c, contactRespond.NewContactItems(contacts))
}

func (h *ContactHandler) GetContactsByPhoneNumber(c *gin.Context) {
	var req contactRequest.PhoneNumberRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error("get contacts by phone number bind error", zap.Error(err))
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	contacts, err := h.svc.GetContactsByPhoneNumber(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		back.Result(c, nil, toCodeError(err))
		return
	}
	back.Success(c, contactRespond.NewContactItems(contacts))
}

func (h *ContactHandler) RemoveContactByPhoneNumber(c *gin.Context) {
	var req contactRequest.PhoneNumberRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error("remove contact bind error", zap.Error(err))
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	err := h.svc.RemoveContactByPhoneNumber(c.Request.Context(), req.PhoneNumber)
	back.Result(c, nil, toCodeError(err))
}

// toCodeError 仓储错误映射为业务码，文案保持不变
func toCodeError(err error) error {
	if err == nil {
		return nil
	}
	var cerr *repository.ContactError
	if !errors.As(err, &cerr) {
		zlog.Error("contact operation failed", zap.Error(err))
		return xerr.ErrServerError
	}
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return xerr.New(xerr.Conflict, cerr.Message)
	case errors.Is(err, repository.ErrValidation):
		return xerr.New(xerr.BadRequest, cerr.Message)
	}
	return xerr.ErrServerError
}

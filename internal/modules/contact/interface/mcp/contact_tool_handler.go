package mcphandler

import (
	"context"
	"fmt"
	"strings"

	"ContactBook/internal/modules/contact/application/service"
	"ContactBook/internal/modules/contact/domain/entity"
	"ContactBook/pkg/zlog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// ToolAdder *server.MCPServer 满足该接口
type ToolAdder interface {
	AddTool(tool mcp.Tool, handler server.ToolHandlerFunc)
}

// ContactToolHandler 通讯录 MCP 工具
type ContactToolHandler struct {
	contactSvc service.ContactService
}

func NewContactToolHandler(svc service.ContactService) *ContactToolHandler {
	return &ContactToolHandler{contactSvc: svc}
}

// RegisterTools 注册所有通讯录工具
func (h *ContactToolHandler) RegisterTools(s ToolAdder) {
	s.AddTool(mcp.NewTool("contact_list",
		mcp.WithDescription("List every contact in insertion order"),
	), h.handleList)

	s.AddTool(mcp.NewTool("contact_add",
		mcp.WithDescription("Add a contact. The phone number must be exactly 10 digits"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Contact name")),
		mcp.WithString("email", mcp.Description("Contact email")),
		mcp.WithString("phone_number", mcp.Required(), mcp.Description("10 digit phone number")),
	), h.handleAdd)

	s.AddTool(mcp.NewTool("contact_find_by_name",
		mcp.WithDescription("Find contacts whose name matches exactly (case-sensitive)"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Contact name")),
	), h.handleFindByName)

	s.AddTool(mcp.NewTool("contact_find_by_phone",
		mcp.WithDescription("Find contacts by 10 digit phone number"),
		mcp.WithString("phone_number", mcp.Required(), mcp.Description("10 digit phone number")),
	), h.handleFindByPhone)

	s.AddTool(mcp.NewTool("contact_remove_by_phone",
		mcp.WithDescription("Remove the contact with the given 10 digit phone number"),
		mcp.WithString("phone_number", mcp.Required(), mcp.Description("10 digit phone number")),
	), h.handleRemoveByPhone)
}

func (h *ContactToolHandler) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatContacts(h.contactSvc.GetContacts(ctx))), nil
}

func (h *ContactToolHandler) handleAdd(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format, expected map"), nil
	}
	name, email, phone := stringArg(args, "name"), stringArg(args, "email"), stringArg(args, "phone_number")

	if err := h.contactSvc.AddContact(ctx, name, email, phone); err != nil {
		zlog.Warn("contact_add failed", zap.Error(err), zap.String("phone_number", phone))
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Added %s (%s)", name, phone)), nil
}

func (h *ContactToolHandler) handleFindByName(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format, expected map"), nil
	}

	contacts, err := h.contactSvc.GetContactsByName(ctx, stringArg(args, "name"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatContacts(contacts)), nil
}

func (h *ContactToolHandler) handleFindByPhone(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format, expected map"), nil
	}

	contacts, err := h.contactSvc.GetContactsByPhoneNumber(ctx, stringArg(args, "phone_number"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatContacts(contacts)), nil
}

func (h *ContactToolHandler) handleRemoveByPhone(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format, expected map"), nil
	}
	phone := stringArg(args, "phone_number")

	if err := h.contactSvc.RemoveContactByPhoneNumber(ctx, phone); err != nil {
		zlog.Warn("contact_remove_by_phone failed", zap.Error(err), zap.String("phone_number", phone))
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Removed %s", phone)), nil
}

// arguments mcp-go 收到的 Arguments 通常是 map[string]interface{}
func arguments(request mcp.CallToolRequest) (map[string]interface{}, bool) {
	if request.Params.Arguments == nil {
		return map[string]interface{}{}, true
	}
	args, ok := request.Params.Arguments.(map[string]interface{})
	return args, ok
}

func stringArg(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return v
}

func formatContacts(contacts []entity.Contact) string {
	if len(contacts) == 0 {
		return "No contacts found."
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d contact(s):\n", len(contacts)))
	for i, c := range contacts {
		sb.WriteString(fmt.Sprintf("%d. %s <%s> %s\n", i+1, c.Name, c.Email, c.PhoneNumber))
	}
	return sb.String()
}

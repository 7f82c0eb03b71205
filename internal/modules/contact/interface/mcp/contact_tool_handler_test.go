package mcphandler

import (
	"context"
	"sort"
	"strings"
	"testing"

	"ContactBook/internal/modules/contact/application/service"
	"ContactBook/internal/modules/contact/infrastructure/persistence"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type recordingAdder struct {
	tools map[string]server.ToolHandlerFunc
}

func (r *recordingAdder) AddTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	r.tools[tool.Name] = handler
}

func newTools(t *testing.T) map[string]server.ToolHandlerFunc {
	t.Helper()
	adder := &recordingAdder{tools: map[string]server.ToolHandlerFunc{}}
	svc := service.NewContactService(persistence.NewContactRepository(), nil)
	NewContactToolHandler(svc).RegisterTools(adder)
	return adder.tools
}

func call(t *testing.T, tools map[string]server.ToolHandlerFunc, name string, args interface{}) (string, bool) {
	t.Helper()
	h, ok := tools[name]
	if !ok {
		t.Fatalf("tool %q not registered", name)
	}
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("%s: handler error = %v", name, err)
	}
	if len(res.Content) != 1 {
		t.Fatalf("%s: content = %+v", name, res.Content)
	}
	var text string
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		text = c.Text
	case *mcp.TextContent:
		text = c.Text
	default:
		t.Fatalf("%s: unexpected content %T", name, c)
	}
	return text, res.IsError
}

func TestRegisterTools(t *testing.T) {
	tools := newTools(t)
	var names []string
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)
	want := "contact_add,contact_find_by_name,contact_find_by_phone,contact_list,contact_remove_by_phone"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("tools = %s, want %s", got, want)
	}
}

func TestContactTools(t *testing.T) {
	tools := newTools(t)

	if text, isErr := call(t, tools, "contact_list", nil); isErr || text != "No contacts found." {
		t.Errorf("empty list = %q, %v", text, isErr)
	}

	if _, isErr := call(t, tools, "contact_add", map[string]interface{}{
		"name": "John Doe", "email": "john.doe@example.com", "phone_number": "1234567890",
	}); isErr {
		t.Fatal("contact_add failed")
	}

	text, isErr := call(t, tools, "contact_find_by_name", map[string]interface{}{"name": "John Doe"})
	if isErr || !strings.Contains(text, "John Doe <john.doe@example.com> 1234567890") {
		t.Errorf("find by name = %q", text)
	}

	text, isErr = call(t, tools, "contact_find_by_phone", map[string]interface{}{"phone_number": "1234567890"})
	if isErr || !strings.HasPrefix(text, "Found 1 contact(s):") {
		t.Errorf("find by phone = %q", text)
	}

	if _, isErr := call(t, tools, "contact_remove_by_phone", map[string]interface{}{"phone_number": "1234567890"}); isErr {
		t.Fatal("contact_remove_by_phone failed")
	}
	if text, _ := call(t, tools, "contact_list", nil); text != "No contacts found." {
		t.Errorf("list after remove = %q", text)
	}
}

func TestContactToolErrors(t *testing.T) {
	tools := newTools(t)

	tests := []struct {
		tool string
		args interface{}
		want string
	}{
		{"contact_add", map[string]interface{}{"phone_number": "1234567890"}, "Contact name is empty"},
		{"contact_add", map[string]interface{}{"name": "John Doe"}, "Contact phone number is empty"},
		{"contact_find_by_name", map[string]interface{}{}, "Name is null or empty."},
		{"contact_find_by_phone", map[string]interface{}{"phone_number": "abc1234567"}, "Phone number is not a number"},
		{"contact_remove_by_phone", map[string]interface{}{"phone_number": "0000000000"}, "Invalid phone number"},
		{"contact_remove_by_phone", "not a map", "invalid arguments format, expected map"},
	}
	for _, tt := range tests {
		text, isErr := call(t, tools, tt.tool, tt.args)
		if !isErr || text != tt.want {
			t.Errorf("%s(%v) = %q, %v; want error %q", tt.tool, tt.args, text, isErr, tt.want)
		}
	}
}

func TestNewContactMCPServer(t *testing.T) {
	svc := service.NewContactService(persistence.NewContactRepository(), nil)
	if s := NewContactMCPServer("contactbook", "1.0.0", svc); s == nil {
		t.Fatal("NewContactMCPServer() returned nil")
	}
}

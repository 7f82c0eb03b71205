package mcphandler

import (
	"ContactBook/internal/modules/contact/application/service"

	"github.com/mark3labs/mcp-go/server"
)

// NewContactMCPServer 创建注册了通讯录工具的 MCP Server
func NewContactMCPServer(name, version string, svc service.ContactService) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)
	NewContactToolHandler(svc).RegisterTools(s)
	return s
}

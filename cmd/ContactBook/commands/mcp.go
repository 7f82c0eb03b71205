package commands

import (
	"errors"

	"ContactBook/internal/initial"
	mcpHandler "ContactBook/internal/modules/contact/interface/mcp"
	"ContactBook/pkg/zlog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve contact tools over MCP stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !conf.MCPConfig.Enabled {
				return errors.New("mcp is disabled in config")
			}
			initial.InitLogger(conf, true)
			defer zlog.Sync()

			contact, err := initial.NewContactModule(conf)
			if err != nil {
				return err
			}
			defer contact.Close()

			s := mcpHandler.NewContactMCPServer(conf.MCPConfig.Name, conf.MCPConfig.Version, contact.Service)
			zlog.Info("mcp stdio server starting", zap.String("name", conf.MCPConfig.Name))
			return server.ServeStdio(s)
		},
	}
}

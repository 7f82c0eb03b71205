package commands

import (
	"ContactBook/internal/config"

	"github.com/spf13/cobra"
)

var (
	configPath string
	conf       *config.Config
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ContactBook",
		Short:         "In-memory contact book service",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				conf = config.GetConfig()
				return nil
			}
			c, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			conf = c
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "toml config file (default $CONTACTBOOK_CONFIG or "+config.DefaultConfigPath+")")

	root.AddCommand(serveCmd(), mcpCmd(), tokenCmd())
	return root
}

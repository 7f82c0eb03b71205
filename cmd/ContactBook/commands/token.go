package commands

import (
	"fmt"

	"ContactBook/pkg/util/myjwt"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token <uuid> <username>",
		Short: "Print a bearer token for the /contact API",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := myjwt.NewSigner(conf.JwtConfig, conf.MainConfig.AppName)
			if err != nil {
				return err
			}
			token, err := signer.GenerateToken(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

package cmd

import (
	"log/slog"

	"github.com/josephlewis42/hsh/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write the default configuration to dir, the current directory by default.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

			_, err := config.Initialize(afero.NewOsFs(), dir, logger)
			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(newInitCmd())
}

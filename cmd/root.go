package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephlewis42/hsh/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const configFlag = "config"

func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	cfgPath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, err
	}
	return config.Load(afero.NewOsFs(), cfgPath)
}

// exitError ends the process with a status, any diagnostics were already
// written.
type exitError struct {
	status int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.status)
}

func newRootCmd() *cobra.Command {
	var commandLine string

	cmd := &cobra.Command{
		Use:   "hsh",
		Short: "A minimal command interpreter",
		Long: `hsh reads a line, splits it into words, finds the command directly or on
PATH, and runs it, waiting for it to exit before reading the next line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			configuration, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			opts := shellOptions{
				name:        configuration.Name(os.Args[0]),
				commandLine: commandLine,
				hasCommand:  cmd.Flags().Changed("command"),
			}
			status, err := runShell(cmd, configuration, opts)
			if err != nil {
				return err
			}
			if status != 0 {
				cmd.SilenceErrors = true
				return &exitError{status: status}
			}
			return nil
		},
	}

	cmd.PersistentFlags().String(configFlag, ".", "config path")
	cmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single line and exit with its status")
	return cmd
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	var exit *exitError
	switch {
	case errors.As(err, &exit):
		os.Exit(exit.status)
	case err != nil:
		os.Exit(1)
	}
}

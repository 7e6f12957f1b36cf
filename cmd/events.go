package cmd

import (
	"fmt"

	"github.com/josephlewis42/hsh/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

func newEventsCmd() *cobra.Command {
	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "Explore the command event log.",
	}

	reportCommand := &cobra.Command{
		Use:   "report",
		Short: "Show a report of events.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			fd, err := config.ReadEventLog()
			if err != nil {
				return err
			}
			defer fd.Close()

			var report logger.Report
			if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
				return err
			}

			out, err := yaml.Marshal(report)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}

	eventsCmd.AddCommand(reportCommand)
	return eventsCmd
}

func init() {
	rootCmd.AddCommand(newEventsCmd())
}

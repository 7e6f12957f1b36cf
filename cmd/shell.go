package cmd

import (
	"log/slog"

	"github.com/josephlewis42/hsh/core/config"
	"github.com/josephlewis42/hsh/core/logger"
	"github.com/josephlewis42/hsh/core/shell"
	"github.com/josephlewis42/hsh/core/vos"
	"github.com/spf13/cobra"
)

// StatusReadError is the exit status when reading input failed.
const StatusReadError = 2

type shellOptions struct {
	// name prefixes diagnostics.
	name string
	// commandLine is run instead of reading input if hasCommand is set.
	commandLine string
	hasCommand  bool
}

// runShell runs the interpreter on the command's streams and returns the
// status the process should exit with.
func runShell(cmd *cobra.Command, configuration *config.Configuration, opts shellOptions) (int, error) {
	stdio := vos.NewVIOAdapter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	appLogger := slog.New(slog.NewTextHandler(stdio.Stderr(), &slog.HandlerOptions{
		Level: configuration.SlogLevel(),
	}))

	split, err := configuration.Splitter()
	if err != nil {
		return 0, err
	}

	events := logger.NewNopLogger()
	if configuration.EventLog != "" {
		fd, err := configuration.OpenEventLog()
		if err != nil {
			return 0, err
		}
		defer fd.Close()
		events = logger.NewJSONLinesLogRecorder(fd)
	}

	driverConfig := shell.DriverConfig{
		Name:    opts.name,
		IO:      stdio,
		Env:     vos.HostEnv{},
		Prompt:  configuration.PromptRenderer(isTerminal(stdio.Stdout())),
		Split:   split,
		Events:  events.NewSession(),
		Logger:  appLogger,
		Spawner: shell.ExecSpawner{},
	}

	if opts.hasCommand {
		driver := shell.NewDriver(driverConfig)
		return driver.RunLine(cmd.Context(), opts.commandLine), nil
	}

	if isTerminal(stdio.Stdin()) {
		input, err := shell.NewReadlineReader(stdio.Stdin(), stdio.Stdout(), stdio.Stderr(), configuration.HistoryPath())
		if err != nil {
			return 0, err
		}
		defer input.Close()

		driverConfig.Interactive = true
		driverConfig.Input = input
	}

	appLogger.Debug("starting shell", "name", opts.name, "interactive", driverConfig.Interactive, "config", configuration.Dir())

	driver := shell.NewDriver(driverConfig)
	status, err := driver.Run(cmd.Context())
	if err != nil {
		return StatusReadError, nil
	}
	return status, nil
}

func isTerminal(stream interface{}) bool {
	fd, ok := vos.File(stream)
	return ok && shell.IsTerminal(fd.Fd())
}

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/josephlewis42/hsh/core/logger"
	"github.com/josephlewis42/hsh/core/vos"
)

// DriverConfig configures a Driver. Zero fields use the host.
type DriverConfig struct {
	// Name prefixes every diagnostic.
	Name string
	// IO holds the interpreter's standard streams.
	IO vos.VIO
	// Env is read at dispatch time for PATH and handed to children.
	Env vos.VEnv
	// System supplies the prompt's identity.
	System vos.VSystem
	// FS is used for existence and permission checks.
	FS vos.VFS
	// Spawner creates children.
	Spawner Spawner

	// Interactive enables the prompt.
	Interactive bool
	// Input reads lines, a buffered reader over IO.Stdin if nil.
	Input LineReader
	// Prompt renders the prompt when Interactive is set.
	Prompt PromptRenderer
	// Split turns lines into argv, SplitFields if nil.
	Split Splitter

	// Events receives a record of every dispatch.
	Events *logger.SessionLogger
	// Logger receives operator diagnostics.
	Logger *slog.Logger
}

// Driver owns the read, split, resolve, run and wait loop.
type Driver struct {
	name        string
	io          vos.VIO
	env         vos.VEnv
	system      vos.VSystem
	resolver    *Resolver
	launcher    *Launcher
	input       LineReader
	interactive bool
	prompt      PromptRenderer
	split       Splitter
	events      *logger.SessionLogger
	log         *slog.Logger

	// dispatched counts lines that produced a command, starting at 1.
	dispatched int
	// status of the last command that reached process creation.
	status int
}

// NewDriver creates a Driver from cfg.
func NewDriver(cfg DriverConfig) *Driver {
	if cfg.Name == "" {
		cfg.Name = "hsh"
	}
	if cfg.IO == nil {
		cfg.IO = vos.NewHostIO()
	}
	if cfg.Env == nil {
		cfg.Env = vos.HostEnv{}
	}
	if cfg.System == nil {
		cfg.System = &vos.HostSystem{Env: cfg.Env}
	}
	if cfg.FS == nil {
		cfg.FS = vos.NewHostFs()
	}
	if cfg.Spawner == nil {
		cfg.Spawner = ExecSpawner{}
	}
	if cfg.Input == nil {
		var promptOut io.Writer
		if cfg.Interactive {
			promptOut = cfg.IO.Stdout()
		}
		cfg.Input = NewLineReader(cfg.IO.Stdin(), promptOut)
	}
	if cfg.Split == nil {
		cfg.Split = SplitFields
	}
	if cfg.Events == nil {
		cfg.Events = logger.NewNopLogger().NewSession()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(discardHandler)
	}

	launcher := NewLauncher(cfg.Name, cfg.FS, cfg.Spawner)
	launcher.SetLogger(cfg.Logger)

	return &Driver{
		name:        cfg.Name,
		io:          cfg.IO,
		env:         cfg.Env,
		system:      cfg.System,
		resolver:    NewResolver(cfg.FS),
		launcher:    launcher,
		input:       cfg.Input,
		interactive: cfg.Interactive,
		prompt:      cfg.Prompt,
		split:       cfg.Split,
		events:      cfg.Events,
		log:         cfg.Logger,
	}
}

// Status is the status of the last command that ran, 0 if none has.
func (d *Driver) Status() int {
	return d.status
}

// Run reads and dispatches lines until input is exhausted, then returns the
// status of the last command. A read failure other than end of input is
// reported and returned.
func (d *Driver) Run(ctx context.Context) (int, error) {
	for {
		line, err := d.input.ReadLine(d.promptText())

		switch {
		case errors.Is(err, io.EOF):
			return d.status, nil

		case errors.Is(err, ErrInterrupt):
			continue // Interrupt clears the line.

		case err != nil:
			fmt.Fprintf(d.io.Stderr(), "%s: read error: %v\n", d.name, err)
			return d.status, err
		}

		d.RunLine(ctx, line)
	}
}

// RunLine dispatches a single line and returns the resulting status. Blank
// lines are ignored.
func (d *Driver) RunLine(ctx context.Context, line string) int {
	argv, err := d.split(line)
	if err != nil {
		d.dispatched++
		fmt.Fprintf(d.io.Stderr(), "%s: %d: Syntax error: %v\n", d.name, d.dispatched, err)
		return d.status
	}
	if len(argv) == 0 {
		return d.status
	}

	d.dispatched++
	d.dispatch(ctx, argv)
	return d.status
}

func (d *Driver) dispatch(ctx context.Context, argv []string) {
	command := argv[0]

	path := command
	if !d.launcher.Runnable(command) {
		resolved, err := d.resolver.Resolve(command, d.env)
		if err != nil {
			d.notFound(argv)
			return
		}
		path = resolved
	}

	status, err := d.launcher.Launch(ctx, path, argv, d.env, d.io)
	switch {
	case errors.Is(err, ErrPermission):
		fmt.Fprintf(d.io.Stderr(), "%s: %s: Permission denied\n", d.name, path)
		d.record(&logger.LogEntry{Type: logger.EventPermissionDenied, Command: argv, ResolvedPath: path})

	case errors.Is(err, ErrNotFound):
		d.notFound(argv)

	case err != nil:
		fmt.Fprintf(d.io.Stderr(), "%s: %s: %v\n", d.name, command, err)
		d.status = status
		d.log.Error("spawn failed", "path", path, "err", err)
		d.record(&logger.LogEntry{Type: logger.EventSpawnError, Command: argv, ResolvedPath: path, Status: status, Error: err.Error()})

	default:
		d.status = status
		d.log.Debug("command exited", "argv", argv, "path", path, "status", status)
		d.record(&logger.LogEntry{Type: logger.EventRunCommand, Command: argv, ResolvedPath: path, Status: status})
	}
}

func (d *Driver) notFound(argv []string) {
	fmt.Fprintf(d.io.Stderr(), "%s: %s: %d: not found\n", d.name, argv[0], d.dispatched)
	d.record(&logger.LogEntry{Type: logger.EventUnknownCommand, Command: argv})
}

func (d *Driver) record(le *logger.LogEntry) {
	if err := d.events.Record(le); err != nil {
		d.log.Warn("couldn't record event", "type", le.Type, "err", err)
	}
}

func (d *Driver) promptText() string {
	if !d.interactive {
		return ""
	}

	info := PromptInfo{UID: d.system.Getuid()}
	var err error
	if info.User, err = d.system.Username(); err != nil {
		d.log.Debug("prompt user", "err", err)
	}
	if info.Host, err = d.system.Hostname(); err != nil {
		d.log.Debug("prompt host", "err", err)
	}
	if info.Dir, err = d.system.Getwd(); err != nil {
		d.log.Debug("prompt cwd", "err", err)
	}
	return d.prompt.Render(info)
}

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/josephlewis42/hsh/core/vos"
)

// ProcState is the lifecycle of a child process.
type ProcState int

const (
	ProcCreated ProcState = iota
	ProcRunning
	ProcExited
)

func (s ProcState) String() string {
	switch s {
	case ProcCreated:
		return "created"
	case ProcRunning:
		return "running"
	case ProcExited:
		return "exited"
	default:
		return fmt.Sprintf("ProcState(%d)", int(s))
	}
}

// Command describes a single child process.
type Command struct {
	// Path is the file to execute.
	Path string
	// Args holds command line arguments, including the command as Args[0].
	Args []string
	// Env is the environment of the child in "key=value" form.
	Env []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// State is updated by the Spawner as the child progresses.
	State ProcState
}

// Spawner creates a child process running cmd and blocks until it exits,
// returning its termination status.
//
// Failure to create the child is reported as ErrProcessCreation. Failure of
// the child to replace its image is reported as an *ExecError.
type Spawner interface {
	Spawn(ctx context.Context, cmd *Command) (status int, err error)
}

var (
	// ErrPermission is returned when the target exists but can't be executed.
	ErrPermission = fs.ErrPermission

	// ErrProcessCreation is returned when the OS refused to create a child.
	ErrProcessCreation = errors.New("can't create process")
)

// Statuses reported when the child could not run its image, matching the
// values POSIX shells use.
const (
	StatusNotExecutable = 126
	StatusNotFound      = 127
)

// ExecError is a failure to replace the child's image with the executable.
// It belongs to the child: the parent only observes the resulting status.
type ExecError struct {
	Path string
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// Status is the termination status of a child that failed to exec.
func (e *ExecError) Status() int {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return StatusNotFound
	}
	return StatusNotExecutable
}

// Launcher runs executables as child processes and waits for them.
type Launcher struct {
	name    string
	fs      vos.VFS
	spawner Spawner
	log     *slog.Logger
}

// NewLauncher creates a Launcher. The name prefixes messages written on
// behalf of children that failed to exec.
func NewLauncher(name string, fsys vos.VFS, spawner Spawner) *Launcher {
	return &Launcher{
		name:    name,
		fs:      fsys,
		spawner: spawner,
		log:     slog.New(discardHandler),
	}
}

// SetLogger sets where child lifecycle records go.
func (l *Launcher) SetLogger(log *slog.Logger) {
	l.log = log
}

// Runnable reports whether path can be launched as-is: it exists, isn't a
// directory and may be executed.
func (l *Launcher) Runnable(path string) bool {
	return vos.IsExecutableFile(l.fs, path)
}

// Launch runs path with argv, passing env unmodified, and blocks until the
// child exits. No child is created if path can't be executed.
func (l *Launcher) Launch(ctx context.Context, path string, argv []string, env vos.EnvironFetcher, stdio vos.VIO) (int, error) {
	fi, err := l.fs.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return 0, fmt.Errorf("%s: %w", path, ErrNotFound)
	case err != nil, fi.IsDir(), vos.Access(l.fs, path, vos.AccessExecute) != nil:
		return 0, fmt.Errorf("%s: %w", path, ErrPermission)
	}

	cmd := &Command{
		Path:   path,
		Args:   argv,
		Env:    env.Environ(),
		Stdin:  stdio.Stdin(),
		Stdout: stdio.Stdout(),
		Stderr: stdio.Stderr(),
	}

	status, err := l.spawner.Spawn(ctx, cmd)
	l.log.Debug("child finished", "path", path, "state", cmd.State, "status", status)
	var execErr *ExecError
	switch {
	case errors.As(err, &execErr):
		fmt.Fprintf(cmd.Stderr, "%s: %s\n", l.name, execErr)
		return execErr.Status(), nil
	case err != nil:
		return 1, err
	}
	return status, nil
}

package shell

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"syscall"

	"github.com/josephlewis42/hsh/core/vos"
)

// ExecSpawner creates real child processes with os/exec.
type ExecSpawner struct{}

var _ Spawner = ExecSpawner{}

// Spawn implements Spawner. Stdin is only passed through when it is an
// *os.File so children never drain the interpreter's own buffered input.
func (ExecSpawner) Spawn(ctx context.Context, c *Command) (int, error) {
	if err := ctx.Err(); err != nil {
		return 1, err
	}

	cmd := &exec.Cmd{
		Path:   c.Path,
		Args:   c.Args,
		Env:    c.Env,
		Stdout: c.Stdout,
		Stderr: c.Stderr,
	}
	if f, ok := vos.File(c.Stdin); ok {
		cmd.Stdin = f
	}

	c.State = ProcCreated
	if err := cmd.Start(); err != nil {
		return 1, classifyStartError(c.Path, err)
	}

	c.State = ProcRunning
	waitErr := cmd.Wait()
	c.State = ProcExited

	if cmd.ProcessState == nil {
		return 1, waitErr
	}
	return exitStatus(cmd.ProcessState), nil
}

var creationErrnos = []syscall.Errno{
	syscall.EAGAIN,
	syscall.ENOMEM,
	syscall.EMFILE,
	syscall.ENFILE,
}

func classifyStartError(path string, err error) error {
	for _, errno := range creationErrnos {
		if errors.Is(err, errno) {
			return fmt.Errorf("%w: %v", ErrProcessCreation, err)
		}
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &ExecError{Path: path, Err: err}
}

func exitStatus(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}

//go:build unix

package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShell = "/bin/sh"

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(testShell); err != nil {
		t.Skipf("%s not available: %v", testShell, err)
	}
}

func spawnShell(t *testing.T, script string, env ...string) (int, string, error) {
	t.Helper()
	requireShell(t)

	out := &bytes.Buffer{}
	cmd := &Command{
		Path:   testShell,
		Args:   []string{"sh", "-c", script},
		Env:    env,
		Stdout: out,
		Stderr: out,
	}
	status, err := ExecSpawner{}.Spawn(context.Background(), cmd)
	if err == nil {
		assert.Equal(t, ProcExited, cmd.State)
	}
	return status, out.String(), err
}

func TestExecSpawnerExitStatus(t *testing.T) {
	for _, want := range []int{0, 1, 3, 255} {
		status, _, err := spawnShell(t, "exit "+strconv.Itoa(want))
		require.NoError(t, err)
		assert.Equal(t, want, status)
	}
}

func TestExecSpawnerOutputAndEnv(t *testing.T) {
	status, out, err := spawnShell(t, `echo "$GREETING"`, "GREETING=hello")
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "hello\n", out)
}

func TestExecSpawnerSignal(t *testing.T) {
	status, _, err := spawnShell(t, "kill -9 $$")
	require.NoError(t, err)
	assert.Equal(t, 128+int(syscall.SIGKILL), status)
}

func TestExecSpawnerStdinIsolated(t *testing.T) {
	requireShell(t)

	out := &bytes.Buffer{}
	cmd := &Command{
		Path:   testShell,
		Args:   []string{"sh", "-c", "cat"},
		Stdin:  bytes.NewBufferString("interpreter input\n"),
		Stdout: out,
	}
	status, err := ExecSpawner{}.Spawn(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Empty(t, out.String(), "non-file stdin must not reach the child")
}

func TestExecSpawnerExecFailure(t *testing.T) {
	dir := t.TempDir()
	notRunnable := filepath.Join(dir, "garbage")
	require.NoError(t, os.WriteFile(notRunnable, []byte{0, 1, 2, 3}, 0755))

	cases := map[string]struct {
		path       string
		wantStatus int
	}{
		"missing":    {filepath.Join(dir, "missing"), StatusNotFound},
		"directory":  {dir, StatusNotExecutable},
		"bad format": {notRunnable, StatusNotExecutable},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cmd := &Command{Path: tc.path, Args: []string{tc.path}}
			_, err := ExecSpawner{}.Spawn(context.Background(), cmd)

			var execErr *ExecError
			require.True(t, errors.As(err, &execErr), "got %v", err)
			assert.Equal(t, tc.path, execErr.Path)
			assert.Equal(t, tc.wantStatus, execErr.Status())
			assert.False(t, errors.Is(err, ErrProcessCreation))
		})
	}
}

func TestClassifyStartError(t *testing.T) {
	err := classifyStartError("/bin/x", &os.PathError{Op: "fork/exec", Path: "/bin/x", Err: syscall.EAGAIN})
	assert.ErrorIs(t, err, ErrProcessCreation)

	err = classifyStartError("/bin/x", &os.PathError{Op: "fork/exec", Path: "/bin/x", Err: syscall.EACCES})
	var execErr *ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, syscall.EACCES, execErr.Err)
	assert.Equal(t, StatusNotExecutable, execErr.Status())
}

package shell

import (
	"context"
	"fmt"
	"strings"
)

// recordingSpawner stands in for process creation and counts every child it
// was asked to create.
type recordingSpawner struct {
	spawned []*Command

	// run produces the result of a spawn, echoSpawn is used if nil.
	run func(cmd *Command) (int, error)
}

var _ Spawner = (*recordingSpawner)(nil)

func (r *recordingSpawner) Spawn(_ context.Context, cmd *Command) (int, error) {
	r.spawned = append(r.spawned, cmd)
	cmd.State = ProcRunning
	defer func() { cmd.State = ProcExited }()

	if r.run != nil {
		return r.run(cmd)
	}
	return echoSpawn(cmd)
}

// echoSpawn prints the path and arguments it was given, exiting with 0.
func echoSpawn(cmd *Command) (int, error) {
	fmt.Fprintf(cmd.Stdout, "run %s [%s]\n", cmd.Path, strings.Join(cmd.Args, " "))
	return 0, nil
}

func (r *recordingSpawner) count() int {
	return len(r.spawned)
}

package shell

import (
	"os/exec"
	"strings"

	"github.com/josephlewis42/hsh/core/vos"
)

// EnvPath names the search-path variable.
const EnvPath = "PATH"

// ErrNotFound is the error resulting if a path search failed to find a file.
var ErrNotFound = exec.ErrNotFound

// Resolver finds the file a command name refers to.
type Resolver struct {
	fs vos.VFS
}

// NewResolver creates a Resolver that tests existence on fsys.
func NewResolver(fsys vos.VFS) *Resolver {
	return &Resolver{fs: fsys}
}

// Resolve returns the path of the file named by command.
//
// A command containing a slash is used as-is and the search path is not
// consulted. A command naming an existing entry relative to the working
// directory is also used as-is. Otherwise each directory of the PATH in env
// is tried in order and the first existing dir/command wins.
//
// Only existence is checked; the caller decides whether the result may be
// executed.
func (r *Resolver) Resolve(command string, env vos.VEnv) (string, error) {
	if command == "" {
		return "", ErrNotFound
	}

	if strings.Contains(command, "/") {
		if r.exists(command) {
			return command, nil
		}
		return "", ErrNotFound
	}

	if r.exists(command) {
		return command, nil
	}

	searchPath, ok := env.LookupEnv(EnvPath)
	if !ok {
		return "", ErrNotFound
	}

	for _, dir := range Tokenize(searchPath, PathListSeparator) {
		candidate := dir + "/" + command
		if r.exists(candidate) {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}

func (r *Resolver) exists(name string) bool {
	return vos.Access(r.fs, name, vos.AccessExists) == nil
}

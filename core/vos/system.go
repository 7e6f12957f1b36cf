package vos

import (
	"os"
	"os/user"
)

type VNetwork interface {
	Hostname() (string, error)
}

// VSystem answers the identity questions the prompt needs. Every call reads
// the current state.
type VSystem interface {
	VNetwork

	// Username returns the login name of the user running the interpreter.
	Username() (string, error)
	// Getwd returns the current working directory.
	Getwd() (string, error)
	// Getuid returns the numeric user id, -1 where unsupported.
	Getuid() int
}

// HostSystem reads identity from the running process.
type HostSystem struct {
	// Env is consulted for USER and LOGNAME before the user database.
	Env VEnv
}

var _ VSystem = (*HostSystem)(nil)

func (h *HostSystem) Hostname() (string, error) {
	return os.Hostname()
}

// Username implements VSystem.Username.
func (h *HostSystem) Username() (string, error) {
	if h.Env != nil {
		for _, key := range []string{"USER", "LOGNAME"} {
			if name := h.Env.Getenv(key); name != "" {
				return name, nil
			}
		}
	}

	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

func (h *HostSystem) Getwd() (string, error) {
	return os.Getwd()
}

func (h *HostSystem) Getuid() int {
	return os.Getuid()
}

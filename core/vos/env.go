package vos

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// VEnv is a read view of a process environment.
//
// Implementations are consulted at call time; callers must not cache values
// across commands so changes between commands are observed immediately.
type VEnv interface {
	EnvironFetcher

	// LookupEnv retrieves the value of the environment variable named by the key.
	// If the variable is present in the environment the value (which may be
	// empty) is returned and the boolean is true. Otherwise the returned value
	// will be empty and the boolean will be false.
	LookupEnv(key string) (string, bool)

	// Getenv retrieves the value of the environment variable named by the key.
	// It returns the value, which will be empty if the variable is not present.
	// To distinguish between an empty value and an unset value, use LookupEnv.
	Getenv(key string) string
}

type EnvironFetcher interface {
	// Environ returns a copy of strings representing the environment, in the
	// form "key=value".
	Environ() []string
}

// HostEnv reads the environment of the running process.
type HostEnv struct{}

var _ VEnv = HostEnv{}

// LookupEnv implements VEnv.LookupEnv.
func (HostEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Getenv implements VEnv.Getenv.
func (HostEnv) Getenv(key string) string {
	return os.Getenv(key)
}

// Environ implements VEnv.Environ.
func (HostEnv) Environ() []string {
	return os.Environ()
}

// NewMapEnv creates a new environment backed by a map.
func NewMapEnv() *MapEnv {
	return &MapEnv{}
}

// NewMapEnvFromEnvList creates an environment from "key=value" pairs. Entries
// without "=" are set to the empty string.
func NewMapEnvFromEnvList(environ []string) *MapEnv {
	out := &MapEnv{}
	for _, e := range environ {
		key, value, _ := strings.Cut(e, "=")
		out.Setenv(key, value)
	}
	return out
}

// MapEnv implements an in-memory VEnv.
type MapEnv struct {
	rw  sync.RWMutex
	env map[string]string
}

var _ VEnv = (*MapEnv)(nil)

// Setenv sets the value of the environment variable named by the key.
func (m *MapEnv) Setenv(key, value string) {
	m.rw.Lock()
	defer m.rw.Unlock()

	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
}

// Unsetenv unsets a single environment variable.
func (m *MapEnv) Unsetenv(key string) {
	m.rw.Lock()
	defer m.rw.Unlock()
	delete(m.env, key)
}

// LookupEnv implements VEnv.LookupEnv.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.rw.RLock()
	defer m.rw.RUnlock()

	val, ok := m.env[key]
	return val, ok
}

// Getenv implements VEnv.Getenv.
func (m *MapEnv) Getenv(key string) string {
	val, _ := m.LookupEnv(key)
	return val
}

// Environ implements VEnv.Environ, entries are sorted by key.
func (m *MapEnv) Environ() []string {
	m.rw.RLock()
	defer m.rw.RUnlock()

	env := make([]string, 0, len(m.env))
	for k, v := range m.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(env)
	return env
}

// Package vostest holds deterministic stand-ins for the host used in tests.
package vostest

import (
	"io/fs"
	"path"
	"testing"

	"github.com/josephlewis42/hsh/core/vos"
	"github.com/spf13/afero"
)

// FakeSystem is a VSystem with fixed answers.
type FakeSystem struct {
	User string
	Host string
	Dir  string
	UID  int
}

var _ vos.VSystem = (*FakeSystem)(nil)

// NewFakeSystem returns a non-root user "user" on host "host" in /home/user.
func NewFakeSystem() *FakeSystem {
	return &FakeSystem{
		User: "user",
		Host: "host",
		Dir:  "/home/user",
		UID:  1000,
	}
}

func (f *FakeSystem) Hostname() (string, error) { return f.Host, nil }
func (f *FakeSystem) Username() (string, error) { return f.User, nil }
func (f *FakeSystem) Getwd() (string, error)    { return f.Dir, nil }
func (f *FakeSystem) Getuid() int               { return f.UID }

// FS builds an in-memory filesystem for resolver and launcher tests.
type FS struct {
	t testing.TB
	vos.VFS
}

// NewFS creates an empty in-memory filesystem.
func NewFS(t testing.TB) *FS {
	return &FS{t: t, VFS: afero.NewMemMapFs()}
}

// Executable creates an executable file at name.
func (f *FS) Executable(name string) *FS {
	return f.File(name, 0755)
}

// File creates a file at name with the given permissions.
func (f *FS) File(name string, perm fs.FileMode) *FS {
	f.t.Helper()
	if err := f.MkdirAll(path.Dir(name), 0755); err != nil {
		f.t.Fatal(err)
	}
	if err := afero.WriteFile(f.VFS, name, []byte("#!/bin/true\n"), perm); err != nil {
		f.t.Fatal(err)
	}
	return f
}

// Dir creates a directory at name.
func (f *FS) Dir(name string) *FS {
	f.t.Helper()
	if err := f.MkdirAll(name, 0755); err != nil {
		f.t.Fatal(err)
	}
	return f
}

// Env creates an environment with PATH set to searchPath.
func Env(searchPath string) *vos.MapEnv {
	env := vos.NewMapEnv()
	env.Setenv("PATH", searchPath)
	return env
}

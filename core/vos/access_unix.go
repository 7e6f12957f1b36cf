//go:build unix

package vos

import (
	"io/fs"

	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

// NewHostFs returns the real filesystem. Access checks go through access(2)
// so they honor ownership, ACLs and read-only mounts.
func NewHostFs() VFS {
	return &hostFs{afero.NewOsFs()}
}

type hostFs struct {
	afero.Fs
}

var _ AccessChecker = (*hostFs)(nil)

// Access implements AccessChecker.
func (h *hostFs) Access(name string, mode uint32) error {
	if err := unix.Access(name, mode); err != nil {
		return &fs.PathError{Op: "access", Path: name, Err: err}
	}
	return nil
}

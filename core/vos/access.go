package vos

import (
	"io/fs"

	"github.com/spf13/afero"
)

// VFS is the filesystem view used to probe commands before they run.
type VFS = afero.Fs

// Access modes, matching access(2).
const (
	AccessExists  uint32 = 0x0
	AccessExecute uint32 = 0x1
)

// AccessChecker is implemented by filesystems that can answer access(2)
// style questions for the calling user.
type AccessChecker interface {
	Access(name string, mode uint32) error
}

// Access checks that name exists and, if AccessExecute is set, that it may be
// executed. Filesystems without an AccessChecker fall back to the mode bits.
func Access(fsys VFS, name string, mode uint32) error {
	if checker, ok := fsys.(AccessChecker); ok {
		return checker.Access(name, mode)
	}

	fi, err := fsys.Stat(name)
	if err != nil {
		return err
	}
	if mode&AccessExecute != 0 && fi.Mode().Perm()&0111 == 0 {
		return &fs.PathError{Op: "access", Path: name, Err: fs.ErrPermission}
	}
	return nil
}

// IsExecutableFile reports whether name is a regular, non-directory file the
// caller may execute.
func IsExecutableFile(fsys VFS, name string) bool {
	fi, err := fsys.Stat(name)
	if err != nil || fi.IsDir() {
		return false
	}
	return Access(fsys, name, AccessExecute) == nil
}

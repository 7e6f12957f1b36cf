//go:build !unix

package vos

import "github.com/spf13/afero"

// NewHostFs returns the real filesystem. Access checks use the mode bits.
func NewHostFs() VFS {
	return afero.NewOsFs()
}

package logprinter

import (
	"io"
	"os"
)

// FileSystem is the subset of filesystem operations the file sink needs.
type FileSystem interface {
	MkdirAll(path string, perm os.FileMode) error
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
}

// File is a minimal interface for an opened log file
type File interface {
	io.Writer
	io.Closer
}

// RealFS is a FileSystem backed by the os package
type RealFS struct{}

func (f *RealFS) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }
func (f *RealFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	return os.OpenFile(name, flag, perm)
}

package logprinter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// fileSink appends records to the session log. The file is opened and
// closed on every append so each line is on disk when the call returns.
type fileSink struct {
	fs   FileSystem
	dir  string
	name string
}

func newFileSink(fs FileSystem, dir, name string) *fileSink {
	return &fileSink{fs: fs, dir: dir, name: name}
}

func (s *fileSink) path() string {
	return filepath.Join(s.dir, s.name)
}

// prepare creates the log directory tree.
func (s *fileSink) prepare() error {
	if err := s.fs.MkdirAll(s.dir, dirPerm); err != nil {
		return &DirectoryCreationError{Dir: s.dir, Err: err}
	}
	return nil
}

// append writes record followed by a newline. Invalid UTF-8 sequences are
// dropped.
func (s *fileSink) append(record string) (err error) {
	path := s.path()
	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return &FileAppendError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FileAppendError{Path: path, Err: cerr}
		}
	}()

	if _, werr := io.WriteString(f, strings.ToValidUTF8(record, "")+"\n"); werr != nil {
		return &FileAppendError{Path: path, Err: werr}
	}
	return nil
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(dir string) (string, error) {
	if dir != "~" && !strings.HasPrefix(dir, "~/") && !strings.HasPrefix(dir, `~\`) {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", dir, err)
	}
	if home == "" {
		return "", errors.New("expand " + dir + ": home directory is not set")
	}
	return filepath.Join(home, dir[1:]), nil
}

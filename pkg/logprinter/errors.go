package logprinter

import "fmt"

// ConfigurationError reports an invalid logger setup, such as a theme that
// does not cover every level.
type ConfigurationError struct {
	Level  Level
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("logprinter: %s: %s", e.Level, e.Reason)
}

// DirectoryCreationError is returned when the session log directory cannot
// be created.
type DirectoryCreationError struct {
	Dir string
	Err error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("create log directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error { return e.Err }

// FileAppendError is returned when a record cannot be appended to the
// session log file.
type FileAppendError struct {
	Path string
	Err  error
}

func (e *FileAppendError) Error() string {
	return fmt.Sprintf("append to log file %s: %v", e.Path, e.Err)
}

func (e *FileAppendError) Unwrap() error { return e.Err }

// TerminalWriteError is returned when the terminal writer fails.
type TerminalWriteError struct {
	Err error
}

func (e *TerminalWriteError) Error() string {
	return fmt.Sprintf("write to terminal: %v", e.Err)
}

func (e *TerminalWriteError) Unwrap() error { return e.Err }

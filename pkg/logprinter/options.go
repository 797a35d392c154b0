package logprinter

import (
	"io"
	"time"
)

// Option configures a Logger at construction.
type Option func(*Logger)

// WithPrinting enables or disables the terminal sink. Enabled by default.
func WithPrinting(enabled bool) Option {
	return func(l *Logger) {
		l.printing = enabled
	}
}

// WithTimestamp controls whether terminal lines carry a timestamp. Enabled
// by default. File records always carry one.
func WithTimestamp(enabled bool) Option {
	return func(l *Logger) {
		l.printTime = enabled
	}
}

// WithTerminalLevel sets the terminal threshold. A line is printed when its
// level ranks at or above the threshold. Default: LevelNormal.
//
// Example:
//
//	log, err := logprinter.New(logprinter.WithTerminalLevel(logprinter.LevelInfo))
func WithTerminalLevel(level Level) Option {
	return func(l *Logger) {
		l.terminalLevel = level
	}
}

// WithFileDirectory enables the file sink. A session file named after the
// construction time is created inside dir; a leading "~" is expanded to the
// home directory.
//
// Example:
//
//	log, err := logprinter.New(logprinter.WithFileDirectory("~/.local/state/myapp"))
func WithFileDirectory(dir string) Option {
	return func(l *Logger) {
		l.fileDir = dir
	}
}

// WithFileLevel sets the file threshold. Default: LevelDebug, every line is
// written.
func WithFileLevel(level Level) Option {
	return func(l *Logger) {
		l.fileLevel = level
	}
}

// WithRaiseOnError controls whether sink failures are returned to the caller
// after being reported on the terminal. Enabled by default; when disabled
// failures are only reported.
func WithRaiseOnError(raise bool) Option {
	return func(l *Logger) {
		l.raiseOnError = raise
	}
}

// WithTheme replaces the default theme. The theme is validated by New.
func WithTheme(theme Theme) Option {
	return func(l *Logger) {
		l.theme = theme
	}
}

// WithLocation sets the time zone used for terminal timestamps. Default: UTC.
func WithLocation(loc *time.Location) Option {
	return func(l *Logger) {
		l.location = loc
	}
}

// WithDateFormat sets the strftime layout for terminal timestamps.
// Default: DefaultDateFormat ("%b %d %H:%M:%S").
func WithDateFormat(layout string) Option {
	return func(l *Logger) {
		l.dateFormat = layout
	}
}

// WithOutput redirects the terminal sink. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithFileSystem replaces the filesystem used by the file sink.
func WithFileSystem(fs FileSystem) Option {
	return func(l *Logger) {
		l.fs = fs
	}
}

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.clock = now
	}
}

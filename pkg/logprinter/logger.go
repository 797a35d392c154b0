package logprinter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Logger prints themed lines to a terminal and mirrors them to a session
// log file. Each sink has its own threshold. A Logger is configured once by
// New and is not safe for concurrent use.
type Logger struct {
	printing      bool
	printTime     bool
	terminalLevel Level
	fileLevel     Level
	raiseOnError  bool

	theme      Theme
	location   *time.Location
	dateFormat string

	out   io.Writer
	fs    FileSystem
	clock func() time.Time

	fileDir string
	// nil when file logging is off or the directory could not be created
	file *fileSink
}

// New builds a Logger. It fails with a *ConfigurationError when the theme
// or a threshold is invalid, and with a *DirectoryCreationError when the
// log directory cannot be created and raising is enabled.
func New(opts ...Option) (*Logger, error) {
	l := &Logger{
		printing:      true,
		printTime:     true,
		terminalLevel: LevelNormal,
		fileLevel:     LevelDebug,
		raiseOnError:  true,
		theme:         DefaultTheme(),
		location:      time.UTC,
		dateFormat:    DefaultDateFormat,
		out:           os.Stdout,
		fs:            &RealFS{},
		clock:         time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.fillDefaults()

	theme, err := l.theme.Validate()
	if err != nil {
		return nil, err
	}
	l.theme = theme

	if !l.terminalLevel.valid() {
		return nil, &ConfigurationError{Level: l.terminalLevel, Reason: "terminal threshold is not a themed level"}
	}
	if !l.fileLevel.valid() {
		return nil, &ConfigurationError{Level: l.fileLevel, Reason: "file threshold is not a themed level"}
	}

	if l.fileDir != "" {
		if err := l.openSession(); err != nil {
			l.report("failed to initialize the log file", err)
			if l.raiseOnError {
				return nil, err
			}
		}
	}
	return l, nil
}

func (l *Logger) fillDefaults() {
	if l.location == nil {
		l.location = time.UTC
	}
	if l.out == nil {
		l.out = os.Stdout
	}
	if l.fs == nil {
		l.fs = &RealFS{}
	}
	if l.clock == nil {
		l.clock = time.Now
	}
	if l.dateFormat == "" {
		l.dateFormat = DefaultDateFormat
	}
}

func (l *Logger) openSession() error {
	dir, err := expandHome(l.fileDir)
	if err != nil {
		return &DirectoryCreationError{Dir: l.fileDir, Err: err}
	}
	sink := newFileSink(l.fs, dir, SessionFileName(l.clock()))
	if err := sink.prepare(); err != nil {
		return err
	}
	l.file = sink
	return nil
}

// LogLine sends text to every sink whose threshold admits level. Use
// LevelNone for a bare line. Both sinks are attempted even if one fails;
// failures are printed as ERROR lines and returned when raising is enabled.
func (l *Logger) LogLine(text string, level Level) error {
	if level != LevelNone && !level.valid() {
		return &ConfigurationError{Level: level, Reason: "unknown level"}
	}

	now := l.clock()
	var errs []error

	if l.PrintsToTerminal(level) {
		if err := l.print(now, text, level); err != nil {
			err = &TerminalWriteError{Err: err}
			l.report("failed to write to terminal", err)
			errs = append(errs, err)
		}
	}

	if l.WritesToFile(level) {
		if err := l.file.append(RenderFile(level, FileTimestamp(now), text)); err != nil {
			l.report("failed to append to log file", err)
			errs = append(errs, err)
		}
	}

	if !l.raiseOnError {
		return nil
	}
	return errors.Join(errs...)
}

// Logf formats according to a format specifier and logs the result.
func (l *Logger) Logf(level Level, format string, args ...any) error {
	return l.LogLine(fmt.Sprintf(format, args...), level)
}

// Bare logs text unstyled, filtered as a NORMAL line.
func (l *Logger) Bare(text string) error { return l.LogLine(text, LevelNone) }

// Debug logs text at LevelDebug.
func (l *Logger) Debug(text string) error { return l.LogLine(text, LevelDebug) }

// Normal logs text at LevelNormal.
func (l *Logger) Normal(text string) error { return l.LogLine(text, LevelNormal) }

// Prompt logs text at LevelPrompt.
func (l *Logger) Prompt(text string) error { return l.LogLine(text, LevelPrompt) }

// Motd logs text at LevelMotd.
func (l *Logger) Motd(text string) error { return l.LogLine(text, LevelMotd) }

// Info logs text at LevelInfo.
func (l *Logger) Info(text string) error { return l.LogLine(text, LevelInfo) }

// Warn logs text at LevelWarn.
func (l *Logger) Warn(text string) error { return l.LogLine(text, LevelWarn) }

// Error logs text at LevelError.
func (l *Logger) Error(text string) error { return l.LogLine(text, LevelError) }

// PrintsToTerminal reports whether a line at level reaches the terminal.
func (l *Logger) PrintsToTerminal(level Level) bool {
	return l.printing && l.terminalLevel.Rank() <= level.Rank()
}

// WritesToFile reports whether a line at level reaches the session file.
func (l *Logger) WritesToFile(level Level) bool {
	return l.file != nil && l.fileLevel.Rank() <= level.Rank()
}

// FilePath returns the session file path, or "" when file logging is off.
func (l *Logger) FilePath() string {
	if l.file == nil {
		return ""
	}
	return l.file.path()
}

// FileName returns the session file name, or "" when file logging is off.
func (l *Logger) FileName() string {
	if l.file == nil {
		return ""
	}
	return l.file.name
}

// Theme returns the validated theme in use.
func (l *Logger) Theme() Theme { return l.theme }

func (l *Logger) print(now time.Time, text string, level Level) error {
	var ts string
	if level != LevelNone && l.printTime {
		ts = TerminalTimestamp(now, l.location, l.dateFormat)
	}
	line := RenderTerminal(level, ts, text, l.theme.Resolve(level), l.printTime)
	_, err := fmt.Fprintln(l.out, line)
	return err
}

// report prints a sink failure as an ERROR line. Errors from printing the
// report itself are dropped.
func (l *Logger) report(what string, err error) {
	if !l.printing {
		return
	}
	_ = l.print(l.clock(), fmt.Sprintf("logprinter: %s: '%v'", what, err), LevelError)
}

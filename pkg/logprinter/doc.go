// Package logprinter is a leveled logger that prints themed lines to a
// terminal and can mirror them to a per-session log file.
//
// # Levels
//
// Seven levels are ordered from most to least verbose: DEBUG, NORMAL,
// PROMPT, MOTD, INFO, WARN, ERROR. A sink threshold admits a line when the
// line's level ranks at or above it, so a terminal threshold of NORMAL
// hides DEBUG and prints everything else. Bare lines (LevelNone) carry no
// badge and are ranked as NORMAL.
//
// # Terminal Output
//
// Each themed line has the form
//
//	[glyph] (timestamp) message
//
// with the badge, timestamp and message in the colors of the level's
// ThemeEntry. Text between single quotes is shown in the entry's quote
// color:
//
//	log.Info("connected to 'db-01'")
//
// # File Output
//
// WithFileDirectory creates the directory and names a session file after
// the construction time, e.g. 2024-01-02T03:04:05Z.log. Every record is
// appended as
//
//	WARN   2024-01-02T03:04:05Z disk low
//
// and the file is opened and closed per line.
//
// # Errors
//
// Sink failures are printed as ERROR lines. With WithRaiseOnError(true),
// the default, they are also returned; otherwise the call returns nil.
//
// # Usage
//
//	log, err := logprinter.New(
//	    logprinter.WithTerminalLevel(logprinter.LevelInfo),
//	    logprinter.WithFileDirectory("~/.local/state/myapp"),
//	)
//	if err != nil {
//	    return err
//	}
//	log.Motd("welcome")
//	log.Warn("disk low")
package logprinter

package logprinter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/pterm/pterm"
)

const (
	// DefaultDateFormat is the strftime layout used for terminal timestamps.
	DefaultDateFormat = "%b %d %H:%M:%S"

	// FileTimeLayout is used for file records and the session file name.
	// Times are always converted to UTC before formatting.
	FileTimeLayout = "2006-01-02T15:04:05Z"

	sessionFileSuffix = ".log"
	levelNameWidth    = 6
	reset             = "\x1b[0m"
)

// Escape returns the ANSI sequence that selects color c.
func Escape(c pterm.Color) string {
	return "\x1b[" + strconv.Itoa(int(c)) + "m"
}

// Reset returns the ANSI sequence that clears all attributes.
func Reset() string { return reset }

// RenderTerminal builds the styled terminal line for a record. Bare lines
// (LevelNone) are returned as is.
func RenderTerminal(level Level, timestamp, text string, entry ThemeEntry, withTime bool) string {
	if level == LevelNone {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(timestamp) + 32)

	b.WriteString(Escape(entry.Primary))
	b.WriteByte('[')
	b.WriteString(entry.Display)
	b.WriteByte(']')
	b.WriteString(reset)
	b.WriteByte(' ')

	if withTime {
		b.WriteString(Escape(entry.Time))
		b.WriteByte('(')
		b.WriteString(timestamp)
		b.WriteByte(')')
		b.WriteString(reset)
		b.WriteByte(' ')
	}

	b.WriteString(Escape(entry.Secondary))
	b.WriteString(Colorize(text, entry))
	b.WriteString(reset)
	return b.String()
}

// RenderFile builds the plain file record for a record, without the line
// terminator.
func RenderFile(level Level, timestamp, text string) string {
	return fmt.Sprintf("%-*s %s %s", levelNameWidth, level.String(), timestamp, text)
}

// TerminalTimestamp formats t in loc using a strftime layout.
func TerminalTimestamp(t time.Time, loc *time.Location, layout string) string {
	if loc == nil {
		loc = time.UTC
	}
	return strftime.Format(layout, t.In(loc))
}

// FileTimestamp formats t for file records.
func FileTimestamp(t time.Time) string {
	return t.UTC().Format(FileTimeLayout)
}

// SessionFileName names the session log created at t.
func SessionFileName(t time.Time) string {
	return FileTimestamp(t) + sessionFileSuffix
}

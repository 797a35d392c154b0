package logprinter

import (
	"fmt"
	"strings"
)

// Level is the severity of a log line. Lower values are more verbose.
type Level int

const (
	LevelDebug Level = iota
	LevelNormal
	LevelPrompt
	LevelMotd
	LevelInfo
	LevelWarn
	LevelError

	// LevelNone marks a bare line: no badge, no theme. It is ranked as
	// LevelNormal when compared against a threshold.
	LevelNone Level = -1
)

const levelCount = int(LevelError) + 1

var levelNames = [levelCount]string{
	LevelDebug:  "DEBUG",
	LevelNormal: "NORMAL",
	LevelPrompt: "PROMPT",
	LevelMotd:   "MOTD",
	LevelInfo:   "INFO",
	LevelWarn:   "WARN",
	LevelError:  "ERROR",
}

// Levels returns the themed levels in rank order.
func Levels() []Level {
	return []Level{
		LevelDebug,
		LevelNormal,
		LevelPrompt,
		LevelMotd,
		LevelInfo,
		LevelWarn,
		LevelError,
	}
}

func (l Level) String() string {
	if l == LevelNone {
		return "NONE"
	}
	if !l.valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Rank is the value compared against sink thresholds.
func (l Level) Rank() int {
	if l == LevelNone {
		return int(LevelNormal)
	}
	return int(l)
}

func (l Level) valid() bool {
	return l >= LevelDebug && l <= LevelError
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive;
// "NONE" and "BARE" map to LevelNone.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "NORMAL":
		return LevelNormal, nil
	case "PROMPT":
		return LevelPrompt, nil
	case "MOTD":
		return LevelMotd, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "NONE", "BARE":
		return LevelNone, nil
	default:
		return LevelNone, fmt.Errorf("unknown log level %q", s)
	}
}

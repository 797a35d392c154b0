package logprinter

import "github.com/pterm/pterm"

// Colors used when a theme entry leaves Quote or Time unset.
const (
	// DefaultQuoteColor highlights quoted text.
	DefaultQuoteColor = pterm.FgLightWhite
	// DefaultTimeColor mutes the terminal timestamp.
	DefaultTimeColor = pterm.FgDarkGray
)

// ThemeEntry is the presentation of a single level: the badge glyph, the
// badge color, the message color and the colors used for quoted text and
// the timestamp.
type ThemeEntry struct {
	Display   string
	Primary   pterm.Color
	Secondary pterm.Color
	Quote     pterm.Color
	Time      pterm.Color
}

// NewThemeEntry returns an entry using the default quote and time colors.
func NewThemeEntry(display string, primary, secondary pterm.Color) ThemeEntry {
	return ThemeEntry{
		Display:   display,
		Primary:   primary,
		Secondary: secondary,
		Quote:     DefaultQuoteColor,
		Time:      DefaultTimeColor,
	}
}

// Theme maps every themed level to its entry, indexed by the level value.
type Theme [levelCount]ThemeEntry

// DefaultTheme returns the built-in seven level theme. Every call returns a
// new value.
func DefaultTheme() Theme {
	return Theme{
		LevelDebug:  NewThemeEntry("λ", pterm.FgMagenta, pterm.FgLightMagenta),
		LevelNormal: NewThemeEntry("x", pterm.FgDarkGray, pterm.FgWhite),
		LevelPrompt: NewThemeEntry("%", pterm.FgGreen, pterm.FgLightGreen),
		LevelMotd:   NewThemeEntry("-", pterm.FgBlue, pterm.FgLightBlue),
		LevelInfo:   NewThemeEntry("i", pterm.FgCyan, pterm.FgLightCyan),
		LevelWarn:   NewThemeEntry("!", pterm.FgYellow, pterm.FgLightYellow),
		LevelError:  NewThemeEntry("‼", pterm.FgRed, pterm.FgLightRed),
	}
}

// Resolve returns the entry for level. LevelNone and out of range values
// resolve to the zero entry.
func (t Theme) Resolve(level Level) ThemeEntry {
	if !level.valid() {
		return ThemeEntry{}
	}
	return t[level]
}

// With returns a copy of t with the entry for level replaced.
func (t Theme) With(level Level, entry ThemeEntry) Theme {
	if level.valid() {
		t[level] = entry
	}
	return t
}

// Validate checks that every level has a glyph and both main colors, and
// fills unset quote and time colors with their defaults.
func (t Theme) Validate() (Theme, error) {
	for _, level := range Levels() {
		entry := t[level]
		switch {
		case entry.Display == "":
			return t, &ConfigurationError{Level: level, Reason: "theme entry has no display glyph"}
		case entry.Primary == 0:
			return t, &ConfigurationError{Level: level, Reason: "theme entry has no primary color"}
		case entry.Secondary == 0:
			return t, &ConfigurationError{Level: level, Reason: "theme entry has no secondary color"}
		}
		if entry.Quote == 0 {
			entry.Quote = DefaultQuoteColor
		}
		if entry.Time == 0 {
			entry.Time = DefaultTimeColor
		}
		t[level] = entry
	}
	return t, nil
}

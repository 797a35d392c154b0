package logprinter

import "strings"

// Colorize highlights text between single quotes with the entry's quote
// color and switches back to the secondary color after each closing quote.
// The quote characters themselves are kept. An unterminated quote leaves
// the rest of the text in the quote color.
func Colorize(text string, entry ThemeEntry) string {
	var b strings.Builder
	b.Grow(len(text) + 16)

	quotes := 0
	for _, r := range text {
		if r != '\'' {
			b.WriteRune(r)
			continue
		}
		quotes++
		if quotes%2 == 1 {
			b.WriteString(Escape(entry.Quote))
			b.WriteRune(r)
		} else {
			b.WriteRune(r)
			b.WriteString(Escape(entry.Secondary))
		}
	}
	return b.String()
}

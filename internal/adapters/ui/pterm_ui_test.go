package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtermUIWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	out := NewPtermUI().WithWriter(&buf)

	out.Section("Levels")
	require.NoError(t, out.Table([][]string{
		{"Level", "Glyph"},
		{"WARN", "!"},
	}))
	out.Println("done")

	plain := pterm.RemoveColorFromString(buf.String())
	assert.Contains(t, plain, "Levels")
	assert.Contains(t, plain, "WARN")
	assert.Contains(t, plain, "done\n")
}

func TestNoOpUI(t *testing.T) {
	var out UI = &NoOpUI{}
	out.Title("x")
	assert.NoError(t, out.Table([][]string{{"a"}}))
	assert.Same(t, out, out.WithWriter(nil))
}

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melih-ucgun/logprinter/internal/config"
	"github.com/melih-ucgun/logprinter/pkg/logprinter"
)

func testDefaults() config.Options {
	return config.Options{
		Level:      "NORMAL",
		FileLevel:  "DEBUG",
		Timezone:   "UTC",
		DateFormat: logprinter.DefaultDateFormat,
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd(testDefaults(), &buf)
	root.SetArgs(args)
	err := root.Execute()
	return pterm.RemoveColorFromString(buf.String()), err
}

// sessionFile returns the content of the only file in dir.
func sessionFile(t *testing.T, dir string) string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "Z.log"), entries[0].Name())
	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	return string(content)
}

func TestDemoBanner(t *testing.T) {
	out, err := run(t, "demo", "--no-time")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "[-] "+strings.Repeat("-", 48), lines[1])
	assert.Equal(t, "[-] Logprinter 'v1.0'", lines[2])
	assert.Equal(t, "[-] Author: 'mkow04 <maciejkowalski04@proton.me>'", lines[3])
	assert.Equal(t, "", lines[5])
}

func TestDemoAllLevels(t *testing.T) {
	out, err := run(t, "demo", "--all", "--level", "debug")
	require.NoError(t, err)

	for _, level := range logprinter.Levels() {
		assert.Contains(t, out, "a "+strings.ToLower(level.String())+" line")
	}
}

func TestLogWritesSessionFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	out, err := run(t, "log", "--as", "warn", "--dir", dir, "disk", "low")
	require.NoError(t, err)

	assert.Contains(t, out, "[!] (")
	assert.Contains(t, out, ") disk low")
	record := sessionFile(t, dir)
	assert.True(t, strings.HasPrefix(record, "WARN   "), record)
	assert.True(t, strings.HasSuffix(record, " disk low\n"), record)
}

func TestLogBareLine(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "log", "--as", "none", "--dir", dir, "just", "text")
	require.NoError(t, err)

	assert.Equal(t, "just text\n", out)
	assert.True(t, strings.HasPrefix(sessionFile(t, dir), "NONE   "))
}

func TestLogBelowThreshold(t *testing.T) {
	out, err := run(t, "log", "--as", "debug", "hidden")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLogRejectsBadInput(t *testing.T) {
	_, err := run(t, "log", "--as", "loud", "x")
	assert.Error(t, err)

	_, err = run(t, "log", "--level", "none", "x")
	assert.Error(t, err)
}

func TestLogDirectoryFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	dir := filepath.Join(blocker, "logs")

	_, err := run(t, "log", "--dir", dir, "x")
	var dirErr *logprinter.DirectoryCreationError
	assert.ErrorAs(t, err, &dirErr)

	out, err := run(t, "log", "--no-raise", "--dir", dir, "still printed")
	require.NoError(t, err)
	assert.Contains(t, out, "failed to initialize the log file")
	assert.Contains(t, out, "still printed")
}

func TestTheme(t *testing.T) {
	out, err := run(t, "theme", "--level", "info")
	require.NoError(t, err)

	for _, level := range logprinter.Levels() {
		assert.Contains(t, out, level.String())
	}
	assert.Contains(t, out, themeSample)
	assert.Contains(t, out, "Levels")
	assert.Contains(t, out, "Session file")
	assert.Contains(t, out, "disabled\n")
}

func TestThemeShowsSessionFile(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "theme", "--dir", dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 0)
	assert.Contains(t, out, dir)
}

func TestThemeQuiet(t *testing.T) {
	out, err := run(t, "theme", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestThemeRows(t *testing.T) {
	log, err := logprinter.New(logprinter.WithTerminalLevel(logprinter.LevelWarn))
	require.NoError(t, err)

	rows := themeRows(log)

	require.Len(t, rows, 8)
	assert.Equal(t, []string{"WARN", "5", "true", "false"}, rows[6][:4])
	assert.Equal(t, []string{"INFO", "4", "false", "false"}, rows[5][:4])
}

package logprinter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/logs", filepath.Join(home, "logs")},
		{"/var/log/app", "/var/log/app"},
		{"relative/logs", "relative/logs"},
		{"~other/logs", "~other/logs"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFileSinkAppends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	sink := newFileSink(&RealFS{}, dir, "session.log")

	require.NoError(t, sink.prepare())
	require.NoError(t, sink.append("one"))
	require.NoError(t, sink.append("two"))

	assert.Equal(t, []string{"one", "two"}, readLines(t, sink.path()))
}

func TestFileSinkMissingDirectory(t *testing.T) {
	sink := newFileSink(&RealFS{}, filepath.Join(t.TempDir(), "missing"), "session.log")

	err := sink.append("one")

	var appendErr *FileAppendError
	require.ErrorAs(t, err, &appendErr)
	assert.Equal(t, sink.path(), appendErr.Path)
}

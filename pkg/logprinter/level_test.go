package logprinter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOrder(t *testing.T) {
	levels := Levels()
	require.Len(t, levels, levelCount)
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1].Rank(), levels[i].Rank(), "%s should rank below %s", levels[i-1], levels[i])
	}
}

func TestLevelNoneRanksAsNormal(t *testing.T) {
	assert.Equal(t, LevelNormal.Rank(), LevelNone.Rank())
	assert.Equal(t, "NONE", LevelNone.String())
}

func TestParseLevelRoundTrip(t *testing.T) {
	for _, level := range append(Levels(), LevelNone) {
		got, err := ParseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, got)
	}
}

func TestParseLevelAliases(t *testing.T) {
	cases := map[string]Level{
		"warning": LevelWarn,
		" info ":  LevelInfo,
		"Motd":    LevelMotd,
		"bare":    LevelNone,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevelStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Level(42)", Level(42).String())
}

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonascend/internal/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseFloorRange(t *testing.T) {
	tests := []struct {
		in       string
		from, to int
		wantErr  bool
	}{
		{"1-20", 1, 20, false},
		{" 7 ", 7, 7, false},
		{"3 - 5", 3, 5, false},
		{"a-5", 0, 0, true},
		{"5-", 0, 0, true},
	}

	for _, tt := range tests {
		from, to, err := parseFloorRange(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			assert.True(t, errors.IsInvalidArgument(err))
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.from, from)
		assert.Equal(t, tt.to, to)
	}
}

func TestQueryBiomeCommand(t *testing.T) {
	out, err := execute(t, "query", "biome", "astral", "void")
	require.NoError(t, err)
	assert.Contains(t, out, "(astral_void)")
	assert.Contains(t, out, "Mega-boss: void_emperor")
}

func TestQueryUnknownEnemy(t *testing.T) {
	_, err := execute(t, "query", "enemy", "nobody")
	require.Error(t, err)
	assert.Equal(t, 3, errors.GetCode(err).ExitCode())
}

func TestFloorInfoCommand(t *testing.T) {
	out, err := execute(t, "floor-info", "33")
	require.NoError(t, err)
	assert.Contains(t, out, "FLOOR 33 INFORMATION")
	assert.Contains(t, out, "Boss floor: true")
}

func TestGenerateCommand(t *testing.T) {
	out, err := execute(t, "generate", "--floor", "1", "--width", "40", "--height", "30", "--seed", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "=== FLOOR 1 ===")
	assert.Contains(t, out, "Seed: 42 | DQS:")

	again, err := execute(t, "generate", "--floor", "1", "--width", "40", "--height", "30", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerateRejectsBadFloor(t *testing.T) {
	_, err := execute(t, "generate", "--floor", "101")
	require.Error(t, err)
	assert.True(t, errors.IsOutOfRange(err))
}

func TestBatchCommand(t *testing.T) {
	out, err := execute(t, "batch", "--floors", "1-3", "--seed", "10")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "FLOOR"))
	assert.Contains(t, out, "Average DQS:")
	assert.Contains(t, out, "base seed 10")
}

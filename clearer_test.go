package unstyle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearTruncatesToZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.scss")
	require.NoError(t, os.WriteFile(path, []byte("body { color: red; }\n"), 0644))

	require.NoError(t, Clear(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestClearAlreadyEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.css")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	require.NoError(t, Clear(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestClearMissingFile(t *testing.T) {
	err := Clear(filepath.Join(t.TempDir(), "gone.css"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone.css")
}

func TestCountRules(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected int
	}{
		{
			name:     "single rule",
			src:      "body { color: red; }",
			expected: 1,
		},
		{
			name:     "multiple rules",
			src:      ".a { x: 1; }\n.b { y: 2; }\n.c { z: 3; }",
			expected: 3,
		},
		{
			name:     "nested media block counts individually",
			src:      "@media (min-width: 600px) { .a { x: 1; } }",
			expected: 2,
		},
		{
			name:     "empty source",
			src:      "",
			expected: 0,
		},
		{
			name:     "comments only",
			src:      "/* nothing here */",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, ok := CountRules([]byte(tt.src))
			assert.True(t, ok)
			assert.Equal(t, tt.expected, count)
		})
	}
}

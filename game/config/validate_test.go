package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"valid.json":     `{"name": "huge", "description": "Huge board", "size": 11}`,
		"even.json":      `{"name": "even", "description": "Even board", "size": 8}`,
		"nameless.json":  `{"description": "No name", "size": 5}`,
		"malformed.json": `{"name": `,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	tests := []struct {
		file    string
		valid   bool
		message string
	}{
		{"valid.json", true, "board: 11x11"},
		{"even.json", false, "size must be odd"},
		{"nameless.json", false, "name is required"},
		{"malformed.json", false, "invalid JSON"},
		{"missing.json", false, "failed to read file"},
	}

	for _, test := range tests {
		t.Run(test.file, func(t *testing.T) {
			result := ValidateFile(filepath.Join(dir, test.file))
			assert.Equal(t, test.file, result.File)
			assert.Equal(t, test.valid, result.Valid)
			require.NotEmpty(t, result.Messages)
			assert.Contains(t, strings.Join(result.Messages, "\n"), test.message)
		})
	}
}

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`{"name": "b", "description": "B", "size": 9}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"name": "a", "description": "A", "size": 4}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("# presets"), 0644))

	results, err := ValidateDir(dir)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a.json", results[0].File)
	assert.False(t, results[0].Valid)
	assert.Equal(t, "b.json", results[1].File)
	assert.True(t, results[1].Valid)
}

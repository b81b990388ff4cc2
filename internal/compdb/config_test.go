package compdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_defaults(t *testing.T) {
	cfg := NewConfig("/project")

	assert.Equal(t, "/project", cfg.ProjectRoot)
	assert.Equal(t, "src", cfg.SourceDir)
	assert.Equal(t, []string{"include"}, cfg.IncludeDirs)
	assert.Equal(t, "clang++", cfg.Compiler)
	assert.Equal(t, ".cpp", cfg.Suffix)
	assert.Equal(t, "compile_commands.json", cfg.OutputFile)
	assert.Equal(t, []string{"-std=c++20", "-Wall", "-Wextra", "-Iinclude"}, cfg.Flags())
}

func TestConfig_Flags_order(t *testing.T) {
	cfg := NewConfig("/project")
	cfg.Standard = "c++17"
	cfg.IncludeDirs = []string{"include", "third_party/fmt/include"}

	assert.Equal(t, []string{
		"-std=c++17",
		"-Wall",
		"-Wextra",
		"-Iinclude",
		"-Ithird_party/fmt/include",
	}, cfg.Flags())
}

func TestConfig_Resolve(t *testing.T) {
	root := t.TempDir()
	cfg := NewConfig(root)

	resolved, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src"), resolved.SourceDir)
	assert.True(t, filepath.IsAbs(resolved.ProjectRoot))

	abs := filepath.Join(t.TempDir(), "elsewhere")
	cfg.SourceDir = abs
	resolved, err = cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, abs, resolved.SourceDir)
}

func TestConfig_Resolve_does_not_alias_slices(t *testing.T) {
	cfg := NewConfig(t.TempDir())
	resolved, err := cfg.Resolve()
	require.NoError(t, err)

	resolved.IncludeDirs[0] = "changed"
	assert.Equal(t, "include", cfg.IncludeDirs[0])
}

func TestConfig_Resolve_rejects_invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty root", func(c *Config) { c.ProjectRoot = "" }},
		{"empty compiler", func(c *Config) { c.Compiler = "" }},
		{"empty suffix", func(c *Config) { c.Suffix = "" }},
		{"empty output", func(c *Config) { c.OutputFile = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig("/project")
			tt.mutate(&cfg)
			_, err := cfg.Resolve()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

package compdb

import (
	"fmt"
	"path/filepath"
)

const (
	DefaultSourceDir  = "src"
	DefaultCompiler   = "clang++"
	DefaultStandard   = "c++20"
	DefaultSuffix     = ".cpp"
	DefaultOutputFile = "compile_commands.json"
)

// Config describes a single generator run. It is built once and passed by
// value; nothing in this package mutates it.
type Config struct {
	ProjectRoot string
	SourceDir   string
	IncludeDirs []string
	Compiler    string
	Standard    string
	Warnings    []string
	Suffix      string
	OutputFile  string
}

// NewConfig returns the default configuration rooted at root.
func NewConfig(root string) Config {
	return Config{
		ProjectRoot: root,
		SourceDir:   DefaultSourceDir,
		IncludeDirs: []string{"include"},
		Compiler:    DefaultCompiler,
		Standard:    DefaultStandard,
		Warnings:    []string{"-Wall", "-Wextra"},
		Suffix:      DefaultSuffix,
		OutputFile:  DefaultOutputFile,
	}
}

// Resolve returns a copy of c with ProjectRoot and SourceDir made absolute.
// A relative SourceDir is taken relative to ProjectRoot.
func (c Config) Resolve() (Config, error) {
	if c.ProjectRoot == "" {
		return c, fmt.Errorf("%w: project root is empty", ErrInvalidConfig)
	}
	if c.Compiler == "" {
		return c, fmt.Errorf("%w: compiler is empty", ErrInvalidConfig)
	}
	if c.Suffix == "" {
		return c, fmt.Errorf("%w: source suffix is empty", ErrInvalidConfig)
	}
	if c.OutputFile == "" {
		return c, fmt.Errorf("%w: output file is empty", ErrInvalidConfig)
	}

	root, err := filepath.Abs(c.ProjectRoot)
	if err != nil {
		return c, fmt.Errorf("%w: resolving project root %s: %w", ErrInvalidConfig, c.ProjectRoot, err)
	}
	src := c.SourceDir
	if src == "" {
		src = DefaultSourceDir
	}
	if !filepath.IsAbs(src) {
		src = filepath.Join(root, src)
	}

	out := c
	out.ProjectRoot = root
	out.SourceDir = filepath.Clean(src)
	out.IncludeDirs = append([]string(nil), c.IncludeDirs...)
	out.Warnings = append([]string(nil), c.Warnings...)
	return out, nil
}

// Flags returns the compiler flags in command-line order: the language
// standard, the warning flags, then one -I flag per include directory.
func (c Config) Flags() []string {
	flags := make([]string, 0, 1+len(c.Warnings)+len(c.IncludeDirs))
	if c.Standard != "" {
		flags = append(flags, "-std="+c.Standard)
	}
	flags = append(flags, c.Warnings...)
	for _, dir := range c.IncludeDirs {
		flags = append(flags, "-I"+dir)
	}
	return flags
}

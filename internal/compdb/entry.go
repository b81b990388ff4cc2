package compdb

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Entry is one record of a JSON compilation database.
type Entry struct {
	Directory string `json:"directory"`
	Command   string `json:"command"`
	File      string `json:"file"`
}

// MakeEntry builds the database entry for the source file at path. The
// command compiles the file relative to the project root and discards the
// object output.
func (c Config) MakeEntry(path string) (Entry, error) {
	// JSON cannot carry arbitrary bytes; an invalid name would be written
	// as a path that does not exist.
	if !utf8.ValidString(c.ProjectRoot) {
		return Entry{}, fmt.Errorf("%w: project root %q is not valid UTF-8", ErrPath, c.ProjectRoot)
	}
	rel, err := filepath.Rel(c.ProjectRoot, path)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %s: %w", ErrPath, path, err)
	}
	if !utf8.ValidString(rel) {
		return Entry{}, fmt.Errorf("%w: %q is not valid UTF-8", ErrPath, rel)
	}

	args := make([]string, 0, 6+len(c.Warnings)+len(c.IncludeDirs))
	args = append(args, c.Compiler)
	args = append(args, c.Flags()...)
	args = append(args, "-c", rel, "-o", os.DevNull)

	return Entry{
		Directory: c.ProjectRoot,
		Command:   strings.Join(args, " "),
		File:      rel,
	}, nil
}

// Package compdb builds JSON compilation databases (compile_commands.json)
// for C++ source trees.
package compdb

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
)

// Result summarizes a completed run.
type Result struct {
	OutputFile string
	Entries    int
	Bytes      int
}

// Run scans cfg.SourceDir, writes the database to cfg.OutputFile and prints
// a confirmation line to out. Either the whole database is written or an
// error is returned and the previous file is left in place.
func Run(cfg Config, out io.Writer) (*Result, error) {
	cfg, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	slog.Debug("collecting sources", "dir", cfg.SourceDir, "suffix", cfg.Suffix)
	sources, err := CollectSources(cfg.SourceDir, cfg.Suffix)
	if err != nil {
		return nil, err
	}
	slog.Debug("collected sources", "count", len(sources))

	entries := make([]Entry, 0, len(sources))
	for _, src := range sources {
		entry, err := cfg.MakeEntry(src)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	data, err := Marshal(entries)
	if err != nil {
		return nil, err
	}
	if err := WriteFile(cfg.OutputFile, data); err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "[+] %s generated.\n", filepath.Base(cfg.OutputFile))
	return &Result{
		OutputFile: cfg.OutputFile,
		Entries:    len(entries),
		Bytes:      len(data),
	}, nil
}

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/octoberswimmer/compdb/internal/compdb"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	projectRoot string
	sourceDir   string
	includeDirs []string
	compiler    string
	standard    string
	outputFile  string
}

func (o *generateOptions) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.projectRoot, "project-root", "", "Project root for relative paths (default: cwd)")
	cmd.Flags().StringVar(&o.sourceDir, "src", compdb.DefaultSourceDir, "Source directory, relative to the project root")
	cmd.Flags().StringArrayVarP(&o.includeDirs, "include", "I", []string{"include"}, "Include directory passed as -I (repeatable)")
	cmd.Flags().StringVar(&o.compiler, "compiler", compdb.DefaultCompiler, "Compiler binary used in each command")
	cmd.Flags().StringVar(&o.standard, "std", compdb.DefaultStandard, "Language standard passed as -std")
	cmd.Flags().StringVarP(&o.outputFile, "output", "o", compdb.DefaultOutputFile, "Output file path")
}

func (o *generateOptions) config() (compdb.Config, error) {
	root := o.projectRoot
	if root == "" {
		var err error
		root, err = os.Getwd()
		if err != nil {
			return compdb.Config{}, fmt.Errorf("getting working directory: %w", err)
		}
	}
	cfg := compdb.NewConfig(root)
	cfg.SourceDir = o.sourceDir
	cfg.IncludeDirs = o.includeDirs
	cfg.Compiler = o.compiler
	cfg.Standard = o.standard
	cfg.OutputFile = o.outputFile
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := opts.config()
	if err != nil {
		return &ExitError{Code: exitCommandError, Err: err}
	}
	result, err := compdb.Run(cfg, cmd.OutOrStdout())
	if err != nil {
		code := exitFailure
		switch {
		case errors.Is(err, compdb.ErrInvalidConfig),
			errors.Is(err, compdb.ErrTraversal),
			errors.Is(err, compdb.ErrPath):
			code = exitCommandError
		}
		return &ExitError{Code: code, Err: err}
	}
	slog.Info("wrote database", "path", result.OutputFile, "bytes", result.Bytes, "entries", result.Entries)
	return nil
}

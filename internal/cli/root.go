// SPDX-License-Identifier: MIT
// Package cli implements the mlr command tree.
//
// Operands come from a document file (-f). Results are written to stdout in
// text or YAML form; logs go to stderr. Settings are read from MLR_*
// environment variables and overridden by flags.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mlr/internal/config"
	"github.com/katalvlaran/mlr/internal/document"
)

var (
	// ErrOrderLimit is returned when a determinant-family operand exceeds the configured order.
	ErrOrderLimit = errors.New("cli: matrix order exceeds limit")

	// ErrNoDocument is returned when an operand command runs without -f.
	ErrNoDocument = errors.New("cli: no operand document (use -f)")

	// ErrVerification is returned when --verify finds the cofactor and LU determinants disagree.
	ErrVerification = errors.New("cli: determinant verification failed")
)

// stdinPath makes -f read a YAML document from standard input.
const stdinPath = "-"

// rootOptions carries the state shared by every subcommand.
type rootOptions struct {
	file     string
	output   string
	maxOrder int
	verbose  bool

	cfg config.Config
	log *logrus.Logger
}

// Execute runs mlr against the process's standard streams.
func Execute() error {
	cmd := NewRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

// NewRootCommand builds the mlr command tree writing results to out and logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{log: logrus.New()}
	opts.log.SetOutput(errOut)
	opts.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cmd := &cobra.Command{
		Use:   "mlr",
		Short: "Dense matrix and vector algebra",
		Long: `mlr evaluates matrix and vector algebra on operands read from a document.

Documents are YAML, JSON or TOML files with the keys:
  a, b  - matrices (lists of rows)
  u, v  - vectors
  k     - scalar

The determinant family (det, cofactor, adjugate, inverse, minor) uses cofactor
expansion and is bounded by --max-order (MLR_MAX_ORDER).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.complete()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", "operand document (.yaml, .yml, .json, .toml; - for YAML on stdin)")
	flags.StringVarP(&opts.output, "output", "o", "", "output format: text or yaml (default from MLR_OUTPUT)")
	flags.IntVar(&opts.maxOrder, "max-order", 0, "largest order accepted by the determinant family (default from MLR_MAX_ORDER)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newMatrixCommands(opts)...)
	cmd.AddCommand(
		newVecCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

// complete merges environment configuration with flags and configures logging.
func (o *rootOptions) complete() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.output != "" {
		cfg.Output = o.output
	}
	if o.maxOrder != 0 {
		cfg.MaxOrder = o.maxOrder
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if o.verbose {
		level = logrus.DebugLevel
	}
	o.log.SetLevel(level)
	o.cfg = cfg

	return nil
}

// load reads the operand document named by -f.
func (o *rootOptions) load(cmd *cobra.Command) (*document.Document, error) {
	switch o.file {
	case "":
		return nil, ErrNoDocument
	case stdinPath:
		o.log.Debug("reading operands from stdin")
		return document.Decode(cmd.InOrStdin(), document.FormatYAML)
	}

	o.log.WithField("file", o.file).Debug("loading operands")
	return document.Load(o.file)
}

// checkOrder rejects square operands above the configured order before the
// factorial-time kernels run. Shape errors are left to the kernel.
func (o *rootOptions) checkOrder(n int) error {
	if n > o.cfg.MaxOrder {
		return fmt.Errorf("order %d > %d: %w", n, o.cfg.MaxOrder, ErrOrderLimit)
	}

	return nil
}

// Package main implements the dialecte command-line interface.
//
// dialecte is a small Lisp-family expression interpreter. The CLI keeps
// the teacher's three-mode boundary (REPL / -e / file) but expresses it as
// a single cobra.Command instead of stdlib flag, per SPEC_FULL.md §10.1.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/hipparcos/dialecte/internal/diag"
	"github.com/hipparcos/dialecte/internal/eval"
	"github.com/hipparcos/dialecte/internal/value"
)

const (
	promptPlain   = "dialecte> "
	promptColored = "\x1b[36mdialecte>\x1b[0m "
)

// exitCoder lets RunE report §6's distinct I/O-error exit code without the
// root command's error path collapsing every failure into one code.
type exitCoder interface {
	error
	ExitCode() int
}

type ioError struct{ cause error }

func (e *ioError) Error() string { return e.cause.Error() }
func (e *ioError) ExitCode() int { return 2 }

type evalError struct{ cause error }

func (e *evalError) Error() string { return e.cause.Error() }
func (e *evalError) ExitCode() int { return 1 }

var (
	exprFlag    string
	verboseFlag bool
	noColorFlag bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		code := 1
		var ec exitCoder
		if asExitCoder(err, &ec) {
			code = ec.ExitCode()
		}
		os.Exit(code)
	}
}

func asExitCoder(err error, ec *exitCoder) bool {
	e, ok := err.(exitCoder)
	if ok {
		*ec = e
	}

	return ok
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dialecte [file]",
		Short:         "dialecte - a small Lisp-family expression interpreter",
		Long:          "dialecte evaluates expressions in a Build-Your-Own-Lisp-style language.\nWith no arguments it starts an interactive REPL; -e evaluates one\nexpression; a file path argument evaluates that file.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}
	root.Flags().StringVarP(&exprFlag, "eval", "e", "", "evaluate a single expression and print the result")
	root.Flags().BoolVar(&verboseFlag, "verbose", false, "trace each top-level form as it is evaluated")
	root.Flags().BoolVar(&noColorFlag, "no-color", false, "disable REPL prompt coloring")

	return root
}

func runRoot(cmd *cobra.Command, args []string) error {
	env := eval.DefaultEnv()
	tracer := diag.New(cmd.ErrOrStderr(), verboseFlag)

	switch {
	case exprFlag != "":
		return evalAndPrint(cmd, env, tracer, exprFlag)
	case len(args) == 1:
		return evalFile(cmd, env, tracer, args[0])
	default:
		return runREPL(cmd, env, tracer)
	}
}

func evalAndPrint(cmd *cobra.Command, env *value.Environment, tracer *diag.Tracer, src string) error {
	v, err := eval.EvalFromStringTraced(env, src, tracer)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)

		return &evalError{cause: err}
	}
	fmt.Fprintln(cmd.OutOrStdout(), eval.PrintValue(v))

	return nil
}

func evalFile(cmd *cobra.Command, env *value.Environment, tracer *diag.Tracer, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)

		return &ioError{cause: err}
	}

	return evalAndPrint(cmd, env, tracer, string(content))
}

// runREPL drives an interactive read-eval-print loop with line
// editing/history from github.com/peterh/liner, keeping the line-editing
// concern entirely at the CLI boundary per §6's "deliberately out of
// scope for the core".
func runREPL(cmd *cobra.Command, env *value.Environment, tracer *diag.Tracer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	prompt := promptColored
	if noColorFlag {
		prompt = promptPlain
	}

	for {
		input, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)

			return &ioError{cause: err}
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		v, err := eval.EvalFromStringTraced(env, input, tracer)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)

			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), eval.PrintValue(v))
	}

	return nil
}

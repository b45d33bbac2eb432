// Package glamrepl implements glam's interactive front end, grounded
// on the go-mix example's repl package: readline for line editing and
// history, fatih/color for categorizing output. Unlike go-mix's
// one-environment-per-line evaluator, it reuses a single persistent
// interp.Interpreter across the whole session, so a variable declared
// on one line is visible on the next (SPEC_FULL.md §2.1).
package glamrepl

import (
	"io"
	"strings"

	"github.com/Glamerio/Glamerio-Language/internal/interp"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	bannerColor = color.New(color.FgGreen)
	infoColor   = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
	resultColor = color.New(color.FgYellow)
)

// Repl is an interactive Glam session.
type Repl struct {
	Prompt string
}

// New creates a Repl with the given prompt string.
func New(prompt string) *Repl {
	return &Repl{Prompt: prompt}
}

// Start runs the read-eval-print loop, reading lines from in and
// writing prompts, echoed results, and errors to out, until EOF or a
// `.exit` line.
func (r *Repl) Start(in io.Reader, out io.Writer) error {
	infoColor.Fprintln(out, "Glam interactive session. Type '.exit' to quit.")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Prompt,
		Stdin:           io.NopCloser(in),
		Stdout:          out,
		HistoryLimit:    1000,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	ip := interp.New(out, in)

	for {
		line, err := rl.Readline()
		if err != nil {
			bannerColor.Fprintln(out, "Goodbye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			bannerColor.Fprintln(out, "Goodbye!")
			return nil
		}

		r.evalLine(ip, line, out)
	}
}

func (r *Repl) evalLine(ip *interp.Interpreter, line string, out io.Writer) {
	value, err := ip.RunLine(line)
	if err != nil {
		errorColor.Fprintln(out, ip.FormatError(err))
		return
	}
	if value != nil {
		resultColor.Fprintln(out, value.Inspect())
	}
}

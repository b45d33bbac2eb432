// Package interp wires the lexer, parser, and evaluator into a single
// Interpreter, the way the teacher's internal/interp/runner assembles
// its own pipeline pieces behind one entry point.
package interp

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Glamerio/Glamerio-Language/internal/ast"
	"github.com/Glamerio/Glamerio-Language/internal/errors"
	"github.com/Glamerio/Glamerio-Language/internal/interp/evaluator"
	"github.com/Glamerio/Glamerio-Language/internal/interp/runtime"
	"github.com/Glamerio/Glamerio-Language/internal/parser"
)

// Interpreter owns the process-global registries named in SPEC_FULL.md
// §9 (functions, classes) plus the IO adapter, and implements
// evaluator.Host so the evaluator can reach them without importing
// this package (avoiding the import cycle evaluator would otherwise
// have with its own host).
type Interpreter struct {
	global  *runtime.Scope
	funcs   map[string]*ast.FunctionDef
	classes map[string]*runtime.Class

	out    io.Writer
	in     *bufio.Reader
	eval   *evaluator.Evaluator
	source string
}

// New creates an Interpreter that prints to out and reads input lines
// from in.
func New(out io.Writer, in io.Reader) *Interpreter {
	return &Interpreter{
		global:  runtime.NewScope(),
		funcs:   make(map[string]*ast.FunctionDef),
		classes: make(map[string]*runtime.Class),
		out:     out,
		in:      bufio.NewReader(in),
		eval:    evaluator.New(),
	}
}

// GetFunction implements evaluator.Host.
func (ip *Interpreter) GetFunction(name string) (*ast.FunctionDef, bool) {
	def, ok := ip.funcs[name]
	return def, ok
}

// SetFunction implements evaluator.Host.
func (ip *Interpreter) SetFunction(name string, def *ast.FunctionDef) {
	ip.funcs[name] = def
}

// GetClass implements evaluator.Host.
func (ip *Interpreter) GetClass(name string) (*runtime.Class, bool) {
	class, ok := ip.classes[name]
	return class, ok
}

// SetClass implements evaluator.Host.
func (ip *Interpreter) SetClass(name string, class *runtime.Class) {
	ip.classes[name] = class
}

// Print implements evaluator.Host: one line, one trailing newline, per
// SPEC_FULL.md §4.4 "Print".
func (ip *Interpreter) Print(line string) {
	fmt.Fprintln(ip.out, line)
}

// Input implements evaluator.Host: write the prompt, then block for a
// line of input (SPEC_FULL.md §4.3 "String/Array/MapLiteral/Input").
func (ip *Interpreter) Input(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(ip.out, prompt)
	}
	line, err := ip.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return trimNewline(line), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// context builds the top-level evaluation context against this
// Interpreter's persistent global scope, rather than
// evaluator.NewGlobalContext's fresh one, so that Run and RunLine
// calls share state the way a REPL session requires.
func (ip *Interpreter) context() *evaluator.Context {
	return &evaluator.Context{Global: ip.global, Host: ip}
}

// Run lexes, parses, and evaluates source in one pass against this
// Interpreter's persistent global scope. Uncaught errors are returned
// as *errors.GlamError so callers can render them with source context
// (see internal/errors.Format).
func (ip *Interpreter) Run(source string) error {
	ip.source = source
	prog, err := parser.Parse(source)
	if err != nil {
		return err
	}
	ctx := ip.context()
	return ip.eval.RunProgram(prog, ctx)
}

// RunLine evaluates a single REPL line against the same persistent
// global scope Run uses, returning the Outcome's value for echoing
// (SPEC_FULL.md §2.1's REPL: "one persistent global environment across
// lines").
func (ip *Interpreter) RunLine(line string) (runtime.Value, error) {
	ip.source = line
	prog, err := parser.Parse(line)
	if err != nil {
		return nil, err
	}
	ctx := ip.context()
	var last runtime.Value = runtime.Null
	for _, stmt := range prog.Statements {
		outcome, err := ip.eval.Exec(stmt, ctx)
		if err != nil {
			return nil, err
		}
		last = outcome.Value
	}
	return last, nil
}

// FormatError renders err with the source text of the most recent Run
// or RunLine call, the way the teacher's internal/errors formats
// CompilerError with a caret (column is unknown to the evaluator, so
// it is always suppressed here).
func (ip *Interpreter) FormatError(err error) string {
	ge, ok := err.(*errors.GlamError)
	if !ok {
		return err.Error()
	}
	return errors.Format(ge, ip.source, 0)
}

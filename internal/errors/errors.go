// Package errors renders Glam diagnostics (lex, parse, and runtime
// errors alike) with source-line context and a caret, the way the
// teacher's compiler formats its own CompilerError.
package errors

import (
	"fmt"
	"strings"
)

// Kind is the closed set of error kinds named in SPEC_FULL.md §7.
type Kind string

const (
	KindLex        Kind = "LexError"
	KindParse      Kind = "ParseError"
	KindName       Kind = "NameError"
	KindType       Kind = "TypeError"
	KindAccess     Kind = "AccessError"
	KindConversion Kind = "ConversionError"
	KindIndex      Kind = "IndexError"
)

// GlamError is a single diagnostic: a Kind, a human-readable message,
// and the source line it occurred on (0 if unknown).
type GlamError struct {
	Kind    Kind
	Message string
	Line    int
}

func New(kind Kind, line int, format string, args ...any) *GlamError {
	return &GlamError{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line}
}

func (e *GlamError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Format renders the diagnostic with the offending source line and a
// caret, mirroring the teacher's CompilerError.Format. column is
// 1-based; pass 0 when the column within the line is not known, which
// suppresses the caret.
func Format(err *GlamError, source string, column int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s", err.Kind, err.Message))

	if err.Line <= 0 {
		return sb.String()
	}

	lines := strings.Split(source, "\n")
	if err.Line-1 >= len(lines) {
		return sb.String()
	}
	sourceLine := lines[err.Line-1]

	lineNumStr := fmt.Sprintf("%4d | ", err.Line)
	sb.WriteString("\n")
	sb.WriteString(lineNumStr)
	sb.WriteString(sourceLine)
	if column > 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+column-1))
		sb.WriteString("^")
	}
	return sb.String()
}

// As reports whether err is a *GlamError of the given Kind.
func As(err error, kind Kind) bool {
	ge, ok := err.(*GlamError)
	return ok && ge.Kind == kind
}

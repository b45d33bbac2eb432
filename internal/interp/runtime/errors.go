package runtime

import (
	"fmt"

	"github.com/Glamerio/Glamerio-Language/internal/errors"
)

// Runtime errors are constructed as *errors.GlamError so that lex,
// parse, and runtime diagnostics share one formatting path
// (internal/errors.Format) and one closed Kind set (SPEC_FULL.md §7).

func NameError(line int, format string, args ...any) error {
	return errors.New(errors.KindName, line, format, args...)
}

func TypeError(line int, format string, args ...any) error {
	return errors.New(errors.KindType, line, format, args...)
}

func AccessError(line int, format string, args ...any) error {
	return errors.New(errors.KindAccess, line, format, args...)
}

func ConversionError(line int, format string, args ...any) error {
	return errors.New(errors.KindConversion, line, format, args...)
}

func IndexError(line int, format string, args ...any) error {
	return errors.New(errors.KindIndex, line, format, args...)
}

// ErrorMessage extracts the message try/catch binds to its catch
// variable: the GlamError's own message, or err.Error() for anything
// else (defensive — every error raised by the evaluator is a
// GlamError, but this keeps try/catch total).
func ErrorMessage(err error) string {
	if ge, ok := err.(*errors.GlamError); ok {
		return ge.Message
	}
	return fmt.Sprintf("%v", err)
}

package evaluator

import (
	"strconv"
	"strings"

	"github.com/Glamerio/Glamerio-Language/internal/ast"
	"github.com/Glamerio/Glamerio-Language/internal/interp/runtime"
)

// evalLiteral classifies a Literal's raw text per SPEC_FULL.md §4.3:
// "null", "True"/"False", a float if the text contains '.', else an
// integer. The lexer only ever produces well-formed text here, so the
// numeric parses are not expected to fail.
func evalLiteral(node *ast.Literal) (runtime.Value, error) {
	switch node.Text {
	case "null":
		return runtime.Null, nil
	case "True":
		return runtime.Bool(true), nil
	case "False":
		return runtime.Bool(false), nil
	}
	if strings.Contains(node.Text, ".") {
		f, err := strconv.ParseFloat(node.Text, 64)
		if err != nil {
			return nil, runtime.ConversionError(node.Line(), "malformed float literal %q", node.Text)
		}
		return runtime.Float(f), nil
	}
	n, err := strconv.ParseInt(node.Text, 10, 64)
	if err != nil {
		return nil, runtime.ConversionError(node.Line(), "malformed integer literal %q", node.Text)
	}
	return runtime.Int(n), nil
}

// Stringify renders a Value the way `print` does: every value defers
// to its own Inspect, so this is currently a thin, explicit name for
// that call site (kept separate from Inspect so print formatting can
// diverge from debug formatting later without touching Value itself).
func Stringify(v runtime.Value) string {
	return v.Inspect()
}

// evalIndexAccess implements `Collection[Index]` for arrays (integer
// index, bounds-checked), maps (string key), and strings (integer
// index yielding a one-character string) — SPEC_FULL.md §4.3.
func (e *Evaluator) evalIndexAccess(node *ast.IndexAccess, ctx *Context) (runtime.Value, error) {
	coll, err := e.Eval(node.Collection, ctx)
	if err != nil {
		return nil, err
	}
	idx, err := e.Eval(node.Index, ctx)
	if err != nil {
		return nil, err
	}

	switch c := coll.(type) {
	case *runtime.Array:
		i, ok := idx.(runtime.Int)
		if !ok {
			return nil, runtime.TypeError(node.Line(), "array index must be an int, got %s", idx.Type())
		}
		if int(i) < 0 || int(i) >= len(c.Elements) {
			return nil, runtime.IndexError(node.Line(), "array index %d out of range", i)
		}
		return c.Elements[i], nil

	case *runtime.Map:
		key, ok := idx.(runtime.Str)
		if !ok {
			return nil, runtime.TypeError(node.Line(), "map key must be a string, got %s", idx.Type())
		}
		v, ok := c.Get(string(key))
		if !ok {
			return nil, runtime.IndexError(node.Line(), "map has no key %q", string(key))
		}
		return v, nil

	case runtime.Str:
		i, ok := idx.(runtime.Int)
		if !ok {
			return nil, runtime.TypeError(node.Line(), "string index must be an int, got %s", idx.Type())
		}
		runes := []rune(string(c))
		if int(i) < 0 || int(i) >= len(runes) {
			return nil, runtime.IndexError(node.Line(), "string index %d out of range", i)
		}
		return runtime.Str(string(runes[i])), nil
	}

	return nil, runtime.TypeError(node.Line(), "%s is not indexable", coll.Type())
}

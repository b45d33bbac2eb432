package evaluator

import (
	"strconv"
	"strings"

	"github.com/Glamerio/Glamerio-Language/internal/ast"
	"github.com/Glamerio/Glamerio-Language/internal/interp/runtime"
)

// execVarDeclaration implements SPEC_FULL.md §4.2/§4.4: every declared
// name except the last initializes to null; the last name receives
// Init's value (or null if Init is nil). A declared int/float type
// coerces a string initializer, failing with ConversionError.
func (e *Evaluator) execVarDeclaration(node *ast.VarDeclaration, ctx *Context) (runtime.Outcome, error) {
	for i, name := range node.Names {
		var value runtime.Value = runtime.Null
		if i == len(node.Names)-1 && node.Init != nil {
			v, err := e.Eval(node.Init, ctx)
			if err != nil {
				return runtime.Outcome{}, err
			}
			value = v
		}
		coerced, err := coerce(node.Type, value, node.Line())
		if err != nil {
			return runtime.Outcome{}, err
		}
		ctx.Declare(name, coerced)
	}
	return runtime.Ok(runtime.Null), nil
}

// coerce implements SPEC_FULL.md §4.4's type-coercion rule: it only
// ever fires when declType is "int" or "float" and v is a string;
// every other combination passes v through unchanged, since Glam's
// declared types are syntactic annotations, not enforced types.
func coerce(declType string, v runtime.Value, line int) (runtime.Value, error) {
	if declType != "int" && declType != "float" {
		return v, nil
	}
	str, ok := v.(runtime.Str)
	if !ok {
		return v, nil
	}
	text := strings.TrimSpace(string(str))
	switch declType {
	case "int":
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, runtime.ConversionError(line, "cannot convert %q to int", text)
		}
		return runtime.Int(n), nil
	default: // "float"
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, runtime.ConversionError(line, "cannot convert %q to float", text)
		}
		return runtime.Float(f), nil
	}
}

func (e *Evaluator) execIf(node *ast.If, ctx *Context) (runtime.Outcome, error) {
	cond, err := e.Eval(node.Condition, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if cond.Truthy() {
		return e.Exec(node.Then, ctx)
	}
	if node.Else != nil {
		return e.Exec(node.Else, ctx)
	}
	return runtime.Ok(runtime.Null), nil
}

func (e *Evaluator) execWhile(node *ast.While, ctx *Context) (runtime.Outcome, error) {
	for {
		cond, err := e.Eval(node.Condition, ctx)
		if err != nil {
			return runtime.Outcome{}, err
		}
		if !cond.Truthy() {
			return runtime.Ok(runtime.Null), nil
		}
		outcome, err := e.Exec(node.Body, ctx)
		if err != nil {
			return runtime.Outcome{}, err
		}
		if outcome.IsReturn {
			return outcome, nil
		}
	}
}

func (e *Evaluator) execFor(node *ast.For, ctx *Context) (runtime.Outcome, error) {
	if node.Init != nil {
		if _, err := e.Exec(node.Init, ctx); err != nil {
			return runtime.Outcome{}, err
		}
	}
	for {
		cond, err := e.Eval(node.Condition, ctx)
		if err != nil {
			return runtime.Outcome{}, err
		}
		if !cond.Truthy() {
			return runtime.Ok(runtime.Null), nil
		}
		outcome, err := e.Exec(node.Body, ctx)
		if err != nil {
			return runtime.Outcome{}, err
		}
		if outcome.IsReturn {
			return outcome, nil
		}
		if node.Step != nil {
			if _, err := e.Eval(node.Step, ctx); err != nil {
				return runtime.Outcome{}, err
			}
		}
	}
}

func (e *Evaluator) execForEach(node *ast.ForEach, ctx *Context) (runtime.Outcome, error) {
	iterable, err := e.Eval(node.Iterable, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}

	elements, err := iterate(iterable, node.Line())
	if err != nil {
		return runtime.Outcome{}, err
	}

	for _, elem := range elements {
		ctx.Declare(node.Name, elem)
		outcome, err := e.Exec(node.Body, ctx)
		if err != nil {
			return runtime.Outcome{}, err
		}
		if outcome.IsReturn {
			return outcome, nil
		}
	}
	return runtime.Ok(runtime.Null), nil
}

// iterate enumerates the elements a for-each may walk: an array as
// itself, a map as its values in insertion order (§2.2 supplement),
// or a string as its individual characters (§2.2 supplement).
func iterate(v runtime.Value, line int) ([]runtime.Value, error) {
	switch val := v.(type) {
	case *runtime.Array:
		return val.Elements, nil
	case *runtime.Map:
		elems := make([]runtime.Value, 0, val.Len())
		for _, k := range val.Keys() {
			ev, _ := val.Get(k)
			elems = append(elems, ev)
		}
		return elems, nil
	case runtime.Str:
		runes := []rune(string(val))
		elems := make([]runtime.Value, len(runes))
		for i, r := range runes {
			elems[i] = runtime.Str(string(r))
		}
		return elems, nil
	}
	return nil, runtime.TypeError(line, "cannot iterate over %s", v.Type())
}

// execTryCatch implements SPEC_FULL.md §4.4: on an error raised while
// evaluating Try, bind the error message into a fresh scope copied
// from the currently active one and run Catch against it; a Return
// raised inside Try is never intercepted here, since it is an Outcome,
// not a Go error.
func (e *Evaluator) execTryCatch(node *ast.TryCatch, ctx *Context) (runtime.Outcome, error) {
	outcome, err := e.ExecBlock(node.Try, ctx)
	if err == nil {
		return outcome, nil
	}

	catchScope := runtime.NewScope()
	active := ctx.Local
	if active == nil {
		active = ctx.Global
	}
	for _, name := range active.Names() {
		v, _ := active.Get(name)
		catchScope.Set(name, v)
	}
	if node.CatchVar != "" {
		catchScope.Set(node.CatchVar, runtime.Str(runtime.ErrorMessage(err)))
	}

	catchCtx := ctx.WithCall(catchScope, ctx.This, ctx.Class)
	return e.ExecBlock(node.Catch, catchCtx)
}

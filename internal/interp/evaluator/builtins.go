package evaluator

import (
	"strconv"
	"strings"

	"github.com/Glamerio/Glamerio-Language/internal/interp/runtime"
)

// callBuiltin implements the fixed builtin-function table of
// SPEC_FULL.md §2.2: len, push, pop, type_of, to_string, to_int,
// to_float. The parser already rejects user redefinition of these
// names, so this is the only place they are dispatched.
func callBuiltin(name string, args []runtime.Value, line int) (runtime.Value, error) {
	switch name {
	case "len":
		return builtinLen(args, line)
	case "push":
		return builtinPush(args, line)
	case "pop":
		return builtinPop(args, line)
	case "type_of":
		return builtinTypeOf(args, line)
	case "to_string":
		return builtinToString(args, line)
	case "to_int":
		return builtinToInt(args, line)
	case "to_float":
		return builtinToFloat(args, line)
	}
	return nil, runtime.NameError(line, "unknown builtin %q", name)
}

func arg(args []runtime.Value, i int) runtime.Value {
	if i < len(args) {
		return args[i]
	}
	return runtime.Null
}

func builtinLen(args []runtime.Value, line int) (runtime.Value, error) {
	switch v := arg(args, 0).(type) {
	case runtime.Str:
		return runtime.Int(len([]rune(string(v)))), nil
	case *runtime.Array:
		return runtime.Int(len(v.Elements)), nil
	case *runtime.Map:
		return runtime.Int(v.Len()), nil
	default:
		return nil, runtime.TypeError(line, "len() expects a string, array, or map, got %s", v.Type())
	}
}

// builtinPush appends value to the array in place and returns the
// array itself, so callers may chain (`push(xs, 1)[0]`) or ignore the
// result and rely on the mutation alone.
func builtinPush(args []runtime.Value, line int) (runtime.Value, error) {
	arr, ok := arg(args, 0).(*runtime.Array)
	if !ok {
		return nil, runtime.TypeError(line, "push() expects an array as its first argument, got %s", arg(args, 0).Type())
	}
	arr.Elements = append(arr.Elements, arg(args, 1))
	return arr, nil
}

// builtinPop removes and returns the array's last element; popping an
// empty array is an IndexError.
func builtinPop(args []runtime.Value, line int) (runtime.Value, error) {
	arr, ok := arg(args, 0).(*runtime.Array)
	if !ok {
		return nil, runtime.TypeError(line, "pop() expects an array, got %s", arg(args, 0).Type())
	}
	if len(arr.Elements) == 0 {
		return nil, runtime.IndexError(line, "pop() called on an empty array")
	}
	last := arr.Elements[len(arr.Elements)-1]
	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return last, nil
}

func builtinTypeOf(args []runtime.Value, _ int) (runtime.Value, error) {
	return runtime.Str(arg(args, 0).Type()), nil
}

func builtinToString(args []runtime.Value, _ int) (runtime.Value, error) {
	return runtime.Str(Stringify(arg(args, 0))), nil
}

func builtinToInt(args []runtime.Value, line int) (runtime.Value, error) {
	switch v := arg(args, 0).(type) {
	case runtime.Int:
		return v, nil
	case runtime.Float:
		return runtime.Int(int64(v)), nil
	case runtime.Str:
		n, err := strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
		if err != nil {
			return nil, runtime.ConversionError(line, "cannot convert %q to int", string(v))
		}
		return runtime.Int(n), nil
	case runtime.Bool:
		if v {
			return runtime.Int(1), nil
		}
		return runtime.Int(0), nil
	}
	return nil, runtime.ConversionError(line, "cannot convert %s to int", arg(args, 0).Type())
}

func builtinToFloat(args []runtime.Value, line int) (runtime.Value, error) {
	switch v := arg(args, 0).(type) {
	case runtime.Float:
		return v, nil
	case runtime.Int:
		return runtime.Float(float64(v)), nil
	case runtime.Str:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err != nil {
			return nil, runtime.ConversionError(line, "cannot convert %q to float", string(v))
		}
		return runtime.Float(f), nil
	case runtime.Bool:
		if v {
			return runtime.Float(1), nil
		}
		return runtime.Float(0), nil
	}
	return nil, runtime.ConversionError(line, "cannot convert %s to float", arg(args, 0).Type())
}

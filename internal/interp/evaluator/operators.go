package evaluator

import (
	"math"

	"github.com/Glamerio/Glamerio-Language/internal/interp/runtime"
)

// applyOperator implements SPEC_FULL.md §4.3's arithmetic/comparison/
// logical operator table. Logical operands are evaluated by the
// caller before this is reached, so "no short-circuiting" falls out
// naturally rather than needing special-casing here.
func applyOperator(op string, left, right runtime.Value, line int) (runtime.Value, error) {
	switch op {
	case "and", "&&":
		return runtime.Bool(left.Truthy() && right.Truthy()), nil
	case "or", "||":
		return runtime.Bool(left.Truthy() || right.Truthy()), nil
	case "==":
		return runtime.Bool(valuesEqual(left, right)), nil
	case "!=":
		return runtime.Bool(!valuesEqual(left, right)), nil
	case "+":
		if isStr(left) || isStr(right) {
			return runtime.Str(Stringify(left) + Stringify(right)), nil
		}
		return numericArith(op, left, right, line)
	case "-", "*", "/", "^":
		return numericArith(op, left, right, line)
	case "<", "<=", ">", ">=":
		return numericCompare(op, left, right, line)
	}
	return nil, runtime.TypeError(line, "unknown operator %q", op)
}

func isStr(v runtime.Value) bool {
	_, ok := v.(runtime.Str)
	return ok
}

func asFloat(v runtime.Value) (float64, bool) {
	switch n := v.(type) {
	case runtime.Int:
		return float64(n), true
	case runtime.Float:
		return float64(n), true
	}
	return 0, false
}

// numericArith implements `+ - * / ^` over int/float operands. `/`
// always produces a Float; `+ - *` stay Int when both operands are
// Int and promote to Float otherwise; `^` stays Int for a
// non-negative integer exponent and promotes to Float otherwise
// (SPEC_FULL.md "Runtime values" and the §8 `2^3^2 = 512` scenario).
func numericArith(op string, left, right runtime.Value, line int) (runtime.Value, error) {
	li, lIsInt := left.(runtime.Int)
	ri, rIsInt := right.(runtime.Int)

	if op == "^" {
		if lIsInt && rIsInt && ri >= 0 {
			return runtime.Int(intPow(int64(li), int64(ri))), nil
		}
		lf, lok := asFloat(left)
		rf, rok := asFloat(right)
		if !lok || !rok {
			return nil, runtime.TypeError(line, "cannot apply %q to %s and %s", op, left.Type(), right.Type())
		}
		return runtime.Float(math.Pow(lf, rf)), nil
	}

	if op == "/" {
		lf, lok := asFloat(left)
		rf, rok := asFloat(right)
		if !lok || !rok {
			return nil, runtime.TypeError(line, "cannot apply %q to %s and %s", op, left.Type(), right.Type())
		}
		if rf == 0 {
			return nil, runtime.TypeError(line, "division by zero")
		}
		return runtime.Float(lf / rf), nil
	}

	if lIsInt && rIsInt {
		switch op {
		case "+":
			return li + ri, nil
		case "-":
			return li - ri, nil
		case "*":
			return li * ri, nil
		}
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, runtime.TypeError(line, "cannot apply %q to %s and %s", op, left.Type(), right.Type())
	}
	switch op {
	case "+":
		return runtime.Float(lf + rf), nil
	case "-":
		return runtime.Float(lf - rf), nil
	case "*":
		return runtime.Float(lf * rf), nil
	}
	return nil, runtime.TypeError(line, "unknown operator %q", op)
}

func intPow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

func numericCompare(op string, left, right runtime.Value, line int) (runtime.Value, error) {
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, runtime.TypeError(line, "cannot compare %s and %s", left.Type(), right.Type())
	}
	switch op {
	case "<":
		return runtime.Bool(lf < rf), nil
	case "<=":
		return runtime.Bool(lf <= rf), nil
	case ">":
		return runtime.Bool(lf > rf), nil
	case ">=":
		return runtime.Bool(lf >= rf), nil
	}
	return nil, runtime.TypeError(line, "unknown operator %q", op)
}

// valuesEqual implements `==`/`!=`: numeric values compare by value
// across Int/Float, strings and booleans compare by value, null
// equals only null, and everything else (array, map, object, class,
// bound method) compares by reference identity.
func valuesEqual(left, right runtime.Value) bool {
	if lf, lok := asFloat(left); lok {
		if rf, rok := asFloat(right); rok {
			return lf == rf
		}
		return false
	}
	if runtime.IsNull(left) || runtime.IsNull(right) {
		return runtime.IsNull(left) && runtime.IsNull(right)
	}
	switch l := left.(type) {
	case runtime.Str:
		r, ok := right.(runtime.Str)
		return ok && l == r
	case runtime.Bool:
		r, ok := right.(runtime.Bool)
		return ok && l == r
	case *runtime.Array:
		r, ok := right.(*runtime.Array)
		return ok && l == r
	case *runtime.Map:
		r, ok := right.(*runtime.Map)
		return ok && l == r
	case *runtime.Object:
		r, ok := right.(*runtime.Object)
		return ok && l == r
	case *runtime.Class:
		r, ok := right.(*runtime.Class)
		return ok && l == r
	case *runtime.BoundMethod:
		r, ok := right.(*runtime.BoundMethod)
		return ok && l == r
	case *runtime.BoundStaticMethod:
		r, ok := right.(*runtime.BoundStaticMethod)
		return ok && l == r
	}
	return false
}

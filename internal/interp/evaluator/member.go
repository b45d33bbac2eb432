package evaluator

import (
	"github.com/Glamerio/Glamerio-Language/internal/ast"
	"github.com/Glamerio/Glamerio-Language/internal/interp/runtime"
)

// evalBinaryOp dispatches on the operator symbol: `.` for member
// access, `=` for assignment, everything else for arithmetic,
// comparison, and logical operators (SPEC_FULL.md §4.3).
func (e *Evaluator) evalBinaryOp(node *ast.BinaryOp, ctx *Context) (runtime.Value, error) {
	switch node.Op {
	case ".":
		return e.evalMemberAccess(node, ctx)
	case "=":
		return e.evalAssignment(node, ctx)
	default:
		left, err := e.Eval(node.Left, ctx)
		if err != nil {
			return nil, err
		}
		right, err := e.Eval(node.Right, ctx)
		if err != nil {
			return nil, err
		}
		return applyOperator(node.Op, left, right, node.Line())
	}
}

// canAccessInstance implements the private-access redesign of
// SPEC_FULL.md §4.4: access is permitted exactly when the current
// context's `this` is the target instance.
func canAccessInstance(ctx *Context, target *runtime.Object) bool {
	return ctx.This != nil && ctx.This == target
}

// canAccessStatic extends the same rule to static members: access is
// permitted when the currently executing method's owning class is the
// target class (see the StaticPrivateFields doc comment in runtime/class.go).
func canAccessStatic(ctx *Context, target *runtime.Class) bool {
	return ctx.Class != nil && ctx.Class == target
}

func (e *Evaluator) evalMemberAccess(node *ast.BinaryOp, ctx *Context) (runtime.Value, error) {
	left, err := e.Eval(node.Left, ctx)
	if err != nil {
		return nil, err
	}
	name := node.Right.(*ast.Identifier).Name

	switch l := left.(type) {
	case runtime.Str:
		if name == "length" {
			return runtime.Int(len([]rune(string(l)))), nil
		}
		return nil, runtime.NameError(node.Line(), "string has no member %q", name)

	case *runtime.Array:
		if name == "length" {
			return runtime.Int(len(l.Elements)), nil
		}
		return nil, runtime.NameError(node.Line(), "array has no member %q", name)

	case *runtime.Map:
		if name == "length" {
			return runtime.Int(l.Len()), nil
		}
		return nil, runtime.NameError(node.Line(), "map has no member %q", name)

	case *runtime.Object:
		if (l.PrivateFields[name] || l.PrivateMethods[name]) && !canAccessInstance(ctx, l) {
			return nil, runtime.AccessError(node.Line(), "private member %q of %s inaccessible here", name, l.Class.Name)
		}
		if v, ok := l.Fields[name]; ok {
			return v, nil
		}
		if def := l.Method(name); def != nil {
			return &runtime.BoundMethod{Receiver: l, Def: def}, nil
		}
		return nil, runtime.NameError(node.Line(), "%s instance has no member %q", l.Class.Name, name)

	case *runtime.Class:
		if (l.StaticPrivateFields[name] || l.StaticPrivateMethods[name]) && !canAccessStatic(ctx, l) {
			return nil, runtime.AccessError(node.Line(), "private static member %q of %s inaccessible here", name, l.Name)
		}
		if v, ok := l.StaticFields[name]; ok {
			return v, nil
		}
		if def, ok := l.StaticMethods[name]; ok {
			return &runtime.BoundStaticMethod{Class: l, Def: def}, nil
		}
		return nil, runtime.NameError(node.Line(), "class %s has no static member %q", l.Name, name)
	}

	return nil, runtime.TypeError(node.Line(), "%s has no members", left.Type())
}

// evalAssignment implements SPEC_FULL.md §4.3's three assignment left-
// hand-side forms, returning the assigned value.
func (e *Evaluator) evalAssignment(node *ast.BinaryOp, ctx *Context) (runtime.Value, error) {
	switch left := node.Left.(type) {
	case *ast.Identifier:
		v, err := e.Eval(node.Right, ctx)
		if err != nil {
			return nil, err
		}
		ctx.Assign(left.Name, v)
		return v, nil

	case *ast.IndexAccess:
		return e.assignIndex(left, node.Right, ctx)

	case *ast.BinaryOp:
		if left.Op != "." {
			return nil, runtime.TypeError(node.Line(), "invalid assignment target")
		}
		return e.assignMember(left, node.Right, ctx)
	}

	return nil, runtime.TypeError(node.Line(), "invalid assignment target")
}

func (e *Evaluator) assignIndex(target *ast.IndexAccess, rhs ast.Expr, ctx *Context) (runtime.Value, error) {
	coll, err := e.Eval(target.Collection, ctx)
	if err != nil {
		return nil, err
	}
	idx, err := e.Eval(target.Index, ctx)
	if err != nil {
		return nil, err
	}
	value, err := e.Eval(rhs, ctx)
	if err != nil {
		return nil, err
	}

	switch c := coll.(type) {
	case *runtime.Array:
		i, ok := idx.(runtime.Int)
		if !ok {
			return nil, runtime.TypeError(target.Line(), "array index must be an int, got %s", idx.Type())
		}
		if int(i) < 0 || int(i) >= len(c.Elements) {
			return nil, runtime.IndexError(target.Line(), "array index %d out of range", i)
		}
		c.Elements[i] = value
		return value, nil

	case *runtime.Map:
		key, ok := idx.(runtime.Str)
		if !ok {
			return nil, runtime.TypeError(target.Line(), "map key must be a string, got %s", idx.Type())
		}
		c.Set(string(key), value)
		return value, nil
	}

	return nil, runtime.TypeError(target.Line(), "%s is not indexable", coll.Type())
}

func (e *Evaluator) assignMember(target *ast.BinaryOp, rhs ast.Expr, ctx *Context) (runtime.Value, error) {
	obj, err := e.Eval(target.Left, ctx)
	if err != nil {
		return nil, err
	}
	name := target.Right.(*ast.Identifier).Name
	value, err := e.Eval(rhs, ctx)
	if err != nil {
		return nil, err
	}

	switch o := obj.(type) {
	case *runtime.Object:
		if o.PrivateFields[name] && !canAccessInstance(ctx, o) {
			return nil, runtime.AccessError(target.Line(), "private field %q of %s inaccessible here", name, o.Class.Name)
		}
		o.Fields[name] = value
		return value, nil

	case *runtime.Class:
		if o.StaticPrivateFields[name] && !canAccessStatic(ctx, o) {
			return nil, runtime.AccessError(target.Line(), "private static field %q of %s inaccessible here", name, o.Name)
		}
		o.StaticFields[name] = value
		return value, nil
	}

	return nil, runtime.TypeError(target.Line(), "cannot assign a member of %s", obj.Type())
}

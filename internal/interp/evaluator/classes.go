package evaluator

import (
	"github.com/Glamerio/Glamerio-Language/internal/ast"
	"github.com/Glamerio/Glamerio-Language/internal/interp/runtime"
)

func (e *Evaluator) evalArgs(exprs []ast.Expr, ctx *Context) ([]runtime.Value, error) {
	args := make([]runtime.Value, len(exprs))
	for i, expr := range exprs {
		v, err := e.Eval(expr, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// evalFunctionCall implements SPEC_FULL.md §4.4's three call forms:
// a free/builtin call by bare name, a method or static-method call
// through member access, and a call of any other expression that
// evaluates to a bound method value.
func (e *Evaluator) evalFunctionCall(node *ast.FunctionCall, ctx *Context) (runtime.Value, error) {
	switch callee := node.Callee.(type) {
	case *ast.Identifier:
		if ast.BuiltinFunctionNames[callee.Name] {
			args, err := e.evalArgs(node.Args, ctx)
			if err != nil {
				return nil, err
			}
			return callBuiltin(callee.Name, args, node.Line())
		}
		if def, ok := ctx.Host.GetFunction(callee.Name); ok {
			args, err := e.evalArgs(node.Args, ctx)
			if err != nil {
				return nil, err
			}
			return e.callFunction(def, args, nil, nil, ctx)
		}
		if v, ok := ctx.Lookup(callee.Name); ok {
			args, err := e.evalArgs(node.Args, ctx)
			if err != nil {
				return nil, err
			}
			return e.callValue(v, args, ctx, node.Line())
		}
		return nil, runtime.NameError(node.Line(), "undefined function %q", callee.Name)

	case *ast.BinaryOp:
		if callee.Op != "." {
			return nil, runtime.TypeError(node.Line(), "expression is not callable")
		}
		return e.evalMethodCall(node, callee, ctx)

	default:
		v, err := e.Eval(node.Callee, ctx)
		if err != nil {
			return nil, err
		}
		args, err := e.evalArgs(node.Args, ctx)
		if err != nil {
			return nil, err
		}
		return e.callValue(v, args, ctx, node.Line())
	}
}

func (e *Evaluator) evalMethodCall(call *ast.FunctionCall, callee *ast.BinaryOp, ctx *Context) (runtime.Value, error) {
	left, err := e.Eval(callee.Left, ctx)
	if err != nil {
		return nil, err
	}
	name := callee.Right.(*ast.Identifier).Name
	args, err := e.evalArgs(call.Args, ctx)
	if err != nil {
		return nil, err
	}

	// Field lookup precedes method lookup on both branches below,
	// matching evalMemberAccess's `obj.name` resolution order (SPEC_FULL.md
	// §4.4 "Method call" evaluates `obj.name` first, and spec.md's member
	// rule resolves fields before methods on a name conflict): a field
	// that shadows a method of the same name is called as a value, not
	// silently skipped in favor of the method.
	switch l := left.(type) {
	case *runtime.Object:
		if (l.PrivateMethods[name] || l.PrivateFields[name]) && !canAccessInstance(ctx, l) {
			return nil, runtime.AccessError(call.Line(), "private member %q of %s inaccessible here", name, l.Class.Name)
		}
		if fv, ok := l.Fields[name]; ok {
			return e.callValue(fv, args, ctx, call.Line())
		}
		if def := l.Method(name); def != nil {
			return e.callFunction(def, args, l, l.Class, ctx)
		}
		return nil, runtime.NameError(call.Line(), "%s instance has no method %q", l.Class.Name, name)

	case *runtime.Class:
		if (l.StaticPrivateMethods[name] || l.StaticPrivateFields[name]) && !canAccessStatic(ctx, l) {
			return nil, runtime.AccessError(call.Line(), "private static member %q of %s inaccessible here", name, l.Name)
		}
		if fv, ok := l.StaticFields[name]; ok {
			return e.callValue(fv, args, ctx, call.Line())
		}
		if def, ok := l.StaticMethods[name]; ok {
			return e.callFunction(def, args, nil, l, ctx)
		}
		return nil, runtime.NameError(call.Line(), "class %s has no static method %q", l.Name, name)
	}

	return nil, runtime.TypeError(call.Line(), "%s is not callable", left.Type())
}

// callValue calls a value produced by evaluating an arbitrary
// expression in callee position — a bound (static) method captured by
// a prior member access and stored in a variable or field.
func (e *Evaluator) callValue(v runtime.Value, args []runtime.Value, ctx *Context, line int) (runtime.Value, error) {
	switch fn := v.(type) {
	case *runtime.BoundMethod:
		return e.callFunction(fn.Def, args, fn.Receiver, fn.Receiver.Class, ctx)
	case *runtime.BoundStaticMethod:
		return e.callFunction(fn.Def, args, nil, fn.Class, ctx)
	}
	return nil, runtime.TypeError(line, "%s is not callable", v.Type())
}

// callFunction implements SPEC_FULL.md §4.4's call dispatch shared by
// free functions, methods, and static methods: a fresh local scope,
// positional parameter binding (missing arguments default to null),
// `this`/owning-class binding, and Return trapping.
func (e *Evaluator) callFunction(def *ast.FunctionDef, args []runtime.Value, receiver *runtime.Object, owner *runtime.Class, ctx *Context) (runtime.Value, error) {
	local := runtime.NewScope()
	for i, param := range def.Params {
		var v runtime.Value = runtime.Null
		if i < len(args) {
			v = args[i]
		}
		local.Set(param, v)
	}

	callCtx := ctx.WithCall(local, receiver, owner)
	outcome, err := e.ExecBlock(def.Body, callCtx)
	if err != nil {
		return nil, err
	}
	if outcome.IsReturn {
		return outcome.Value, nil
	}
	return runtime.Null, nil
}

// evalNewInstance implements SPEC_FULL.md §4.4 "Instantiation": create
// the object, materialize its instance fields fresh by re-walking the
// class's (and its bases') declared bodies, then invoke its
// constructor (named `constructor` or `init`) if one exists.
func (e *Evaluator) evalNewInstance(node *ast.NewInstance, ctx *Context) (runtime.Value, error) {
	class, ok := ctx.Host.GetClass(node.ClassName)
	if !ok {
		return nil, runtime.NameError(node.Line(), "undefined class %q", node.ClassName)
	}
	obj := runtime.NewObject(class)
	if err := e.initInstanceFields(class, obj, ctx); err != nil {
		return nil, err
	}

	args, err := e.evalArgs(node.Args, ctx)
	if err != nil {
		return nil, err
	}

	if ctor := class.Constructor(); ctor != nil {
		if _, err := e.callFunction(ctor, args, obj, class, ctx); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// initInstanceFields evaluates every non-static field declaration in
// class's MRO, root class first so a subclass's own redeclaration of
// the same name overrides it, and stores each result directly into
// obj.Fields. Each `new` gets its own evaluation of every initializer
// expression, so a reference-typed default (`array xs = [];`) yields a
// fresh Array per instance instead of one shared across every instance
// of the class (and its subclasses).
func (e *Evaluator) initInstanceFields(class *runtime.Class, obj *runtime.Object, ctx *Context) error {
	mro := class.MRO()
	for i := len(mro) - 1; i >= 0; i-- {
		for _, member := range mro[i].Body.Members {
			m, ok := member.(*ast.VarDeclaration)
			if !ok || m.IsStatic {
				continue
			}
			if err := e.evalInstanceField(obj, m, ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Evaluator) evalInstanceField(obj *runtime.Object, m *ast.VarDeclaration, ctx *Context) error {
	for i, name := range m.Names {
		var value runtime.Value = runtime.Null
		if i == len(m.Names)-1 && m.Init != nil {
			v, err := e.Eval(m.Init, ctx)
			if err != nil {
				return err
			}
			value = v
		}
		coerced, err := coerce(m.Type, value, m.Line())
		if err != nil {
			return err
		}
		obj.Fields[name] = coerced
	}
	return nil
}

// defineClass implements SPEC_FULL.md §4.4 "Class definition": it
// starts from the base class's already-flattened instance method and
// private-name tables (the base was itself flattened when it was
// defined, so this needs no recursive walk) and overlays this class's
// own declared members, which is exactly MRO-order "root first,
// subclass overrides". Instance field values are deliberately NOT
// flattened here — see initInstanceFields, which re-evaluates them
// fresh per instance. Static members are never inherited — each
// class's StaticFields/StaticMethods hold only what it declares
// itself.
func (e *Evaluator) defineClass(node *ast.ClassDef, ctx *Context) (*runtime.Class, error) {
	var base *runtime.Class
	if node.Base != "" {
		b, ok := ctx.Host.GetClass(node.Base)
		if !ok {
			return nil, runtime.NameError(node.Line(), "undefined base class %q", node.Base)
		}
		base = b
	}

	class := runtime.NewClass(node.Name, base, node)
	if base != nil {
		for k, v := range base.InstanceMethods {
			class.InstanceMethods[k] = v
		}
		for k := range base.PrivateFields {
			class.PrivateFields[k] = true
		}
		for k := range base.PrivateMethods {
			class.PrivateMethods[k] = true
		}
	}

	for _, member := range node.Members {
		switch m := member.(type) {
		case *ast.VarDeclaration:
			if err := e.defineClassField(class, m, ctx); err != nil {
				return nil, err
			}
		case *ast.FunctionDef:
			if m.IsStatic {
				class.StaticMethods[m.Name] = m
				if m.IsPrivate {
					class.StaticPrivateMethods[m.Name] = true
				}
			} else {
				class.InstanceMethods[m.Name] = m
				if m.IsPrivate {
					class.PrivateMethods[m.Name] = true
				}
			}
		}
	}

	return class, nil
}

// defineClassField registers a field declaration on class. A static
// field is a single piece of shared state, so its initializer is
// evaluated once, here, against the defining context, per spec.md's
// "static members... evaluated once... against the global
// environment". An instance field's initializer is NOT evaluated here
// — only its private-access flag is recorded now; the value itself is
// (re-)computed fresh for every instance by initInstanceFields at
// `new` time.
func (e *Evaluator) defineClassField(class *runtime.Class, m *ast.VarDeclaration, ctx *Context) error {
	if !m.IsStatic {
		if m.IsPrivate {
			for _, name := range m.Names {
				class.PrivateFields[name] = true
			}
		}
		return nil
	}

	for i, name := range m.Names {
		var value runtime.Value = runtime.Null
		if i == len(m.Names)-1 && m.Init != nil {
			v, err := e.Eval(m.Init, ctx)
			if err != nil {
				return err
			}
			value = v
		}
		coerced, err := coerce(m.Type, value, m.Line())
		if err != nil {
			return err
		}
		class.StaticFields[name] = coerced
		if m.IsPrivate {
			class.StaticPrivateFields[name] = true
		}
	}
	return nil
}

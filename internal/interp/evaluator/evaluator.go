package evaluator

import (
	"fmt"

	"github.com/Glamerio/Glamerio-Language/internal/ast"
	"github.com/Glamerio/Glamerio-Language/internal/interp/runtime"
)

// Evaluator is stateless: all mutable state lives in the Host
// registries and the Context's scopes, per SPEC_FULL.md §9's
// injunction against process-wide mutable state.
type Evaluator struct{}

// New creates an Evaluator.
func New() *Evaluator { return &Evaluator{} }

// RunProgram executes every top-level statement of prog in order
// against ctx, stopping at the first error. A top-level `return` is
// accepted rather than treated as a type error: its Outcome is
// discarded and execution continues with the next statement.
func (e *Evaluator) RunProgram(prog *ast.Program, ctx *Context) error {
	for _, stmt := range prog.Statements {
		if _, err := e.Exec(stmt, ctx); err != nil {
			return err
		}
	}
	return nil
}

// ExecBlock runs a Block's statements in order, stopping as soon as
// one produces a Return outcome or an error, and otherwise returning
// the last statement's Outcome (used by try/catch to yield a result,
// SPEC_FULL.md §4.3 "Block").
func (e *Evaluator) ExecBlock(block *ast.Block, ctx *Context) (runtime.Outcome, error) {
	last := runtime.Ok(runtime.Null)
	for _, stmt := range block.Statements {
		outcome, err := e.Exec(stmt, ctx)
		if err != nil {
			return runtime.Outcome{}, err
		}
		last = outcome
		if outcome.IsReturn {
			return last, nil
		}
	}
	return last, nil
}

// Exec dispatches a single statement by its concrete AST type.
func (e *Evaluator) Exec(stmt ast.Stmt, ctx *Context) (runtime.Outcome, error) {
	switch node := stmt.(type) {
	case *ast.ExprStmt:
		v, err := e.Eval(node.Expr, ctx)
		if err != nil {
			return runtime.Outcome{}, err
		}
		return runtime.Ok(v), nil

	case *ast.Print:
		v, err := e.Eval(node.Value, ctx)
		if err != nil {
			return runtime.Outcome{}, err
		}
		ctx.Host.Print(Stringify(v))
		return runtime.Ok(runtime.Null), nil

	case *ast.VarDeclaration:
		return e.execVarDeclaration(node, ctx)

	case *ast.Block:
		return e.ExecBlock(node, ctx)

	case *ast.If:
		return e.execIf(node, ctx)

	case *ast.While:
		return e.execWhile(node, ctx)

	case *ast.For:
		return e.execFor(node, ctx)

	case *ast.ForEach:
		return e.execForEach(node, ctx)

	case *ast.Return:
		var v runtime.Value = runtime.Null
		if node.Value != nil {
			var err error
			v, err = e.Eval(node.Value, ctx)
			if err != nil {
				return runtime.Outcome{}, err
			}
		}
		return runtime.Return(v), nil

	case *ast.TryCatch:
		return e.execTryCatch(node, ctx)

	case *ast.FunctionDef:
		ctx.Host.SetFunction(node.Name, node)
		return runtime.Ok(runtime.Null), nil

	case *ast.ClassDef:
		class, err := e.defineClass(node, ctx)
		if err != nil {
			return runtime.Outcome{}, err
		}
		ctx.Host.SetClass(node.Name, class)
		return runtime.Ok(runtime.Null), nil
	}

	return runtime.Outcome{}, fmt.Errorf("evaluator: unhandled statement type %T", stmt)
}

// Eval dispatches a single expression by its concrete AST type.
func (e *Evaluator) Eval(expr ast.Expr, ctx *Context) (runtime.Value, error) {
	switch node := expr.(type) {
	case *ast.Literal:
		return evalLiteral(node)

	case *ast.StringLit:
		return runtime.Str(node.Value), nil

	case *ast.Identifier:
		if v, ok := ctx.Lookup(node.Name); ok {
			return v, nil
		}
		return nil, runtime.NameError(node.Line(), "undefined name %q", node.Name)

	case *ast.This:
		if ctx.This == nil {
			return nil, runtime.NameError(node.Line(), "'this' used outside a method body")
		}
		return ctx.This, nil

	case *ast.ArrayLit:
		elems := make([]runtime.Value, len(node.Elements))
		for i, elExpr := range node.Elements {
			v, err := e.Eval(elExpr, ctx)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return runtime.NewArray(elems), nil

	case *ast.MapLit:
		m := runtime.NewMap()
		for _, entry := range node.Entries {
			v, err := e.Eval(entry.Value, ctx)
			if err != nil {
				return nil, err
			}
			m.Set(entry.Key, v)
		}
		return m, nil

	case *ast.Input:
		return e.evalInput(node, ctx)

	case *ast.IndexAccess:
		return e.evalIndexAccess(node, ctx)

	case *ast.BinaryOp:
		return e.evalBinaryOp(node, ctx)

	case *ast.FunctionCall:
		return e.evalFunctionCall(node, ctx)

	case *ast.NewInstance:
		return e.evalNewInstance(node, ctx)
	}

	return nil, fmt.Errorf("evaluator: unhandled expression type %T", expr)
}

func (e *Evaluator) evalInput(node *ast.Input, ctx *Context) (runtime.Value, error) {
	prompt, err := e.Eval(node.Prompt, ctx)
	if err != nil {
		return nil, err
	}
	text, err := ctx.Host.Input(Stringify(prompt))
	if err != nil {
		return nil, err
	}
	return runtime.Str(text), nil
}

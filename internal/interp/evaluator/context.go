// Package evaluator implements Glam's tree-walking evaluator:
// scoping, expression evaluation, function/method dispatch,
// inheritance resolution, and try/catch.
package evaluator

import (
	"github.com/Glamerio/Glamerio-Language/internal/ast"
	"github.com/Glamerio/Glamerio-Language/internal/interp/runtime"
)

// Host is the set of process-global registries and IO primitives the
// evaluator needs but does not own itself (SPEC_FULL.md §9: "model as
// three fields of an Interpreter struct... passed by reference; do
// not use process-wide mutable state"). The concrete Interpreter in
// package interp implements Host.
type Host interface {
	GetFunction(name string) (*ast.FunctionDef, bool)
	SetFunction(name string, def *ast.FunctionDef)
	GetClass(name string) (*runtime.Class, bool)
	SetClass(name string, class *runtime.Class)
	Print(line string)
	Input(prompt string) (string, error)
}

// Context is the evaluator's per-call evaluation context: which scope
// is active, which instance (if any) `this` is bound to, and which
// class (if any) the currently executing method belongs to. Passing
// This explicitly, instead of letting the evaluator introspect a host
// call stack, is the private-access redesign from SPEC_FULL.md §9.
type Context struct {
	Global *runtime.Scope
	Local  *runtime.Scope // nil outside any call
	This   *runtime.Object
	Class  *runtime.Class // owning class of the method currently executing, if any
	Host   Host
}

// NewGlobalContext creates the top-level context: Global scope only,
// no Local scope, no bound receiver.
func NewGlobalContext(host Host) *Context {
	return &Context{Global: runtime.NewScope(), Host: host}
}

// WithCall returns a Context for a call body: a fresh Local scope,
// This bound to receiver (nil for free functions and static methods),
// and Class set to owner (nil for free functions).
func (c *Context) WithCall(local *runtime.Scope, receiver *runtime.Object, owner *runtime.Class) *Context {
	return &Context{Global: c.Global, Local: local, This: receiver, Class: owner, Host: c.Host}
}

// Lookup resolves a bare identifier: active local scope, then global,
// then the class registry (so a class name can be used as a value for
// static member access) — SPEC_FULL.md §3.
func (c *Context) Lookup(name string) (runtime.Value, bool) {
	if c.Local != nil {
		if v, ok := c.Local.Get(name); ok {
			return v, true
		}
	}
	if v, ok := c.Global.Get(name); ok {
		return v, true
	}
	if cls, ok := c.Host.GetClass(name); ok {
		return cls, true
	}
	return nil, false
}

// Assign writes name into the active scope (Local if present,
// otherwise Global) — SPEC_FULL.md §4.3: "Left Identifier: write into
// the active scope."
func (c *Context) Assign(name string, v runtime.Value) {
	if c.Local != nil {
		c.Local.Set(name, v)
		return
	}
	c.Global.Set(name, v)
}

// Declare binds name in the active scope. For Glam's two-scope model
// this is identical to Assign; it exists as a separate name so
// VarDeclaration call sites read as declarations, not assignments.
func (c *Context) Declare(name string, v runtime.Value) {
	c.Assign(name, v)
}

package runtime

import "github.com/Glamerio/Glamerio-Language/internal/ast"

// Class is the runtime descriptor for a declared class (SPEC_FULL.md
// §3 "Class descriptor"). It is always handled through a pointer: it
// is itself a Value (so a class name can be read and passed around
// for static member access), and its static-field map is mutable
// shared state.
type Class struct {
	Name string
	Base *Class // nil for a root class

	StaticFields  map[string]Value
	StaticMethods map[string]*ast.FunctionDef

	// StaticPrivateFields / StaticPrivateMethods extend the private-
	// access redesign (SPEC_FULL.md §4.4) to static members, which the
	// distilled spec does not discuss but the grammar permits (a member
	// may be flagged both static and private). Access is permitted when
	// the evaluation Context's owning Class is this class, mirroring
	// the instance rule's "receiver is the target" with "owning class
	// is the target class".
	StaticPrivateFields  map[string]bool
	StaticPrivateMethods map[string]bool

	// InstanceMethods / PrivateFields / PrivateMethods are the
	// MRO-flattened member tables (SPEC_FULL.md §4.4 step 1), built once
	// when the class is registered. There is no flattened InstanceFields
	// value table: instance field initializers are re-evaluated fresh
	// for every `new`, walking Body/MRO below, so that a reference-typed
	// default (array/map) is never shared between sibling instances.
	InstanceMethods map[string]*ast.FunctionDef
	PrivateFields   map[string]bool
	PrivateMethods  map[string]bool

	// Body is this class's own declaration, re-walked at every
	// instantiation (see MRO) to build each instance's field set fresh.
	Body *ast.ClassDef
}

func NewClass(name string, base *Class, body *ast.ClassDef) *Class {
	return &Class{
		Name:                 name,
		Base:                 base,
		StaticFields:         make(map[string]Value),
		StaticMethods:        make(map[string]*ast.FunctionDef),
		StaticPrivateFields:  make(map[string]bool),
		StaticPrivateMethods: make(map[string]bool),
		InstanceMethods:      make(map[string]*ast.FunctionDef),
		PrivateFields:        make(map[string]bool),
		PrivateMethods:       make(map[string]bool),
		Body:                 body,
	}
}

func (*Class) Type() string      { return "class" }
func (c *Class) Inspect() string { return "<class " + c.Name + ">" }
func (c *Class) Truthy() bool    { return true }

// Constructor returns the class's constructor method (named
// "constructor" or "init" per SPEC_FULL.md §4.4), or nil if it has
// none.
func (c *Class) Constructor() *ast.FunctionDef {
	if def, ok := c.InstanceMethods["constructor"]; ok {
		return def
	}
	if def, ok := c.InstanceMethods["init"]; ok {
		return def
	}
	return nil
}

// MRO returns the method resolution order for c: c itself first, then
// each base in turn up to the root (SPEC_FULL.md §4.4 step 1). The
// evaluator also walks this, root-to-c, to rebuild an instance's field
// set fresh at every `new` (evaluator.initInstanceFields).
func (c *Class) MRO() []*Class {
	var chain []*Class
	for cur := c; cur != nil; cur = cur.Base {
		chain = append(chain, cur)
	}
	return chain
}

// Object is a runtime instance of a Class (SPEC_FULL.md §3 "Instance
// object"). Instances are reference-like: copying an *Object variable
// aliases the same fields.
type Object struct {
	Class          *Class
	Fields         map[string]Value
	PrivateFields  map[string]bool
	PrivateMethods map[string]bool
}

// NewObject allocates an instance with an empty field set; the caller
// (evaluator.evalNewInstance) fills Fields by re-evaluating the
// class's (and its bases') field initializers against this instance.
func NewObject(class *Class) *Object {
	return &Object{
		Class:          class,
		Fields:         make(map[string]Value),
		PrivateFields:  class.PrivateFields,
		PrivateMethods: class.PrivateMethods,
	}
}

func (*Object) Type() string { return "object" }
func (o *Object) Inspect() string {
	return "<" + o.Class.Name + " instance>"
}
func (o *Object) Truthy() bool { return true }

// Method returns the instance method named name following o's class's
// MRO-flattened table, or nil if not found.
func (o *Object) Method(name string) *ast.FunctionDef {
	def, ok := o.Class.InstanceMethods[name]
	if !ok {
		return nil
	}
	return def
}

// BoundMethod pairs a receiver instance with the FunctionDef captured
// at the point of member access (SPEC_FULL.md §9 "bound method as
// tuple" guidance).
type BoundMethod struct {
	Receiver *Object
	Def      *ast.FunctionDef
}

func (*BoundMethod) Type() string      { return "method" }
func (m *BoundMethod) Inspect() string { return "<bound method " + m.Def.Name + ">" }
func (m *BoundMethod) Truthy() bool    { return true }

// BoundStaticMethod pairs a class with a static FunctionDef.
type BoundStaticMethod struct {
	Class *Class
	Def   *ast.FunctionDef
}

func (*BoundStaticMethod) Type() string      { return "static method" }
func (m *BoundStaticMethod) Inspect() string { return "<static method " + m.Def.Name + ">" }
func (m *BoundStaticMethod) Truthy() bool    { return true }

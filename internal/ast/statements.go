package ast

// Print is `print(Value);`.
type Print struct {
	base
	Value Expr
}

func NewPrint(line int, value Expr) *Print { return &Print{base{line}, value} }
func (*Print) stmtNode()                   {}

// ExprStmt is an expression evaluated for effect (a bare call, or an
// assignment produced by the statement-level `expr '=' expr ';'`
// form).
type ExprStmt struct {
	base
	Expr Expr
}

func NewExprStmt(line int, expr Expr) *ExprStmt { return &ExprStmt{base{line}, expr} }
func (*ExprStmt) stmtNode()                     {}

// VarDeclaration declares one or more names of the same declared
// Type. Only the last name receives Init (earlier names initialize to
// null) — see SPEC_FULL.md §4.2.
type VarDeclaration struct {
	base
	Type      string // "" means untyped/unspecified
	Names     []string
	Init      Expr // may be nil
	IsStatic  bool
	IsPrivate bool
}

func NewVarDeclaration(line int, typ string, names []string, init Expr, isStatic, isPrivate bool) *VarDeclaration {
	return &VarDeclaration{base{line}, typ, names, init, isStatic, isPrivate}
}
func (*VarDeclaration) stmtNode() {}

// Block is an ordered statement list. Blocks do not introduce a new
// scope (see SPEC_FULL.md §3: "There is no block-local scope").
type Block struct {
	base
	Statements []Stmt
}

func NewBlock(line int, statements []Stmt) *Block { return &Block{base{line}, statements} }
func (*Block) stmtNode()                          {}

// If represents if/elseif/else. An `elseif` chain is modeled by
// nesting another *If as Else.
type If struct {
	base
	Condition Expr
	Then      Stmt
	Else      Stmt // *If, *Block, a single bare statement, or nil
}

func NewIf(line int, cond Expr, then, els Stmt) *If { return &If{base{line}, cond, then, els} }
func (*If) stmtNode()                               {}

// While is `while (Condition) Body`.
type While struct {
	base
	Condition Expr
	Body      Stmt
}

func NewWhile(line int, cond Expr, body Stmt) *While { return &While{base{line}, cond, body} }
func (*While) stmtNode()                             {}

// For is the C-style `for (Init; Condition; Step) Body`. Init may be
// a *VarDeclaration or an *ExprStmt-wrapped assignment; Step is an
// assignment expression or nil.
type For struct {
	base
	Init      Stmt
	Condition Expr
	Step      Expr
	Body      Stmt
}

func NewFor(line int, init Stmt, cond Expr, step Expr, body Stmt) *For {
	return &For{base{line}, init, cond, step, body}
}
func (*For) stmtNode() {}

// ForEach is `for (Type? Name in Iterable) Body`.
type ForEach struct {
	base
	ElemType string // "" if unspecified
	Name     string
	Iterable Expr
	Body     Stmt
}

func NewForEach(line int, elemType, name string, iterable Expr, body Stmt) *ForEach {
	return &ForEach{base{line}, elemType, name, iterable, body}
}
func (*ForEach) stmtNode() {}

// Return is `return Value;`. Value may be nil (`return;`).
type Return struct {
	base
	Value Expr
}

func NewReturn(line int, value Expr) *Return { return &Return{base{line}, value} }
func (*Return) stmtNode()                    {}

// TryCatch is `try { Try } catch (CatchVar?) { Catch }`.
type TryCatch struct {
	base
	Try      *Block
	CatchVar string // "" if the catch clause names no variable
	Catch    *Block
}

func NewTryCatch(line int, try *Block, catchVar string, catch *Block) *TryCatch {
	return &TryCatch{base{line}, try, catchVar, catch}
}
func (*TryCatch) stmtNode() {}

// FunctionDef is a free function or a class member (method,
// constructor). Params are plain names; any type annotation on a
// method parameter is parsed and discarded (see SPEC_FULL.md §4.2).
type FunctionDef struct {
	base
	Name          string
	Params        []string
	Body          *Block
	IsStatic      bool
	IsPrivate     bool
	IsConstructor bool
}

func NewFunctionDef(line int, name string, params []string, body *Block, isStatic, isPrivate, isConstructor bool) *FunctionDef {
	return &FunctionDef{base{line}, name, params, body, isStatic, isPrivate, isConstructor}
}
func (*FunctionDef) stmtNode() {}

// ClassDef declares a class body (a sequence of VarDeclaration and
// FunctionDef members) with an optional single base class.
type ClassDef struct {
	base
	Name    string
	Base    string // "" if no base class
	Members []Stmt // *VarDeclaration or *FunctionDef
}

func NewClassDef(line int, name, base_ string, members []Stmt) *ClassDef {
	return &ClassDef{base{line}, name, base_, members}
}
func (*ClassDef) stmtNode() {}

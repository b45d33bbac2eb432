package parser

import (
	"testing"

	"github.com/Glamerio/Glamerio-Language/internal/ast"
)

func TestParse_VarDeclaration(t *testing.T) {
	prog, err := Parse(`int x, y = 2;`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	decl, ok := prog.Statements[0].(*ast.VarDeclaration)
	if !ok {
		t.Fatalf("got %T, want *ast.VarDeclaration", prog.Statements[0])
	}
	if decl.Type != "int" {
		t.Errorf("got type %q, want \"int\"", decl.Type)
	}
	if len(decl.Names) != 2 || decl.Names[0] != "x" || decl.Names[1] != "y" {
		t.Errorf("got names %v, want [x y]", decl.Names)
	}
}

// A class name in type position, e.g. `P p = new P();`, lexes as two
// bare IDs in a row; the parser must still recognize it as a
// VarDeclaration rather than an expression statement.
func TestParse_ClassTypedVarDeclaration(t *testing.T) {
	prog, err := Parse(`P p = new P();`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	decl, ok := prog.Statements[0].(*ast.VarDeclaration)
	if !ok {
		t.Fatalf("got %T, want *ast.VarDeclaration", prog.Statements[0])
	}
	if decl.Type != "P" {
		t.Errorf("got type %q, want \"P\"", decl.Type)
	}
	if _, ok := decl.Init.(*ast.NewInstance); !ok {
		t.Errorf("got init %T, want *ast.NewInstance", decl.Init)
	}
}

func TestParse_ClassTypedForEachHeader(t *testing.T) {
	prog, err := Parse(`for (P p in ps) { p.bump(); }`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	stmt, ok := prog.Statements[0].(*ast.ForEach)
	if !ok {
		t.Fatalf("got %T, want *ast.ForEach", prog.Statements[0])
	}
	if stmt.ElemType != "P" || stmt.Name != "p" {
		t.Errorf("got elemType %q name %q, want \"P\" \"p\"", stmt.ElemType, stmt.Name)
	}
}

func TestParse_PowerIsRightAssociative(t *testing.T) {
	prog, err := Parse(`print(2^3^2);`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	printStmt, ok := prog.Statements[0].(*ast.Print)
	if !ok {
		t.Fatalf("got %T, want *ast.Print", prog.Statements[0])
	}
	top, ok := printStmt.Value.(*ast.BinaryOp)
	if !ok || top.Op != "^" {
		t.Fatalf("got top expr %#v, want a ^ BinaryOp", printStmt.Value)
	}
	left, ok := top.Left.(*ast.Literal)
	if !ok || left.Text != "2" {
		t.Errorf("got left %#v, want literal 2 (2^3^2 should group as 2^(3^2))", top.Left)
	}
	right, ok := top.Right.(*ast.BinaryOp)
	if !ok || right.Op != "^" {
		t.Fatalf("got right %#v, want a nested ^ BinaryOp", top.Right)
	}
}

func TestParse_ClassDefWithExtends(t *testing.T) {
	prog, err := Parse(`class B extends A { fn hi() { print("B"); } }`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	class, ok := prog.Statements[0].(*ast.ClassDef)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassDef", prog.Statements[0])
	}
	if class.Name != "B" || class.Base != "A" {
		t.Errorf("got name %q base %q, want \"B\" \"A\"", class.Name, class.Base)
	}
	if len(class.Members) != 1 {
		t.Fatalf("got %d members, want 1", len(class.Members))
	}
}

func TestParse_TryCatch(t *testing.T) {
	prog, err := Parse(`try { int n = 10 / 0; } catch (e) { print(e); }`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	tc, ok := prog.Statements[0].(*ast.TryCatch)
	if !ok {
		t.Fatalf("got %T, want *ast.TryCatch", prog.Statements[0])
	}
	if tc.CatchVar != "e" {
		t.Errorf("got catch var %q, want \"e\"", tc.CatchVar)
	}
}

func TestParse_UnexpectedTokenIsError(t *testing.T) {
	_, err := Parse(`int x = ;`)
	if err == nil {
		t.Fatal("expected a parse error for a missing initializer expression")
	}
}

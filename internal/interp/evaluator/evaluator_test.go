package evaluator_test

import (
	"testing"

	"github.com/Glamerio/Glamerio-Language/internal/ast"
	"github.com/Glamerio/Glamerio-Language/internal/interp/evaluator"
	"github.com/Glamerio/Glamerio-Language/internal/interp/runtime"
	"github.com/Glamerio/Glamerio-Language/internal/parser"
)

// fakeHost is a minimal evaluator.Host for exercising the evaluator
// without the interp package's IO wiring.
type fakeHost struct {
	funcs   map[string]*ast.FunctionDef
	classes map[string]*runtime.Class
	printed []string
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		funcs:   make(map[string]*ast.FunctionDef),
		classes: make(map[string]*runtime.Class),
	}
}

func (h *fakeHost) GetFunction(name string) (*ast.FunctionDef, bool) { def, ok := h.funcs[name]; return def, ok }
func (h *fakeHost) SetFunction(name string, def *ast.FunctionDef)    { h.funcs[name] = def }
func (h *fakeHost) GetClass(name string) (*runtime.Class, bool)      { c, ok := h.classes[name]; return c, ok }
func (h *fakeHost) SetClass(name string, c *runtime.Class)           { h.classes[name] = c }
func (h *fakeHost) Print(line string)                                { h.printed = append(h.printed, line) }
func (h *fakeHost) Input(prompt string) (string, error)              { return "", nil }

func run(t *testing.T, source string) *fakeHost {
	t.Helper()
	prog, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", source, err)
	}
	host := newFakeHost()
	ctx := evaluator.NewGlobalContext(host)
	e := evaluator.New()
	if err := e.RunProgram(prog, ctx); err != nil {
		t.Fatalf("RunProgram(%q) returned error: %v", source, err)
	}
	return host
}

func TestEvaluator_DivisionAlwaysPromotesToFloat(t *testing.T) {
	host := run(t, `print(10 / 4);`)
	if len(host.printed) != 1 || host.printed[0] != "2.5" {
		t.Errorf("printed = %v, want [2.5]", host.printed)
	}
}

func TestEvaluator_StringConcatenationViaPlus(t *testing.T) {
	host := run(t, `print("count: " + 3);`)
	if len(host.printed) != 1 || host.printed[0] != "count: 3" {
		t.Errorf("printed = %v, want [\"count: 3\"]", host.printed)
	}
}

func TestEvaluator_LogicalOperatorsDoNotShortCircuit(t *testing.T) {
	// Both sides are plain calls with observable side effects (print);
	// SPEC_FULL.md requires both operands evaluated regardless of the
	// left operand's truthiness.
	host := run(t, `
fn left() { print("L"); return False; }
fn right() { print("R"); return True; }
print(left() and right());
`)
	want := []string{"L", "R", "False"}
	if len(host.printed) != len(want) {
		t.Fatalf("printed = %v, want %v", host.printed, want)
	}
	for i := range want {
		if host.printed[i] != want[i] {
			t.Errorf("printed[%d] = %q, want %q", i, host.printed[i], want[i])
		}
	}
}

func TestEvaluator_PrivateFieldInaccessibleOutsideInstance(t *testing.T) {
	source := `
class Secret {
	private int guarded = 1;
}
Secret s = new Secret();
print(s.guarded);
`
	prog, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	host := newFakeHost()
	ctx := evaluator.NewGlobalContext(host)
	e := evaluator.New()
	if err := e.RunProgram(prog, ctx); err == nil {
		t.Fatal("expected an access error reading a private field from outside the instance")
	}
}

func TestEvaluator_PrivateFieldAccessibleFromOwnMethod(t *testing.T) {
	host := run(t, `
class Secret {
	private int guarded = 1;
	fn reveal() { print(this.guarded); }
}
Secret s = new Secret();
s.reveal();
`)
	if len(host.printed) != 1 || host.printed[0] != "1" {
		t.Errorf("printed = %v, want [1]", host.printed)
	}
}

func TestEvaluator_TryCatchScopeDoesNotPersistMutations(t *testing.T) {
	// SPEC_FULL.md's catch block runs against a fresh scope copied from
	// the active one: mutating a pre-existing variable inside catch
	// must not be visible once the TryCatch statement finishes.
	host := run(t, `
int n = 1;
try {
	int x = 1 / 0;
} catch (e) {
	n = 99;
}
print(n);
`)
	if len(host.printed) != 1 || host.printed[0] != "1" {
		t.Errorf("printed = %v, want [1] (catch-block mutation should not escape)", host.printed)
	}
}

func TestEvaluator_ArrayPushAndLenBuiltins(t *testing.T) {
	host := run(t, `
array xs = [1, 2];
push(xs, 3);
print(len(xs));
`)
	if len(host.printed) != 1 || host.printed[0] != "3" {
		t.Errorf("printed = %v, want [3]", host.printed)
	}
}

func TestEvaluator_InstanceFieldDefaultsAreNotSharedAcrossInstances(t *testing.T) {
	// A reference-typed field default (array/map) must be materialized
	// fresh for each `new`; mutating one instance's default must not be
	// observable through another instance of the same class.
	host := run(t, `
class C {
	array xs = [];
}
C a = new C();
C b = new C();
push(a.xs, 1);
print(len(a.xs));
print(len(b.xs));
`)
	want := []string{"1", "0"}
	if len(host.printed) != len(want) {
		t.Fatalf("printed = %v, want %v", host.printed, want)
	}
	for i := range want {
		if host.printed[i] != want[i] {
			t.Errorf("printed[%d] = %q, want %q", i, host.printed[i], want[i])
		}
	}
}

func TestEvaluator_MethodCallPrefersFieldOverMethodOfSameName(t *testing.T) {
	// obj.name(args) must evaluate obj.name by the same rule as plain
	// member access, which resolves a field before a method of the same
	// name. Calling a non-callable field value is a TypeError.
	source := `
class C {
	int greet = 5;
	fn greet() { print("method"); }
}
C c = new C();
c.greet();
`
	prog, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	host := newFakeHost()
	ctx := evaluator.NewGlobalContext(host)
	e := evaluator.New()
	if err := e.RunProgram(prog, ctx); err == nil {
		t.Fatal("expected a TypeError calling a field that shadows a method")
	}
	if len(host.printed) != 0 {
		t.Errorf("printed = %v, want no output (the method must not run)", host.printed)
	}
}

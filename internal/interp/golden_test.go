package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Glamerio/Glamerio-Language/internal/interp"
)

// These cases mirror SPEC_FULL.md §8's end-to-end scenarios. Expected
// output is a single literal value per case, so each is checked by
// direct string comparison.
func TestRunProgram_EndToEnd(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "arithmetic_precedence",
			source: `int x = 2; int y = 3; print(x + y * 4);`,
			want:   "14\n",
		},
		{
			name:   "classic_for_accumulator",
			source: `int s = 0; for (int i=1; i<=5; i=i+1) { s = s + i; } print(s);`,
			want:   "15\n",
		},
		{
			name:   "instance_field_mutation",
			source: `class P { int x = 1; fn bump() { this.x = this.x + 2; } } P p = new P(); p.bump(); p.bump(); print(p.x);`,
			want:   "5\n",
		},
		{
			name:   "method_override",
			source: `class A { fn hi() { print("A"); } } class B extends A { fn hi() { print("B"); } } B b = new B(); b.hi();`,
			want:   "B\n",
		},
		{
			name:   "division_by_zero_is_catchable",
			source: `try { int n = 10 / 0; } catch (e) { print("caught"); }`,
			want:   "caught\n",
		},
		{
			name:   "right_associative_power",
			source: `print(2^3^2);`,
			want:   "512\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			ip := interp.New(&out, strings.NewReader(""))
			if err := ip.Run(c.source); err != nil {
				t.Fatalf("Run(%q) returned error: %v", c.source, err)
			}
			if got := out.String(); got != c.want {
				t.Errorf("Run(%q) output = %q, want %q", c.source, got, c.want)
			}
		})
	}
}

func TestRunLine_PersistsGlobalScope(t *testing.T) {
	var out bytes.Buffer
	ip := interp.New(&out, strings.NewReader(""))

	if _, err := ip.RunLine("int total = 10;"); err != nil {
		t.Fatalf("first RunLine failed: %v", err)
	}
	if _, err := ip.RunLine("total = total + 5;"); err != nil {
		t.Fatalf("second RunLine failed: %v", err)
	}
	if _, err := ip.RunLine("print(total);"); err != nil {
		t.Fatalf("third RunLine failed: %v", err)
	}

	if got, want := out.String(), "15\n"; got != want {
		t.Errorf("accumulated output = %q, want %q", got, want)
	}
}

func TestRun_UncaughtErrorIsFormattable(t *testing.T) {
	var out bytes.Buffer
	ip := interp.New(&out, strings.NewReader(""))

	err := ip.Run(`print(missing);`)
	if err == nil {
		t.Fatal("expected an error for an undeclared identifier")
	}
	msg := ip.FormatError(err)
	if !strings.Contains(msg, "missing") {
		t.Errorf("FormatError(%v) = %q, want it to mention the offending name", err, msg)
	}
}

package runtime

import "testing"

func TestScope_GetSetHas(t *testing.T) {
	s := NewScope()
	if _, ok := s.Get("x"); ok {
		t.Fatal("Get on empty scope found a value")
	}
	s.Set("x", Int(1))
	if !s.Has("x") {
		t.Fatal("Has(\"x\") = false after Set")
	}
	v, ok := s.Get("x")
	if !ok || v != Value(Int(1)) {
		t.Fatalf("Get(\"x\") = %v, %v, want Int(1), true", v, ok)
	}
}

func TestScope_Names(t *testing.T) {
	s := NewScope()
	s.Set("a", Int(1))
	s.Set("b", Int(2))
	names := s.Names()
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if len(names) != 2 || !seen["a"] || !seen["b"] {
		t.Errorf("Names() = %v, want [a b] in some order", names)
	}
}

func TestOutcome_OkAndReturn(t *testing.T) {
	ok := Ok(Int(5))
	if ok.IsReturn {
		t.Error("Ok(...).IsReturn = true, want false")
	}
	ret := Return(Int(5))
	if !ret.IsReturn {
		t.Error("Return(...).IsReturn = false, want true")
	}
	if ok.Value != ret.Value {
		t.Error("Ok and Return should carry the same wrapped value")
	}
}

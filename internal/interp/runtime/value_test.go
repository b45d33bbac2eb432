package runtime

import "testing"

func TestInspect(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Int(42), "42"},
		{Float(3.5), "3.5"},
		{Bool(true), "True"},
		{Bool(false), "False"},
		{Null, "null"},
		{Str("hi"), "hi"},
		{NewArray([]Value{Int(1), Int(2)}), "[1, 2]"},
	}
	for _, c := range cases {
		if got := c.v.Inspect(); got != c.want {
			t.Errorf("%#v.Inspect() = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Int(0), false},
		{Int(1), true},
		{Str(""), false},
		{Str("x"), true},
		{Null, false},
		{NewArray(nil), false},
		{NewArray([]Value{Int(1)}), true},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("%#v.Truthy() = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestMap_InsertionOrderPreserved(t *testing.T) {
	m := NewMap()
	m.Set("b", Int(2))
	m.Set("a", Int(1))
	m.Set("b", Int(99)) // overwrite, should not reorder

	want := []string{"b", "a"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("got keys %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, got[i], want[i])
		}
	}
	v, ok := m.Get("b")
	if !ok || v != Value(Int(99)) {
		t.Errorf("Get(\"b\") = %v, %v, want Int(99), true", v, ok)
	}
}

func TestIsNull(t *testing.T) {
	if !IsNull(Null) {
		t.Error("IsNull(Null) = false, want true")
	}
	if IsNull(Int(0)) {
		t.Error("IsNull(Int(0)) = true, want false")
	}
}

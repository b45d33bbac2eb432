package ast

// BuiltinFunctionNames names the fixed table of free functions the
// evaluator provides (SPEC_FULL.md §2.2 / §4.4): len, push, pop,
// type_of, to_string, to_int, to_float. User code may not redefine
// one of these names with `fn`; the parser rejects it eagerly so the
// error is reported at the definition site rather than at the first
// call.
var BuiltinFunctionNames = map[string]bool{
	"len":       true,
	"push":      true,
	"pop":       true,
	"type_of":   true,
	"to_string": true,
	"to_int":    true,
	"to_float":  true,
}

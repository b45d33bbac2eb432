package lexer

import "testing"

func TestTokenize_Basics(t *testing.T) {
	src := `int x = 2; // comment
print(x + 1);`

	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}

	want := []Kind{
		TYPE, ID, OP, NUMBER, SEMI,
		KEYWORD, LPAREN, ID, OP, NUMBER, RPAREN, SEMI,
		EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s (%v)", i, tokens[i].Kind, k, tokens[i])
		}
	}
}

func TestTokenize_StringEscapes(t *testing.T) {
	tokens, err := Tokenize(`"hello\nworld"`)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if tokens[0].Kind != STRING {
		t.Fatalf("got kind %s, want STRING", tokens[0].Kind)
	}
	if want := "hello\nworld"; tokens[0].Literal != want {
		t.Errorf("got literal %q, want %q", tokens[0].Literal, want)
	}
}

func TestTokenize_KeywordsAndClassNames(t *testing.T) {
	tokens, err := Tokenize(`class P extends Base { }`)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	want := []Kind{KEYWORD, ID, KEYWORD, ID, LBRACE, RBRACE, EOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s (%v)", i, tokens[i].Kind, k, tokens[i])
		}
	}
}

func TestTokenize_LineTracking(t *testing.T) {
	tokens, err := Tokenize("int x = 1;\nint y = 2;")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if tokens[0].Line != 1 {
		t.Errorf("first token line = %d, want 1", tokens[0].Line)
	}
	var foundLine2 bool
	for _, tok := range tokens {
		if tok.Line == 2 {
			foundLine2 = true
		}
	}
	if !foundLine2 {
		t.Errorf("expected a token on line 2, got %v", tokens)
	}
}

func TestTokenize_UnterminatedStringIsLexError(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	if err == nil {
		t.Fatal("expected an error for an unterminated string literal")
	}
	if _, ok := err.(*LexError); !ok {
		t.Errorf("got error of type %T, want *LexError", err)
	}
}

func TestTokenize_PowerAndComparisonOperators(t *testing.T) {
	tokens, err := Tokenize(`2 ^ 3 <= 4`)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	want := []Kind{NUMBER, OP, NUMBER, OP, NUMBER, EOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s (%v)", i, tokens[i].Kind, k, tokens[i])
		}
	}
}

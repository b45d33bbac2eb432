// Package parser implements Glam's recursive-descent parser with an
// explicit operator-precedence ladder, turning a lexer.Token stream
// into an internal/ast.Program.
package parser

import (
	"github.com/Glamerio/Glamerio-Language/internal/ast"
	"github.com/Glamerio/Glamerio-Language/internal/errors"
	"github.com/Glamerio/Glamerio-Language/internal/lexer"
)

// Parser walks a pre-scanned token slice. Parse errors are fatal: the
// first one encountered aborts parsing and is returned to the caller,
// matching SPEC_FULL.md §4.2 ("the parser does not attempt
// recovery").
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse lexes source and parses it into a Program, or returns the
// first lex or parse error encountered.
func Parse(source string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		if le, ok := err.(*lexer.LexError); ok {
			return nil, errors.New(errors.KindLex, le.Line, "%s", le.Message)
		}
		return nil, err
	}
	p := New(tokens)
	return p.ParseProgram()
}

// New wraps an already-scanned token slice.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens, pos: 0}
}

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EOF, Line: p.lastLine()}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EOF, Line: p.lastLine()}
	}
	return p.tokens[idx]
}

func (p *Parser) lastLine() int {
	if len(p.tokens) == 0 {
		return 0
	}
	return p.tokens[len(p.tokens)-1].Line
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) at(kind lexer.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) atKeyword(word string) bool {
	tok := p.cur()
	return tok.Kind == lexer.KEYWORD && tok.Literal == word
}

func (p *Parser) atOp(op string) bool {
	tok := p.cur()
	return tok.Kind == lexer.OP && tok.Literal == op
}

func (p *Parser) errorf(format string, args ...any) error {
	return errors.New(errors.KindParse, p.cur().Line, format, args...)
}

func (p *Parser) expect(kind lexer.Kind) (lexer.Token, error) {
	if !p.at(kind) {
		return lexer.Token{}, p.errorf("expected %s, found %s %q", kind, p.cur().Kind, p.cur().Literal)
	}
	return p.advance(), nil
}

func (p *Parser) expectKeyword(word string) error {
	if !p.atKeyword(word) {
		return p.errorf("expected keyword %q, found %s %q", word, p.cur().Kind, p.cur().Literal)
	}
	p.advance()
	return nil
}

func (p *Parser) expectOp(op string) error {
	if !p.atOp(op) {
		return p.errorf("expected %q, found %s %q", op, p.cur().Kind, p.cur().Literal)
	}
	p.advance()
	return nil
}

// ParseProgram parses the full token stream into a Program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.at(lexer.EOF) {
		startPos := p.pos
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)

		if _, isClass := stmt.(*ast.ClassDef); isClass {
			p.skipStraySeparators()
		}
		if p.pos == startPos {
			// Defensive: never spin in place on an unrecognized token.
			return nil, p.errorf("unexpected token %s %q", p.cur().Kind, p.cur().Literal)
		}
	}
	return prog, nil
}

// skipStraySeparators implements the ambiguity-resolution rule in
// SPEC_FULL.md §4.2: after a class definition, tolerate stray
// separator tokens that are neither TYPE, KEYWORD, nor ID.
func (p *Parser) skipStraySeparators() {
	for {
		k := p.cur().Kind
		if k == lexer.TYPE || k == lexer.KEYWORD || k == lexer.ID || k == lexer.EOF {
			return
		}
		p.advance()
	}
}

func unexpectedf(tok lexer.Token, context string) error {
	return errors.New(errors.KindParse, tok.Line, "unexpected token %s %q %s", tok.Kind, tok.Literal, context)
}

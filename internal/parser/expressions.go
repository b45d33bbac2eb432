package parser

import (
	"github.com/Glamerio/Glamerio-Language/internal/ast"
	"github.com/Glamerio/Glamerio-Language/internal/lexer"
)

// parseExpression parses everything at or above logical-or precedence
// — i.e. every expression form except assignment. Assignment is only
// parsed at the sites SPEC_FULL.md §4.2 names: parseAssignment for
// for-init/step, and parseExpressionStatement's single statement-level
// `expr '=' expr`.
func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseOr()
}

// parseAssignment parses a right-associative assignment chain. It is
// only called from for-init/step, where `a = b = 0` is legal.
func (p *Parser) parseAssignment() (ast.Expr, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.atOp("=") {
		line := p.cur().Line
		p.advance()
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryOp(line, left, "=", right), nil
	}
	return left, nil
}

func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.isOrOp() {
		op := p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(op.Line, left, op.Literal, right)
	}
	return left, nil
}

func (p *Parser) isOrOp() bool {
	tok := p.cur()
	return (tok.Kind == lexer.LOGIC && tok.Literal == "or") || (tok.Kind == lexer.OP && tok.Literal == "||")
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.isAndOp() {
		op := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(op.Line, left, op.Literal, right)
	}
	return left, nil
}

func (p *Parser) isAndOp() bool {
	tok := p.cur()
	return (tok.Kind == lexer.LOGIC && tok.Literal == "and") || (tok.Kind == lexer.OP && tok.Literal == "&&")
}

var comparisonOps = map[string]bool{"<": true, ">": true, "<=": true, ">=": true, "==": true, "!=": true}

func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == lexer.OP && comparisonOps[p.cur().Literal] {
		op := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(op.Line, left, op.Literal, right)
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == lexer.OP && (p.cur().Literal == "+" || p.cur().Literal == "-") {
		op := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(op.Line, left, op.Literal, right)
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == lexer.OP && (p.cur().Literal == "*" || p.cur().Literal == "/") {
		op := p.advance()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(op.Line, left, op.Literal, right)
	}
	return left, nil
}

// parsePower implements `^` as right-associative: 2^3^2 == 2^(3^2).
func (p *Parser) parsePower() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind == lexer.OP && p.cur().Literal == "^" {
		op := p.advance()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryOp(op.Line, left, op.Literal, right), nil
	}
	return left, nil
}

// parseFactor parses a primary expression and then its suffix chain
// of `.name`, `(args)`, and `[index]`, left-associatively.
func (p *Parser) parseFactor() (ast.Expr, error) {
	primary, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseSuffixes(primary)
}

func (p *Parser) parseSuffixes(expr ast.Expr) (ast.Expr, error) {
	for {
		switch {
		case p.at(lexer.DOT):
			line := p.advance().Line
			name, err := p.expect(lexer.ID)
			if err != nil {
				return nil, err
			}
			expr = ast.NewBinaryOp(line, expr, ".", ast.NewIdentifier(name.Line, name.Literal))
		case p.at(lexer.LPAREN):
			line := p.cur().Line
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			expr = ast.NewFunctionCall(line, expr, args)
		case p.at(lexer.LBRACKET):
			line := p.advance().Line
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACKET); err != nil {
				return nil, err
			}
			expr = ast.NewIndexAccess(line, expr, idx)
		default:
			return expr, nil
		}
	}
}

// parseArgList parses a parenthesized, comma-separated expression
// list: `(expr, expr, ...)`.
func (p *Parser) parseArgList() ([]ast.Expr, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for !p.at(lexer.RPAREN) {
		if len(args) > 0 {
			if _, err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.cur()
	switch {
	case tok.Kind == lexer.LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case tok.Kind == lexer.LBRACKET:
		return p.parseArrayLiteral()

	case tok.Kind == lexer.LBRACE:
		return p.parseMapLiteral()

	case tok.Kind == lexer.BOOL:
		p.advance()
		return ast.NewLiteral(tok.Line, tok.Literal), nil

	case tok.Kind == lexer.NULL:
		p.advance()
		return ast.NewLiteral(tok.Line, tok.Literal), nil

	case tok.Kind == lexer.NUMBER:
		p.advance()
		return ast.NewLiteral(tok.Line, tok.Literal), nil

	case tok.Kind == lexer.STRING:
		p.advance()
		return ast.NewStringLit(tok.Line, tok.Literal), nil

	case tok.Kind == lexer.KEYWORD && tok.Literal == "input":
		p.advance()
		if _, err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		prompt, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return ast.NewInput(tok.Line, prompt), nil

	case tok.Kind == lexer.KEYWORD && tok.Literal == "this":
		p.advance()
		return ast.NewThis(tok.Line), nil

	case tok.Kind == lexer.KEYWORD && tok.Literal == "new":
		return p.parseNewInstance()

	case tok.Kind == lexer.ID:
		p.advance()
		return ast.NewIdentifier(tok.Line, tok.Literal), nil
	}

	return nil, unexpectedf(tok, "in expression")
}

func (p *Parser) parseNewInstance() (ast.Expr, error) {
	line := p.cur().Line
	if err := p.expectKeyword("new"); err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.ID)
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	return ast.NewNewInstance(line, name.Literal, args), nil
}

func (p *Parser) parseArrayLiteral() (ast.Expr, error) {
	line := p.cur().Line
	p.advance() // '['
	var elems []ast.Expr
	for !p.at(lexer.RBRACKET) {
		if len(elems) > 0 {
			if _, err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return ast.NewArrayLit(line, elems), nil
}

func (p *Parser) parseMapLiteral() (ast.Expr, error) {
	line := p.cur().Line
	p.advance() // '{'
	var entries []ast.MapEntry
	for !p.at(lexer.RBRACE) {
		if len(entries) > 0 {
			if _, err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
		keyTok := p.cur()
		var key string
		switch keyTok.Kind {
		case lexer.ID, lexer.KEYWORD, lexer.TYPE:
			key = keyTok.Literal
			p.advance()
		case lexer.STRING:
			key = keyTok.Literal
			p.advance()
		default:
			return nil, unexpectedf(keyTok, "as map key")
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.MapEntry{Key: key, Value: value})
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return ast.NewMapLit(line, entries), nil
}

package parser

import (
	"github.com/Glamerio/Glamerio-Language/internal/ast"
	"github.com/Glamerio/Glamerio-Language/internal/lexer"
)

// parseStatement dispatches on the current token to one of the
// statement forms in SPEC_FULL.md §4.2.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok := p.cur()

	switch {
	case tok.Kind == lexer.TYPE:
		return p.parseVarDeclaration(false, false)

	// A class name used as a declared type: `P p = new P();`. Two bare
	// identifiers in a row can only be this shape — no other
	// statement form starts with ID ID.
	case tok.Kind == lexer.ID && p.peek(1).Kind == lexer.ID:
		return p.parseVarDeclaration(false, false)

	case tok.Kind == lexer.KEYWORD && tok.Literal == "print":
		return p.parsePrint()

	case tok.Kind == lexer.KEYWORD && tok.Literal == "if":
		return p.parseIf()

	case tok.Kind == lexer.KEYWORD && tok.Literal == "while":
		return p.parseWhile()

	case tok.Kind == lexer.KEYWORD && tok.Literal == "for":
		return p.parseForOrForEach()

	case tok.Kind == lexer.KEYWORD && tok.Literal == "return":
		return p.parseReturn()

	case tok.Kind == lexer.KEYWORD && tok.Literal == "fn":
		return p.parseFreeFunctionDef()

	case tok.Kind == lexer.KEYWORD && tok.Literal == "class":
		return p.parseClassDef()

	case tok.Kind == lexer.KEYWORD && tok.Literal == "try":
		return p.parseTryCatch()

	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parsePrint() (ast.Stmt, error) {
	line := p.cur().Line
	p.advance() // 'print'
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return ast.NewPrint(line, value), nil
}

// parseExpressionStatement handles the statement-level
// `expr ('=' expr)? ';'` form, including bare calls.
func (p *Parser) parseExpressionStatement() (ast.Stmt, error) {
	line := p.cur().Line
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.atOp("=") {
		p.advance()
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinaryOp(line, expr, "=", right)
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return ast.NewExprStmt(line, expr), nil
}

// parseSingleBareStatement parses the restricted single-statement
// body allowed (braces-free) for if/elseif/else/for-each: a print
// call, an input call, or an identifier-/this-led expression
// optionally followed by assignment.
func (p *Parser) parseSingleBareStatement() (ast.Stmt, error) {
	tok := p.cur()
	switch {
	case tok.Kind == lexer.KEYWORD && tok.Literal == "print":
		return p.parsePrint()
	case tok.Kind == lexer.KEYWORD && (tok.Literal == "input" || tok.Literal == "this"):
		return p.parseExpressionStatement()
	case tok.Kind == lexer.ID:
		return p.parseExpressionStatement()
	}
	return nil, unexpectedf(tok, "in single-statement body")
}

// parseBody parses a brace-delimited block, or — for callers that
// allow it (if/elseif/else/for-each) — a single bare statement.
func (p *Parser) parseBody() (ast.Stmt, error) {
	if p.at(lexer.LBRACE) {
		return p.parseBlock()
	}
	return p.parseSingleBareStatement()
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	line := p.cur().Line
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.at(lexer.RBRACE) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return ast.NewBlock(line, stmts), nil
}

// parseVarDeclaration parses `TYPE ID (, ID)* ('=' expr)? ';'`, where
// TYPE is either a builtin TYPE token or a bare ID naming a class.
// isStatic/isPrivate let class-member parsing reuse this for fields.
func (p *Parser) parseVarDeclaration(isStatic, isPrivate bool) (*ast.VarDeclaration, error) {
	var typeTok lexer.Token
	var err error
	if p.at(lexer.ID) {
		typeTok = p.advance()
	} else {
		typeTok, err = p.expect(lexer.TYPE)
		if err != nil {
			return nil, err
		}
	}
	var names []string
	for {
		nameTok, err := p.expect(lexer.ID)
		if err != nil {
			return nil, err
		}
		names = append(names, nameTok.Literal)
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	var init ast.Expr
	if p.atOp("=") {
		p.advance()
		init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return ast.NewVarDeclaration(typeTok.Line, typeTok.Literal, names, init, isStatic, isPrivate), nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	return p.parseIfLike("if")
}

// parseIfLike parses `if`/`elseif` uniformly: both share
// `KEYWORD (cond) body`, differing only in which keyword introduces
// them and in how the following else-chain is resolved.
func (p *Parser) parseIfLike(keyword string) (ast.Stmt, error) {
	line := p.cur().Line
	if err := p.expectKeyword(keyword); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	var elseStmt ast.Stmt
	if p.atKeyword("elseif") {
		elseStmt, err = p.parseIfLike("elseif")
		if err != nil {
			return nil, err
		}
	} else if p.atKeyword("else") {
		p.advance()
		elseStmt, err = p.parseBody()
		if err != nil {
			return nil, err
		}
	}

	return ast.NewIf(line, cond, then, elseStmt), nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	line := p.cur().Line
	if err := p.expectKeyword("while"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(line, cond, body), nil
}

// parseForOrForEach disambiguates by lookahead: after `for (`,
// an optional TYPE then an ID then the keyword `in` selects for-each;
// anything else rolls back to the C-style for.
func (p *Parser) parseForOrForEach() (ast.Stmt, error) {
	line := p.cur().Line
	if err := p.expectKeyword("for"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	savedPos := p.pos
	if forEach, ok := p.tryParseForEachHeader(line); ok {
		return forEach()
	}
	p.pos = savedPos

	return p.parseClassicFor(line)
}

// tryParseForEachHeader attempts the for-each lookahead. On success
// it returns a thunk that finishes parsing the for-each statement
// (iterable, ')', body) without re-parsing the header; ok is false if
// the header does not match for-each shape, in which case the caller
// must roll back p.pos itself.
func (p *Parser) tryParseForEachHeader(line int) (func() (ast.Stmt, error), bool) {
	elemType := ""
	if p.at(lexer.TYPE) {
		elemType = p.advance().Literal
	} else if p.at(lexer.ID) && p.peek(1).Kind == lexer.ID {
		// A class-typed for-each element: `for (P p in ps)`. The plain
		// `for (x in xs)` shape never matches here since peek(1) would
		// be the `in` keyword, not another ID.
		elemType = p.advance().Literal
	}
	if !p.at(lexer.ID) {
		return nil, false
	}
	name := p.advance().Literal
	if !p.atKeyword("in") {
		return nil, false
	}
	p.advance() // 'in'

	return func() (ast.Stmt, error) {
		iterable, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		return ast.NewForEach(line, elemType, name, iterable, body), nil
	}, true
}

func (p *Parser) parseClassicFor(line int) (ast.Stmt, error) {
	var init ast.Stmt
	var err error
	if p.at(lexer.TYPE) || (p.at(lexer.ID) && p.peek(1).Kind == lexer.ID) {
		init, err = p.parseVarDeclaration(false, false) // consumes trailing ';'
		if err != nil {
			return nil, err
		}
	} else if p.at(lexer.SEMI) {
		p.advance()
	} else {
		initLine := p.cur().Line
		initExpr, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		init = ast.NewExprStmt(initLine, initExpr)
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}

	var step ast.Expr
	if !p.at(lexer.RPAREN) {
		step, err = p.parseAssignment()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFor(line, init, cond, step, body), nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	line := p.cur().Line
	p.advance() // 'return'
	var value ast.Expr
	if !p.at(lexer.SEMI) {
		var err error
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return ast.NewReturn(line, value), nil
}

func (p *Parser) parseTryCatch() (ast.Stmt, error) {
	line := p.cur().Line
	if err := p.expectKeyword("try"); err != nil {
		return nil, err
	}
	tryBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("catch"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	catchVar := ""
	if p.at(lexer.ID) {
		catchVar = p.advance().Literal
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	catchBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewTryCatch(line, tryBlock, catchVar, catchBlock), nil
}

// parseParamList parses `(params?)` where each parameter is an
// optional type annotation (parsed then ignored) followed by a name.
func (p *Parser) parseParamList() ([]string, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	for !p.at(lexer.RPAREN) {
		if len(params) > 0 {
			if _, err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
		if p.at(lexer.TYPE) {
			p.advance() // type annotation, parsed then ignored
		}
		nameTok, err := p.expect(lexer.ID)
		if err != nil {
			return nil, err
		}
		params = append(params, nameTok.Literal)
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseFreeFunctionDef() (ast.Stmt, error) {
	line := p.cur().Line
	if err := p.expectKeyword("fn"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.ID)
	if err != nil {
		return nil, err
	}
	if ast.BuiltinFunctionNames[nameTok.Literal] {
		return nil, p.errorf("cannot redefine builtin function %q", nameTok.Literal)
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDef(line, nameTok.Literal, params, body, false, false, false), nil
}

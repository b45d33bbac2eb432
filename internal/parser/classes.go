package parser

import (
	"github.com/Glamerio/Glamerio-Language/internal/ast"
	"github.com/Glamerio/Glamerio-Language/internal/lexer"
)

// parseClassDef parses `class Name (extends Base)? { member* }`.
func (p *Parser) parseClassDef() (ast.Stmt, error) {
	line := p.cur().Line
	if err := p.expectKeyword("class"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.ID)
	if err != nil {
		return nil, err
	}

	base := ""
	if p.atKeyword("extends") {
		p.advance()
		baseTok, err := p.expect(lexer.ID)
		if err != nil {
			return nil, err
		}
		base = baseTok.Literal
	}

	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	var members []ast.Stmt
	for !p.at(lexer.RBRACE) {
		member, err := p.parseClassMember()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}

	return ast.NewClassDef(line, nameTok.Literal, base, members), nil
}

// classModifiers accumulates the modifier* prefix of a class member,
// in any order and any subset.
type classModifiers struct {
	isStatic      bool
	isPrivate     bool
	isConstructor bool
}

func (p *Parser) parseClassModifiers() classModifiers {
	var mods classModifiers
	for {
		switch {
		case p.atKeyword("static"):
			mods.isStatic = true
			p.advance()
		case p.atKeyword("private"):
			mods.isPrivate = true
			p.advance()
		case p.atKeyword("public"):
			p.advance() // default visibility; modifier is a no-op
		case p.atKeyword("constructor"):
			mods.isConstructor = true
			p.advance()
		default:
			return mods
		}
	}
}

// parseClassMember parses one class-body member per the grammar in
// SPEC_FULL.md §4.2:
//
//	modifier* '(' params? ')' block              -- constructor, no name
//	modifier* TYPE+ ID '(' params? ')' block      -- typed method
//	modifier* TYPE+ ID ('=' expr)? ';'            -- typed field
//	modifier* ID '(' params? ')' block            -- untyped method
//	modifier* 'fn' ID '(' params? ')' block       -- untyped method
//
// For TYPE+, the first type word is kept as the field's declared type.
func (p *Parser) parseClassMember() (ast.Stmt, error) {
	mods := p.parseClassModifiers()
	line := p.cur().Line

	if p.at(lexer.LPAREN) {
		params, err := p.parseParamList()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return ast.NewFunctionDef(line, "constructor", params, body, mods.isStatic, mods.isPrivate, true), nil
	}

	if p.at(lexer.TYPE) {
		typeTok := p.advance() // declared type; ignored as a return-type annotation for methods
		for p.at(lexer.TYPE) {
			p.advance()
		}
		nameTok, err := p.expect(lexer.ID)
		if err != nil {
			return nil, err
		}
		if p.at(lexer.LPAREN) {
			return p.finishMethod(line, nameTok.Literal, mods)
		}
		return p.finishField(line, typeTok.Literal, nameTok.Literal, mods)
	}

	if p.atKeyword("fn") {
		p.advance()
		nameTok, err := p.expect(lexer.ID)
		if err != nil {
			return nil, err
		}
		return p.finishMethod(line, nameTok.Literal, mods)
	}

	if p.at(lexer.ID) {
		nameTok := p.advance()
		if !p.at(lexer.LPAREN) {
			return nil, unexpectedf(p.cur(), "after untyped class member name (expected '(')")
		}
		return p.finishMethod(line, nameTok.Literal, mods)
	}

	return nil, unexpectedf(p.cur(), "in class body")
}

func (p *Parser) finishMethod(line int, name string, mods classModifiers) (ast.Stmt, error) {
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	isConstructor := mods.isConstructor || name == "constructor" || name == "init"
	return ast.NewFunctionDef(line, name, params, body, mods.isStatic, mods.isPrivate, isConstructor), nil
}

func (p *Parser) finishField(line int, typ, name string, mods classModifiers) (ast.Stmt, error) {
	var init ast.Expr
	if p.atOp("=") {
		p.advance()
		var err error
		init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return ast.NewVarDeclaration(line, typ, []string{name}, init, mods.isStatic, mods.isPrivate), nil
}

package parser

import (
	"strconv"

	"github.com/chomey/apyxl/pkg/model"
	"github.com/chomey/apyxl/pkg/token"
)

// This file implements the declaration rules:
//
//	chunk       → use* declaration* EOF
//	declaration → annotation* [pub] (dto | rpc | enum | namespace)
//	dto         → struct name { fields }
//	rpc         → fn name ( fields ) [-> type] body
//	enum        → enum name { variants }
//	namespace   → mod name ( ; | { declaration* } )

// parseChunk parses a chunk's top level.
func (p *Parser) parseChunk() []model.NamespaceChild {
	// Leading import-like declarations carry no model information.
	for p.check(token.USE) && !p.failed() {
		p.parseImport()
	}

	var children []model.NamespaceChild
	for !p.check(token.EOF) && !p.failed() {
		child := p.parseDeclaration()
		if p.failed() {
			return nil
		}
		children = append(children, child)
	}
	if p.failed() {
		return nil
	}
	return children
}

// parseImport consumes `use ... ;`, discarding everything up to the
// terminator.
func (p *Parser) parseImport() {
	p.nextToken() // consume 'use'
	for !p.check(token.SEMICOLON) {
		if p.check(token.EOF) {
			p.errorf(errUnexpectedToken, p.describeToken(), token.SEMICOLON)
			return
		}
		p.nextToken()
	}
	p.nextToken() // consume ';'
}

// parseDeclaration parses one {dto | rpc | enum | namespace}, with any
// leading annotations and an optional visibility keyword, both
// discarded.
func (p *Parser) parseDeclaration() model.NamespaceChild {
	for p.match(token.ANNOTATION) {
	}
	p.match(token.PUB)

	switch p.token.Type {
	case token.STRUCT:
		return p.parseDto()
	case token.FN:
		return p.parseRpc()
	case token.ENUM:
		return p.parseEnum()
	case token.MOD:
		return p.parseNamespace()
	default:
		p.errorf(errUnexpectedToken, p.describeToken(), "a declaration (struct, fn, enum, or mod)")
		return nil
	}
}

// parseDto parses `struct name { field, field, }`.
func (p *Parser) parseDto() *model.Dto {
	p.nextToken() // consume 'struct'
	name := p.expectIdent("struct name")
	if !p.expect(token.LBRACE) {
		return nil
	}
	fields := p.parseFieldList(token.RBRACE)
	if !p.expect(token.RBRACE) {
		return nil
	}
	return &model.Dto{Name: name, Fields: fields}
}

// parseRpc parses `fn name(params) [-> type] body`. The body is
// required and skipped without interpretation.
func (p *Parser) parseRpc() *model.Rpc {
	p.nextToken() // consume 'fn'
	name := p.expectIdent("fn name")
	if !p.expect(token.LPAREN) {
		return nil
	}
	params := p.parseFieldList(token.RPAREN)
	if !p.expect(token.RPAREN) {
		return nil
	}

	var returnType *model.Type
	if p.match(token.ARROW) {
		ty := p.parseType()
		if p.failed() {
			return nil
		}
		returnType = &ty
	}

	p.skipBody()
	if p.failed() {
		return nil
	}
	return &model.Rpc{Name: name, Params: params, ReturnType: returnType}
}

// skipBody consumes a brace-delimited statement body without
// interpreting it. Brace balancing happens at the token level: braces
// inside comments or string literals were never tokenized, so they
// cannot desynchronize the count.
func (p *Parser) skipBody() {
	if !p.expect(token.LBRACE) {
		return
	}
	depth := 1
	for depth > 0 {
		switch p.token.Type {
		case token.EOF:
			p.errorf(errUnterminatedBody)
			return
		case token.LBRACE:
			depth++
		case token.RBRACE:
			depth--
		}
		p.nextToken()
	}
}

// parseEnum parses `enum name { A, B = 999, }`.
func (p *Parser) parseEnum() *model.Enum {
	p.nextToken() // consume 'enum'
	name := p.expectIdent("enum name")
	if !p.expect(token.LBRACE) {
		return nil
	}

	var variants []model.EnumVariant
	for !p.check(token.RBRACE) && !p.failed() {
		variants = append(variants, p.parseEnumVariant())
		if !p.match(token.COMMA) {
			break
		}
	}
	if !p.expect(token.RBRACE) {
		return nil
	}
	return &model.Enum{Name: name, Variants: variants}
}

// parseEnumVariant parses `name [= number]`.
func (p *Parser) parseEnumVariant() model.EnumVariant {
	v := model.EnumVariant{Name: p.expectIdent("variant name")}
	if p.failed() {
		return v
	}
	if p.match(token.ASSIGN) {
		if !p.check(token.NUMBER) {
			p.errorf(errUnexpectedToken, p.describeToken(), "a discriminant value")
			return v
		}
		value, err := strconv.ParseInt(p.token.Literal, 10, 64)
		if err != nil {
			p.errorf(errBadDiscriminant, p.token.Literal)
			return v
		}
		p.nextToken()
		v.Value = value
		v.HasValue = true
	}
	return v
}

// parseNamespace parses `mod name ;` (forward declaration) or
// `mod name { declaration* }`.
func (p *Parser) parseNamespace() *model.Namespace {
	p.nextToken() // consume 'mod'
	name := p.expectIdent("mod name")
	if p.failed() {
		return nil
	}

	// Forward declaration: empty children until some later chunk merges
	// a body for the same path. Permanently empty is fine.
	if p.match(token.SEMICOLON) {
		return &model.Namespace{Name: name}
	}

	if !p.expect(token.LBRACE) {
		return nil
	}
	var children []model.NamespaceChild
	for !p.check(token.RBRACE) && !p.failed() {
		children = append(children, p.parseDeclaration())
	}
	if !p.expect(token.RBRACE) {
		return nil
	}
	return &model.Namespace{Name: name, Children: children}
}

// parseFieldList parses `name : type` pairs separated by commas,
// allowing a trailing comma, up to (not consuming) the terminator.
// Shared by DTO members and RPC parameters.
func (p *Parser) parseFieldList(terminator token.Type) []model.Field {
	var fields []model.Field
	for !p.check(terminator) && !p.failed() {
		fields = append(fields, p.parseField())
		if !p.match(token.COMMA) {
			break
		}
	}
	return fields
}

// parseField parses `name : type`.
func (p *Parser) parseField() model.Field {
	name := p.expectIdent("field name")
	if p.failed() {
		return model.Field{}
	}
	if !p.expect(token.COLON) {
		return model.Field{}
	}
	ty := p.parseType()
	return model.Field{Name: name, Type: ty}
}

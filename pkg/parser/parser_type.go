package parser

import (
	"github.com/chomey/apyxl/pkg/model"
	"github.com/chomey/apyxl/pkg/token"
)

// This file implements the type rule. Alternatives are tried in order
// at the current position, and a failed candidate consumes no input:
//
//	type → & primitive          (reference spelling, same variant)
//	     | primitive            (bool, u8..u128, i8..i128, f8..f128,
//	                             String, str, bytes)
//	     | user type            (first configured rule whose pattern
//	                             equals the identifier)
//	     | qualified name       (dotted segments, captured as EntityId)

// primitiveKinds maps every primitive type spelling to its kind. The
// reference spellings (&str, &i32, ...) map to the same kind as the
// value spellings; reference-ness is not semantically distinct here.
var primitiveKinds = map[string]model.TypeKind{
	"bool": model.KindBool,

	"u8":   model.KindU8,
	"u16":  model.KindU16,
	"u32":  model.KindU32,
	"u64":  model.KindU64,
	"u128": model.KindU128,

	"i8":   model.KindI8,
	"i16":  model.KindI16,
	"i32":  model.KindI32,
	"i64":  model.KindI64,
	"i128": model.KindI128,

	"f8":   model.KindF8,
	"f16":  model.KindF16,
	"f32":  model.KindF32,
	"f64":  model.KindF64,
	"f128": model.KindF128,

	"String": model.KindString,
	"str":    model.KindString,

	"bytes": model.KindBytes,
}

// parseType parses a type reference.
func (p *Parser) parseType() model.Type {
	// Reference marker is only accepted as a leading character, and only
	// on primitive spellings.
	if p.match(token.AMP) {
		if !p.check(token.IDENT) {
			p.errorf(errUnexpectedToken, p.describeToken(), "a type name")
			return model.Type{}
		}
		kind, ok := primitiveKinds[p.token.Literal]
		if !ok {
			p.errorf(errNotReferenceable, p.token.Literal)
			return model.Type{}
		}
		p.nextToken()
		return model.Type{Kind: kind}
	}

	if !p.check(token.IDENT) {
		p.errorf(errUnexpectedToken, p.describeToken(), "a type")
		return model.Type{}
	}
	name := p.token.Literal

	if kind, ok := primitiveKinds[name]; ok {
		p.nextToken()
		return model.Type{Kind: kind}
	}

	// User-defined types: the first rule whose pattern equals the
	// identifier wins; later duplicates are shadowed silently.
	for _, rule := range p.cfg.UserTypes {
		if rule.Pattern == name {
			p.nextToken()
			return model.UserType(rule.Display)
		}
	}

	// Otherwise a dotted qualified name referencing another API entity.
	id := model.EntityId{name}
	p.nextToken()
	for p.match(token.DOT) {
		seg := p.expectIdent("a path segment")
		if p.failed() {
			return model.Type{}
		}
		id = append(id, seg)
	}
	return model.ApiType(id)
}

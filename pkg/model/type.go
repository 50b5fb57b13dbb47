package model

import "fmt"

// TypeKind discriminates the closed set of type variants.
type TypeKind int

// Type kinds. Reference spellings in the source syntax (&str, &i32)
// parse to the same kind as their value spellings; reference-ness is not
// semantically distinct at this layer.
const (
	KindBool TypeKind = iota

	KindU8
	KindU16
	KindU32
	KindU64
	KindU128

	KindI8
	KindI16
	KindI32
	KindI64
	KindI128

	KindF8
	KindF16
	KindF32
	KindF64
	KindF128

	KindString
	KindBytes

	// KindUser is a user-defined type matched by a configured rule;
	// Display carries the rule's display name.
	KindUser

	// KindApi references another entity declared in the API; Ref carries
	// its EntityId.
	KindApi
)

// Type is a closed variant over the primitive, user-defined, and
// API-reference types a field may carry.
type Type struct {
	Kind TypeKind

	// Display is the configured display name; set only for KindUser.
	Display string

	// Ref is the referenced entity path; set only for KindApi.
	Ref EntityId
}

// UserType builds a Type for a configured user-defined type.
func UserType(display string) Type {
	return Type{Kind: KindUser, Display: display}
}

// ApiType builds a Type referencing another API entity.
func ApiType(ref EntityId) Type {
	return Type{Kind: KindApi, Ref: ref}
}

var kindNames = map[TypeKind]string{
	KindBool:   "bool",
	KindU8:     "u8",
	KindU16:    "u16",
	KindU32:    "u32",
	KindU64:    "u64",
	KindU128:   "u128",
	KindI8:     "i8",
	KindI16:    "i16",
	KindI32:    "i32",
	KindI64:    "i64",
	KindI128:   "i128",
	KindF8:     "f8",
	KindF16:    "f16",
	KindF32:    "f32",
	KindF64:    "f64",
	KindF128:   "f128",
	KindString: "string",
	KindBytes:  "bytes",
}

// String renders the type for diagnostics and the dbg generator.
func (t Type) String() string {
	switch t.Kind {
	case KindUser:
		return t.Display
	case KindApi:
		return t.Ref.String()
	default:
		if name, ok := kindNames[t.Kind]; ok {
			return name
		}
		return fmt.Sprintf("type(%d)", int(t.Kind))
	}
}

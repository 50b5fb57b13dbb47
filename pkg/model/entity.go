// Package model defines the normalized in-memory representation of a
// parsed API: a tree of namespaces containing DTOs, RPCs, and enums,
// addressable by EntityId and queryable once finalized.
package model

import "strings"

// RootName is the reserved name of the synthetic root namespace. It is
// not a legal identifier in the source syntax, so it can never collide
// with a declared namespace.
const RootName = "<api>"

// EntityId identifies an entity by its segment path from the namespace
// the lookup is rooted at, e.g. ["a","b","c"] for a.b.c.
type EntityId []string

// NewEntityId parses a dotted path like "a.b.c" into an EntityId.
// An empty string yields an empty id.
func NewEntityId(dotted string) EntityId {
	if dotted == "" {
		return nil
	}
	return strings.Split(dotted, ".")
}

// String renders the id as a dotted path.
func (id EntityId) String() string {
	return strings.Join(id, ".")
}

// Equal reports exact segment-sequence equality.
func (id EntityId) Equal(other EntityId) bool {
	if len(id) != len(other) {
		return false
	}
	for i := range id {
		if id[i] != other[i] {
			return false
		}
	}
	return true
}

// Child returns a new id with name appended. The receiver is not modified.
func (id EntityId) Child(name string) EntityId {
	child := make(EntityId, 0, len(id)+1)
	child = append(child, id...)
	return append(child, name)
}

// Attributes is an opaque per-entity attribute bag. The core never
// interprets it; the view layer and generators may.
type Attributes map[string]any

// Field is a named, typed member of a Dto or parameter of an Rpc.
type Field struct {
	Name       string
	Type       Type
	Attributes Attributes
}

// Dto is a data transfer object: a named record of fields with no
// behavior. Field order is declaration order. Duplicate field names are
// not rejected here; that validation belongs to callers.
type Dto struct {
	Name       string
	Fields     []Field
	Attributes Attributes
}

// Rpc is a remote procedure declaration. Params are ordered as declared;
// ReturnType is nil for procedures that return nothing.
type Rpc struct {
	Name       string
	Params     []Field
	ReturnType *Type
	Attributes Attributes
}

// EnumVariant is one variant of an Enum, optionally carrying an explicit
// discriminant value.
type EnumVariant struct {
	Name     string
	Value    int64
	HasValue bool
}

// Enum is a named enumeration with ordered variants.
type Enum struct {
	Name       string
	Variants   []EnumVariant
	Attributes Attributes
}

// Namespace is a named, nestable grouping of declarations. Children keep
// the exact order in which they were encountered across all merged
// chunks. A namespace declared only by name has an empty child list.
type Namespace struct {
	Name       string
	Children   []NamespaceChild
	Attributes Attributes
}

// NamespaceChild is the closed variant over the entity kinds a namespace
// may contain.
type NamespaceChild interface {
	namespaceChild()
	// ChildName returns the declared name of the entity.
	ChildName() string
}

func (*Dto) namespaceChild()       {}
func (*Rpc) namespaceChild()       {}
func (*Enum) namespaceChild()      {}
func (*Namespace) namespaceChild() {}

// ChildName returns the DTO's name.
func (d *Dto) ChildName() string { return d.Name }

// ChildName returns the RPC's name.
func (r *Rpc) ChildName() string { return r.Name }

// ChildName returns the enum's name.
func (e *Enum) ChildName() string { return e.Name }

// ChildName returns the namespace's name.
func (n *Namespace) ChildName() string { return n.Name }

// Api is the finalized model: the distinguished root namespace. It is
// read-only once built and safe to share.
type Api struct {
	root *Namespace
}

// Root returns the synthetic root namespace.
func (a *Api) Root() *Namespace {
	return a.root
}

// Chunk is one unit of input: an optional relative, slash-segmented
// source path (used to infer default namespace nesting) plus the raw
// declaration text.
type Chunk struct {
	// RelativePath is the chunk's slash-separated path relative to the
	// input root, or "" for pathless chunks.
	RelativePath string
	// Data is the opaque source text.
	Data string
}

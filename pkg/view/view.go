// Package view projects a finalized model through composable, pure
// transforms: per-kind filters and name renamers applied lazily on
// read. The underlying model is never mutated, so many views with
// different transforms can share one model.
package view

import "github.com/chomey/apyxl/pkg/model"

// Transforms is a pipeline of pure functions applied on read. Renames
// compose in order; an entity is included only if every filter for its
// kind returns true.
type Transforms struct {
	NamespaceRenames []func(string) string
	DtoRenames       []func(string) string
	RpcRenames       []func(string) string
	EnumRenames      []func(string) string
	FieldRenames     []func(string) string

	NamespaceFilters []func(*model.Namespace) bool
	DtoFilters       []func(*model.Dto) bool
	RpcFilters       []func(*model.Rpc) bool
	EnumFilters      []func(*model.Enum) bool
}

// Option configures a Model's transforms.
type Option func(*Transforms)

// WithNamespaceRename appends a namespace renamer.
func WithNamespaceRename(f func(string) string) Option {
	return func(t *Transforms) { t.NamespaceRenames = append(t.NamespaceRenames, f) }
}

// WithDtoRename appends a DTO renamer.
func WithDtoRename(f func(string) string) Option {
	return func(t *Transforms) { t.DtoRenames = append(t.DtoRenames, f) }
}

// WithRpcRename appends an RPC renamer.
func WithRpcRename(f func(string) string) Option {
	return func(t *Transforms) { t.RpcRenames = append(t.RpcRenames, f) }
}

// WithEnumRename appends an enum renamer.
func WithEnumRename(f func(string) string) Option {
	return func(t *Transforms) { t.EnumRenames = append(t.EnumRenames, f) }
}

// WithFieldRename appends a field renamer.
func WithFieldRename(f func(string) string) Option {
	return func(t *Transforms) { t.FieldRenames = append(t.FieldRenames, f) }
}

// WithNamespaceFilter appends a namespace filter; false excludes.
func WithNamespaceFilter(f func(*model.Namespace) bool) Option {
	return func(t *Transforms) { t.NamespaceFilters = append(t.NamespaceFilters, f) }
}

// WithDtoFilter appends a DTO filter; false excludes.
func WithDtoFilter(f func(*model.Dto) bool) Option {
	return func(t *Transforms) { t.DtoFilters = append(t.DtoFilters, f) }
}

// WithRpcFilter appends an RPC filter; false excludes.
func WithRpcFilter(f func(*model.Rpc) bool) Option {
	return func(t *Transforms) { t.RpcFilters = append(t.RpcFilters, f) }
}

// WithEnumFilter appends an enum filter; false excludes.
func WithEnumFilter(f func(*model.Enum) bool) Option {
	return func(t *Transforms) { t.EnumFilters = append(t.EnumFilters, f) }
}

// Model is a read-only projection of a finalized model.
type Model struct {
	api    *model.Api
	xforms *Transforms
}

// New creates a view over api with the given transforms.
func New(api *model.Api, opts ...Option) *Model {
	t := &Transforms{}
	for _, opt := range opts {
		opt(t)
	}
	return &Model{api: api, xforms: t}
}

// Root returns the view of the root namespace.
func (m *Model) Root() Namespace {
	return Namespace{target: m.api.Root(), xforms: m.xforms}
}

func rename(name string, fns []func(string) string) string {
	for _, f := range fns {
		name = f(name)
	}
	return name
}

// Namespace wraps a model.Namespace.
type Namespace struct {
	target *model.Namespace
	xforms *Transforms
}

// Name returns the namespace name with renames applied.
func (n Namespace) Name() string {
	return rename(n.target.Name, n.xforms.NamespaceRenames)
}

// Attributes returns the underlying attribute bag.
func (n Namespace) Attributes() model.Attributes {
	return n.target.Attributes
}

// Namespaces returns the included child namespaces in order.
func (n Namespace) Namespaces() []Namespace {
	var out []Namespace
	for _, target := range n.target.Namespaces() {
		if included(target, n.xforms.NamespaceFilters) {
			out = append(out, Namespace{target: target, xforms: n.xforms})
		}
	}
	return out
}

// Dtos returns the included child DTOs in order.
func (n Namespace) Dtos() []Dto {
	var out []Dto
	for _, target := range n.target.Dtos() {
		if included(target, n.xforms.DtoFilters) {
			out = append(out, Dto{target: target, xforms: n.xforms})
		}
	}
	return out
}

// Rpcs returns the included child RPCs in order.
func (n Namespace) Rpcs() []Rpc {
	var out []Rpc
	for _, target := range n.target.Rpcs() {
		if included(target, n.xforms.RpcFilters) {
			out = append(out, Rpc{target: target, xforms: n.xforms})
		}
	}
	return out
}

// Enums returns the included child enums in order.
func (n Namespace) Enums() []Enum {
	var out []Enum
	for _, target := range n.target.Enums() {
		if included(target, n.xforms.EnumFilters) {
			out = append(out, Enum{target: target, xforms: n.xforms})
		}
	}
	return out
}

func included[T any](target T, filters []func(T) bool) bool {
	for _, f := range filters {
		if !f(target) {
			return false
		}
	}
	return true
}

// Dto wraps a model.Dto.
type Dto struct {
	target *model.Dto
	xforms *Transforms
}

// Name returns the DTO name with renames applied.
func (d Dto) Name() string {
	return rename(d.target.Name, d.xforms.DtoRenames)
}

// Attributes returns the underlying attribute bag.
func (d Dto) Attributes() model.Attributes {
	return d.target.Attributes
}

// Fields returns the DTO's fields in declaration order.
func (d Dto) Fields() []Field {
	return wrapFields(d.target.Fields, d.xforms)
}

// Rpc wraps a model.Rpc.
type Rpc struct {
	target *model.Rpc
	xforms *Transforms
}

// Name returns the RPC name with renames applied.
func (r Rpc) Name() string {
	return rename(r.target.Name, r.xforms.RpcRenames)
}

// Attributes returns the underlying attribute bag.
func (r Rpc) Attributes() model.Attributes {
	return r.target.Attributes
}

// Params returns the RPC's parameters in declaration order.
func (r Rpc) Params() []Field {
	return wrapFields(r.target.Params, r.xforms)
}

// ReturnType returns the RPC's return type, or nil.
func (r Rpc) ReturnType() *model.Type {
	return r.target.ReturnType
}

// Enum wraps a model.Enum.
type Enum struct {
	target *model.Enum
	xforms *Transforms
}

// Name returns the enum name with renames applied.
func (e Enum) Name() string {
	return rename(e.target.Name, e.xforms.EnumRenames)
}

// Attributes returns the underlying attribute bag.
func (e Enum) Attributes() model.Attributes {
	return e.target.Attributes
}

// Variants returns the enum's variants in declaration order.
func (e Enum) Variants() []model.EnumVariant {
	return e.target.Variants
}

// Field wraps a model.Field.
type Field struct {
	target *model.Field
	xforms *Transforms
}

// Name returns the field name with renames applied.
func (f Field) Name() string {
	return rename(f.target.Name, f.xforms.FieldRenames)
}

// Type returns the field's type.
func (f Field) Type() model.Type {
	return f.target.Type
}

func wrapFields(fields []model.Field, xforms *Transforms) []Field {
	out := make([]Field, len(fields))
	for i := range fields {
		out[i] = Field{target: &fields[i], xforms: xforms}
	}
	return out
}

package model

import (
	"path"
	"strings"
)

// Index file names whose final path component populates the parent
// namespace rather than a nested one named after the file.
var indexNames = map[string]bool{
	"mod": true,
	"lib": true,
}

// InferPath derives the default namespace nesting from a chunk's
// relative path: the extension is stripped, and a final "mod" or "lib"
// component is dropped so an index file populates its parent namespace.
// An empty path yields no nesting.
func InferPath(relativePath string) []string {
	if relativePath == "" {
		return nil
	}
	trimmed := strings.TrimSuffix(relativePath, path.Ext(relativePath))
	var segs []string
	for _, seg := range strings.Split(trimmed, "/") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	if len(segs) > 0 && indexNames[segs[len(segs)-1]] {
		segs = segs[:len(segs)-1]
	}
	if len(segs) == 0 {
		return nil
	}
	return segs
}

// Builder assembles declarations parsed from many chunks into one tree
// rooted at the synthetic root namespace.
//
// The nesting stack is session-scoped mutable state shared across each
// chunk's push/merge/clear cycle, so chunks must be merged strictly
// sequentially against one builder, in caller-specified order. A
// Builder is good for exactly one session: after Finalize the tree is
// handed to the returned Api and the builder must not be reused.
type Builder struct {
	root  *Namespace
	stack []string
}

// NewBuilder returns a builder with an empty root namespace.
func NewBuilder() *Builder {
	return &Builder{
		root: &Namespace{Name: RootName},
	}
}

// Enter pushes a namespace name onto the nesting stack; subsequent
// merges nest one level deeper.
func (b *Builder) Enter(name string) {
	b.stack = append(b.stack, name)
}

// EnterPath pushes each segment of a namespace path in order.
func (b *Builder) EnterPath(segs []string) {
	for _, seg := range segs {
		b.Enter(seg)
	}
}

// ClearStack resets the nesting stack between chunks.
func (b *Builder) ClearStack() {
	b.stack = b.stack[:0]
}

// Merge appends a chunk's declarations at the namespace named by the
// active stack, synthesizing missing intermediate namespaces on demand
// and descending into existing ones instead of duplicating. This is how
// a forward declaration's body gets filled by a later chunk, and how one
// logical namespace spread across files is reassembled into a single
// node. Child order within a namespace follows merge order exactly.
func (b *Builder) Merge(children []NamespaceChild) {
	target := b.root
	for _, seg := range b.stack {
		target = childNamespaceOrNew(target, seg)
	}
	appendChildren(target, children)
}

// Finalize produces the immutable model. The tree's ownership transfers
// to the returned Api and the builder's state is discarded.
func (b *Builder) Finalize() *Api {
	api := &Api{root: b.root}
	b.root = nil
	b.stack = nil
	return api
}

// childNamespaceOrNew returns the child namespace named name, creating
// and appending it if absent.
func childNamespaceOrNew(parent *Namespace, name string) *Namespace {
	for _, c := range parent.Children {
		if ns, ok := c.(*Namespace); ok && ns.Name == name {
			return ns
		}
	}
	ns := &Namespace{Name: name}
	parent.Children = append(parent.Children, ns)
	return ns
}

// appendChildren appends children to target in order. A namespace child
// whose name already exists at the target level is merged into the
// existing node recursively, keeping one node per logical namespace.
func appendChildren(target *Namespace, children []NamespaceChild) {
	for _, c := range children {
		if ns, ok := c.(*Namespace); ok {
			if existing := findChildNamespace(target, ns.Name); existing != nil {
				appendChildren(existing, ns.Children)
				continue
			}
		}
		target.Children = append(target.Children, c)
	}
}

func findChildNamespace(parent *Namespace, name string) *Namespace {
	for _, c := range parent.Children {
		if ns, ok := c.(*Namespace); ok && ns.Name == name {
			return ns
		}
	}
	return nil
}

// Api lookups delegate to the root namespace.

// FindNamespace resolves id relative to the root.
func (a *Api) FindNamespace(id EntityId) *Namespace { return a.root.FindNamespace(id) }

// FindDto resolves id relative to the root.
func (a *Api) FindDto(id EntityId) *Dto { return a.root.FindDto(id) }

// FindRpc resolves id relative to the root.
func (a *Api) FindRpc(id EntityId) *Rpc { return a.root.FindRpc(id) }

// FindEnum resolves id relative to the root.
func (a *Api) FindEnum(id EntityId) *Enum { return a.root.FindEnum(id) }

// FindChild resolves id relative to the root.
func (a *Api) FindChild(id EntityId) NamespaceChild { return a.root.FindChild(id) }

package model

// Lookup operations resolve an EntityId relative to a namespace, segment
// by segment. Every non-final segment must name a child namespace; the
// final segment must name a child of the requested kind. A miss at any
// segment returns nil immediately; never a partial result, never an
// error.

// FindChild resolves id to a child of any kind.
func (n *Namespace) FindChild(id EntityId) NamespaceChild {
	if len(id) == 0 {
		return nil
	}
	parent := n.descend(id[:len(id)-1])
	if parent == nil {
		return nil
	}
	name := id[len(id)-1]
	for _, c := range parent.Children {
		if c.ChildName() == name {
			return c
		}
	}
	return nil
}

// FindNamespace resolves id to a child namespace.
func (n *Namespace) FindNamespace(id EntityId) *Namespace {
	return n.descend(id)
}

// FindDto resolves id to a DTO.
func (n *Namespace) FindDto(id EntityId) *Dto {
	if d, ok := n.FindChild(id).(*Dto); ok {
		return d
	}
	return nil
}

// FindRpc resolves id to an RPC.
func (n *Namespace) FindRpc(id EntityId) *Rpc {
	if r, ok := n.FindChild(id).(*Rpc); ok {
		return r
	}
	return nil
}

// FindEnum resolves id to an enum.
func (n *Namespace) FindEnum(id EntityId) *Enum {
	if e, ok := n.FindChild(id).(*Enum); ok {
		return e
	}
	return nil
}

// Namespaces returns the direct child namespaces in declaration order.
func (n *Namespace) Namespaces() []*Namespace {
	var out []*Namespace
	for _, c := range n.Children {
		if ns, ok := c.(*Namespace); ok {
			out = append(out, ns)
		}
	}
	return out
}

// Dtos returns the direct child DTOs in declaration order.
func (n *Namespace) Dtos() []*Dto {
	var out []*Dto
	for _, c := range n.Children {
		if d, ok := c.(*Dto); ok {
			out = append(out, d)
		}
	}
	return out
}

// Rpcs returns the direct child RPCs in declaration order.
func (n *Namespace) Rpcs() []*Rpc {
	var out []*Rpc
	for _, c := range n.Children {
		if r, ok := c.(*Rpc); ok {
			out = append(out, r)
		}
	}
	return out
}

// Enums returns the direct child enums in declaration order.
func (n *Namespace) Enums() []*Enum {
	var out []*Enum
	for _, c := range n.Children {
		if e, ok := c.(*Enum); ok {
			out = append(out, e)
		}
	}
	return out
}

// descend walks id's segments, requiring each to name a child namespace.
func (n *Namespace) descend(id EntityId) *Namespace {
	cur := n
	for _, seg := range id {
		var next *Namespace
		for _, c := range cur.Children {
			if ns, ok := c.(*Namespace); ok && ns.Name == seg {
				next = ns
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

package engine

import "github.com/chomey/apyxl/pkg/model"

// Stats counts the entities in a finalized model. The synthetic root is
// not counted as a namespace.
type Stats struct {
	Namespaces int
	Dtos       int
	Rpcs       int
	Enums      int
}

// Collect walks the model and tallies entity counts.
func Collect(api *model.Api) Stats {
	var s Stats
	countChildren(api.Root(), &s)
	return s
}

func countChildren(ns *model.Namespace, s *Stats) {
	for _, c := range ns.Children {
		switch child := c.(type) {
		case *model.Namespace:
			s.Namespaces++
			countChildren(child, s)
		case *model.Dto:
			s.Dtos++
		case *model.Rpc:
			s.Rpcs++
		case *model.Enum:
			s.Enums++
		}
	}
}

// Entity is one declared entity with its path from the root.
type Entity struct {
	Kind string // "namespace", "dto", "rpc", or "enum"
	Id   model.EntityId
}

// Entities lists every declared entity in declaration order, depth
// first. Useful for tabular listings and docs indexes.
func Entities(api *model.Api) []Entity {
	var out []Entity
	walkEntities(api.Root(), nil, &out)
	return out
}

func walkEntities(ns *model.Namespace, prefix model.EntityId, out *[]Entity) {
	for _, c := range ns.Children {
		id := prefix.Child(c.ChildName())
		switch child := c.(type) {
		case *model.Namespace:
			*out = append(*out, Entity{Kind: "namespace", Id: id})
			walkEntities(child, id, out)
		case *model.Dto:
			*out = append(*out, Entity{Kind: "dto", Id: id})
		case *model.Rpc:
			*out = append(*out, Entity{Kind: "rpc", Id: id})
		case *model.Enum:
			*out = append(*out, Entity{Kind: "enum", Id: id})
		}
	}
}

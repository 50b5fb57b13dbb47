package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chomey/apyxl/pkg/model"
)

func TestEntityId(t *testing.T) {
	id := model.NewEntityId("a.b.c")
	assert.Equal(t, model.EntityId{"a", "b", "c"}, id)
	assert.Equal(t, "a.b.c", id.String())
	assert.True(t, id.Equal(model.EntityId{"a", "b", "c"}))
	assert.False(t, id.Equal(model.EntityId{"a", "b"}))
	assert.False(t, id.Equal(model.EntityId{"a", "b", "x"}))

	child := id.Child("d")
	assert.Equal(t, "a.b.c.d", child.String())
	assert.Equal(t, "a.b.c", id.String(), "Child must not modify the receiver")

	assert.Nil(t, model.NewEntityId(""))
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		ty   model.Type
		want string
	}{
		{model.Type{Kind: model.KindBool}, "bool"},
		{model.Type{Kind: model.KindU128}, "u128"},
		{model.Type{Kind: model.KindString}, "string"},
		{model.UserType("SpecialId"), "SpecialId"},
		{model.ApiType(model.EntityId{"a", "B"}), "a.B"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ty.String())
	}
}

func buildSample() *model.Api {
	// <api> { a { b { struct D; fn r; enum E; } } struct Top }
	b := model.NewBuilder()
	b.EnterPath([]string{"a", "b"})
	b.Merge([]model.NamespaceChild{
		&model.Dto{Name: "D"},
		&model.Rpc{Name: "r"},
		&model.Enum{Name: "E"},
	})
	b.ClearStack()
	b.Merge([]model.NamespaceChild{&model.Dto{Name: "Top"}})
	return b.Finalize()
}

func TestLookupByKind(t *testing.T) {
	api := buildSample()

	assert.NotNil(t, api.FindDto(model.NewEntityId("a.b.D")))
	assert.NotNil(t, api.FindRpc(model.NewEntityId("a.b.r")))
	assert.NotNil(t, api.FindEnum(model.NewEntityId("a.b.E")))
	assert.NotNil(t, api.FindNamespace(model.NewEntityId("a.b")))
	assert.NotNil(t, api.FindDto(model.NewEntityId("Top")))

	// Wrong kind at the final segment is a miss, not an error.
	assert.Nil(t, api.FindDto(model.NewEntityId("a.b.r")))
	assert.Nil(t, api.FindNamespace(model.NewEntityId("a.b.D")))

	// A missing intermediate segment fails immediately.
	assert.Nil(t, api.FindDto(model.NewEntityId("a.x.D")))
	assert.Nil(t, api.FindNamespace(model.NewEntityId("a.b.c")))

	// A non-namespace intermediate segment fails even if a deeper name
	// would coincide.
	assert.Nil(t, api.FindDto(model.NewEntityId("a.b.D.D")))
}

// For every valid namespace path, the namespace found reconstructs the
// same root-to-leaf path.
func TestLookupNamespacePathRoundTrip(t *testing.T) {
	b := model.NewBuilder()
	b.EnterPath([]string{"x", "y", "z"})
	b.Merge(nil)
	api := b.Finalize()

	for _, path := range []string{"x", "x.y", "x.y.z"} {
		id := model.NewEntityId(path)
		ns := api.FindNamespace(id)
		require.NotNil(t, ns, path)

		// Reconstruct the path by walking down from the root again.
		got := reconstruct(api.Root(), ns)
		assert.Equal(t, path, got.String())
	}
}

func reconstruct(root *model.Namespace, target *model.Namespace) model.EntityId {
	var walk func(ns *model.Namespace, prefix model.EntityId) model.EntityId
	walk = func(ns *model.Namespace, prefix model.EntityId) model.EntityId {
		if ns == target {
			return prefix
		}
		for _, child := range ns.Namespaces() {
			if found := walk(child, prefix.Child(child.Name)); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(root, nil)
}

func TestBuilderForwardDeclarationFilledLater(t *testing.T) {
	// Chunk A declares `mod x;` (forward, empty); chunk B, at inferred
	// path x, declares the DTO. Order must not matter for reachability.
	build := func(forwardFirst bool) *model.Api {
		b := model.NewBuilder()
		forward := func() {
			b.ClearStack()
			b.Merge([]model.NamespaceChild{&model.Namespace{Name: "x"}})
		}
		body := func() {
			b.ClearStack()
			b.EnterPath(model.InferPath("x.apix"))
			b.Merge([]model.NamespaceChild{&model.Dto{Name: "D"}})
		}
		if forwardFirst {
			forward()
			body()
		} else {
			body()
			forward()
		}
		return b.Finalize()
	}

	for _, forwardFirst := range []bool{true, false} {
		api := build(forwardFirst)
		assert.NotNil(t, api.FindDto(model.NewEntityId("x.D")))
		// One node per logical namespace.
		require.Len(t, api.Root().Namespaces(), 1)
	}
}

func TestBuilderPermanentlyEmptyNamespace(t *testing.T) {
	b := model.NewBuilder()
	b.Merge([]model.NamespaceChild{&model.Namespace{Name: "pending"}})
	api := b.Finalize()

	ns := api.FindNamespace(model.NewEntityId("pending"))
	require.NotNil(t, ns)
	assert.Empty(t, ns.Children)
}

func TestBuilderSplitNamespaceReassembled(t *testing.T) {
	b := model.NewBuilder()
	b.EnterPath([]string{"svc"})
	b.Merge([]model.NamespaceChild{&model.Dto{Name: "A"}})
	b.ClearStack()
	b.EnterPath([]string{"svc"})
	b.Merge([]model.NamespaceChild{&model.Dto{Name: "B"}})
	api := b.Finalize()

	require.Len(t, api.Root().Namespaces(), 1)
	svc := api.FindNamespace(model.NewEntityId("svc"))
	require.NotNil(t, svc)
	require.Len(t, svc.Children, 2)
	// Declaration order follows chunk-processing order exactly.
	assert.Equal(t, "A", svc.Children[0].ChildName())
	assert.Equal(t, "B", svc.Children[1].ChildName())
}

func TestBuilderChildOrderAcrossKinds(t *testing.T) {
	b := model.NewBuilder()
	b.Merge([]model.NamespaceChild{&model.Dto{Name: "B"}})
	b.Merge([]model.NamespaceChild{
		&model.Rpc{Name: "a"},
		&model.Dto{Name: "A"},
	})
	api := b.Finalize()

	var names []string
	for _, c := range api.Root().Children {
		names = append(names, c.ChildName())
	}
	assert.Equal(t, []string{"B", "a", "A"}, names)
}

func TestInferPath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"", nil},
		{"user.apix", []string{"user"}},
		{"service/social.apix", []string{"service", "social"}},
		// Index files populate the parent namespace.
		{"a/b/mod.apix", []string{"a", "b"}},
		{"lib.apix", nil},
		{"a/b/lib.apix", []string{"a", "b"}},
		// Only a final index component is dropped.
		{"mod/user.apix", []string{"mod", "user"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, model.InferPath(tt.path))
		})
	}
}

// A chunk at a/b/mod.apix is reachable at a.b.<name>, never at
// a.b.mod.<name>.
func TestIndexFileMergesIntoParent(t *testing.T) {
	b := model.NewBuilder()
	b.EnterPath(model.InferPath("a/b/mod.apix"))
	b.Merge([]model.NamespaceChild{&model.Dto{Name: "D"}})
	api := b.Finalize()

	assert.NotNil(t, api.FindDto(model.NewEntityId("a.b.D")))
	assert.Nil(t, api.FindDto(model.NewEntityId("a.b.mod.D")))
}

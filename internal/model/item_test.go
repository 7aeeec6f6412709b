package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemKind_String(t *testing.T) {
	tests := []struct {
		kind     ItemKind
		expected string
	}{
		{KindInstance, "instance"},
		{KindGroup, "group"},
		{ItemKind(42), "unknown"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.kind.String())
	}
}

func TestNewInstance(t *testing.T) {
	a := NewInstance("SoftWind")
	b := NewInstance("SoftWind")

	assert.Equal(t, KindInstance, a.Kind)
	assert.Equal(t, "SoftWind", a.Name)
	assert.False(t, a.IsGroup())
	assert.Nil(t, a.Children)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "every item gets its own identity")
}

func TestNewGroup_DropsNestedGroups(t *testing.T) {
	inner := NewGroup("inner")
	child := NewInstance("child")

	g := NewGroup("outer", child, inner)

	require.True(t, g.IsGroup())
	require.Len(t, g.Children, 1)
	assert.Equal(t, child.ID, g.Children[0].ID)
}

func TestWithName_PreservesIdentity(t *testing.T) {
	g := NewGroup("old", NewInstance("a"))

	renamed := g.WithName("new")

	assert.Equal(t, g.ID, renamed.ID)
	assert.Equal(t, "new", renamed.Name)
	assert.Equal(t, "old", g.Name, "receiver is untouched")
	require.Len(t, renamed.Children, 1)

	renamed.Children[0].Name = "mutated"
	assert.Equal(t, "a", g.Children[0].Name, "children are not aliased")
}

func TestWithChildren(t *testing.T) {
	g := NewGroup("g")
	c := NewInstance("c")

	updated := g.WithChildren([]Item{c})
	require.Len(t, updated.Children, 1)
	assert.Equal(t, g.ID, updated.ID)
	assert.Empty(t, g.Children)

	inst := NewInstance("leaf")
	assert.Equal(t, inst, inst.WithChildren([]Item{c}), "instances have no children")
}

func TestIndexOf(t *testing.T) {
	items := []Item{NewInstance("a"), NewInstance("b"), NewInstance("c")}

	assert.Equal(t, 0, IndexOf(items, items[0].ID))
	assert.Equal(t, 2, IndexOf(items, items[2].ID))
	assert.Equal(t, -1, IndexOf(items, uuid.New()))
	assert.Equal(t, -1, IndexOf(nil, items[0].ID))
}

func TestDefaultItems(t *testing.T) {
	items := DefaultItems()

	require.Len(t, items, 4)
	assert.Equal(t, "SoftWind", items[0].Name)
	require.True(t, items[3].IsGroup())
	assert.Equal(t, "reCrafted", items[3].Name)
	require.Len(t, items[3].Children, 2)
	assert.Equal(t, "reCrafted Optima", items[3].Children[0].Name)

	seen := make(map[uuid.UUID]bool)
	for _, item := range items {
		assert.False(t, seen[item.ID])
		seen[item.ID] = true
		for _, child := range item.Children {
			assert.False(t, seen[child.ID])
			seen[child.ID] = true
		}
	}
}

package model

import (
	"github.com/google/uuid"
)

// ItemKind distinguishes the two sidebar item variants
type ItemKind int

const (
	// KindInstance is a launchable configuration (leaf)
	KindInstance ItemKind = iota

	// KindGroup is a named container of instances
	KindGroup
)

// String returns the string representation of ItemKind
func (k ItemKind) String() string {
	switch k {
	case KindInstance:
		return "instance"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Default names for freshly created items
const (
	DefaultInstanceName = "New Instance"
	DefaultGroupName    = "New Group"
)

// Item is a sidebar node. Treat it as an immutable value: use WithName and
// WithChildren to derive modified copies. Children is only populated for
// groups and only ever holds instances.
type Item struct {
	ID       uuid.UUID
	Kind     ItemKind
	Name     string
	Children []Item
}

// NewInstance creates an instance item with a fresh identity
func NewInstance(name string) Item {
	return Item{
		ID:   uuid.New(),
		Kind: KindInstance,
		Name: name,
	}
}

// NewGroup creates a group item with a fresh identity. Group children are
// dropped silently; groups do not nest.
func NewGroup(name string, children ...Item) Item {
	return Item{
		ID:       uuid.New(),
		Kind:     KindGroup,
		Name:     name,
		Children: instancesOnly(children),
	}
}

// IsGroup returns true if the item is a group
func (it Item) IsGroup() bool {
	return it.Kind == KindGroup
}

// WithName returns a copy of the item carrying a new display name
func (it Item) WithName(name string) Item {
	out := it.Clone()
	out.Name = name
	return out
}

// WithChildren returns a copy of a group with the given children. Instances
// are returned unchanged.
func (it Item) WithChildren(children []Item) Item {
	if !it.IsGroup() {
		return it
	}
	out := it
	out.Children = instancesOnly(children)
	return out
}

// Clone returns a deep copy so that callers cannot alias store-owned slices
func (it Item) Clone() Item {
	out := it
	if it.Children != nil {
		out.Children = make([]Item, len(it.Children))
		copy(out.Children, it.Children)
	}
	return out
}

// IndexOf returns the position of id within items, or -1
func IndexOf(items []Item, id uuid.UUID) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// CloneItems deep-copies a slice of items
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

func instancesOnly(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.IsGroup() {
			continue
		}
		out = append(out, item.Clone())
	}
	return out
}

// DefaultItems returns the layout shown on first start
func DefaultItems() []Item {
	return []Item{
		NewInstance("SoftWind"),
		NewInstance("1.12.2 Forge"),
		NewInstance("1.16.5 Fabric"),
		NewGroup("reCrafted",
			NewInstance("reCrafted Optima"),
			NewInstance("reCrafted Industria"),
		),
	}
}

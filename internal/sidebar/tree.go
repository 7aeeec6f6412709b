package sidebar

import (
	"github.com/google/uuid"

	"github.com/ytget/launcher/internal/model"
)

// The helpers below never modify their input slice. Every mutation rebuilds
// the containing sequence so views holding an older slice keep a consistent
// snapshot.

func replaceAt(items []model.Item, i int, item model.Item) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	out[i] = item
	return out
}

func removeAt(items []model.Item, i int) []model.Item {
	out := make([]model.Item, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func insertAt(items []model.Item, i int, item model.Item) []model.Item {
	out := make([]model.Item, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, item)
	return append(out, items[i:]...)
}

// clampIndex maps a drop index onto [0, n]. IndexEnd appends.
func clampIndex(i, n int) int {
	switch {
	case i == IndexEnd:
		return n
	case i < 0:
		return 0
	case i > n:
		return n
	}
	return i
}

// locate searches the top level first, then every group's children.
func locate(items []model.Item, id uuid.UUID) (model.Item, Location, bool) {
	if id == uuid.Nil {
		return model.Item{}, Location{}, false
	}
	if i := model.IndexOf(items, id); i >= 0 {
		return items[i], Location{Index: i}, true
	}
	for _, group := range items {
		if !group.IsGroup() {
			continue
		}
		if j := model.IndexOf(group.Children, id); j >= 0 {
			return group.Children[j], Location{Group: group.ID, Index: j}, true
		}
	}
	return model.Item{}, Location{}, false
}

// groupIndex returns the top-level position of the group with the given id,
// or -1 when it is missing or not a group.
func groupIndex(items []model.Item, id uuid.UUID) int {
	if id == uuid.Nil {
		return -1
	}
	i := model.IndexOf(items, id)
	if i < 0 || !items[i].IsGroup() {
		return -1
	}
	return i
}

// removeItem detaches id from wherever it lives: the top level first, then the
// first group holding it.
func removeItem(items []model.Item, id uuid.UUID) ([]model.Item, bool) {
	if i := model.IndexOf(items, id); i >= 0 {
		return removeAt(items, i), true
	}
	for gi, group := range items {
		if !group.IsGroup() {
			continue
		}
		if j := model.IndexOf(group.Children, id); j >= 0 {
			return replaceAt(items, gi, group.WithChildren(removeAt(group.Children, j))), true
		}
	}
	return items, false
}

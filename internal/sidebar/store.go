package sidebar

import (
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/ytget/launcher/internal/model"
)

// IndexEnd as a drop index means "append to the container"
const IndexEnd = -1

// Location is where an item currently lives. Group is uuid.Nil for the top
// level.
type Location struct {
	Group uuid.UUID
	Index int
}

// TopLevel returns true if the location is in the top-level sequence
func (l Location) TopLevel() bool {
	return l.Group == uuid.Nil
}

// DropTarget is the (group, index) pair a drop would land on right now
type DropTarget struct {
	Group uuid.UUID // uuid.Nil targets the top level
	Index int       // IndexEnd appends
}

// Store holds the sidebar tree and its interaction state
type Store struct {
	items []model.Item

	selected uuid.UUID
	renaming uuid.UUID
	dragging uuid.UUID

	target    DropTarget
	hasTarget bool

	revision uint64
	onUpdate func() // callback for UI updates
}

// NewStore creates a store seeded with the given top-level items
func NewStore(items ...model.Item) *Store {
	return &Store{
		items: model.CloneItems(items),
	}
}

// SetUpdateCallback sets the function called after every state change
func (s *Store) SetUpdateCallback(callback func()) {
	s.onUpdate = callback
}

// Revision changes whenever the tree itself (order, membership, names)
// changes. Selection, rename mode and drag state do not bump it.
func (s *Store) Revision() uint64 {
	return s.revision
}

// Items returns a copy of the top-level sequence
func (s *Store) Items() []model.Item {
	return model.CloneItems(s.items)
}

// Children returns a copy of a group's children, or nil if groupID is not a
// group
func (s *Store) Children(groupID uuid.UUID) []model.Item {
	gi := groupIndex(s.items, groupID)
	if gi < 0 {
		return nil
	}
	return model.CloneItems(s.items[gi].Children)
}

// Find resolves an item by identity
func (s *Store) Find(id uuid.UUID) (model.Item, Location, bool) {
	item, loc, ok := locate(s.items, id)
	if !ok {
		return model.Item{}, Location{}, false
	}
	return item.Clone(), loc, true
}

// Count returns the number of items across the whole tree
func (s *Store) Count() int {
	count := 0
	for _, item := range s.items {
		count += 1 + len(item.Children)
	}
	return count
}

// Selected returns the selected item if it still exists
func (s *Store) Selected() (model.Item, bool) {
	item, _, ok := s.Find(s.selected)
	return item, ok
}

// IsSelected reports whether id is the current selection
func (s *Store) IsSelected(id uuid.UUID) bool {
	return id != uuid.Nil && s.selected == id
}

// RenamingItem returns the item in rename mode, if any
func (s *Store) RenamingItem() (model.Item, bool) {
	item, _, ok := s.Find(s.renaming)
	return item, ok
}

// IsRenaming reports whether id is in rename mode
func (s *Store) IsRenaming(id uuid.UUID) bool {
	return id != uuid.Nil && s.renaming == id
}

// Select makes id the current selection
func (s *Store) Select(id uuid.UUID) bool {
	if _, _, ok := locate(s.items, id); !ok {
		return false
	}
	if s.selected == id {
		return true
	}
	s.selected = id
	s.notifyUpdate()
	return true
}

// ClearSelection drops the current selection
func (s *Store) ClearSelection() {
	if s.selected == uuid.Nil {
		return
	}
	s.selected = uuid.Nil
	s.notifyUpdate()
}

// CreateInstance appends a new instance to the top level, selects it and puts
// it in rename mode
func (s *Store) CreateInstance(name string) model.Item {
	return s.create(model.NewInstance(name))
}

// CreateGroup appends a new empty group to the top level, selects it and puts
// it in rename mode
func (s *Store) CreateGroup(name string) model.Item {
	return s.create(model.NewGroup(name))
}

func (s *Store) create(item model.Item) model.Item {
	s.items = insertAt(s.items, len(s.items), item)
	s.renaming = item.ID
	s.selected = item.ID
	s.revision++

	log.Printf("Created %s %s (%q)", item.Kind, item.ID, item.Name)
	s.notifyUpdate()
	return item.Clone()
}

// BeginRename puts an existing item in rename mode
func (s *Store) BeginRename(id uuid.UUID) bool {
	if _, _, ok := locate(s.items, id); !ok {
		return false
	}
	s.renaming = id
	s.notifyUpdate()
	return true
}

// Rename commits a new display name. Surrounding whitespace is trimmed; a
// name that trims to empty cancels the edit without touching the tree.
func (s *Store) Rename(id uuid.UUID, newName string) bool {
	name := strings.TrimSpace(newName)
	if name == "" {
		s.renaming = uuid.Nil
		s.notifyUpdate()
		return false
	}

	if i := model.IndexOf(s.items, id); i >= 0 {
		s.items = replaceAt(s.items, i, s.items[i].WithName(name))
	} else {
		found := false
		for gi, group := range s.items {
			if !group.IsGroup() {
				continue
			}
			if j := model.IndexOf(group.Children, id); j >= 0 {
				children := replaceAt(group.Children, j, group.Children[j].WithName(name))
				s.items = replaceAt(s.items, gi, group.WithChildren(children))
				found = true
				break
			}
		}
		if !found {
			log.Printf("Rename ignored: item %s not found", id)
			return false
		}
	}

	s.renaming = uuid.Nil
	s.revision++
	s.notifyUpdate()
	return true
}

// Delete removes an item. The top level is searched first; otherwise only the
// hinted group is searched, or every group when groupHint is uuid.Nil.
// Deleting something that is already gone is a no-op.
func (s *Store) Delete(id uuid.UUID, groupHint uuid.UUID) bool {
	var removed model.Item

	if i := model.IndexOf(s.items, id); i >= 0 {
		removed = s.items[i]
		s.items = removeAt(s.items, i)
	} else {
		found := false
		for gi, group := range s.items {
			if !group.IsGroup() || (groupHint != uuid.Nil && group.ID != groupHint) {
				continue
			}
			if j := model.IndexOf(group.Children, id); j >= 0 {
				removed = group.Children[j]
				s.items = replaceAt(s.items, gi, group.WithChildren(removeAt(group.Children, j)))
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	s.forget(removed)
	s.revision++

	log.Printf("Deleted %s %s (%q)", removed.Kind, removed.ID, removed.Name)
	s.notifyUpdate()
	return true
}

// forget clears every reference to a removed item or any of its children
func (s *Store) forget(removed model.Item) {
	gone := map[uuid.UUID]bool{removed.ID: true}
	for _, child := range removed.Children {
		gone[child.ID] = true
	}

	if gone[s.selected] {
		s.selected = uuid.Nil
	}
	if gone[s.renaming] {
		s.renaming = uuid.Nil
	}
	if gone[s.dragging] {
		s.dragging = uuid.Nil
		s.hasTarget = false
	}
	if s.hasTarget && gone[s.target.Group] {
		s.hasTarget = false
	}
}

// notifyUpdate notifies the UI about state changes
func (s *Store) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

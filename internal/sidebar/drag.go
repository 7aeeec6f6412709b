package sidebar

import (
	"log"

	"github.com/google/uuid"

	"github.com/ytget/launcher/internal/model"
)

// DragItem returns the current drag payload, if any
func (s *Store) DragItem() (model.Item, bool) {
	item, _, ok := s.Find(s.dragging)
	return item, ok
}

// DropTarget returns the current drop position, if any
func (s *Store) DropTarget() (DropTarget, bool) {
	return s.target, s.hasTarget
}

// IsDropTarget reports whether the row showing id inside group (uuid.Nil for
// the top level) is the active drop position
func (s *Store) IsDropTarget(id uuid.UUID, group uuid.UUID) bool {
	if !s.hasTarget || s.target.Group != group {
		return false
	}

	container := s.items
	if group != uuid.Nil {
		gi := groupIndex(s.items, group)
		if gi < 0 {
			return false
		}
		container = s.items[gi].Children
	}

	idx := model.IndexOf(container, id)
	return idx >= 0 && idx == s.target.Index
}

// BeginDrag records id as the drag payload. Nothing moves until a drop
// completes, so an abandoned drag leaves the tree as it was.
func (s *Store) BeginDrag(id uuid.UUID) bool {
	if _, _, ok := locate(s.items, id); !ok {
		return false
	}
	s.dragging = id
	s.hasTarget = false
	s.notifyUpdate()
	return true
}

// CancelDrag forgets the payload and any drop position
func (s *Store) CancelDrag() {
	if s.dragging == uuid.Nil && !s.hasTarget {
		return
	}
	s.dragging = uuid.Nil
	s.hasTarget = false
	s.notifyUpdate()
}

// ComputeDropTarget points the drop position at the hovered row. group is the
// hovered row's enclosing group, or uuid.Nil for a top-level row. It returns
// false and keeps the previous target when there is no payload, the payload
// hovers over itself, or hovered cannot be found in the claimed scope.
func (s *Store) ComputeDropTarget(hovered uuid.UUID, group uuid.UUID) bool {
	if s.dragging == uuid.Nil || hovered == s.dragging {
		return false
	}
	payload, _, ok := locate(s.items, s.dragging)
	if !ok {
		return false
	}

	var target DropTarget
	if group != uuid.Nil {
		// groups do not nest
		if payload.IsGroup() {
			return false
		}
		gi := groupIndex(s.items, group)
		if gi < 0 {
			return false
		}
		idx := model.IndexOf(s.items[gi].Children, hovered)
		if idx < 0 {
			return false
		}
		target = DropTarget{Group: group, Index: idx}
	} else {
		idx := model.IndexOf(s.items, hovered)
		if idx < 0 {
			return false
		}
		target = DropTarget{Group: uuid.Nil, Index: idx}
	}

	if s.hasTarget && s.target == target {
		return true
	}
	s.target = target
	s.hasTarget = true
	s.notifyUpdate()
	return true
}

// DropExited clears the drop position. The payload survives so the drag can
// re-enter another row.
func (s *Store) DropExited() {
	if !s.hasTarget {
		return
	}
	s.hasTarget = false
	s.notifyUpdate()
}

// PerformDrop moves the payload to the drop position: remove it from where
// it is, then insert it at the target index clamped against the container
// length measured after the removal. Returns false without mutating anything
// when there is no payload or no target, or the target is unusable.
func (s *Store) PerformDrop() bool {
	if s.dragging == uuid.Nil || !s.hasTarget {
		log.Printf("Drop rejected: payload=%v target=%v", s.dragging != uuid.Nil, s.hasTarget)
		return false
	}

	payload, _, ok := locate(s.items, s.dragging)
	if !ok {
		log.Printf("Drop rejected: payload %s no longer exists", s.dragging)
		return false
	}

	target := s.target
	if payload.ID == target.Group {
		return false
	}
	if target.Group != uuid.Nil {
		if payload.IsGroup() {
			log.Printf("Drop rejected: group %s cannot be nested", payload.ID)
			return false
		}
		if groupIndex(s.items, target.Group) < 0 {
			log.Printf("Drop rejected: target group %s no longer exists", target.Group)
			return false
		}
	}

	items, _ := removeItem(s.items, payload.ID)

	if target.Group != uuid.Nil {
		gi := groupIndex(items, target.Group)
		group := items[gi]
		idx := clampIndex(target.Index, len(group.Children))
		items = replaceAt(items, gi, group.WithChildren(insertAt(group.Children, idx, payload)))
	} else {
		idx := clampIndex(target.Index, len(items))
		items = insertAt(items, idx, payload)
	}

	s.items = items
	s.dragging = uuid.Nil
	s.hasTarget = false
	s.revision++

	log.Printf("Dropped %s into group=%s index=%d", payload.ID, target.Group, target.Index)
	s.notifyUpdate()
	return true
}

// DropOntoEmptyGroup appends the payload to the end of a group's children.
// It serves groups that have no rows to hover over and ignores any
// index-based drop target.
func (s *Store) DropOntoEmptyGroup(groupID uuid.UUID) bool {
	if s.dragging == uuid.Nil {
		return false
	}
	payload, _, ok := locate(s.items, s.dragging)
	if !ok {
		return false
	}
	if payload.IsGroup() || groupIndex(s.items, groupID) < 0 {
		return false
	}

	items, _ := removeItem(s.items, payload.ID)
	gi := groupIndex(items, groupID)
	group := items[gi]
	items = replaceAt(items, gi, group.WithChildren(insertAt(group.Children, len(group.Children), payload)))

	s.items = items
	s.dragging = uuid.Nil
	s.revision++

	log.Printf("Dropped %s at the end of group %s", payload.ID, groupID)
	s.notifyUpdate()
	return true
}

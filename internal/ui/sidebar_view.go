package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/launcher/internal/sidebar"
)

// SidebarView renders the store's tree as rows and turns pointer events into
// store operations
type SidebarView struct {
	window       fyne.Window
	store        *sidebar.Store
	localization *Localization

	// UI components
	container   *fyne.Container
	searchEntry *widget.Entry
	rowBox      *fyne.Container
	rows        []*SidebarRow

	// rebuild bookkeeping
	built    bool
	revision uint64
	query    string

	// drag bookkeeping
	dragging bool
	hovered  *SidebarRow
}

// NewSidebarView creates the sidebar bound to a store
func NewSidebarView(window fyne.Window, store *sidebar.Store, localization *Localization) *SidebarView {
	v := &SidebarView{
		window:       window,
		store:        store,
		localization: localization,
	}

	v.createUI()
	return v
}

// createUI creates the user interface for the sidebar
func (v *SidebarView) createUI() {
	v.searchEntry = widget.NewEntry()
	v.searchEntry.SetPlaceHolder(v.localization.GetText(KeySearch))
	v.searchEntry.OnChanged = v.onSearchChanged

	v.rowBox = container.NewVBox()

	v.container = container.NewBorder(
		v.searchEntry,                  // top
		nil,                            // bottom
		nil,                            // left
		nil,                            // right
		container.NewVScroll(v.rowBox), // center
	)
}

// Container returns the main container of the sidebar
func (v *SidebarView) Container() *fyne.Container {
	return v.container
}

// Refresh re-reads the store. Rows are rebuilt only when the tree or the
// search query changed; otherwise only selection, rename and drop state are
// updated so a drag in progress keeps its rows.
func (v *SidebarView) Refresh() {
	if !v.built || v.revision != v.store.Revision() {
		v.rebuild()
	}

	for _, row := range v.rows {
		row.refreshState()
	}
}

// refreshTexts updates localized strings
func (v *SidebarView) refreshTexts() {
	v.searchEntry.SetPlaceHolder(v.localization.GetText(KeySearch))
	v.built = false
	v.Refresh()
}

// rebuild recreates all rows from the store
func (v *SidebarView) rebuild() {
	v.rows = v.rows[:0]

	if v.query != "" {
		for _, match := range v.store.Search(v.query) {
			v.rows = append(v.rows, newSidebarRow(v, match.Item, match.Group))
		}
	} else {
		for _, item := range v.store.Items() {
			v.rows = append(v.rows, newSidebarRow(v, item, uuid.Nil))
			if !item.IsGroup() {
				continue
			}
			if len(item.Children) == 0 {
				v.rows = append(v.rows, newPlaceholderRow(v, item.ID))
				continue
			}
			for _, child := range item.Children {
				v.rows = append(v.rows, newSidebarRow(v, child, item.ID))
			}
		}
	}

	objects := make([]fyne.CanvasObject, len(v.rows))
	for i, row := range v.rows {
		objects[i] = row
	}
	v.rowBox.Objects = objects
	v.rowBox.Refresh()

	v.built = true
	v.revision = v.store.Revision()
}

// onSearchChanged switches between the tree and a flat list of matches
func (v *SidebarView) onSearchChanged(query string) {
	v.query = query
	v.built = false
	v.Refresh()
}

// commitRename applies the text typed into a row's rename entry
func (v *SidebarView) commitRename(id uuid.UUID, text string) {
	if !v.store.Rename(id, text) {
		log.Printf("Rename of %s cancelled", id)
	}
}

// focus moves keyboard focus to an object on this window
func (v *SidebarView) focus(obj fyne.Focusable) {
	if v.window == nil {
		return
	}
	v.window.Canvas().Focus(obj)
}

// showContextMenu pops up Rename/Delete for a row
func (v *SidebarView) showContextMenu(row *SidebarRow, pos fyne.Position) {
	id, group := row.item.ID, row.group
	menu := fyne.NewMenu("",
		fyne.NewMenuItem(v.localization.GetText(KeyRename), func() {
			v.store.BeginRename(id)
		}),
		fyne.NewMenuItem(v.localization.GetText(KeyDelete), func() {
			v.store.Delete(id, group)
		}),
	)
	widget.ShowPopUpMenuAtPosition(menu, v.window.Canvas(), pos)
}

// onRowDragged starts a drag on the first movement and tracks the row under
// the pointer afterwards
func (v *SidebarView) onRowDragged(source *SidebarRow, e *fyne.DragEvent) {
	if !v.dragging {
		if !v.beginDrag(source) {
			return
		}
	}
	v.dragOver(v.rowAt(e.AbsolutePosition))
}

// onRowDragEnd drops the payload onto whatever row was last hovered
func (v *SidebarView) onRowDragEnd(_ *SidebarRow) {
	v.endDrag()
}

// beginDrag records the payload. Placeholders and search results cannot be
// dragged.
func (v *SidebarView) beginDrag(source *SidebarRow) bool {
	if source.placeholder || v.query != "" || source.isEditing() {
		return false
	}
	if !v.store.BeginDrag(source.item.ID) {
		return false
	}
	v.dragging = true
	v.hovered = nil
	return true
}

// dragOver updates the drop position for the row under the pointer, nil when
// the pointer is outside every row
func (v *SidebarView) dragOver(target *SidebarRow) {
	if !v.dragging {
		return
	}
	v.hovered = target

	if target == nil || target.placeholder {
		v.store.DropExited()
		return
	}
	v.store.ComputeDropTarget(target.item.ID, target.group)
}

// endDrag finishes the drag: an empty-group placeholder takes the payload
// directly, any other row uses the computed drop position
func (v *SidebarView) endDrag() {
	if !v.dragging {
		return
	}
	target := v.hovered
	v.dragging = false
	v.hovered = nil

	dropped := false
	switch {
	case target == nil:
	case target.placeholder:
		dropped = v.store.DropOntoEmptyGroup(target.group)
	default:
		dropped = v.store.PerformDrop()
	}

	if !dropped {
		log.Printf("Drag cancelled")
		v.store.CancelDrag()
	}
}

// rowAt returns the row under an absolute canvas position
func (v *SidebarView) rowAt(pos fyne.Position) *SidebarRow {
	driver := fyne.CurrentApp().Driver()
	for _, row := range v.rows {
		if !row.Visible() {
			continue
		}
		origin := driver.AbsolutePositionForObject(row)
		size := row.Size()
		if pos.X >= origin.X && pos.X < origin.X+size.Width &&
			pos.Y >= origin.Y && pos.Y < origin.Y+size.Height {
			return row
		}
	}
	return nil
}

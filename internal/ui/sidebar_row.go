package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/launcher/internal/model"
)

// SidebarRow renders one sidebar item, or the "Drop here" placeholder of an
// empty group. It forwards taps and drags to its SidebarView.
type SidebarRow struct {
	widget.BaseWidget

	view  *SidebarView
	item  model.Item
	group uuid.UUID // enclosing group, uuid.Nil at the top level

	// placeholder rows stand in for an empty group; group is that group
	placeholder bool
	editing     bool

	// UI components
	dot        *canvas.Circle
	line       *canvas.Rectangle
	background *canvas.Rectangle
	label      *widget.Label
	entry      *widget.Entry
	content    fyne.CanvasObject
}

// newSidebarRow creates a row for an item
func newSidebarRow(view *SidebarView, item model.Item, group uuid.UUID) *SidebarRow {
	r := &SidebarRow{
		view:  view,
		item:  item,
		group: group,
	}
	r.ExtendBaseWidget(r)
	r.createUI()
	return r
}

// newPlaceholderRow creates the drop target shown inside an empty group
func newPlaceholderRow(view *SidebarView, group uuid.UUID) *SidebarRow {
	r := &SidebarRow{
		view:        view,
		group:       group,
		placeholder: true,
	}
	r.ExtendBaseWidget(r)
	r.createUI()
	return r
}

// createUI creates the UI components
func (r *SidebarRow) createUI() {
	r.dot = canvas.NewCircle(color.Transparent)
	r.line = canvas.NewRectangle(color.Transparent)
	r.line.SetMinSize(fyne.NewSize(0, IndicatorThickness))

	pad := canvas.NewRectangle(color.Transparent)
	pad.SetMinSize(fyne.NewSize(IndicatorPadding, IndicatorDotSize))
	indicator := container.NewBorder(nil, nil,
		container.NewHBox(pad, container.NewGridWrap(fyne.NewSize(IndicatorDotSize, IndicatorDotSize), r.dot)),
		nil,
		container.NewVBox(layout.NewSpacer(), r.line, layout.NewSpacer()),
	)

	indent := canvas.NewRectangle(color.Transparent)

	r.background = canvas.NewRectangle(color.Transparent)
	r.background.CornerRadius = theme.SelectionRadiusSize()

	r.label = widget.NewLabel("")
	r.label.Truncation = fyne.TextTruncateEllipsis

	r.entry = widget.NewEntry()
	r.entry.OnSubmitted = func(text string) {
		r.view.commitRename(r.item.ID, text)
	}
	r.entry.Hide()

	switch {
	case r.placeholder:
		r.label.SetText(r.view.localization.GetText(KeyDropHere))
		r.label.TextStyle = fyne.TextStyle{Italic: true}
		r.label.Importance = widget.LowImportance
		indent.SetMinSize(fyne.NewSize(ChildIndent, 0))
	case r.item.IsGroup():
		r.label.SetText(IconGroup + " " + r.item.Name)
		r.label.TextStyle = fyne.TextStyle{Bold: true}
	default:
		r.label.SetText(IconInstance + " " + r.item.Name)
		if r.group != uuid.Nil {
			indent.SetMinSize(fyne.NewSize(ChildIndent, 0))
		}
	}

	body := container.NewStack(
		r.background,
		container.NewBorder(nil, nil, indent, nil, container.NewStack(r.label, r.entry)),
	)
	r.content = container.NewVBox(indicator, body)
}

// CreateRenderer implements fyne.Widget
func (r *SidebarRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}

// ItemID returns the identity of the item shown, uuid.Nil for placeholders
func (r *SidebarRow) ItemID() uuid.UUID {
	return r.item.ID
}

// refreshState re-reads selection, rename mode and drop position from the
// store
func (r *SidebarRow) refreshState() {
	store := r.view.store

	var accent color.Color = color.Transparent
	if !r.placeholder && store.IsDropTarget(r.item.ID, r.group) {
		accent = theme.Color(ColorNameDropIndicator)
	}
	r.dot.FillColor = accent
	r.line.FillColor = accent

	r.background.FillColor = color.Transparent
	if !r.placeholder && store.IsSelected(r.item.ID) {
		r.background.FillColor = theme.Color(theme.ColorNameSelection)
	}

	if !r.placeholder && store.IsRenaming(r.item.ID) {
		if !r.editing {
			r.editing = true
			r.entry.SetText(r.item.Name)
			r.label.Hide()
			r.entry.Show()
			r.view.focus(r.entry)
		}
	} else if r.editing {
		r.editing = false
		r.entry.Hide()
		r.label.Show()
	}

	r.dot.Refresh()
	r.line.Refresh()
	r.background.Refresh()
}

// isEditing reports whether the rename entry is showing
func (r *SidebarRow) isEditing() bool {
	return r.editing
}

// Tapped selects the item
func (r *SidebarRow) Tapped(_ *fyne.PointEvent) {
	if r.placeholder {
		return
	}
	r.view.store.Select(r.item.ID)
}

// DoubleTapped starts an inline rename
func (r *SidebarRow) DoubleTapped(_ *fyne.PointEvent) {
	if r.placeholder {
		return
	}
	r.view.store.BeginRename(r.item.ID)
}

// TappedSecondary shows the Rename/Delete context menu
func (r *SidebarRow) TappedSecondary(e *fyne.PointEvent) {
	if r.placeholder {
		return
	}
	r.view.showContextMenu(r, e.AbsolutePosition)
}

// Dragged forwards pointer movement while this row is being dragged
func (r *SidebarRow) Dragged(e *fyne.DragEvent) {
	r.view.onRowDragged(r, e)
}

// DragEnd forwards the end of a drag started on this row
func (r *SidebarRow) DragEnd() {
	r.view.onRowDragEnd(r)
}

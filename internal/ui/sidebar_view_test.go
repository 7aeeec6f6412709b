package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/google/uuid"

	"github.com/ytget/launcher/internal/model"
	"github.com/ytget/launcher/internal/sidebar"
)

func newTestSidebar(t *testing.T, items ...model.Item) (*SidebarView, *sidebar.Store) {
	t.Helper()
	test.NewApp()

	store := sidebar.NewStore(items...)
	w := test.NewWindow(nil)
	v := NewSidebarView(w, store, NewLocalization())
	w.SetContent(v.Container())
	w.Resize(fyne.NewSize(300, 400))
	t.Cleanup(w.Close)

	store.SetUpdateCallback(v.Refresh)
	v.Refresh()
	return v, store
}

func rowNames(v *SidebarView) []string {
	var names []string
	for _, row := range v.rows {
		if row.placeholder {
			names = append(names, "<drop>")
			continue
		}
		names = append(names, row.item.Name)
	}
	return names
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSidebarViewRows(t *testing.T) {
	a := model.NewInstance("A")
	g := model.NewGroup("G", model.NewInstance("C"))
	empty := model.NewGroup("E")
	v, _ := newTestSidebar(t, a, g, empty)

	expected := []string{"A", "G", "C", "E", "<drop>"}
	if got := rowNames(v); !equalNames(got, expected) {
		t.Fatalf("Expected rows %v, got %v", expected, got)
	}

	if v.rows[2].group != g.ID {
		t.Error("Child row should carry its group")
	}
	if v.rows[4].group != empty.ID {
		t.Error("Placeholder should carry the empty group")
	}
}

func TestSidebarViewDragOntoRow(t *testing.T) {
	a := model.NewInstance("A")
	b := model.NewInstance("B")
	v, store := newTestSidebar(t, a, b)

	source, target := v.rows[0], v.rows[1]
	if !v.beginDrag(source) {
		t.Fatal("Expected drag to start")
	}
	v.dragOver(target)

	if !store.IsDropTarget(b.ID, uuid.Nil) {
		t.Error("Hovered row should be the drop target")
	}
	if v.rows[1] != target {
		t.Error("Rows should not be rebuilt while hovering")
	}

	v.endDrag()

	if got := rowNames(v); !equalNames(got, []string{"B", "A"}) {
		t.Errorf("Expected [B A], got %v", got)
	}
	if _, dragging := store.DragItem(); dragging {
		t.Error("Drag state should be cleared after drop")
	}
}

func TestSidebarViewDragOntoPlaceholder(t *testing.T) {
	a := model.NewInstance("A")
	empty := model.NewGroup("E")
	v, store := newTestSidebar(t, a, empty)

	if !v.beginDrag(v.rows[0]) {
		t.Fatal("Expected drag to start")
	}
	v.dragOver(v.rows[2])
	v.endDrag()

	children := store.Children(empty.ID)
	if len(children) != 1 || children[0].ID != a.ID {
		t.Fatalf("Expected A inside E, got %v", children)
	}
	if got := rowNames(v); !equalNames(got, []string{"E", "A"}) {
		t.Errorf("Expected [E A], got %v", got)
	}
}

func TestSidebarViewDragReleasedOutside(t *testing.T) {
	a := model.NewInstance("A")
	b := model.NewInstance("B")
	v, store := newTestSidebar(t, a, b)

	v.beginDrag(v.rows[0])
	v.dragOver(v.rows[1])
	v.dragOver(nil)
	v.endDrag()

	if got := rowNames(v); !equalNames(got, []string{"A", "B"}) {
		t.Errorf("Tree should be unchanged, got %v", got)
	}
	if _, dragging := store.DragItem(); dragging {
		t.Error("Payload should be cleared after a cancelled drag")
	}
}

func TestSidebarViewPlaceholderIsNotDraggable(t *testing.T) {
	v, store := newTestSidebar(t, model.NewGroup("E"))

	if v.beginDrag(v.rows[1]) {
		t.Error("Placeholder should not start a drag")
	}
	if _, dragging := store.DragItem(); dragging {
		t.Error("No payload expected")
	}
}

func TestSidebarViewDraggedEvents(t *testing.T) {
	a := model.NewInstance("A")
	b := model.NewInstance("B")
	v, store := newTestSidebar(t, a, b)

	source, target := v.rows[0], v.rows[1]
	driver := fyne.CurrentApp().Driver()
	pos := driver.AbsolutePositionForObject(target).Add(fyne.NewPos(target.Size().Width/2, target.Size().Height/2))

	if v.rowAt(pos) != target {
		t.Fatal("Expected pointer to resolve to the second row")
	}

	source.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{AbsolutePosition: pos}})
	if !store.IsDropTarget(b.ID, uuid.Nil) {
		t.Error("Expected B to be the drop target")
	}
	source.DragEnd()

	items := store.Items()
	if items[0].ID != b.ID || items[1].ID != a.ID {
		t.Errorf("Expected [B A], got %v", rowNames(v))
	}
}

func TestSidebarViewCreateStartsRename(t *testing.T) {
	v, store := newTestSidebar(t, model.NewInstance("A"))

	created := store.CreateInstance(model.DefaultInstanceName)

	row := v.rows[len(v.rows)-1]
	if row.item.ID != created.ID {
		t.Fatal("New row should be last")
	}
	if !row.isEditing() || !row.entry.Visible() || row.label.Visible() {
		t.Fatal("New row should show the rename entry")
	}
	if row.entry.Text != model.DefaultInstanceName {
		t.Errorf("Expected entry text %s, got %s", model.DefaultInstanceName, row.entry.Text)
	}

	row.entry.SetText("  Vanilla  ")
	row.entry.OnSubmitted(row.entry.Text)

	item, _, ok := store.Find(created.ID)
	if !ok || item.Name != "Vanilla" {
		t.Errorf("Expected renamed item 'Vanilla', got %+v", item)
	}
	if _, renaming := store.RenamingItem(); renaming {
		t.Error("Rename mode should end after commit")
	}
	if v.rows[len(v.rows)-1].isEditing() {
		t.Error("Row should leave edit mode")
	}
}

func TestSidebarViewEmptyRenameKeepsName(t *testing.T) {
	v, store := newTestSidebar(t)

	created := store.CreateGroup(model.DefaultGroupName)
	row := v.rows[0]
	row.entry.OnSubmitted("   ")

	item, _, _ := store.Find(created.ID)
	if item.Name != model.DefaultGroupName {
		t.Errorf("Expected name %s to be kept, got %s", model.DefaultGroupName, item.Name)
	}
	if v.rows[0].isEditing() {
		t.Error("Row should leave edit mode")
	}
}

func TestSidebarViewSearch(t *testing.T) {
	g := model.NewGroup("Modpacks", model.NewInstance("reCrafted Optima"))
	v, _ := newTestSidebar(t, model.NewInstance("SoftWind"), g)

	test.Type(v.searchEntry, "optima")

	if got := rowNames(v); !equalNames(got, []string{"reCrafted Optima"}) {
		t.Fatalf("Expected filtered rows, got %v", got)
	}
	if v.beginDrag(v.rows[0]) {
		t.Error("Search results should not be draggable")
	}

	v.searchEntry.SetText("")
	v.onSearchChanged("")
	if len(v.rows) != 3 {
		t.Errorf("Expected full tree after clearing search, got %v", rowNames(v))
	}
}

func TestSidebarViewSelectionAndDelete(t *testing.T) {
	a := model.NewInstance("A")
	g := model.NewGroup("G", model.NewInstance("C"))
	v, store := newTestSidebar(t, a, g)

	v.rows[2].Tapped(&fyne.PointEvent{})
	if !store.IsSelected(v.rows[2].item.ID) {
		t.Fatal("Tapped row should be selected")
	}

	store.Delete(v.rows[2].item.ID, g.ID)
	if _, ok := store.Selected(); ok {
		t.Error("Deleting the selected item should clear the selection")
	}
	if got := rowNames(v); !equalNames(got, []string{"A", "G", "<drop>"}) {
		t.Errorf("Expected emptied group to show a placeholder, got %v", got)
	}
}

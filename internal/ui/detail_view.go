package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/launcher/internal/config"
	"github.com/ytget/launcher/internal/platform"
	"github.com/ytget/launcher/internal/sidebar"
)

// DetailView shows the current selection
type DetailView struct {
	window       fyne.Window
	store        *sidebar.Store
	settings     *config.Settings
	localization *Localization

	// UI components
	container     *fyne.Container
	titleLabel    *widget.Label
	openFolderBtn *widget.Button
}

// NewDetailView creates the detail pane
func NewDetailView(window fyne.Window, store *sidebar.Store, settings *config.Settings, localization *Localization) *DetailView {
	d := &DetailView{
		window:       window,
		store:        store,
		settings:     settings,
		localization: localization,
	}

	d.createUI()
	d.Refresh()
	return d
}

// createUI creates the user interface for the detail pane
func (d *DetailView) createUI() {
	d.titleLabel = widget.NewLabel("")
	d.titleLabel.Alignment = fyne.TextAlignCenter
	d.titleLabel.SizeName = theme.SizeNameSubHeadingText

	d.openFolderBtn = widget.NewButton(IconFolder+" "+d.localization.GetText(KeyOpenFolder), d.onOpenFolder)
	d.openFolderBtn.Importance = widget.MediumImportance
	d.openFolderBtn.Hide()

	d.container = container.NewCenter(container.NewVBox(d.titleLabel, container.NewCenter(d.openFolderBtn)))
}

// Container returns the main container of the detail pane
func (d *DetailView) Container() *fyne.Container {
	return d.container
}

// Refresh re-reads the selection from the store
func (d *DetailView) Refresh() {
	selected, ok := d.store.Selected()
	if !ok {
		d.titleLabel.SetText(d.localization.GetText(KeyNothingSelected))
		d.titleLabel.Importance = widget.LowImportance
		d.openFolderBtn.Hide()
		d.titleLabel.Refresh()
		return
	}

	d.titleLabel.SetText(fmt.Sprintf(d.localization.GetText(KeySelected), selected.Name))
	d.titleLabel.Importance = widget.MediumImportance
	d.titleLabel.Refresh()

	d.openFolderBtn.SetText(IconFolder + " " + d.localization.GetText(KeyOpenFolder))
	if selected.IsGroup() {
		d.openFolderBtn.Hide()
	} else {
		d.openFolderBtn.Show()
	}
}

// selectedFolder returns the folder of the selected instance
func (d *DetailView) selectedFolder() (string, bool) {
	selected, ok := d.store.Selected()
	if !ok || selected.IsGroup() {
		return "", false
	}
	return platform.InstanceDirectory(d.settings.GetInstancesDirectory(), selected.ID), true
}

// onOpenFolder creates the instance folder if needed and reveals it
func (d *DetailView) onOpenFolder() {
	dir, ok := d.selectedFolder()
	if !ok {
		return
	}

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		log.Printf("Error creating instance folder %s: %v", dir, err)
		dialog.ShowError(fmt.Errorf("%s: %w", d.localization.GetText(KeyErrorOpenFolder), err), d.window)
		return
	}

	if err := platform.OpenDirectoryInManager(dir); err != nil {
		log.Printf("Error opening instance folder %s: %v", dir, err)
		dialog.ShowError(fmt.Errorf("%s: %w", d.localization.GetText(KeyErrorOpenFolder), err), d.window)
		return
	}

	log.Printf("Instance folder opened: %s", dir)
}

package ui

import (
	"image/color"
	"log"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/launcher/internal/config"
	"github.com/ytget/launcher/internal/sidebar"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	store        *sidebar.Store
	settings     *config.Settings
	localization *Localization

	sidebarView *SidebarView
	detailView  *DetailView
	addBtn      *widget.Button
	split       *container.Split
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, store *sidebar.Store) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		store:        store,
		settings:     settings,
		localization: localization,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Store callbacks run on the UI goroutine, so views refresh directly
	store.SetUpdateCallback(ui.onStoreUpdate)
	ui.onStoreUpdate()

	log.Printf("RootUI initialized with %d items", store.Count())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.sidebarView = NewSidebarView(ui.window, ui.store, ui.localization)
	ui.detailView = NewDetailView(ui.window, ui.store, ui.settings, ui.localization)

	// "+" opens the create menu under the button
	ui.addBtn = widget.NewButtonWithIcon("", theme.ContentAddIcon(), nil)
	ui.addBtn.Importance = widget.LowImportance
	ui.addBtn.OnTapped = ui.onShowCreateMenu

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// keeps the sidebar from collapsing when the split is dragged
	minWidth := canvas.NewRectangle(color.Transparent)
	minWidth.SetMinSize(fyne.NewSize(SidebarMinWidth, 0))

	header := container.NewStack(minWidth, container.NewBorder(nil, nil, settingsBtn, ui.addBtn))

	sidebarPane := container.NewBorder(
		header,                     // top
		nil,                        // bottom
		nil,                        // left
		nil,                        // right
		ui.sidebarView.Container(), // center
	)

	ui.split = container.NewHSplit(sidebarPane, ui.detailView.Container())
	ui.split.SetOffset(ui.settings.GetSidebarOffset())

	ui.window.SetContent(ui.split)
	ui.window.SetOnClosed(ui.saveLayout)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Sidebar menu mirrors the "+" button
	sidebarMenu := fyne.NewMenu(ui.localization.GetText(KeySidebar), ui.createMenuItems()...)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		sidebarMenu,
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// createMenuItems returns the "Create Instance" and "Create Group" actions
func (ui *RootUI) createMenuItems() []*fyne.MenuItem {
	return []*fyne.MenuItem{
		fyne.NewMenuItem(ui.localization.GetText(KeyCreateInstance), ui.onCreateInstance),
		fyne.NewMenuItem(ui.localization.GetText(KeyCreateGroup), ui.onCreateGroup),
	}
}

// onShowCreateMenu pops the create menu up below the "+" button
func (ui *RootUI) onShowCreateMenu() {
	menu := fyne.NewMenu("", ui.createMenuItems()...)
	widget.ShowPopUpMenuAtRelativePosition(menu, ui.window.Canvas(), fyne.NewPos(0, ui.addBtn.Size().Height), ui.addBtn)
}

// onCreateInstance appends a new instance in rename mode
func (ui *RootUI) onCreateInstance() {
	ui.store.CreateInstance(ui.localization.GetText(KeyNewInstance))
}

// onCreateGroup appends a new empty group in rename mode
func (ui *RootUI) onCreateGroup() {
	ui.store.CreateGroup(ui.localization.GetText(KeyNewGroup))
}

// onStoreUpdate refreshes every view bound to the store
func (ui *RootUI) onStoreUpdate() {
	ui.sidebarView.Refresh()
	ui.detailView.Refresh()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.sidebarView.refreshTexts()
	ui.detailView.Refresh()
}

// saveLayout persists the sidebar width
func (ui *RootUI) saveLayout() {
	ui.settings.SetSidebarOffset(ui.split.Offset)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

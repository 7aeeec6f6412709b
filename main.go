package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/launcher/internal/config"
	"github.com/ytget/launcher/internal/model"
	"github.com/ytget/launcher/internal/platform"
	"github.com/ytget/launcher/internal/sidebar"
	"github.com/ytget/launcher/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.launcher"

	WindowWidth  = 900
	WindowHeight = 600
)

func main() {
	log.Printf("Launcher v%s starting...", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewLauncherTheme())

	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow("Launcher")
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Ensure the instances root exists before anything reveals it
	settings := config.NewSettings(myApp)
	instancesDir := settings.GetInstancesDirectory()
	if err := platform.CreateDirectoryIfNotExists(instancesDir); err != nil {
		log.Printf("failed to ensure instances dir: %v", err)
	}

	store := sidebar.NewStore(model.DefaultItems()...)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, store)

	// Show and run
	myWindow.ShowAndRun()
}

package ui

// Package ui contains the Fyne-based desktop shell of the launcher: the
// sidebar of instances and groups with inline rename and drag-and-drop, the
// detail pane, settings, and localization. Views hold no tree state of their
// own; they re-read the sidebar store after every update.

package sidebar

// Package sidebar owns the launcher's sidebar tree: an ordered forest of
// instances and single-level groups, the current selection, the item in
// rename mode, and the transient drag/drop state. Views read from the Store
// and call its operations in response to user events; every change is
// announced through the update callback so views can re-fetch.
//
// The Store is not safe for concurrent use. Fyne delivers input events on
// the main goroutine, which is the only caller.

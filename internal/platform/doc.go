package platform

// Package platform contains OS/platform integration: instance directory
// layout, directory creation, and revealing folders in the system file
// manager.

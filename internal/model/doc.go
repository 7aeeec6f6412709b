package model

// Package model defines the sidebar's domain values: instances and groups of
// instances. Items are plain values keyed by a stable UUID so that the UI can
// re-resolve them after every mutation instead of holding on to positions.

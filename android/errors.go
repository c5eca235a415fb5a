package android

import "errors"

var (
	// ErrNotFound is returned by Validate when the manifest or a
	// resource directory is missing or of the wrong kind.
	ErrNotFound = errors.New("not found")
	// ErrResolution is returned when a generated class cannot be located.
	ErrResolution = errors.New("class resolution failed")
	// ErrLibraryCycle is returned when library references loop back
	// onto a project that is already being resolved.
	ErrLibraryCycle = errors.New("library reference cycle")
	// ErrLibraryDepth is returned when library references nest deeper
	// than MaxLibraryDepth.
	ErrLibraryDepth = errors.New("library reference depth exceeded")
)

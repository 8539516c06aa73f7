package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrContentNotFound is returned when the content directory below the
	// media root does not exist or is not a directory.
	ErrContentNotFound = errors.New("content directory does not exist")

	// ErrOutputNotFound is returned when the output directory does not
	// exist.
	ErrOutputNotFound = errors.New("the output directory does not exist")

	// ErrOutputNotDir is returned when the output path exists but is not a
	// directory.
	ErrOutputNotDir = errors.New("the output path is not a directory")

	// ErrOutputNotEmpty is returned when the output directory contains
	// anything besides ignorable files such as .DS_Store.
	ErrOutputNotEmpty = errors.New("the output directory is not empty")

	// ErrGroupExists is returned when a group directory is already present.
	ErrGroupExists = errors.New("group directory already exists")

	// ErrFileExists is returned when a transfer target is already present.
	ErrFileExists = errors.New("target file already exists")

	// ErrShortCopy is returned when fewer bytes were written than the source
	// file holds.
	ErrShortCopy = errors.New("copied size does not match source size")
)

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRoot = errors.New("invalid root")
	ErrNoMedia     = errors.New("there are no compatible media files in the content directory")

	ErrPromptMismatch = errors.New("prompter returned a different number of answers than asked")
)

// InvalidRootError is returned when the content directory below the root is
// missing.
type InvalidRootError struct {
	Root        string
	ContentPath string
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("%q is not a valid root (%q does not exist)", e.Root, e.ContentPath)
}

func (e *InvalidRootError) Unwrap() error { return ErrInvalidRoot }

package tui

import "errors"

// ErrUserQuit is returned when the user aborts a prompt with esc or ctrl+c.
var ErrUserQuit = errors.New("user quit")

package config

import (
	"errors"
	"strings"
)

// ErrUsage marks errors caused by invalid command-line usage. The caller is
// expected to print the usage banner and exit with status 2.
var ErrUsage = errors.New("usage error")

// Informational requests returned by [ParseFlags]. They are not failures.
var (
	// ErrHelpRequested is returned when -h/--help is present.
	ErrHelpRequested = errors.New("help requested")
	// ErrVersionRequested is returned when -V/--version is present.
	ErrVersionRequested = errors.New("version requested")
)

// Validation errors returned by [DumpConfig] validation.
var (
	// ErrMissingOutput indicates that no output directory was configured.
	ErrMissingOutput = errors.New("the following required argument was not provided: --out <OUT>")
	// ErrInvalidPattern indicates a media pattern that does not compile or
	// has no capture group for the file number.
	ErrInvalidPattern = errors.New("invalid media pattern")
	// ErrInvalidWorkerConfigs indicates an out of range --jobs value.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

// UsageMessage returns the user facing part of a usage error: the text after
// the last "usage error: " marker, or the whole message when there is none.
func UsageMessage(err error) string {
	msg := err.Error()
	marker := ErrUsage.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

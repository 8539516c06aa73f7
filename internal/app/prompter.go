package app

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/MKhiriev/dumpman/internal/logger"
	"github.com/MKhiriev/dumpman/internal/service"
	"github.com/MKhiriev/dumpman/internal/tui"
	"github.com/MKhiriev/dumpman/models"
)

// NewPrompter returns the terminal UI when both in and out are terminals and
// plain is false. Otherwise answers are read line by line from in.
func NewPrompter(plain bool, in, out *os.File, buildInfo models.AppBuildInfo, logger *logger.Logger) service.Prompter {
	if plain || !IsTerminal(in) || !IsTerminal(out) {
		logger.Debug().Bool("plain", plain).Msg("using line prompts")
		return tui.NewPlainPrompter(in, out)
	}

	return tui.New(buildInfo, logger)
}

// IsTerminal reports whether f is attached to a terminal, including Cygwin
// and MSYS pseudo terminals.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/dumpman/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoOperations     = errors.New("No operations defined! Exiting.")
	ErrInvalidRange     = errors.New("invalid range")
	ErrInvalidName      = errors.New("invalid group name")
	ErrOverlappingRange = errors.New("overlapping range")
)

// RangeError reports an op whose end does not lie after its start.
type RangeError struct {
	Op models.MapOp
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: end must be greater than start", e.Op)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// NameError reports an op whose group name cannot be used as a directory.
type NameError struct {
	Op     models.MapOp
	Reason string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("group name %q %s", e.Op.Name, e.Reason)
}

func (e *NameError) Unwrap() error { return ErrInvalidName }

// OverlapError reports two ops whose ranges intersect.
type OverlapError struct {
	A models.MapOp
	B models.MapOp
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s overlaps %s", e.A, e.B)
}

func (e *OverlapError) Unwrap() error { return ErrOverlappingRange }

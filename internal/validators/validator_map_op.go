package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/dumpman/models"
)

const (
	FieldName  = "name"
	FieldType  = "type"
	FieldRange = "range"

	// fields of an op list
	FieldOps      = "ops"
	FieldNames    = "names"
	FieldOverlaps = "overlaps"
)

type MapOpValidator struct {
}

func NewMapOpValidator() Validator {
	return &MapOpValidator{}
}

func (v *MapOpValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MapOp:
		return v.validateMapOp(ctx, value, fields...)
	case *models.MapOp:
		return v.validateMapOp(ctx, *value, fields...)

	case []models.MapOp:
		return v.validateMapOps(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidOpType(t models.MapOpType) bool {
	for _, known := range models.MapOpTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (v *MapOpValidator) validateMapOp(ctx context.Context, op models.MapOp, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldType, FieldRange}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if reason := checkGroupName(op.Name); reason != "" {
				return &NameError{Op: op, Reason: reason}
			}
		case FieldType:
			if !isValidOpType(op.Type) {
				return fmt.Errorf("%s: unknown map operation %q", op, op.Type)
			}
		case FieldRange:
			if op.End <= op.Start {
				return &RangeError{Op: op}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MapOpValidator) validateMapOps(ctx context.Context, ops []models.MapOp, fields ...string) error {
	if len(ops) == 0 {
		return ErrNoOperations
	}
	if len(fields) == 0 {
		fields = []string{FieldOps, FieldNames, FieldOverlaps}
	}

	for _, f := range fields {
		switch f {
		case FieldOps:
			for _, op := range ops {
				if err := v.validateMapOp(ctx, op); err != nil {
					return err
				}
			}
		case FieldNames:
			seen := make(map[string]models.MapOp, len(ops))
			for _, op := range ops {
				key := strings.ToLower(op.Name)
				if prev, ok := seen[key]; ok {
					return &NameError{Op: op, Reason: "is already used by " + prev.String()}
				}
				seen[key] = op
			}
		case FieldOverlaps:
			for i := range ops {
				for j := i + 1; j < len(ops); j++ {
					if ops[i].Overlaps(ops[j]) {
						return &OverlapError{A: ops[i], B: ops[j]}
					}
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// checkGroupName returns why name cannot be a group directory, or "" when it
// can.
func checkGroupName(name string) string {
	switch {
	case strings.TrimSpace(name) == "":
		return "is empty"
	case name == "." || name == "..":
		return "is reserved"
	case strings.ContainsAny(name, `/\`):
		return "contains a path separator"
	case strings.ContainsRune(name, 0):
		return "contains a NUL byte"
	}
	return ""
}

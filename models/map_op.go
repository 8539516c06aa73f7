// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// MapOpType selects how files of a group are transferred to the output.
type MapOpType string

const (
	// OpCopy copies files and leaves the dump untouched. It is the default.
	OpCopy MapOpType = "copy"
	// OpMove moves files out of the dump.
	OpMove MapOpType = "move"
)

// MapOpTypes lists all supported operation types in display order.
var MapOpTypes = []MapOpType{OpCopy, OpMove}

// ParseMapOpType parses a kebab-case operation name. An empty string yields
// the default [OpCopy].
func ParseMapOpType(s string) (MapOpType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return OpCopy, nil
	}

	for _, t := range MapOpTypes {
		if string(t) == s {
			return t, nil
		}
	}

	return "", fmt.Errorf("unknown map operation %q (available: %s)", s, JoinOpTypes(MapOpTypes))
}

// JoinOpTypes renders types as a comma separated list.
func JoinOpTypes(types []MapOpType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// MapOp maps the half-open file number range [Start, End) to the output
// group Name.
type MapOp struct {
	Type  MapOpType
	Name  string
	Start uint32
	End   uint32
}

// Contains reports whether id falls into the op range.
func (op MapOp) Contains(id uint32) bool {
	return id >= op.Start && id < op.End
}

// Overlaps reports whether the ranges of op and other intersect.
func (op MapOp) Overlaps(other MapOp) bool {
	return op.Start < other.End && other.Start < op.End
}

// String renders the op as "name (start..end)".
func (op MapOp) String() string {
	return fmt.Sprintf("%s (%d..%d)", op.Name, op.Start, op.End)
}

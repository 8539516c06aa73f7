// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Media is a single camera file found in the dump content directory.
//
// ID is the camera file number parsed from the filename (e.g. 1234 for
// MVI_1234.MOV). Several files may share an ID when the camera writes
// RAW+JPEG pairs.
type Media struct {
	ID        uint32
	Filename  string
	Size      int64
	CreatedAt time.Time
}

// Less orders media by file number, then by filename.
func (m Media) Less(other Media) bool {
	if m.ID != other.ID {
		return m.ID < other.ID
	}
	return m.Filename < other.Filename
}

// FileEntry is a raw directory entry as reported by media storage, before
// any filename pattern is applied.
type FileEntry struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// DumpSummary describes a loaded dump. It is shown to the user before
// groups are entered.
type DumpSummary struct {
	Count   int
	First   uint32
	Last    uint32
	OpTypes []MapOpType
}

// Summarize builds the [DumpSummary] of media sorted by file number.
func Summarize(media []Media) DumpSummary {
	s := DumpSummary{
		Count:   len(media),
		OpTypes: MapOpTypes,
	}
	if len(media) > 0 {
		s.First = media[0].ID
		s.Last = media[len(media)-1].ID
	}
	return s
}

// Range renders the summary range as "first..last".
func (s DumpSummary) Range() string {
	return fmt.Sprintf("%d..%d", s.First, s.Last)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Report summarises an executed (or simulated) plan.
type Report struct {
	Groups int
	Files  int
	Bytes  int64
	DryRun bool
}

// GroupPlan is a validated op together with the media it selects.
type GroupPlan struct {
	Op    MapOp
	Media []Media
}

// Bytes returns the total size of the planned media.
func (p GroupPlan) Bytes() int64 {
	var total int64
	for _, m := range p.Media {
		total += m.Size
	}
	return total
}

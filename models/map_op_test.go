// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMapOpType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    MapOpType
		wantErr bool
	}{
		{name: "empty defaults to copy", input: "", want: OpCopy},
		{name: "copy", input: "copy", want: OpCopy},
		{name: "move upper case", input: "MOVE", want: OpMove},
		{name: "surrounding spaces", input: "  move ", want: OpMove},
		{name: "unknown", input: "link", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMapOpType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "copy, move")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapOp_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b MapOp
		want bool
	}{
		{name: "disjoint", a: MapOp{Start: 1, End: 5}, b: MapOp{Start: 10, End: 20}, want: false},
		{name: "adjacent half-open", a: MapOp{Start: 1, End: 5}, b: MapOp{Start: 5, End: 9}, want: false},
		{name: "same start", a: MapOp{Start: 1, End: 5}, b: MapOp{Start: 1, End: 3}, want: true},
		{name: "nested", a: MapOp{Start: 1, End: 10}, b: MapOp{Start: 3, End: 4}, want: true},
		{name: "partial", a: MapOp{Start: 1, End: 6}, b: MapOp{Start: 5, End: 9}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestMapOp_Contains(t *testing.T) {
	op := MapOp{Start: 10, End: 12}

	assert.False(t, op.Contains(9))
	assert.True(t, op.Contains(10))
	assert.True(t, op.Contains(11))
	assert.False(t, op.Contains(12))
	assert.Equal(t, "x (10..12)", MapOp{Name: "x", Start: 10, End: 12}.String())
}

func TestDayBucket_GroupName(t *testing.T) {
	d := DayBucket{Date: time.Date(2022, 7, 3, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, "2022-07-03", d.Day())
	assert.Equal(t, "beach_2022-07-03", d.GroupName("beach"))
	assert.Equal(t, "2022-07-03", d.GroupName(""))
}

func TestAppBuildInfo_Banner(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", " abc123 ")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "dumpman 1.2.0 (abc123, N/A)", info.Banner("dumpman"))
}

func TestSummarize(t *testing.T) {
	empty := Summarize(nil)
	assert.Equal(t, 0, empty.Count)
	assert.Equal(t, "0..0", empty.Range())

	s := Summarize([]Media{{ID: 3}, {ID: 7}, {ID: 12}})
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, uint32(3), s.First)
	assert.Equal(t, uint32(12), s.Last)
	assert.Equal(t, "3..12", s.Range())
	assert.Equal(t, MapOpTypes, s.OpTypes)
}

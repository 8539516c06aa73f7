// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DayLayout is the date format used for day buckets and autogroup names.
const DayLayout = "2006-01-02"

// DayBucket covers all media captured on one calendar day. Start is the
// smallest file number of that day and End is one past the largest.
type DayBucket struct {
	Date  time.Time
	Start uint32
	End   uint32
	Count int
}

// Day returns the bucket date formatted with [DayLayout].
func (d DayBucket) Day() string {
	return d.Date.Format(DayLayout)
}

// GroupName builds the output group name for a day: "<name>_<date>", or the
// bare date when name is empty.
func (d DayBucket) GroupName(name string) string {
	if name == "" {
		return d.Day()
	}
	return name + "_" + d.Day()
}

// DayChoice is the answer given for one [DayBucket] during autogrouping.
type DayChoice struct {
	Name string
	Type MapOpType
}

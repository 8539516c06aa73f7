// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/dumpman/models"
)

func testDays() []models.DayBucket {
	return []models.DayBucket{
		{Date: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), Start: 1, End: 4, Count: 3},
		{Date: time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC), Start: 4, End: 9, Count: 5},
	}
}

func TestDayForm_NamesEveryDay(t *testing.T) {
	form := NewDayFormModel(context.Background(), testDays(), models.MapOpTypes, "test")

	m := typeText(t, form, "trip")
	m, cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Contains(t, form.View(), "Day 2/2: 2023-06-02")

	m, _ = press(m, tea.KeyTab)
	m, _ = press(m, tea.KeyRight)
	_, cmd = press(m, tea.KeyEnter)

	assert.True(t, isQuit(cmd))
	assert.False(t, form.QuitByUser())
	assert.Equal(t, []models.DayChoice{
		{Name: "trip", Type: models.OpCopy},
		{Name: "", Type: models.OpMove},
	}, form.Choices())
}

func TestDayForm_PreviewsGroupName(t *testing.T) {
	form := NewDayFormModel(context.Background(), testDays(), models.MapOpTypes, "test")

	typeText(t, form, "trip")

	assert.Contains(t, form.View(), "trip_2023-06-01")
}

func TestDayForm_RejectsBadName(t *testing.T) {
	form := NewDayFormModel(context.Background(), testDays(), models.MapOpTypes, "test")

	m := typeText(t, form, "a/b")
	_, cmd := press(m, tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.Contains(t, form.errMsg, "path separator")
	assert.Empty(t, form.Choices())
}

func TestDayForm_TypingIgnoredOnOpRow(t *testing.T) {
	form := NewDayFormModel(context.Background(), testDays(), models.MapOpTypes, "test")

	m, _ := press(form, tea.KeyTab)
	typeText(t, m, "zzz")

	assert.Empty(t, form.name.Value())
}

func TestDayForm_SingleTypeDoesNotToggle(t *testing.T) {
	form := NewDayFormModel(context.Background(), testDays(), []models.MapOpType{models.OpCopy}, "test")

	press(form, tea.KeyTab)

	assert.False(t, form.opFocus)
	assert.NotContains(t, form.View(), "Op")
}

func TestDayForm_EscAborts(t *testing.T) {
	form := NewDayFormModel(context.Background(), testDays(), models.MapOpTypes, "test")

	_, cmd := press(form, tea.KeyEsc)

	assert.True(t, isQuit(cmd))
	assert.True(t, form.QuitByUser())
}

func TestDayForm_NoDaysQuitsOnInit(t *testing.T) {
	form := NewDayFormModel(context.Background(), nil, models.MapOpTypes, "test")

	assert.True(t, isQuit(form.Init()))
}

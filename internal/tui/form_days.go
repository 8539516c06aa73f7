package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/dumpman/internal/validators"
	"github.com/MKhiriev/dumpman/models"
)

// DayFormModel asks for a group name, and an op type when there is a choice,
// for every capture day in turn.
type DayFormModel struct {
	ctx       context.Context
	validator validators.Validator
	title     string

	days    []models.DayBucket
	idx     int
	name    textinput.Model
	op      opSelectModel
	opFocus bool

	choices    []models.DayChoice
	errMsg     string
	quitByUser bool
}

// NewDayFormModel creates a [DayFormModel] for days.
func NewDayFormModel(ctx context.Context, days []models.DayBucket, types []models.MapOpType, title string) *DayFormModel {
	name := textinput.New()
	name.Placeholder = "empty = date only"
	name.CharLimit = 128
	name.Width = 40
	name.Focus()

	return &DayFormModel{
		ctx:       ctx,
		validator: validators.NewMapOpValidator(),
		title:     title,
		days:      days,
		name:      name,
		op:        newOpSelectModel(types),
		choices:   make([]models.DayChoice, 0, len(days)),
	}
}

// Init implements [tea.Model]. A form without days finishes immediately.
func (m *DayFormModel) Init() tea.Cmd {
	if len(m.days) == 0 {
		return tea.Quit
	}
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *DayFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit), key.Matches(keyMsg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.toggleFocus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submit()
		}

		if m.opFocus {
			switch {
			case key.Matches(keyMsg, keys.left):
				m.op.prev()
			case key.Matches(keyMsg, keys.right):
				m.op.next()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *DayFormModel) View() string {
	if m.idx >= len(m.days) {
		return renderPage(m.title, "All days named.", "")
	}

	day := m.days[m.idx]
	var b strings.Builder

	fmt.Fprintf(&b, "Day %d/%d: %s · %d files (%d..%d)\n\n",
		m.idx+1, len(m.days), day.Day(), day.Count, day.Start, day.End)

	b.WriteString(fieldLabel("Name", !m.opFocus) + " │ [" + m.name.View() + "]\n")
	if m.op.multiple() {
		b.WriteString(fieldLabel("Op", m.opFocus) + " │ " + m.op.View() + "\n")
	}
	b.WriteString(helpStyle.Render("  → "+day.GroupName(strings.TrimSpace(m.name.Value()))) + "\n")

	if len(m.choices) > 0 {
		b.WriteString("\nGroups\n")
		for i, c := range m.choices {
			d := m.days[i]
			fmt.Fprintf(&b, "  %-30s %-5s %d..%d\n", fitText(d.GroupName(c.Name), 30), c.Type, d.Start, d.End)
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	hotKeys := "enter: confirm │ esc: abort"
	if m.op.multiple() {
		hotKeys = "tab: next field │ ←/→: op │ enter: confirm │ esc: abort"
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

// Choices returns the answers given so far, aligned with the days.
func (m *DayFormModel) Choices() []models.DayChoice {
	return m.choices
}

// QuitByUser reports whether the form was aborted.
func (m *DayFormModel) QuitByUser() bool {
	return m.quitByUser
}

func (m *DayFormModel) submit() (tea.Model, tea.Cmd) {
	if m.idx >= len(m.days) {
		return m, tea.Quit
	}

	day := m.days[m.idx]
	name := strings.TrimSpace(m.name.Value())
	choice := models.DayChoice{Name: name, Type: m.op.Value()}

	op := models.MapOp{Type: choice.Type, Name: day.GroupName(name), Start: day.Start, End: day.End}
	if err := m.validator.Validate(m.ctx, op, validators.FieldName); err != nil {
		m.errMsg = err.Error()
		m.setOpFocus(false)
		return m, nil
	}

	m.choices = append(m.choices, choice)
	m.idx++
	m.errMsg = ""
	m.name.Reset()
	m.op.reset()
	m.setOpFocus(false)

	if m.idx == len(m.days) {
		return m, tea.Quit
	}
	return m, nil
}

func (m *DayFormModel) toggleFocus() {
	if !m.op.multiple() {
		return
	}
	m.setOpFocus(!m.opFocus)
}

func (m *DayFormModel) setOpFocus(op bool) {
	m.opFocus = op
	if op {
		m.name.Blur()
		return
	}
	m.name.Focus()
}

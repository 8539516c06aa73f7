package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/dumpman/internal/validators"
	"github.com/MKhiriev/dumpman/models"
)

type groupField int

const (
	fieldName groupField = iota
	fieldOp
	fieldStart
	fieldEnd
)

// GroupFormModel is the Bubble Tea model for entering map operations one
// group at a time. Each confirmed group is checked against the ones entered
// before it. Pressing enter on an empty name finishes the form.
type GroupFormModel struct {
	ctx       context.Context
	validator validators.Validator
	summary   models.DumpSummary
	title     string

	fields []groupField
	focus  int
	name   textinput.Model
	start  textinput.Model
	end    textinput.Model
	op     opSelectModel

	ops        []models.MapOp
	errMsg     string
	status     string
	quitByUser bool
}

// NewGroupFormModel creates a [GroupFormModel]. The op type row is only shown
// when the summary offers more than one type.
func NewGroupFormModel(ctx context.Context, summary models.DumpSummary, title string) *GroupFormModel {
	name := textinput.New()
	name.Placeholder = "empty = done"
	name.CharLimit = 128
	name.Width = 40
	name.Focus()

	start := textinput.New()
	start.Placeholder = "incl."
	start.CharLimit = 10
	start.Width = 12

	end := textinput.New()
	end.Placeholder = "excl."
	end.CharLimit = 10
	end.Width = 12

	m := &GroupFormModel{
		ctx:       ctx,
		validator: validators.NewMapOpValidator(),
		summary:   summary,
		title:     title,
		name:      name,
		start:     start,
		end:       end,
		op:        newOpSelectModel(summary.OpTypes),
	}

	m.fields = []groupField{fieldName}
	if m.op.multiple() {
		m.fields = append(m.fields, fieldOp)
	}
	m.fields = append(m.fields, fieldStart, fieldEnd)

	return m
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *GroupFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - esc, ctrl+c:     abort the whole run.
//   - tab, shift+tab:  move focus between rows.
//   - left, right:     change the op type while its row is focused.
//   - enter:           next row, or confirm the group on the last row.
//
// All other key events are forwarded to the focused input.
func (m *GroupFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit), key.Matches(keyMsg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submit()
		}

		if m.focused() == fieldOp {
			switch {
			case key.Matches(keyMsg, keys.left):
				m.op.prev()
			case key.Matches(keyMsg, keys.right):
				m.op.next()
			}
			return m, nil
		}
	}

	input := m.focusedInput()
	if input == nil {
		return m, nil
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *GroupFormModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "» %d files (%s)\n", m.summary.Count, m.summary.Range())
	fmt.Fprintf(&b, "» Available ops: %s\n\n", models.JoinOpTypes(m.summary.OpTypes))

	for i, f := range m.fields {
		focused := i == m.focus
		switch f {
		case fieldName:
			b.WriteString(fieldLabel("Name", focused) + " │ [" + m.name.View() + "]\n")
		case fieldOp:
			b.WriteString(fieldLabel("Op", focused) + " │ " + m.op.View() + "\n")
		case fieldStart:
			b.WriteString(fieldLabel("Start", focused) + " │ [" + m.start.View() + "]\n")
		case fieldEnd:
			b.WriteString(fieldLabel("End", focused) + " │ [" + m.end.View() + "]\n")
		}
	}

	if len(m.ops) > 0 {
		b.WriteString("\nGroups\n")
		for _, op := range m.ops {
			fmt.Fprintf(&b, "  %-30s %-5s %d..%d\n", fitText(op.Name, 30), op.Type, op.Start, op.End)
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	hotKeys := "tab: next field │ enter: confirm │ empty name: done │ esc: abort"
	if m.op.multiple() {
		hotKeys = "tab: next field │ ←/→: op │ enter: confirm │ empty name: done │ esc: abort"
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

// Ops returns the confirmed map operations in entry order.
func (m *GroupFormModel) Ops() []models.MapOp {
	return m.ops
}

// QuitByUser reports whether the form was aborted.
func (m *GroupFormModel) QuitByUser() bool {
	return m.quitByUser
}

func (m *GroupFormModel) submit() (tea.Model, tea.Cmd) {
	if m.focused() == fieldName && strings.TrimSpace(m.name.Value()) == "" {
		return m, tea.Quit
	}

	if m.focus < len(m.fields)-1 {
		m.focusNext()
		return m, nil
	}

	op, field, err := m.currentOp()
	if err != nil {
		m.setError(field, err)
		return m, nil
	}

	if err = m.validator.Validate(m.ctx, op); err != nil {
		m.setError(invalidField(err), err)
		return m, nil
	}
	candidate := append(slices.Clone(m.ops), op)
	if err = m.validator.Validate(m.ctx, candidate, validators.FieldNames, validators.FieldOverlaps); err != nil {
		m.setError(invalidField(err), err)
		return m, nil
	}

	m.ops = candidate
	m.errMsg = ""
	m.status = "Added " + op.String()
	m.resetInputs()
	return m, nil
}

// invalidField returns the row to focus for a validation error.
func invalidField(err error) groupField {
	switch {
	case errors.Is(err, validators.ErrInvalidRange):
		return fieldEnd
	case errors.Is(err, validators.ErrOverlappingRange):
		return fieldStart
	default:
		return fieldName
	}
}

// currentOp parses the inputs. On failure it also returns the field to
// focus.
func (m *GroupFormModel) currentOp() (models.MapOp, groupField, error) {
	start, err := parseFileNumber(m.start.Value())
	if err != nil {
		return models.MapOp{}, fieldStart, fmt.Errorf("start range: %w", err)
	}
	end, err := parseFileNumber(m.end.Value())
	if err != nil {
		return models.MapOp{}, fieldEnd, fmt.Errorf("end range: %w", err)
	}

	return models.MapOp{
		Type:  m.op.Value(),
		Name:  strings.TrimSpace(m.name.Value()),
		Start: start,
		End:   end,
	}, fieldName, nil
}

func (m *GroupFormModel) setError(field groupField, err error) {
	m.errMsg = err.Error()
	m.status = ""
	m.focusField(field)
}

func (m *GroupFormModel) resetInputs() {
	m.name.Reset()
	m.start.Reset()
	m.end.Reset()
	m.op.reset()
	m.focusField(fieldName)
}

func (m *GroupFormModel) focused() groupField {
	return m.fields[m.focus]
}

func (m *GroupFormModel) focusedInput() *textinput.Model {
	switch m.focused() {
	case fieldName:
		return &m.name
	case fieldStart:
		return &m.start
	case fieldEnd:
		return &m.end
	}
	return nil
}

func (m *GroupFormModel) focusField(field groupField) {
	for i, f := range m.fields {
		if f == field {
			m.setFocus(i)
			return
		}
	}
}

func (m *GroupFormModel) focusNext() {
	m.setFocus((m.focus + 1) % len(m.fields))
}

func (m *GroupFormModel) focusPrev() {
	m.setFocus((m.focus - 1 + len(m.fields)) % len(m.fields))
}

func (m *GroupFormModel) setFocus(i int) {
	if input := m.focusedInput(); input != nil {
		input.Blur()
	}
	m.focus = i
	if input := m.focusedInput(); input != nil {
		input.Focus()
	}
}

var errFileNumberRequired = errors.New("a file number is required")

func parseFileNumber(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errFileNumberRequired
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a file number", s)
	}
	return uint32(n), nil
}

package tui

import (
	"strings"

	"github.com/MKhiriev/dumpman/models"
)

// opSelectModel picks one of the available map operation types with the
// left and right keys.
type opSelectModel struct {
	items []models.MapOpType
	idx   int
}

func newOpSelectModel(types []models.MapOpType) opSelectModel {
	if len(types) == 0 {
		types = []models.MapOpType{models.OpCopy}
	}
	return opSelectModel{items: types}
}

func (m *opSelectModel) next() {
	m.idx = (m.idx + 1) % len(m.items)
}

func (m *opSelectModel) prev() {
	m.idx = (m.idx - 1 + len(m.items)) % len(m.items)
}

func (m *opSelectModel) reset() {
	m.idx = 0
}

// multiple reports whether there is anything to choose from.
func (m opSelectModel) multiple() bool {
	return len(m.items) > 1
}

func (m opSelectModel) Value() models.MapOpType {
	return m.items[m.idx]
}

func (m opSelectModel) View() string {
	parts := make([]string, len(m.items))
	for i, item := range m.items {
		if i == m.idx {
			parts[i] = "[" + string(item) + "]"
			continue
		}
		parts[i] = " " + string(item) + " "
	}
	return strings.Join(parts, " ")
}

package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/ui/theme"
)

// PickerItem is one selectable choice in a Picker.
type PickerItem struct {
	Value string
	Label string
}

// Picker cycles through a closed set of choices with left/right keys.
type Picker struct {
	Title   string
	Items   []PickerItem
	Focused bool

	cursor int
}

// NewPicker builds a picker over the given items. The first item is selected.
func NewPicker(title string, items []PickerItem) Picker {
	return Picker{Title: title, Items: items}
}

// Selected returns the currently selected item.
func (p Picker) Selected() PickerItem {
	if len(p.Items) == 0 {
		return PickerItem{}
	}
	return p.Items[p.cursor]
}

// Select moves the cursor to the item with the given value, if present.
func (p *Picker) Select(value string) {
	for i, it := range p.Items {
		if it.Value == value {
			p.cursor = i
			return
		}
	}
}

// Update handles key messages when focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused || len(p.Items) == 0 {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "left", "h":
			p.cursor = (p.cursor - 1 + len(p.Items)) % len(p.Items)
		case "right", "l":
			p.cursor = (p.cursor + 1) % len(p.Items)
		}
	}
	return p, nil
}

// View renders the picker as "Title: ◀ Label ▶".
func (p Picker) View() string {
	sel := p.Selected()
	label := fmt.Sprintf("◀ %s ▶", sel.Label)
	if p.Focused {
		return theme.Body.Render(p.Title+": ") + theme.Selected.Render(label)
	}
	return theme.Body.Render(p.Title+": ") + theme.Dimmed.Render(label)
}

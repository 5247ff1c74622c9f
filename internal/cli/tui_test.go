package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var pickerStations = []string{"Majlis Park", "Azadpur", "Karkarduma", "Karkarduma Court", "Anand Vihar ISBT"}

func press(m tea.Model, keys ...tea.KeyMsg) (StationPickerModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m.(StationPickerModel), cmd
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStationPickerSelect(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want string
	}{
		{"first", []tea.KeyMsg{{Type: tea.KeyEnter}}, "Majlis Park"},
		{"down twice", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, "Karkarduma"},
		{"up stops at top", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}}, "Majlis Park"},
		{"down stops at bottom", []tea.KeyMsg{
			{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown},
			{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter},
		}, "Anand Vihar ISBT"},
		{"filter", []tea.KeyMsg{typed("court"), {Type: tea.KeyEnter}}, "Karkarduma Court"},
		{"filter is case-insensitive", []tea.KeyMsg{typed("KARK"), {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, "Karkarduma Court"},
		{"backspace widens", []tea.KeyMsg{typed("azx"), {Type: tea.KeyBackspace}, {Type: tea.KeyEnter}}, "Azadpur"},
		{"space in filter", []tea.KeyMsg{typed("anand"), {Type: tea.KeySpace, Runes: []rune{' '}}, typed("v"), {Type: tea.KeyEnter}}, "Anand Vihar ISBT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := press(NewStationPickerModel("Source station", pickerStations), tt.keys...)
			if m.Selected != tt.want {
				t.Errorf("Selected = %q, want %q", m.Selected, tt.want)
			}
			if cmd == nil {
				t.Error("enter should quit")
			}
		})
	}
}

func TestStationPickerCancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, cmd := press(NewStationPickerModel("Source station", pickerStations), k)
		if m.Selected != "" {
			t.Errorf("%s: Selected = %q, want none", k, m.Selected)
		}
		if cmd == nil {
			t.Errorf("%s should quit", k)
		}
	}
}

func TestStationPickerNoMatch(t *testing.T) {
	m, cmd := press(NewStationPickerModel("Source station", pickerStations), typed("xyz"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected != "" || cmd != nil {
		t.Errorf("enter with no matches should do nothing, got %q", m.Selected)
	}
	if !strings.Contains(m.View(), "no matching station") {
		t.Errorf("view = %q", m.View())
	}
}

func TestStationPickerScroll(t *testing.T) {
	m := NewStationPickerModel("Source station", pickerStations)
	updated, _ := m.Update(tea.WindowSizeMsg{Height: 8})
	m = updated.(StationPickerModel)
	if m.Height != 5 {
		t.Fatalf("Height = %d, want minimum 5", m.Height)
	}
	m.Height = 2

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.Offset != 2 {
		t.Errorf("Offset = %d, want 2", m.Offset)
	}
	view := m.View()
	if strings.Contains(view, "Majlis Park") || !strings.Contains(view, "Karkarduma Court") {
		t.Errorf("view should scroll past the first entries:\n%s", view)
	}
	if !strings.Contains(view, "[4/5]") {
		t.Errorf("view should show position:\n%s", view)
	}
}

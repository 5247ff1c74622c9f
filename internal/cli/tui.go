package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

var errPickerCancelled = errors.New("station selection cancelled")

// =============================================================================
// StationPickerModel - Interactive station selection
// =============================================================================

// StationPickerModel is the bubbletea model for picking a station. Typing
// narrows the list to stations containing the typed text.
type StationPickerModel struct {
	Title    string
	Stations []string
	Filter   string
	Cursor   int
	Offset   int
	Height   int
	Selected string
}

// NewStationPickerModel creates a picker over stations.
func NewStationPickerModel(title string, stations []string) StationPickerModel {
	return StationPickerModel{
		Title:    title,
		Stations: stations,
		Height:   15,
	}
}

// Matches returns the stations passing the current filter.
func (m StationPickerModel) Matches() []string {
	if m.Filter == "" {
		return m.Stations
	}
	needle := strings.ToLower(m.Filter)
	var out []string
	for _, s := range m.Stations {
		if strings.Contains(strings.ToLower(s), needle) {
			out = append(out, s)
		}
	}
	return out
}

func (m StationPickerModel) Init() tea.Cmd {
	return nil
}

func (m StationPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case tea.KeyDown:
			if m.Cursor < len(m.Matches())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case tea.KeyEnter:
			matches := m.Matches()
			if len(matches) == 0 {
				return m, nil
			}
			m.Selected = matches[m.Cursor]
			return m, tea.Quit
		case tea.KeyBackspace:
			if r := []rune(m.Filter); len(r) > 0 {
				m.setFilter(string(r[:len(r)-1]))
			}
		case tea.KeyRunes, tea.KeySpace:
			m.setFilter(m.Filter + string(msg.Runes))
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m *StationPickerModel) setFilter(f string) {
	m.Filter = f
	m.Cursor = 0
	m.Offset = 0
}

func (m StationPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type to filter  ↑/↓ navigate  ⏎ select  esc quit"))
	b.WriteString("\n")
	b.WriteString("> " + StyleHighlight.Render(m.Filter))
	b.WriteString("\n\n")

	matches := m.Matches()
	if len(matches) == 0 {
		b.WriteString(listDimStyle.Render("  no matching station"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(matches))
	for i := m.Offset; i < end; i++ {
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + matches[i]))
		} else {
			b.WriteString(listNormalStyle.Render("  " + matches[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(matches))))

	return b.String()
}

// runStationPicker shows the picker and returns the chosen station, or
// errPickerCancelled when the user quits without choosing.
func runStationPicker(ctx context.Context, title string, stations []string, in io.Reader, out io.Writer) (string, error) {
	prog := tea.NewProgram(
		NewStationPickerModel(title, stations),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := prog.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("station picker: %w", err)
	}
	m, ok := final.(StationPickerModel)
	if !ok || m.Selected == "" {
		return "", errPickerCancelled
	}
	return m.Selected, nil
}

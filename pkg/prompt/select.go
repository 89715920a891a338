package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// selectModel represents the Bubble Tea model for menu entry selection.
type selectModel struct {
	choices         []MenuChoice
	filteredChoices []MenuChoice
	cursor          int
	filter          string
	selected        *MenuChoice
	quitting        bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(choices []MenuChoice) selectModel {
	return selectModel{
		choices:         choices,
		filteredChoices: choices,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}

	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m selectModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if m.cursor < len(m.filteredChoices) {
			selected := m.filteredChoices[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(m.filteredChoices)-1 {
			m.cursor++
		}
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.updateFilteredChoices()
		}
	case "esc":
		if m.filter == "" {
			m.quitting = true
			return m, tea.Quit
		}
		m.filter = ""
		m.updateFilteredChoices()
	default:
		if msg.Type == tea.KeyRunes {
			m.filter += key
			m.updateFilteredChoices()
		}
	}

	return m, nil
}

// updateFilteredChoices updates the filtered choices based on the current filter.
func (m *selectModel) updateFilteredChoices() {
	if m.filter == "" {
		m.filteredChoices = m.choices
	} else {
		m.filteredChoices = []MenuChoice{}

		filterLower := strings.ToLower(m.filter)
		for _, choice := range m.choices {
			if strings.Contains(strings.ToLower(formatChoice(choice)), filterLower) {
				m.filteredChoices = append(m.filteredChoices, choice)
			}
		}
	}

	// Reset cursor if it's out of bounds
	if m.cursor >= len(m.filteredChoices) || m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var s strings.Builder

	s.WriteString("? Choose a menu entry:  [Use arrows to move, type to filter]\n\n")

	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	for i, choice := range m.filteredChoices {
		if m.cursor == i {
			s.WriteString(cursorStyle.Render("> "+choice.Label) + " " + locationStyle.Render(choice.Location) + "\n")
			continue
		}
		s.WriteString(fmt.Sprintf("  %s %s\n", choice.Label, locationStyle.Render(choice.Location)))
	}

	s.WriteString("\nPress Enter to select, Esc or Ctrl+C to quit")

	return s.String()
}

// formatChoice formats a choice for filtering and plain display.
func formatChoice(choice MenuChoice) string {
	if choice.Location == "" {
		return choice.Label
	}
	return choice.Location + " > " + choice.Label
}

// promptSelectMenuItemBubbleTea runs the Bubble Tea program for menu entry selection.
func promptSelectMenuItemBubbleTea(choices []MenuChoice, opts ...tea.ProgramOption) (MenuChoice, error) {
	p := tea.NewProgram(initialSelectModel(choices), opts...)

	finalModel, err := p.Run()
	if err != nil {
		return MenuChoice{}, fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return MenuChoice{}, fmt.Errorf("unexpected model type")
	}

	// Check if user quit without selecting
	if model.selected == nil {
		return MenuChoice{}, ErrNoSelection
	}

	return *model.selected, nil
}

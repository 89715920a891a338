package dialog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lerenn/hypergraph-desktop/pkg/fs"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	dirStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// pickerModel is the Bubble Tea model of the directory browser.
type pickerModel struct {
	fs          fs.FS
	title       string
	picker      filepicker.Model
	input       textinput.Model
	allowCreate bool
	creating    bool
	selected    string
	quitting    bool
	status      string
	err         error
}

// newPickerModel creates a browser rooted at startDir listing directories only.
func newPickerModel(f fs.FS, title, startDir string, allowCreate bool) pickerModel {
	if title == "" {
		title = "Choose a directory"
	}

	fp := filepicker.New()
	fp.CurrentDirectory = startDir
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowPermissions = false

	ti := textinput.New()
	ti.Placeholder = "new-folder"
	ti.CharLimit = 255
	ti.Width = 40

	return pickerModel{
		fs:          f,
		title:       title,
		picker:      fp,
		input:       ti,
		allowCreate: allowCreate,
	}
}

// Init initializes the model.
func (m pickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages and updates the model.
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.creating {
			return m.handleCreateKeys(msg)
		}
		return m.handleBrowseKeys(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.picker, cmd = m.picker.Update(msg)
	cmds = append(cmds, cmd)

	if m.creating {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleBrowseKeys processes keys while browsing directories.
func (m pickerModel) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		m.quitting = true
		return m, tea.Quit
	case ".":
		m.selected = m.picker.CurrentDirectory
		return m, tea.Quit
	case "n":
		if m.allowCreate {
			m.creating = true
			m.err = nil
			m.status = ""
			m.input.Reset()
			return m, m.input.Focus()
		}
		return m, nil
	}

	// The picker only fills Path when an allowed entry is selected,
	// so a non-empty Path after the update is the selection.
	var cmd tea.Cmd
	m.picker.Path = ""
	m.picker, cmd = m.picker.Update(msg)
	if m.picker.Path != "" {
		m.selected = m.picker.Path
		return m, tea.Quit
	}

	return m, cmd
}

// handleCreateKeys processes keys while naming a new directory.
func (m pickerModel) handleCreateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.creating = false
		m.input.Blur()
		return m, nil
	case "enter":
		return m.createDirectory()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// createDirectory creates the typed directory inside the current one and refreshes the listing.
func (m pickerModel) createDirectory() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.input.Value())
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, os.PathSeparator) {
		m.err = fmt.Errorf("invalid directory name %q", name)
		return m, nil
	}

	path := filepath.Join(m.picker.CurrentDirectory, name)
	if err := m.fs.CreateDirectory(path); err != nil {
		m.err = err
		return m, nil
	}

	m.creating = false
	m.err = nil
	m.status = "Created " + name
	m.input.Blur()
	return m, m.picker.Init()
}

// View renders the UI.
func (m pickerModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render(m.title) + "\n")
	s.WriteString(dirStyle.Render(m.picker.CurrentDirectory) + "\n\n")
	s.WriteString(m.picker.View() + "\n")

	if m.creating {
		s.WriteString("\nNew folder name:\n" + m.input.View() + "\n")
	}

	switch {
	case m.err != nil:
		s.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	case m.status != "":
		s.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	help := "enter: choose highlighted  .: choose current  h/backspace: up  q/esc: cancel"
	if m.creating {
		help = "enter: create  esc: back"
	} else if m.allowCreate {
		help += "  n: new folder"
	}
	s.WriteString("\n" + helpStyle.Render(help))

	return s.String()
}

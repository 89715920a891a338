package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lerenn/hypergraph-desktop/configs"
	"gopkg.in/yaml.v3"
)

// ActionOpenHypergraph is emitted when the user asks to open a hypergraph.
const ActionOpenHypergraph = "main:open-hypergraph"

// RoleSeparator draws a separator line instead of an entry.
const RoleSeparator = "separator"

// Item is a menu entry. Entries with an Action are handled by the Dispatcher,
// entries with a Role are handled by the host window.
type Item struct {
	Label   string `yaml:"label,omitempty"`
	Role    string `yaml:"role,omitempty"`
	Action  string `yaml:"action,omitempty"`
	Submenu []Item `yaml:"submenu,omitempty"`
}

// Title returns the label, or the role when there is none.
func (i Item) Title() string {
	if i.Label != "" {
		return i.Label
	}
	return i.Role
}

// Template is a static menu tree.
type Template struct {
	Items []Item `yaml:"menu"`
}

// ActionEntry is a menu entry carrying a custom action.
type ActionEntry struct {
	// Location is the chain of parent titles, joined with " > ".
	Location string
	Label    string
	Action   string
}

// DefaultTemplate returns the application menu.
func DefaultTemplate() (Template, error) {
	return LoadTemplate(configs.MenuYAML)
}

// LoadTemplate parses and validates a YAML menu template.
func LoadTemplate(data []byte) (Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Template{}, fmt.Errorf("%w: %w", ErrTemplateParse, err)
	}

	if err := t.Validate(); err != nil {
		return Template{}, err
	}

	return t, nil
}

// Validate checks every entry has a title and actions are unique.
func (t Template) Validate() error {
	seen := make(map[string]struct{})
	return walk(t.Items, nil, func(parents []string, item Item) error {
		if item.Label == "" && item.Role == "" {
			return fmt.Errorf("%w: under %q", ErrInvalidItem, strings.Join(parents, " > "))
		}
		if item.Action == "" {
			return nil
		}
		if _, ok := seen[item.Action]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateAction, item.Action)
		}
		seen[item.Action] = struct{}{}
		return nil
	})
}

// Actions lists the entries carrying a custom action, in menu order.
func (t Template) Actions() []ActionEntry {
	var entries []ActionEntry
	_ = walk(t.Items, nil, func(parents []string, item Item) error {
		if item.Action != "" {
			entries = append(entries, ActionEntry{
				Location: strings.Join(parents, " > "),
				Label:    item.Title(),
				Action:   item.Action,
			})
		}
		return nil
	})
	return entries
}

// HasAction checks if an entry of the menu carries the action.
func (t Template) HasAction(action string) bool {
	for _, entry := range t.Actions() {
		if entry.Action == action {
			return true
		}
	}
	return false
}

// walk visits items depth first, passing the titles of their parents.
func walk(items []Item, parents []string, visit func(parents []string, item Item) error) error {
	for _, item := range items {
		if err := visit(parents, item); err != nil {
			return err
		}
		if len(item.Submenu) > 0 {
			if err := walk(item.Submenu, append(parents[:len(parents):len(parents)], item.Title()), visit); err != nil {
				return err
			}
		}
	}
	return nil
}

var (
	topLevelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	actionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	roleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Render draws the menu tree for a terminal.
func (t Template) Render() string {
	var s strings.Builder
	for _, item := range t.Items {
		s.WriteString(topLevelStyle.Render(item.Title()) + "\n")
		renderItems(&s, item.Submenu, 1)
	}
	return s.String()
}

func renderItems(s *strings.Builder, items []Item, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, item := range items {
		switch {
		case item.Role == RoleSeparator:
			s.WriteString(indent + roleStyle.Render("────") + "\n")
		case item.Action != "":
			s.WriteString(indent + item.Title() + " " + actionStyle.Render("→ "+item.Action) + "\n")
		case item.Label == "":
			s.WriteString(indent + roleStyle.Render("["+item.Role+"]") + "\n")
		default:
			s.WriteString(indent + item.Title() + "\n")
		}
		renderItems(s, item.Submenu, depth+1)
	}
}

//go:build unit

package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplate(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)

	titles := make([]string, 0, len(tmpl.Items))
	for _, item := range tmpl.Items {
		titles = append(titles, item.Title())
	}
	assert.Equal(t, []string{"Hypergraph", "Edit", "View", "window", "help"}, titles)

	// The only custom action is opening a hypergraph
	assert.Equal(t, []ActionEntry{
		{Location: "Hypergraph", Label: "Open Hypergraph", Action: ActionOpenHypergraph},
	}, tmpl.Actions())
	assert.True(t, tmpl.HasAction(ActionOpenHypergraph))
	assert.False(t, tmpl.HasAction("main:quit"))
}

func TestLoadTemplate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "not yaml",
			yaml:    "menu: [",
			wantErr: ErrTemplateParse,
		},
		{
			name:    "item without label or role",
			yaml:    "menu:\n  - label: File\n    submenu:\n      - action: main:open\n",
			wantErr: ErrInvalidItem,
		},
		{
			name:    "duplicate action",
			yaml:    "menu:\n  - label: A\n    action: main:open\n  - label: B\n    submenu:\n      - label: C\n        action: main:open\n",
			wantErr: ErrDuplicateAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTemplate([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTemplate_Actions_NestedLocation(t *testing.T) {
	tmpl, err := LoadTemplate([]byte(`
menu:
  - label: File
    submenu:
      - label: Recent
        submenu:
          - label: Last graph
            action: main:open-last
      - label: Export
        action: main:export
`))
	require.NoError(t, err)

	assert.Equal(t, []ActionEntry{
		{Location: "File > Recent", Label: "Last graph", Action: "main:open-last"},
		{Location: "File", Label: "Export", Action: "main:export"},
	}, tmpl.Actions())
}

func TestTemplate_Render(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)

	out := tmpl.Render()
	assert.Contains(t, out, "Hypergraph")
	assert.Contains(t, out, "Open Hypergraph")
	assert.Contains(t, out, ActionOpenHypergraph)
	assert.Contains(t, out, "[togglefullscreen]")
	assert.Contains(t, out, "Learn More")
}

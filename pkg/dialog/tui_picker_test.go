//go:build integration

package dialog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lerenn/hypergraph-desktop/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUIPicker_PickDirectory_CurrentDirectory(t *testing.T) {
	start := t.TempDir()
	var out bytes.Buffer

	picker := NewTUIPicker(fs.NewFS(),
		tea.WithInput(strings.NewReader(".")),
		tea.WithOutput(&out),
		tea.WithoutRenderer(),
	)

	paths, err := picker.PickDirectory(context.Background(), Window{Title: "Open Hypergraph", StartDir: start}, Options{OpenDirectory: true})
	require.NoError(t, err)
	assert.Equal(t, []string{start}, paths)
}

func TestTUIPicker_PickDirectory_Cancel(t *testing.T) {
	var out bytes.Buffer

	picker := NewTUIPicker(fs.NewFS(),
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(&out),
		tea.WithoutRenderer(),
	)

	paths, err := picker.PickDirectory(context.Background(), Window{StartDir: t.TempDir()}, Options{OpenDirectory: true})
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestTUIPicker_PickDirectory_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	picker := NewTUIPicker(fs.NewFS(),
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(&bytes.Buffer{}),
		tea.WithoutRenderer(),
	)

	_, err := picker.PickDirectory(ctx, Window{StartDir: t.TempDir()}, Options{OpenDirectory: true})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTUIPicker_StartDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	picker := NewTUIPicker(fs.NewFS()).(*tuiPicker)

	assert.Equal(t, dir, picker.startDirectory(dir))

	// A file is not a valid start, the current directory is used instead
	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, picker.startDirectory(file))
	assert.Equal(t, cwd, picker.startDirectory(""))
}

func TestPickerModel_SelectHighlightedDirectory(t *testing.T) {
	start := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(start, "graphs"), 0755))

	model := newPickerModel(fs.NewFS(), "", start, false)

	// Load the listing the way the program would
	updated, _ := model.Update(model.Init()())

	updated, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result := updated.(pickerModel)

	assert.Equal(t, filepath.Join(start, "graphs"), result.selected)
	assert.NotNil(t, cmd)
}

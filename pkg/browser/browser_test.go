//go:build unit

package browser

import (
	"context"
	"errors"
	"testing"

	"github.com/lerenn/hypergraph-desktop/pkg/dialog"
	dialogmocks "github.com/lerenn/hypergraph-desktop/pkg/dialog/mocks"
	fsmocks "github.com/lerenn/hypergraph-desktop/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testWindow = dialog.Window{Title: "Open Hypergraph", StartDir: "/home/user"}

func newTestBrowser(ctrl *gomock.Controller) (Browser, *fsmocks.MockFS, *dialogmocks.MockPicker) {
	mockFS := fsmocks.NewMockFS(ctrl)
	mockPicker := dialogmocks.NewMockPicker(ctrl)
	return NewBrowser(NewBrowserParams{FS: mockFS, Picker: mockPicker}), mockFS, mockPicker
}

func TestRealBrowser_BrowseDirectory(t *testing.T) {
	tests := []struct {
		name       string
		selection  []string
		resolved   string
		isDir      bool
		wantStatus Status
		wantPath   string
	}{
		{
			name:       "no selection",
			selection:  nil,
			wantStatus: StatusCancelled,
		},
		{
			name:       "empty first selection",
			selection:  []string{""},
			wantStatus: StatusCancelled,
		},
		{
			name:       "directory",
			selection:  []string{"/home/user/graphs"},
			resolved:   "/home/user/graphs",
			isDir:      true,
			wantStatus: StatusResolved,
			wantPath:   "/home/user/graphs",
		},
		{
			name:       "link to directory",
			selection:  []string{"/home/user/latest"},
			resolved:   "/data/graphs",
			isDir:      true,
			wantStatus: StatusResolved,
			wantPath:   "/data/graphs",
		},
		{
			name:       "regular file",
			selection:  []string{"/home/user/graph.yaml"},
			resolved:   "/home/user/graph.yaml",
			isDir:      false,
			wantStatus: StatusInvalid,
		},
		{
			name:       "broken link",
			selection:  []string{"/home/user/broken"},
			resolved:   "",
			wantStatus: StatusInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b, mockFS, mockPicker := newTestBrowser(ctrl)

			mockPicker.EXPECT().
				PickDirectory(gomock.Any(), testWindow, dialog.Options{OpenDirectory: true, CreateDirectory: true}).
				Return(tt.selection, nil)
			if len(tt.selection) > 0 && tt.selection[0] != "" {
				mockFS.EXPECT().NormalizeAndResolvePath(tt.selection[0]).Return(tt.resolved)
				if tt.resolved != "" {
					mockFS.EXPECT().IsDirectory(tt.resolved).Return(tt.isDir)
				}
			}

			result, err := b.BrowseDirectory(context.Background(), testWindow)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantPath, result.Path)
			assert.Equal(t, tt.wantStatus == StatusResolved, result.Ok())
		})
	}
}

func TestRealBrowser_BrowseDirectory_OnlyFirstSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockFS, mockPicker := newTestBrowser(ctrl)

	mockPicker.EXPECT().PickDirectory(gomock.Any(), testWindow, gomock.Any()).Return([]string{"/a", "/b"}, nil)
	mockFS.EXPECT().NormalizeAndResolvePath("/a").Return("/a")
	mockFS.EXPECT().IsDirectory("/a").Return(true)

	result, err := b.BrowseDirectory(context.Background(), testWindow)
	assert.NoError(t, err)
	assert.Equal(t, Result{Status: StatusResolved, Selected: "/a", Path: "/a"}, result)
}

func TestRealBrowser_BrowseDirectory_PickerErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, _, mockPicker := newTestBrowser(ctrl)

	pickErr := errors.New("no terminal")
	mockPicker.EXPECT().PickDirectory(gomock.Any(), testWindow, gomock.Any()).Return(nil, pickErr)

	_, err := b.BrowseDirectory(context.Background(), testWindow)
	assert.ErrorIs(t, err, ErrPickerFailed)
	assert.ErrorIs(t, err, pickErr)

	mockPicker.EXPECT().PickDirectory(gomock.Any(), testWindow, gomock.Any()).Return(nil, context.Canceled)

	_, err = b.BrowseDirectory(context.Background(), testWindow)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrPickerFailed)
}

func TestRealBrowser_BrowseDirectoryPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockFS, mockPicker := newTestBrowser(ctrl)

	// Cancelled
	mockPicker.EXPECT().PickDirectory(gomock.Any(), testWindow, gomock.Any()).Return([]string{}, nil)
	path, ok := b.BrowseDirectoryPath(context.Background(), testWindow)
	assert.False(t, ok)
	assert.Empty(t, path)

	// Invalid
	mockPicker.EXPECT().PickDirectory(gomock.Any(), testWindow, gomock.Any()).Return([]string{"/f"}, nil)
	mockFS.EXPECT().NormalizeAndResolvePath("/f").Return("/f")
	mockFS.EXPECT().IsDirectory("/f").Return(false)
	path, ok = b.BrowseDirectoryPath(context.Background(), testWindow)
	assert.False(t, ok)
	assert.Empty(t, path)

	// Picker failure
	mockPicker.EXPECT().PickDirectory(gomock.Any(), testWindow, gomock.Any()).Return(nil, errors.New("boom"))
	path, ok = b.BrowseDirectoryPath(context.Background(), testWindow)
	assert.False(t, ok)
	assert.Empty(t, path)

	// Resolved
	mockPicker.EXPECT().PickDirectory(gomock.Any(), testWindow, gomock.Any()).Return([]string{"/d"}, nil)
	mockFS.EXPECT().NormalizeAndResolvePath("/d").Return("/d")
	mockFS.EXPECT().IsDirectory("/d").Return(true)
	path, ok = b.BrowseDirectoryPath(context.Background(), testWindow)
	assert.True(t, ok)
	assert.Equal(t, "/d", path)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "cancelled", StatusCancelled.String())
	assert.Equal(t, "invalid", StatusInvalid.String())
	assert.Equal(t, "resolved", StatusResolved.String())
}

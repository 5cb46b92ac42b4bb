package controllers

import (
	"testing"

	"dictview/internal/config"
	"dictview/internal/dictionary"
	"dictview/internal/logger"
	mock_controllers "dictview/internal/mocks/controllers"
	"dictview/internal/models"
	"dictview/internal/store"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const bundledDir = "/opt/dictview/dictionaries"

var testScreen = models.Size{Width: 1920, Height: 1080}

func newTestController(t *testing.T, files map[string]string) (*MainController, *mock_controllers.MockView, *mock_controllers.MockNativeWindow) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, bundledDir+"/"+name, []byte(content), 0644))
	}

	log := logger.NewNop()
	locator := store.NewLocator(fs, config.StoreConfig{AppDir: "DictionaryApp", BundledDir: bundledDir}, log)
	locator.AppDataDir = "/home/user/.local/share/DictionaryApp/dictionaries"
	window := models.NewWindowState(config.FontConfig{DefaultSize: 12, MinSize: 6, MaximizeIncrement: 4}, models.Size{Width: 450, Height: 450})

	ctrl := gomock.NewController(t)
	view := mock_controllers.NewMockView(ctrl)
	native := mock_controllers.NewMockNativeWindow(ctrl)

	mc := NewMainController(fs, locator, window, testScreen, log)
	mc.SetView(view)
	mc.SetNativeWindow(native)
	return mc, view, native
}

func TestMainController_Start(t *testing.T) {
	mc, view, _ := newTestController(t, map[string]string{
		"go.json":    `{"name":"Go keywords","description":"Reserved words","words":[{"word":"if","description":"cond"},{"word":"for","description":"loop"}]}`,
		"basic.json": `["a","b"]`,
	})

	gomock.InOrder(
		view.EXPECT().SetFontSize(float32(12)),
		view.EXPECT().SetTitle(models.NoDictionaryTitle),
		view.EXPECT().SetDictionaries([]string{"basic", "go"}),
		view.EXPECT().SetSelectedDictionary("basic"),
		view.EXPECT().SetTitle("basic"),
		view.EXPECT().SetDictionaryDescription(""),
		view.EXPECT().SetEntries([]dictionary.Entry{{Word: "a"}, {Word: "b"}}),
		view.EXPECT().SelectEntry(0),
		view.EXPECT().SetDetail(""),
	)

	require.NoError(t, mc.Start())

	src, ok := mc.Selection().Active()
	require.True(t, ok)
	assert.Equal(t, "basic", src.Name)
}

func TestMainController_StartSeedsEmptyStore(t *testing.T) {
	mc, view, _ := newTestController(t, nil)

	view.EXPECT().SetFontSize(gomock.Any())
	view.EXPECT().SetTitle(models.NoDictionaryTitle)
	view.EXPECT().SetDictionaries([]string{"default"})
	view.EXPECT().SetSelectedDictionary("default")
	view.EXPECT().SetTitle("default")
	view.EXPECT().SetDictionaryDescription("")
	view.EXPECT().SetEntries([]dictionary.Entry{{Word: "if", Description: "A conditional statement."}})
	view.EXPECT().SelectEntry(0)
	view.EXPECT().SetDetail("A conditional statement.")

	require.NoError(t, mc.Start())
}

func TestMainController_DictionarySelected(t *testing.T) {
	tests := []struct {
		name    string
		content string
		setup   func(view *mock_controllers.MockView)
	}{
		{
			name:    "switch auto selects first entry",
			content: `{"name":"Go keywords","description":"Reserved words","words":[{"word":"if","description":"cond"},{"word":"for","description":"loop"}]}`,
			setup: func(view *mock_controllers.MockView) {
				gomock.InOrder(
					view.EXPECT().SetTitle("Go keywords"),
					view.EXPECT().SetDictionaryDescription("Reserved words"),
					view.EXPECT().SetEntries([]dictionary.Entry{{Word: "if", Description: "cond"}, {Word: "for", Description: "loop"}}),
					view.EXPECT().SelectEntry(0),
					view.EXPECT().SetDetail("cond"),
				)
			},
		},
		{
			name:    "malformed file shows empty state",
			content: `{"words":[`,
			setup: func(view *mock_controllers.MockView) {
				view.EXPECT().SetTitle("go")
				view.EXPECT().SetDictionaryDescription("")
				view.EXPECT().SetEntries([]dictionary.Entry{})
				view.EXPECT().SetDetail("")
			},
		},
		{
			name:    "empty word list selects nothing",
			content: `{"words":[]}`,
			setup: func(view *mock_controllers.MockView) {
				view.EXPECT().SetTitle("go")
				view.EXPECT().SetDictionaryDescription("")
				view.EXPECT().SetEntries([]dictionary.Entry{})
				view.EXPECT().SetDetail("")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc, view, _ := newTestController(t, map[string]string{"go.json": tt.content})
			sources, err := mc.locator.List(bundledDir)
			require.NoError(t, err)
			mc.selection.SetSources(sources)

			tt.setup(view)
			mc.DictionarySelected("go")
		})
	}
}

func TestMainController_DictionarySelected_Unknown(t *testing.T) {
	mc, _, _ := newTestController(t, nil)

	// no view calls expected
	mc.DictionarySelected("missing")
	_, ok := mc.Selection().Active()
	assert.False(t, ok)
}

func TestMainController_EntrySelected(t *testing.T) {
	mc, view, _ := newTestController(t, map[string]string{
		"go.json": `[{"word":"if","description":"cond"},{"word":"for","description":"loop"}]`,
	})
	sources, err := mc.locator.List(bundledDir)
	require.NoError(t, err)
	mc.selection.SetSources(sources)
	d, err := dictionary.Load(mc.fs, sources[0].Path)
	require.NoError(t, err)
	mc.selection.Activate("go", d)

	view.EXPECT().SetDetail("loop")
	mc.EntrySelected(1)

	// out of range is ignored
	mc.EntrySelected(5)
	assert.Equal(t, 1, mc.Selection().SelectedIndex())
}

func TestMainController_KeyTyped(t *testing.T) {
	mc, view, _ := newTestController(t, nil)

	gomock.InOrder(
		view.EXPECT().SetFontSize(float32(13)),
		view.EXPECT().SetFontSize(float32(14)),
		view.EXPECT().SetFontSize(float32(13)),
		view.EXPECT().SetFontSize(float32(12)),
		view.EXPECT().SetFontSize(float32(12)),
	)

	mc.KeyTyped('+')
	mc.KeyTyped('=')
	mc.KeyTyped('-')
	mc.KeyTyped('_')
	mc.KeyTyped('x')
	mc.KeyTyped('n')
}

func TestMainController_KeyTyped_MinimumFont(t *testing.T) {
	mc, view, _ := newTestController(t, nil)

	view.EXPECT().SetFontSize(gomock.Any()).Times(10)
	for i := 0; i < 10; i++ {
		mc.KeyTyped('-')
	}
	assert.Equal(t, float32(6), mc.window.FontSize())
}

func TestMainController_MaximizeToggled(t *testing.T) {
	mc, view, native := newTestController(t, nil)

	native.EXPECT().ScreenSize().Return(models.Size{}, false).Times(2)
	native.EXPECT().Position().Return(models.Point{X: 10, Y: 20}, true).Times(2)

	gomock.InOrder(
		view.EXPECT().ResizeWindow(models.Size{Width: 1344, Height: 756}),
		native.EXPECT().Move(models.Point{X: 288, Y: 81}).Return(true),
		view.EXPECT().SetFontSize(float32(16)),
		view.EXPECT().ResizeWindow(models.Size{Width: 450, Height: 450}),
		native.EXPECT().Move(models.Point{X: 10, Y: 20}).Return(true),
		view.EXPECT().SetFontSize(float32(12)),
	)

	mc.MaximizeToggled()
	mc.MaximizeToggled()
}

func TestMainController_TitleBarDragged(t *testing.T) {
	t.Run("follows the cursor", func(t *testing.T) {
		mc, _, native := newTestController(t, nil)

		native.EXPECT().Position().Return(models.Point{X: 100, Y: 100}, true)
		gomock.InOrder(
			native.EXPECT().CursorPosition().Return(models.Point{X: 150, Y: 110}, true),
			native.EXPECT().CursorPosition().Return(models.Point{X: 160, Y: 115}, true),
			native.EXPECT().Move(models.Point{X: 110, Y: 105}).Return(true),
			native.EXPECT().CursorPosition().Return(models.Point{X: 170, Y: 100}, true),
			native.EXPECT().Move(models.Point{X: 120, Y: 90}).Return(true),
		)

		mc.TitleBarDragged(10, 5)
		mc.TitleBarDragged(10, -15)
		mc.TitleBarDragEnd()
		assert.False(t, mc.window.Dragging())
	})

	t.Run("falls back to pointer deltas", func(t *testing.T) {
		mc, _, native := newTestController(t, nil)

		native.EXPECT().Position().Return(models.Point{}, false)
		native.EXPECT().CursorPosition().Return(models.Point{}, false).AnyTimes()
		gomock.InOrder(
			native.EXPECT().Move(models.Point{X: 3, Y: 4}).Return(false),
			native.EXPECT().Move(models.Point{X: 5, Y: 4}).Return(false),
		)

		mc.TitleBarDragged(3, 4)
		mc.TitleBarDragged(2, 0)
		mc.TitleBarDragEnd()
		assert.Equal(t, models.Point{X: 5, Y: 4}, mc.window.Geometry().Position)
	})
}

func TestMainController_QuitRequested(t *testing.T) {
	mc, _, _ := newTestController(t, nil)

	mc.QuitRequested()

	called := false
	mc.SetQuitHandler(func() { called = true })
	mc.QuitRequested()
	assert.True(t, called)
}

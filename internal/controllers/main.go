package controllers

import (
	"dictview/internal/dictionary"
	"dictview/internal/logger"
	"dictview/internal/models"
	"dictview/internal/store"

	"github.com/spf13/afero"
)

const component = "MainController"

// MainController owns the selection and window state and translates user
// events into view updates. It runs entirely on the UI event loop.
type MainController struct {
	fs        afero.Fs
	locator   *store.Locator
	selection *models.Selection
	window    *models.WindowState
	screen    models.Size

	view   View
	native NativeWindow
	quit   func()
	log    logger.Logger
}

var _ EventHandler = (*MainController)(nil)

// NewMainController creates a controller; fallbackScreen is used for
// maximizing when the platform cannot report the screen size.
func NewMainController(
	fs afero.Fs,
	locator *store.Locator,
	window *models.WindowState,
	fallbackScreen models.Size,
	log logger.Logger,
) *MainController {
	return &MainController{
		fs:        fs,
		locator:   locator,
		selection: models.NewSelection(),
		window:    window,
		screen:    fallbackScreen,
		native:    noNativeWindow{},
		log:       log,
	}
}

func (mc *MainController) SetView(view View) {
	mc.view = view
}

func (mc *MainController) SetNativeWindow(native NativeWindow) {
	mc.native = native
}

func (mc *MainController) SetQuitHandler(quit func()) {
	mc.quit = quit
}

// Selection exposes the current state, mostly for tests and the status log.
func (mc *MainController) Selection() *models.Selection {
	return mc.selection
}

// Start prepares the dictionary store, fills the selector and activates
// the first dictionary. The view shows an empty state if the store cannot
// be opened.
func (mc *MainController) Start() error {
	mc.view.SetFontSize(mc.window.FontSize())
	mc.view.SetTitle(models.NoDictionaryTitle)

	dir, sources, err := mc.locator.Open()
	if err != nil {
		mc.log.Error(component, err, map[string]interface{}{"dir": dir})
		mc.view.SetDictionaries(nil)
		return err
	}

	mc.selection.SetSources(sources)
	names := mc.selection.Names()
	mc.view.SetDictionaries(names)

	mc.log.Info(component, "dictionary store opened", map[string]interface{}{
		"dir":          dir,
		"dictionaries": len(names),
	})

	if len(names) > 0 {
		mc.view.SetSelectedDictionary(names[0])
		mc.DictionarySelected(names[0])
	}
	return nil
}

func (mc *MainController) DictionarySelected(name string) {
	src, ok := mc.selection.Source(name)
	if !ok {
		mc.log.Warning(component, "unknown dictionary selected", map[string]interface{}{"name": name})
		return
	}

	d, err := dictionary.Load(mc.fs, src.Path)
	if err != nil {
		mc.log.Error(component, err, map[string]interface{}{"dictionary": name})
		d = dictionary.Dictionary{Entries: []dictionary.Entry{}}
	}
	mc.selection.Activate(name, d)

	mc.view.SetTitle(mc.selection.Title())
	mc.view.SetDictionaryDescription(mc.selection.Description())
	mc.view.SetEntries(mc.selection.Entries())
	if i := mc.selection.SelectedIndex(); i >= 0 {
		mc.view.SelectEntry(i)
	}
	mc.view.SetDetail(mc.selection.Detail())

	mc.log.Debug(component, "dictionary activated", map[string]interface{}{
		"dictionary": name,
		"entries":    len(d.Entries),
	})
}

func (mc *MainController) EntrySelected(index int) {
	entry, ok := mc.selection.Select(index)
	if !ok {
		return
	}
	mc.view.SetDetail(entry.Description)
}

// KeyTyped handles the text size shortcuts: '-' and '_' shrink, '+' and
// '=' grow, 'n' restores the default.
func (mc *MainController) KeyTyped(r rune) {
	var size float32
	switch r {
	case '-', '_':
		size = mc.window.DecreaseFont()
	case '+', '=':
		size = mc.window.IncreaseFont()
	case 'n':
		size = mc.window.ResetFont()
	default:
		return
	}
	mc.view.SetFontSize(size)
}

func (mc *MainController) TitleBarDragged(dx, dy float32) {
	if !mc.window.Dragging() {
		origin := mc.window.Geometry().Position
		if p, ok := mc.native.Position(); ok {
			origin = p
		}
		pointer, _ := mc.native.CursorPosition()
		mc.window.BeginDrag(origin, pointer)
	}

	var p models.Point
	if cursor, ok := mc.native.CursorPosition(); ok {
		p = mc.window.DragTo(cursor)
	} else {
		p = mc.window.Drag(dx, dy)
	}
	mc.native.Move(p)
}

func (mc *MainController) TitleBarDragEnd() {
	mc.window.EndDrag()
}

func (mc *MainController) MaximizeToggled() {
	screen := mc.screen
	if s, ok := mc.native.ScreenSize(); ok {
		screen = s
	}
	if p, ok := mc.native.Position(); ok && !mc.window.Maximized() {
		mc.window.SetPosition(p)
	}

	g := mc.window.ToggleMaximize(screen)
	mc.view.ResizeWindow(g.Size)
	mc.native.Move(g.Position)
	mc.view.SetFontSize(mc.window.FontSize())

	mc.log.Debug(component, "window geometry changed", map[string]interface{}{
		"maximized": mc.window.Maximized(),
		"width":     g.Size.Width,
		"height":    g.Size.Height,
	})
}

func (mc *MainController) QuitRequested() {
	mc.log.Info(component, "quit requested", nil)
	if mc.quit != nil {
		mc.quit()
	}
}

type noNativeWindow struct{}

func (noNativeWindow) ScreenSize() (models.Size, bool)      { return models.Size{}, false }
func (noNativeWindow) CursorPosition() (models.Point, bool) { return models.Point{}, false }
func (noNativeWindow) Position() (models.Point, bool)       { return models.Point{}, false }
func (noNativeWindow) Move(models.Point) bool               { return false }

package views

import (
	"dictview/internal/controllers"
	"dictview/internal/dictionary"
	"dictview/internal/models"
	"dictview/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

// MainView renders the borderless viewer window: custom title bar on top,
// word list on the left and the selected description on the right.
type MainView struct {
	app     fyne.App
	window  fyne.Window
	palette Palette
	handler controllers.EventHandler

	mainContainer *fyne.Container
	titleBar      *components.TitleBar
	wordList      *components.WordList
	detail        *components.DetailPane

	fontSize float32
}

var _ controllers.View = (*MainView)(nil)

func NewMainView(app fyne.App, window fyne.Window, palette Palette, handler controllers.EventHandler) *MainView {
	view := &MainView{
		app:     app,
		window:  window,
		palette: palette,
		handler: handler,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.titleBar = components.NewTitleBar(mv.palette.TitleBar)
	mv.wordList = components.NewWordList()
	mv.detail = components.NewDetailPane()
}

func (mv *MainView) buildLayout() {
	split := container.NewHSplit(mv.wordList.GetWidget(), mv.detail.GetContainer())
	split.SetOffset(0.4)

	content := container.NewStack(
		canvas.NewRectangle(mv.palette.Background),
		container.NewPadded(split),
	)

	mv.mainContainer = container.NewBorder(
		mv.titleBar.GetContainer(), // top
		nil,
		nil,
		nil,
		content,
	)
	mv.window.SetContent(mv.mainContainer)
	mv.window.SetPadded(false)
}

// setupEventHandlers forwards widget events to the controller.
func (mv *MainView) setupEventHandlers() {
	mv.titleBar.SetDictionaryHandler(mv.handler.DictionarySelected)
	mv.titleBar.SetMaximizeHandler(mv.handler.MaximizeToggled)
	mv.titleBar.SetCloseHandler(mv.handler.QuitRequested)
	mv.titleBar.SetDragHandlers(mv.handler.TitleBarDragged, mv.handler.TitleBarDragEnd)
	mv.wordList.SetSelectHandler(mv.handler.EntrySelected)

	// The canvas hook only fires while nothing is focused, so the
	// focusable widgets forward their own key presses too.
	mv.wordList.SetKeyHandler(mv.keyDown)
	mv.titleBar.SetKeyHandler(mv.keyDown)
	if dc, ok := mv.window.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(mv.keyDown)
		return
	}
	mv.window.Canvas().SetOnTypedRune(mv.handler.KeyTyped)
}

func (mv *MainView) keyDown(ev *fyne.KeyEvent) {
	if r, ok := keyRune(ev.Name); ok {
		mv.handler.KeyTyped(r)
	}
}

// keyRune maps the physical keys of the text size shortcuts to the runes
// the controller understands. Shifted variants share a key.
func keyRune(name fyne.KeyName) (rune, bool) {
	switch name {
	case fyne.KeyMinus:
		return '-', true
	case fyne.KeyEqual:
		return '=', true
	case fyne.KeyN:
		return 'n', true
	}
	return 0, false
}

func (mv *MainView) SetDictionaries(names []string) {
	mv.titleBar.SetDictionaries(names)
}

func (mv *MainView) SetSelectedDictionary(name string) {
	mv.titleBar.SetSelected(name)
}

func (mv *MainView) SetTitle(title string) {
	mv.window.SetTitle(title)
}

func (mv *MainView) SetDictionaryDescription(text string) {
	mv.titleBar.SetDescription(text)
}

func (mv *MainView) SetEntries(entries []dictionary.Entry) {
	mv.wordList.SetEntries(entries)
}

func (mv *MainView) SelectEntry(index int) {
	mv.wordList.Select(index)
}

func (mv *MainView) SetDetail(text string) {
	mv.detail.SetText(text)
}

// SetFontSize re-applies the theme with the new text size, which refreshes
// every widget.
func (mv *MainView) SetFontSize(size float32) {
	mv.fontSize = size
	mv.app.Settings().SetTheme(newViewerTheme(mv.palette, size))
}

func (mv *MainView) ResizeWindow(size models.Size) {
	mv.window.Resize(fyne.NewSize(size.Width, size.Height))
}

func (mv *MainView) Show() {
	mv.window.Show()
}

func (mv *MainView) Close() {
	mv.window.Close()
}

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

func (mv *MainView) GetTitleBar() *components.TitleBar {
	return mv.titleBar
}

func (mv *MainView) GetWordList() *components.WordList {
	return mv.wordList
}

func (mv *MainView) GetDetail() *components.DetailPane {
	return mv.detail
}

// FontSize returns the text size last applied.
func (mv *MainView) FontSize() float32 {
	return mv.fontSize
}


package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	maximizeGlyph = "⛶"
	closeGlyph    = "✕"
)

// TitleBar replaces the window decorations: a dictionary selector with its
// description on the left, maximize and close on the right. The empty
// area behind them can be dragged to move the window.
type TitleBar struct {
	container   *fyne.Container
	handle      *dragHandle
	selector    *keySelect
	description *widget.Label
	maximize    *widget.Button
	close       *widget.Button

	// Event handlers
	dictionaryHandler func(string)
	maximizeHandler   func()
	closeHandler      func()
	dragHandler       func(dx, dy float32)
	dragEndHandler    func()

	updating bool
}

func NewTitleBar(background color.Color) *TitleBar {
	tb := &TitleBar{}
	tb.createComponents(background)
	tb.buildLayout()
	return tb
}

func (tb *TitleBar) createComponents(background color.Color) {
	tb.handle = newDragHandle(background)
	tb.handle.onDragged = func(dx, dy float32) {
		if tb.dragHandler != nil {
			tb.dragHandler(dx, dy)
		}
	}
	tb.handle.onDragEnd = func() {
		if tb.dragEndHandler != nil {
			tb.dragEndHandler()
		}
	}
	tb.handle.onDoubleTapped = tb.onMaximize

	tb.selector = newKeySelect(func(name string) {
		if tb.updating || tb.dictionaryHandler == nil {
			return
		}
		tb.dictionaryHandler(name)
	})
	tb.selector.PlaceHolder = "(no dictionaries)"

	tb.description = widget.NewLabel("")
	tb.description.Truncation = fyne.TextTruncateEllipsis

	tb.maximize = widget.NewButton(maximizeGlyph, tb.onMaximize)
	tb.maximize.Importance = widget.LowImportance
	tb.close = widget.NewButton(closeGlyph, func() {
		if tb.closeHandler != nil {
			tb.closeHandler()
		}
	})
	tb.close.Importance = widget.LowImportance
}

func (tb *TitleBar) buildLayout() {
	controls := container.NewBorder(nil, nil,
		tb.selector,
		container.NewHBox(tb.maximize, tb.close),
		tb.description,
	)
	tb.container = container.NewStack(tb.handle, controls)
}

func (tb *TitleBar) onMaximize() {
	if tb.maximizeHandler != nil {
		tb.maximizeHandler()
	}
}

func (tb *TitleBar) SetDictionaryHandler(handler func(string)) {
	tb.dictionaryHandler = handler
}

func (tb *TitleBar) SetMaximizeHandler(handler func()) {
	tb.maximizeHandler = handler
}

func (tb *TitleBar) SetCloseHandler(handler func()) {
	tb.closeHandler = handler
}

// SetKeyHandler receives key presses while the dictionary selector has
// keyboard focus.
func (tb *TitleBar) SetKeyHandler(handler func(*fyne.KeyEvent)) {
	tb.selector.onKeyDown = handler
}

func (tb *TitleBar) SetDragHandlers(dragged func(dx, dy float32), end func()) {
	tb.dragHandler = dragged
	tb.dragEndHandler = end
}

// SetDictionaries replaces the selector options without notifying the
// dictionary handler.
func (tb *TitleBar) SetDictionaries(names []string) {
	tb.updating = true
	defer func() { tb.updating = false }()

	tb.selector.SetOptions(names)
	tb.selector.ClearSelected()
}

// SetSelected shows name as the current dictionary without notifying the
// dictionary handler.
func (tb *TitleBar) SetSelected(name string) {
	tb.updating = true
	defer func() { tb.updating = false }()

	tb.selector.SetSelected(name)
}

func (tb *TitleBar) Selected() string {
	return tb.selector.Selected
}

func (tb *TitleBar) SetDescription(text string) {
	tb.description.SetText(text)
}

func (tb *TitleBar) Description() string {
	return tb.description.Text
}

func (tb *TitleBar) GetContainer() *fyne.Container {
	return tb.container
}

// keySelect is a widget.Select that reports raw key presses while focused.
type keySelect struct {
	widget.Select
	onKeyDown func(*fyne.KeyEvent)
}

var _ desktop.Keyable = (*keySelect)(nil)

func newKeySelect(changed func(string)) *keySelect {
	s := &keySelect{}
	s.OnChanged = changed
	s.ExtendBaseWidget(s)
	return s
}

func (s *keySelect) KeyDown(e *fyne.KeyEvent) {
	if s.onKeyDown != nil {
		s.onKeyDown(e)
	}
}

func (s *keySelect) KeyUp(*fyne.KeyEvent) {}

// dragHandle is the draggable background of the title bar.
type dragHandle struct {
	widget.BaseWidget
	background color.Color

	onDragged      func(dx, dy float32)
	onDragEnd      func()
	onDoubleTapped func()
}

var (
	_ fyne.Draggable      = (*dragHandle)(nil)
	_ fyne.DoubleTappable = (*dragHandle)(nil)
)

func newDragHandle(background color.Color) *dragHandle {
	h := &dragHandle{background: background}
	h.ExtendBaseWidget(h)
	return h
}

func (h *dragHandle) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(h.background)
	rect.SetMinSize(fyne.NewSize(0, 30))
	return widget.NewSimpleRenderer(rect)
}

func (h *dragHandle) Dragged(e *fyne.DragEvent) {
	if h.onDragged != nil {
		h.onDragged(e.Dragged.DX, e.Dragged.DY)
	}
}

func (h *dragHandle) DragEnd() {
	if h.onDragEnd != nil {
		h.onDragEnd()
	}
}

func (h *dragHandle) DoubleTapped(_ *fyne.PointEvent) {
	if h.onDoubleTapped != nil {
		h.onDoubleTapped()
	}
}

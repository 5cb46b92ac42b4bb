package components

import (
	"dictview/internal/dictionary"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// WordList shows the words of the active dictionary in source order.
type WordList struct {
	list     *keyList
	entries  []dictionary.Entry
	selected widget.ListItemID

	selectHandler func(int)
	updating      bool
}

func NewWordList() *WordList {
	wl := &WordList{selected: -1}
	wl.list = newKeyList(
		func() int {
			return len(wl.entries)
		},
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < len(wl.entries) {
				item.(*widget.Label).SetText(wl.entries[id].Word)
			}
		},
	)
	wl.list.OnSelected = func(id widget.ListItemID) {
		wl.selected = id
		if wl.updating || wl.selectHandler == nil {
			return
		}
		wl.selectHandler(id)
	}
	return wl
}

func (wl *WordList) SetSelectHandler(handler func(int)) {
	wl.selectHandler = handler
}

// SetKeyHandler receives key presses while the list has keyboard focus,
// which it takes as soon as a word is clicked.
func (wl *WordList) SetKeyHandler(handler func(*fyne.KeyEvent)) {
	wl.list.onKeyDown = handler
}

// SetEntries replaces the whole list and clears the selection.
func (wl *WordList) SetEntries(entries []dictionary.Entry) {
	wl.updating = true
	defer func() { wl.updating = false }()

	wl.entries = entries
	wl.selected = -1
	wl.list.UnselectAll()
	wl.list.Refresh()
	wl.list.ScrollToTop()
}

// Select highlights entry i without notifying the select handler.
func (wl *WordList) Select(i int) {
	if i < 0 || i >= len(wl.entries) {
		return
	}
	wl.updating = true
	defer func() { wl.updating = false }()

	wl.list.Select(i)
	wl.selected = i
}

func (wl *WordList) Selected() int {
	return wl.selected
}

func (wl *WordList) Len() int {
	return len(wl.entries)
}

func (wl *WordList) GetWidget() fyne.CanvasObject {
	return wl.list
}

// keyList is a widget.List that also reports raw key presses, since the
// canvas key hook is bypassed while a widget holds focus.
type keyList struct {
	widget.List
	onKeyDown func(*fyne.KeyEvent)
}

var _ desktop.Keyable = (*keyList)(nil)

func newKeyList(
	length func() int,
	createItem func() fyne.CanvasObject,
	updateItem func(widget.ListItemID, fyne.CanvasObject),
) *keyList {
	l := &keyList{}
	l.Length = length
	l.CreateItem = createItem
	l.UpdateItem = updateItem
	l.ExtendBaseWidget(l)
	return l
}

func (l *keyList) KeyDown(e *fyne.KeyEvent) {
	if l.onKeyDown != nil {
		l.onKeyDown(e)
	}
}

func (l *keyList) KeyUp(*fyne.KeyEvent) {}

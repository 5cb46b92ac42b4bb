package controllers

import (
	"dictview/internal/dictionary"
	"dictview/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/controllers/mock_interfaces.go -package=mock_controllers

// View is the presentation surface driven by MainController. Setters never
// call back into the EventHandler.
type View interface {
	SetDictionaries(names []string)
	SetSelectedDictionary(name string)
	SetTitle(title string)
	SetDictionaryDescription(text string)
	SetEntries(entries []dictionary.Entry)
	SelectEntry(index int)
	SetDetail(text string)
	SetFontSize(size float32)
	ResizeWindow(size models.Size)
}

// NativeWindow exposes what fyne does not: the screen, the cursor and the
// window position in screen coordinates. Every method reports false when
// the platform cannot answer.
type NativeWindow interface {
	ScreenSize() (models.Size, bool)
	CursorPosition() (models.Point, bool)
	Position() (models.Point, bool)
	Move(p models.Point) bool
}

// EventHandler receives every user interaction of the main window.
type EventHandler interface {
	DictionarySelected(name string)
	EntrySelected(index int)
	KeyTyped(r rune)
	TitleBarDragged(dx, dy float32)
	TitleBarDragEnd()
	MaximizeToggled()
	QuitRequested()
}

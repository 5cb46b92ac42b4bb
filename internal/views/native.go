package views

import (
	"dictview/internal/controllers"
	"dictview/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

// NativeWindow reaches below fyne for the window position, the cursor and
// the screen size. Coordinates are converted from device pixels to fyne
// units with the canvas scale.
//
// Only Windows is supported. Elsewhere every query reports false and Move
// leaves the window where it is, so drag-move and the maximize reposition
// do nothing and the screen size has to come from configuration.
type NativeWindow struct {
	window fyne.Window
}

var _ controllers.NativeWindow = (*NativeWindow)(nil)

func NewNativeWindow(window fyne.Window) *NativeWindow {
	return &NativeWindow{window: window}
}

func (n *NativeWindow) ScreenSize() (models.Size, bool) {
	w, h, ok := platformScreenSize()
	if !ok {
		return models.Size{}, false
	}
	s := n.scale()
	return models.Size{Width: float32(w) / s, Height: float32(h) / s}, true
}

func (n *NativeWindow) CursorPosition() (models.Point, bool) {
	x, y, ok := platformCursorPosition()
	if !ok {
		return models.Point{}, false
	}
	return n.toUnits(x, y), true
}

func (n *NativeWindow) Position() (models.Point, bool) {
	handle, ok := n.handle()
	if !ok {
		return models.Point{}, false
	}
	x, y, ok := platformWindowPosition(handle)
	if !ok {
		return models.Point{}, false
	}
	return n.toUnits(x, y), true
}

func (n *NativeWindow) Move(p models.Point) bool {
	handle, ok := n.handle()
	if !ok {
		return false
	}
	s := n.scale()
	return platformMoveWindow(handle, int32(p.X*s), int32(p.Y*s))
}

func (n *NativeWindow) toUnits(x, y int32) models.Point {
	s := n.scale()
	return models.Point{X: float32(x) / s, Y: float32(y) / s}
}

func (n *NativeWindow) scale() float32 {
	if c := n.window.Canvas(); c != nil && c.Scale() > 0 {
		return c.Scale()
	}
	return 1
}

// handle returns the platform window handle, if the driver exposes one
// this package knows how to use.
func (n *NativeWindow) handle() (uintptr, bool) {
	nw, ok := n.window.(driver.NativeWindow)
	if !ok {
		return 0, false
	}

	var handle uintptr
	nw.RunNative(func(ctx any) {
		handle = platformHandle(ctx)
	})
	return handle, handle != 0
}

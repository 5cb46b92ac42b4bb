//go:build windows

package views

import (
	"unsafe"

	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

const (
	smCxScreen = 0
	smCyScreen = 1

	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
	procGetCursorPos     = user32.NewProc("GetCursorPos")
	procGetWindowRect    = user32.NewProc("GetWindowRect")
	procSetWindowPos     = user32.NewProc("SetWindowPos")
)

type point struct {
	X, Y int32
}

func platformHandle(ctx any) uintptr {
	switch c := ctx.(type) {
	case driver.WindowsWindowContext:
		return c.HWND
	case *driver.WindowsWindowContext:
		return c.HWND
	}
	return 0
}

func platformScreenSize() (int32, int32, bool) {
	if procGetSystemMetrics.Find() != nil {
		return 0, 0, false
	}
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	h, _, _ := procGetSystemMetrics.Call(smCyScreen)
	if w == 0 || h == 0 {
		return 0, 0, false
	}
	return int32(w), int32(h), true
}

func platformCursorPosition() (int32, int32, bool) {
	if procGetCursorPos.Find() != nil {
		return 0, 0, false
	}
	var p point
	if r, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p))); r == 0 {
		return 0, 0, false
	}
	return p.X, p.Y, true
}

func platformWindowPosition(handle uintptr) (int32, int32, bool) {
	if procGetWindowRect.Find() != nil {
		return 0, 0, false
	}
	var rect windows.Rect
	if r, _, _ := procGetWindowRect.Call(handle, uintptr(unsafe.Pointer(&rect))); r == 0 {
		return 0, 0, false
	}
	return rect.Left, rect.Top, true
}

func platformMoveWindow(handle uintptr, x, y int32) bool {
	if procSetWindowPos.Find() != nil {
		return false
	}
	r, _, _ := procSetWindowPos.Call(
		handle,
		0,
		uintptr(x),
		uintptr(y),
		0,
		0,
		swpNoSize|swpNoZOrder|swpNoActivate,
	)
	return r != 0
}

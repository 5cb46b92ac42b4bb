//go:build !windows

package views

// Window placement is left to the window manager outside Windows; the
// controller keeps tracking geometry and falls back to configured values.

func platformHandle(any) uintptr { return 0 }

func platformScreenSize() (int32, int32, bool) { return 0, 0, false }

func platformCursorPosition() (int32, int32, bool) { return 0, 0, false }

func platformWindowPosition(uintptr) (int32, int32, bool) { return 0, 0, false }

func platformMoveWindow(uintptr, int32, int32) bool { return false }

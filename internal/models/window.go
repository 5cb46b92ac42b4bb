package models

import "dictview/internal/config"

const (
	maximizeRatio     = 0.7
	maximizeMinWidth  = 600
	maximizeMinHeight = 500
)

type Point struct {
	X, Y float32
}

type Size struct {
	Width, Height float32
}

type Geometry struct {
	Position Point
	Size     Size
}

// WindowState tracks the borderless window's geometry, maximize toggle,
// title bar drag and text size.
type WindowState struct {
	geometry  Geometry
	saved     Geometry
	maximized bool

	fontSize          float32
	defaultFontSize   float32
	minFontSize       float32
	maximizeIncrement float32

	dragging   bool
	dragOrigin Point
	dragStart  Point
	pointer    Point
}

func NewWindowState(font config.FontConfig, size Size) *WindowState {
	return &WindowState{
		geometry:          Geometry{Size: size},
		fontSize:          font.DefaultSize,
		defaultFontSize:   font.DefaultSize,
		minFontSize:       font.MinSize,
		maximizeIncrement: font.MaximizeIncrement,
	}
}

func (w *WindowState) FontSize() float32 {
	return w.fontSize
}

// IncreaseFont has no upper bound.
func (w *WindowState) IncreaseFont() float32 {
	w.fontSize++
	return w.fontSize
}

// DecreaseFont stops at the configured minimum.
func (w *WindowState) DecreaseFont() float32 {
	if w.fontSize-1 >= w.minFontSize {
		w.fontSize--
	}
	return w.fontSize
}

func (w *WindowState) ResetFont() float32 {
	w.fontSize = w.defaultFontSize
	return w.fontSize
}

func (w *WindowState) Geometry() Geometry {
	return w.geometry
}

func (w *WindowState) SetPosition(p Point) {
	w.geometry.Position = p
}

func (w *WindowState) SetSize(s Size) {
	w.geometry.Size = s
}

func (w *WindowState) Maximized() bool {
	return w.maximized
}

// ToggleMaximize switches between the saved geometry and a centered window
// covering most of the screen, and returns the geometry to apply. The text
// grows while maximized and goes back to the default size on restore.
func (w *WindowState) ToggleMaximize(screen Size) Geometry {
	if w.maximized {
		w.geometry = w.saved
		w.fontSize = w.defaultFontSize
		w.maximized = false
		return w.geometry
	}

	w.saved = w.geometry
	width := max(maximizeMinWidth, float32(int(float64(screen.Width)*maximizeRatio)))
	height := max(maximizeMinHeight, float32(int(float64(screen.Height)*maximizeRatio)))
	w.geometry = Geometry{
		Position: Point{
			X: max(0, float32(int((screen.Width-width)/2))),
			Y: max(0, float32(int((screen.Height-height)/4))),
		},
		Size: Size{Width: width, Height: height},
	}
	w.fontSize = w.defaultFontSize + w.maximizeIncrement
	w.maximized = true
	return w.geometry
}

// BeginDrag records where the window and the pointer were when the title
// bar was grabbed.
func (w *WindowState) BeginDrag(origin, pointer Point) {
	w.dragging = true
	w.dragOrigin = origin
	w.dragStart = pointer
	w.pointer = pointer
	w.geometry.Position = origin
}

func (w *WindowState) Dragging() bool {
	return w.dragging
}

// DragTo returns the window origin for an absolute pointer position: the
// window moves by as much as the pointer did since BeginDrag.
func (w *WindowState) DragTo(pointer Point) Point {
	if !w.dragging {
		w.BeginDrag(w.geometry.Position, pointer)
	}
	w.pointer = pointer
	w.geometry.Position = Point{
		X: w.dragOrigin.X + pointer.X - w.dragStart.X,
		Y: w.dragOrigin.Y + pointer.Y - w.dragStart.Y,
	}
	return w.geometry.Position
}

// Drag is DragTo for callers that only know the pointer movement.
func (w *WindowState) Drag(dx, dy float32) Point {
	if !w.dragging {
		w.BeginDrag(w.geometry.Position, w.pointer)
	}
	return w.DragTo(Point{X: w.pointer.X + dx, Y: w.pointer.Y + dy})
}

func (w *WindowState) EndDrag() {
	w.dragging = false
}

package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DetailPane shows the description of the selected word.
type DetailPane struct {
	container *container.Scroll
	label     *widget.Label
}

func NewDetailPane() *DetailPane {
	label := widget.NewLabel("")
	label.Wrapping = fyne.TextWrapWord
	return &DetailPane{
		label:     label,
		container: container.NewVScroll(label),
	}
}

func (dp *DetailPane) SetText(text string) {
	dp.label.SetText(text)
	dp.container.ScrollToTop()
}

func (dp *DetailPane) Text() string {
	return dp.label.Text
}

func (dp *DetailPane) GetContainer() fyne.CanvasObject {
	return dp.container
}

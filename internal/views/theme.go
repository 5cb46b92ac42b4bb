package views

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"dictview/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette holds the viewer colors.
type Palette struct {
	Foreground color.Color
	Background color.Color
	TitleBar   color.Color
	Selection  color.Color
}

// NewPalette parses the configured hex colors, keeping the default for any
// value that does not parse.
func NewPalette(c config.ColorConfig) Palette {
	d := config.Default().Colors
	return Palette{
		Foreground: parseOr(c.Foreground, d.Foreground),
		Background: parseOr(c.Background, d.Background),
		TitleBar:   parseOr(c.TitleBar, d.TitleBar),
		Selection:  parseOr(c.Selection, d.Selection),
	}
}

func parseOr(s, fallback string) color.Color {
	if c, err := ParseHexColor(s); err == nil {
		return c
	}
	c, _ := ParseHexColor(fallback)
	return c
}

// ParseHexColor accepts "#RRGGBB" and "#RRGGBBAA".
func ParseHexColor(s string) (color.NRGBA, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	switch len(b) {
	case 3:
		return color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}, nil
	case 4:
		return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
	}
	return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
}

// viewerTheme is a dark theme built from the palette with an adjustable
// text size.
type viewerTheme struct {
	palette  Palette
	textSize float32
}

var _ fyne.Theme = (*viewerTheme)(nil)

func newViewerTheme(p Palette, textSize float32) *viewerTheme {
	return &viewerTheme{palette: p, textSize: textSize}
}

func (t *viewerTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameForeground, theme.ColorNamePrimary, theme.ColorNameFocus:
		return t.palette.Foreground
	case theme.ColorNameBackground, theme.ColorNameInputBackground:
		return t.palette.Background
	case theme.ColorNameButton, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground, theme.ColorNameHeaderBackground:
		return t.palette.TitleBar
	case theme.ColorNameSelection, theme.ColorNameHover, theme.ColorNamePressed:
		return t.palette.Selection
	case theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return t.palette.TitleBar
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (t *viewerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *viewerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *viewerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return t.textSize
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameScrollBar:
		return 8
	case theme.SizeNameSeparatorThickness:
		return 1
	}
	return theme.DefaultTheme().Size(name)
}

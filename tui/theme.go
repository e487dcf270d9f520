package tui

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v3"
)

var ErrUnknownTheme = errors.New("unknown theme")

const DefaultTheme = "nord"

type Theme struct {
	Name     string
	bg       tcell.Color
	fg       tcell.Color
	border   tcell.Color
	headerFg tcell.Color
	statusBg tcell.Color
	statusFg tcell.Color
	sizeFg   tcell.Color
	pctFg    tcell.Color
}

var themes = map[string]Theme{
	"plain": {
		Name:     "Plain",
		bg:       tcell.NewRGBColor(0, 0, 0),
		fg:       tcell.NewRGBColor(255, 255, 255),
		border:   tcell.NewRGBColor(255, 255, 255),
		headerFg: tcell.NewRGBColor(255, 255, 255),
		statusBg: tcell.NewRGBColor(0, 0, 0),
		statusFg: tcell.NewRGBColor(255, 255, 255),
		sizeFg:   tcell.NewRGBColor(255, 255, 255),
		pctFg:    tcell.NewRGBColor(255, 255, 255),
	},
	"gruvbox-dark": {
		Name:     "Gruvbox Dark",
		bg:       tcell.NewRGBColor(40, 40, 40),
		fg:       tcell.NewRGBColor(235, 219, 178),
		border:   tcell.NewRGBColor(146, 131, 116),
		headerFg: tcell.NewRGBColor(214, 93, 14),
		statusBg: tcell.NewRGBColor(214, 93, 14),
		statusFg: tcell.NewRGBColor(60, 56, 54),
		sizeFg:   tcell.NewRGBColor(215, 153, 33),
		pctFg:    tcell.NewRGBColor(104, 157, 106),
	},
	"nord": {
		Name:     "Nord",
		bg:       tcell.NewRGBColor(46, 52, 64),
		fg:       tcell.NewRGBColor(216, 222, 233),
		border:   tcell.NewRGBColor(67, 76, 94),
		headerFg: tcell.NewRGBColor(136, 192, 208),
		statusBg: tcell.NewRGBColor(129, 161, 193),
		statusFg: tcell.NewRGBColor(46, 52, 64),
		sizeFg:   tcell.NewRGBColor(235, 203, 139),
		pctFg:    tcell.NewRGBColor(163, 190, 140),
	},
	"catppuccin": {
		Name:     "Catppuccin Mocha",
		bg:       tcell.NewRGBColor(30, 30, 46),
		fg:       tcell.NewRGBColor(205, 214, 244),
		border:   tcell.NewRGBColor(110, 109, 128),
		headerFg: tcell.NewRGBColor(203, 166, 247),
		statusBg: tcell.NewRGBColor(137, 180, 250),
		statusFg: tcell.NewRGBColor(30, 30, 46),
		sizeFg:   tcell.NewRGBColor(249, 226, 175),
		pctFg:    tcell.NewRGBColor(166, 227, 161),
	},
	"dracula": {
		Name:     "Dracula",
		bg:       tcell.NewRGBColor(40, 42, 54),
		fg:       tcell.NewRGBColor(248, 248, 242),
		border:   tcell.NewRGBColor(68, 71, 90),
		headerFg: tcell.NewRGBColor(139, 233, 253),
		statusBg: tcell.NewRGBColor(189, 147, 249),
		statusFg: tcell.NewRGBColor(40, 42, 54),
		sizeFg:   tcell.NewRGBColor(255, 184, 108),
		pctFg:    tcell.NewRGBColor(80, 250, 123),
	},
}

// LookupTheme returns the theme registered under name.
func LookupTheme(name string) (Theme, error) {
	th, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w %q, available: %v", ErrUnknownTheme, name, ThemeNames())
	}
	return th, nil
}

// ThemeNames returns the registered theme names, sorted.
func ThemeNames() []string {
	var names []string
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

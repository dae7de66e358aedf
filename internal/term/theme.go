package term

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// Theme is used for coloring the terminal board
type Theme struct {
	Name        string      `json:"name"`
	SquareLight tcell.Color `json:"squareLight"`
	SquareDark  tcell.Color `json:"squareDark"`
	White       tcell.Color `json:"white"`
	Black       tcell.Color `json:"black"`
	Rank        tcell.Color `json:"rank"`
	File        tcell.Color `json:"file"`
	Msg         tcell.Color `json:"msg"`
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",        // Name
	tcell.Color230, // SquareLight
	tcell.Color188, // SquareDark
	tcell.Color124, // White
	tcell.Color232, // Black
	tcell.Color247, // Rank
	tcell.Color247, // File
	tcell.Color160, // Msg
}

// ThemeContrast trades the beige squares for plain black and white
var ThemeContrast = Theme{
	"contrast",         // Name
	tcell.ColorWhite,   // SquareLight
	tcell.Color245,     // SquareDark
	tcell.ColorRed,     // White
	tcell.ColorBlack,   // Black
	tcell.ColorDefault, // Rank
	tcell.ColorDefault, // File
	tcell.ColorYellow,  // Msg
}

// ThemeByName returns one of the built-in themes
func ThemeByName(name string) (Theme, error) {
	for _, t := range []Theme{ThemeBasic, ThemeContrast} {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, errors.New("theme: no theme found")
}

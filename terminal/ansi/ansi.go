// This file is part of ZGopher.
//
// ZGopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ZGopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ZGopher.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi defines ANSI control codes for styles, colours and cursor
// positioning.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYelow   = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
const (
	attrBold      = 1
	attrItalic    = 3
	attrUnderline = 4
	attrInverse   = 7
	attrStrike    = 9
)

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

// colour names in the order of the ansi colour numbers
var colourNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	// none of these can fail
	NormalPen, _ = ColorBuild("", "", "", false, false)

	for _, col := range colourNames {
		Pens[col], _ = ColorBuild(col, "normal", "", true, false)
		DimPens[col], _ = ColorBuild(col, "normal", "", false, false)
	}

	for _, style := range []string{"bold", "italic", "underline", "inverse"} {
		PenStyles[style], _ = ColorBuild("", "", style, false, false)
	}
}

func colour(c string) (int, error) {
	switch strings.ToUpper(c) {
	case "BLACK":
		return colBlack, nil
	case "RED":
		return colRed, nil
	case "GREEN":
		return colGreen, nil
	case "YELLOW":
		return colYelow, nil
	case "BLUE":
		return colBlue, nil
	case "MAGENTA":
		return colMagenta, nil
	case "CYAN":
		return colCyan, nil
	case "WHITE":
		return colWhite, nil
	case "NORMAL":
		return colDefault, nil
	}
	return 0, fmt.Errorf("unknown ANSI colour (%s)", c)
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	s := strings.Builder{}
	s.Grow(32)
	s.WriteString("\033[")

	if pen != "" {
		penType := targetPen
		if brightPen {
			penType = targetBrightPen
		}
		c, err := colour(pen)
		if err != nil {
			return "", err
		}
		s.WriteString(fmt.Sprintf("%d%d", penType, c))
	}

	if paper != "" {
		if s.Len() > 2 {
			s.WriteString(";")
		}
		paperType := targetPaper
		if brightPaper {
			paperType = targetBrightPaper
		}
		c, err := colour(paper)
		if err != nil {
			return "", err
		}
		s.WriteString(fmt.Sprintf("%d%d", paperType, c))
	}

	if attribute != "" {
		if s.Len() > 2 {
			s.WriteString(";")
		}
		switch strings.ToUpper(attribute) {
		case "BOLD":
			s.WriteString(fmt.Sprintf("%d", attrBold))
		case "ITALIC":
			s.WriteString(fmt.Sprintf("%d", attrItalic))
		case "UNDERLINE":
			s.WriteString(fmt.Sprintf("%d", attrUnderline))
		case "INVERSE":
			s.WriteString(fmt.Sprintf("%d", attrInverse))
		case "STRIKE":
			s.WriteString(fmt.Sprintf("%d", attrStrike))
		case "NORMAL":
		default:
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
	}

	// terminate ANSI sequence
	s.WriteString("m")

	return s.String(), nil
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// ClearToEndOfLine is the CSI sequence to clear from the cursor to the end of
// the line.
const ClearToEndOfLine = "\033[K"

// ClearScreen is the CSI sequence to clear the entire screen.
const ClearScreen = "\033[2J"

// CursorStore is the sequence to store the current cursor position and
// attributes.
const CursorStore = "\0337"

// CursorRestore is the sequence to restore the cursor position and
// attributes to a previous store.
const CursorRestore = "\0338"

// ResetScrollRegion is the CSI sequence to make the entire screen scroll.
const ResetScrollRegion = "\033[r"

// CursorTo is the CSI sequence to move the cursor to the line and column.
// The top left of the screen is line 1, column 1.
func CursorTo(line int, column int) string {
	return fmt.Sprintf("\033[%d;%dH", line, column)
}

// ScrollRegion is the CSI sequence to limit scrolling to the lines between
// top and bottom inclusive.
func ScrollRegion(top int, bottom int) string {
	return fmt.Sprintf("\033[%d;%dr", top, bottom)
}

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

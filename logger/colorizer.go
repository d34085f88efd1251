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

package logger

import (
	"io"
	"strings"

	"github.com/zgopher/zgopher/terminal/ansi"
)

// Colorizer applies basic coloring rules to logging output. The tag is
// written in the normal pen and the detail in a dim pen.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := strings.TrimSpace(string(p))
	if len(s) == 0 {
		return 0, nil
	}

	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		return c.out.Write([]byte(s + "\n"))
	}

	pen := ansi.DimPens["yellow"]
	if tag == "warning" {
		pen = ansi.DimPens["red"]
	}

	return c.out.Write([]byte(tag + ": " + pen + detail + ansi.NormalPen + "\n"))
}

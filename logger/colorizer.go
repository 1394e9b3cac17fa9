// This file is part of Thumbpatch.
//
// Thumbpatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Thumbpatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Thumbpatch.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is highlighted and entries with the "warning" suffix in the tag are
// drawn in yellow.
type Colorizer struct {
	out  io.Writer
	tag  *color.Color
	warn *color.Color
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
//
// Whether color is actually output is decided by the fatih/color package. In
// particular, color is not output if the NO_COLOR environment variable is
// set or if stdout is not a terminal.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out:  out,
		tag:  color.New(color.FgCyan),
		warn: color.New(color.FgYellow, color.Bold),
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := string(p)
	for _, l := range strings.SplitAfter(s, "\n") {
		if l == "" {
			continue
		}

		tag, detail, ok := strings.Cut(l, ": ")
		if !ok {
			_, err = io.WriteString(c.out, l)
		} else if strings.HasSuffix(tag, "warning") {
			_, err = io.WriteString(c.out, c.warn.Sprintf("%s: %s", tag, detail))
		} else {
			_, err = io.WriteString(c.out, c.tag.Sprint(tag)+": "+detail)
		}
		if err != nil {
			return 0, err
		}
	}

	// report the number of bytes consumed not the number of bytes written
	return len(p), nil
}

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

// Package report writes a human readable description of each patch as it is
// applied to a firmware image. The changed bytes are shown as a hex dump of the
// image before and after the patch.
//
// The Observe() function of the Report type can be used as the Observer of an
// engine.Engine or a firmware.Patcher.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jetsetilly/thumbpatch/engine"
	"github.com/jetsetilly/thumbpatch/patch"
	"github.com/jetsetilly/thumbpatch/thumb"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// the number of bytes in each row of the hex dump
const rowSize = 16

// the maximum number of rows shown for a single patch
const maxRows = 8

// indentation of everything after the first line of a step
const indent = "     "

// Report writes a description of each patch to an io.Writer.
type Report struct {
	w   io.Writer
	dmp *diffmatchpatch.DiffMatchPatch

	// colours are only used if the useColor argument to NewReport() is true.
	// differences are marked with brackets otherwise
	useColor bool
	header   func(a ...any) string
	deleted  func(a ...any) string
	inserted func(a ...any) string
	warning  func(a ...any) string

	// number of steps observed
	Steps int
}

// NewReport is the preferred method of initialisation for the Report type.
func NewReport(w io.Writer, useColor bool) *Report {
	r := &Report{
		w:        w,
		dmp:      diffmatchpatch.New(),
		useColor: useColor,
	}

	r.header = r.colour(color.New(color.Bold))
	r.deleted = r.colour(color.New(color.FgRed))
	r.inserted = r.colour(color.New(color.FgGreen))
	r.warning = r.colour(color.New(color.FgYellow, color.Bold))

	return r
}

// colour returns the SprintFunc() of the color. colours are forced on or off
// depending on the useColor field, regardless of the terminal
func (r *Report) colour(c *color.Color) func(a ...any) string {
	if r.useColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

// Observe writes the description of a single step. It can be used as an
// engine Observer.
func (r *Report) Observe(s engine.Step) {
	r.Steps++

	fmt.Fprintf(r.w, "%3d: %s\n", s.Index, r.header(s.Patch.String()))

	switch p := s.Patch.(type) {
	case *patch.BranchCall:
		if target, ok := thumb.DecodeBL(uint32(p.Position), p.Payload()); ok {
			fmt.Fprintf(r.w, "%starget 0x%08x (opcode %08x)\n", indent, target, thumb.Opcode(uint32(p.Position), p.Target))
		}
		if !thumb.InRange(uint32(p.Position), p.Target) {
			fmt.Fprintf(r.w, "%s%s\n", indent, r.warning("warning: target is out of range"))
		}
	case *patch.SearchReplace:
		if p.Offset() < 0 {
			fmt.Fprintf(r.w, "%sno match\n", indent)
			return
		}
		fmt.Fprintf(r.w, "%sreplaced at 0x%08x\n", indent, p.Offset())
	}

	lo, hi := changed(s.Before, s.After)
	if lo == hi {
		fmt.Fprintf(r.w, "%sno change\n", indent)
		return
	}

	start := lo - lo%rowSize
	rows := (hi - start + rowSize - 1) / rowSize

	for i := range min(rows, maxRows) {
		a := start + i*rowSize
		b := a + rowSize
		fmt.Fprintf(r.w, "%s%08x  %s\n", indent, a, r.row(slice(s.Before, a, b), slice(s.After, a, b)))
	}

	if rows > maxRows {
		fmt.Fprintf(r.w, "%s... (%d more rows)\n", indent, rows-maxRows)
	}
}

// Summary writes the number of steps observed and the size of the final
// image.
func (r *Report) Summary(size int) {
	fmt.Fprintf(r.w, "%d patches applied. image is %d bytes\n", r.Steps, size)
}

// row returns the difference between two rows of the hex dump
func (r *Report) row(before []byte, after []byte) string {
	diffs := r.dmp.DiffMainRunes(toRunes(before), toRunes(after), false)

	s := make([]string, 0, len(diffs))
	for _, d := range diffs {
		h := hexdump(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			s = append(s, h)
		case diffmatchpatch.DiffDelete:
			if r.useColor {
				s = append(s, r.deleted(h))
			} else {
				s = append(s, fmt.Sprintf("[-%s-]", h))
			}
		case diffmatchpatch.DiffInsert:
			if r.useColor {
				s = append(s, r.inserted(h))
			} else {
				s = append(s, fmt.Sprintf("{+%s+}", h))
			}
		}
	}

	return strings.Join(s, " ")
}

// changed returns the range of bytes that differ between the two images
func changed(before []byte, after []byte) (int, int) {
	n := max(len(before), len(after))

	lo := 0
	for lo < n && at(before, lo) == at(after, lo) {
		lo++
	}
	if lo == n {
		return n, n
	}

	hi := n
	for hi > lo && at(before, hi-1) == at(after, hi-1) {
		hi--
	}

	return lo, hi
}

// at returns the byte at index i or -1 if the index is out of range
func at(d []byte, i int) int {
	if i >= len(d) {
		return -1
	}
	return int(d[i])
}

// slice returns the part of d between a and b, clamped to the length of d
func slice(d []byte, a int, b int) []byte {
	if a >= len(d) {
		return nil
	}
	return d[a:min(b, len(d))]
}

// bytes are converted to runes outside of the ASCII range so that every
// value can be represented in a string
const runeBase = 0x100

func toRunes(d []byte) []rune {
	r := make([]rune, len(d))
	for i, b := range d {
		r[i] = rune(b) + runeBase
	}
	return r
}

func hexdump(s string) string {
	h := make([]string, 0, len(s))
	for _, r := range s {
		h = append(h, fmt.Sprintf("%02x", byte(r-runeBase)))
	}
	return strings.Join(h, " ")
}

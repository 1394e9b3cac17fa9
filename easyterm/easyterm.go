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

//go:build linux || darwin || freebsd

package easyterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	// not which files we're using for input and output
	if inputFile == nil {
		return fmt.Errorf("easyterm Terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm Terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}

// Confirm prints the prompt and waits for a single key press. Returns true if
// the key was 'y' or 'Y'. The terminal is always returned to canonical mode.
func (pt *Terminal) Confirm(prompt string) (bool, error) {
	pt.Print("%s [y/N] ", prompt)

	err := pt.Flush()
	if err != nil {
		return false, fmt.Errorf("easyterm: %w", err)
	}
	pt.CBreakMode()
	defer pt.CanonicalMode()

	b := make([]byte, 1)
	_, err = pt.input.Read(b)
	pt.Print("\n")
	if err != nil {
		return false, fmt.Errorf("easyterm: %w", err)
	}

	return Answer(string(b)), nil
}

// Confirm asks the question on the terminal attached to input and output. If
// input is not a terminal then a line is read from it instead.
func Confirm(input, output *os.File, prompt string) (bool, error) {
	if !IsTerminal(input) {
		fmt.Fprintf(output, "%s [y/N] ", prompt)
		return ReadAnswer(input)
	}

	var pt Terminal
	err := pt.Initialise(input, output)
	if err != nil {
		return false, err
	}
	return pt.Confirm(prompt)
}

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

package easyterm

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// IsTerminal returns true if the file is a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Answer interprets the string as the answer to a yes/no question. Only an
// answer beginning with 'y' or 'Y' is a yes.
func Answer(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "y") || strings.HasPrefix(s, "Y")
}

// ReadAnswer reads a single line from the reader and interprets it with the
// Answer() function. End of file is a no.
func ReadAnswer(r io.Reader) (bool, error) {
	s, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	return Answer(s), nil
}

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

// Package archivefs reads files from the file system, including files that
// are stored inside zip archives. A file inside an archive is specified by
// treating the archive as a directory:
//
//	firmware/update.zip/image.bin
//
// An archive that contains exactly one file can be specified on its own and
// that file will be read.
package archivefs

import (
	"github.com/jetsetilly/thumbpatch/curated"
)

// Error is the pattern used for all errors returned by the package.
const Error = "archivefs: %v"

// ReadFile returns the contents of the named file. The filename can be inside
// an archive.
func ReadFile(filename string) ([]byte, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, err
	}
	defer afs.Close()
	return afs.ReadAll()
}

// IsArchive returns true if the named file is a zip archive. It is not an
// error for the file to not exist.
func IsArchive(filename string) bool {
	var afs Path
	if afs.Set(filename) != nil {
		return false
	}
	defer afs.Close()
	return afs.InArchive() && afs.inZipPath == "" && afs.inZipFile == ""
}

func errorf(err error) error {
	return curated.Errorf(Error, err)
}

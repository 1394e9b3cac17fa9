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

package archivefs

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Path represents a single file in the file system or in a zip archive.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// if the path is inside a zip file, we split the in-zip path into the path
	// to a directory and the file itself. in-zip paths always use forward
	// slashes
	inZipPath string
	inZipFile string
}

// String returns the current path
func (afs Path) String() string {
	return afs.current
}

// IsDir returns true if Path is currently set to a directory. The root of an
// archive is a directory unless the archive contains only one file.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Close any open zip files and reset path
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipPath = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// Set the path. Returns an error if any part of the path does not exist.
func (afs *Path) Set(pth string) error {
	afs.Close()

	// clean path and split into parts
	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	// reuse path string
	pth = ""

	for _, l := range lst {
		pth = filepath.Join(pth, l)

		if afs.zf != nil {
			if afs.inZipFile != "" {
				err := errorf(fmt.Errorf("%s: not a directory", afs.inZipFile))
				afs.Close()
				return err
			}

			p := path.Join(afs.inZipPath, l)

			zf, err := afs.zf.Open(p)
			if err != nil {
				afs.Close()
				return errorf(err)
			}

			zfi, err := zf.Stat()
			zf.Close()
			if err != nil {
				afs.Close()
				return errorf(err)
			}

			afs.isDir = zfi.IsDir()
			if afs.isDir {
				afs.inZipPath = p
			} else {
				afs.inZipFile = l
			}

		} else {
			fi, err := os.Stat(pth)
			if err != nil {
				return errorf(err)
			}

			afs.isDir = fi.IsDir()
			if afs.isDir {
				continue
			}

			afs.zf, err = zip.OpenReader(pth)
			if err == nil {
				// the root of an archive file is considered to be a directory
				afs.isDir = true
				continue
			}

			if !errors.Is(err, zip.ErrFormat) {
				return errorf(err)
			}
		}
	}

	// make sure path is clean
	afs.current = filepath.Clean(pth)

	return nil
}

// files returns the names of the regular files in the archive
func (afs Path) files() []string {
	var f []string
	for _, zf := range afs.zf.File {
		if !zf.FileInfo().IsDir() {
			f = append(f, zf.Name)
		}
	}
	return f
}

// ReadAll returns the contents of the file previously set by the Set()
// function.
func (afs Path) ReadAll() ([]byte, error) {
	if afs.zf != nil {
		name := path.Join(afs.inZipPath, afs.inZipFile)

		// the root of an archive with a single file is treated as that file
		if afs.inZipPath == "" && afs.inZipFile == "" {
			f := afs.files()
			if len(f) != 1 {
				return nil, errorf(fmt.Errorf("%s: archive contains %d files", afs.current, len(f)))
			}
			name = f[0]
		} else if afs.isDir {
			return nil, errorf(fmt.Errorf("%s: is a directory", afs.current))
		}

		f, err := afs.zf.Open(name)
		if err != nil {
			return nil, errorf(err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, errorf(err)
		}

		return b, nil
	}

	if afs.isDir {
		return nil, errorf(fmt.Errorf("%s: is a directory", afs.current))
	}

	b, err := os.ReadFile(afs.current)
	if err != nil {
		return nil, errorf(err)
	}
	return b, nil
}

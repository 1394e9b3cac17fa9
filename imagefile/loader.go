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

package imagefile

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/thumbpatch/archivefs"
	"github.com/jetsetilly/thumbpatch/curated"
)

// Error is the pattern used for all errors returned by the package.
const Error = "imagefile: %v"

// Loader is used to specify the image to load.
type Loader struct {
	// filename or URL of the image to load
	Filename string

	// expected hash of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not load the
	// data again
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The hash argument can be the empty string.
func NewLoader(filename string, hash string) Loader {
	return Loader{
		Filename: filename,
		Hash:     strings.ToLower(strings.TrimSpace(hash)),
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	s = strings.TrimSuffix(s, filepath.Ext(s))
	return s
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return ld.Data != nil
}

// scheme returns the URL scheme of the filename. a single letter scheme is a
// windows drive letter and is treated as a file
func (ld Loader) scheme() string {
	u, err := url.Parse(ld.Filename)
	if err != nil || len(u.Scheme) <= 1 {
		return "file"
	}
	return strings.ToLower(u.Scheme)
}

// Load the image data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP, HTTPS and
// local files.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	var data []byte

	switch ld.scheme() {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(Error, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(Error, fmt.Sprintf("%s: %s", ld.Filename, resp.Status))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(Error, err)
		}

	case "file":
		var err error

		fn := strings.TrimPrefix(ld.Filename, "file://")
		data, err = archivefs.ReadFile(fn)
		if err != nil {
			return curated.Errorf(Error, err)
		}

	default:
		return curated.Errorf(Error, fmt.Sprintf("unsupported URL scheme (%s)", ld.scheme()))
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(Error, fmt.Sprintf("unexpected hash value (%s)", hash))
	}

	// empty files are loaded as an empty but non-nil slice
	if data == nil {
		data = []byte{}
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

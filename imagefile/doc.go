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

// Package imagefile reads and writes firmware images.
//
// Images are read with the Loader type. The filename of a Loader can be a
// local file, a file inside a zip archive (see the archivefs package) or an
// HTTP/HTTPS URL. The simplest instance of the Loader type:
//
//	ld := imagefile.Loader{
//		Filename: "firmware/original.bin",
//	}
//
// A Loader can be given the expected SHA1 hash of the image. Load() will fail
// if the image does not match.
//
// Images are written with the Save() function. The file is either written
// completely or not at all.
//
// The FileSystem type wraps both operations for use by the firmware package.
package imagefile

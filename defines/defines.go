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

// Package defines parses the named configuration values that are passed to
// the code generator. On the command line the values are specified as a
// single string of key/value pairs:
//
//	"VERSION::3; DEBUG::1"
//
// Keys and values are separated by a double colon and pairs are separated by
// a semi-colon. Surrounding space is ignored.
package defines

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/thumbpatch/curated"
)

// Error is the pattern used for all errors returned by the package.
const Error = "defines: %v"

// Parse a defines string. An empty string results in an empty map. Later
// values for the same key replace the earlier value.
func Parse(s string) (map[string]string, error) {
	d := make(map[string]string)

	for _, p := range strings.Split(s, ";") {
		p = strings.TrimSpace(p)

		// allow empty pairs. this happens with a trailing semi-colon
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "::", 2)
		if len(kv) != 2 {
			return nil, curated.Errorf(Error, fmt.Sprintf("missing '::' in %q", p))
		}

		k := strings.TrimSpace(kv[0])
		if k == "" {
			return nil, curated.Errorf(Error, fmt.Sprintf("missing key in %q", p))
		}
		if strings.ContainsAny(k, " \t") {
			return nil, curated.Errorf(Error, fmt.Sprintf("space in key %q", k))
		}

		d[k] = strings.TrimSpace(kv[1])
	}

	return d, nil
}

// Merge returns a new map containing the entries of base and over. Entries in
// over replace entries in base with the same key. Either argument can be nil.
func Merge(base map[string]string, over map[string]string) map[string]string {
	d := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		d[k] = v
	}
	for k, v := range over {
		d[k] = v
	}
	return d
}

// Keys returns the keys of the map in sorted order.
func Keys(d map[string]string) []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the defines as a string that can be parsed with Parse(). The
// pairs are sorted by key.
func String(d map[string]string) string {
	s := strings.Builder{}
	for _, k := range Keys(d) {
		s.WriteString(fmt.Sprintf("%s::%s; ", k, d[k]))
	}
	return strings.TrimSuffix(s.String(), "; ")
}

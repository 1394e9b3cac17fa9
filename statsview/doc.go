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

// Package statsview serves runtime statistics of the patching process over
// HTTP. The charts come from "github.com/go-echarts/statsview" and the standard
// pprof handlers are served alongside them.
//
// The server is only compiled in with the statsview build tag:
//
//	go build -tags statsview .
//
// Without the tag Available() returns false and Launch() returns an empty
// string without starting anything. The Address() and URL() functions are
// always available.
package statsview

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

//go:build statsview

package statsview

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/thumbpatch/logger"
)

// Launch starts the statistics server in the background and returns the URL
// of the statistics page. The locations of the pages are written to output.
//
// The server runs until the program exits. A server that fails to start is
// logged with the "statsview warning" tag.
func Launch(output io.Writer, addr string) string {
	addr = Address(addr)

	// the configuration is read by New() so it must be set first. the link
	// address is used by the page to fetch its scripts and chart data
	viewer.SetConfiguration(viewer.WithAddr(addr), viewer.WithLinkAddr(addr))
	mgr := statsview.New()

	go func() {
		err := mgr.Start()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log(logger.Allow, "statsview warning", err)
		}
	}()

	logger.Logf(logger.Allow, "statsview", "serving on %s", addr)
	fmt.Fprintf(output, "runtime statistics: %s\n", URL(addr))
	fmt.Fprintf(output, "pprof: %s\n", PprofURL(addr))

	return URL(addr)
}

// Available returns true if the statistics server is compiled in.
func Available() bool {
	return true
}

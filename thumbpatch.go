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

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/thumbpatch/curated"
	"github.com/jetsetilly/thumbpatch/defines"
	"github.com/jetsetilly/thumbpatch/easyterm"
	"github.com/jetsetilly/thumbpatch/firmware"
	"github.com/jetsetilly/thumbpatch/imagefile"
	"github.com/jetsetilly/thumbpatch/logger"
	"github.com/jetsetilly/thumbpatch/modalflag"
	"github.com/jetsetilly/thumbpatch/patch"
	"github.com/jetsetilly/thumbpatch/patchfile"
	"github.com/jetsetilly/thumbpatch/report"
	"github.com/jetsetilly/thumbpatch/statsview"
	"github.com/jetsetilly/thumbpatch/thumb"
	"github.com/jetsetilly/thumbpatch/toolchain"
	"github.com/mattn/go-isatty"
)

// error patterns used by the main package
const (
	notOverwriting = "not overwriting %s"
	badAddress     = "bad address (%s): %v"
)

// the console used by the different modes. the input is used when asking for
// confirmation
type console struct {
	input  *os.File
	output io.Writer

	// whether the output supports color
	color bool
}

func main() {
	con := console{
		input:  os.Stdin,
		output: os.Stdout,
		color:  isatty.IsTerminal(os.Stdout.Fd()),
	}

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PATCH", "ENCODE", "LIST")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "PATCH":
		err = patchMode(md, con)

	case "ENCODE":
		err = encodeMode(md, con)

	case "LIST":
		err = listMode(md, con)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func patchMode(md *modalflag.Modes, con console) error {
	md.NewMode()
	md.Usage("<patchfile> <source> <dest>")

	defs := md.AddDefines("define", "additional defines for the C compiler (KEY::VALUE; KEY::VALUE)")
	trailer := md.AddHex("trailer", "hex bytes appended to the image after the trailer in the patch file")
	hash := md.AddString("hash", "", "expected sha1 hash of the source image")
	strict := md.AddBool("strict", false, "a replace patch that finds nothing is an error")
	force := md.AddBool("force", false, "overwrite the dest file without asking")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	rep := md.AddBool("report", false, "print a report of each patch as it is applied")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = md.ExactArgs(3)
	if err != nil {
		return err
	}

	// set debugging log echo
	if *log {
		if con.color {
			logger.SetEcho(logger.NewColorizer(con.output))
		} else {
			logger.SetEcho(con.output)
		}
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			logger.Log(logger.Allow, "statsview warning", "not available in this build")
		}
		statsview.Launch(con.output, "")
	}

	f, err := patchfile.Load(md.GetArg(0))
	if err != nil {
		return err
	}
	if *strict {
		f.SetStrict(true)
	}
	logBranches(f.Patches)

	src := md.GetArg(1)
	dst := md.GetArg(2)

	if !*force {
		if _, err := os.Stat(dst); err == nil {
			ok, err := confirmOverwrite(con, dst)
			if err != nil {
				return err
			}
			if !ok {
				return curated.Errorf(notOverwriting, dst)
			}
		}
	}

	pt := firmware.Patcher{
		Generator: toolchain.NewFromEnv(),
		Defines:   defines.Merge(f.Defines, *defs),
		Storage:   imagefile.FileSystem{Hash: *hash},
	}

	var r *report.Report
	if *rep {
		r = report.NewReport(con.output, con.color)
		pt.Observer = r.Observe
	}

	t := make([]byte, 0, len(f.Trailer)+len(*trailer))
	t = append(t, f.Trailer...)
	t = append(t, *trailer...)

	err = pt.Patch(src, dst, f.Patches, t)
	if err != nil {
		return err
	}

	if r != nil {
		if fi, err := os.Stat(dst); err == nil {
			r.Summary(int(fi.Size()))
		}
	}

	return nil
}

// confirmOverwrite asks the user if the file should be overwritten. the
// question is only asked if input is a terminal. otherwise the file is always
// overwritten
func confirmOverwrite(con console, filename string) (bool, error) {
	if con.input == nil || !easyterm.IsTerminal(con.input) {
		return true, nil
	}

	out, ok := con.output.(*os.File)
	if !ok {
		out = os.Stdout
	}

	return easyterm.Confirm(con.input, out, fmt.Sprintf("%s exists. overwrite?", filename))
}

// logBranches logs the opcode of every BranchCall patch and warns about
// targets that are out of range
func logBranches(patches []patch.Patch) {
	for _, p := range patches {
		if bl, ok := p.(*patch.BranchCall); ok {
			logBranch(uint32(bl.Position), bl.Target)
		}
	}
}

func logBranch(src uint32, dst uint32) {
	logger.Logf(logger.Allow, "thumb", "patched: %X to call %X BL opcode: %X", src, dst, thumb.Opcode(src, dst))
	if !thumb.InRange(src, dst) {
		logger.Logf(logger.Allow, "thumb warning", "BL from %X to %X is out of range", src, dst)
	}
}

func encodeMode(md *modalflag.Modes, con console) error {
	md.NewMode()
	md.Usage("<src> <dst>")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = md.ExactArgs(2)
	if err != nil {
		return err
	}

	src, err := parseAddress(md.GetArg(0))
	if err != nil {
		return err
	}
	dst, err := parseAddress(md.GetArg(1))
	if err != nil {
		return err
	}

	b := thumb.EncodeBL(src, dst)
	fmt.Fprintf(con.output, "bytes: % x\n", b[:])
	fmt.Fprintf(con.output, "opcode: %08X\n", thumb.Opcode(src, dst))
	if !thumb.InRange(src, dst) {
		fmt.Fprintf(con.output, "* warning: target is out of range\n")
	}

	return nil
}

// parseAddress parses a 32 bit address. addresses can be in decimal or have
// a base prefix (0x, 0o or 0b)
func parseAddress(s string) (uint32, error) {
	a, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, curated.Errorf(badAddress, s, err)
	}
	return uint32(a), nil
}

func listMode(md *modalflag.Modes, con console) error {
	md.NewMode()
	md.Usage("<patchfile>")

	mv := md.AddString("memviz", "", "write a graphviz description of the parsed patches to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = md.ExactArgs(1)
	if err != nil {
		return err
	}

	f, err := patchfile.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Fprint(con.output, f.String())
	if len(f.Defines) > 0 {
		fmt.Fprintf(con.output, "defines: %s\n", defines.String(f.Defines))
	}

	if *mv != "" {
		w, err := os.Create(*mv)
		if err != nil {
			return err
		}
		defer w.Close()
		memviz.Map(w, &f.Patches)
	}

	return nil
}

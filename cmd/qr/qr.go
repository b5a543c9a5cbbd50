// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/qrcore/qr"
	"github.com/qrcore/qr/coding"
	"github.com/qrcore/qr/render"
	"github.com/qrcore/qr/split"
)

var g = struct {
	level  string // error correction level, one of lmqhLMQH
	format string // output format: png, pbm or ascii
	fn     string // output filename, or "" for stdout
	plain  bool   // -8: skip the mixed-mode segment planner
}{
	level: "m",
}

var formats = []string{"png", "pbm", "ascii"}

var encoders = map[string]func(io.Writer, *qr.Code) error{
	"png":   render.WritePNG,
	"pbm":   render.WritePBM,
	"ascii": render.WriteASCII,
}

func parseFlags() {
	getopt.SetParameters("[text ...]")
	var help bool
	getopt.FlagLong(&help, "help", 'h', "show this help and exit")
	lev := getopt.Enum('l', []string{"l", "m", "q", "h", "L", "M", "Q", "H"},
		g.level, "error correction level, lowest to highest", "l|m|q|h")
	ff := getopt.Enum('t', formats, "",
		"output format: "+strings.Join(formats, ", ")+
			" (default ascii on a terminal, png otherwise)", "format")
	getopt.FlagLong(&g.fn, "output", 'o',
		`output file, or "-" for standard output`, "file")
	getopt.FlagLong(&g.plain, "byte-only", '8',
		"encode everything as a single byte-mode segment, "+
			"skipping the numeric/alphanumeric segment planner")
	getopt.Parse()
	if help {
		getopt.Usage()
		os.Exit(0)
	}
	g.level = *lev
	g.format = *ff
	if g.format == "" {
		if isatty.IsTerminal(uintptr(syscall.Stdout)) {
			g.format = "ascii"
		} else {
			g.format = "png"
		}
	}
}

func level(s string) qr.Level {
	return qr.Level(strings.Index("lmqhLMQH", s) & 3)
}

func readText() string {
	if args := getopt.Args(); len(args) != 0 {
		return strings.Join(args, " ")
	}
	var b strings.Builder
	if _, err := io.Copy(&b, os.Stdin); err != nil {
		log.Fatalln(err)
	}
	s, _ := strings.CutSuffix(strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	return s
}

func main() {
	log.SetFlags(0)
	parseFlags()
	text := readText()

	var (
		qc  *coding.QrCode
		err error
	)
	if g.plain {
		qc, err = coding.EncodeBinary([]byte(text), level(g.level))
	} else {
		qc, err = split.EncodeText(text, level(g.level))
	}
	if err != nil {
		log.Fatalln(err)
	}
	code := &qr.Code{QrCode: qc}

	w := os.Stdout
	if g.fn != "" && g.fn != "-" {
		f, err := os.Create(g.fn)
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		w = f
	}
	if err := encoders[g.format](w, code); err != nil {
		log.Fatalln(err)
	}
}

// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render writes a built QR code to common output formats. It
// only depends on Code's image.Image implementation and its quiet
// zone, never on package coding's internals.
package render // import "github.com/qrcore/qr/render"

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"strconv"

	"github.com/qrcore/qr"
)

// WritePNG writes code to w as a PNG image, one pixel per module plus
// the quiet zone, using the standard library's encoder.
func WritePNG(w io.Writer, code *qr.Code) error {
	return png.Encode(w, code)
}

// WritePBM writes code to w as a binary (P4) portable bitmap, for use
// with netpbm tools.
func WritePBM(w io.Writer, code *qr.Code) error {
	b := code.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("P4\n" + strconv.Itoa(b.Dx()) + " " + strconv.Itoa(b.Dy()) + "\n"); err != nil {
		return err
	}
	row := make([]byte, (b.Dx()+7)/8)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for i := range row {
			row[i] = 0
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			if r, _, _, _ := code.At(x, y).RGBA(); r == 0 {
				row[(x-b.Min.X)/8] |= 1 << (7 - uint(x-b.Min.X)&7)
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteASCII writes code to w as a two-characters-wide-per-module
// ASCII art dump, '#' for a dark module and ' ' for a light one or
// the quiet zone border, one line per row.
func WriteASCII(w io.Writer, code *qr.Code) error {
	b := code.Bounds()
	bw := bufio.NewWriter(w)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := ' '
			if r, _, _, _ := code.At(x, y).RGBA(); r == 0 {
				c = '#'
			}
			if _, err := fmt.Fprintf(bw, "%c%c", c, c); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qr is a friendly, render-ready wrapper around the QR Code
// Model 2 core implemented in package coding: encode text or raw
// segments and get back a Code that implements image.Image directly,
// with the quiet zone ISO/IEC 18004 requires already added, ready to
// hand to png.Encode or any other image consumer.
package qr // import "github.com/qrcore/qr"

import (
	"image"
	"image/color"
	"strings"

	"github.com/qrcore/qr/coding"
)

// A Level is a QR error correction level, re-exported from package
// coding for callers who only need the friendly API.
type Level = coding.Level

// Error correction levels, from least to most tolerant of errors.
const (
	LOW      = coding.LOW
	MEDIUM   = coding.MEDIUM
	QUARTILE = coding.QUARTILE
	HIGH     = coding.HIGH
)

// A Segment is a single piece of a QR payload, re-exported from
// package coding.
type Segment = coding.Segment

// Segment constructors, re-exported from package coding.
var (
	MakeNumeric      = coding.MakeNumeric
	MakeAlphanumeric = coding.MakeAlphanumeric
	MakeBytes        = coding.MakeBytes
	MakeECI          = coding.MakeECI
	MakeSegment      = coding.MakeSegment
)

// quietZone is the number of light modules ISO/IEC 18004 requires on
// every side of a printed symbol.
const quietZone = 4

// A Code is a built QR symbol, ready for rendering. It implements
// image.Image, with each module scaled to a single pixel and the
// quiet zone added around the border.
type Code struct {
	*coding.QrCode
}

// Bounds returns the image bounds, the symbol's size plus one quiet
// zone on every side.
func (c *Code) Bounds() image.Rectangle {
	d := c.Size() + 2*quietZone
	return image.Rect(0, 0, d, d)
}

// ColorModel returns color.GrayModel: a Code's image is always
// black-and-white.
func (c *Code) ColorModel() color.Model { return color.GrayModel }

// At returns black for a dark module, white for a light one or for
// the quiet zone.
func (c *Code) At(x, y int) color.Color {
	if c.Get(x-quietZone, y-quietZone) {
		return color.Gray{Y: 0x00}
	}
	return color.Gray{Y: 0xff}
}

// String returns a two-characters-per-module ASCII art dump of the
// code, quiet zone included, for quick inspection in a terminal or a
// test failure message.
func (c *Code) String() string {
	var b strings.Builder
	r := c.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if g, _, _, _ := c.At(x, y).RGBA(); g == 0 {
				b.WriteString("##")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func wrap(qc *coding.QrCode, err error) (*Code, error) {
	if err != nil {
		return nil, err
	}
	return &Code{qc}, nil
}

// EncodeText encodes text as a single auto-detected segment at level
// or higher.
func EncodeText(text string, level Level) (*Code, error) {
	return wrap(coding.EncodeText(text, level))
}

// EncodeNumeric encodes a string of decimal digits at level or
// higher.
func EncodeNumeric(digits string, level Level) (*Code, error) {
	return wrap(coding.EncodeNumeric(digits, level))
}

// EncodeAlphanumeric encodes text drawn from the QR alphanumeric
// charset at level or higher.
func EncodeAlphanumeric(text string, level Level) (*Code, error) {
	return wrap(coding.EncodeAlphanumeric(text, level))
}

// EncodeBinary encodes arbitrary bytes as a single byte-mode segment
// at level or higher.
func EncodeBinary(data []byte, level Level) (*Code, error) {
	return wrap(coding.EncodeBinary(data, level))
}

// EncodeSegments encodes a caller-built sequence of segments, in
// order, at level or higher. Use the split package to plan an optimal
// mixed-mode split of free-form text before calling this.
func EncodeSegments(level Level, segments ...Segment) (*Code, error) {
	return wrap(coding.EncodeSegments(level, segments...))
}

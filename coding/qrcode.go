// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A QrCode is a fully built, immutable QR Code Model 2 symbol: its
// module matrix, version, error correction level and chosen mask.
type QrCode struct {
	version Version
	level   Level
	mask    int
	size    int
	modules [][]bool
}

// Version returns the symbol's version, 1-40.
func (c *QrCode) Version() Version { return c.version }

// Level returns the symbol's error correction level.
func (c *QrCode) Level() Level { return c.level }

// Mask returns the mask pattern, 0-7, applied to the symbol.
func (c *QrCode) Mask() int { return c.mask }

// Size returns the side length of the symbol in modules.
func (c *QrCode) Size() int { return c.size }

// Get reports whether the module at (x,y) is dark. Coordinates outside
// [0,Size) are treated as light, so callers can draw a code directly
// into a larger canvas without bounds-checking first.
func (c *QrCode) Get(x, y int) bool {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return false
	}
	return c.modules[y][x]
}

// EncodeSegments builds a complete QrCode carrying segments, encoded
// in the order given, at the smallest version that fits them at level
// or higher. The level actually used may be boosted above the
// requested one, without growing the version, whenever doing so still
// fits; see Level on the result.
func EncodeSegments(level Level, segments ...Segment) (*QrCode, error) {
	data, ver, lvl, err := encodeSegments(level, segments)
	if err != nil {
		return nil, err
	}
	codewords := addErrorCorrection(data, ver, lvl)

	m := newMatrix(ver.Size())
	m.drawTimingPatterns()
	m.drawFinderPatterns()
	m.drawAlignmentPatterns(ver)
	m.drawFormatBitsPlaceholder(lvl)
	m.drawVersion(ver)
	m.drawCodewords(codewords)
	mask := m.bestMask(lvl)

	return &QrCode{
		version: ver,
		level:   lvl,
		mask:    mask,
		size:    m.size,
		modules: m.modules,
	}, nil
}

// EncodeText encodes text as a single auto-detected segment (numeric,
// alphanumeric or byte mode, in that preference order) at level or
// higher. It is a convenience wrapper around MakeSegment and
// EncodeSegments.
func EncodeText(text string, level Level) (*QrCode, error) {
	seg, err := MakeSegment(text)
	if err != nil {
		return nil, err
	}
	return EncodeSegments(level, seg)
}

// EncodeNumeric encodes a string of decimal digits as a single numeric
// segment at level or higher.
func EncodeNumeric(digits string, level Level) (*QrCode, error) {
	seg, err := MakeNumeric(digits)
	if err != nil {
		return nil, err
	}
	return EncodeSegments(level, seg)
}

// EncodeAlphanumeric encodes text drawn from the QR alphanumeric
// charset as a single alphanumeric segment at level or higher.
func EncodeAlphanumeric(text string, level Level) (*QrCode, error) {
	seg, err := MakeAlphanumeric(text)
	if err != nil {
		return nil, err
	}
	return EncodeSegments(level, seg)
}

// EncodeBinary encodes arbitrary bytes as a single byte-mode segment
// at level or higher.
func EncodeBinary(data []byte, level Level) (*QrCode, error) {
	return EncodeSegments(level, MakeBytes(data))
}

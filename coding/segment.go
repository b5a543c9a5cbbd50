// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// The alphanumeric charset, in encoding order: value i is at index i.
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// A Segment is an immutable (mode, character count, data bits) triple,
// one piece of a QR code's payload. Segments are built with the
// Make* constructors and never mutated afterwards.
type Segment struct {
	mode     Mode
	numChars int
	data     BitBuffer
}

// Mode returns the segment's encoding mode.
func (s Segment) Mode() Mode { return s.mode }

// NumChars returns the segment's character count field value: the
// number of characters for NUMERIC/ALPHANUMERIC, the number of bytes
// for BYTE, or 0 for ECI.
func (s Segment) NumChars() int { return s.numChars }

// Bits returns the number of data bits in the segment, excluding the
// mode indicator and character count header.
func (s Segment) Bits() int { return s.data.Len() }

// MakeNumeric returns a NUMERIC segment encoding s, which must match
// [0-9]*. Empty input is allowed and yields a zero-bit segment.
func MakeNumeric(s string) (Segment, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Segment{}, &BadCharsetError{Mode: NUMERIC, Rune: rune(s[i])}
		}
	}
	var b BitBuffer
	bitsPerGroup := [4]int{0, 4, 7, 10}
	for i := 0; i < len(s); i += 3 {
		n := min(3, len(s)-i)
		var v uint32
		for j := 0; j < n; j++ {
			v = v*10 + uint32(s[i+j]-'0')
		}
		b.AppendBits(v, bitsPerGroup[n])
	}
	return Segment{mode: NUMERIC, numChars: len(s), data: b}, nil
}

// MakeAlphanumeric returns an ALPHANUMERIC segment encoding s, which
// must be drawn from "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:".
// Empty input is allowed and yields a zero-bit segment.
func MakeAlphanumeric(s string) (Segment, error) {
	vals := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		v := strings.IndexByte(alphanumericCharset, s[i])
		if v < 0 {
			return Segment{}, &BadCharsetError{Mode: ALPHANUMERIC, Rune: rune(s[i])}
		}
		vals[i] = v
	}
	var b BitBuffer
	i := 0
	for ; i+1 < len(vals); i += 2 {
		b.AppendBits(uint32(45*vals[i]+vals[i+1]), 11)
	}
	if i < len(vals) {
		b.AppendBits(uint32(vals[i]), 6)
	}
	return Segment{mode: ALPHANUMERIC, numChars: len(s), data: b}, nil
}

// MakeBytes returns a BYTE segment encoding data verbatim, 8 bits per
// byte, most significant bit first.
func MakeBytes(data []byte) Segment {
	var b BitBuffer
	for _, c := range data {
		b.AppendByte(c)
	}
	return Segment{mode: BYTE, numChars: len(data), data: b}
}

// MakeLatin1 transforms text from UTF-8 to ISO 8859-1 and returns it as
// a BYTE segment, for callers who know their reader expects Latin-1
// rather than UTF-8 and don't want to wrap the payload in an ECI
// segment. Characters with no ISO 8859-1 representation are rejected.
func MakeLatin1(text string) (Segment, error) {
	data, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return Segment{}, &BadCharsetError{Mode: BYTE, Rune: badRune(text, err)}
	}
	return MakeBytes([]byte(data)), nil
}

// badRune returns the first rune of text that has no ISO 8859-1
// representation, best-effort, for use in a BadCharsetError. charmap's
// encoder error doesn't carry the offending rune, so this just reports
// the first non-Latin-1 rune found; it's diagnostic, not exact.
func badRune(text string, _ error) rune {
	for _, r := range text {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); !ok {
			return r
		}
	}
	return 0
}

// MakeECI returns an ECI segment naming assignVal, which must be in
// [0, 1_000_000).
func MakeECI(assignVal int) (Segment, error) {
	if assignVal < 0 || assignVal >= 1_000_000 {
		return Segment{}, &BadEciError{Value: assignVal}
	}
	var b BitBuffer
	switch {
	case assignVal < 1<<7:
		b.AppendBits(uint32(assignVal), 8)
	case assignVal < 1<<14:
		b.AppendBits(uint32(2<<14|assignVal), 16)
	default:
		b.AppendBits(uint32(6<<21|assignVal), 24)
	}
	return Segment{mode: ECI, numChars: 0, data: b}, nil
}

// MakeSegment picks a mode automatically for text: NUMERIC if every
// character is a digit, ALPHANUMERIC if every character is in the
// alphanumeric charset, otherwise BYTE with text encoded as UTF-8.
// It never splits text across multiple segments; see the split
// package for a multi-segment optimizer. Empty text is rejected.
func MakeSegment(text string) (Segment, error) {
	if text == "" {
		return Segment{}, ErrEmptyText
	}
	allDigits, allAlnum := true, true
	for i := 0; i < len(text) && (allDigits || allAlnum); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			allDigits = false
		}
		if strings.IndexByte(alphanumericCharset, c) < 0 {
			allAlnum = false
		}
	}
	switch {
	case allDigits:
		return MakeNumeric(text)
	case allAlnum:
		return MakeAlphanumeric(text)
	default:
		return MakeBytes([]byte(text)), nil
	}
}

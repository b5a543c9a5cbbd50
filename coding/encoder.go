// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// totalBits returns the length, in bits, of segments encoded at
// version v, including each segment's 4 bit mode indicator and
// character count header. ok is false if any segment's character
// count does not fit the character-count field at this version, in
// which case v cannot carry segments regardless of capacity.
func totalBits(segments []Segment, v Version) (bits int, ok bool) {
	ok = true
	for _, s := range segments {
		ccbits := s.mode.charCountBits(v)
		if s.numChars>>ccbits != 0 {
			ok = false
		}
		bits += 4 + ccbits + s.data.Len()
	}
	return bits, ok
}

// chooseVersion returns the smallest version able to carry segments
// at level, boosted to the highest error correction level that still
// fits without growing the version further.
func chooseVersion(segments []Segment, level Level) (Version, Level, error) {
	var ver Version
	found := false
	for v := MinVersion; v <= MaxVersion; v++ {
		bits, ok := totalBits(segments, v)
		if ok && bits <= 8*numDataCodewords(v, level) {
			ver = v
			found = true
			break
		}
	}
	if !found {
		bits, _ := totalBits(segments, MaxVersion)
		return 0, 0, &DataTooLongError{
			Bits:     bits,
			Capacity: 8 * numDataCodewords(MaxVersion, level),
		}
	}

	bits, _ := totalBits(segments, ver)
	boosted := level
	for l := HIGH; l > level; l-- {
		if bits <= 8*numDataCodewords(ver, l) {
			boosted = l
			break
		}
	}
	return ver, boosted, nil
}

// assemble concatenates segments' mode indicators, character counts
// and data bits at version ver into one bit stream.
func assemble(segments []Segment, ver Version) BitBuffer {
	var b BitBuffer
	for _, s := range segments {
		b.AppendBits(s.mode.indicator(), 4)
		b.AppendBits(uint32(s.numChars), s.mode.charCountBits(ver))
		b.AppendBuffer(&s.data)
	}
	return b
}

// padAndPack appends the terminator, zero padding and alternating
// 0xEC/0x11 pad bytes to b until it holds exactly capacityBits bits
// (a multiple of 8), then returns the packed bytes.
func padAndPack(b BitBuffer, capacityBits int) []byte {
	if b.Len() > capacityBits {
		panic("qr: internal error: segments overflow capacity")
	}
	term := min(4, capacityBits-b.Len())
	if term > 0 {
		b.AppendBits(0, term)
	}
	if rem := -b.Len() & 7; rem != 0 {
		b.AppendBits(0, rem)
	}
	for i := 0; b.Len() < capacityBits; i++ {
		if i%2 == 0 {
			b.AppendByte(0xec)
		} else {
			b.AppendByte(0x11)
		}
	}
	return b.Bytes()
}

// encodeSegments runs the encoder: it picks the smallest version and
// its ECC-boosted level that can carry segments, assembles the bit
// stream, and packs it into data codewords. segments are encoded in
// the order given; the encoder never reorders or splits them.
func encodeSegments(level Level, segments []Segment) (data []byte, ver Version, lvl Level, err error) {
	ver, lvl, err = chooseVersion(segments, level)
	if err != nil {
		return nil, 0, 0, err
	}
	b := assemble(segments, ver)
	data = padAndPack(b, 8*numDataCodewords(ver, lvl))
	if len(data) != numDataCodewords(ver, lvl) {
		panic("qr: internal error: wrong data codeword count")
	}
	return data, ver, lvl, nil
}

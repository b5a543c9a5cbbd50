// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A BitBuffer is an append-only sequence of bits, packed into bytes
// big-endian (bit 0 of the sequence becomes the MSB of byte 0) as they
// accumulate.
type BitBuffer struct {
	b    []byte
	nbit int
}

// Len returns the number of bits appended to b so far.
func (b *BitBuffer) Len() int { return b.nbit }

// Bytes returns the packed bytes written to b. It panics if Len is not
// a multiple of 8.
func (b *BitBuffer) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// AppendBits appends the low length bits of value to b, most
// significant bit first. length must be in [0,31] and value must fit
// in length bits (value < 1<<length); either violation is a
// programmer error, not a recoverable one, and panics.
func (b *BitBuffer) AppendBits(value uint32, length int) {
	if length < 0 || length > 31 || value>>length != 0 {
		panic("qr: invalid bit width")
	}
	v := value << (32 - length)
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= length {
			b.nbit += length
			return
		}
		b.nbit += rem
		length -= rem
		v <<= rem
	}
	for n := length; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += length
}

// AppendByte appends all 8 bits of c to b, most significant bit first.
// It is equivalent to AppendBits(uint32(c), 8) but avoids the shift
// bookkeeping when b is already byte-aligned.
func (b *BitBuffer) AppendByte(c byte) {
	if b.nbit%8 == 0 {
		b.b = append(b.b, c)
		b.nbit += 8
		return
	}
	b.AppendBits(uint32(c), 8)
}

// AppendBuffer appends all bits of src to b, most significant bit
// first, regardless of either buffer's current byte alignment.
func (b *BitBuffer) AppendBuffer(src *BitBuffer) {
	pos := 0
	for n := src.nbit; n > 0; {
		take := min(n, 24)
		byteIdx, bitOff := pos/8, pos%8
		nb := (bitOff + take + 7) / 8
		var window uint32
		for i := 0; i < nb; i++ {
			var bb byte
			if byteIdx+i < len(src.b) {
				bb = src.b[byteIdx+i]
			}
			window = window<<8 | uint32(bb)
		}
		shift := nb*8 - bitOff - take
		value := window >> shift & (1<<take - 1)
		b.AppendBits(value, take)
		pos += take
		n -= take
	}
}

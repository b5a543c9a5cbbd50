// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A matrix is the builder's working grid: modules holds the module
// colours (true = dark) and isFunction marks cells fixed by function
// patterns and the format/version stamps, so they're never touched by
// masking. isFunction is scratch state, local to the builder; it never
// escapes into a QrCode.
type matrix struct {
	size       int
	modules    [][]bool
	isFunction [][]bool
}

func newMatrix(size int) *matrix {
	m := &matrix{size: size}
	m.modules = make([][]bool, size)
	m.isFunction = make([][]bool, size)
	for i := range m.modules {
		m.modules[i] = make([]bool, size)
		m.isFunction[i] = make([]bool, size)
	}
	return m
}

func (m *matrix) get(x, y int) bool {
	return m.modules[y][x]
}

// setFunctionModule sets the module at (x,y) and marks it as a
// function module, permanently excluded from masking.
func (m *matrix) setFunctionModule(x, y int, dark bool) {
	m.modules[y][x] = dark
	m.isFunction[y][x] = true
}

func (m *matrix) inBounds(x, y int) bool {
	return 0 <= x && x < m.size && 0 <= y && y < m.size
}

// drawTimingPatterns draws the alternating row and column 6 timing
// strips, dark at index 0.
func (m *matrix) drawTimingPatterns() {
	for i := 0; i < m.size; i++ {
		dark := i%2 == 0
		m.setFunctionModule(6, i, dark)
		m.setFunctionModule(i, 6, dark)
	}
}

// drawFinderPatterns draws the three 9x9 finder stamps, including
// their one-module light separator, at the top-left, top-right and
// bottom-left corners.
func (m *matrix) drawFinderPatterns() {
	size := m.size
	m.drawFinderPattern(3, 3)
	m.drawFinderPattern(size-4, 3)
	m.drawFinderPattern(3, size-4)
}

func (m *matrix) drawFinderPattern(cx, cy int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			x, y := cx+dx, cy+dy
			if !m.inBounds(x, y) {
				continue // separator may extend past the symbol edge
			}
			d := max(abs(dx), abs(dy))
			m.setFunctionModule(x, y, d != 2 && d != 4)
		}
	}
}

// drawAlignmentPatterns draws the 5x5 alignment stamps at every (row,
// col) pair of alignmentPositions(ver), except the three corners that
// would collide with a finder pattern. Version 1 has none.
func (m *matrix) drawAlignmentPatterns(ver Version) {
	pos := alignmentPositions(ver)
	n := len(pos)
	for i, y := range pos {
		for j, x := range pos {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue
			}
			m.drawAlignmentPattern(x, y)
		}
	}
}

func (m *matrix) drawAlignmentPattern(cx, cy int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			d := max(abs(dx), abs(dy))
			m.setFunctionModule(cx+dx, cy+dy, d != 1)
		}
	}
}

// alignmentPositions returns the sorted row/column coordinates shared
// by every alignment pattern center at version ver, or nil for
// version 1.
func alignmentPositions(ver Version) []int {
	v := int(ver)
	if v == 1 {
		return nil
	}
	n := v/7 + 2
	step := (v*8 + n*3 + 5) / (n*4 - 4) * 2
	pos := make([]int, n)
	pos[0] = 6
	for i, p := n-1, ver.Size()-7; i >= 1; i, p = i-1, p-step {
		pos[i] = p
	}
	return pos
}

// drawFormatBitsPlaceholder stamps mask M0's format bits as a
// placeholder purely to mark those cells as function modules, before
// the real mask is known.
func (m *matrix) drawFormatBitsPlaceholder(level Level) {
	m.drawFormatBits(level, 0)
}

// drawFormatBits computes and stamps the 15 bit format codeword for
// level and mask, written twice per the standard layout, plus the
// single always-dark module at (8, size-8).
func (m *matrix) drawFormatBits(level Level, mask int) {
	bits := formatCodeword(level, mask)
	getBit := func(i int) bool { return bits>>i&1 != 0 }

	for i := 0; i <= 5; i++ {
		m.setFunctionModule(8, i, getBit(i))
	}
	m.setFunctionModule(8, 7, getBit(6))
	m.setFunctionModule(8, 8, getBit(7))
	m.setFunctionModule(7, 8, getBit(8))
	for i := 9; i < 15; i++ {
		m.setFunctionModule(14-i, 8, getBit(i))
	}

	size := m.size
	for i := 0; i < 8; i++ {
		m.setFunctionModule(size-1-i, 8, getBit(i))
	}
	for i := 8; i < 15; i++ {
		m.setFunctionModule(8, size-15+i, getBit(i))
	}
	m.setFunctionModule(8, size-8, true)
}

// formatCodeword packs level and mask into the 5 bit format value and
// BCH-encodes it per ISO/IEC 18004 annex C, using generator 0x537.
func formatCodeword(level Level, mask int) int {
	data := level.formatBits()<<3 | mask
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*0x537
	}
	return (data<<10 | rem&0x3ff) ^ 0x5412
}

// drawVersion stamps the 18 bit BCH-coded version number, generator
// 0x1F25, into its two 6x3 regions. It is a no-op below version 7.
func (m *matrix) drawVersion(ver Version) {
	if ver < 7 {
		return
	}
	rem := int(ver)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*0x1f25
	}
	bits := int(ver)<<12 | rem&0xfff
	size := m.size
	for i := 0; i < 18; i++ {
		bit := bits>>i&1 != 0
		a := size - 11 + i%3
		b := i / 3
		m.setFunctionModule(a, b, bit)
		m.setFunctionModule(b, a, bit)
	}
}

// drawCodewords zigzags the bits of data onto every non-function
// module, scanning column pairs from right to left and skipping the
// timing column. It panics if data carries more bits than there are
// non-function modules; modules left over after the last bit (the
// remainder bits) keep their current value.
func (m *matrix) drawCodewords(data []byte) {
	size := m.size
	i := 0
	for right := size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				y := vert
				if upward {
					y = size - 1 - vert
				}
				if m.isFunction[y][x] || i >= len(data)*8 {
					continue
				}
				bit := data[i>>3]>>(7-i&7)&1 != 0
				m.modules[y][x] = bit
				i++
			}
		}
	}
	if i != len(data)*8 {
		panic("qr: internal error: data zigzag consumed the wrong bit count")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Penalty weights for the four scoring rules (ISO/IEC 18004 table 11).
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// maskBit reports whether mask flips the module at (x,y).
func maskBit(mask, x, y int) bool {
	switch mask {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("qr: invalid mask")
	}
}

// applyMask flips every non-function module for which maskBit is set.
// Calling it twice with the same mask restores the original modules,
// since masking is its own inverse.
func (m *matrix) applyMask(mask int) {
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if !m.isFunction[y][x] && maskBit(mask, x, y) {
				m.modules[y][x] = !m.modules[y][x]
			}
		}
	}
}

// bestMask tries all 8 masks against m and returns the one with the
// lowest penalty score, leaving m masked with that mask and its format
// bits stamped for level.
func (m *matrix) bestMask(level Level) int {
	best := 0
	bestScore := -1
	for mask := 0; mask < 8; mask++ {
		m.applyMask(mask)
		m.drawFormatBits(level, mask)
		if score := m.penalty(); bestScore < 0 || score < bestScore {
			best, bestScore = mask, score
		}
		m.applyMask(mask) // undo: masking is its own inverse
	}
	m.applyMask(best)
	m.drawFormatBits(level, best)
	return best
}

// penalty computes m's total score under rules N1-N4. Lower is better.
func (m *matrix) penalty() int {
	result := 0
	for _, transposed := range [...]bool{false, true} {
		result += m.linePenalty(transposed)
	}
	result += m.blockPenalty()
	result += m.balancePenalty()
	if result < 0 {
		panic("qr: internal error: negative penalty")
	}
	return result
}

// at returns the module at line index i (a row if transposed is
// false, a column if true), position j along that line.
func (m *matrix) at(transposed bool, i, j int) bool {
	if transposed {
		return m.modules[j][i]
	}
	return m.modules[i][j]
}

// linePenalty scores rules N1 (same-colour runs) and N3 (finder-like
// patterns) over every row (transposed false) or column (transposed
// true).
func (m *matrix) linePenalty(transposed bool) int {
	size := m.size
	result := 0
	for line := 0; line < size; line++ {
		var hist [7]int
		histLen := 0
		addHistory := func(n int) {
			if histLen == 0 {
				n += size
			}
			copy(hist[1:], hist[:6])
			hist[0] = n
			histLen++
		}
		countPatterns := func() int {
			n := hist[1]
			core := n > 0 && hist[2] == n && hist[3] == 3*n && hist[4] == n && hist[5] == n
			c := 0
			if core && hist[0] >= 4*n && hist[6] >= n {
				c++
			}
			if core && hist[6] >= 4*n && hist[0] >= n {
				c++
			}
			return c
		}

		color := false
		run := 0
		for pos := 0; pos < size; pos++ {
			v := m.at(transposed, line, pos)
			if v == color {
				run++
				if run == 5 {
					result += penaltyN1
				} else if run > 5 {
					result++
				}
				continue
			}
			addHistory(run)
			if !color {
				result += countPatterns() * penaltyN3
			}
			color, run = v, 1
		}
		if color {
			addHistory(run)
			run = 0
		}
		addHistory(run + size)
		result += countPatterns() * penaltyN3
	}
	return result
}

// blockPenalty scores rule N2: every 2x2 block of one colour.
func (m *matrix) blockPenalty() int {
	result := 0
	for y := 0; y < m.size-1; y++ {
		for x := 0; x < m.size-1; x++ {
			c := m.modules[y][x]
			if c == m.modules[y][x+1] && c == m.modules[y+1][x] && c == m.modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}
	return result
}

// balancePenalty scores rule N4: how far the proportion of dark
// modules strays from 50%, in steps of 5 percentage points.
func (m *matrix) balancePenalty() int {
	dark := 0
	for _, row := range m.modules {
		for _, v := range row {
			if v {
				dark++
			}
		}
	}
	total := m.size * m.size
	k := (abs(dark*20-total*10) + total - 1) / total
	if k > 0 {
		k--
	}
	return k * penaltyN4
}

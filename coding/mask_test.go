// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

func TestApplyMaskIsItsOwnInverse(t *testing.T) {
	m := newMatrix(21)
	m.drawFinderPatterns()
	m.drawTimingPatterns()

	before := make([][]bool, m.size)
	for y, row := range m.modules {
		before[y] = append([]bool(nil), row...)
	}

	for mask := 0; mask < 8; mask++ {
		m.applyMask(mask)
		m.applyMask(mask)
		for y := 0; y < m.size; y++ {
			for x := 0; x < m.size; x++ {
				if m.modules[y][x] != before[y][x] {
					t.Fatalf("mask %d: module (%d,%d) not restored after double apply", mask, x, y)
				}
			}
		}
	}
}

func TestApplyMaskNeverTouchesFunctionModules(t *testing.T) {
	m := newMatrix(21)
	m.drawFinderPatterns()
	m.drawTimingPatterns()

	before := make([][]bool, m.size)
	for y, row := range m.modules {
		before[y] = append([]bool(nil), row...)
	}

	m.applyMask(3)
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if m.isFunction[y][x] && m.modules[y][x] != before[y][x] {
				t.Errorf("mask 3 flipped function module (%d,%d)", x, y)
			}
		}
	}
}

func TestBestMaskPicksLowestPenalty(t *testing.T) {
	ver := Version(1)
	m := newMatrix(ver.Size())
	m.drawTimingPatterns()
	m.drawFinderPatterns()
	m.drawAlignmentPatterns(ver)
	m.drawFormatBitsPlaceholder(MEDIUM)
	m.drawVersion(ver)
	data := make([]byte, numDataCodewords(ver, MEDIUM))
	m.drawCodewords(addErrorCorrection(data, ver, MEDIUM))

	best := m.bestMask(MEDIUM)
	if best < 0 || best > 7 {
		t.Fatalf("bestMask returned %d, want 0-7", best)
	}
	bestScore := m.penalty()
	for mask := 0; mask < 8; mask++ {
		if mask == best {
			continue
		}
		m.applyMask(best)
		m.applyMask(mask)
		m.drawFormatBits(MEDIUM, mask)
		score := m.penalty()
		m.applyMask(mask)
		m.applyMask(best)
		m.drawFormatBits(MEDIUM, best)
		if score < bestScore {
			t.Errorf("mask %d scores %d, better than chosen mask %d's %d", mask, score, best, bestScore)
		}
	}
}

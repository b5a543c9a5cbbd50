// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package split plans an optimal mixed-mode split of free-form text
// into QR code segments. It sits outside package coding's core: given
// text, it decides where to switch between numeric, alphanumeric and
// byte mode to minimise the encoded bit length, then hands the
// resulting segments to coding.EncodeSegments.
package split // import "github.com/qrcore/qr/split"

import (
	"strings"

	"github.com/qrcore/qr/coding"
)

// alphanumericCharset mirrors package coding's; it's duplicated here
// rather than exported, since deciding which characters are
// alphanumeric is a property of the QR standard, not of coding's
// internals.
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// mode bits, used as a bitset of the modes a span may be encoded in.
const (
	bitNumeric = 1 << iota
	bitAlphanumeric
	bitByte
)

var modeOf = [3]coding.Mode{coding.NUMERIC, coding.ALPHANUMERIC, coding.BYTE}

// classVersion picks one representative version per character-count
// size class (1-9, 10-26, 27-40) for pricing candidate splits; the
// header cost Mode.HeaderBits charges only depends on the class, not
// the exact version within it.
var classVersion = [3]coding.Version{9, 26, 40}

// span is a run of consecutive bytes encodable in the same set of
// modes.
type span struct {
	start, length int
	modes         int
}

// classify splits text into maximal runs of bytes sharing the same
// allowed-mode set.
func classify(text string) []span {
	if text == "" {
		return nil
	}
	modeAt := func(c byte) int {
		switch {
		case c >= '0' && c <= '9':
			return bitNumeric | bitAlphanumeric | bitByte
		case strings.IndexByte(alphanumericCharset, c) >= 0:
			return bitAlphanumeric | bitByte
		default:
			return bitByte
		}
	}
	var spans []span
	start, modes := 0, modeAt(text[0])
	for i := 1; i < len(text); i++ {
		m := modeAt(text[i])
		if m != modes {
			spans = append(spans, span{start, i - start, modes})
			start, modes = i, m
		}
	}
	return append(spans, span{start, len(text) - start, modes})
}

// weight returns the encoded length, in bits, of n characters of mode
// at version ver, including the segment's mode indicator and
// character-count header.
func weight(mode coding.Mode, n int, ver coding.Version) int {
	header := mode.HeaderBits(ver)
	switch mode {
	case coding.NUMERIC:
		return header + (10*n+2)/3
	case coding.ALPHANUMERIC:
		return header + (11*n+1)/2
	default:
		return header + 8*n
	}
}

// choice is one candidate segment in the dynamic-programming chain:
// mode applied to text[start:start+length], linked to the optimal
// continuation for the rest of the spans. weight is the total encoded
// length of this choice and everything it links to.
type choice struct {
	next          *choice
	start, length int
	mode          coding.Mode
	weight        int
}

const infWeight = 1 << 30

// bestSplit runs the dynamic program over spans at version ver and
// returns the head of the optimal segment chain, or nil if spans is
// empty.
func bestSplit(spans []span, ver coding.Version) *choice {
	i := len(spans) - 1
	if i < 0 {
		return nil
	}
	next := bestPerMode(spans[i], ver, [3]*choice{})
	for i--; i >= 0; i-- {
		next = bestPerMode(spans[i], ver, next)
	}
	best := next[0]
	for _, c := range next[1:] {
		if c.weight < best.weight {
			best = c
		}
	}
	return best
}

// bestPerMode returns, for each of the 3 modes, the best choice
// starting at sp and continuing into next (the per-mode choices for
// the following span, or the zero value for the last span).
func bestPerMode(sp span, ver coding.Version, next [3]*choice) [3]*choice {
	last := next[0] == nil
	var result [3]*choice
	for j := range result {
		result[j] = &choice{weight: infWeight}
		if sp.modes&(1<<j) == 0 {
			continue
		}
		mode := modeOf[j]
		w := weight(mode, sp.length, ver)
		if last {
			result[j] = &choice{start: sp.start, length: sp.length, mode: mode, weight: w}
			continue
		}
		for k, nk := range next {
			if nk.weight >= infWeight {
				continue
			}
			c := &choice{next: nk, start: sp.start, length: sp.length, mode: mode, weight: w}
			if k == j {
				// Merging with a continuation in the same mode costs
				// one combined header, not two.
				c.length += nk.length
				c.next = nk.next
				c.weight = weight(mode, c.length, ver)
			}
			if c.next != nil {
				c.weight += c.next.weight
			}
			if c.weight < result[j].weight {
				result[j] = c
			}
		}
	}
	return result
}

// Plan splits text into an optimal sequence of QR segments for
// encoding at level, choosing the representative size class whose
// header costs the resulting chain actually fits, then re-running the
// split at the next class up whenever it doesn't. It returns
// *coding.DataTooLongError if text cannot fit any version at level.
func Plan(text string, level coding.Level) ([]coding.Segment, error) {
	if text == "" {
		return nil, coding.ErrEmptyText
	}
	spans := classify(text)

	class := 0
	best := bestSplit(spans, classVersion[class])
	for classVersion[class].DataCapacityBits(level) < best.weight {
		class++
		if class == len(classVersion) {
			return nil, &coding.DataTooLongError{
				Bits:     best.weight,
				Capacity: coding.MaxVersion.DataCapacityBits(level),
			}
		}
		best = bestSplit(spans, classVersion[class])
	}

	var segments []coding.Segment
	for c := best; c != nil; c = c.next {
		sub := text[c.start : c.start+c.length]
		var (
			seg coding.Segment
			err error
		)
		switch c.mode {
		case coding.NUMERIC:
			seg, err = coding.MakeNumeric(sub)
		case coding.ALPHANUMERIC:
			seg, err = coding.MakeAlphanumeric(sub)
		default:
			seg = coding.MakeBytes([]byte(sub))
		}
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// EncodeText plans an optimal segment split for text and encodes it
// at level or higher. It's the split package's equivalent of
// coding.EncodeText, but may pack mixed-mode text into fewer bits by
// switching modes mid-string instead of falling back to byte mode for
// all of it.
func EncodeText(text string, level coding.Level) (*coding.QrCode, error) {
	segments, err := Plan(text, level)
	if err != nil {
		return nil, err
	}
	return coding.EncodeSegments(level, segments...)
}

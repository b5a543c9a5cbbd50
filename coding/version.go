// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements the QR Code Model 2 (ISO/IEC 18004) core:
// segment construction, capacity and version selection, bit-stream
// assembly, Reed-Solomon error correction and module-matrix layout and
// masking. It has no knowledge of rendering, files or the network.
package coding // import "github.com/qrcore/qr/coding"

import (
	"errors"
	"strconv"
)

// ErrInvalidVersion is returned by NewVersion when the requested
// version is outside [MinVersion, MaxVersion].
var ErrInvalidVersion = errors.New("qr: invalid version")

// ErrEmptyText is returned by MakeSegment when given an empty string.
var ErrEmptyText = errors.New("qr: empty text")

// A Version identifies the size of a QR symbol: version v has
// 4v+17 modules on a side.
type Version int

// Minimum and maximum QR code versions.
const (
	MinVersion Version = 1
	MaxVersion Version = 40
)

// NewVersion validates v and returns it as a Version.
func NewVersion(v int) (Version, error) {
	if v < int(MinVersion) || v > int(MaxVersion) {
		return 0, ErrInvalidVersion
	}
	return Version(v), nil
}

// Size returns the number of modules on a side of a symbol of
// version v: 4v+17.
func (v Version) Size() int { return int(v)*4 + 17 }

// group returns the character-count-field size class used by
// mode-length tables: 0 for versions 1-9, 1 for 10-26, 2 for 27-40.
func (v Version) group() int { return (int(v) + 7) / 17 }

func (v Version) String() string { return strconv.Itoa(int(v)) }

// A Level represents a QR error correction level, from least to most
// tolerant of errors: LOW, MEDIUM, QUARTILE, HIGH.
type Level int

// QR error correction levels, in ascending order of correction
// strength.
const (
	LOW Level = iota
	MEDIUM
	QUARTILE
	HIGH
)

func (l Level) String() string {
	if l < LOW || l > HIGH {
		return strconv.Itoa(int(l))
	}
	return "LMQH"[l : l+1]
}

// formatBits returns the index used for l when packing format bits,
// per ISO/IEC 18004: LOW=1, MEDIUM=0, QUARTILE=3, HIGH=2. These do not
// follow the ordinal order of Level.
func (l Level) formatBits() int {
	return [4]int{1, 0, 3, 2}[l]
}

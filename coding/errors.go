// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// BadCharsetError reports a rune outside the charset a strict-mode
// segment constructor accepts.
type BadCharsetError struct {
	Mode Mode
	Rune rune
}

func (e *BadCharsetError) Error() string {
	return fmt.Sprintf("qr: character %q not valid in %s mode", e.Rune, e.Mode)
}

// BadEciError reports an ECI assignment value outside [0, 1e6).
type BadEciError struct {
	Value int
}

func (e *BadEciError) Error() string {
	return fmt.Sprintf("qr: eci assignment value %d out of range", e.Value)
}

// DataTooLongError reports a payload that does not fit any version
// from 1 to MaxVersion at the requested error correction level.
type DataTooLongError struct {
	Bits     int // total bits the segments require at MaxVersion
	Capacity int // bits available at MaxVersion and the requested level
}

func (e *DataTooLongError) Error() string {
	return fmt.Sprintf("qr: data too long: %d bits does not fit in %d bits",
		e.Bits, e.Capacity)
}

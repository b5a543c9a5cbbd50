// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestCodeImplementsImageImage(t *testing.T) {
	var _ image.Image = (*Code)(nil)
}

func TestCodeQuietZone(t *testing.T) {
	code, err := EncodeNumeric("42", LOW)
	if err != nil {
		t.Fatalf("EncodeNumeric: %v", err)
	}
	b := code.Bounds()
	if want := code.Size() + 2*quietZone; b.Dx() != want || b.Dy() != want {
		t.Fatalf("Bounds() = %v, want a %dx%d square", b, want, want)
	}
	// The quiet zone itself is always white.
	if got := code.At(0, 0); got != (color.Gray{Y: 0xff}) {
		t.Errorf("At(0,0) = %v, want white", got)
	}
	// The finder pattern's top-left module sits just inside it.
	if got := code.At(quietZone, quietZone); got != (color.Gray{Y: 0x00}) {
		t.Errorf("At(quietZone,quietZone) = %v, want black", got)
	}
}

func TestCodeStringDimensions(t *testing.T) {
	code, err := EncodeNumeric("42", LOW)
	if err != nil {
		t.Fatalf("EncodeNumeric: %v", err)
	}
	lines := strings.Split(strings.TrimRight(code.String(), "\n"), "\n")
	b := code.Bounds()
	if len(lines) != b.Dy() {
		t.Fatalf("String() has %d lines, want %d", len(lines), b.Dy())
	}
	if len(lines[0]) != 2*b.Dx() {
		t.Fatalf("String() line width = %d, want %d", len(lines[0]), 2*b.Dx())
	}
}

func TestEncodeSegmentsRejectsOverflow(t *testing.T) {
	seg := MakeBytes(make([]byte, 4000))
	if _, err := EncodeSegments(LOW, seg); err == nil {
		t.Error("EncodeSegments with a 4000-byte segment succeeded, want DataTooLongError")
	}
}

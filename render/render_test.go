// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/qrcore/qr"
)

func testCode(t *testing.T) *qr.Code {
	t.Helper()
	code, err := qr.EncodeNumeric("42", qr.LOW)
	if err != nil {
		t.Fatalf("EncodeNumeric: %v", err)
	}
	return code
}

func TestWritePNGProducesDecodableImage(t *testing.T) {
	code := testCode(t)
	var buf bytes.Buffer
	if err := WritePNG(&buf, code); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got, want := img.Bounds(), code.Bounds(); got != want {
		t.Errorf("decoded bounds = %v, want %v", got, want)
	}
}

func TestWritePBMHeaderAndSize(t *testing.T) {
	code := testCode(t)
	var buf bytes.Buffer
	if err := WritePBM(&buf, code); err != nil {
		t.Fatalf("WritePBM: %v", err)
	}
	b := code.Bounds()
	header := "P4\n" + itoa(b.Dx()) + " " + itoa(b.Dy()) + "\n"
	if !bytes.HasPrefix(buf.Bytes(), []byte(header)) {
		t.Fatalf("WritePBM header = %q, want prefix %q", buf.Bytes()[:len(header)+5], header)
	}
	wantRowBytes := (b.Dx() + 7) / 8
	wantLen := len(header) + wantRowBytes*b.Dy()
	if buf.Len() != wantLen {
		t.Errorf("WritePBM wrote %d bytes, want %d", buf.Len(), wantLen)
	}
}

func TestWriteASCIIDimensions(t *testing.T) {
	code := testCode(t)
	var buf bytes.Buffer
	if err := WriteASCII(&buf, code); err != nil {
		t.Fatalf("WriteASCII: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	b := code.Bounds()
	if len(lines) != b.Dy() {
		t.Fatalf("WriteASCII produced %d lines, want %d", len(lines), b.Dy())
	}
	for i, line := range lines {
		if len([]rune(line)) != 2*b.Dx() {
			t.Errorf("line %d has %d runes, want %d", i, len([]rune(line)), 2*b.Dx())
		}
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	return string(b)
}

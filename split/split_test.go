// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"testing"

	"github.com/qrcore/qr/coding"
)

func TestClassify(t *testing.T) {
	spans := classify("AB12!!")
	want := []span{
		{0, 2, bitAlphanumeric | bitByte},
		{2, 2, bitNumeric | bitAlphanumeric | bitByte},
		{4, 2, bitByte},
	}
	if len(spans) != len(want) {
		t.Fatalf("classify() = %v, want %v", spans, want)
	}
	for i, s := range spans {
		if s != want[i] {
			t.Errorf("classify()[%d] = %+v, want %+v", i, s, want[i])
		}
	}
}

func TestPlanPicksNumericOverByteForDigits(t *testing.T) {
	segments, err := Plan("0123456789", coding.LOW)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(segments) != 1 || segments[0].Mode() != coding.NUMERIC {
		t.Fatalf("Plan(\"0123456789\") = %v, want a single NUMERIC segment", segments)
	}
}

func TestPlanMixesModes(t *testing.T) {
	// A long numeric run sandwiched between lowercase (byte-only)
	// text should stay numeric rather than be swept into byte mode,
	// since splitting saves enough bits to pay for the extra header.
	text := "order-" + repeatDigits(40) + "-confirmed"
	segments, err := Plan(text, coding.LOW)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	sawNumeric := false
	for _, s := range segments {
		if s.Mode() == coding.NUMERIC {
			sawNumeric = true
		}
	}
	if !sawNumeric {
		t.Errorf("Plan(%q) = %v, want a NUMERIC segment among the splits", text, segments)
	}
}

func repeatDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + i%10)
	}
	return string(b)
}

func TestEncodeTextEndToEnd(t *testing.T) {
	qr, err := EncodeText("HELLO 123 world", coding.MEDIUM)
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	if qr.Version() < 1 {
		t.Errorf("Version() = %d, want >= 1", qr.Version())
	}
}

func TestPlanRejectsEmpty(t *testing.T) {
	if _, err := Plan("", coding.LOW); err != coding.ErrEmptyText {
		t.Errorf("Plan(\"\") error = %v, want ErrEmptyText", err)
	}
}

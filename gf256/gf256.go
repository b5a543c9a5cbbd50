// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic in GF(2^8) modulo the QR code's
// primitive polynomial, and the Reed-Solomon divisor/remainder
// operations built on it.
package gf256 // import "github.com/qrcore/qr/gf256"

// Prime is the primitive polynomial of the field, 0x11D.
const Prime = 0x11d

// Generator is the field's generator element, used to build
// Reed-Solomon divisor polynomials.
const Generator = 0x02

// Elem is an element of GF(2^8).
type Elem = byte

// Multiply returns the product of x and y in GF(2^8), modulo Prime.
// It implements Russian-peasant multiplication with reduction folded
// into each of the eight steps.
func Multiply(x, y Elem) Elem {
	var z int
	for i := 7; i >= 0; i-- {
		z = (z << 1) ^ (z >> 7 * Prime)
		z ^= int(y>>i&1) * int(x)
	}
	if z>>8 != 0 {
		panic("gf256: multiply overflowed a byte")
	}
	return Elem(z)
}

// NewDivisor returns the coefficients of the Reed-Solomon generator
// polynomial of the given degree, highest degree first, omitting the
// always-1 leading coefficient. It is built by iteratively multiplying
// by (x - generator^i) for i in [0, degree).
func NewDivisor(degree int) []Elem {
	if degree < 1 {
		panic("gf256: degree must be positive")
	}
	result := make([]Elem, degree)
	result[degree-1] = 1
	root := Elem(1)
	for i := 0; i < degree; i++ {
		for j := range result {
			result[j] = Multiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = Multiply(root, Generator)
	}
	return result
}

// Remainder returns the remainder of dividing data, interpreted as a
// polynomial with the most significant byte first, by divisor (as
// returned by NewDivisor). The result has len(divisor) bytes.
func Remainder(data, divisor []Elem) []Elem {
	result := make([]Elem, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for j, d := range divisor {
			result[j] ^= Multiply(d, factor)
		}
	}
	return result
}

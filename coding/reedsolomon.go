// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/qrcore/qr/gf256"

// addErrorCorrection splits data into the blocks prescribed for ver
// and level, appends a Reed-Solomon remainder to each, and interleaves
// the blocks column-major into the final codeword sequence drawn onto
// the module matrix.
func addErrorCorrection(data []byte, ver Version, level Level) []byte {
	nb := numBlocks(ver, level)
	eccLen := codewordsPerBlock(ver, level)
	rawCodewords := rawDataModules(ver) / 8
	shortBlockLen := rawCodewords / nb
	numShort := nb - rawCodewords%nb // blocks with one fewer data byte

	divisor := gf256.NewDivisor(eccLen)
	blocks := make([][]byte, nb)
	for i, pos := 0, 0; i < nb; i++ {
		dataLen := shortBlockLen - eccLen
		if i >= numShort {
			dataLen++
		}
		dat := data[pos : pos+dataLen]
		pos += dataLen
		ecc := gf256.Remainder(dat, divisor)
		// Pad short blocks with a dummy byte at the virtual slot so
		// every block has the same length and can be indexed
		// uniformly below; the dummy byte is never emitted.
		block := make([]byte, 0, shortBlockLen+1)
		block = append(block, dat...)
		if i < numShort {
			block = append(block, 0)
		}
		blocks[i] = append(block, ecc...)
	}

	result := make([]byte, 0, rawCodewords)
	virtualPadCol := shortBlockLen - eccLen // short blocks lack this data column
	for col := 0; col <= shortBlockLen; col++ {
		for i, block := range blocks {
			if col == virtualPadCol && i < numShort {
				continue
			}
			result = append(result, block[col])
		}
	}
	if len(result) != rawCodewords {
		panic("qr: internal error: wrong interleaved codeword count")
	}
	return result
}

// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Per-version capacity data, indexed [version-1]. words is the total
// number of codewords (data+ECC) the version holds; remainder is the
// number of leftover bits beyond whole codewords that are still part
// of the raw data-module count (ISO/IEC 18004 table 1). ecTotal[level]
// is the total number of ECC bytes at that level (table 9); blocks[level]
// is {group1Blocks, group2Blocks} (table 9) -- group 1 blocks hold one
// fewer data byte than group 2 blocks, and both groups share the same
// per-block ECC length.
var capacityTab = [40]struct {
	words     int
	remainder int
	ecTotal   [4]int
	blocks    [4][2]int
}{
	{26, 0, [4]int{7, 10, 13, 17}, [4][2]int{{1, 0}, {1, 0}, {1, 0}, {1, 0}}},
	{44, 7, [4]int{10, 16, 22, 28}, [4][2]int{{1, 0}, {1, 0}, {1, 0}, {1, 0}}},
	{70, 7, [4]int{15, 26, 36, 44}, [4][2]int{{1, 0}, {1, 0}, {2, 0}, {2, 0}}},
	{100, 7, [4]int{20, 36, 52, 64}, [4][2]int{{1, 0}, {2, 0}, {2, 0}, {4, 0}}},
	{134, 7, [4]int{26, 48, 72, 88}, [4][2]int{{1, 0}, {2, 0}, {2, 2}, {2, 2}}},
	{172, 7, [4]int{36, 64, 96, 112}, [4][2]int{{2, 0}, {4, 0}, {4, 0}, {4, 0}}},
	{196, 0, [4]int{40, 72, 108, 130}, [4][2]int{{2, 0}, {4, 0}, {2, 4}, {4, 1}}},
	{242, 0, [4]int{48, 88, 132, 156}, [4][2]int{{2, 0}, {2, 2}, {4, 2}, {4, 2}}},
	{292, 0, [4]int{60, 110, 160, 192}, [4][2]int{{2, 0}, {3, 2}, {4, 4}, {4, 4}}},
	{346, 0, [4]int{72, 130, 192, 224}, [4][2]int{{2, 2}, {4, 1}, {6, 2}, {6, 2}}},

	{404, 0, [4]int{80, 150, 224, 264}, [4][2]int{{4, 0}, {1, 4}, {4, 4}, {3, 8}}},
	{466, 0, [4]int{96, 176, 260, 308}, [4][2]int{{2, 2}, {6, 2}, {4, 6}, {7, 4}}},
	{532, 0, [4]int{104, 198, 288, 352}, [4][2]int{{4, 0}, {8, 1}, {8, 4}, {12, 4}}},
	{581, 3, [4]int{120, 216, 320, 384}, [4][2]int{{3, 1}, {4, 5}, {11, 5}, {11, 5}}},
	{655, 3, [4]int{132, 240, 360, 432}, [4][2]int{{5, 1}, {5, 5}, {5, 7}, {11, 7}}},
	{733, 3, [4]int{144, 280, 408, 480}, [4][2]int{{5, 1}, {7, 3}, {15, 2}, {3, 13}}},
	{815, 3, [4]int{168, 308, 448, 532}, [4][2]int{{1, 5}, {10, 1}, {1, 15}, {2, 17}}},
	{901, 3, [4]int{180, 338, 504, 588}, [4][2]int{{5, 1}, {9, 4}, {17, 1}, {2, 19}}},
	{991, 3, [4]int{196, 364, 546, 650}, [4][2]int{{3, 4}, {3, 11}, {17, 4}, {9, 16}}},
	{1085, 3, [4]int{224, 416, 600, 700}, [4][2]int{{3, 5}, {3, 13}, {15, 5}, {15, 10}}},

	{1156, 4, [4]int{224, 442, 644, 750}, [4][2]int{{4, 4}, {17, 0}, {17, 6}, {19, 6}}},
	{1258, 4, [4]int{252, 476, 690, 816}, [4][2]int{{2, 7}, {17, 0}, {7, 16}, {34, 0}}},
	{1364, 4, [4]int{270, 504, 750, 900}, [4][2]int{{4, 5}, {4, 14}, {11, 14}, {16, 14}}},
	{1474, 4, [4]int{300, 560, 810, 960}, [4][2]int{{6, 4}, {6, 14}, {11, 16}, {30, 2}}},
	{1588, 4, [4]int{312, 588, 870, 1050}, [4][2]int{{8, 4}, {8, 13}, {7, 22}, {22, 13}}},
	{1706, 4, [4]int{336, 644, 952, 1110}, [4][2]int{{10, 2}, {19, 4}, {28, 6}, {33, 4}}},
	{1828, 4, [4]int{360, 700, 1020, 1200}, [4][2]int{{8, 4}, {22, 3}, {8, 26}, {12, 28}}},
	{1921, 3, [4]int{390, 728, 1050, 1260}, [4][2]int{{3, 10}, {3, 23}, {4, 31}, {11, 31}}},
	{2051, 3, [4]int{420, 784, 1140, 1350}, [4][2]int{{7, 7}, {21, 7}, {1, 37}, {19, 26}}},
	{2185, 3, [4]int{450, 812, 1200, 1440}, [4][2]int{{5, 10}, {19, 10}, {15, 25}, {23, 25}}},

	{2323, 3, [4]int{480, 868, 1290, 1530}, [4][2]int{{13, 3}, {2, 29}, {42, 1}, {23, 28}}},
	{2465, 3, [4]int{510, 924, 1350, 1620}, [4][2]int{{17, 0}, {10, 23}, {10, 35}, {19, 35}}},
	{2611, 3, [4]int{540, 980, 1440, 1710}, [4][2]int{{17, 1}, {14, 21}, {29, 19}, {11, 46}}},
	{2761, 3, [4]int{570, 1036, 1530, 1800}, [4][2]int{{13, 6}, {14, 23}, {44, 7}, {59, 1}}},
	{2876, 0, [4]int{570, 1064, 1590, 1890}, [4][2]int{{12, 7}, {12, 26}, {39, 14}, {22, 41}}},
	{3034, 0, [4]int{600, 1120, 1680, 1980}, [4][2]int{{6, 14}, {6, 34}, {46, 10}, {2, 64}}},
	{3196, 0, [4]int{630, 1204, 1770, 2100}, [4][2]int{{17, 4}, {29, 14}, {49, 10}, {24, 46}}},
	{3362, 0, [4]int{660, 1260, 1860, 2220}, [4][2]int{{4, 18}, {13, 32}, {48, 14}, {42, 32}}},
	{3532, 0, [4]int{720, 1316, 1950, 2310}, [4][2]int{{20, 4}, {40, 7}, {43, 22}, {10, 67}}},
	{3706, 0, [4]int{750, 1372, 2040, 2430}, [4][2]int{{19, 6}, {18, 31}, {34, 34}, {20, 61}}},
}

// rawDataModules returns the number of modules available to carry
// data and ECC at version v, including leftover remainder bits that
// don't fill a whole codeword.
func rawDataModules(v Version) int {
	c := &capacityTab[v-1]
	return c.words*8 + c.remainder
}

// numBlocks returns the number of Reed-Solomon blocks at version v and
// level l.
func numBlocks(v Version, l Level) int {
	b := &capacityTab[v-1].blocks[l]
	return b[0] + b[1]
}

// codewordsPerBlock returns the number of ECC codewords in each block
// at version v and level l.
func codewordsPerBlock(v Version, l Level) int {
	return capacityTab[v-1].ecTotal[l] / numBlocks(v, l)
}

// numDataCodewords returns the number of non-ECC (data) codewords
// carried at version v and level l.
func numDataCodewords(v Version, l Level) int {
	c := &capacityTab[v-1]
	return c.words - c.ecTotal[l]
}

// DataCapacityBits returns the number of bits of data (segment
// headers and payload, excluding error correction) version v can
// carry at level l. An external segment planner (see package split)
// uses this to size candidate splits without duplicating the
// capacity table.
func (v Version) DataCapacityBits(l Level) int {
	return 8 * numDataCodewords(v, l)
}

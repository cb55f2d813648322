package glyph5x5

// Bit y*5+x is set when the pixel at column x, row y is lit.
const (
	glyphA = 0b1000110001111111000101110
	glyphB = 0b0111110001011111000101111
	glyphC = 0b0111010001000011000101110
	glyphD = 0b0011101001100010100100111
	glyphE = 0b1111100001111110000111111
	glyphF = 0b0001000010111110001011111
	glyphG = 0b0111010001111010000101110
	glyphH = 0b1000110001111111000110001
	glyphI = 0b1111100100001000010011111
	glyphJ = 0b0011001001010000100011111
	glyphK = 0b0100100101000110010101001
	glyphL = 0b1111100001000010000100001
	glyphM = 0b1000110001101011101110001
	glyphN = 0b1000111001101011001110001
	glyphO = 0b0111010001100011000101110
	glyphP = 0b0000100001011111000101111
	glyphQ = 0b1011001001100011000101110
	glyphR = 0b1100101001001110100100111
	glyphS = 0b0111110000011100000111110
	glyphT = 0b0010000100001000010011111
	glyphU = 0b0111010001100011000110001
	glyphV = 0b0010001010100011000110001
	glyphW = 0b0101010101100011000110001
	glyphX = 0b1000101010001000101010001
	glyphY = 0b0010000100001000101010001
	glyphZ = 0b1111100001011101000011111

	glyph0 = 0b0111010011101011100101110
	glyph1 = 0b1111100100001000011000100
	glyph2 = 0b1111100001111111000011111
	glyph3 = 0b0111110000111101000001111
	glyph4 = 0b1000010000111111000110001
	glyph5 = 0b1111110000111110000111111
	glyph6 = 0b0111010001011110000101110
	glyph7 = 0b0010000100010001000011111
	glyph8 = 0b0111010001011101000101110
	glyph9 = 0b0111010000111101000101110

	glyphPeriod = 1 << 22
	glyphComma  = 1<<17 | 1<<21
	glyphColon  = 1<<7 | 1<<17
	glyphHyphen = 1<<11 | 1<<12 | 1<<13

	glyphSpace   = 0
	GlyphUnknown = 0b1010101010101010101010101
)

var letters = [26]uint32{
	glyphA, glyphB, glyphC, glyphD, glyphE, glyphF, glyphG, glyphH, glyphI,
	glyphJ, glyphK, glyphL, glyphM, glyphN, glyphO, glyphP, glyphQ, glyphR,
	glyphS, glyphT, glyphU, glyphV, glyphW, glyphX, glyphY, glyphZ,
}

var digits = [10]uint32{
	glyph0, glyph1, glyph2, glyph3, glyph4, glyph5, glyph6, glyph7, glyph8, glyph9,
}

// Bits returns the bitmap for r. Lowercase letters use the uppercase glyph;
// runes without a glyph get a checkerboard.
func Bits(r rune) uint32 {
	switch {
	case r >= 'A' && r <= 'Z':
		return letters[r-'A']
	case r >= 'a' && r <= 'z':
		return letters[r-'a']
	case r >= '0' && r <= '9':
		return digits[r-'0']
	}
	switch r {
	case ' ':
		return glyphSpace
	case '.':
		return glyphPeriod
	case ',':
		return glyphComma
	case ':':
		return glyphColon
	case '-':
		return glyphHyphen
	}
	return GlyphUnknown
}

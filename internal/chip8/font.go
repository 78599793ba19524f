package chip8

// fontSet is the standard CHIP-8 font, found in most CHIP-8 references
// (e.g. http://www.multigesture.net/articles/how-to-write-an-emulator-chip-8-interpreter).
// Each glyph is 5 bytes; the top nibble of each byte encodes an 8-pixel-wide
// row (the low nibble is always zero). Glyphs are preloaded at memory
// offsets 0, 5, 10, ..., 75 by NewVM, and Fx29 points I at
// fontBaseAddr + (V[x]&0xF)*fontGlyphSize.
var fontSet = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

const (
	fontBaseAddr  = 0x000
	fontGlyphSize = 5
)

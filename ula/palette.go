package ula

// Video attribute bits, set by the 0x18-0x1F control code's low 3 bits.
const (
	videoAttrib50Hz = 0x01
	VideoAttribHires = 0x02
)

// Text attribute bits, set by the 0x08-0x0F control code's low 3 bits.
const (
	TextAttribAlternateCharset = 0x01
	TextAttribDoubleSize       = 0x02
	textAttribBlink            = 0x04
)

// colors is the Oric's fixed 8-entry RGB palette (black, red, green,
// yellow, blue, magenta, cyan, white), packed as 0xAARRGGBB with alpha
// always opaque in the top byte.
var colors = [8]uint32{
	0xFF000000,
	0xFFFF0000,
	0xFF00FF00,
	0xFFFFFF00,
	0xFF0000FF,
	0xFFFF00FF,
	0xFF00FFFF,
	0xFFFFFFFF,
}

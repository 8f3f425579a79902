package ula

const (
	rasterMax           = 312
	VisibleLines        = 224
	visibleFirst        = 44
	visibleLast         = visibleFirst + VisibleLines
	VisibleWidth        = 240 // 40 characters * 6 pixels
	bytesPerPixel       = 4
	charColumns         = 40
	warpModeFrameSkip   = 25
)

// Bus is the memory interface the ULA reads screen data and character
// generator ROM through.
type Bus interface {
	ReadByte(addr uint16) byte
}

// ULA is a cycle-stepped raster video generator. PaintRaster renders
// exactly one scanline per call.
type ULA struct {
	bus Bus

	pixels []byte // VisibleWidth * VisibleLines * bytesPerPixel, ARGB8888

	rasterCurrent  uint16
	videoAttrib    byte
	textAttrib     byte
	warpmodeCounter int
	blink          byte
	frameCount     uint32

	charMask [64][3]uint64
}

// New creates a ULA reading screen memory through bus.
func New(bus Bus) *ULA {
	u := &ULA{
		bus:    bus,
		pixels: make([]byte, VisibleWidth*VisibleLines*bytesPerPixel),
		blink:  0x3f,
	}
	u.buildCharMasks()
	return u
}

// buildCharMasks precomputes, for every 6-bit character pattern, three
// 64-bit lane masks (two packed 32-bit pixel masks each) used to
// branchlessly blend foreground/background colour across all six pixels
// of a character column.
func (u *ULA) buildCharMasks() {
	laneMask := func(pat int, bit int) uint64 {
		if pat&(1<<bit) != 0 {
			return 0xFFFFFFFF
		}
		return 0
	}
	for pat := 0; pat < 64; pat++ {
		u.charMask[pat][0] = laneMask(pat, 5) | laneMask(pat, 4)<<32
		u.charMask[pat][1] = laneMask(pat, 3) | laneMask(pat, 2)<<32
		u.charMask[pat][2] = laneMask(pat, 1) | laneMask(pat, 0)<<32
	}
}

// Pixels returns the current ARGB8888 framebuffer, VisibleWidth *
// VisibleLines * 4 bytes, row-major, each pixel a little-endian
// 0xAARRGGBB word.
func (u *ULA) Pixels() []byte { return u.pixels }

// PaintRaster renders the current raster line (if visible) and advances
// to the next. It reports true when a full frame has just completed and
// should be presented; under warp mode only every 25th frame is reported.
func (u *ULA) PaintRaster(warpModeOn bool) bool {
	if u.rasterCurrent >= visibleFirst && u.rasterCurrent < visibleLast {
		u.updateGraphics(byte(u.rasterCurrent - visibleFirst))
	}

	u.rasterCurrent++
	if u.rasterCurrent != rasterMax {
		return false
	}
	u.rasterCurrent = 0

	if warpModeOn {
		u.warpmodeCounter = (u.warpmodeCounter + 1) % warpModeFrameSkip
		if u.warpmodeCounter != 0 {
			return false
		}
	}

	u.frameCount++
	return true
}

func calcRowAddr(rasterLine byte, videoAttrib byte) uint16 {
	if videoAttrib&VideoAttribHires != 0 && rasterLine < 200 {
		return 0xA000 + uint16(rasterLine)*40
	}
	return 0xBB80 + uint16(rasterLine>>3)*40
}

func (u *ULA) updateGraphics(rasterLine byte) {
	bgCol := colors[0]
	fgCol := colors[7]
	u.textAttrib = 0
	u.blink = 0x3f

	row := calcRowAddr(rasterLine, u.videoAttrib)
	lineOffset := int(rasterLine) * VisibleWidth * bytesPerPixel

	for x := uint16(0); x < charColumns; x++ {
		ctrlChar := false
		ch := u.bus.ReadByte(row + x)

		if ch&0x60 == 0 {
			ctrlChar = true
			switch ch & 0x18 {
			case 0x00:
				fgCol = colors[ch&7]
			case 0x08:
				u.textAttrib = ch & 7
				if ch&textAttribBlink != 0 {
					u.blink = 0x00
				} else {
					u.blink = 0x3f
				}
			case 0x10:
				bgCol = colors[ch&7]
			case 0x18:
				u.videoAttrib = ch & 0x07
				row = calcRowAddr(rasterLine, u.videoAttrib)
			}
		}

		mask := u.blink
		if u.frameCount&0x10 != 0 {
			mask = 0x3f
		}

		var chrDat byte
		if !ctrlChar {
			if u.videoAttrib&VideoAttribHires != 0 && rasterLine < 200 {
				chrDat = ch & mask
			} else {
				charBase := uint16(0xB400)
				if u.videoAttrib&VideoAttribHires != 0 {
					charBase = 0x9800
				}
				if u.textAttrib&TextAttribAlternateCharset != 0 {
					charBase += 128 * 8
				}
				apan := rasterLine & 0x07
				if u.textAttrib&TextAttribDoubleSize != 0 {
					apan = (rasterLine >> 1) & 0x07
				}
				chrDat = u.bus.ReadByte(charBase+uint16(ch&0x7f)<<3+uint16(apan)) & mask
			}
		}

		inv := uint32(0)
		if ch&0x80 != 0 {
			inv = 0x00FFFFFF // preserve alpha byte, invert RGB
		}
		fgEff := fgCol ^ inv
		bgEff := bgCol ^ inv

		fg64 := uint64(fgEff) | uint64(fgEff)<<32
		bg64 := uint64(bgEff) | uint64(bgEff)<<32
		m := u.charMask[chrDat&0x3F]
		fx := fg64 ^ bg64

		out := []uint64{bg64 ^ (m[0] & fx), bg64 ^ (m[1] & fx), bg64 ^ (m[2] & fx)}
		writeOffset := lineOffset + int(x)*6*bytesPerPixel
		for i, word := range out {
			putUint64(u.pixels[writeOffset+i*8:], word)
		}
	}
}

func putUint64(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

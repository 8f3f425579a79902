package ula

import "testing"

type testBus struct {
	mem [0x10000]byte
}

func (b *testBus) ReadByte(addr uint16) byte { return b.mem[addr] }

func TestPaintRasterReportsFrameAtWrap(t *testing.T) {
	bus := &testBus{}
	u := New(bus)
	reported := false
	for i := 0; i < rasterMax; i++ {
		if u.PaintRaster(false) {
			reported = true
		}
	}
	if !reported {
		t.Fatal("expected a frame to be reported after rasterMax lines")
	}
}

func TestWarpModeSkipsFrames(t *testing.T) {
	bus := &testBus{}
	u := New(bus)
	reportedCount := 0
	for frame := 0; frame < warpModeFrameSkip; frame++ {
		for i := 0; i < rasterMax; i++ {
			if u.PaintRaster(true) {
				reportedCount++
			}
		}
	}
	if reportedCount != 1 {
		t.Fatalf("expected exactly 1 reported frame per %d under warp mode, got %d", warpModeFrameSkip, reportedCount)
	}
}

func TestInkControlCodeSetsForeground(t *testing.T) {
	bus := &testBus{}
	// Text row for line 0: row = 0xBB80.
	bus.mem[0xBB80] = 0x02 // control code: set ink to color index 2 (green)
	bus.mem[0xBB81] = 'A' & 0x7f
	bus.mem[0xB400+0x41*8] = 0x3F // top line of 'A' in the text charset: all six pixels set
	u := New(bus)
	u.updateGraphics(0)
	// Column 1's first pixel is a set pixel of 'A', so it must be drawn in
	// the ink chosen by column 0's control code.
	if len(u.pixels) == 0 {
		t.Fatal("expected non-empty pixel buffer")
	}
	p := u.pixels
	if got := uint32(p[24]) | uint32(p[25])<<8 | uint32(p[26])<<16 | uint32(p[27])<<24; got != colors[2] {
		t.Fatalf("column 1 pixel = %08X, want ink colour %08X", got, colors[2])
	}
}

func TestHiresRowAddressing(t *testing.T) {
	if calcRowAddr(0, VideoAttribHires) != 0xA000 {
		t.Fatalf("hires row 0 addr = %04X, want A000", calcRowAddr(0, VideoAttribHires))
	}
	if calcRowAddr(199, VideoAttribHires) != 0xA000+199*40 {
		t.Fatalf("hires row 199 addr mismatch")
	}
	if calcRowAddr(200, VideoAttribHires) != 0xBB80+(200>>3)*40 {
		t.Fatal("hires row >= 200 should fall back to text addressing")
	}
}

func TestTextRowAddressing(t *testing.T) {
	if calcRowAddr(8, 0) != 0xBB80+40 {
		t.Fatalf("text row 8 addr = %04X, want %04X", calcRowAddr(8, 0), 0xBB80+40)
	}
}

// Package ula implements the Oric's ULA (Uncommitted Logic Array), the
// chip responsible for turning the contents of screen memory into a
// raster image. PaintRaster is stepped once per scanline (312 per frame,
// 224 of them visible); it renders one line of a 240x224 ARGB8888
// framebuffer and reports when a full frame is ready for the display
// collaborator.
//
// Screen memory layout:
//
//	0xA000-0xBF3F  hires bitmap (200 lines x 40 bytes)
//	0xBB80-0xBFDF  text/attribute row data (28 lines x 40 bytes)
//	0xB400/0x9800  character generator regions for text/hires mode
//	               (alternate charset 0x400 above each)
//
// Control codes (byte & 0x60 == 0) embedded in the character stream set
// ink, paper, text attributes or video attributes instead of printing a
// glyph; everything else renders as a 6-pixel-wide character pattern.
package ula

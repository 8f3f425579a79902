package display

import "github.com/veandco/go-sdl2/sdl"

// keyPos is one key's position in the Oric's 8x8 keyboard scan matrix.
type keyPos struct{ row, col int }

// keymap translates an SDL key symbol to its position in the matrix that
// machine.Machine.KeyDown/KeyUp expect. The exact row/col wiring of a real
// Oric-1 keyboard driver was not available to ground this against, so the
// assignment below is our own, internally-consistent layout covering the
// full alphabet, digits, punctuation, cursor keys and the two shift keys
// well enough to drive BASIC and games from a modern keyboard.
var keymap = map[sdl.Keycode]keyPos{
	sdl.K_3: {0, 0}, sdl.K_HASH: {0, 1}, sdl.K_COMMA: {0, 2}, sdl.K_PERIOD: {0, 3},
	sdl.K_UP: {0, 4}, sdl.K_DOWN: {0, 5}, sdl.K_LEFT: {0, 6}, sdl.K_RIGHT: {0, 7},

	sdl.K_x: {1, 0}, sdl.K_2: {1, 1}, sdl.K_v: {1, 2}, sdl.K_g: {1, 3},
	sdl.K_0: {1, 4}, sdl.K_b: {1, 5}, sdl.K_h: {1, 6}, sdl.K_n: {1, 7},

	sdl.K_d: {2, 0}, sdl.K_1: {2, 1}, sdl.K_f: {2, 2}, sdl.K_t: {2, 3},
	sdl.K_9: {2, 4}, sdl.K_c: {2, 5}, sdl.K_y: {2, 6}, sdl.K_j: {2, 7},

	sdl.K_SEMICOLON: {3, 0}, sdl.K_MINUS: {3, 1}, sdl.K_k: {3, 2}, sdl.K_5: {3, 3},
	sdl.K_QUOTE: {3, 4}, sdl.K_m: {3, 5}, sdl.K_6: {3, 6}, sdl.K_SLASH: {3, 7},

	sdl.K_l: {4, 0}, sdl.K_8: {4, 1}, sdl.K_p: {4, 2}, sdl.K_r: {4, 3},
	sdl.K_EQUALS: {4, 4}, sdl.K_COLON: {4, 5}, sdl.K_i: {4, 6}, sdl.K_u: {4, 7},

	sdl.K_q: {5, 0}, sdl.K_ESCAPE: {5, 1}, sdl.K_w: {5, 2}, sdl.K_s: {5, 3},
	sdl.K_4: {5, 4}, sdl.K_z: {5, 5}, sdl.K_e: {5, 6}, sdl.K_a: {5, 7},

	sdl.K_7: {6, 0}, sdl.K_LEFTBRACKET: {6, 1}, sdl.K_o: {6, 2}, sdl.K_BACKQUOTE: {6, 3},
	sdl.K_RIGHTBRACKET: {6, 4}, sdl.K_BACKSLASH: {6, 5},

	sdl.K_LCTRL: {7, 0}, sdl.K_RCTRL: {7, 0},
	sdl.K_LSHIFT: {7, 1}, sdl.K_RSHIFT: {7, 1},
	sdl.K_SPACE: {7, 2}, sdl.K_RETURN: {7, 3}, sdl.K_BACKSPACE: {7, 4},
}

// lookupKey reports the matrix position for sym, if any key maps to it.
func lookupKey(sym sdl.Keycode) (row, col int, ok bool) {
	pos, ok := keymap[sym]
	return pos.row, pos.col, ok
}

package tape

import "fmt"

// Pulse widths, in CPU cycles, of the two half-cycle lengths a tape bit
// is encoded with: a long pulse for the low half of a 0 bit, and a short
// pulse for the low half of a 1 bit and for every high half, gap and
// end-of-block pulse.
const (
	Pulse1Cycles = 208
	Pulse0Cycles = 417
)

const (
	syncByte    = 0x16
	syncEndByte = 0x24
)

// State is the tape transport's current phase.
type State int

const (
	StateIdle State = iota
	StateFail
	StateParseHeader
	StateLeader
	StateHeader
	StateGap
	StateBody
	StateEndOfBlock
)

// CB1Setter is the VIA input line the tape transport's bit pulses drive.
type CB1Setter interface {
	SetCB1(value bool)
}

// Tape is a cycle-stepped TAP file player.
type Tape struct {
	cb1 CB1Setter

	data []byte

	state State

	syncEnd          int
	bodyStart        int
	bodyRemaining    int
	gapBitsRemaining int
	leaderCount      int

	stoppedMidByte bool
	motorRunning   bool

	tapePos   int
	bitIndex  int
	currentByte byte
	currentBit  byte
	parity      byte

	cycleCounter int
	lineOut      byte
}

// New returns an idle tape transport driving cb1.
func New(cb1 CB1Setter) *Tape {
	t := &Tape{cb1: cb1}
	t.Reset()
	return t
}

// Reset returns the transport to its idle, motor-off state without
// discarding any loaded tape image.
func (t *Tape) Reset() {
	t.motorRunning = false
	t.state = StateIdle
	t.syncEnd = 0
	t.bodyStart = 0
	t.bodyRemaining = 0
	t.stoppedMidByte = false
	t.leaderCount = 0
	t.tapePos = 0
	t.bitIndex = 0
	t.currentByte = 0
	t.currentBit = 0
	t.parity = 0
	t.cycleCounter = 0
	t.lineOut = 0
}

// Load replaces the tape image and rewinds to its start.
func (t *Tape) Load(data []byte) {
	t.data = data
	t.Reset()
}

// State returns the transport's current phase.
func (t *Tape) State() State { return t.state }

// MotorRunning reports whether the tape motor is currently engaged.
func (t *Tape) MotorRunning() bool { return t.motorRunning }

// Position returns the current byte offset into the loaded tape image.
func (t *Tape) Position() int { return t.tapePos }

// MotorOn engages or disengages the tape motor. A byte interrupted by a
// motor-off is dropped when the motor restarts.
func (t *Tape) MotorOn(on bool) {
	if on == t.motorRunning {
		return
	}
	t.motorRunning = on

	if on {
		if t.stoppedMidByte {
			t.tapePos++
			t.stoppedMidByte = false
		}
		t.state = StateParseHeader
		return
	}

	if t.bitIndex > 0 {
		t.stoppedMidByte = true
		t.bitIndex = 0
	}
}

// Tick advances the transport by one CPU cycle.
func (t *Tape) Tick() {
	if !t.motorRunning {
		return
	}
	if t.state == StateIdle || t.state == StateFail {
		return
	}

	if t.state == StateParseHeader {
		if !t.parseHeader() {
			t.motorRunning = false
			t.state = StateFail
			return
		}
		t.cb1.SetCB1(true)
		t.lineOut = 1
		t.state = StateLeader
		return
	}

	if t.state == StateEndOfBlock {
		t.cb1.SetCB1(true)
		t.lineOut = 1
		t.cycleCounter = Pulse1Cycles
		return
	}

	if t.cycleCounter > 1 {
		t.cycleCounter--
		return
	}

	t.lineOut ^= 1
	t.cb1.SetCB1(t.lineOut != 0)

	if t.state == StateGap {
		t.cycleCounter = Pulse1Cycles
		if t.lineOut != 0 {
			return
		}
		t.gapBitsRemaining--
		if t.gapBitsRemaining == 0 {
			t.state = StateBody
		}
		return
	}

	if t.lineOut == 0 {
		if t.currentBit != 0 {
			t.cycleCounter = Pulse1Cycles
		} else {
			t.cycleCounter = Pulse0Cycles
		}
		return
	}

	if t.bitIndex == 0 {
		switch t.state {
		case StateLeader:
			t.currentByte = syncByte
		case StateHeader, StateBody:
			t.currentByte = t.data[t.tapePos]
		default:
			t.currentByte = 0xFF
		}
	}

	t.currentBit = t.nextBit()
	t.cycleCounter = Pulse1Cycles

	if t.bitIndex != 0 {
		return
	}

	switch t.state {
	case StateLeader:
		if t.tapePos < t.syncEnd {
			t.tapePos++
		} else if t.leaderCount > 0 {
			t.leaderCount--
		}
		if t.tapePos >= t.syncEnd && t.leaderCount == 0 {
			t.state = StateHeader
		}
	case StateHeader:
		t.tapePos++
		if t.tapePos == t.bodyStart {
			t.gapBitsRemaining = 10
			t.state = StateGap
		}
	case StateBody:
		t.tapePos++
		t.bodyRemaining--
		if t.bodyRemaining == 0 {
			t.state = StateEndOfBlock
		}
	}
}

// nextBit returns the next sub-bit of the current 14-sub-bit byte frame:
// start bit, a fixed 0, 8 data bits LSB-first, parity, two stop bits and
// a final stop, after which bitIndex wraps back to 0 for the next byte.
func (t *Tape) nextBit() byte {
	switch {
	case t.bitIndex == 0:
		t.parity = 1
		t.bitIndex = 1
		return 1
	case t.bitIndex == 1:
		t.bitIndex = 2
		return 0
	case t.bitIndex <= 9:
		b := (t.currentByte >> (t.bitIndex - 2)) & 0x01
		t.parity ^= b
		t.bitIndex++
		return b
	case t.bitIndex == 10:
		t.bitIndex++
		return t.parity
	case t.bitIndex == 11:
		t.bitIndex++
		return 1
	case t.bitIndex == 12:
		t.bitIndex++
		return 1
	default:
		t.bitIndex = 0
		return 1
	}
}

// parseHeader scans the loaded tape image at the current position for a
// leader of 0x16 sync bytes, a 0x24 marker, and the fixed-layout header
// fields that follow, setting up the state needed to play the leader,
// gap and body that come after it.
func (t *Tape) parseHeader() bool {
	i := 0
	for {
		if t.tapePos+i >= len(t.data) {
			return false
		}
		if t.data[t.tapePos+i] != syncByte {
			break
		}
		i++
	}
	syncLen := i
	t.syncEnd = t.tapePos + i

	if i < 3 {
		return false
	}
	if t.data[t.tapePos+i] != syncEndByte {
		return false
	}
	i++

	if t.tapePos+i+9 >= len(t.data) {
		return false
	}

	i += 2 // reserved bytes

	fileType := t.data[t.tapePos+i]
	i++
	autoFlag := t.data[t.tapePos+i]
	i++

	basicMode := fileType == 0x00 || autoFlag == 0x80
	desiredSync := 112
	if basicMode {
		desiredSync = 192
	}

	endAddress := uint16(t.data[t.tapePos+i])<<8 | uint16(t.data[t.tapePos+i+1])
	i += 2
	startAddress := uint16(t.data[t.tapePos+i])<<8 | uint16(t.data[t.tapePos+i+1])
	i += 2

	i++ // reserved byte

	for {
		if t.tapePos+i >= len(t.data) {
			return false
		}
		if t.data[t.tapePos+i] == 0x00 {
			break
		}
		i++
	}

	t.bodyStart = t.tapePos + i + 1
	t.bodyRemaining = int(endAddress) - int(startAddress) + 1
	if syncLen < desiredSync {
		t.leaderCount = desiredSync - syncLen
	} else {
		t.leaderCount = 0
	}
	return true
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateFail:
		return "Fail"
	case StateParseHeader:
		return "ParseHeader"
	case StateLeader:
		return "Leader"
	case StateHeader:
		return "Header"
	case StateGap:
		return "Gap"
	case StateBody:
		return "Body"
	case StateEndOfBlock:
		return "EndOfBlock"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

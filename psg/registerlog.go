package psg

// registerChange is one timestamped write to an audio-affecting register.
type registerChange struct {
	cycle    uint32
	register byte
	value    byte
}

// registerChangeLogCapacity bounds the log the way boost::circular_buffer
// does: once full, the oldest unconsumed entry is dropped to make room for
// the newest.
const registerChangeLogCapacity = 32768

// registerChangeLogWatermark is the queue length at which trimRegisterChanges
// gives up on sample-accurate timing and applies every queued change at
// once, the escape valve against unbounded growth while warp mode runs the
// CPU far ahead of the audio clock.
const registerChangeLogWatermark = 200

// registerChangeLog is a bounded FIFO of pending register writes, indexed
// by the producing cycle so the audio mixer can apply each write at the
// correct point within its sample window.
type registerChangeLog struct {
	buffer []registerChange

	logCycle       uint32
	newLogCycle    uint32
	updateLogCycle bool
}

func (l *registerChangeLog) reset() {
	l.buffer = l.buffer[:0]
	l.logCycle = 0
	l.newLogCycle = 0
	l.updateLogCycle = false
}

// tick advances the log's cycle clock by cycles bus cycles.
func (l *registerChangeLog) tick(cycles uint8) {
	if l.updateLogCycle {
		l.logCycle = l.newLogCycle
		l.updateLogCycle = false
	}
	l.logCycle += uint32(cycles)
}

func (l *registerChangeLog) push(reg, value byte) {
	if len(l.buffer) >= registerChangeLogCapacity {
		l.buffer = l.buffer[1:]
	}
	l.buffer = append(l.buffer, registerChange{cycle: l.logCycle, register: reg, value: value})
}

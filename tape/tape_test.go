package tape

import "testing"

type cb1Recorder struct {
	values []bool
}

func (c *cb1Recorder) SetCB1(v bool) { c.values = append(c.values, v) }

func buildTapeImage(bodyType byte, body []byte) []byte {
	var buf []byte
	for i := 0; i < 4; i++ {
		buf = append(buf, syncByte)
	}
	buf = append(buf, syncEndByte)
	buf = append(buf, 0x00, 0x00) // reserved
	buf = append(buf, bodyType)   // file type
	buf = append(buf, 0x00)       // auto flag
	end := uint16(len(body) - 1)
	buf = append(buf, byte(end>>8), byte(end))     // end address
	buf = append(buf, 0x00, 0x00)                  // start address
	buf = append(buf, 0x00)                         // reserved
	buf = append(buf, 'A', 0x00)                    // name, NUL-terminated
	buf = append(buf, body...)
	return buf
}

func TestParseHeaderComputesBodyRange(t *testing.T) {
	body := []byte{0xAA, 0xBB, 0xCC}
	rec := &cb1Recorder{}
	tp := New(rec)
	tp.Load(buildTapeImage(0x00, body))

	if !tp.parseHeader() {
		t.Fatal("expected parseHeader to succeed")
	}
	if tp.bodyRemaining != len(body) {
		t.Fatalf("bodyRemaining = %d, want %d", tp.bodyRemaining, len(body))
	}
	if tp.bodyStart != len(tp.data)-len(body) {
		t.Fatalf("bodyStart = %d, want %d", tp.bodyStart, len(tp.data)-len(body))
	}
	if tp.leaderCount != 192-4 {
		t.Fatalf("leaderCount = %d, want %d (BASIC desired sync 192, found 4)", tp.leaderCount, 192-4)
	}
}

func TestParseHeaderMachineCodeWantsShorterLeader(t *testing.T) {
	body := []byte{0x01}
	rec := &cb1Recorder{}
	tp := New(rec)
	tp.Load(buildTapeImage(0x80, body))

	if !tp.parseHeader() {
		t.Fatal("expected parseHeader to succeed")
	}
	if tp.leaderCount != 112-4 {
		t.Fatalf("leaderCount = %d, want %d (machine code desired sync 112)", tp.leaderCount, 112-4)
	}
}

func TestParseHeaderFailsWithoutSyncMarker(t *testing.T) {
	rec := &cb1Recorder{}
	tp := New(rec)
	tp.Load([]byte{0x00, 0x01, 0x02})
	if tp.parseHeader() {
		t.Fatal("expected parseHeader to fail with no leader at all")
	}
}

func TestNextBitFrameSequence(t *testing.T) {
	rec := &cb1Recorder{}
	tp := New(rec)
	tp.currentByte = 0xAA // 1010 1010, LSB first: 0,1,0,1,0,1,0,1

	// start, 0, 8 data bits LSB-first, parity, two stop bits, final stop.
	want := []byte{1, 0, 0, 1, 0, 1, 0, 1, 0, 1, 1 /* parity of 0xAA's bits */, 1, 1, 1}
	for i, w := range want {
		got := tp.nextBit()
		if got != w {
			t.Fatalf("sub-bit %d = %d, want %d", i, got, w)
		}
	}
	if tp.bitIndex != 0 {
		t.Fatalf("bitIndex = %d after a full frame, want wrap to 0", tp.bitIndex)
	}
}

func TestMotorOnTransitionsToParseHeader(t *testing.T) {
	rec := &cb1Recorder{}
	tp := New(rec)
	tp.Load(buildTapeImage(0x00, []byte{0x01}))

	if tp.state != StateIdle {
		t.Fatalf("state = %v before motor on, want Idle", tp.state)
	}
	tp.MotorOn(true)
	if tp.state != StateParseHeader {
		t.Fatalf("state = %v after motor on, want ParseHeader", tp.state)
	}
}

func TestMotorOffMidByteDropsByteOnResume(t *testing.T) {
	rec := &cb1Recorder{}
	tp := New(rec)
	tp.Load(buildTapeImage(0x00, []byte{0x01}))
	tp.MotorOn(true)
	tp.bitIndex = 5 // pretend we are mid-frame
	tp.tapePos = 2

	tp.MotorOn(false)
	if !tp.stoppedMidByte {
		t.Fatal("expected stoppedMidByte to be set when motor stops mid-frame")
	}
	if tp.bitIndex != 0 {
		t.Fatal("expected bitIndex reset to 0 on motor stop")
	}

	tp.MotorOn(true)
	if tp.tapePos != 3 {
		t.Fatalf("tapePos = %d after resume, want 3 (dropped byte)", tp.tapePos)
	}
}

func TestTickReachesBodyThenEndOfBlock(t *testing.T) {
	rec := &cb1Recorder{}
	tp := New(rec)
	tp.Load(buildTapeImage(0x80, []byte{0xAB})) // machine code: shorter desired leader (112)
	tp.MotorOn(true)

	const maxTicks = 5_000_000
	sawBody := false
	i := 0
	for ; i < maxTicks; i++ {
		tp.Tick()
		if tp.state == StateBody {
			sawBody = true
		}
		if tp.state == StateEndOfBlock {
			break
		}
		if tp.state == StateFail {
			t.Fatal("tape transport failed to parse a well-formed header")
		}
	}
	if i == maxTicks {
		t.Fatal("tape never reached EndOfBlock within the tick budget")
	}
	if !sawBody {
		t.Fatal("expected to pass through StateBody before EndOfBlock")
	}
	if len(rec.values) == 0 {
		t.Fatal("expected CB1 to have been driven at least once")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	rec := &cb1Recorder{}
	tp := New(rec)
	tp.Load(buildTapeImage(0x80, []byte{0xAB}))
	tp.MotorOn(true)
	for i := 0; i < 1000; i++ {
		tp.Tick()
	}

	s := tp.Snapshot()

	other := New(&cb1Recorder{})
	other.Restore(s)

	if other.state != tp.state {
		t.Fatalf("restored phase = %v, want %v", other.state, tp.state)
	}
	if other.tapePos != tp.tapePos || other.bitIndex != tp.bitIndex {
		t.Fatal("restored tape position/bit index do not match the snapshot")
	}
	if !other.MotorRunning() {
		t.Fatal("expected restored motor state to still be running")
	}
}

package tape

// PlaybackState is the tape transport's gob-encodable playback state.
// The loaded image itself is included so a snapshot taken mid-playback
// resumes against the same bytes even if a different image has since
// been loaded into the live transport.
type PlaybackState struct {
	Data []byte

	Phase State

	SyncEnd          int
	BodyStart        int
	BodyRemaining    int
	GapBitsRemaining int
	LeaderCount      int

	StoppedMidByte bool
	MotorRunning   bool

	TapePos     int
	BitIndex    int
	CurrentByte byte
	CurrentBit  byte
	Parity      byte

	CycleCounter int
	LineOut      byte
}

// Snapshot captures the tape transport's current playback state.
func (t *Tape) Snapshot() PlaybackState {
	return PlaybackState{
		Data: append([]byte(nil), t.data...),

		Phase: t.state,

		SyncEnd: t.syncEnd, BodyStart: t.bodyStart, BodyRemaining: t.bodyRemaining,
		GapBitsRemaining: t.gapBitsRemaining, LeaderCount: t.leaderCount,

		StoppedMidByte: t.stoppedMidByte, MotorRunning: t.motorRunning,

		TapePos: t.tapePos, BitIndex: t.bitIndex,
		CurrentByte: t.currentByte, CurrentBit: t.currentBit, Parity: t.parity,

		CycleCounter: t.cycleCounter, LineOut: t.lineOut,
	}
}

// Restore puts the tape transport into the state previously captured by
// Snapshot.
func (t *Tape) Restore(s PlaybackState) {
	t.data = s.Data

	t.state = s.Phase

	t.syncEnd, t.bodyStart, t.bodyRemaining = s.SyncEnd, s.BodyStart, s.BodyRemaining
	t.gapBitsRemaining, t.leaderCount = s.GapBitsRemaining, s.LeaderCount

	t.stoppedMidByte, t.motorRunning = s.StoppedMidByte, s.MotorRunning

	t.tapePos, t.bitIndex = s.TapePos, s.BitIndex
	t.currentByte, t.currentBit, t.parity = s.CurrentByte, s.CurrentBit, s.Parity

	t.cycleCounter, t.lineOut = s.CycleCounter, s.LineOut
}

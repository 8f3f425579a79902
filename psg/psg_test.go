package psg

import "testing"

type sampleCollector struct {
	samples []int16
}

func (s *sampleCollector) WriteSample(v int16) { s.samples = append(s.samples, v) }

func latchAndWrite(p *PSG, reg, value byte) {
	p.SetBDIR(true)
	p.SetBC1(true)
	p.Update(reg, false)
	p.SetBC1(false)
	p.Update(value, false)
	p.SetBDIR(false)
}

func TestLatchAddressThenWrite(t *testing.T) {
	p := New()
	latchAndWrite(p, RegChAAmplitude, 0x0F)
	if p.Register(RegChAAmplitude) != 0x0F {
		t.Fatalf("register = %02X, want 0F", p.Register(RegChAAmplitude))
	}
}

func TestOutOfRangeLatchIgnored(t *testing.T) {
	p := New()
	p.SetBDIR(true)
	p.SetBC1(true)
	p.Update(0xFF, false)
	if p.currentRegister != 0 {
		t.Fatalf("currentRegister = %d, want 0 (out-of-range latch ignored)", p.currentRegister)
	}
}

func TestTonePeriodAndMixedSample(t *testing.T) {
	p := New()
	latchAndWrite(p, RegChAPeriodLow, 0x10)
	latchAndWrite(p, RegChAPeriodHigh, 0x00)
	latchAndWrite(p, RegEnable, 0x3E) // channel A tone enabled, noise+B+C disabled
	latchAndWrite(p, RegChAAmplitude, 0x0F)

	sink := &sampleCollector{}
	p.MixSamples(100, sink, false)
	if len(sink.samples) != 100 {
		t.Fatalf("got %d samples, want 100", len(sink.samples))
	}
}

func TestWarpModeSuppressesOutput(t *testing.T) {
	p := New()
	sink := &sampleCollector{}
	p.MixSamples(10, sink, true)
	if len(sink.samples) != 0 {
		t.Fatalf("expected no samples under warp mode, got %d", len(sink.samples))
	}
}

func TestNoiseLFSRAdvances(t *testing.T) {
	n := &noise{rng: 1, period: 1}
	before := n.rng
	n.execCycle()
	if n.rng == before {
		t.Fatal("expected LFSR state to change after execCycle")
	}
}

func TestEnvelopeShapeWrap(t *testing.T) {
	e := &envelope{period: 1}
	e.setShape(0x00) // shape 0 (CONT=ATT=ALT=HOLD=0): decay then hold at 0
	for i := 0; i < 20; i++ {
		e.execCycle()
	}
	if e.level() != voltab[0] {
		t.Fatalf("envelope shape 0 should settle at level 0, got %d", e.level())
	}
}

func TestRegisterChangeLogWatermarkTriggersMassApply(t *testing.T) {
	p := New()
	latchAndWrite(p, RegEnable, 0x00)
	for i := 0; i < registerChangeLogWatermark+5; i++ {
		latchAndWrite(p, RegChAAmplitude, byte(i%16))
	}
	p.trimRegisterChanges()
	if len(p.changes.buffer) != 0 {
		t.Fatalf("expected watermark to drain the log, got %d pending", len(p.changes.buffer))
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	p := New()
	latchAndWrite(p, RegEnable, 0x3F)
	latchAndWrite(p, RegChAAmplitude, 0x0A)

	pendingBefore := len(p.changes.buffer)

	s := p.Snapshot()

	other := New()
	other.Restore(s)

	if other.Register(RegEnable) != p.Register(RegEnable) {
		t.Fatal("restored ENABLE register does not match the snapshot")
	}
	if other.Register(RegChAAmplitude) != p.Register(RegChAAmplitude) {
		t.Fatal("restored channel A amplitude register does not match the snapshot")
	}
	if len(other.changes.buffer) != pendingBefore {
		t.Fatalf("restored pending register-change count = %d, want %d", len(other.changes.buffer), pendingBefore)
	}
}

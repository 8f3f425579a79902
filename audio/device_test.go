package audio

import (
	"encoding/binary"
	"testing"
)

func TestEncodePCM16RoundTrips(t *testing.T) {
	samples := []int{0, 32767, -32768, -1, 1234}
	payload := encodePCM16(samples)

	if len(payload) != len(samples)*2 {
		t.Fatalf("payload length = %d, want %d", len(payload), len(samples)*2)
	}

	for i, want := range samples {
		got := int16(binary.LittleEndian.Uint16(payload[i*2:]))
		if int(got) != want {
			t.Fatalf("sample %d = %d, want %d", i, got, want)
		}
	}
}

func TestSamplesPerTickMatchesSampleRate(t *testing.T) {
	// 20ms of audio at 44.1kHz is 882 samples; Run relies on this lining
	// up so queued audio never drifts behind the raster.
	if samplesPerTick != 882 {
		t.Fatalf("samplesPerTick = %d, want 882", samplesPerTick)
	}
}

// Package wavwriter captures the PSG's mixed audio stream to a WAV file on
// disk. Samples are buffered in memory in their entirety and written out
// when EndMixing is called, so it is intended for debug capture and
// regression comparison rather than long recording sessions.
package wavwriter

import (
	"os"

	"github.com/pugo/oric8/errors"
	"github.com/pugo/oric8/logger"
	"github.com/youpy/go-wav"
)

// SampleRate is the PSG's fixed audio output rate.
const SampleRate = 44100

// WavWriter accumulates stereo samples and writes them to filename on
// EndMixing. It implements the psg.AudioSink interface.
type WavWriter struct {
	filename string
	buffer   []wav.Sample
}

// New is the preferred method of initialisation for WavWriter.
func New(filename string) (*WavWriter, error) {
	return &WavWriter{
		filename: filename,
		buffer:   make([]wav.Sample, 0, SampleRate),
	}, nil
}

// WriteSample implements psg.AudioSink. Samples are mono: the PSG mixes its
// three tone channels plus noise into a single value and duplicates it to
// both WAV channels.
func (aw *WavWriter) WriteSample(v int16) {
	w := wav.Sample{}
	w.Values[0] = int(v)
	w.Values[1] = int(v)
	aw.buffer = append(aw.buffer, w)
}

// EndMixing writes the accumulated buffer to disk as a 16-bit stereo WAV
// file and clears the buffer.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return errors.New(errors.LoadFailure, err.Error())
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && rerr == nil {
			rerr = errors.New(errors.LoadFailure, cerr.Error())
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 2, SampleRate, 16)
	if enc == nil {
		return errors.New(errors.ImageFormat, "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)
	if err := enc.WriteSamples(aw.buffer); err != nil {
		return errors.New(errors.LoadFailure, err.Error())
	}

	aw.buffer = aw.buffer[:0]
	return nil
}

// Reset discards any buffered samples without writing them.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}

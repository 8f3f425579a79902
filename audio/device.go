package audio

import (
	"encoding/binary"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/pugo/oric8/errors"
	"github.com/pugo/oric8/machine"
	"github.com/pugo/oric8/wavwriter"
)

// SampleRate is the PSG's fixed audio output rate, matching the SDL
// device's requested playback frequency exactly so no resampling is
// needed between the two.
const SampleRate = 44100

// tickInterval is how often Run drains the PSG's mixer: short enough that
// queued audio never drifts far behind the raster, long enough to keep
// the number of QueueAudio calls reasonable.
const tickInterval = 20 * time.Millisecond

const samplesPerTick = SampleRate * int(tickInterval/time.Millisecond) / 1000

// Device is the audio collaborator: it owns an open SDL audio device and
// drains the PSG's mixer into it on its own goroutine, implementing
// psg.AudioSink so it can be handed to PSG.MixSamples directly.
type Device struct {
	id sdl.AudioDeviceID

	buf *goaudio.IntBuffer

	recorder *wavwriter.WavWriter

	stop chan struct{}
	done chan struct{}
}

// Open claims an SDL audio device for stereo 16-bit playback at
// SampleRate. sdl.Init must already have been called with sdl.INIT_AUDIO
// by the caller (the display collaborator owns SDL's one-time init).
func Open() (*Device, error) {
	spec := &sdl.AudioSpec{
		Freq:     SampleRate,
		Format:   sdl.AUDIO_S16SYS,
		Channels: 2,
		Samples:  1024,
	}
	id, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, errors.New(errors.DeviceFailure, err.Error())
	}

	d := &Device{
		id: id,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 2, SampleRate: SampleRate},
			SourceBitDepth: 16,
			Data:           make([]int, 0, samplesPerTick*2),
		},
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	sdl.PauseAudioDevice(id, false)
	return d, nil
}

// WriteSample implements psg.AudioSink. Samples are mono: the PSG mixes
// its three tone channels plus noise into a single value and duplicates
// it to both output channels, matching wavwriter's convention.
func (d *Device) WriteSample(v int16) {
	d.buf.Data = append(d.buf.Data, int(v), int(v))
	if d.recorder != nil {
		d.recorder.WriteSample(v)
	}
	if len(d.buf.Data) >= samplesPerTick*2 {
		d.flush()
	}
}

// flush converts the accumulated buffer to little-endian 16-bit PCM bytes
// and queues it with the SDL device, then clears the buffer.
func (d *Device) flush() {
	sdl.QueueAudio(d.id, encodePCM16(d.buf.Data))
	d.buf.Data = d.buf.Data[:0]
}

// encodePCM16 packs samples (each an int16 value widened to int by
// go-audio/audio's IntBuffer) into little-endian 16-bit PCM bytes, the
// wire format sdl.QueueAudio expects for an AUDIO_S16SYS stream.
func encodePCM16(samples []int) []byte {
	payload := make([]byte, len(samples)*2)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(payload[i*2:], uint16(int16(sample)))
	}
	return payload
}

// Run drains the PSG's mixer into the device on a fixed tick until Close
// is called. It is meant to run on its own goroutine for the life of the
// emulator.
func (d *Device) Run(m *machine.Machine) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	defer close(d.done)

	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			m.PSG.MixSamples(samplesPerTick, d, m.WarpMode())
		}
	}
}

// StartRecording mirrors every sample written from now on into filename
// as a WAV file, until StopRecording is called.
func (d *Device) StartRecording(filename string) error {
	rec, err := wavwriter.New(filename)
	if err != nil {
		return err
	}
	d.recorder = rec
	return nil
}

// StopRecording flushes the mirrored recording to disk, if one is active.
func (d *Device) StopRecording() error {
	if d.recorder == nil {
		return nil
	}
	err := d.recorder.EndMixing()
	d.recorder = nil
	return err
}

// Close stops the drain goroutine and releases the SDL audio device. Any
// active recording is flushed to disk first.
func (d *Device) Close() error {
	close(d.stop)
	<-d.done
	err := d.StopRecording()
	sdl.CloseAudioDevice(d.id)
	return err
}

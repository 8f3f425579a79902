// Package audio is the audio collaborator: it drains the PSG's mixed
// 44.1kHz mono sample stream and pushes it to an SDL audio device as
// stereo 16-bit PCM, with an optional debug mirror to a WAV file.
//
// It runs on its own producer goroutine, calling psg.PSG.MixSamples on a
// fixed tick; the PSG itself serializes that against the emu thread's
// register writes (see psg.PSG's audioLock), so this package does not
// need a lock of its own.
package audio

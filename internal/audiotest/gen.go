// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic buffers for tests.
package audiotest

import (
	"math"
	"math/rand"

	"github.com/melloom/Vocalix-sub017/audio"
)

// Gen fills a buffer from a waveform function of frame index and channel.
func Gen(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *audio.Buffer {
	buf := audio.New(sampleRate, channels, frames)
	for c := range buf.Data {
		for f := range buf.Data[c] {
			buf.Data[c][f] = waveform(f, c)
		}
	}

	return buf
}

// Sine generates a sine tone at the given frequency and amplitude, the
// same phase on every channel.
func Sine(sampleRate, channels, frames int, frequency float64, amp float32) *audio.Buffer {
	return Gen(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return amp * float32(math.Sin(2*math.Pi*frequency*t))
	})
}

// Constant generates a buffer where every sample holds value.
func Constant(sampleRate, channels, frames int, value float32) *audio.Buffer {
	return Gen(sampleRate, channels, frames, func(_, _ int) float32 {
		return value
	})
}

// Silence generates an all-zero buffer.
func Silence(sampleRate, channels, frames int) *audio.Buffer {
	return Constant(sampleRate, channels, frames, 0)
}

// Noise generates uniform noise in [-amp, amp]. The seed fixes the
// sequence so failures reproduce.
func Noise(sampleRate, channels, frames int, amp float32, seed int64) *audio.Buffer {
	rng := rand.New(rand.NewSource(seed))

	return Gen(sampleRate, channels, frames, func(_, _ int) float32 {
		return amp * (rng.Float32()*2 - 1)
	})
}

// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"time"
)

// Buffer holds decoded PCM audio as planar channel data: one sample slice
// per channel, all of equal length. Samples are float32 in [-1, 1].
//
// Buffers are owned by exactly one caller at a time. Transforms never write
// into a buffer they received; they return a fresh buffer (or the untouched
// input when there is nothing to do).
type Buffer struct {
	Data       [][]float32
	SampleRate int
}

// New allocates a silent buffer with the given shape.
func New(sampleRate, channels, frames int) *Buffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	return &Buffer{Data: data, SampleRate: sampleRate}
}

// FromInterleaved builds a planar buffer from frame-major, channel-minor
// interleaved samples. A trailing partial frame is dropped.
func FromInterleaved(samples []float32, channels, sampleRate int) *Buffer {
	if channels < 1 {
		return &Buffer{SampleRate: sampleRate}
	}

	frames := len(samples) / channels
	b := New(sampleRate, channels, frames)

	for f := 0; f < frames; f++ {
		base := f * channels
		for c := 0; c < channels; c++ {
			b.Data[c][f] = samples[base+c]
		}
	}

	return b
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int { return len(b.Data) }

// Frames returns the number of frames per channel.
func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}

	return len(b.Data[0])
}

// Duration reports the buffer length as wall-clock time.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}

	seconds := float64(b.Frames()) / float64(b.SampleRate)

	return time.Duration(seconds * float64(time.Second))
}

// Clone returns a deep copy that shares no sample storage with b.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		Data:       make([][]float32, len(b.Data)),
		SampleRate: b.SampleRate,
	}

	for c := range b.Data {
		out.Data[c] = make([]float32, len(b.Data[c]))
		copy(out.Data[c], b.Data[c])
	}

	return out
}

// Slice returns a copy of frames [start, end). The range is clamped to the
// buffer bounds; a degenerate range yields an empty buffer with the same
// shape.
func (b *Buffer) Slice(start, end int) *Buffer {
	frames := b.Frames()

	start = max(start, 0)
	end = min(end, frames)
	if start > end {
		start = end
	}

	out := New(b.SampleRate, b.NumChannels(), end-start)
	for c := range b.Data {
		copy(out.Data[c], b.Data[c][start:end])
	}

	return out
}

// Interleaved flattens the planar data into frame-major, channel-minor
// interleaved samples.
func (b *Buffer) Interleaved() []float32 {
	channels := b.NumChannels()
	frames := b.Frames()

	out := make([]float32, frames*channels)
	for f := 0; f < frames; f++ {
		base := f * channels
		for c := 0; c < channels; c++ {
			out[base+c] = b.Data[c][f]
		}
	}

	return out
}

// Peak returns the largest absolute sample value across all channels.
func (b *Buffer) Peak() float64 {
	var peak float64

	for c := range b.Data {
		for _, s := range b.Data[c] {
			v := math.Abs(float64(s))
			if v > peak {
				peak = v
			}
		}
	}

	return peak
}

// RMS returns the root mean square over every sample of every channel.
func (b *Buffer) RMS() float64 {
	total := b.Frames() * b.NumChannels()
	if total == 0 {
		return 0
	}

	var sum float64
	for c := range b.Data {
		for _, s := range b.Data[c] {
			sum += float64(s) * float64(s)
		}
	}

	return math.Sqrt(sum / float64(total))
}

// Validate checks the shape invariants: the buffer exists, has a positive
// sample rate, at least one channel and equal frame counts across channels.
func (b *Buffer) Validate() error {
	if b == nil {
		return ErrNilBuffer
	}
	if b.SampleRate <= 0 {
		return ErrBadSampleRate
	}
	if len(b.Data) == 0 {
		return ErrNoChannels
	}

	frames := len(b.Data[0])
	for _, ch := range b.Data[1:] {
		if len(ch) != frames {
			return ErrChannelMismatch
		}
	}

	return nil
}

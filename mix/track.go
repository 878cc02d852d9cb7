// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/utils"
)

// Track places one buffer in a multitrack mix.
type Track struct {
	Buffer *audio.Buffer

	// Gain scales the whole track, clamped into [0, 2]. The zero value
	// mutes the track; use NewTrack or set 1 explicitly for unity gain.
	Gain float64

	// StartOffset delays the track within the mix, in frames. Negative
	// offsets are treated as zero.
	StartOffset int

	// FadeIn and FadeOut are linear ramp lengths in frames, applied over
	// the first and last frames of this track only.
	FadeIn  int
	FadeOut int
}

// NewTrack wraps buf as a track at unity gain with no offset or fades.
func NewTrack(buf *audio.Buffer) Track {
	return Track{Buffer: buf, Gain: 1}
}

// envelope returns the combined fade gain at frame i of a track with
// the given length.
func (t Track) envelope(i, frames int) float64 {
	g := 1.0
	if t.FadeIn > 0 && i < t.FadeIn {
		g *= float64(i) / float64(t.FadeIn)
	}
	if t.FadeOut > 0 && i >= frames-t.FadeOut {
		g *= float64(frames-i) / float64(t.FadeOut)
	}

	return g
}

// render produces the track's contribution to the mix: every sample
// scaled by the track gain and the fade envelopes. Clamping happens at
// summation time, not here.
func (t Track) render() *audio.Buffer {
	frames := t.Buffer.Frames()
	out := audio.New(t.Buffer.SampleRate, t.Buffer.NumChannels(), frames)

	gain := utils.Clamp(t.Gain, 0, 2)
	for i := 0; i < frames; i++ {
		e := float32(gain * t.envelope(i, frames))
		for c := range t.Buffer.Data {
			out.Data[c][i] = t.Buffer.Data[c][i] * e
		}
	}

	return out
}

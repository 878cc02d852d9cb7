// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"fmt"
	"time"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/utils"
)

// Crossfade joins a and b into one buffer, overlapping the tail of a
// with the head of b for the given duration. Over the overlap a fades
// out along 1-curve(progress) while b fades in along curve(progress).
// A duration longer than either clip is clamped to the shorter one; a
// non-positive duration degenerates to plain concatenation.
//
// Both buffers must share one sample rate and channel count.
func Crossfade(a, b *audio.Buffer, duration time.Duration, curve FadeCurve) (*audio.Buffer, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("first clip: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("second clip: %w", err)
	}
	if a.SampleRate != b.SampleRate || a.NumChannels() != b.NumChannels() {
		return nil, ErrFormatMismatch
	}

	fade := int(duration.Seconds() * float64(a.SampleRate))
	fade = max(fade, 0)
	fade = min(fade, a.Frames(), b.Frames())

	aFrames, bFrames := a.Frames(), b.Frames()
	overlap := aFrames - fade

	out := audio.New(a.SampleRate, a.NumChannels(), aFrames+bFrames-fade)
	for c := range out.Data {
		dst := out.Data[c]

		copy(dst, a.Data[c][:overlap])

		for i := 0; i < fade; i++ {
			g := curve.Gain(float64(i) / float64(fade))
			s := float64(a.Data[c][overlap+i])*(1-g) + float64(b.Data[c][i])*g
			dst[overlap+i] = utils.ClampSample(float32(s))
		}

		copy(dst[aFrames:], b.Data[c][fade:])
	}

	return out, nil
}

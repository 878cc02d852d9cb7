// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/utils"
)

// ResampleParams selects the sample rate to convert to.
type ResampleParams struct {
	TargetRate int `json:"target_rate"`
}

// Resample converts buf to the target sample rate, preserving duration.
// Interpolation is cubic; when downsampling, a one pole lowpass ahead
// of the interpolator keeps energy above the new Nyquist from folding
// back in. A non-positive or unchanged target returns the input as is.
func Resample(buf *audio.Buffer, p ResampleParams) (*audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return buf, err
	}

	target := p.TargetRate
	if target <= 0 || target == buf.SampleRate {
		return buf, nil
	}

	frames := buf.Frames()
	if frames == 0 {
		out := buf.Clone()
		out.SampleRate = target
		return out, nil
	}

	src := buf
	if target < buf.SampleRate {
		src = lowpass(buf, 0.45*float64(target))
	}

	outFrames := int(float64(frames) * float64(target) / float64(buf.SampleRate))
	if outFrames < 1 {
		outFrames = 1
	}

	ratio := float64(buf.SampleRate) / float64(target)
	out := audio.New(target, buf.NumChannels(), outFrames)

	for c, ch := range src.Data {
		dst := out.Data[c]
		for i := range dst {
			pos := float64(i) * ratio
			idx := int(pos)
			frac := float32(pos - float64(idx))

			dst[i] = utils.ClampSample(utils.CubicInterpolate(
				sampleAt(ch, idx-1),
				sampleAt(ch, idx),
				sampleAt(ch, idx+1),
				sampleAt(ch, idx+2),
				frac,
			))
		}
	}

	return out, nil
}

// sampleAt reads ch[i] with the edges held, so interpolation near the
// boundaries never indexes out of range.
func sampleAt(ch []float32, i int) float32 {
	if i < 0 {
		i = 0
	}
	if i >= len(ch) {
		i = len(ch) - 1
	}
	return ch[i]
}

// lowpass runs a one pole RC filter over every channel and returns the
// filtered copy. Gentle, but enough to tame the worst aliasing before
// decimation.
func lowpass(buf *audio.Buffer, cutoff float64) *audio.Buffer {
	rc := 1 / (2 * math.Pi * cutoff)
	dt := 1 / float64(buf.SampleRate)
	alpha := float32(dt / (rc + dt))

	out := buf.Clone()
	for _, ch := range out.Data {
		var y float32
		for i, x := range ch {
			y += alpha * (x - y)
			ch[i] = y
		}
	}

	return out
}

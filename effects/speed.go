// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/utils"
)

// SpeedChangeParams configures playback speed adjustment.
type SpeedChangeParams struct {
	// Factor is the speed multiplier; 2.0 halves the duration.
	Factor float64 `json:"factor"`
	// PreservePitch selects the time-stretch mode. Both modes share
	// the same linear sample mapping in this engine, so the flag is
	// carried for request compatibility rather than behavior.
	PreservePitch bool `json:"preserve_pitch"`
}

// DefaultSpeedChangeParams returns the identity speed.
func DefaultSpeedChangeParams() SpeedChangeParams {
	return SpeedChangeParams{Factor: 1.0}
}

// SpeedChange stretches or squeezes buf in time by Factor. Factors
// at or below zero, or equal to one, return the input unchanged.
func SpeedChange(buf *audio.Buffer, p SpeedChangeParams) (*audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return buf, err
	}

	if p.Factor <= 0 || p.Factor == 1 {
		return buf, nil
	}

	return stretch(buf, p.Factor), nil
}

// stretch maps output frame i to source position i*rate with linear
// interpolation between neighbors. The sample rate tag is preserved,
// so the duration scales by 1/rate.
func stretch(buf *audio.Buffer, rate float64) *audio.Buffer {
	frames := buf.Frames()
	outFrames := int(float64(frames) / rate)
	out := audio.New(buf.SampleRate, buf.NumChannels(), outFrames)

	if frames == 0 || outFrames == 0 {
		return out
	}

	for c := range buf.Data {
		src := buf.Data[c]
		dst := out.Data[c]
		for i := range dst {
			pos := float64(i) * rate
			idx := int(pos)
			if idx >= frames-1 {
				dst[i] = src[frames-1]
				continue
			}
			frac := float32(pos - float64(idx))
			dst[i] = utils.Lerp(src[idx], src[idx+1], frac)
		}
	}

	return out
}

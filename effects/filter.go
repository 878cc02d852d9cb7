// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/utils"
)

// Preset names a stylized voice transformation.
type Preset string

// Voice presets. Each combines a playback rate with an optional tone
// filter; see VoiceFilter for how intensity scales both.
const (
	PresetRobot     Preset = "robot"
	PresetChipmunk  Preset = "chipmunk"
	PresetDeep      Preset = "deep"
	PresetAlien     Preset = "alien"
	PresetTelephone Preset = "telephone"
	PresetRadio     Preset = "radio"
)

type presetConfig struct {
	rate   float64
	filter func(sampleRate int) *biquad
}

var presets = map[Preset]presetConfig{
	PresetRobot: {
		rate:   1.0,
		filter: func(sr int) *biquad { return newBandpass(sr, 1200, 3) },
	},
	PresetChipmunk: {rate: 1.5},
	PresetDeep:     {rate: 0.7},
	PresetAlien: {
		rate:   1.25,
		filter: func(sr int) *biquad { return newBandpass(sr, 2500, 2) },
	},
	PresetTelephone: {
		rate:   1.0,
		filter: func(sr int) *biquad { return newBandpass(sr, 1700, 0.7) },
	},
	PresetRadio: {
		rate:   1.0,
		filter: func(sr int) *biquad { return newHighpass(sr, 500, 0.707) },
	},
}

// VoiceFilterParams selects a preset and how strongly it is applied.
type VoiceFilterParams struct {
	Preset Preset `json:"preset"`
	// Intensity blends between the unprocessed voice at 0 and the full
	// preset at 1. It scales the rate toward 1 and acts as the filter
	// wet mix.
	Intensity float64 `json:"intensity"`
}

// DefaultVoiceFilterParams applies the chosen preset at full strength.
func DefaultVoiceFilterParams() VoiceFilterParams {
	return VoiceFilterParams{Intensity: 1}
}

// VoiceFilter applies a stylized voice preset. Unknown presets return
// the input together with ErrUnknownPreset; zero intensity returns the
// input unchanged.
func VoiceFilter(buf *audio.Buffer, p VoiceFilterParams) (*audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return buf, err
	}

	cfg, ok := presets[p.Preset]
	if !ok {
		return buf, fmt.Errorf("%w: %q", ErrUnknownPreset, p.Preset)
	}

	intensity := utils.Clamp(p.Intensity, 0, 1)
	if intensity == 0 || buf.Frames() == 0 {
		return buf, nil
	}

	out := buf
	if rate := 1 + (cfg.rate-1)*intensity; rate != 1 {
		out = stretch(out, rate)
	}

	if cfg.filter != nil {
		wet := float32(intensity)
		dry := 1 - wet

		filtered := audio.New(out.SampleRate, out.NumChannels(), out.Frames())
		for c := range out.Data {
			f := cfg.filter(out.SampleRate)
			for i, s := range out.Data[c] {
				filtered.Data[c][i] = utils.ClampSample(s*dry + f.process(s)*wet)
			}
		}
		out = filtered
	}

	if out == buf {
		return buf, nil
	}
	return out, nil
}

// biquad is a second order IIR section in direct form I. Coefficients
// are normalized by a0; state is kept in float64 so long runs stay
// stable.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64

	x1, x2 float64
	y1, y2 float64
}

func (f *biquad) process(s float32) float32 {
	x := float64(s)
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2

	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y

	return float32(y)
}

// newBandpass builds a constant peak gain bandpass centered on center
// Hz with the given Q.
func newBandpass(sampleRate int, center, q float64) *biquad {
	w := 2 * math.Pi * center / float64(sampleRate)
	alpha := math.Sin(w) / (2 * q)
	cos := math.Cos(w)

	a0 := 1 + alpha
	return &biquad{
		b0: alpha / a0,
		b1: 0,
		b2: -alpha / a0,
		a1: -2 * cos / a0,
		a2: (1 - alpha) / a0,
	}
}

// newHighpass builds a highpass with the given cutoff in Hz.
func newHighpass(sampleRate int, cutoff, q float64) *biquad {
	w := 2 * math.Pi * cutoff / float64(sampleRate)
	alpha := math.Sin(w) / (2 * q)
	cos := math.Cos(w)

	a0 := 1 + alpha
	return &biquad{
		b0: (1 + cos) / 2 / a0,
		b1: -(1 + cos) / a0,
		b2: (1 + cos) / 2 / a0,
		a1: -2 * cos / a0,
		a2: (1 - alpha) / a0,
	}
}

// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"

	"github.com/melloom/Vocalix-sub017/audio"
)

// Effect kinds accepted by Request. The strings double as the wire
// names used in serialized requests and reports.
const (
	KindTrim          = "trim"
	KindNormalize     = "normalize"
	KindPitchShift    = "pitch_shift"
	KindSpeedChange   = "speed_change"
	KindEcho          = "echo"
	KindReverb        = "reverb"
	KindVoiceFilter   = "voice_filter"
	KindNoiseSuppress = "noise_suppress"
	KindSilenceRemove = "silence_remove"
	KindResample      = "resample"
)

// Request is a tagged effect selection. Kind picks the effect and the
// matching parameter field supplies its settings. A nil parameter
// field falls back to that effect's defaults.
type Request struct {
	Kind string `json:"kind"`

	Trim          *TrimParams          `json:"trim,omitempty"`
	Normalize     *NormalizeParams     `json:"normalize,omitempty"`
	PitchShift    *PitchShiftParams    `json:"pitch_shift,omitempty"`
	SpeedChange   *SpeedChangeParams   `json:"speed_change,omitempty"`
	Echo          *EchoParams          `json:"echo,omitempty"`
	Reverb        *ReverbParams        `json:"reverb,omitempty"`
	VoiceFilter   *VoiceFilterParams   `json:"voice_filter,omitempty"`
	NoiseSuppress *NoiseSuppressParams `json:"noise_suppress,omitempty"`
	SilenceRemove *SilenceRemoveParams `json:"silence_remove,omitempty"`
	Resample      *ResampleParams      `json:"resample,omitempty"`
}

// Params returns the parameter record matching the request kind, or
// nil when the field was left unset.
func (r Request) Params() any {
	switch r.Kind {
	case KindTrim:
		if r.Trim != nil {
			return *r.Trim
		}
	case KindNormalize:
		if r.Normalize != nil {
			return *r.Normalize
		}
	case KindPitchShift:
		if r.PitchShift != nil {
			return *r.PitchShift
		}
	case KindSpeedChange:
		if r.SpeedChange != nil {
			return *r.SpeedChange
		}
	case KindEcho:
		if r.Echo != nil {
			return *r.Echo
		}
	case KindReverb:
		if r.Reverb != nil {
			return *r.Reverb
		}
	case KindVoiceFilter:
		if r.VoiceFilter != nil {
			return *r.VoiceFilter
		}
	case KindNoiseSuppress:
		if r.NoiseSuppress != nil {
			return *r.NoiseSuppress
		}
	case KindSilenceRemove:
		if r.SilenceRemove != nil {
			return *r.SilenceRemove
		}
	case KindResample:
		if r.Resample != nil {
			return *r.Resample
		}
	}
	return nil
}

// Apply runs the requested effect on buf. The input buffer is never
// modified; callers receive either a fresh buffer or, on the
// degenerate paths each effect documents, the input itself.
func (r Request) Apply(buf *audio.Buffer) (*audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return buf, fmt.Errorf("apply %s: %w", r.Kind, err)
	}

	switch r.Kind {
	case KindTrim:
		p := TrimParams{}
		if r.Trim != nil {
			p = *r.Trim
		}
		return Trim(buf, p)
	case KindNormalize:
		p := DefaultNormalizeParams()
		if r.Normalize != nil {
			p = *r.Normalize
		}
		return Normalize(buf, p)
	case KindPitchShift:
		p := PitchShiftParams{}
		if r.PitchShift != nil {
			p = *r.PitchShift
		}
		return PitchShift(buf, p)
	case KindSpeedChange:
		p := DefaultSpeedChangeParams()
		if r.SpeedChange != nil {
			p = *r.SpeedChange
		}
		return SpeedChange(buf, p)
	case KindEcho:
		p := DefaultEchoParams()
		if r.Echo != nil {
			p = *r.Echo
		}
		return Echo(buf, p)
	case KindReverb:
		p := DefaultReverbParams()
		if r.Reverb != nil {
			p = *r.Reverb
		}
		return Reverb(buf, p)
	case KindVoiceFilter:
		p := DefaultVoiceFilterParams()
		if r.VoiceFilter != nil {
			p = *r.VoiceFilter
		}
		return VoiceFilter(buf, p)
	case KindNoiseSuppress:
		p := DefaultNoiseSuppressParams()
		if r.NoiseSuppress != nil {
			p = *r.NoiseSuppress
		}
		return NoiseSuppress(buf, p)
	case KindSilenceRemove:
		p := DefaultSilenceRemoveParams()
		if r.SilenceRemove != nil {
			p = *r.SilenceRemove
		}
		return SilenceRemove(buf, p)
	case KindResample:
		p := ResampleParams{}
		if r.Resample != nil {
			p = *r.Resample
		}
		return Resample(buf, p)
	}

	return buf, fmt.Errorf("%w: %q", ErrUnknownEffect, r.Kind)
}

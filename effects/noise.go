// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/utils"
)

// suppressWindow is the processing block size for noise gating.
const suppressWindow = 2048

// NoiseSuppressParams controls how hard low-level content is pushed
// down.
type NoiseSuppressParams struct {
	// Strength in [0, 1]. Samples under the noise threshold are scaled
	// by 1-Strength; 1 mutes them outright.
	Strength float64 `json:"strength"`
}

// DefaultNoiseSuppressParams halves the noise bed.
func DefaultNoiseSuppressParams() NoiseSuppressParams {
	return NoiseSuppressParams{Strength: 0.5}
}

// NoiseSuppress attenuates samples below three times the estimated
// noise floor. The floor comes from the leading half second of the
// clip, which recordings from phone microphones almost always start
// with before the speaker begins. Louder samples pass unchanged.
func NoiseSuppress(buf *audio.Buffer, p NoiseSuppressParams) (*audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return buf, err
	}

	strength := utils.Clamp(p.Strength, 0, 1)
	if strength == 0 || buf.Frames() == 0 {
		return buf, nil
	}

	noise := audio.NoiseFloor(buf)
	if noise == 0 {
		return buf, nil
	}

	threshold := float32(3 * noise)
	keep := float32(1 - strength)

	out := buf.Clone()
	for _, ch := range out.Data {
		for start := 0; start < len(ch); start += suppressWindow {
			end := min(start+suppressWindow, len(ch))
			for i := start; i < end; i++ {
				s := ch[i]
				if s < 0 {
					s = -s
				}
				if s < threshold {
					ch[i] *= keep
				}
			}
		}
	}

	return out, nil
}

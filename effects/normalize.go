// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/utils"
)

// gainEpsilon is the relative gain below which normalization is not
// worth a buffer copy.
const gainEpsilon = 1e-6

// NormalizeParams configures loudness normalization.
type NormalizeParams struct {
	// TargetPeak is the absolute peak the loudest sample is scaled
	// to, in (0, 1].
	TargetPeak float64 `json:"target_peak"`
}

// DefaultNormalizeParams leaves a little headroom below full scale.
func DefaultNormalizeParams() NormalizeParams {
	return NormalizeParams{TargetPeak: 0.95}
}

// Normalize scales buf uniformly so its global peak lands on
// TargetPeak. Silent buffers and out-of-range targets return the
// input unchanged.
func Normalize(buf *audio.Buffer, p NormalizeParams) (*audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return buf, err
	}

	if p.TargetPeak <= 0 || p.TargetPeak > 1 {
		return buf, nil
	}

	peak := buf.Peak()
	if peak == 0 {
		return buf, nil
	}

	gain := p.TargetPeak / peak
	if math.Abs(gain-1) < gainEpsilon {
		return buf, nil
	}

	out := buf.Clone()
	for c := range out.Data {
		for i, s := range out.Data[c] {
			out.Data[c][i] = utils.ClampSample(float32(float64(s) * gain))
		}
	}

	return out, nil
}

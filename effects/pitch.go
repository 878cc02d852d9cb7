// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/melloom/Vocalix-sub017/audio"
)

// PitchShiftParams configures pitch adjustment in semitones.
type PitchShiftParams struct {
	// Semitones shifts the pitch up (positive) or down (negative).
	Semitones float64 `json:"semitones"`
}

// PitchShift transposes buf by scaling the playback rate with
// rate = 2^(semitones/12). The duration changes along with the pitch;
// this engine deliberately stays with the rate-scaling approximation
// instead of a phase vocoder. Zero semitones returns the input
// unchanged.
func PitchShift(buf *audio.Buffer, p PitchShiftParams) (*audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return buf, err
	}

	if p.Semitones == 0 {
		return buf, nil
	}

	rate := math.Pow(2, p.Semitones/12)
	return stretch(buf, rate), nil
}

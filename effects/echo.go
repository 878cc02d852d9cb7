// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/utils"
)

// echoGenerations is the number of delayed repeats. Each repeat is the
// previous one scaled by the feedback factor.
const echoGenerations = 4

// EchoParams configures the delay-line echo.
type EchoParams struct {
	// Delay between repeats, in seconds.
	Delay float64 `json:"delay"`
	// Feedback scales each repeat relative to the previous one, in [0, 1].
	Feedback float64 `json:"feedback"`
	// Wet is the echo level; the dry signal is scaled by 1-Wet.
	Wet float64 `json:"wet"`
}

// DefaultEchoParams gives a clearly audible single-room echo.
func DefaultEchoParams() EchoParams {
	return EchoParams{Delay: 0.3, Feedback: 0.4, Wet: 0.5}
}

// Echo layers delayed repeats of buf onto itself. The output is
// extended by echoGenerations*delay so the last repeat fits. A
// non-positive delay or wet level returns the input unchanged.
func Echo(buf *audio.Buffer, p EchoParams) (*audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return buf, err
	}

	delayFrames := int(p.Delay * float64(buf.SampleRate))
	if delayFrames <= 0 || p.Wet <= 0 {
		return buf, nil
	}

	wet := utils.Clamp(p.Wet, 0, 1)
	feedback := utils.Clamp(p.Feedback, 0, 1)

	frames := buf.Frames()
	out := audio.New(buf.SampleRate, buf.NumChannels(), frames+echoGenerations*delayFrames)

	dry := float32(1 - wet)
	for c := range buf.Data {
		src := buf.Data[c]
		dst := out.Data[c]

		for i, s := range src {
			dst[i] = s * dry
		}

		gain := wet
		for g := 1; g <= echoGenerations; g++ {
			if gain == 0 {
				break
			}
			offset := g * delayFrames
			for i, s := range src {
				j := offset + i
				dst[j] = utils.ClampSample(dst[j] + s*float32(gain))
			}
			gain *= feedback
		}
	}

	return out, nil
}

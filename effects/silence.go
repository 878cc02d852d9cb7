// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"time"

	"github.com/melloom/Vocalix-sub017/audio"
)

// SilenceRemoveParams tunes the silence stripper. Durations are in
// seconds.
type SilenceRemoveParams struct {
	Threshold   float64 `json:"threshold"`
	MinDuration float64 `json:"min_duration"`
	Padding     float64 `json:"padding"`
}

// DefaultSilenceRemoveParams matches the detector defaults: threshold
// 0.02, minimum duration 0.3 s, padding 0.1 s.
func DefaultSilenceRemoveParams() SilenceRemoveParams {
	return SilenceRemoveParams{Threshold: 0.02, MinDuration: 0.3, Padding: 0.1}
}

// SilenceRemove splices out the regions audio.DetectSilence reports,
// keeping the remaining frames in order. A clip with no detected
// silence, or one that is silence end to end, comes back unchanged.
func SilenceRemove(buf *audio.Buffer, p SilenceRemoveParams) (*audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return buf, err
	}

	regions := audio.DetectSilence(buf, audio.SilenceOptions{
		Threshold:   p.Threshold,
		MinDuration: time.Duration(p.MinDuration * float64(time.Second)),
		Padding:     time.Duration(p.Padding * float64(time.Second)),
	})
	if len(regions) == 0 {
		return buf, nil
	}

	kept := buf.Frames()
	for _, r := range regions {
		kept -= r.Frames()
	}
	if kept == 0 {
		// Removing everything would leave an empty clip; better to hand
		// the caller their audio back.
		return buf, nil
	}

	out := audio.New(buf.SampleRate, buf.NumChannels(), kept)
	for c, ch := range buf.Data {
		dst := out.Data[c]
		w, next := 0, 0
		for _, r := range regions {
			w += copy(dst[w:], ch[next:r.Start])
			next = r.End
		}
		copy(dst[w:], ch[next:])
	}

	return out, nil
}

// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"github.com/melloom/Vocalix-sub017/audio"
)

// TrimParams selects how much to cut from each end of a clip.
type TrimParams struct {
	// Start is the duration removed from the head, in seconds.
	Start float64 `json:"start"`
	// End is the duration removed from the tail, in seconds.
	End float64 `json:"end"`
}

// Trim cuts Start seconds from the head of buf and End seconds from
// its tail. Negative durations, or cuts that would consume the whole
// clip, return the input unchanged.
func Trim(buf *audio.Buffer, p TrimParams) (*audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return buf, err
	}

	if p.Start < 0 || p.End < 0 {
		return buf, nil
	}

	head := int(p.Start * float64(buf.SampleRate))
	tail := int(p.End * float64(buf.SampleRate))
	total := buf.Frames()

	if head == 0 && tail == 0 {
		return buf, nil
	}
	if head+tail >= total {
		return buf, nil
	}

	return buf.Slice(head, total-tail), nil
}

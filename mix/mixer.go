// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/utils"
)

// peakCeiling is the level the post-mix limiter scales the output back
// to when clamped summation still leaves the peak above it.
const peakCeiling = 0.95

// Mix layers the tracks into a single buffer. The output is long enough
// for the latest-ending track; every addition is clamped to [-1, 1],
// and if the summed peak still exceeds 0.95 the whole mix is scaled
// down uniformly so the balance between tracks survives.
//
// All tracks must share one sample rate and channel count.
func Mix(tracks []Track) (*audio.Buffer, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}

	var rate, channels, length int
	for i := range tracks {
		t := tracks[i]
		if err := t.Buffer.Validate(); err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}

		if rate == 0 {
			rate = t.Buffer.SampleRate
			channels = t.Buffer.NumChannels()
		} else if t.Buffer.SampleRate != rate || t.Buffer.NumChannels() != channels {
			return nil, fmt.Errorf("track %d: %w", i, ErrFormatMismatch)
		}

		if end := max(t.StartOffset, 0) + t.Buffer.Frames(); end > length {
			length = end
		}
	}

	// Envelope rendering is the expensive part and is independent per
	// track, so fan it out. Summation stays sequential to keep the
	// clamped additions deterministic.
	rendered := make([]*audio.Buffer, len(tracks))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range tracks {
		g.Go(func() error {
			rendered[i] = tracks[i].render()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := audio.New(rate, channels, length)
	for ti := range rendered {
		start := max(tracks[ti].StartOffset, 0)
		for c := range rendered[ti].Data {
			dst := out.Data[c]
			for i, s := range rendered[ti].Data[c] {
				j := start + i
				dst[j] = utils.ClampSample(dst[j] + s)
			}
		}
	}

	limit(out)

	return out, nil
}

// limit scales the whole buffer down to the peak ceiling when the mix
// sums past it.
func limit(b *audio.Buffer) {
	peak := b.Peak()
	if peak <= peakCeiling {
		return
	}

	scale := float32(peakCeiling / peak)
	for c := range b.Data {
		for i := range b.Data[c] {
			b.Data[c][i] *= scale
		}
	}
}

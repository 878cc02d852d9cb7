// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"time"
)

// rmsWindow is the analysis window for energy scans and silence detection.
const rmsWindow = 100 * time.Millisecond

// bestWindowHop is the step between candidate windows in BestWindow.
const bestWindowHop = time.Second

// SilenceRegion is a half-open frame range [Start, End) classified as
// silence. Detected regions are time-ordered and non-overlapping.
type SilenceRegion struct {
	Start int `json:"start_frame"`
	End   int `json:"end_frame"`
}

// Frames returns the region length in frames.
func (r SilenceRegion) Frames() int { return r.End - r.Start }

// SilenceOptions tunes the silence detector.
type SilenceOptions struct {
	// Threshold is the window RMS below which audio counts as silent.
	Threshold float64

	// MinDuration is the shortest silent run worth reporting.
	MinDuration time.Duration

	// Padding grows every reported region outward on both sides, clamped
	// to the buffer bounds. Overlaps created by the growth are merged.
	Padding time.Duration
}

// DefaultSilenceOptions returns the settings used by automatic silence
// removal: threshold 0.02, minimum duration 300 ms, padding 100 ms.
func DefaultSilenceOptions() SilenceOptions {
	return SilenceOptions{
		Threshold:   0.02,
		MinDuration: 300 * time.Millisecond,
		Padding:     100 * time.Millisecond,
	}
}

func windowFrames(sampleRate int) int {
	wf := int(rmsWindow.Seconds() * float64(sampleRate))
	if wf < 1 {
		wf = 1
	}

	return wf
}

// WindowRMS computes the RMS of consecutive non-overlapping 100 ms windows
// across all channels. The trailing partial window is included with its
// actual length.
func WindowRMS(b *Buffer) []float64 {
	frames := b.Frames()
	channels := b.NumChannels()
	if frames == 0 || channels == 0 {
		return nil
	}

	wf := windowFrames(b.SampleRate)
	out := make([]float64, 0, (frames+wf-1)/wf)

	for start := 0; start < frames; start += wf {
		end := min(start+wf, frames)

		var sum float64
		for c := 0; c < channels; c++ {
			for _, s := range b.Data[c][start:end] {
				sum += float64(s) * float64(s)
			}
		}

		n := (end - start) * channels
		out = append(out, math.Sqrt(sum/float64(n)))
	}

	return out
}

// DetectSilence scans b for sustained quiet stretches. A run of consecutive
// windows whose RMS stays below opts.Threshold becomes a region once it
// lasts at least opts.MinDuration; qualifying regions are then grown outward
// by opts.Padding and merged where the growth makes them touch.
func DetectSilence(b *Buffer, opts SilenceOptions) []SilenceRegion {
	frames := b.Frames()
	if frames == 0 || b.NumChannels() == 0 {
		return nil
	}

	wf := windowFrames(b.SampleRate)
	rms := WindowRMS(b)

	minFrames := int(opts.MinDuration.Seconds() * float64(b.SampleRate))
	padFrames := int(opts.Padding.Seconds() * float64(b.SampleRate))

	var regions []SilenceRegion
	runStart := -1 // start frame of the current silent run, -1 when outside one

	for i, r := range rms {
		if r < opts.Threshold {
			if runStart < 0 {
				runStart = i * wf
			}
			continue
		}

		if runStart >= 0 {
			end := i * wf
			if end-runStart >= minFrames {
				regions = append(regions, SilenceRegion{Start: runStart, End: end})
			}
			runStart = -1
		}
	}

	if runStart >= 0 && frames-runStart >= minFrames {
		regions = append(regions, SilenceRegion{Start: runStart, End: frames})
	}

	if len(regions) == 0 {
		return nil
	}

	if padFrames > 0 {
		for i := range regions {
			regions[i].Start = max(regions[i].Start-padFrames, 0)
			regions[i].End = min(regions[i].End+padFrames, frames)
		}
	}

	// Merge regions the padding made overlap, keeping the list ordered and
	// disjoint.
	merged := regions[:1]
	for _, r := range regions[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}

	return merged
}

// BestWindow finds the window of the given duration with the highest mean
// absolute amplitude across all channels. Candidate windows start at one
// second intervals; ties keep the earliest window. When the buffer is
// shorter than the requested duration the whole buffer is returned.
func BestWindow(b *Buffer, duration time.Duration) (start, end int) {
	frames := b.Frames()
	channels := b.NumChannels()
	if frames == 0 || channels == 0 {
		return 0, 0
	}

	want := int(duration.Seconds() * float64(b.SampleRate))
	if want <= 0 || want >= frames {
		return 0, frames
	}

	hop := int(bestWindowHop.Seconds() * float64(b.SampleRate))
	if hop < 1 {
		hop = 1
	}

	bestStart, bestScore := 0, -1.0

	for s := 0; s+want <= frames; s += hop {
		var sum float64
		for c := 0; c < channels; c++ {
			for _, v := range b.Data[c][s : s+want] {
				sum += math.Abs(float64(v))
			}
		}

		score := sum / float64(want*channels)
		if score > bestScore {
			bestScore = score
			bestStart = s
		}
	}

	return bestStart, bestStart + want
}

// Waveform summarizes channel 0 into bins amplitude values for display.
// Each bin is the mean absolute amplitude of its segment, doubled for
// visibility and clamped to [0.1, 1] so every bar stays visible.
func Waveform(b *Buffer, bins int) []float64 {
	if bins <= 0 {
		return nil
	}

	out := make([]float64, bins)
	frames := b.Frames()
	if frames == 0 || b.NumChannels() == 0 {
		for i := range out {
			out[i] = 0.1
		}
		return out
	}

	ch := b.Data[0]
	binSize := max(frames/bins, 1)

	for i := 0; i < bins; i++ {
		start := i * binSize
		if start >= frames {
			out[i] = 0.1
			continue
		}

		end := start + binSize
		if i == bins-1 || end > frames {
			// Last bin absorbs the division remainder.
			end = frames
		}

		var sum float64
		for _, s := range ch[start:end] {
			sum += math.Abs(float64(s))
		}

		v := sum / float64(end-start) * 2
		out[i] = math.Min(math.Max(v, 0.1), 1)
	}

	return out
}

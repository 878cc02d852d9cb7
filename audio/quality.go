// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"math/cmplx"
	"time"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// Thresholds for the quality score. Levels are normalized amplitudes.
const (
	quietPeakLevel      = 0.3
	nearClippingPeak    = 0.98
	lowRMSLevel         = 0.1
	excessiveNoiseFloor = 0.05
	mildNoiseFloor      = 0.02
	clipSampleLevel     = 0.99
	maxClippedFraction  = 0.001
	maxSilenceFraction  = 0.3

	// noiseEstimateWindow is the leading stretch assumed to hold room tone.
	noiseEstimateWindow = 500 * time.Millisecond

	// Spectral flatness above this marks the lead-in as noise-like.
	noiseFlatnessMin = 0.5

	flatnessFFTSize    = 4096
	flatnessMinSamples = 256
)

// QualityMetrics summarizes a recording for upload screening. The struct is
// JSON-serializable so clients can store it alongside clip metadata.
type QualityMetrics struct {
	Peak              float64  `json:"peak"`
	RMS               float64  `json:"rms"`
	NoiseFloor        float64  `json:"noise_floor"`
	HasExcessiveNoise bool     `json:"has_excessive_noise"`
	Suggestions       []string `json:"suggestions,omitempty"`
	Score             int      `json:"score"`
}

// NoiseFloor estimates the background noise level as the RMS of the leading
// half second, on the assumption that a clip starts with room tone before
// the speaker begins.
func NoiseFloor(b *Buffer) float64 {
	frames := b.Frames()
	channels := b.NumChannels()
	if frames == 0 || channels == 0 {
		return 0
	}

	lead := int(noiseEstimateWindow.Seconds() * float64(b.SampleRate))
	lead = min(max(lead, 1), frames)

	var sum float64
	for c := range b.Data {
		for _, s := range b.Data[c][:lead] {
			sum += float64(s) * float64(s)
		}
	}

	return math.Sqrt(sum / float64(lead*channels))
}

// AnalyzeQuality scores a recording from 0 to 100 by deducting fixed
// penalties for common capture problems. Every deduction appends a
// human-readable suggestion.
func AnalyzeQuality(b *Buffer) QualityMetrics {
	m := QualityMetrics{Score: 100}

	frames := b.Frames()
	channels := b.NumChannels()
	if frames == 0 || channels == 0 {
		m.Score = 0
		m.Suggestions = append(m.Suggestions, "recording is empty")
		return m
	}

	m.Peak = b.Peak()
	m.RMS = b.RMS()
	m.NoiseFloor = NoiseFloor(b)

	penalize := func(points int, suggestion string) {
		m.Score -= points
		m.Suggestions = append(m.Suggestions, suggestion)
	}

	if m.Peak < quietPeakLevel {
		penalize(20, "recording is very quiet, move closer to the microphone")
	}
	if m.Peak > nearClippingPeak {
		penalize(15, "recording is close to clipping, lower the input gain")
	}
	if m.RMS < lowRMSLevel {
		penalize(15, "overall loudness is low, try normalizing")
	}

	switch {
	case m.NoiseFloor > excessiveNoiseFloor,
		m.NoiseFloor > mildNoiseFloor && leadFlatness(b) > noiseFlatnessMin:
		m.HasExcessiveNoise = true
		penalize(25, "strong background noise, try noise suppression")
	case m.NoiseFloor > mildNoiseFloor:
		penalize(10, "some background noise in the recording")
	}

	opts := DefaultSilenceOptions()
	opts.Padding = 0 // measure actual silence, not padded cut regions

	var silent int
	for _, r := range DetectSilence(b, opts) {
		silent += r.Frames()
	}
	if float64(silent)/float64(frames) > maxSilenceFraction {
		penalize(10, "long silences detected, consider trimming")
	}

	var clipped int
	for c := range b.Data {
		for _, s := range b.Data[c] {
			if s >= clipSampleLevel || s <= -clipSampleLevel {
				clipped++
			}
		}
	}
	if float64(clipped)/float64(frames*channels) > maxClippedFraction {
		penalize(20, "clipping detected, re-record at a lower level")
	}

	m.Score = min(max(m.Score, 0), 100)

	return m
}

// leadFlatness computes the spectral flatness of the leading samples of
// channel 0. Flatness near 1 means energy is spread evenly across the
// spectrum (noise-like); near 0 means tonal content. It corroborates the
// RMS-based noise estimate so that a quiet musical intro is not mistaken
// for a noisy room.
func leadFlatness(b *Buffer) float64 {
	n := min(b.Frames(), flatnessFFTSize)
	if n < flatnessMinSamples {
		// Too short to judge; never promote to excessive on flatness alone.
		return 0
	}

	seq := make([]float64, n)
	for i, s := range b.Data[0][:n] {
		seq[i] = float64(s)
	}
	window.Hann(seq)

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, seq)

	var logSum, sum float64
	count := 0
	for _, c := range coeffs[1:] { // skip DC
		mag := cmplx.Abs(c)
		logSum += math.Log(mag + 1e-12)
		sum += mag
		count++
	}

	if count == 0 || sum == 0 {
		return 0
	}

	geoMean := math.Exp(logSum / float64(count))
	arithMean := sum / float64(count)

	return geoMean / arithMean
}

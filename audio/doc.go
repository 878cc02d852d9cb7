// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM buffer model and signal analysis primitives.
//
// This package contains the core building blocks shared by every other part
// of the engine:
//   - Buffer, the planar PCM representation all transforms operate on
//   - signal analysis: windowed RMS, silence detection, best-window search,
//     waveform summarization and quality scoring
//   - Format registry for decoder registration
//
// # Buffer Model
//
// A Buffer stores one sample slice per channel (planar layout), all channels
// the same length, samples as float32 in [-1.0, 1.0]:
//
//	buf := audio.New(44100, 2, 44100) // one second of silent stereo
//	buf.Data[0][0] = 0.5              // left channel, first frame
//
// The planar layout keeps per-channel scans cheap and makes channel-wise
// transforms trivial. Interleaved() and FromInterleaved() convert to and
// from the frame-major layout used by PCM containers.
//
// Ownership is strict: a function that receives a Buffer never mutates it.
// Transforms allocate their output, so the original and the result never
// alias each other.
//
// # Signal Analysis
//
// The analysis functions answer the questions a clip-upload flow asks:
//
//	rms := audio.WindowRMS(buf)                       // energy profile
//	regions := audio.DetectSilence(buf, audio.DefaultSilenceOptions())
//	start, end := audio.BestWindow(buf, 3*time.Second) // snippet search
//	bars := audio.Waveform(buf, 24)                    // display bars
//	metrics := audio.AnalyzeQuality(buf)               // upload screening
//
// All analysis runs over non-overlapping 100 ms windows where windowing
// applies. DetectSilence reports half-open frame ranges, grown outward by
// the configured padding and merged so they never overlap.
//
// # Quality Scoring
//
// AnalyzeQuality starts at 100 and subtracts fixed penalties for common
// capture problems: low peak, near-clipping, low loudness, background
// noise, long silences and clipped samples. Each deduction appends a
// human-readable suggestion. The noise decision combines the RMS of the
// leading half second with the spectral flatness of the same stretch, so a
// quiet musical intro is not mistaken for a noisy room.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths and ensures no clipping during intermediate processing.
// Quantization to 16-bit PCM happens only at the container boundary.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// This is useful for applications that need to support multiple formats.
package audio

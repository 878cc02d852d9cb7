// SPDX-License-Identifier: EPL-2.0

// Package effects implements pure buffer-to-buffer voice transforms.
//
// Every transform has the same shape: it takes an *audio.Buffer and a
// parameter struct, and returns a new buffer plus an error. The input is
// never mutated. Degenerate parameters (a zero-length trim, a speed factor
// of 1, a wet level of 0) are not errors; the transform hands the input
// back unchanged so callers can chain requests without special-casing.
//
// # Transforms
//
//   - Trim cuts seconds off the head and tail
//   - Normalize scales the clip to a target peak
//   - PitchShift moves the voice by semitones via playback-rate resampling
//   - SpeedChange stretches time by a factor
//   - Echo adds a feedback delay line
//   - Reverb convolves with a synthetic impulse response
//   - VoiceFilter applies a named preset (robot, chipmunk, deep, alien,
//     telephone, radio)
//   - NoiseSuppress gates samples under the estimated noise floor
//   - SilenceRemove splices out detected silence
//   - Resample converts the sample rate, preserving duration
//
// PitchShift and SpeedChange share the playback-rate approach: shifting
// pitch changes duration and vice versa, the way a tape machine does. That
// trade is deliberate; short social clips care about character, not
// broadcast fidelity.
//
// # Requests
//
// Request is the serializable envelope a client sends. Its Kind selects the
// transform, the matching parameter field configures it, and nil parameter
// fields fall back to the documented defaults:
//
//	req := effects.Request{
//		Kind: effects.KindEcho,
//		Echo: &effects.EchoParams{Delay: 0.25, Feedback: 0.5, Wet: 0.4},
//	}
//	out, err := req.Apply(buf)
//
// # Failure Convention
//
// Transforms return (input, err) on failure, never (nil, err). A caller
// that ignores the error still holds a playable buffer; a caller that
// checks it can decide between strict and best-effort handling. The
// pipeline package builds both modes on top of this convention.
package effects

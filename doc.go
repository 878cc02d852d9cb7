// SPDX-License-Identifier: EPL-2.0

// Package vocalix transforms voice clips before upload.
//
// The package takes a recorded clip as container bytes or a decoded
// PCM buffer, applies deterministic sample-level transforms, and hands
// back canonical WAV bytes ready for upload. It performs no network or
// file I/O and keeps no state between calls beyond the engine's worker
// pool.
//
// # Supported Formats
//
// Decode sniffs the container by its magic bytes and accepts:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Output is always canonical WAV: a fixed 44-byte header plus
// interleaved 16-bit PCM. Lossy encoding is deliberately out of scope.
//
// # Quick Start
//
// The one-call path decodes a clip, measures it, fixes what the
// metrics call for and re-encodes:
//
//	eng := pipeline.New(pipeline.Options{})
//	defer eng.Close()
//
//	out, report, err := vocalix.EnhanceClip(ctx, eng, rawClip)
//	if err != nil {
//		// a *DecodeError or *EncodeError; nothing was produced
//	}
//	// out is canonical WAV, report says what was applied
//
// # Picking Effects Explicitly
//
// For user-selected transforms, decode first and run a request chain
// through the engine:
//
//	buf, _ := vocalix.Decode(rawClip)
//	out, report, err := eng.Apply(ctx, buf, []effects.Request{
//		{Kind: effects.KindSilenceRemove},
//		{Kind: effects.KindVoiceFilter, VoiceFilter: &effects.VoiceFilterParams{
//			Preset:    effects.PresetChipmunk,
//			Intensity: 1,
//		}},
//	})
//
// The effects package documents every transform and its parameter
// ranges; mix layers multiple tracks and crossfades clips; audio holds
// the buffer model and the signal analysis behind quality scoring.
//
// # Previews
//
// Snippet extracts the liveliest stretch of a clip for feed previews,
// and audio.Waveform summarizes a clip into bar heights for rendering.
package vocalix

// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg
// Vorbis streams into in-memory buffers. Vorbis is a free, open-source
// lossy compression format common for uploaded voice clips.
//
// # Decoding Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	file, _ := os.Open("clip.ogg")
//	defer file.Close()
//
//	buf, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The decoder reads the whole stream and returns an audio.Buffer with
// samples as float32 values in the range [-1.0, 1.0]. Vorbis decodes
// natively to float, so no quantization step is involved.
//
// # Output Format
//
// Vorbis decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: taken from the stream (mono or stereo typically)
//   - Sample rate: taken from the stream (commonly 44.1kHz or 48kHz)
//
// To fold a stereo stream down for single-voice processing:
//
//	mono := audio.DownmixMono(buf)
//
// # Limitations
//
// Note:
//   - Vorbis encoding is not supported (decoding only)
//   - The whole stream is decoded up front; very long recordings cost
//     memory proportional to their duration
//
// # Example: Vorbis to WAV Conversion
//
//	buf, _ := vorbis.Decoder{}.Decode(oggFile)
//
//	wavFile, _ := os.Create("clip.wav")
//	wav.Write(wavFile, audio.DownmixMono(buf))
package vorbis

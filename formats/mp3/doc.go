// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3
// streams into in-memory buffers ready for editing.
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	file, _ := os.Open("clip.mp3")
//	defer file.Close()
//
//	buf, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The decoder reads the whole stream and returns an audio.Buffer with
// samples as float32 values in the range [-1.0, 1.0].
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: 2 (go-mp3 upmixes mono streams to stereo)
//   - Sample rate: taken from the stream (typically 44.1kHz or 48kHz)
//
// To fold the stereo pair down for single-voice processing, use the
// audio package:
//
//	mono := audio.DownmixMono(buf)
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - Output is always stereo (use DownmixMono to convert)
//   - The whole stream is decoded up front; very long recordings cost
//     memory proportional to their duration
//
// Example converting MP3 to canonical WAV:
//
//	buf, _ := mp3.Decoder{}.Decode(mp3File)
//
//	wavFile, _ := os.Create("clip.wav")
//	wav.Write(wavFile, audio.DownmixMono(buf))
package mp3

// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files into
// in-memory buffers. AIFF is Apple's standard audio file format,
// commonly produced by recording tools on macOS and iOS.
//
// # Supported Formats
//
// Currently supported:
//   - AIFF (Audio Interchange File Format)
//   - PCM at 8, 16, 24 and 32 bits per sample
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
// Use the Decoder to read AIFF files:
//
//	file, _ := os.Open("clip.aif")
//	defer file.Close()
//
//	buf, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The decoder reads the whole stream and returns an audio.Buffer with
// samples as float32 values in the range [-1.0, 1.0], scaled by the
// full-scale value of the source bit depth.
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: the sample size is not 8, 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: unsupported AIFF file structure
//
// Example:
//
//	buf, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    fmt.Println("Not an AIFF file")
//	}
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Originated on Apple platforms (WAV on Windows)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//   - Both are uncompressed PCM formats
//
// The decoder handles all format differences automatically.
//
// # Limitations
//
// Note:
//   - AIFF writing is not supported (decoding only)
//   - AIFF-C compressed variants are not supported
//
// # Example: AIFF to WAV Conversion
//
//	buf, _ := aiff.Decoder{}.Decode(aiffFile)
//
//	wavFile, _ := os.Create("clip.wav")
//	wav.Write(wavFile, audio.DownmixMono(buf))
package aiff

// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV container decoding and canonical encoding.
//
// Decoding uses the github.com/go-audio/wav parser, so files with extra
// chunks (LIST, cue, fact) or unusual chunk ordering decode fine. Encoding
// always produces the canonical form: a fixed 44-byte header followed by
// interleaved 16-bit PCM, byte-identical across runs for the same input.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV data:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("clip.wav")
//	buf, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The decoder returns a planar audio.Buffer with samples as float32 values
// in the range [-1.0, 1.0]. Any io.Reader works; when the input is not
// seekable the bytes are buffered in memory first.
//
// # Writing WAV Files
//
// Use Write for streams or Encode for in-memory bytes:
//
//	err := wav.Write(file, buf)
//	data, err := wav.Encode(buf)
//
// # Quantization
//
// Float samples are clamped to [-1, 1] and quantized asymmetrically:
// negative values scale by 32768 and non-negative values by 32767, both
// truncated. Decoding mirrors the same split, which keeps a decode(encode(b))
// round trip within one quantization step (1/32767) per sample.
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotWavFile: the input is not a valid WAV container
//   - ErrOnlyPCMSupported: compressed WAV variants are rejected
//   - ErrOnlyPCM16bitSupported: only 16-bit samples are supported
//   - ErrUnsupportedWavLayout: the container decodes to an unusable shape
//
// Encoding errors wrap the audio package's shape sentinels, so callers can
// test with errors.Is:
//
//	_, err := wav.Encode(badBuffer)
//	if errors.Is(err, audio.ErrNoChannels) {
//	    // reject the upload
//	}
//
// # File Format
//
// The canonical layout, offsets in bytes:
//
//	0  "RIFF"            4 ASCII bytes
//	4  chunk size        u32, file size - 8
//	8  "WAVE"
//	12 "fmt "
//	16 16                u32, fmt chunk size
//	20 1                 u16, PCM format
//	22 channel count     u16
//	24 sample rate       u32
//	28 byte rate         u32, rate * channels * 2
//	32 block align       u16, channels * 2
//	34 16                u16, bits per sample
//	36 "data"
//	40 data size         u32, frames * channels * 2
//	44 interleaved int16 samples, frame-major, channel-minor
package wav

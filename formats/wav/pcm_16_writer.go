// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/utils"
)

// headerSize is the canonical RIFF/WAVE header length.
const headerSize = 44

// Write serializes buf as a canonical WAV: a fixed 44-byte header followed
// by 16-bit PCM samples interleaved frame-major, channel-minor. The layout
// never varies (single fmt chunk, single data chunk), so the output for a
// given buffer is byte-identical across runs.
func Write(w io.Writer, buf *audio.Buffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}

	channels := buf.NumChannels()
	frames := buf.Frames()

	numChannels := uint16(channels)
	bitsPerSample := uint16(16)
	byteRate := uint32(buf.SampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * (bitsPerSample / 8)
	dataSize := uint32(frames * channels * 2)
	riffSize := 36 + dataSize

	// Pre-allocate buffer for entire header (44 bytes)
	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(buf.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	// Write header in one operation
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if frames == 0 {
		return nil
	}

	// Interleave and quantize in chunks so large clips reuse one scratch
	// buffer instead of materializing the whole byte slice twice.
	const chunkFrames = 4096
	out := make([]byte, min(frames, chunkFrames)*channels*2)

	for start := 0; start < frames; start += chunkFrames {
		end := min(start+chunkFrames, frames)

		n := 0
		for f := start; f < end; f++ {
			for c := 0; c < channels; c++ {
				v := utils.FloatToPCM16(buf.Data[c][f])
				binary.LittleEndian.PutUint16(out[n:n+2], uint16(v))
				n += 2
			}
		}

		if _, err := w.Write(out[:n]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// Encode renders buf to canonical WAV bytes in memory.
func Encode(buf *audio.Buffer) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("encode wav: %w", err)
	}

	var out bytes.Buffer
	out.Grow(headerSize + buf.Frames()*buf.NumChannels()*2)

	if err := Write(&out, buf); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/melloom/Vocalix-sub017/audio"
)

// aiffReader is the slice of goaiff.Decoder the decoder relies on.
// Tests substitute a fake stream.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder decodes AIFF files into in-memory buffers.
type Decoder struct{}

// Decode reads an entire AIFF stream from r. Sample sizes of 8, 16,
// 24 and 32 bits are supported.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs to seek between chunks, so plain readers are
		// buffered in memory first.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("decode aiff: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	scale, err := sampleScale(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	return decodePCM(dec, scale)
}

// sampleScale maps a sample size to its full-scale divisor.
func sampleScale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 8:
		return 128, nil
	case 16:
		return 32768, nil
	case 24:
		return 8388608, nil
	case 32:
		return 2147483648, nil
	default:
		return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}
}

// decodePCM drains src chunk by chunk and de-interleaves the integer
// samples into a planar buffer. The channel cursor persists across
// chunks, so reads do not need to stop on frame boundaries.
func decodePCM(src aiffReader, scale float32) (*audio.Buffer, error) {
	format := src.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	channels := format.NumChannels
	out := audio.New(format.SampleRate, channels, 0)

	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, 4096*channels),
		Format: format,
	}

	ch := 0
	for {
		n, err := src.PCMBuffer(intBuf)
		if n > 0 {
			for _, v := range intBuf.Data[:n] {
				out.Data[ch] = append(out.Data[ch], float32(v)/scale)
				ch = (ch + 1) % channels
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode aiff: %w", err)
		}
		// go-audio signals the end of the sound chunk with a short read.
		if n < len(intBuf.Data) {
			break
		}
	}

	trimPartialFrame(out)
	return out, nil
}

// trimPartialFrame drops a trailing frame that did not receive samples
// on every channel.
func trimPartialFrame(b *audio.Buffer) {
	frames := len(b.Data[0])
	for _, ch := range b.Data[1:] {
		frames = min(frames, len(ch))
	}
	for c := range b.Data {
		b.Data[c] = b.Data[c][:frames]
	}
}

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/melloom/Vocalix-sub017/audio"
)

// oggReader is the slice of oggvorbis.Reader the decoder relies on.
// Tests substitute a fake stream.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Decoder decodes Ogg Vorbis streams into in-memory buffers.
type Decoder struct{}

// Decode reads an entire Ogg Vorbis stream from r.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decode ogg: %w", err)
	}

	return decodeStream(dec)
}

// decodeStream drains src into a planar buffer. oggvorbis delivers
// interleaved float32 samples already scaled to [-1.0, 1.0], so no
// further conversion is needed.
func decodeStream(src oggReader) (*audio.Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("decode ogg: stream reports %d channels", channels)
	}

	interleaved := make([]float32, 0, 4096*channels)
	chunk := make([]float32, 4096*channels)

	for {
		n, err := src.Read(chunk)
		if n > 0 {
			interleaved = append(interleaved, chunk[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode ogg: %w", err)
		}
	}

	return audio.FromInterleaved(interleaved, channels, src.SampleRate()), nil
}

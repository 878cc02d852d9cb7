// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/utils"
)

// mp3Reader is the slice of gomp3.Decoder the decoder relies on.
// Tests substitute a fake stream.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// frameBytes is the size of one decoded frame: 16-bit samples, always
// two channels with go-mp3.
const frameBytes = 4

// Decoder decodes MP3 streams into in-memory buffers.
type Decoder struct{}

// Decode reads an entire MP3 stream from r. The result is always
// stereo because go-mp3 upmixes mono streams during decoding.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}

	return decodeFrames(dec)
}

// decodeFrames drains src and de-interleaves its 16-bit little-endian
// PCM output into a planar buffer. A trailing partial frame is dropped.
func decodeFrames(src mp3Reader) (*audio.Buffer, error) {
	left := make([]float32, 0, 4096)
	right := make([]float32, 0, 4096)

	buf := make([]byte, 8192)
	carried := 0

	for {
		n, err := src.Read(buf[carried:])
		if n > 0 {
			total := carried + n
			complete := total - total%frameBytes

			for i := 0; i < complete; i += frameBytes {
				l := int16(uint16(buf[i]) | uint16(buf[i+1])<<8)
				r := int16(uint16(buf[i+2]) | uint16(buf[i+3])<<8)
				left = append(left, utils.PCM16ToFloat(l))
				right = append(right, utils.PCM16ToFloat(r))
			}

			carried = copy(buf, buf[complete:total])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode mp3: %w", err)
		}
	}

	return &audio.Buffer{
		Data:       [][]float32{left, right},
		SampleRate: src.SampleRate(),
	}, nil
}

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/utils"
)

// Decoder reads WAV containers into PCM buffers. Chunk parsing is delegated
// to go-audio/wav, so non-canonical layouts (LIST, cue and fact chunks,
// padding) decode fine; the sample data itself must be 16-bit integer PCM.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs random access for chunk scanning.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != 1 {
		return nil, ErrOnlyPCMSupported
	}
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}

	return fromIntBuffer(ib)
}

// fromIntBuffer converts go-audio's interleaved int samples to a planar
// buffer using the canonical 16-bit mapping.
func fromIntBuffer(ib *goaudio.IntBuffer) (*audio.Buffer, error) {
	if ib == nil || ib.Format == nil {
		return nil, ErrUnsupportedWavLayout
	}

	channels := ib.Format.NumChannels
	rate := ib.Format.SampleRate
	if channels < 1 || rate <= 0 {
		return nil, ErrUnsupportedWavLayout
	}

	frames := len(ib.Data) / channels
	out := audio.New(rate, channels, frames)

	for f := 0; f < frames; f++ {
		base := f * channels
		for c := 0; c < channels; c++ {
			out.Data[c][f] = utils.PCM16ToFloat(int16(ib.Data[base+c]))
		}
	}

	return out, nil
}

// SPDX-License-Identifier: EPL-2.0

package vocalix

import (
	"bytes"
	"context"
	"time"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/formats/aiff"
	"github.com/melloom/Vocalix-sub017/formats/mp3"
	"github.com/melloom/Vocalix-sub017/formats/vorbis"
	"github.com/melloom/Vocalix-sub017/formats/wav"
	"github.com/melloom/Vocalix-sub017/pipeline"
)

// Container format keys understood by DetectFormat and registered in
// DefaultRegistry.
const (
	FormatWAV  = "wav"
	FormatMP3  = "mp3"
	FormatOgg  = "ogg"
	FormatAIFF = "aiff"
)

// DefaultRegistry returns a registry with every bundled container
// decoder registered under its format key.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register(FormatWAV, wav.Decoder{})
	r.Register(FormatMP3, mp3.Decoder{})
	r.Register(FormatOgg, vorbis.Decoder{})
	r.Register(FormatAIFF, aiff.Decoder{})
	return r
}

var defaultRegistry = DefaultRegistry()

// DetectFormat sniffs the magic bytes at the head of a container and
// returns its format key, or "" when the container is not recognized.
func DetectFormat(data []byte) string {
	switch {
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WAVE":
		return FormatWAV
	case len(data) >= 12 && string(data[0:4]) == "FORM" &&
		(string(data[8:12]) == "AIFF" || string(data[8:12]) == "AIFC"):
		return FormatAIFF
	case len(data) >= 4 && string(data[0:4]) == "OggS":
		return FormatOgg
	case len(data) >= 3 && string(data[0:3]) == "ID3":
		return FormatMP3
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		// Bare MPEG frame sync, an mp3 without an ID3 tag.
		return FormatMP3
	}
	return ""
}

// Decode sniffs the container format of data and decodes it to a PCM
// buffer. Failures come back as a *DecodeError; unrecognized
// containers wrap ErrUnknownFormat.
func Decode(data []byte) (*audio.Buffer, error) {
	format := DetectFormat(data)
	if format == "" {
		return nil, &DecodeError{Err: ErrUnknownFormat}
	}

	dec, ok := defaultRegistry.Get(format)
	if !ok {
		return nil, &DecodeError{Format: format, Err: ErrUnknownFormat}
	}

	buf, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: format, Err: err}
	}
	return buf, nil
}

// Encode serializes buf to canonical WAV bytes: a 44-byte header
// followed by interleaved little-endian 16-bit PCM. Whatever container
// a clip arrived in, this is the only output format.
func Encode(buf *audio.Buffer) ([]byte, error) {
	data, err := wav.Encode(buf)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	return data, nil
}

// ClipCodec adapts the package-level Decode and Encode to
// pipeline.Codec, for use with Engine.ProcessClips.
type ClipCodec struct{}

func (ClipCodec) Decode(data []byte) (*audio.Buffer, error) { return Decode(data) }

func (ClipCodec) Encode(buf *audio.Buffer) ([]byte, error) { return Encode(buf) }

// EnhanceClip is the one-call upload path: decode raw container bytes,
// run the engine's automatic enhancement, and encode the result as
// canonical WAV. The report carries the measured quality metrics and
// the transforms the engine chose to apply.
func EnhanceClip(ctx context.Context, eng *pipeline.Engine, raw []byte) ([]byte, *pipeline.Report, error) {
	buf, err := Decode(raw)
	if err != nil {
		return nil, nil, err
	}

	enhanced, report, err := eng.AutoEnhance(ctx, buf)
	if err != nil {
		return nil, report, err
	}

	data, err := Encode(enhanced)
	if err != nil {
		return nil, report, err
	}
	return data, report, nil
}

// Snippet copies the liveliest stretch of buf, at most duration long,
// to serve as a feed preview. A clip shorter than duration is copied
// whole.
func Snippet(buf *audio.Buffer, duration time.Duration) (*audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	start, end := audio.BestWindow(buf, duration)
	return buf.Slice(start, end), nil
}

// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// fakeOggStream stands in for oggvorbis.Reader. Read hands out at most
// maxSamples values per call, always whole frames.
type fakeOggStream struct {
	rate       int
	channels   int
	samples    []float32
	offset     int
	maxSamples int
	err        error // returned instead of io.EOF once drained
}

func (f *fakeOggStream) SampleRate() int { return f.rate }
func (f *fakeOggStream) Channels() int   { return f.channels }

func (f *fakeOggStream) Read(p []float32) (int, error) {
	if f.offset >= len(f.samples) {
		if f.err != nil {
			return 0, f.err
		}
		return 0, io.EOF
	}

	n := len(p)
	if f.maxSamples > 0 && n > f.maxSamples {
		n = f.maxSamples
	}
	if remain := len(f.samples) - f.offset; n > remain {
		n = remain
	}
	n -= n % f.channels

	copy(p, f.samples[f.offset:f.offset+n])
	f.offset += n

	return n, nil
}

func TestDecodeInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data")))
	if err == nil {
		t.Error("Decode error = nil, want error for invalid data")
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode error = nil, want error for empty input")
	}
}

func TestDecodeStreamStereo(t *testing.T) {
	t.Parallel()

	// Frames as L R pairs: (0.1,0.2) (0.3,0.4) (0.5,0.6) (0.7,0.8).
	stream := &fakeOggStream{
		rate:     44100,
		channels: 2,
		samples:  []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8},
	}

	buf, err := decodeStream(stream)
	if err != nil {
		t.Fatalf("decodeStream: %v", err)
	}

	if buf.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", buf.SampleRate)
	}
	if buf.NumChannels() != 2 {
		t.Fatalf("NumChannels() = %d, want 2", buf.NumChannels())
	}
	if buf.Frames() != 4 {
		t.Fatalf("Frames() = %d, want 4", buf.Frames())
	}

	wantLeft := []float32{0.1, 0.3, 0.5, 0.7}
	wantRight := []float32{0.2, 0.4, 0.6, 0.8}
	for i := range 4 {
		if buf.Data[0][i] != wantLeft[i] {
			t.Errorf("left frame %d = %v, want %v", i, buf.Data[0][i], wantLeft[i])
		}
		if buf.Data[1][i] != wantRight[i] {
			t.Errorf("right frame %d = %v, want %v", i, buf.Data[1][i], wantRight[i])
		}
	}
}

func TestDecodeStreamMono(t *testing.T) {
	t.Parallel()

	stream := &fakeOggStream{
		rate:     16000,
		channels: 1,
		samples:  []float32{0.5, -0.5, 0.25},
	}

	buf, err := decodeStream(stream)
	if err != nil {
		t.Fatalf("decodeStream: %v", err)
	}
	if buf.NumChannels() != 1 {
		t.Fatalf("NumChannels() = %d, want 1", buf.NumChannels())
	}
	if buf.Frames() != 3 {
		t.Fatalf("Frames() = %d, want 3", buf.Frames())
	}
	for i, want := range []float32{0.5, -0.5, 0.25} {
		if buf.Data[0][i] != want {
			t.Errorf("frame %d = %v, want %v", i, buf.Data[0][i], want)
		}
	}
}

// TestDecodeStreamSmallReads forces the stream to hand out a few
// samples per call, checking reassembly across chunks.
func TestDecodeStreamSmallReads(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 500)
	for i := range samples {
		samples[i] = float32(i) / 500
	}

	stream := &fakeOggStream{
		rate:       8000,
		channels:   2,
		samples:    samples,
		maxSamples: 6,
	}

	buf, err := decodeStream(stream)
	if err != nil {
		t.Fatalf("decodeStream: %v", err)
	}
	if buf.Frames() != 250 {
		t.Fatalf("Frames() = %d, want 250", buf.Frames())
	}

	for i := range 250 {
		if got, want := buf.Data[0][i], samples[2*i]; got != want {
			t.Fatalf("left frame %d = %v, want %v", i, got, want)
		}
		if got, want := buf.Data[1][i], samples[2*i+1]; got != want {
			t.Fatalf("right frame %d = %v, want %v", i, got, want)
		}
	}
}

func TestDecodeStreamEmpty(t *testing.T) {
	t.Parallel()

	stream := &fakeOggStream{rate: 48000, channels: 2}

	buf, err := decodeStream(stream)
	if err != nil {
		t.Fatalf("decodeStream: %v", err)
	}
	if buf.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", buf.Frames())
	}
	if buf.NumChannels() != 2 {
		t.Errorf("NumChannels() = %d, want 2", buf.NumChannels())
	}
}

func TestDecodeStreamBadChannelCount(t *testing.T) {
	t.Parallel()

	stream := &fakeOggStream{rate: 8000, channels: 0}

	if _, err := decodeStream(stream); err == nil {
		t.Error("decodeStream error = nil, want error for zero channels")
	}
}

func TestDecodeStreamReadError(t *testing.T) {
	t.Parallel()

	stream := &fakeOggStream{
		rate:     8000,
		channels: 2,
		samples:  []float32{0.1, 0.2},
		err:      io.ErrUnexpectedEOF,
	}

	_, err := decodeStream(stream)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("decodeStream error = %v, want wrapped io.ErrUnexpectedEOF", err)
	}
}

// BenchmarkDecodeStream benchmarks draining ten seconds of stereo.
func BenchmarkDecodeStream(b *testing.B) {
	samples := make([]float32, 44100*2*10)
	for i := range samples {
		samples[i] = float32(i%2000)/1000 - 1
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		stream := &fakeOggStream{rate: 44100, channels: 2, samples: samples}
		if _, err := decodeStream(stream); err != nil {
			b.Fatal(err)
		}
	}
}

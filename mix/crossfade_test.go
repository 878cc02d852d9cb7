// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/internal/audiotest"
)

func TestCrossfadeLength(t *testing.T) {
	t.Parallel()

	a := audiotest.Sine(44100, 1, 88200, 440, 0.5)
	b := audiotest.Sine(44100, 1, 88200, 220, 0.5)

	out, err := Crossfade(a, b, 500*time.Millisecond, Linear)
	if err != nil {
		t.Fatalf("Crossfade() error = %v", err)
	}

	// Two 2 s clips over a 0.5 s fade: (2+2-0.5)*44100 frames.
	if got := out.Frames(); got != 154350 {
		t.Fatalf("Frames() = %d, want 154350", got)
	}
}

func TestCrossfadeContent(t *testing.T) {
	t.Parallel()

	a := audiotest.Constant(1000, 1, 300, 0.8)
	b := audiotest.Constant(1000, 1, 300, 0.4)

	out, err := Crossfade(a, b, 100*time.Millisecond, Linear)
	if err != nil {
		t.Fatalf("Crossfade() error = %v", err)
	}

	if got := out.Frames(); got != 500 {
		t.Fatalf("Frames() = %d, want 500", got)
	}

	// Before the overlap: pure a. At fade start the curve gain is zero,
	// at the midpoint the clips trade evenly, past the overlap: pure b.
	if got := out.Data[0][150]; got != float32(0.8) {
		t.Fatalf("frame 150 = %v, want pure first clip", got)
	}
	if got := out.Data[0][200]; got != float32(0.8) {
		t.Fatalf("fade start = %v, want the full first clip", got)
	}
	if got := out.Data[0][250]; math.Abs(float64(got)-0.6) > 1e-6 {
		t.Fatalf("fade midpoint = %v, want 0.6", got)
	}
	if got := out.Data[0][300]; got != float32(0.4) {
		t.Fatalf("frame 300 = %v, want pure second clip", got)
	}
	if got := out.Data[0][499]; got != float32(0.4) {
		t.Fatalf("last frame = %v, want pure second clip", got)
	}
}

func TestCrossfadeCurveShapesOverlap(t *testing.T) {
	t.Parallel()

	// With a at full scale and b silent, every overlap sample reads
	// back 1-curve(progress) directly.
	a := audiotest.Constant(1000, 1, 200, 1)
	b := audiotest.Silence(1000, 1, 200)

	for _, curve := range []FadeCurve{Linear, Exponential, Logarithmic, Sigmoid} {
		out, err := Crossfade(a, b, 100*time.Millisecond, curve)
		if err != nil {
			t.Fatalf("Crossfade(%v) error = %v", curve, err)
		}

		for i := range 100 {
			want := 1 - curve.Gain(float64(i)/100)
			if got := float64(out.Data[0][100+i]); math.Abs(got-want) > 1e-6 {
				t.Fatalf("%v overlap frame %d = %v, want %v", curve, i, got, want)
			}
		}
	}
}

func TestCrossfadeZeroDurationConcatenates(t *testing.T) {
	t.Parallel()

	a := audiotest.Constant(1000, 1, 100, 0.8)
	b := audiotest.Constant(1000, 1, 100, 0.4)

	for _, d := range []time.Duration{0, -time.Second} {
		out, err := Crossfade(a, b, d, Linear)
		if err != nil {
			t.Fatalf("Crossfade(%v) error = %v", d, err)
		}
		if got := out.Frames(); got != 200 {
			t.Fatalf("Frames() = %d, want 200", got)
		}
		if out.Data[0][99] != float32(0.8) || out.Data[0][100] != float32(0.4) {
			t.Fatal("concatenation boundary misplaced")
		}
	}
}

func TestCrossfadeClampsToShorterClip(t *testing.T) {
	t.Parallel()

	a := audiotest.Constant(1000, 1, 300, 0.8)
	b := audiotest.Constant(1000, 1, 100, 0.4)

	out, err := Crossfade(a, b, 200*time.Millisecond, Linear)
	if err != nil {
		t.Fatalf("Crossfade() error = %v", err)
	}

	// The requested 200 frame fade cannot exceed b's 100 frames.
	if got := out.Frames(); got != 300 {
		t.Fatalf("Frames() = %d, want 300", got)
	}
}

func TestCrossfadeErrors(t *testing.T) {
	t.Parallel()

	mono := audiotest.Constant(8000, 1, 100, 0.5)
	stereo := audiotest.Constant(8000, 2, 100, 0.5)
	slower := audiotest.Constant(4000, 1, 100, 0.5)

	if _, err := Crossfade(mono, slower, time.Second, Linear); !errors.Is(err, ErrFormatMismatch) {
		t.Fatalf("rate mismatch error = %v, want ErrFormatMismatch", err)
	}
	if _, err := Crossfade(mono, stereo, time.Second, Linear); !errors.Is(err, ErrFormatMismatch) {
		t.Fatalf("channel mismatch error = %v, want ErrFormatMismatch", err)
	}
	if _, err := Crossfade(nil, mono, time.Second, Linear); !errors.Is(err, audio.ErrNilBuffer) {
		t.Fatalf("nil first clip error = %v, want ErrNilBuffer", err)
	}
}

func BenchmarkCrossfade(b *testing.B) {
	first := audiotest.Sine(44100, 1, 88200, 440, 0.5)
	second := audiotest.Sine(44100, 1, 88200, 220, 0.5)

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		if _, err := Crossfade(first, second, 500*time.Millisecond, Sigmoid); err != nil {
			b.Fatal(err)
		}
	}
}

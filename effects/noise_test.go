// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"testing"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/internal/audiotest"
)

// noisyClip starts with half a second of low room tone followed by loud
// content, matching the lead-in the noise floor estimate assumes.
func noisyClip(channels int, tone float32) *audio.Buffer {
	const rate = 1000
	return audiotest.Gen(rate, channels, 2*rate, func(frame, _ int) float32 {
		if frame < rate/2 {
			return tone
		}
		return 0.5
	})
}

func TestNoiseSuppressGatesQuietSamples(t *testing.T) {
	t.Parallel()

	in := noisyClip(2, 0.01)

	out, err := NoiseSuppress(in, DefaultNoiseSuppressParams())
	if err != nil {
		t.Fatalf("NoiseSuppress() error = %v", err)
	}

	// Noise floor 0.01, threshold 0.03: the room tone is halved, the
	// voice passes untouched.
	wantQuiet := float32(0.01) * 0.5
	for c := range out.Data {
		if got := out.Data[c][100]; got != wantQuiet {
			t.Fatalf("channel %d room tone = %v, want %v", c, got, wantQuiet)
		}
		if got := out.Data[c][1500]; got != 0.5 {
			t.Fatalf("channel %d voice sample = %v, want 0.5 untouched", c, got)
		}
	}

	if got := in.Data[0][100]; got != 0.01 {
		t.Fatalf("input sample changed to %v, transforms must not mutate their input", got)
	}
}

func TestNoiseSuppressFullStrengthMutes(t *testing.T) {
	t.Parallel()

	in := noisyClip(1, 0.01)

	out, err := NoiseSuppress(in, NoiseSuppressParams{Strength: 1})
	if err != nil {
		t.Fatalf("NoiseSuppress() error = %v", err)
	}

	if got := out.Data[0][100]; got != 0 {
		t.Fatalf("room tone = %v, want muted", got)
	}
	if got := out.Data[0][1500]; got != 0.5 {
		t.Fatalf("voice sample = %v, want 0.5 untouched", got)
	}
}

func TestNoiseSuppressClampsStrength(t *testing.T) {
	t.Parallel()

	in := noisyClip(1, 0.01)

	out, err := NoiseSuppress(in, NoiseSuppressParams{Strength: 3})
	if err != nil {
		t.Fatalf("NoiseSuppress() error = %v", err)
	}

	// Strength past 1 behaves like 1 instead of inverting the signal.
	if got := out.Data[0][100]; got != 0 {
		t.Fatalf("room tone = %v, want muted", got)
	}
}

func TestNoiseSuppressNoop(t *testing.T) {
	t.Parallel()

	t.Run("zero strength", func(t *testing.T) {
		in := noisyClip(1, 0.01)
		out, err := NoiseSuppress(in, NoiseSuppressParams{})
		if err != nil {
			t.Fatalf("NoiseSuppress() error = %v", err)
		}
		if out != in {
			t.Fatal("expected the input buffer back unchanged")
		}
	})

	t.Run("silent lead-in", func(t *testing.T) {
		in := noisyClip(1, 0)
		out, err := NoiseSuppress(in, DefaultNoiseSuppressParams())
		if err != nil {
			t.Fatalf("NoiseSuppress() error = %v", err)
		}
		if out != in {
			t.Fatal("a zero noise floor leaves nothing to gate")
		}
	})
}

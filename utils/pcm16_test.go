// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloatToPCM16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{
			name:  "zero",
			input: 0.0,
			want:  0,
		},
		{
			name:  "max positive",
			input: 1.0,
			want:  math.MaxInt16,
		},
		{
			name:  "max negative",
			input: -1.0,
			want:  math.MinInt16,
		},
		{
			name:  "half positive",
			input: 0.5,
			want:  16383, // 0.5 * 32767 = 16383.5, truncated
		},
		{
			name:  "half negative",
			input: -0.5,
			want:  -16384, // -0.5 * 32768
		},
		{
			name:  "quarter positive",
			input: 0.25,
			want:  8191, // 0.25 * 32767 = 8191.75, truncated
		},
		{
			name:  "small positive",
			input: 0.001,
			want:  32, // 0.001 * 32767 = 32.767, truncated
		},
		{
			name:  "small negative",
			input: -0.001,
			want:  -32,
		},
		{
			name:  "clamp over max",
			input: 1.5,
			want:  math.MaxInt16,
		},
		{
			name:  "clamp under min",
			input: -1.5,
			want:  math.MinInt16,
		},
		{
			name:  "clamp way over max",
			input: 100.0,
			want:  math.MaxInt16,
		},
		{
			name:  "clamp way under min",
			input: -100.0,
			want:  math.MinInt16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FloatToPCM16(tt.input)
			if got != tt.want {
				t.Errorf("FloatToPCM16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloatToPCM16Range tests that values in [-1, 1] stay in the int16 range.
func TestFloatToPCM16Range(t *testing.T) {
	t.Parallel()

	for f := -1.0; f <= 1.0; f += 0.01 {
		result := int32(FloatToPCM16(float32(f)))

		if result < math.MinInt16 || result > math.MaxInt16 {
			t.Errorf("FloatToPCM16(%v) = %v, outside valid range [-32768, 32767]",
				f, result)
		}
	}
}

// TestFloatToPCM16Monotonic tests that the conversion is monotonic.
func TestFloatToPCM16Monotonic(t *testing.T) {
	t.Parallel()

	prev := FloatToPCM16(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := FloatToPCM16(float32(f))
		if curr < prev {
			t.Errorf("FloatToPCM16 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

// TestPCM16RoundTrip verifies the encode/decode pair stays within one
// quantization step for arbitrary inputs in [-1, 1].
func TestPCM16RoundTrip(t *testing.T) {
	t.Parallel()

	const step = 1.0 / 32767.0

	for f := -1.0; f <= 1.0; f += 0.0005 {
		orig := float32(f)
		decoded := PCM16ToFloat(FloatToPCM16(orig))
		diff := math.Abs(float64(orig - decoded))

		if diff > step {
			t.Fatalf("round trip error too large at %v: decoded %v (diff %v > %v)",
				orig, decoded, diff, step)
		}
	}
}

// TestPCM16ToFloatExtremes verifies the full int16 range maps into [-1, 1].
func TestPCM16ToFloatExtremes(t *testing.T) {
	t.Parallel()

	if got := PCM16ToFloat(math.MaxInt16); got != 1.0 {
		t.Errorf("PCM16ToFloat(MaxInt16) = %v, want 1.0", got)
	}
	if got := PCM16ToFloat(math.MinInt16); got != -1.0 {
		t.Errorf("PCM16ToFloat(MinInt16) = %v, want -1.0", got)
	}
	if got := PCM16ToFloat(0); got != 0.0 {
		t.Errorf("PCM16ToFloat(0) = %v, want 0.0", got)
	}
}

// BenchmarkFloatToPCM16 tests performance and allocations
func BenchmarkFloatToPCM16(b *testing.B) {
	var result int16
	input := float32(0.5)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		result = FloatToPCM16(input)
	}

	// Prevent compiler optimization
	_ = result
}

// BenchmarkFloatToPCM16Buffer simulates converting one second of audio.
func BenchmarkFloatToPCM16Buffer(b *testing.B) {
	floatSamples := make([]float32, 44100)
	pcmSamples := make([]int16, 44100)

	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		for j := range floatSamples {
			pcmSamples[j] = FloatToPCM16(floatSamples[j])
		}
	}
}

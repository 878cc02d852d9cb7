// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/utils"
)

const (
	// irSeconds is the impulse response length. Two seconds covers the
	// longest tail the damping range can produce.
	irSeconds = 2

	// irSeed keeps the synthesized response identical across calls, so
	// the same clip and parameters always render the same bytes.
	irSeed = 1
)

// ReverbParams configures the convolution reverb.
type ReverbParams struct {
	// RoomSize sets the level of the reverberant field, in [0, 1].
	RoomSize float64 `json:"room_size"`
	// Damping controls how fast the tail decays, in [0, 1].
	Damping float64 `json:"damping"`
	// Wet is the reverb mix; the dry signal is scaled by 1-Wet.
	Wet float64 `json:"wet"`
}

// DefaultReverbParams gives a medium room with a subtle mix.
func DefaultReverbParams() ReverbParams {
	return ReverbParams{RoomSize: 0.5, Damping: 0.5, Wet: 0.3}
}

// Reverb convolves buf with a synthetic impulse response and mixes the
// result under the dry signal. The output keeps the input length; the
// tail past the last frame is truncated. A non-positive room size or
// wet level returns the input unchanged.
func Reverb(buf *audio.Buffer, p ReverbParams) (*audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return buf, err
	}

	wet := utils.Clamp(p.Wet, 0, 1)
	if wet == 0 || p.RoomSize <= 0 {
		return buf, nil
	}

	frames := buf.Frames()
	if frames == 0 {
		return buf, nil
	}

	room := utils.Clamp(p.RoomSize, 0, 1)
	damping := utils.Clamp(p.Damping, 0, 1)

	ir := impulseResponse(buf.SampleRate, room, damping)

	n := fftSize(frames + len(ir) - 1)
	fft := fourier.NewFFT(n)

	irSeq := make([]float64, n)
	copy(irSeq, ir)
	irCoeff := fft.Coefficients(nil, irSeq)

	out := audio.New(buf.SampleRate, buf.NumChannels(), frames)

	seq := make([]float64, n)
	coeff := make([]complex128, n/2+1)
	inv := make([]float64, n)

	dry := 1 - wet
	scale := 1 / float64(n)

	for c := range buf.Data {
		for i := range seq {
			seq[i] = 0
		}
		for i, s := range buf.Data[c] {
			seq[i] = float64(s)
		}

		fft.Coefficients(coeff, seq)
		for i := range coeff {
			coeff[i] *= irCoeff[i]
		}
		fft.Sequence(inv, coeff)

		for i := range out.Data[c] {
			mixed := float64(buf.Data[c][i])*dry + inv[i]*scale*wet
			out.Data[c][i] = utils.ClampSample(float32(mixed))
		}
	}

	return out, nil
}

// impulseResponse synthesizes a decaying noise burst. The response is
// normalized to unit energy and then scaled by roomSize, so roomSize
// sets the wet level directly instead of compounding with the tail
// length.
func impulseResponse(sampleRate int, roomSize, damping float64) []float64 {
	n := irSeconds * sampleRate
	rng := rand.New(rand.NewSource(irSeed))

	ir := make([]float64, n)
	exp := 1 + damping*10

	var energy float64
	for i := range ir {
		decay := math.Pow(1-float64(i)/float64(n), exp)
		v := (rng.Float64()*2 - 1) * decay
		ir[i] = v
		energy += v * v
	}

	if energy > 0 {
		scale := roomSize / math.Sqrt(energy)
		for i := range ir {
			ir[i] *= scale
		}
	}

	return ir
}

// fftSize returns the power of two that fits length n.
func fftSize(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// SPDX-License-Identifier: EPL-2.0

// Package mix layers and joins buffers: a clip-safe multitrack mixer
// and a crossfade compositor.
//
// # Mixing
//
// Mix sums a list of tracks, each with its own gain, start offset and
// linear fade ramps:
//
//	out, err := mix.Mix([]mix.Track{
//		{Buffer: voice, Gain: 1},
//		{Buffer: bed, Gain: 0.4, FadeIn: 4410, FadeOut: 8820},
//		{Buffer: sting, Gain: 1, StartOffset: 88200},
//	})
//
// Every addition into the mix is clamped to [-1, 1]. If the summed peak
// still lands above 0.95, the whole output is scaled down to 0.95 so
// the tracks keep their relative balance instead of flattening against
// the ceiling.
//
// # Crossfading
//
// Crossfade overlaps the tail of one clip with the head of the next:
//
//	out, err := mix.Crossfade(a, b, 500*time.Millisecond, mix.Sigmoid)
//
// The four curves trade the clips differently: Linear is neutral,
// Exponential holds the outgoing clip, Logarithmic lifts the incoming
// clip early, Sigmoid eases both edges.
package mix

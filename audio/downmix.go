package audio

// DownmixMono converts a multi-channel buffer to mono by averaging the
// channels per frame. The result is always a new single-channel buffer; a
// mono input is copied as-is.
func DownmixMono(b *Buffer) *Buffer {
	channels := b.NumChannels()
	frames := b.Frames()

	out := New(b.SampleRate, 1, frames)
	if channels == 0 {
		return out
	}

	if channels == 1 {
		copy(out.Data[0], b.Data[0])
		return out
	}

	dst := out.Data[0]

	switch channels {
	case 2: // Stereo (most common)
		left, right := b.Data[0], b.Data[1]
		for f := 0; f < frames; f++ {
			dst[f] = (left[f] + right[f]) * 0.5
		}
	default: // Generic path
		invChannels := float32(1.0) / float32(channels)
		for f := 0; f < frames; f++ {
			sum := float32(0)
			for c := 0; c < channels; c++ {
				sum += b.Data[c][f]
			}
			dst[f] = sum * invChannels
		}
	}

	return out
}

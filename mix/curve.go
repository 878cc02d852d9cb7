package mix

import (
	"math"

	"github.com/melloom/Vocalix-sub017/utils"
)

// FadeCurve selects how crossfade progress maps to gain.
type FadeCurve int

// Fade curves. Linear trades evenly; Exponential holds the outgoing
// clip longer; Logarithmic brings the incoming clip up early; Sigmoid
// eases both ends.
const (
	Linear FadeCurve = iota
	Exponential
	Logarithmic
	Sigmoid
)

// Gain maps fade progress in [0, 1] to a gain factor. Progress outside
// the range is clamped; unknown curves fall back to Linear.
func (c FadeCurve) Gain(progress float64) float64 {
	p := utils.Clamp(progress, 0, 1)

	switch c {
	case Exponential:
		return p * p
	case Logarithmic:
		return 1 - (1-p)*(1-p)
	case Sigmoid:
		return 1 / (1 + math.Exp(-10*(p-0.5)))
	default:
		return p
	}
}

func (c FadeCurve) String() string {
	switch c {
	case Exponential:
		return "exponential"
	case Logarithmic:
		return "logarithmic"
	case Sigmoid:
		return "sigmoid"
	default:
		return "linear"
	}
}

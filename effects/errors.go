package effects

import "errors"

var (
	// ErrUnknownEffect indicates a request kind outside the effect table
	ErrUnknownEffect = errors.New("unknown effect kind")

	// ErrUnknownPreset indicates a voice preset outside the preset table
	ErrUnknownPreset = errors.New("unknown voice preset")
)

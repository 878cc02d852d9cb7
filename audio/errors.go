// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNilBuffer       = errors.New("nil buffer")
	ErrNoChannels      = errors.New("buffer has no channels")
	ErrBadSampleRate   = errors.New("sample rate must be positive")
	ErrChannelMismatch = errors.New("channel lengths differ")
)

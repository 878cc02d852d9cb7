// SPDX-License-Identifier: EPL-2.0

package mix

import "errors"

var (
	ErrNoTracks       = errors.New("no tracks to mix")
	ErrFormatMismatch = errors.New("sample rate or channel count mismatch")
)

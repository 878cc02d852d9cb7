// SPDX-License-Identifier: EPL-2.0

package vocalix

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is reported by Decode when the leading bytes match
// none of the registered container formats.
var ErrUnknownFormat = errors.New("unknown audio format")

// DecodeError wraps any failure turning container bytes into a PCM
// buffer: unrecognized magic, a malformed container, or a codec
// rejecting the stream. Decode errors are fatal; there is no partial
// decode.
type DecodeError struct {
	// Format is the sniffed container key ("wav", "mp3", ...), or
	// empty when the container was not recognized at all.
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("decode: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError wraps a failure serializing a buffer, which in practice
// means the buffer shape failed validation.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return fmt.Sprintf("encode: %v", e.Err) }

func (e *EncodeError) Unwrap() error { return e.Err }

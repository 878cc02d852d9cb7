package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrOnlyPCMSupported      = errors.New("only PCM WAV is supported")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
)

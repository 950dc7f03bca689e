// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedEncoding = errors.New("unsupported WAV encoding")
	ErrNoPCMData           = errors.New("WAV file has no data chunk")
	ErrInvalidFormat       = errors.New("invalid sample format")
	ErrNoSamples           = errors.New("no samples to encode")
)

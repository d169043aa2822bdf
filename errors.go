// SPDX-License-Identifier: EPL-2.0

package audnorm

import "errors"

// ErrUnknownFormat means no decoder is registered for the requested or
// sniffed format. It is always wrapped in audio.ErrDecodeFailure.
var ErrUnknownFormat = errors.New("unknown audio format")

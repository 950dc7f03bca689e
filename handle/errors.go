// SPDX-License-Identifier: EPL-2.0

package handle

import "errors"

var (
	ErrExhausted = errors.New("handle space exhausted")
)

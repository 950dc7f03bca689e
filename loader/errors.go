// SPDX-License-Identifier: EPL-2.0

package loader

import "errors"

var (
	ErrPlatformNotSupported = errors.New("platform not supported")
	ErrLibraryNotFound      = errors.New("native library not found")
	ErrSymbolNotFound       = errors.New("symbol not found")
)

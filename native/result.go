// SPDX-License-Identifier: EPL-2.0

package native

import "fmt"

// Result is a status code returned by every engine call. The numeric values
// match FMOD_RESULT from the 2.02 C API.
type Result int32

const (
	OK                     Result = 0
	ErrBadCommand          Result = 1
	ErrChannelAlloc        Result = 2
	ErrChannelStolen       Result = 3
	ErrFileBad             Result = 13
	ErrFileEOF             Result = 16
	ErrFileNotFound        Result = 18
	ErrFormat              Result = 19
	ErrHeaderMismatch      Result = 20
	ErrInitialization      Result = 26
	ErrInitialized         Result = 27
	ErrInternal            Result = 28
	ErrInvalidFloat        Result = 29
	ErrInvalidHandle       Result = 30
	ErrInvalidParam        Result = 31
	ErrInvalidPosition     Result = 32
	ErrMemory              Result = 38
	ErrMemoryCantPoint     Result = 39
	ErrNeeds3D             Result = 40
	ErrNotReady            Result = 46
	ErrOutputInit          Result = 51
	ErrPluginMissing       Result = 54
	ErrTooManyChannels     Result = 64
	ErrTruncated           Result = 65
	ErrUnimplemented       Result = 66
	ErrUninitialized       Result = 67
	ErrUnsupported         Result = 68
	ErrVersion             Result = 69
	ErrEventAlreadyLoaded  Result = 70
	ErrEventLiquidated     Result = 71
	ErrEventNotFound       Result = 73
	ErrStudioUninitialized Result = 74
	ErrStudioNotLoaded     Result = 75
	ErrInvalidString       Result = 76
	ErrAlreadyLocked       Result = 77
	ErrNotLocked           Result = 78
	ErrRecordDisconnected  Result = 79
	ErrTooManySamples      Result = 80
)

var resultNames = map[Result]string{
	OK:                     "OK",
	ErrBadCommand:          "ERR_BADCOMMAND",
	ErrChannelAlloc:        "ERR_CHANNEL_ALLOC",
	ErrChannelStolen:       "ERR_CHANNEL_STOLEN",
	ErrFileBad:             "ERR_FILE_BAD",
	ErrFileEOF:             "ERR_FILE_EOF",
	ErrFileNotFound:        "ERR_FILE_NOTFOUND",
	ErrFormat:              "ERR_FORMAT",
	ErrHeaderMismatch:      "ERR_HEADER_MISMATCH",
	ErrInitialization:      "ERR_INITIALIZATION",
	ErrInitialized:         "ERR_INITIALIZED",
	ErrInternal:            "ERR_INTERNAL",
	ErrInvalidFloat:        "ERR_INVALID_FLOAT",
	ErrInvalidHandle:       "ERR_INVALID_HANDLE",
	ErrInvalidParam:        "ERR_INVALID_PARAM",
	ErrInvalidPosition:     "ERR_INVALID_POSITION",
	ErrMemory:              "ERR_MEMORY",
	ErrMemoryCantPoint:     "ERR_MEMORY_CANTPOINT",
	ErrNeeds3D:             "ERR_NEEDS3D",
	ErrNotReady:            "ERR_NOTREADY",
	ErrOutputInit:          "ERR_OUTPUT_INIT",
	ErrPluginMissing:       "ERR_PLUGIN_MISSING",
	ErrTooManyChannels:     "ERR_TOOMANYCHANNELS",
	ErrTruncated:           "ERR_TRUNCATED",
	ErrUnimplemented:       "ERR_UNIMPLEMENTED",
	ErrUninitialized:       "ERR_UNINITIALIZED",
	ErrUnsupported:         "ERR_UNSUPPORTED",
	ErrVersion:             "ERR_VERSION",
	ErrEventAlreadyLoaded:  "ERR_EVENT_ALREADY_LOADED",
	ErrEventLiquidated:     "ERR_EVENT_LIQUIDATED",
	ErrEventNotFound:       "ERR_EVENT_NOTFOUND",
	ErrStudioUninitialized: "ERR_STUDIO_UNINITIALIZED",
	ErrStudioNotLoaded:     "ERR_STUDIO_NOT_LOADED",
	ErrInvalidString:       "ERR_INVALID_STRING",
	ErrAlreadyLocked:       "ERR_ALREADY_LOCKED",
	ErrNotLocked:           "ERR_NOT_LOCKED",
	ErrRecordDisconnected:  "ERR_RECORD_DISCONNECTED",
	ErrTooManySamples:      "ERR_TOOMANYSAMPLES",
}

// Name returns the engine's symbolic name for r.
func (r Result) Name() string {
	if n, ok := resultNames[r]; ok {
		return n
	}

	return fmt.Sprintf("RESULT_%d", int32(r))
}

func (r Result) Error() string {
	return "native: " + r.Name()
}

// Err returns nil for OK and r otherwise, so callers can write
//
//	if err := engine.SystemUpdate(sys).Err(); err != nil {
func (r Result) Err() error {
	if r == OK {
		return nil
	}

	return r
}

//
//  Copyright 2026 The Burgerlib authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package burgerlib

import (
	"errors"
	"strconv"
)

// ErrorCode is the result of a Burgerlib filesystem operation. It satisfies
// the standard error interface directly, so a plain int-backed result code
// composes with ordinary Go error plumbing without a wrapper type.
type ErrorCode int

const (
	Ok ErrorCode = iota
	ErrOutOfMemory
	ErrBufferTooSmall
	ErrInvalidParameter
	ErrPathNotFound
	ErrNotSupportedOnThisPlatform
	ErrIO
	ErrFileNotFound
	ErrVolumeNotFound
	ErrOutOfBounds
	ErrEndOfFile
	ErrWriteFailure
	ErrReadFailure
	ErrNotInitialized
	ErrNotEnumerating
)

var errorCodeNames = [...]string{ //nolint:gochecknoglobals // static lookup table.
	Ok:                            "ok",
	ErrOutOfMemory:                "out of memory",
	ErrBufferTooSmall:             "buffer too small",
	ErrInvalidParameter:           "invalid parameter",
	ErrPathNotFound:               "path not found",
	ErrNotSupportedOnThisPlatform: "not supported on this platform",
	ErrIO:                         "io error",
	ErrFileNotFound:               "file not found",
	ErrVolumeNotFound:             "volume not found",
	ErrOutOfBounds:                "out of bounds",
	ErrEndOfFile:                  "end of file",
	ErrWriteFailure:               "write failure",
	ErrReadFailure:                "read failure",
	ErrNotInitialized:             "not initialized",
	ErrNotEnumerating:             "not enumerating",
}

// Error implements the error interface for ErrorCode.
func (e ErrorCode) Error() string {
	if int(e) >= 0 && int(e) < len(errorCodeNames) && errorCodeNames[e] != "" {
		return errorCodeNames[e]
	}

	return "unknown burgerlib error code " + strconv.Itoa(int(e))
}

// OrNil returns nil when e is Ok, and e otherwise, so call sites can use
// ErrorCode-returning functions with ordinary Go error plumbing.
func (e ErrorCode) OrNil() error {
	if e == Ok {
		return nil
	}

	return e
}

// IsNotSupported reports whether err wraps ErrNotSupportedOnThisPlatform.
// Callers are not expected to treat this as a hard failure.
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupportedOnThisPlatform)
}

// ErrNegativeOffset names an attempt to move a cursor before the start of a
// buffer or file. No function in this package returns it.
var ErrNegativeOffset = errors.New("burgerlib: negative offset")

// ErrQueueClosed is returned when an entry is queued on an IOQueue (through
// its Enqueue methods or Sync) after the queue has been closed.
var ErrQueueClosed = errors.New("burgerlib: io queue closed")

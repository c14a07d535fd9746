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
	"encoding/binary"
	"math"
	"strings"
)

// InputMemoryStream is a bounds-checked cursor over an in-memory buffer.
// OpenInputMemoryStream loads an entire file; NewInputMemoryStream wraps a
// caller-owned slice without copying it.
type InputMemoryStream struct {
	buf []byte
	pos int
}

// NewInputMemoryStream wraps buf for reading. dontFree has no effect in Go,
// since there is nothing to free; it is accepted so callers can express
// ownership intent uniformly regardless of how the buffer was obtained.
func NewInputMemoryStream(buf []byte, dontFree bool) *InputMemoryStream {
	_ = dontFree

	return &InputMemoryStream{buf: buf}
}

// OpenInputMemoryStream loads the entire contents of fn into a new stream.
func OpenInputMemoryStream(cfg *Config, fn Filename) (*InputMemoryStream, ErrorCode) {
	buf, ec := LoadFile(cfg, fn.String())
	if ec != Ok {
		return nil, ec
	}

	return NewInputMemoryStream(buf, false), Ok
}

// remaining returns the number of unread bytes.
func (s *InputMemoryStream) remaining() int {
	return len(s.buf) - s.pos
}

// atEOF reports whether the cursor has reached the end of the buffer.
func (s *InputMemoryStream) atEOF() bool {
	return s.pos >= len(s.buf)
}

// consume reads n bytes starting at the cursor. If fewer than n bytes
// remain, it returns ok=false and advances the cursor to EOF.
func (s *InputMemoryStream) consume(n int) (data []byte, ok bool) {
	if s.remaining() < n {
		s.pos = len(s.buf)

		return nil, false
	}

	data = s.buf[s.pos : s.pos+n]
	s.pos += n

	return data, true
}

// GetByte reads one byte, or 0 at EOF.
func (s *InputMemoryStream) GetByte() byte {
	data, ok := s.consume(1)
	if !ok {
		return 0
	}

	return data[0]
}

// GetShort reads a little-endian int16.
func (s *InputMemoryStream) GetShort() int16 {
	return int16(s.GetWord16())
}

// GetBigShort reads a big-endian int16.
func (s *InputMemoryStream) GetBigShort() int16 {
	return int16(s.GetBigWord16())
}

// GetWord16 reads a little-endian uint16.
func (s *InputMemoryStream) GetWord16() uint16 {
	const width = 2

	data, ok := s.consume(width)
	if !ok {
		return 0
	}

	return binary.LittleEndian.Uint16(data)
}

// GetBigWord16 reads a big-endian uint16.
func (s *InputMemoryStream) GetBigWord16() uint16 {
	const width = 2

	data, ok := s.consume(width)
	if !ok {
		return 0
	}

	return binary.BigEndian.Uint16(data)
}

// GetWord32 reads a little-endian uint32.
func (s *InputMemoryStream) GetWord32() uint32 {
	const width = 4

	data, ok := s.consume(width)
	if !ok {
		return 0
	}

	return binary.LittleEndian.Uint32(data)
}

// GetBigWord32 reads a big-endian uint32.
func (s *InputMemoryStream) GetBigWord32() uint32 {
	const width = 4

	data, ok := s.consume(width)
	if !ok {
		return 0
	}

	return binary.BigEndian.Uint32(data)
}

// GetWord64 reads a little-endian uint64.
func (s *InputMemoryStream) GetWord64() uint64 {
	const width = 8

	data, ok := s.consume(width)
	if !ok {
		return 0
	}

	return binary.LittleEndian.Uint64(data)
}

// GetBigWord64 reads a big-endian uint64.
func (s *InputMemoryStream) GetBigWord64() uint64 {
	const width = 8

	data, ok := s.consume(width)
	if !ok {
		return 0
	}

	return binary.BigEndian.Uint64(data)
}

// GetFloat reads a little-endian 32-bit IEEE-754 float.
func (s *InputMemoryStream) GetFloat() float32 {
	return math.Float32frombits(s.GetWord32())
}

// GetBigFloat reads a big-endian 32-bit IEEE-754 float.
func (s *InputMemoryStream) GetBigFloat() float32 {
	return math.Float32frombits(s.GetBigWord32())
}

// GetDouble reads a little-endian 64-bit IEEE-754 double.
func (s *InputMemoryStream) GetDouble() float64 {
	return math.Float64frombits(s.GetWord64())
}

// GetBigDouble reads a big-endian 64-bit IEEE-754 double.
func (s *InputMemoryStream) GetBigDouble() float64 {
	return math.Float64frombits(s.GetBigWord64())
}

// GetString reads until '\0', '\n', '\r', "\r\n" or EOF into buf, always
// null-terminating the output. It returns the number of bytes written,
// excluding the terminator.
func (s *InputMemoryStream) GetString(buf []byte) int {
	n := 0

	for n < len(buf)-1 && !s.atEOF() {
		c := s.buf[s.pos]

		if c == 0 {
			s.pos++

			break
		}

		if c == '\n' {
			s.pos++

			break
		}

		if c == '\r' {
			s.pos++

			if !s.atEOF() && s.buf[s.pos] == '\n' {
				s.pos++
			}

			break
		}

		buf[n] = c
		n++
		s.pos++
	}

	if len(buf) > 0 {
		buf[n] = 0
	}

	return n
}

// GetCString reads until '\0' or EOF into buf, always null-terminating the
// output.
func (s *InputMemoryStream) GetCString(buf []byte) int {
	n := 0

	for n < len(buf)-1 && !s.atEOF() {
		c := s.buf[s.pos]
		s.pos++

		if c == 0 {
			break
		}

		buf[n] = c
		n++
	}

	if len(buf) > 0 {
		buf[n] = 0
	}

	return n
}

// GetPString reads a one-byte length prefix followed by that many bytes
// (a Pascal string).
func (s *InputMemoryStream) GetPString() string {
	length := int(s.GetByte())

	data, ok := s.consume(length)
	if !ok {
		return ""
	}

	return string(data)
}

// SkipForward advances the cursor by n bytes, clamped to the end of the
// buffer.
func (s *InputMemoryStream) SkipForward(n int) {
	s.pos += n
	if s.pos > len(s.buf) {
		s.pos = len(s.buf)
	}
}

// SkipBack moves the cursor back by n bytes, clamped to the start of the
// buffer.
func (s *InputMemoryStream) SkipBack(n int) {
	s.pos -= n
	if s.pos < 0 {
		s.pos = 0
	}
}

// SetMark moves the cursor to an absolute offset, clamped to the buffer's
// bounds.
func (s *InputMemoryStream) SetMark(offset int) {
	switch {
	case offset < 0:
		s.pos = 0
	case offset > len(s.buf):
		s.pos = len(s.buf)
	default:
		s.pos = offset
	}
}

// GetMark returns the current cursor offset.
func (s *InputMemoryStream) GetMark() int {
	return s.pos
}

// ParseBeyondWhiteSpace advances the cursor past any run of spaces and
// tabs. Only those two characters qualify: a newline is left for the
// caller to observe.
func (s *InputMemoryStream) ParseBeyondWhiteSpace() {
	for !s.atEOF() {
		c := s.buf[s.pos]
		if c != ' ' && c != '\t' {
			break
		}

		s.pos++
	}
}

// IsStringMatch reports whether the next len(needle) bytes equal needle
// exactly, consuming them if so. The cursor is unchanged on a mismatch.
func (s *InputMemoryStream) IsStringMatch(needle string) bool {
	return s.isStringMatch(needle, false)
}

// IsStringMatchCase is the case-insensitive variant of IsStringMatch.
func (s *InputMemoryStream) IsStringMatchCase(needle string) bool {
	return s.isStringMatch(needle, true)
}

func (s *InputMemoryStream) isStringMatch(needle string, ignoreCase bool) bool {
	if s.remaining() < len(needle) {
		return false
	}

	candidate := string(s.buf[s.pos : s.pos+len(needle)])

	matches := candidate == needle
	if ignoreCase {
		matches = strings.EqualFold(candidate, needle)
	}

	if !matches {
		return false
	}

	s.pos += len(needle)

	return true
}

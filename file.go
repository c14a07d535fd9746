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
	"errors"
	"io"
	"os"
)

// File is a single-file handle: an opaque native handle, and a copy of the
// Filename it was opened from. Synchronous operations are plain method
// calls; asynchronous variants enqueue onto cfg's IOQueue and return
// immediately.
//
// File is not internally synchronized: callers must not share one across
// goroutines without external serialization.
type File struct {
	cfg    *Config
	name   Filename
	handle *os.File
	access FileAccess
}

// NewFile returns an unopened File bound to cfg. A nil cfg uses Cfg.
func NewFile(cfg *Config) *File {
	if cfg == nil {
		cfg = Cfg
	}

	return &File{cfg: cfg}
}

var accessFlags = [...]int{ //nolint:gochecknoglobals // static lookup table.
	ReadOnly:  os.O_RDONLY,
	WriteOnly: os.O_WRONLY | os.O_CREATE | os.O_TRUNC,
	Append:    os.O_WRONLY | os.O_CREATE | os.O_APPEND,
	ReadWrite: os.O_RDWR | os.O_CREATE,
}

// Open opens fn with the given access mode.
func (f *File) Open(fn Filename, access FileAccess) ErrorCode {
	native, ec := fn.GetNative()
	if ec != Ok {
		return ec
	}

	handle, err := os.OpenFile(native, accessFlags[access], 0o644) //nolint:gosec,mnd // rw-r--r-- default permissions for a created file.
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrFileNotFound
		}

		return ErrIO
	}

	f.name = fn
	f.handle = handle
	f.access = access

	return Ok
}

// Close closes the underlying native handle.
func (f *File) Close() ErrorCode {
	if f.handle == nil {
		return Ok
	}

	err := f.handle.Close()
	f.handle = nil

	if err != nil {
		return ErrIO
	}

	return Ok
}

// Read reads up to len(buf) bytes; a short read on EOF is not an error.
func (f *File) Read(buf []byte) (int, ErrorCode) {
	if f.handle == nil {
		return 0, ErrNotInitialized
	}

	n, err := f.handle.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, ErrReadFailure
	}

	return n, Ok
}

// Write writes buf to the file.
func (f *File) Write(buf []byte) (int, ErrorCode) {
	if f.handle == nil {
		return 0, ErrNotInitialized
	}

	n, err := f.handle.Write(buf)
	if err != nil {
		return n, ErrWriteFailure
	}

	return n, Ok
}

// GetFileSize returns the file's size without moving the cursor.
func (f *File) GetFileSize() (int64, ErrorCode) {
	if f.handle == nil {
		return 0, ErrNotInitialized
	}

	mark, ec := f.GetMark()
	if ec != Ok {
		return 0, ec
	}

	size, err := f.handle.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, ErrIO
	}

	if ec := f.SetMark(uint64(mark)); ec != Ok { //nolint:gosec // mark is a previously-read non-negative cursor.
		return 0, ec
	}

	return size, Ok
}

// GetMark returns the current cursor position.
func (f *File) GetMark() (uint64, ErrorCode) {
	if f.handle == nil {
		return 0, ErrNotInitialized
	}

	pos, err := f.handle.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, ErrIO
	}

	return uint64(pos), Ok //nolint:gosec // Seek never returns a negative offset here.
}

// SetMark moves the cursor to an absolute offset.
func (f *File) SetMark(offset uint64) ErrorCode {
	if f.handle == nil {
		return ErrNotInitialized
	}

	if offset > 1<<63-1 {
		return ErrOutOfBounds
	}

	if _, err := f.handle.Seek(int64(offset), io.SeekStart); err != nil { //nolint:gosec // bounds-checked above.
		return ErrOutOfBounds
	}

	return Ok
}

// SetMarkAtEOF moves the cursor to end of file.
func (f *File) SetMarkAtEOF() ErrorCode {
	if f.handle == nil {
		return ErrNotInitialized
	}

	if _, err := f.handle.Seek(0, io.SeekEnd); err != nil {
		return ErrOutOfBounds
	}

	return Ok
}

// ReadCString reads until a NUL byte or buf is exhausted, always
// null-terminating the text actually read into buf.
func (f *File) ReadCString(buf []byte) ErrorCode {
	if len(buf) == 0 {
		return ErrBufferTooSmall
	}

	one := make([]byte, 1)

	for i := 0; i < len(buf)-1; i++ {
		n, ec := f.Read(one)
		if n == 0 || ec != Ok {
			buf[i] = 0

			return ErrEndOfFile
		}

		if one[0] == 0 {
			buf[i] = 0

			return Ok
		}

		buf[i] = one[0]
	}

	buf[len(buf)-1] = 0

	return Ok
}

func (f *File) readExact(n int) ([]byte, ErrorCode) {
	buf := make([]byte, n)

	if f.handle == nil {
		return buf, ErrNotInitialized
	}

	if _, err := io.ReadFull(f.handle, buf); err != nil {
		return buf, ErrReadFailure
	}

	return buf, Ok
}

// ReadBigU16 reads a big-endian uint16.
func (f *File) ReadBigU16() (uint16, ErrorCode) {
	buf, ec := f.readExact(2) //nolint:mnd // uint16 width.
	if ec != Ok {
		return 0, ec
	}

	return binary.BigEndian.Uint16(buf), Ok
}

// ReadBigU32 reads a big-endian uint32.
func (f *File) ReadBigU32() (uint32, ErrorCode) {
	buf, ec := f.readExact(4) //nolint:mnd // uint32 width.
	if ec != Ok {
		return 0, ec
	}

	return binary.BigEndian.Uint32(buf), Ok
}

// ReadLittleU16 reads a little-endian uint16.
func (f *File) ReadLittleU16() (uint16, ErrorCode) {
	buf, ec := f.readExact(2) //nolint:mnd // uint16 width.
	if ec != Ok {
		return 0, ec
	}

	return binary.LittleEndian.Uint16(buf), Ok
}

// ReadLittleU32 reads a little-endian uint32.
func (f *File) ReadLittleU32() (uint32, ErrorCode) {
	buf, ec := f.readExact(4) //nolint:mnd // uint32 width.
	if ec != Ok {
		return 0, ec
	}

	return binary.LittleEndian.Uint32(buf), Ok
}

// GetModificationTime returns the file's last-modified time. Supported on
// every platform this module builds a PlatformAdapter for, via Stat.
func (f *File) GetModificationTime() (TimeDate, ErrorCode) {
	entry, ec := f.stat()
	if ec != Ok {
		return TimeDate{}, ec
	}

	return entry.Modified, Ok
}

// GetCreationTime returns the file's creation time, where the host
// filesystem tracks one.
func (f *File) GetCreationTime() (TimeDate, ErrorCode) {
	entry, ec := f.stat()
	if ec != Ok {
		return TimeDate{}, ec
	}

	return entry.Created, Ok
}

func (f *File) stat() (DirEntry, ErrorCode) {
	if f.cfg.PlatformAdapter() == nil {
		return DirEntry{}, ErrNotInitialized
	}

	native, ec := f.name.GetNative()
	if ec != Ok {
		return DirEntry{}, ec
	}

	return f.cfg.PlatformAdapter().Stat(native)
}

// SetModificationTime sets the file's last-modified time via the active
// PlatformAdapter, which every adapter in this module backs with
// os.Chtimes.
func (f *File) SetModificationTime(mtime TimeDate) ErrorCode {
	adapter := f.cfg.PlatformAdapter()
	if adapter == nil {
		return ErrNotInitialized
	}

	native, ec := f.name.GetNative()
	if ec != Ok {
		return ec
	}

	return adapter.SetModificationTime(native, mtime)
}

// SetCreationTime would set the file's birth time; most hosts this module
// targets either have no writable creation-time field (Linux) or no
// syscall exposing one through the standard library (Windows, Darwin), so
// it reports ErrNotSupportedOnThisPlatform everywhere.
func (f *File) SetCreationTime(TimeDate) ErrorCode { return ErrNotSupportedOnThisPlatform }

// GetCreatorType, GetFileType, GetCreatorAndFileType, SetCreatorType,
// SetFileType and SetCreatorAndFileType are Apple-only four-character-code
// metadata; they delegate to the active PlatformAdapter. Every adapter in
// this module, the Darwin one included, reports
// ErrNotSupportedOnThisPlatform.
func (f *File) GetCreatorAndFileType() (creator, fileType uint32, ec ErrorCode) {
	adapter := f.cfg.PlatformAdapter()
	if adapter == nil {
		return 0, 0, ErrNotInitialized
	}

	native, ec := f.name.GetNative()
	if ec != Ok {
		return 0, 0, ec
	}

	return adapter.CreatorAndFileType(native)
}

func (f *File) GetCreatorType() (uint32, ErrorCode) {
	creator, _, ec := f.GetCreatorAndFileType()

	return creator, ec
}

func (f *File) GetFileType() (uint32, ErrorCode) {
	_, fileType, ec := f.GetCreatorAndFileType()

	return fileType, ec
}

func (f *File) SetCreatorAndFileType(creator, fileType uint32) ErrorCode {
	adapter := f.cfg.PlatformAdapter()
	if adapter == nil {
		return ErrNotInitialized
	}

	native, ec := f.name.GetNative()
	if ec != Ok {
		return ec
	}

	return adapter.SetCreatorAndFileType(native, creator, fileType)
}

func (f *File) SetCreatorType(creator uint32) ErrorCode {
	_, fileType, _ := f.GetCreatorAndFileType()

	return f.SetCreatorAndFileType(creator, fileType)
}

func (f *File) SetFileType(fileType uint32) ErrorCode {
	creator, _, _ := f.GetCreatorAndFileType()

	return f.SetCreatorAndFileType(creator, fileType)
}

// --- Asynchronous operations ---

// OpenAsync enqueues an Open(fn, access) onto cfg's IOQueue and returns
// immediately. Errors are observed via a trailing Callback or Sync entry.
func (f *File) OpenAsync(fn Filename, access FileAccess) error {
	f.name = fn
	f.access = access

	return f.cfg.Queue().EnqueueOpen(f)
}

// CloseAsync enqueues a Close onto cfg's IOQueue.
func (f *File) CloseAsync() error {
	return f.cfg.Queue().EnqueueClose(f)
}

// ReadAsync enqueues a Read of len(buf) bytes into buf onto cfg's IOQueue.
func (f *File) ReadAsync(buf []byte) error {
	return f.cfg.Queue().EnqueueRead(f, buf)
}

// WriteAsync enqueues a Write of buf onto cfg's IOQueue.
func (f *File) WriteAsync(buf []byte) error {
	return f.cfg.Queue().EnqueueWrite(f, buf)
}

// dispatchQueueEntry runs the synchronous equivalent of a queued entry on
// the worker goroutine. Results are swallowed: a trailing Callback or Sync
// entry is the way a caller observes them.
func (f *File) dispatchQueueEntry(op OpCode, buf []byte, offset int64, whence int) {
	switch op {
	case OpOpen:
		f.Open(f.name, f.access)
	case OpClose:
		f.Close()
	case OpRead:
		f.Read(buf)
	case OpWrite:
		f.Write(buf)
	case OpSeek:
		if f.handle != nil {
			f.handle.Seek(offset, whence) //nolint:errcheck // async errors are swallowed; observe via Callback/Sync.
		}
	case OpSeekEOF:
		f.SetMarkAtEOF()
	case OpInvalid, OpCallback, OpSync, OpEndThread:
		// Never dispatched to a File; handled by IOQueue.dispatch directly.
	}
}

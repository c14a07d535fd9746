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

import "os"

// shutdownState tracks whether Shutdown has already run, so a second call
// is a no-op.
var shutdownState = map[*Config]bool{} //nolint:gochecknoglobals // process-wide bookkeeping, mirrors Cfg.

// Init installs adapter on cfg and seeds the prefix registry's default
// entries from it. A nil cfg uses Cfg.
func Init(cfg *Config, adapter PlatformAdapter) ErrorCode {
	if cfg == nil {
		cfg = Cfg
	}

	cfg.SetPlatformAdapter(adapter)
	delete(shutdownState, cfg)

	return cfg.Prefixes().InitDefaults(adapter)
}

// Shutdown tears down cfg's IOQueue worker. Calling Shutdown twice on the
// same Config is a no-op.
func Shutdown(cfg *Config) {
	if cfg == nil {
		cfg = Cfg
	}

	if shutdownState[cfg] {
		return
	}

	shutdownState[cfg] = true
	cfg.Queue().Close()
	cfg.Prefixes().Clear()
}

// GetVolumeName returns the label of the index'th mounted volume.
func GetVolumeName(cfg *Config, index int) (string, ErrorCode) {
	adapter := cfgOrDefault(cfg).PlatformAdapter()
	if adapter == nil {
		return "", ErrNotInitialized
	}

	return adapter.VolumeName(index)
}

// GetVolumeNumber returns the index of the mounted volume named name.
func GetVolumeNumber(cfg *Config, name string) (int, ErrorCode) {
	adapter := cfgOrDefault(cfg).PlatformAdapter()
	if adapter == nil {
		return 0, ErrNotInitialized
	}

	return adapter.VolumeNumber(name)
}

// GetVolumeCount returns the number of mounted volumes. It probes
// VolumeName starting at 0 until the adapter reports ErrVolumeNotFound.
func GetVolumeCount(cfg *Config) (int, ErrorCode) {
	adapter := cfgOrDefault(cfg).PlatformAdapter()
	if adapter == nil {
		return 0, ErrNotInitialized
	}

	count := 0

	for {
		if _, ec := adapter.VolumeName(count); ec != Ok {
			break
		}

		count++
	}

	return count, Ok
}

// DefaultPrefixPath returns the un-overridden default value of prefix
// index, computed fresh from the active adapter rather than read from the
// registry, so a caller can detect whether a well-known prefix has been
// overridden.
func DefaultPrefixPath(cfg *Config, index int) (string, ErrorCode) {
	cfg = cfgOrDefault(cfg)

	adapter := cfg.PlatformAdapter()
	if adapter == nil {
		return "", ErrNotInitialized
	}

	switch index {
	case PrefixCurrentDir:
		return adapter.SystemWorkingDirectory()
	case PrefixAppDir:
		return adapter.ApplicationDirectory()
	case PrefixBootVolume:
		return adapter.BootVolume()
	case PrefixUserPrefs:
		return adapter.UserPrefsDirectory()
	case PrefixSystemDir:
		return adapter.SystemPrefsDirectory()
	default:
		return "", ErrInvalidParameter
	}
}

// DoesFileExist reports whether path resolves to an existing entry. Any
// error (including permission denied) is reported as false, never
// surfaced.
func DoesFileExist(cfg *Config, path string) bool {
	cfg = cfgOrDefault(cfg)

	fn := NewFilename(cfg, path)

	native, ec := fn.GetNative()
	if ec != Ok {
		return false
	}

	adapter := cfg.PlatformAdapter()
	if adapter == nil {
		return false
	}

	_, ec = adapter.Stat(native)

	return ec == Ok
}

// GetModificationTime returns path's last-modified time.
func GetModificationTime(cfg *Config, path string) (TimeDate, ErrorCode) {
	entry, ec := statPath(cfg, path)
	if ec != Ok {
		return TimeDate{}, ec
	}

	return entry.Modified, Ok
}

// GetCreationTime returns path's creation time.
func GetCreationTime(cfg *Config, path string) (TimeDate, ErrorCode) {
	entry, ec := statPath(cfg, path)
	if ec != Ok {
		return TimeDate{}, ec
	}

	return entry.Created, Ok
}

func statPath(cfg *Config, path string) (DirEntry, ErrorCode) {
	cfg = cfgOrDefault(cfg)

	adapter := cfg.PlatformAdapter()
	if adapter == nil {
		return DirEntry{}, ErrNotInitialized
	}

	fn := NewFilename(cfg, path)

	native, ec := fn.GetNative()
	if ec != Ok {
		return DirEntry{}, ec
	}

	return adapter.Stat(native)
}

// GetCreatorType, GetFileType and GetCreatorAndFileType are Apple-only
// four-character-code metadata; every platform adapter in this module, the
// Darwin one included, reports ErrNotSupportedOnThisPlatform and zero.
func GetCreatorAndFileType(cfg *Config, path string) (creator, fileType uint32, ec ErrorCode) {
	cfg = cfgOrDefault(cfg)

	adapter := cfg.PlatformAdapter()
	if adapter == nil {
		return 0, 0, ErrNotInitialized
	}

	fn := NewFilename(cfg, path)

	native, ec := fn.GetNative()
	if ec != Ok {
		return 0, 0, ec
	}

	return adapter.CreatorAndFileType(native)
}

func GetCreatorType(cfg *Config, path string) (uint32, ErrorCode) {
	creator, _, ec := GetCreatorAndFileType(cfg, path)

	return creator, ec
}

func GetFileType(cfg *Config, path string) (uint32, ErrorCode) {
	_, fileType, ec := GetCreatorAndFileType(cfg, path)

	return fileType, ec
}

func SetCreatorAndFileType(cfg *Config, path string, creator, fileType uint32) ErrorCode {
	cfg = cfgOrDefault(cfg)

	adapter := cfg.PlatformAdapter()
	if adapter == nil {
		return ErrNotInitialized
	}

	fn := NewFilename(cfg, path)

	native, ec := fn.GetNative()
	if ec != Ok {
		return ec
	}

	return adapter.SetCreatorAndFileType(native, creator, fileType)
}

func SetCreatorType(cfg *Config, path string, creator uint32) ErrorCode {
	_, fileType, _ := GetCreatorAndFileType(cfg, path)

	return SetCreatorAndFileType(cfg, path, creator, fileType)
}

func SetFileType(cfg *Config, path string, fileType uint32) ErrorCode {
	creator, _, _ := GetCreatorAndFileType(cfg, path)

	return SetCreatorAndFileType(cfg, path, creator, fileType)
}

// CreateDirectoryPath walks path segment by segment, issuing Mkdir for
// each and treating "already exists" as success. It fails only if an
// intermediate segment cannot be created.
func CreateDirectoryPath(cfg *Config, path string) ErrorCode {
	cfg = cfgOrDefault(cfg)

	adapter := cfg.PlatformAdapter()
	if adapter == nil {
		return ErrNotInitialized
	}

	abs, ec := AbsPathOf(cfg, path)
	if ec != Ok {
		return ec
	}

	walker := NewFilename(cfg, "")

	segs := Segments(abs)

	// The head token (":" for a volume-named or special-prefix path,
	// ".D<n>:" for a device-numbered one) must be preserved verbatim as
	// each intermediate level is rebuilt, or GetNative resolves the wrong
	// device/volume for every level after the first.
	head := string(PathSeparator)
	rest := segs

	probe := NewFilename(cfg, abs)
	if probe.DriveNumber() != DriveNumberInvalid && len(segs) > 0 {
		head = segs[0] + string(PathSeparator)
		rest = segs[1:]
	}

	for i := range rest {
		walker.Assign(head + joinSegments(rest[:i+1]))

		native, ec := walker.GetNative()
		if ec != Ok {
			return ec
		}

		if ec := adapter.Mkdir(native); ec != Ok {
			if _, statErr := adapter.Stat(native); statErr == Ok {
				continue
			}

			return ec
		}
	}

	return Ok
}

func joinSegments(segs []string) string {
	out := ""
	for _, seg := range segs {
		out += seg + string(PathSeparator)
	}

	return out
}

// CreateDirectoryPathDirname creates every directory level in fn's Dirname,
// leaving fn's own basename untouched (used to ensure a file's parent
// directory exists before writing it).
func CreateDirectoryPathDirname(cfg *Config, path string) ErrorCode {
	cfg = cfgOrDefault(cfg)

	fn := NewFilename(cfg, path)

	return CreateDirectoryPath(cfg, fn.Dirname())
}

// DeleteFile removes a file or empty directory.
func DeleteFile(cfg *Config, path string) ErrorCode {
	cfg = cfgOrDefault(cfg)

	adapter := cfg.PlatformAdapter()
	if adapter == nil {
		return ErrNotInitialized
	}

	fn := NewFilename(cfg, path)

	native, ec := fn.GetNative()
	if ec != Ok {
		return ec
	}

	return adapter.Remove(native)
}

// RenameFile renames/moves oldPath to newPath.
func RenameFile(cfg *Config, newPath, oldPath string) ErrorCode {
	cfg = cfgOrDefault(cfg)

	adapter := cfg.PlatformAdapter()
	if adapter == nil {
		return ErrNotInitialized
	}

	oldNative, ec := NewFilename(cfg, oldPath).GetNative()
	if ec != Ok {
		return ec
	}

	newNative, ec := NewFilename(cfg, newPath).GetNative()
	if ec != Ok {
		return ec
	}

	return adapter.Rename(oldNative, newNative)
}

// ChangeOSDirectory changes the host process's current working directory.
func ChangeOSDirectory(cfg *Config, path string) ErrorCode {
	cfg = cfgOrDefault(cfg)

	fn := NewFilename(cfg, path)

	native, ec := fn.GetNative()
	if ec != Ok {
		return ec
	}

	if err := os.Chdir(native); err != nil {
		return ErrIO
	}

	return Ok
}

// OpenFile opens path and returns a ready-to-use File handle.
func OpenFile(cfg *Config, path string, access FileAccess) (*File, ErrorCode) {
	cfg = cfgOrDefault(cfg)

	file := NewFile(cfg)

	ec := file.Open(*NewFilename(cfg, path), access)
	if ec != Ok {
		return nil, ec
	}

	return file, Ok
}

// SaveFile writes data to path, creating or truncating it.
func SaveFile(cfg *Config, path string, data []byte) ErrorCode {
	file, ec := OpenFile(cfg, path, WriteOnly)
	if ec != Ok {
		return ec
	}

	defer file.Close()

	if n, ec := file.Write(data); ec != Ok || n != len(data) {
		return ErrWriteFailure
	}

	return Ok
}

// SaveTextFile writes data to path the same way SaveFile does; it exists
// as a distinct entry point for callers that want to signal textual
// intent, since this module has no line-ending translation to perform
// beyond what the caller already encoded into data.
func SaveTextFile(cfg *Config, path string, data []byte) ErrorCode {
	return SaveFile(cfg, path, data)
}

// LoadFile opens path for read, determines its size, reads it entirely
// into a freshly allocated buffer, and closes it. A missing file returns a
// nil buffer and ErrFileNotFound; a read that never reaches size despite
// repeated attempts reports ErrReadFailure.
func LoadFile(cfg *Config, path string) ([]byte, ErrorCode) {
	file, ec := OpenFile(cfg, path, ReadOnly)
	if ec != Ok {
		return nil, ec
	}

	defer file.Close()

	size, ec := file.GetFileSize()
	if ec != Ok {
		return nil, ec
	}

	buf := make([]byte, size)

	// A single Read is not guaranteed to fill buf even when size bytes are
	// available, so loop until it's full, Read returns 0, or size is
	// reached.
	var got int64

	for got < size {
		n, ec := file.Read(buf[got:])
		if ec != Ok {
			return nil, ec
		}

		if n == 0 {
			break
		}

		got += int64(n)
	}

	if got != size {
		return nil, ErrReadFailure
	}

	return buf, Ok
}

// CopyFile copies sourcePath to destPath using cfg's pooled copy buffer.
func CopyFile(cfg *Config, destPath, sourcePath string) ErrorCode {
	cfg = cfgOrDefault(cfg)

	src, ec := OpenFile(cfg, sourcePath, ReadOnly)
	if ec != Ok {
		return ec
	}

	defer src.Close()

	dst, ec := OpenFile(cfg, destPath, WriteOnly)
	if ec != Ok {
		return ec
	}

	defer dst.Close()

	bufPtr := cfg.getBuf()
	defer cfg.putBuf(bufPtr)

	buf := *bufPtr

	for {
		n, ec := src.Read(buf)
		if n > 0 {
			if _, wec := dst.Write(buf[:n]); wec != Ok {
				return ErrWriteFailure
			}
		}

		if ec != Ok {
			return ec
		}

		if n == 0 {
			return Ok
		}
	}
}

func cfgOrDefault(cfg *Config) *Config {
	if cfg == nil {
		return Cfg
	}

	return cfg
}

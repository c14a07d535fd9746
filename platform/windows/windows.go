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

// Package windows implements burgerlib.PlatformAdapter for Windows:
// semantically identical to MS-DOS (drive letters, UNC fallback, interior
// colons become backslashes, trailing colon stripped) but with long
// filenames unconditionally available.
package windows

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Olde-Skuul/burgerlib-sub014"
)

// Adapter is the Windows burgerlib.PlatformAdapter.
type Adapter struct {
	burgerlib.FeaturesFn
}

// New returns a Windows adapter.
func New() *Adapter {
	a := &Adapter{}
	a.SetFeatures(burgerlib.FeatLongFilenames | burgerlib.FeatDeviceNumbers | burgerlib.FeatVolumeLabels | burgerlib.FeatUNC)

	return a
}

// OSType returns burgerlib.OsWindows.
func (a *Adapter) OSType() burgerlib.OSType {
	return burgerlib.OsWindows
}

// driveLetter maps a mounted drive's ordinal to its letter, "C" upward,
// the way FileManager enumerates volumes by probing each drive in turn.
func driveLetter(index int) byte {
	const firstDrive = 'C'

	return firstDrive + byte(index)
}

func driveExists(letter byte) bool {
	_, err := os.Stat(string(letter) + ":\\")

	return err == nil
}

// GetNative converts an absolute Burgerlib path into a Windows native path.
func (a *Adapter) GetNative(fn *burgerlib.Filename) (string, burgerlib.ErrorCode) {
	if n := fn.DriveNumber(); n != burgerlib.DriveNumberInvalid {
		const alphabetStart = 'A'

		letter := byte(alphabetStart + n)

		// The leading ".D<n>" token is itself the first colon-delimited
		// segment; drop it before joining the rest of the path.
		segs := burgerlib.Segments(fn.String())[1:]

		return string(letter) + ":\\" + strings.Join(segs, "\\"), burgerlib.Ok
	}

	segs := burgerlib.Segments(fn.String())
	if len(segs) == 0 {
		return "\\", burgerlib.Ok
	}

	vol := segs[0]
	if vol == "" {
		return "\\" + strings.Join(segs[1:], "\\"), burgerlib.Ok
	}

	if len(vol) == 1 && driveExists(vol[0]) {
		return string(vol[0]) + ":\\" + strings.Join(segs[1:], "\\"), burgerlib.Ok
	}

	// No matching mounted volume: emit a UNC path instead.
	return "\\\\" + vol + "\\" + strings.Join(segs[1:], "\\"), burgerlib.Ok
}

// SetNative converts a Windows native path into Burgerlib grammar.
func (a *Adapter) SetNative(native string) (string, burgerlib.ErrorCode) {
	if strings.HasPrefix(native, "\\\\") {
		rest := strings.TrimPrefix(native, "\\\\")
		parts := strings.Split(strings.Trim(rest, "\\"), "\\")

		var b strings.Builder

		for _, p := range parts {
			b.WriteByte(':')
			b.WriteString(p)
		}

		b.WriteByte(':')

		return b.String(), burgerlib.Ok
	}

	if len(native) >= 2 && native[1] == ':' { //nolint:mnd // "<L>:" drive-letter marker.
		letter := native[0]

		const alphabetStart = 'A'

		n := int(letter) - alphabetStart
		if n < 0 {
			n += 'a' - 'A'
		}

		rest := strings.TrimPrefix(native[2:], "\\")
		rest = strings.Trim(rest, "\\")

		var b strings.Builder

		b.WriteString(".D")
		b.WriteString(strconv.Itoa(n))
		b.WriteByte(':')

		if rest != "" {
			for _, p := range strings.Split(rest, "\\") {
				b.WriteString(p)
				b.WriteByte(':')
			}
		}

		return b.String(), burgerlib.Ok
	}

	return "", burgerlib.ErrInvalidParameter
}

// VolumeName returns the label of the index'th mounted drive.
func (a *Adapter) VolumeName(index int) (string, burgerlib.ErrorCode) {
	letter := driveLetter(index)
	if !driveExists(letter) {
		return "", burgerlib.ErrVolumeNotFound
	}

	return ":" + string(letter) + ":", burgerlib.Ok
}

// VolumeNumber returns the index of the mounted drive named name.
func (a *Adapter) VolumeNumber(name string) (int, burgerlib.ErrorCode) {
	trimmed := strings.Trim(name, ":")
	if len(trimmed) != 1 {
		return 0, burgerlib.ErrVolumeNotFound
	}

	const firstDrive = 'C'

	index := int(trimmed[0]) - firstDrive
	if index < 0 || !driveExists(trimmed[0]) {
		return 0, burgerlib.ErrVolumeNotFound
	}

	return index, burgerlib.Ok
}

// Stat queries metadata for a native path.
func (a *Adapter) Stat(native string) (burgerlib.DirEntry, burgerlib.ErrorCode) {
	info, err := os.Stat(native)
	if err != nil {
		if os.IsNotExist(err) {
			return burgerlib.DirEntry{}, burgerlib.ErrFileNotFound
		}

		return burgerlib.DirEntry{}, burgerlib.ErrIO
	}

	mtime := burgerlib.TimeDate{Seconds: info.ModTime().Unix()}

	return burgerlib.DirEntry{
		Name:     info.Name(),
		Size:     info.Size(),
		Created:  mtime,
		Modified: mtime,
		IsDir:    info.IsDir(),
	}, burgerlib.Ok
}

// SetModificationTime sets a native path's last-modified time. atime is
// set to the same value, since this module tracks no separate access time.
func (a *Adapter) SetModificationTime(native string, mtime burgerlib.TimeDate) burgerlib.ErrorCode {
	t := time.Unix(mtime.Seconds, 0)
	if err := os.Chtimes(native, t, t); err != nil {
		return burgerlib.ErrIO
	}

	return burgerlib.Ok
}

// Mkdir creates a single directory level; "already exists" is Ok.
func (a *Adapter) Mkdir(native string) burgerlib.ErrorCode {
	const dirPerm = 0o755

	err := os.Mkdir(native, dirPerm)
	if err == nil {
		return burgerlib.Ok
	}

	if os.IsExist(err) {
		return burgerlib.Ok
	}

	return burgerlib.ErrIO
}

// Remove deletes a file or empty directory.
func (a *Adapter) Remove(native string) burgerlib.ErrorCode {
	if err := os.Remove(native); err != nil {
		return burgerlib.ErrIO
	}

	return burgerlib.Ok
}

// Rename renames/moves oldNative to newNative.
func (a *Adapter) Rename(oldNative, newNative string) burgerlib.ErrorCode {
	if err := os.Rename(oldNative, newNative); err != nil {
		return burgerlib.ErrIO
	}

	return burgerlib.Ok
}

// ReadDirNames lists the entry names of a native directory path.
func (a *Adapter) ReadDirNames(native string) ([]string, burgerlib.ErrorCode) {
	entries, err := os.ReadDir(native)
	if err != nil {
		return nil, burgerlib.ErrIO
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}

	return names, burgerlib.Ok
}

// CreatorAndFileType has no Windows equivalent; four-character creator and
// file type codes are Apple-only metadata.
func (a *Adapter) CreatorAndFileType(string) (creator, fileType uint32, err burgerlib.ErrorCode) {
	return 0, 0, burgerlib.ErrNotSupportedOnThisPlatform
}

// SetCreatorAndFileType has no Windows equivalent.
func (a *Adapter) SetCreatorAndFileType(string, uint32, uint32) burgerlib.ErrorCode {
	return burgerlib.ErrNotSupportedOnThisPlatform
}

// SystemWorkingDirectory returns the Burgerlib form of the process's
// current working directory.
func (a *Adapter) SystemWorkingDirectory() (string, burgerlib.ErrorCode) {
	dir, err := os.Getwd()
	if err != nil {
		return "", burgerlib.ErrIO
	}

	return a.SetNative(dir)
}

// ApplicationDirectory returns the Burgerlib form of the directory
// containing the running executable.
func (a *Adapter) ApplicationDirectory() (string, burgerlib.ErrorCode) {
	exe, err := os.Executable()
	if err != nil {
		return "", burgerlib.ErrIO
	}

	idx := strings.LastIndexByte(exe, '\\')
	if idx <= 0 {
		return a.SetNative(exe)
	}

	return a.SetNative(exe[:idx])
}

// BootVolume returns the Burgerlib form of the system drive's root.
func (a *Adapter) BootVolume() (string, burgerlib.ErrorCode) {
	root := os.Getenv("SystemDrive")
	if root == "" {
		root = "C:"
	}

	return a.SetNative(root + "\\")
}

// SystemPrefsDirectory returns the Burgerlib form of %ProgramData%.
func (a *Adapter) SystemPrefsDirectory() (string, burgerlib.ErrorCode) {
	dir := os.Getenv("ProgramData")
	if dir == "" {
		return "", burgerlib.ErrNotSupportedOnThisPlatform
	}

	return a.SetNative(dir)
}

// UserPrefsDirectory returns the Burgerlib form of %APPDATA%.
func (a *Adapter) UserPrefsDirectory() (string, burgerlib.ErrorCode) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", burgerlib.ErrNotSupportedOnThisPlatform
	}

	return a.SetNative(dir)
}

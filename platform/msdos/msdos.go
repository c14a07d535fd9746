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

// Package msdos implements burgerlib.PlatformAdapter for MS-DOS: drive
// letters and UNC fallback like Windows, but names are truncated to 8.3
// unless long-filename support is available, and translated through a
// codepage boundary (Code Page 437) rather than passed through as UTF-8.
package msdos

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Olde-Skuul/burgerlib-sub014"
)

// Codec is the narrow UTF-8/Code-Page-437 boundary collaborator this
// adapter needs but does not implement. The default Adapter uses
// identityCodec, an ASCII passthrough; a caller targeting real DOS
// hardware supplies a codepage table through SetCodec.
type Codec interface {
	Encode(s string) []byte
	Decode(b []byte) string
}

type identityCodec struct{}

func (identityCodec) Encode(s string) []byte { return []byte(s) }
func (identityCodec) Decode(b []byte) string { return string(b) }

// Adapter is the MS-DOS burgerlib.PlatformAdapter.
type Adapter struct {
	burgerlib.FeaturesFn

	longFilenamesAllowed bool
	codec                Codec
}

// New returns an MS-DOS adapter. longFilenamesAllowed reports whether a
// long-filename TSR/driver is loaded; callers targeting plain 8.3 DOS
// pass false.
func New(longFilenamesAllowed bool) *Adapter {
	a := &Adapter{longFilenamesAllowed: longFilenamesAllowed, codec: identityCodec{}}

	features := burgerlib.FeatDeviceNumbers | burgerlib.FeatVolumeLabels | burgerlib.FeatUNC
	if longFilenamesAllowed {
		features |= burgerlib.FeatLongFilenames
	}

	a.SetFeatures(features)

	return a
}

// SetCodec installs the Win437 codepage collaborator.
func (a *Adapter) SetCodec(codec Codec) {
	if codec == nil {
		codec = identityCodec{}
	}

	a.codec = codec
}

// OSType returns burgerlib.OsMSDos.
func (a *Adapter) OSType() burgerlib.OSType {
	return burgerlib.OsMSDos
}

func driveExists(letter byte) bool {
	_, err := os.Stat(string(letter) + ":\\")

	return err == nil
}

// eightDotThree truncates name to an 8.3-compatible form when long
// filenames are not allowed; the extension (if any) is kept separate from
// the 8-character stem, matching classic DOS FCB-name truncation.
func (a *Adapter) eightDotThree(name string) string {
	if a.longFilenamesAllowed {
		return name
	}

	const (
		maxStem = 8
		maxExt  = 3
	)

	stem, ext, hasExt := strings.Cut(name, ".")

	if len(stem) > maxStem {
		stem = stem[:maxStem]
	}

	if !hasExt {
		return stem
	}

	if len(ext) > maxExt {
		ext = ext[:maxExt]
	}

	return stem + "." + ext
}

// GetNative converts an absolute Burgerlib path into an MS-DOS native path.
func (a *Adapter) GetNative(fn *burgerlib.Filename) (string, burgerlib.ErrorCode) {
	segs := burgerlib.Segments(fn.String())

	// The leading ".D<n>" token of a device-numbered path is itself the
	// first colon-delimited segment; drop it before touching the rest.
	if n := fn.DriveNumber(); n != burgerlib.DriveNumberInvalid {
		const alphabetStart = 'A'

		letter := byte(alphabetStart + n)

		segs = segs[1:]
		for i, s := range segs {
			segs[i] = a.codec.Decode(a.codec.Encode(a.eightDotThree(s)))
		}

		return string(letter) + ":\\" + strings.Join(segs, "\\"), burgerlib.Ok
	}

	for i, s := range segs {
		segs[i] = a.codec.Decode(a.codec.Encode(a.eightDotThree(s)))
	}

	if len(segs) == 0 {
		return "\\", burgerlib.Ok
	}

	vol := segs[0]
	if len(vol) == 1 && driveExists(vol[0]) {
		return string(vol[0]) + ":\\" + strings.Join(segs[1:], "\\"), burgerlib.Ok
	}

	// Unmatched volume label: emit a UNC prefix.
	return "\\\\" + vol + "\\" + strings.Join(segs[1:], "\\"), burgerlib.Ok
}

// SetNative converts an MS-DOS native path into Burgerlib grammar.
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
		const alphabetStart = 'A'

		n := int(native[0]) - alphabetStart

		rest := strings.Trim(native[2:], "\\")

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
	const firstDrive = 'C'

	letter := byte(firstDrive + index)
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
// Classic FAT timestamps have a coarser resolution than time.Time, but
// os.Chtimes truncates for us at the syscall layer.
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

// CreatorAndFileType has no MS-DOS equivalent.
func (a *Adapter) CreatorAndFileType(string) (creator, fileType uint32, err burgerlib.ErrorCode) {
	return 0, 0, burgerlib.ErrNotSupportedOnThisPlatform
}

// SetCreatorAndFileType has no MS-DOS equivalent.
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

// BootVolume returns the Burgerlib form of the boot drive's root.
func (a *Adapter) BootVolume() (string, burgerlib.ErrorCode) {
	return a.SetNative("C:\\")
}

// SystemPrefsDirectory has no MS-DOS equivalent: there is no per-user
// profile directory concept.
func (a *Adapter) SystemPrefsDirectory() (string, burgerlib.ErrorCode) {
	return "", burgerlib.ErrNotSupportedOnThisPlatform
}

// UserPrefsDirectory has no MS-DOS equivalent.
func (a *Adapter) UserPrefsDirectory() (string, burgerlib.ErrorCode) {
	return "", burgerlib.ErrNotSupportedOnThisPlatform
}

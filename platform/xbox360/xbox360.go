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

// Package xbox360 implements burgerlib.PlatformAdapter for the Xbox 360: a
// device name precedes a single colon, subsequent colons become
// backslashes, and there is no device numbering (".D<n>:" paths never
// resolve on this platform).
package xbox360

import (
	"os"
	"strings"
	"time"

	"github.com/Olde-Skuul/burgerlib-sub014"
)

// Adapter is the Xbox 360 burgerlib.PlatformAdapter. Named devices
// (game partition, hard drive, title scratch, ...) are modeled as a fixed
// ordered list rather than probed, since there is no generic way to
// enumerate console storage devices from a hosted Go build.
type Adapter struct {
	burgerlib.FeaturesFn

	devices []string // e.g. {"D", "E"}; index 0 is the boot/game device.
}

// New returns an Xbox 360 adapter. devices lists the mounted device names
// in volume-index order; a nil/empty slice defaults to {"D"}, the game
// partition every title boots from.
func New(devices []string) *Adapter {
	if len(devices) == 0 {
		devices = []string{"D"}
	}

	a := &Adapter{devices: devices}
	a.SetFeatures(burgerlib.FeatVolumeLabels)

	return a
}

// OSType returns burgerlib.OsXbox360.
func (a *Adapter) OSType() burgerlib.OSType {
	return burgerlib.OsXbox360
}

func (a *Adapter) indexOf(device string) (int, bool) {
	for i, d := range a.devices {
		if d == device {
			return i, true
		}
	}

	return 0, false
}

// GetNative converts an absolute Burgerlib path into an Xbox 360 native
// path. Device-numbered paths are never produced by this adapter's own
// SetNative, but a caller constructing one directly reports
// ErrNotSupportedOnThisPlatform, since the platform has no device
// numbering.
func (a *Adapter) GetNative(fn *burgerlib.Filename) (string, burgerlib.ErrorCode) {
	if fn.DriveNumber() != burgerlib.DriveNumberInvalid {
		return "", burgerlib.ErrNotSupportedOnThisPlatform
	}

	segs := burgerlib.Segments(fn.String())
	if len(segs) == 0 {
		return a.devices[0] + ":\\", burgerlib.Ok
	}

	device := segs[0]
	if _, ok := a.indexOf(device); !ok {
		return "", burgerlib.ErrVolumeNotFound
	}

	return device + ":\\" + strings.Join(segs[1:], "\\"), burgerlib.Ok
}

// SetNative converts a "<device>:\..." native path into Burgerlib grammar.
// Platforms with no native path concept at all fall back to the fixed
// device string a.devices[0]; here the console does
// expose one, so that fallback only triggers on a malformed input.
func (a *Adapter) SetNative(native string) (string, burgerlib.ErrorCode) {
	device, rest, ok := strings.Cut(native, ":")
	if !ok {
		device = a.devices[0]
		rest = native
	}

	rest = strings.TrimPrefix(rest, "\\")
	rest = strings.Trim(rest, "\\")

	var b strings.Builder

	b.WriteByte(':')
	b.WriteString(device)
	b.WriteByte(':')

	if rest != "" {
		for _, p := range strings.Split(rest, "\\") {
			b.WriteString(p)
			b.WriteByte(':')
		}
	}

	return b.String(), burgerlib.Ok
}

// VolumeName returns the name of the index'th configured device.
func (a *Adapter) VolumeName(index int) (string, burgerlib.ErrorCode) {
	if index < 0 || index >= len(a.devices) {
		return "", burgerlib.ErrVolumeNotFound
	}

	return ":" + a.devices[index] + ":", burgerlib.Ok
}

// VolumeNumber returns the index of the configured device named name.
func (a *Adapter) VolumeNumber(name string) (int, burgerlib.ErrorCode) {
	trimmed := strings.Trim(name, ":")

	idx, ok := a.indexOf(trimmed)
	if !ok {
		return 0, burgerlib.ErrVolumeNotFound
	}

	return idx, burgerlib.Ok
}

// Stat queries metadata for a native path. Hosted builds of this adapter
// run against whatever filesystem stands in for the console's devices
// (e.g. a mounted directory during development), via the standard os
// package.
func (a *Adapter) Stat(native string) (burgerlib.DirEntry, burgerlib.ErrorCode) {
	info, err := os.Stat(nativeToHostPath(native))
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

// SetModificationTime sets a native path's last-modified time, the same
// way it does against a mounted development directory standing in for a
// console device. atime is set to the same value, since this module
// tracks no separate access time.
func (a *Adapter) SetModificationTime(native string, mtime burgerlib.TimeDate) burgerlib.ErrorCode {
	t := time.Unix(mtime.Seconds, 0)
	if err := os.Chtimes(nativeToHostPath(native), t, t); err != nil {
		return burgerlib.ErrIO
	}

	return burgerlib.Ok
}

// Mkdir creates a single directory level; "already exists" is Ok.
func (a *Adapter) Mkdir(native string) burgerlib.ErrorCode {
	const dirPerm = 0o755

	err := os.Mkdir(nativeToHostPath(native), dirPerm)
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
	if err := os.Remove(nativeToHostPath(native)); err != nil {
		return burgerlib.ErrIO
	}

	return burgerlib.Ok
}

// Rename renames/moves oldNative to newNative.
func (a *Adapter) Rename(oldNative, newNative string) burgerlib.ErrorCode {
	if err := os.Rename(nativeToHostPath(oldNative), nativeToHostPath(newNative)); err != nil {
		return burgerlib.ErrIO
	}

	return burgerlib.Ok
}

// ReadDirNames lists the entry names of a native directory path.
func (a *Adapter) ReadDirNames(native string) ([]string, burgerlib.ErrorCode) {
	entries, err := os.ReadDir(nativeToHostPath(native))
	if err != nil {
		return nil, burgerlib.ErrIO
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}

	return names, burgerlib.Ok
}

// nativeToHostPath maps a "<device>:\a\b" Xbox 360 path onto a relative
// host filesystem path rooted at the current directory, since a hosted
// development build has no real console devices to address.
func nativeToHostPath(native string) string {
	device, rest, ok := strings.Cut(native, ":\\")
	if !ok {
		return native
	}

	return "./" + device + "/" + strings.ReplaceAll(rest, "\\", "/")
}

// CreatorAndFileType has no Xbox 360 equivalent.
func (a *Adapter) CreatorAndFileType(string) (creator, fileType uint32, err burgerlib.ErrorCode) {
	return 0, 0, burgerlib.ErrNotSupportedOnThisPlatform
}

// SetCreatorAndFileType has no Xbox 360 equivalent.
func (a *Adapter) SetCreatorAndFileType(string, uint32, uint32) burgerlib.ErrorCode {
	return burgerlib.ErrNotSupportedOnThisPlatform
}

// SystemWorkingDirectory has no meaningful equivalent on a console title
// that boots directly into its own executable's directory; return the
// boot device's root.
func (a *Adapter) SystemWorkingDirectory() (string, burgerlib.ErrorCode) {
	return ":" + a.devices[0] + ":", burgerlib.Ok
}

// ApplicationDirectory returns the boot device's root, where the title's
// executable always resides.
func (a *Adapter) ApplicationDirectory() (string, burgerlib.ErrorCode) {
	return ":" + a.devices[0] + ":", burgerlib.Ok
}

// BootVolume returns the boot device's root.
func (a *Adapter) BootVolume() (string, burgerlib.ErrorCode) {
	return ":" + a.devices[0] + ":", burgerlib.Ok
}

// SystemPrefsDirectory has no Xbox 360 equivalent outside the title's own
// save-game API, which is out of scope for this layer.
func (a *Adapter) SystemPrefsDirectory() (string, burgerlib.ErrorCode) {
	return "", burgerlib.ErrNotSupportedOnThisPlatform
}

// UserPrefsDirectory has no Xbox 360 equivalent at this layer either.
func (a *Adapter) UserPrefsDirectory() (string, burgerlib.ErrorCode) {
	return "", burgerlib.ErrNotSupportedOnThisPlatform
}

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

// Package posix implements burgerlib.PlatformAdapter for the Darwin/Linux/
// generic-UNIX family: a leading volume label resolves against mount
// points (volume 0 is the boot volume), interior colons become slashes,
// and a trailing slash is stripped.
package posix

import (
	"os"
	"strings"
	"time"

	"github.com/Olde-Skuul/burgerlib-sub014"
)

// Adapter is the POSIX-family burgerlib.PlatformAdapter. A single mounted
// volume (the boot volume) is modeled, matching what a generic Go program
// can observe through the os package without shelling out to a
// volume-enumeration utility.
type Adapter struct {
	burgerlib.FeaturesFn

	osType    burgerlib.OSType
	bootLabel string
}

// New returns a POSIX adapter for osType (burgerlib.OsDarwin or
// burgerlib.OsLinux), with bootLabel as the volume-0 label, e.g. "Boot".
func New(osType burgerlib.OSType, bootLabel string) *Adapter {
	if bootLabel == "" {
		bootLabel = "Boot"
	}

	a := &Adapter{osType: osType, bootLabel: bootLabel}
	a.SetFeatures(burgerlib.FeatLongFilenames | burgerlib.FeatVolumeLabels)

	if osType == burgerlib.OsDarwin {
		a.SetFeatures(a.Features() | burgerlib.FeatResourceFork)
	}

	return a
}

// OSType returns the platform family this adapter targets.
func (a *Adapter) OSType() burgerlib.OSType {
	return a.osType
}

// GetNative converts an absolute Burgerlib path into a POSIX native path.
func (a *Adapter) GetNative(fn *burgerlib.Filename) (string, burgerlib.ErrorCode) {
	segs := burgerlib.Segments(fn.String())
	if len(segs) == 0 {
		return "/", burgerlib.Ok
	}

	if segs[0] != a.bootLabel {
		return "", burgerlib.ErrVolumeNotFound
	}

	return "/" + strings.Join(segs[1:], "/"), burgerlib.Ok
}

// SetNative converts a POSIX native path into Burgerlib grammar.
func (a *Adapter) SetNative(native string) (string, burgerlib.ErrorCode) {
	trimmed := strings.Trim(native, "/")

	var b strings.Builder

	b.WriteByte(':')
	b.WriteString(a.bootLabel)
	b.WriteByte(':')

	if trimmed != "" {
		for _, part := range strings.Split(trimmed, "/") {
			b.WriteString(part)
			b.WriteByte(':')
		}
	}

	return b.String(), burgerlib.Ok
}

// VolumeName returns the label of the index'th mounted volume. Only index
// 0 (the boot volume) is modeled.
func (a *Adapter) VolumeName(index int) (string, burgerlib.ErrorCode) {
	if index != 0 {
		return "", burgerlib.ErrVolumeNotFound
	}

	return ":" + a.bootLabel + ":", burgerlib.Ok
}

// VolumeNumber returns the index of the mounted volume named name.
func (a *Adapter) VolumeNumber(name string) (int, burgerlib.ErrorCode) {
	trimmed := strings.Trim(name, ":")
	if trimmed != a.bootLabel {
		return 0, burgerlib.ErrVolumeNotFound
	}

	return 0, burgerlib.Ok
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

	base := info.Name()
	hidden := strings.HasPrefix(base, ".")

	mtime := burgerlib.TimeDate{Seconds: info.ModTime().Unix()}

	return burgerlib.DirEntry{
		Name:     base,
		Size:     info.Size(),
		Created:  mtime,
		Modified: mtime,
		Hidden:   hidden,
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

// Mkdir creates a single directory level. An already-existing directory is
// reported as Ok, which FileManager's CreateDirectoryPath relies on.
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

// CreatorAndFileType is Apple resource-fork metadata. Reading it requires
// extended-attribute I/O this adapter treats as out of scope, so even the
// Darwin-family instance reports ErrNotSupportedOnThisPlatform.
func (a *Adapter) CreatorAndFileType(string) (creator, fileType uint32, err burgerlib.ErrorCode) {
	return 0, 0, burgerlib.ErrNotSupportedOnThisPlatform
}

// SetCreatorAndFileType is the write-side counterpart of CreatorAndFileType.
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

	return a.SetNative(dirOf(exe))
}

// BootVolume returns the Burgerlib form of the boot volume root.
func (a *Adapter) BootVolume() (string, burgerlib.ErrorCode) {
	return ":" + a.bootLabel + ":", burgerlib.Ok
}

// SystemPrefsDirectory returns the Burgerlib form of the system-wide
// preferences directory.
func (a *Adapter) SystemPrefsDirectory() (string, burgerlib.ErrorCode) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", burgerlib.ErrNotSupportedOnThisPlatform
	}

	return a.SetNative(dir)
}

// UserPrefsDirectory returns the Burgerlib form of the current user's
// preferences directory.
func (a *Adapter) UserPrefsDirectory() (string, burgerlib.ErrorCode) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", burgerlib.ErrNotSupportedOnThisPlatform
	}

	return a.SetNative(dir)
}

func dirOf(native string) string {
	idx := strings.LastIndexByte(native, '/')
	if idx <= 0 {
		return "/"
	}

	return native[:idx]
}

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

// Package burgerlib implements the virtual filesystem core of Burgerlib:
// the Burgerlib path grammar (Filename), the prefix-resolution registry,
// the per-platform native-path converter, the synchronous and asynchronous
// file handle, the directory enumerator and the low level list primitives
// that back the asynchronous IO queue.
package burgerlib

import "runtime"

const (
	// PathSeparator is the only delimiter recognized in a Burgerlib path.
	PathSeparator = ':'

	// MaxDeviceNumber is the highest value accepted after ".D" in a
	// device-numbered absolute path.
	MaxDeviceNumber = 99

	// MaxUserPrefix is the highest numeric prefix index reserved for user
	// prefixes ("0:".."31:").
	MaxUserPrefix = 31

	// PrefixCount is the total number of entries in the prefix registry.
	PrefixCount = 35

	// Wire-stable prefix indices.
	PrefixCurrentDir  = 8  // current working directory at process start.
	PrefixAppDir      = 9  // application directory.
	PrefixBootVolume  = 32 // "*:" boot volume.
	PrefixUserPrefs   = 33 // "@:" user preferences directory.
	PrefixSystemDir   = 34 // "$:" system directory.
	PrefixInvalid     = 999
	SpecialBoot       = '*'
	SpecialUserPrefs  = '@'
	SpecialSystemDir  = '$'
)

// OSType identifies the host platform family a PlatformAdapter targets.
type OSType uint8

const (
	OsUnknown OSType = iota
	OsDarwin
	OsLinux
	OsWindows
	OsMSDos
	OsXbox360
)

// String returns the human readable name of the OSType.
func (t OSType) String() string {
	switch t {
	case OsDarwin:
		return "Darwin"
	case OsLinux:
		return "Linux"
	case OsWindows:
		return "Windows"
	case OsMSDos:
		return "MSDos"
	case OsXbox360:
		return "Xbox360"
	default:
		return "Unknown"
	}
}

// CurrentOSType returns the OSType matching the host Go is running on.
// It never returns OsMSDos or OsXbox360: those adapters are only reachable
// by explicitly constructing them, since no Go build target is either.
func CurrentOSType() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OsDarwin
	case "windows":
		return OsWindows
	case "linux":
		return OsLinux
	default:
		return OsUnknown
	}
}

// FileAccess selects the open mode passed to File.Open.
type FileAccess uint8

const (
	ReadOnly  FileAccess = 0
	WriteOnly FileAccess = 1
	Append    FileAccess = 2
	ReadWrite FileAccess = 3
)

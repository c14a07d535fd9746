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

import "sync"

// PrefixRegistry is the 35-entry table of named base directories used to
// resolve prefixed paths. It is guarded by a RWMutex.
type PrefixRegistry struct {
	mu      sync.RWMutex
	entries [PrefixCount]string
	set     [PrefixCount]bool
}

// NewPrefixRegistry returns an empty prefix registry. Tests that don't want
// to share Cfg's process-wide registry construct their own through this
// instead.
func NewPrefixRegistry() *PrefixRegistry {
	return &PrefixRegistry{}
}

// specialPrefixIndex maps the three single-character aliases to their
// registry index.
func specialPrefixIndex(c byte) (int, bool) {
	switch c {
	case SpecialBoot:
		return PrefixBootVolume, true
	case SpecialUserPrefs:
		return PrefixUserPrefs, true
	case SpecialSystemDir:
		return PrefixSystemDir, true
	}

	return 0, false
}

// GetPrefix copies entry i into the return value. It returns an empty
// string for an unset entry, never an error.
func (pr *PrefixRegistry) GetPrefix(i int) string {
	pr.mu.RLock()
	defer pr.mu.RUnlock()

	if i < 0 || i >= PrefixCount {
		return ""
	}

	return pr.entries[i]
}

// IsSet reports whether entry i has ever been assigned, distinguishing an
// unset entry from one explicitly set to the empty string.
func (pr *PrefixRegistry) IsSet(i int) bool {
	pr.mu.RLock()
	defer pr.mu.RUnlock()

	if i < 0 || i >= PrefixCount {
		return false
	}

	return pr.set[i]
}

// SetPrefix stores a normalized, absolute copy of str at index i. str is
// resolved through AbsPath first so the stored prefix is always absolute.
func (pr *PrefixRegistry) SetPrefix(cfg *Config, i int, str string) ErrorCode {
	if i < 0 || i >= PrefixCount {
		return ErrInvalidParameter
	}

	abs, ec := AbsPathOf(cfg, str)
	if ec != Ok {
		return ec
	}

	pr.mu.Lock()
	pr.entries[i] = abs
	pr.set[i] = true
	pr.mu.Unlock()

	return Ok
}

// setRaw stores str at index i verbatim, without resolving it through
// AbsPath. It is used during FileManager.Init to seed entries 8/9/32/33/34
// directly from the platform adapter, which already returns normalized
// absolute Burgerlib paths.
func (pr *PrefixRegistry) setRaw(i int, str string) {
	pr.mu.Lock()
	pr.entries[i] = str
	pr.set[i] = str != ""
	pr.mu.Unlock()
}

// PopPrefix replaces entry i with the parent directory of its current
// value.
func (pr *PrefixRegistry) PopPrefix(i int) ErrorCode {
	if i < 0 || i >= PrefixCount {
		return ErrInvalidParameter
	}

	pr.mu.Lock()
	defer pr.mu.Unlock()

	pr.entries[i] = dirnameOf(pr.entries[i])

	return Ok
}

// Clear empties every entry, releasing the registry's state. It is called
// during FileManager.Shutdown, tearing down process-wide state in the
// reverse order it was built up.
func (pr *PrefixRegistry) Clear() {
	pr.mu.Lock()
	pr.entries = [PrefixCount]string{}
	pr.set = [PrefixCount]bool{}
	pr.mu.Unlock()
}

// InitDefaults initializes entries 8 (cwd), 9 (app dir), 32 (*:),
// 33 (@:) and 34 ($:) from the host adapter.
func (pr *PrefixRegistry) InitDefaults(adapter PlatformAdapter) ErrorCode {
	type seed struct {
		index int
		fn    func() (string, ErrorCode)
	}

	seeds := []seed{
		{PrefixCurrentDir, adapter.SystemWorkingDirectory},
		{PrefixAppDir, adapter.ApplicationDirectory},
		{PrefixBootVolume, adapter.BootVolume},
		{PrefixUserPrefs, adapter.UserPrefsDirectory},
		{PrefixSystemDir, adapter.SystemPrefsDirectory},
	}

	for _, s := range seeds {
		str, ec := s.fn()
		if ec == ErrNotSupportedOnThisPlatform {
			continue
		}

		if ec != Ok {
			return ec
		}

		pr.setRaw(s.index, str)
	}

	return Ok
}

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

// dirSearchInitialCapacity is the suggested initial reserve for the entry
// slice.
const dirSearchInitialCapacity = 64

// DirSearch is a lazy directory enumerator: Open collects
// every non-"."/".." entry up front, GetNextEntry pops them one at a time,
// Close releases the backing slice.
type DirSearch struct {
	cfg     *Config
	entries []DirEntry
	pos     int
}

// NewDirSearch returns an unopened DirSearch bound to cfg. A nil cfg uses
// Cfg.
func NewDirSearch(cfg *Config) *DirSearch {
	if cfg == nil {
		cfg = Cfg
	}

	return &DirSearch{cfg: cfg}
}

// Open enumerates the directory named by fn. It is an error if the path
// does not exist or is not a directory. An entry whose native path or
// metadata cannot be obtained is left out of the results.
func (ds *DirSearch) Open(fn Filename) ErrorCode {
	adapter := ds.cfg.PlatformAdapter()
	if adapter == nil {
		return ErrNotInitialized
	}

	native, ec := fn.GetNative()
	if ec != Ok {
		return ec
	}

	root, ec := adapter.Stat(native)
	if ec != Ok {
		return ec
	}

	if !root.IsDir {
		return ErrPathNotFound
	}

	names, ec := adapter.ReadDirNames(native)
	if ec != Ok {
		return ec
	}

	entries := make([]DirEntry, 0, dirSearchInitialCapacity)

	child := NewFilename(ds.cfg, fn.String())

	for _, name := range names {
		child.Assign(fn.String())
		child.Join(name)

		childNative, ec := child.GetNative()
		if ec != Ok {
			continue
		}

		entry, ec := adapter.Stat(childNative)
		if ec != Ok {
			continue
		}

		entry.Name = name
		entries = append(entries, entry)
	}

	ds.entries = entries
	ds.pos = 0

	return Ok
}

// Close releases the backing entry slice.
func (ds *DirSearch) Close() {
	ds.entries = nil
	ds.pos = 0
}

// GetNextEntry pops the next entry. ok is false once every entry has been
// returned.
func (ds *DirSearch) GetNextEntry() (entry DirEntry, ok bool) {
	if ds.pos >= len(ds.entries) {
		return DirEntry{}, false
	}

	entry = ds.entries[ds.pos]
	ds.pos++

	return entry, true
}

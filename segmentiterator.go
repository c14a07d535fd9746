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

import "strings"

// SegmentIterator iterates through the colon-delimited segments of a
// Burgerlib path. A well formed Burgerlib path begins and ends with
// PathSeparator, so segments never include either the leading or the
// trailing colon.
//
//	:Vol:folder:file.txt:
//	    |- Part-|
//	  Start    End
type SegmentIterator struct {
	path  string
	start int
	end   int
}

// NewSegmentIterator creates an iterator over path.
func NewSegmentIterator(path string) *SegmentIterator {
	si := &SegmentIterator{path: path}
	si.Reset()

	return si
}

// Reset rewinds the iterator to the start of the path.
func (si *SegmentIterator) Reset() {
	if len(si.path) > 0 && si.path[0] == PathSeparator {
		si.end = 0
	} else {
		si.end = -1
	}
}

// Next advances to the next segment. It returns false once the path is
// exhausted.
func (si *SegmentIterator) Next() bool {
	si.start = si.end + 1

	if si.start >= len(si.path) {
		si.end = si.start

		return false
	}

	pos := strings.IndexByte(si.path[si.start:], PathSeparator)
	if pos == -1 {
		si.end = len(si.path)
	} else {
		si.end = si.start + pos
	}

	return true
}

// IsLast returns true if the current Part is the final segment of the path,
// whether or not the path ends with a trailing PathSeparator.
func (si *SegmentIterator) IsLast() bool {
	return si.end+1 >= len(si.path)
}

// Part returns the text of the current segment, excluding delimiters.
func (si *SegmentIterator) Part() string {
	return si.path[si.start:si.end]
}

// Start returns the byte offset of the current Part within the path.
func (si *SegmentIterator) Start() int {
	return si.start
}

// End returns the byte offset just past the current Part within the path.
func (si *SegmentIterator) End() int {
	return si.end
}

// Left returns everything to the left of the current Part, including its
// leading colon.
func (si *SegmentIterator) Left() string {
	return si.path[:si.start]
}

// Right returns everything to the right of the current Part, including its
// trailing colon.
func (si *SegmentIterator) Right() string {
	return si.path[si.end:]
}

// Segments splits a Burgerlib path into its non-empty segments, e.g.
// ":Vol:a:b:" -> ["Vol", "a", "b"].
func Segments(path string) []string {
	var parts []string

	si := NewSegmentIterator(path)
	for si.Next() {
		if p := si.Part(); p != "" {
			parts = append(parts, p)
		}
	}

	return parts
}

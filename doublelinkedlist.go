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

// DoubleLink is a circular intrusive doubly-linked list node. A newly
// initialized node is "detached": it points to itself in both directions.
type DoubleLink struct {
	next *DoubleLink
	prev *DoubleLink
}

// NewDoubleLink returns a detached node.
func NewDoubleLink() *DoubleLink {
	dl := &DoubleLink{}
	dl.Init()

	return dl
}

// Init self-links the node, detaching it from any ring it was part of.
func (dl *DoubleLink) Init() {
	dl.next = dl
	dl.prev = dl
}

// Next returns the next node in the ring.
func (dl *DoubleLink) Next() *DoubleLink {
	return dl.next
}

// Prev returns the previous node in the ring.
func (dl *DoubleLink) Prev() *DoubleLink {
	return dl.prev
}

// IsDetached reports whether the node is alone in its own ring.
func (dl *DoubleLink) IsDetached() bool {
	return dl.next == dl && dl.prev == dl
}

// Detach removes the node from its current ring and re-self-links it.
func (dl *DoubleLink) Detach() {
	dl.prev.next = dl.next
	dl.next.prev = dl.prev
	dl.Init()
}

// InsertAfter splices other out of its current ring and links it
// immediately after dl.
func (dl *DoubleLink) InsertAfter(other *DoubleLink) {
	other.Detach()

	other.prev = dl
	other.next = dl.next
	dl.next.prev = other
	dl.next = other
}

// InsertBefore splices other out of its current ring and links it
// immediately before dl.
func (dl *DoubleLink) InsertBefore(other *DoubleLink) {
	other.Detach()

	other.next = dl
	other.prev = dl.prev
	dl.prev.next = other
	dl.prev = other
}

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

// IterResult is the bitmask an ObjectList.IterateForward/IterateReverse
// callback returns: it lets the callback request deletion of the current
// object without invalidating the iterator, since the iterator saves
// next/prev before invoking the callback.
type IterResult uint8

const (
	IterContinue     IterResult = 0
	IterAbort        IterResult = 1 << 0
	IterDeleteObject IterResult = 1 << 1
)

// Disposer is invoked when an Object is removed from its ObjectList. Since
// Go has no manual free, "dispose" means "drop every reference so the
// garbage collector can reclaim it" rather than an explicit release call;
// the four named strategies below exist to name the caller's intent, not
// because any of them still has distinct work to do.
type Disposer func(obj *ListObject)

// DisposeNone leaves the payload untouched.
func DisposeNone(*ListObject) {}

// DisposeFreePayload drops the Object's reference to its payload.
func DisposeFreePayload(obj *ListObject) {
	obj.Payload = nil
}

// DisposeFreeObject is functionally identical to DisposeFreePayload in Go:
// there is no separately allocated node to release. It is kept as a
// distinct named value so callers can name "free the node" and "free the
// payload" separately even though both resolve to the same action here.
func DisposeFreeObject(obj *ListObject) {
	obj.Payload = nil
}

// DisposeFreeBoth drops the payload reference, covering the case where a
// caller wants both the node and its payload released.
func DisposeFreeBoth(obj *ListObject) {
	obj.Payload = nil
}

// ListObject is one node of an ObjectList ring. It follows the same
// self-linking, circular discipline as DoubleLink but keeps its own typed
// next/prev pointers instead of embedding DoubleLink, since Go's type
// system has no way to recover a *ListObject from the address of an
// embedded node the way a raw pointer cast would.
type ListObject struct {
	next, prev *ListObject
	Payload    any
	Disposer   Disposer
}

func (o *ListObject) init() {
	o.next = o
	o.prev = o
}

func (o *ListObject) detach() {
	o.prev.next = o.next
	o.next.prev = o.prev
	o.init()
}

func (o *ListObject) insertAfter(other *ListObject) {
	other.detach()
	other.prev = o
	other.next = o.next
	o.next.prev = other
	o.next = other
}

func (o *ListObject) insertBefore(other *ListObject) {
	other.detach()
	other.next = o
	other.prev = o.prev
	o.prev.next = other
	o.prev = other
}

// ObjectList owns a ring of *ListObject, anchored by a sentinel root node.
type ObjectList struct {
	root  ListObject
	count int
}

// NewObjectList returns an empty owning list.
func NewObjectList() *ObjectList {
	ol := &ObjectList{}
	ol.root.init()

	return ol
}

// Count returns the number of objects currently in the list.
func (ol *ObjectList) Count() int {
	return ol.count
}

// AppendObject appends an already constructed Object to the end of the
// list.
func (ol *ObjectList) AppendObject(obj *ListObject) {
	ol.root.prev.insertAfter(obj)
	ol.count++
}

// PrependObject inserts an already constructed Object at the start of the
// list.
func (ol *ObjectList) PrependObject(obj *ListObject) {
	ol.root.next.insertBefore(obj)
	ol.count++
}

// Append constructs an Object from payload and disposer, and appends it.
func (ol *ObjectList) Append(payload any, disposer Disposer) *ListObject {
	obj := &ListObject{Payload: payload, Disposer: disposer}
	obj.init()
	ol.AppendObject(obj)

	return obj
}

// Prepend constructs an Object from payload and disposer, and prepends it.
func (ol *ObjectList) Prepend(payload any, disposer Disposer) *ListObject {
	obj := &ListObject{Payload: payload, Disposer: disposer}
	obj.init()
	ol.PrependObject(obj)

	return obj
}

// AppendString duplicates s into a new Object and appends it, a convenience
// for building a node directly from a string payload.
func (ol *ObjectList) AppendString(s string) *ListObject {
	dup := strings.Clone(s) // a fresh copy, so the node does not pin a larger backing string.

	return ol.Append(dup, DisposeFreePayload)
}

// Destroy unlinks obj from the list and runs its disposer.
func (ol *ObjectList) Destroy(obj *ListObject) {
	obj.detach()
	ol.count--

	if obj.Disposer != nil {
		obj.Disposer(obj)
	}
}

// IterateForward invokes proc on each payload from head to tail. proc's
// return value may request the current object be deleted or the walk be
// aborted; the next pointer is captured before proc runs, so proc deleting
// the current object never corrupts iteration.
func (ol *ObjectList) IterateForward(proc func(obj *ListObject) IterResult) {
	node := ol.root.next
	for node != &ol.root {
		next := node.next

		result := proc(node)
		if result&IterDeleteObject != 0 {
			ol.Destroy(node)
		}

		if result&IterAbort != 0 {
			return
		}

		node = next
	}
}

// IterateReverse is the mirror of IterateForward, walking tail to head.
func (ol *ObjectList) IterateReverse(proc func(obj *ListObject) IterResult) {
	node := ol.root.prev
	for node != &ol.root {
		prev := node.prev

		result := proc(node)
		if result&IterDeleteObject != 0 {
			ol.Destroy(node)
		}

		if result&IterAbort != 0 {
			return
		}

		node = prev
	}
}

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

import (
	"sync"
	"sync/atomic"
)

// OpCode identifies the operation carried by a queueEntry. OpInvalid must
// be zero so a zero-valued entry is never mistaken for real work.
type OpCode uint8

const (
	OpInvalid OpCode = iota
	OpOpen
	OpClose
	OpRead
	OpWrite
	OpSeek
	OpSeekEOF
	OpCallback
	OpSync
	OpEndThread
)

// queueCapacity is the fixed ring size: a power of two so head/tail
// arithmetic can mask cleanly.
const queueCapacity = 128

// queueEntry is one slot of the ring. Only the fields relevant to op are
// populated; the zero value of the rest is ignored by the worker.
type queueEntry struct {
	op       OpCode
	file     *File
	buf      []byte
	offset   int64
	whence   int
	callback func()
	reply    chan struct{}
}

// IOQueue is a single-consumer asynchronous operation queue: any number of
// producer goroutines enqueue through the Enqueue* methods, and a single
// worker goroutine drains the ring in strict FIFO order.
//
// head/tail are monotonic counters; the ring is empty when head == tail
// and full when head - tail == queueCapacity. pingCh and spaceCh are two
// binary semaphores ("new work available" and "slot freed"), implemented
// as capacity-1 channels rather than a platform semaphore primitive.
type IOQueue struct {
	mu   sync.Mutex // serializes producers publishing into ring/head.
	ring [queueCapacity]queueEntry
	head uint32
	tail uint32

	pingCh  chan struct{}
	spaceCh chan struct{}
	closed  chan struct{}
	once    sync.Once
}

// NewIOQueue creates a queue and starts its worker goroutine.
func NewIOQueue() *IOQueue {
	q := &IOQueue{
		pingCh:  make(chan struct{}, 1),
		spaceCh: make(chan struct{}, 1),
		closed:  make(chan struct{}),
	}

	go q.run()

	return q
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// isClosed reports whether the worker has already exited.
func (q *IOQueue) isClosed() bool {
	select {
	case <-q.closed:
		return true
	default:
		return false
	}
}

// add publishes entry onto the ring, blocking the caller while the ring is
// full. The entry is written before head is advanced, a release-store /
// acquire-load discipline: the atomic increment of head is the release,
// and the worker's atomic load of head is the acquire.
func (q *IOQueue) add(entry queueEntry) error {
	if q.isClosed() {
		return ErrQueueClosed
	}

	q.mu.Lock()

	for atomic.LoadUint32(&q.head)-atomic.LoadUint32(&q.tail) >= queueCapacity {
		q.mu.Unlock()

		select {
		case <-q.spaceCh:
		case <-q.closed:
			return ErrQueueClosed
		}

		q.mu.Lock()
	}

	idx := atomic.LoadUint32(&q.head) % queueCapacity
	q.ring[idx] = entry
	atomic.AddUint32(&q.head, 1)

	q.mu.Unlock()

	signal(q.pingCh)

	return nil
}

// run is the worker loop: wait for work, drain strictly in FIFO order,
// re-wait when empty. It is the only goroutine that ever advances tail.
func (q *IOQueue) run() {
	for {
		for atomic.LoadUint32(&q.head) == atomic.LoadUint32(&q.tail) {
			<-q.pingCh
		}

		idx := atomic.LoadUint32(&q.tail) % queueCapacity
		entry := q.ring[idx]
		q.ring[idx] = queueEntry{}

		atomic.AddUint32(&q.tail, 1)
		signal(q.spaceCh)

		if q.dispatch(entry) {
			return
		}
	}
}

// dispatch executes one entry. It returns true once the worker should exit.
func (q *IOQueue) dispatch(entry queueEntry) bool {
	switch entry.op {
	case OpInvalid:
		// Zero-valued entry; nothing to do.
	case OpEndThread:
		close(q.closed)

		return true
	case OpSync:
		if entry.reply != nil {
			close(entry.reply)
		}
	case OpCallback:
		if entry.callback != nil {
			entry.callback()
		}
	case OpOpen, OpClose, OpRead, OpWrite, OpSeek, OpSeekEOF:
		if entry.file != nil {
			entry.file.dispatchQueueEntry(entry.op, entry.buf, entry.offset, entry.whence)
		}
	}

	return false
}

// EnqueueOpen schedules an asynchronous Open on file. Errors are
// swallowed; observe completion via Callback or Sync.
func (q *IOQueue) EnqueueOpen(file *File) error {
	return q.add(queueEntry{op: OpOpen, file: file})
}

// EnqueueClose schedules an asynchronous Close on file.
func (q *IOQueue) EnqueueClose(file *File) error {
	return q.add(queueEntry{op: OpClose, file: file})
}

// EnqueueRead schedules an asynchronous Read of len(buf) bytes into buf.
func (q *IOQueue) EnqueueRead(file *File, buf []byte) error {
	return q.add(queueEntry{op: OpRead, file: file, buf: buf})
}

// EnqueueWrite schedules an asynchronous Write of buf.
func (q *IOQueue) EnqueueWrite(file *File, buf []byte) error {
	return q.add(queueEntry{op: OpWrite, file: file, buf: buf})
}

// EnqueueSeek schedules an asynchronous Seek to offset, relative to whence
// (io.SeekStart/SeekCurrent/SeekEnd).
func (q *IOQueue) EnqueueSeek(file *File, offset int64, whence int) error {
	return q.add(queueEntry{op: OpSeek, file: file, offset: offset, whence: whence})
}

// EnqueueSeekEOF schedules an asynchronous seek to end-of-file.
func (q *IOQueue) EnqueueSeekEOF(file *File) error {
	return q.add(queueEntry{op: OpSeekEOF, file: file})
}

// EnqueueCallback schedules fn to run on the worker goroutine, after every
// entry enqueued before it. This is the way a caller observes the result
// of a preceding async operation.
func (q *IOQueue) EnqueueCallback(fn func()) error {
	return q.add(queueEntry{op: OpCallback, callback: fn})
}

// Sync blocks the caller until the worker has processed every entry
// enqueued strictly before this call.
func (q *IOQueue) Sync() error {
	reply := make(chan struct{})

	if err := q.add(queueEntry{op: OpSync, reply: reply}); err != nil {
		return err
	}

	<-reply

	return nil
}

// Close requests worker shutdown via EndThread and blocks until the worker
// has drained every prior entry and exited. Close is idempotent.
func (q *IOQueue) Close() {
	q.once.Do(func() {
		q.mu.Lock()

		for atomic.LoadUint32(&q.head)-atomic.LoadUint32(&q.tail) >= queueCapacity {
			q.mu.Unlock()
			<-q.spaceCh
			q.mu.Lock()
		}

		idx := atomic.LoadUint32(&q.head) % queueCapacity
		q.ring[idx] = queueEntry{op: OpEndThread}
		atomic.AddUint32(&q.head, 1)

		q.mu.Unlock()

		signal(q.pingCh)
	})

	<-q.closed
}

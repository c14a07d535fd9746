package burgerlib

import (
	"sync"
	"testing"
	"time"
)

func TestIOQueueCallbackOrdering(t *testing.T) {
	q := NewIOQueue()
	defer q.Close()

	var (
		mu   sync.Mutex
		got  []int
		want = []int{1, 2, 3}
	)

	for _, n := range want {
		n := n

		if err := q.EnqueueCallback(func() {
			mu.Lock()
			got = append(got, n)
			mu.Unlock()
		}); err != nil {
			t.Fatalf("EnqueueCallback(%d): %v", n, err)
		}
	}

	if err := q.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestIOQueueSyncWaitsForPriorWork(t *testing.T) {
	q := NewIOQueue()
	defer q.Close()

	done := false

	if err := q.EnqueueCallback(func() {
		time.Sleep(10 * time.Millisecond)
		done = true
	}); err != nil {
		t.Fatalf("EnqueueCallback: %v", err)
	}

	if err := q.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if !done {
		t.Error("Sync returned before the preceding callback ran")
	}
}

func TestIOQueueCloseIsIdempotent(t *testing.T) {
	q := NewIOQueue()

	q.Close()
	q.Close() // must not block or panic.
}

func TestIOQueueEnqueueAfterCloseFails(t *testing.T) {
	q := NewIOQueue()
	q.Close()

	if err := q.EnqueueCallback(func() {}); err != ErrQueueClosed {
		t.Errorf("EnqueueCallback after Close = %v, want ErrQueueClosed", err)
	}
}

func TestIOQueueAsyncFileRoundTrip(t *testing.T) {
	cfg, _ := newTestConfig(t)
	defer cfg.Queue().Close()

	f := NewFile(cfg)

	if err := f.OpenAsync(*NewFilename(cfg, ":Boot:async.bin:"), WriteOnly); err != nil {
		t.Fatalf("OpenAsync: %v", err)
	}

	if err := f.WriteAsync([]byte("queued")); err != nil {
		t.Fatalf("WriteAsync: %v", err)
	}

	if err := f.CloseAsync(); err != nil {
		t.Fatalf("CloseAsync: %v", err)
	}

	if err := cfg.Queue().Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	got, ec := LoadFile(cfg, ":Boot:async.bin:")
	if ec != Ok {
		t.Fatalf("LoadFile: %v", ec)
	}

	if string(got) != "queued" {
		t.Errorf("LoadFile = %q, want %q", got, "queued")
	}
}

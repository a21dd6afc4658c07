package dataset

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_SingleCall(t *testing.T) {
	var reloads int32
	d := NewDebouncer(50 * time.Millisecond)

	d.Debounce(func() {
		atomic.AddInt32(&reloads, 1)
	})

	time.Sleep(150 * time.Millisecond)

	if got := atomic.LoadInt32(&reloads); got != 1 {
		t.Errorf("expected 1 reload, got %d", got)
	}
}

func TestDebouncer_BurstCoalesces(t *testing.T) {
	// A save burst (temp file, write, rename) must collapse into one reload.
	var reloads int32
	d := NewDebouncer(50 * time.Millisecond)

	for i := 0; i < 10; i++ {
		d.Debounce(func() {
			atomic.AddInt32(&reloads, 1)
		})
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if got := atomic.LoadInt32(&reloads); got != 1 {
		t.Errorf("expected burst to coalesce into 1 reload, got %d", got)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	var reloads int32
	d := NewDebouncer(50 * time.Millisecond)

	d.Debounce(func() {
		atomic.AddInt32(&reloads, 1)
	})
	time.Sleep(10 * time.Millisecond)
	d.Cancel()

	time.Sleep(150 * time.Millisecond)

	if got := atomic.LoadInt32(&reloads); got != 0 {
		t.Errorf("expected 0 reloads after cancel, got %d", got)
	}
}

func TestDebouncer_ImmediateCancelsPending(t *testing.T) {
	var reloads int32
	d := NewDebouncer(50 * time.Millisecond)

	d.Debounce(func() {
		atomic.AddInt32(&reloads, 1)
	})
	d.Immediate(func() {
		atomic.AddInt32(&reloads, 10)
	})

	time.Sleep(150 * time.Millisecond)

	if got := atomic.LoadInt32(&reloads); got != 10 {
		t.Errorf("expected only the immediate call (10), got %d", got)
	}
}

func BenchmarkDebouncer_Burst(b *testing.B) {
	d := NewDebouncer(10 * time.Millisecond)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Debounce(func() {})
	}

	d.Cancel()
}

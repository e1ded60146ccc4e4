package chanq

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNewRejectsInvalidCapacity(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, -1, -100} {
		q, err := New[int](capacity)
		if !errors.Is(err, ErrInvalidCapacity) {
			t.Fatalf("New(%d): err = %v, want ErrInvalidCapacity", capacity, err)
		}
		if q != nil {
			t.Fatalf("New(%d) returned a channel alongside the error", capacity)
		}
	}

	if _, err := New[int](1); err != nil {
		t.Fatalf("New(1): unexpected error %v", err)
	}
}

func TestFIFOOrder(t *testing.T) {
	t.Parallel()

	q, _ := New[int](5)
	for i := 0; i < 5; i++ {
		q.Put(i)
	}
	for i := 0; i < 5; i++ {
		if got := q.Get(); got != i {
			t.Fatalf("Get() = %d, want %d", got, i)
		}
	}
}

// Ring wrap-around must not reorder items.
func TestFIFOOrderAcrossWrapAround(t *testing.T) {
	t.Parallel()

	q, _ := New[int](3)
	q.Put(0)
	q.Put(1)
	if got := q.Get(); got != 0 {
		t.Fatalf("Get() = %d, want 0", got)
	}
	q.Put(2)
	q.Put(3) // tail wraps here
	for want := 1; want <= 3; want++ {
		if got := q.Get(); got != want {
			t.Fatalf("Get() = %d, want %d", got, want)
		}
	}
}

// Put should block when the channel is full, and unblock after a Get.
func TestPutBlocksWhenFull(t *testing.T) {
	t.Parallel()

	q, _ := New[string](2)
	q.Put("a")
	q.Put("b")

	done := make(chan struct{})
	go func() {
		q.Put("c")
		close(done)
	}()

	// Give it a moment to (hopefully) block.
	time.Sleep(50 * time.Millisecond)

	select {
	case <-done:
		t.Fatalf("Put did not block on full channel")
	default:
		// good, still blocked
	}

	if got := q.Get(); got != "a" {
		t.Fatalf("Get() = %q, want %q", got, "a")
	}

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("blocked Put did not complete after Get")
	}
}

// Get should block when the channel is empty and unblock after a Put.
func TestGetBlocksWhenEmpty(t *testing.T) {
	t.Parallel()

	q, _ := New[string](2)

	done := make(chan struct{})
	var got string

	go func() {
		defer close(done)
		got = q.Get()
	}()

	time.Sleep(50 * time.Millisecond)

	select {
	case <-done:
		t.Fatalf("Get did not block on empty channel")
	default:
		// good, still blocked
	}

	q.Put("x")

	select {
	case <-done:
		if got != "x" {
			t.Fatalf("Get() = %q, want %q", got, "x")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("blocked Get did not complete after Put")
	}
}

func TestPutTimeoutExpires(t *testing.T) {
	t.Parallel()

	q, _ := New[int](1)
	q.Put(1)

	start := time.Now()
	err := q.PutTimeout(2, 50*time.Millisecond)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("PutTimeout on full channel: err = %v, want ErrTimeout", err)
	}
	if time.Since(start) < 50*time.Millisecond {
		t.Fatalf("PutTimeout returned before the timeout elapsed")
	}

	// State unchanged: the original item is still the only one.
	if got := q.Len(); got != 1 {
		t.Fatalf("Len() = %d after failed PutTimeout, want 1", got)
	}
	if got := q.Get(); got != 1 {
		t.Fatalf("Get() = %d, want 1", got)
	}
}

func TestGetTimeoutExpires(t *testing.T) {
	t.Parallel()

	q, _ := New[int](1)

	_, err := q.GetTimeout(50 * time.Millisecond)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("GetTimeout on empty channel: err = %v, want ErrTimeout", err)
	}
	if got := q.Len(); got != 0 {
		t.Fatalf("Len() = %d after failed GetTimeout, want 0", got)
	}
}

func TestTimeoutVariantsSucceedWhenRoomy(t *testing.T) {
	t.Parallel()

	q, _ := New[int](2)

	if err := q.PutTimeout(7, time.Second); err != nil {
		t.Fatalf("PutTimeout on roomy channel: %v", err)
	}
	got, err := q.GetTimeout(time.Second)
	if err != nil {
		t.Fatalf("GetTimeout on non-empty channel: %v", err)
	}
	if got != 7 {
		t.Fatalf("GetTimeout() = %d, want 7", got)
	}
}

func TestTryOperations(t *testing.T) {
	t.Parallel()

	q, _ := New[int](1)

	if v, ok := q.TryGet(); ok {
		t.Fatalf("TryGet on empty channel succeeded with %v", v)
	}
	if !q.TryPut(42) {
		t.Fatalf("TryPut on empty channel failed")
	}
	if q.TryPut(99) {
		t.Fatalf("TryPut on full channel succeeded")
	}
	if v, ok := q.TryGet(); !ok || v != 42 {
		t.Fatalf("TryGet() = (%v, %v), want (42, true)", v, ok)
	}
	if v, ok := q.TryGet(); ok {
		t.Fatalf("TryGet on drained channel succeeded with %v", v)
	}
}

// Concurrent putter/getter pair, good for go test -race. The high-water
// mark must never exceed capacity.
func TestConcurrentPutGetBounded(t *testing.T) {
	t.Parallel()

	const (
		capacity = 4
		count    = 1000
	)

	q, _ := New[int](capacity)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < count; i++ {
			q.Put(i)
		}
	}()

	got := make([]int, 0, count)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < count; i++ {
			got = append(got, q.Get())
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("put/get pair did not finish in time")
	}

	for i, v := range got {
		if v != i {
			t.Fatalf("order violated at %d: got %d", i, v)
		}
	}
	if hw := q.HighWater(); hw > capacity {
		t.Fatalf("HighWater() = %d exceeds capacity %d", hw, capacity)
	}
	if q.Len() != 0 {
		t.Fatalf("Len() = %d after drain, want 0", q.Len())
	}
}

func TestLenCapHighWater(t *testing.T) {
	t.Parallel()

	q, _ := New[int](3)
	if q.Cap() != 3 {
		t.Fatalf("Cap() = %d, want 3", q.Cap())
	}

	q.Put(1)
	q.Put(2)
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
	q.Get()
	if q.HighWater() != 2 {
		t.Fatalf("HighWater() = %d, want 2", q.HighWater())
	}
}

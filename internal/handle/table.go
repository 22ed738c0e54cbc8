package handle

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/vecmath"
)

var (
	// ErrInvalidHandle is returned for the zero handle and for handles
	// that were never issued by the table.
	ErrInvalidHandle = errors.New("handle: invalid handle")

	// ErrStaleHandle is returned for handles whose value has been removed.
	ErrStaleHandle = errors.New("handle: stale handle")

	// ErrTableFull is returned by Insert when the live limit is reached.
	ErrTableFull = errors.New("handle: table full")
)

// Handle is an opaque reference to a value stored in a Table.
type Handle uint64

// Null is the zero handle. It never refers to a value.
const Null Handle = 0

func makeHandle(index int, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(uint32(index+1)))
}

// index returns the slot index and generation encoded in h.
// The index is -1 for the zero handle.
func (h Handle) index() (int, uint32) {
	return int(uint32(h)) - 1, uint32(h >> 32)
}

func (h Handle) String() string {
	idx, gen := h.index()
	return fmt.Sprintf("handle(%d@%d)", idx, gen)
}

// slot holds one arena entry.
type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Table is an arena of T values addressed by generation-checked handles.
type Table[T any] struct {
	mu    sync.RWMutex
	slots []slot[T]
	free  []int
	live  int
	opts  options
}

// New creates an empty table.
func New[T any](opts ...Option) *Table[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Table[T]{
		slots: make([]slot[T], 0, o.capacity),
		opts:  o,
	}
}

func (t *Table[T]) logger() *slog.Logger {
	if t.opts.logger != nil {
		return t.opts.logger
	}
	return vecmath.Logger()
}

// Insert stores value and returns a fresh handle to it.
func (t *Table[T]) Insert(value T) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.opts.limit > 0 && t.live >= t.opts.limit {
		return Null, fmt.Errorf("insert (limit %d): %w", t.opts.limit, ErrTableFull)
	}

	var idx int
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = len(t.slots)
		t.slots = append(t.slots, slot[T]{gen: 1})
	}

	s := &t.slots[idx]
	s.value = value
	s.live = true
	t.live++

	h := makeHandle(idx, s.gen)
	t.logger().Debug("handle: insert", "handle", h, "live", t.live)
	return h, nil
}

// lookup returns the live slot for h. Caller must hold t.mu.
func (t *Table[T]) lookup(h Handle) (*slot[T], error) {
	idx, gen := h.index()
	if idx < 0 || idx >= len(t.slots) {
		return nil, fmt.Errorf("%v: %w", h, ErrInvalidHandle)
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen {
		return nil, fmt.Errorf("%v: %w", h, ErrStaleHandle)
	}
	return s, nil
}

// Get returns the value referenced by h.
func (t *Table[T]) Get(h Handle) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s, err := t.lookup(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.value, nil
}

// Set replaces the value referenced by h.
func (t *Table[T]) Set(h Handle, value T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.lookup(h)
	if err != nil {
		return err
	}
	s.value = value
	return nil
}

// Update calls fn with a pointer to the value referenced by h.
// fn runs under the table lock and must not call back into the table.
func (t *Table[T]) Update(h Handle, fn func(*T)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.lookup(h)
	if err != nil {
		return err
	}
	fn(&s.value)
	return nil
}

// Remove releases the value referenced by h. Any copy of h becomes stale.
func (t *Table[T]) Remove(h Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.lookup(h)
	if err != nil {
		return err
	}

	var zero T
	s.value = zero
	s.live = false
	s.gen++
	if s.gen == 0 {
		// Skip generation 0 on wraparound.
		s.gen = 1
	}

	idx, _ := h.index()
	t.free = append(t.free, idx)
	t.live--

	t.logger().Debug("handle: remove", "handle", h, "live", t.live)
	return nil
}

// Len returns the number of live values.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.live
}

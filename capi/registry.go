package capi

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/vecmath"
	"github.com/gogpu/vecmath/internal/handle"
)

// Handle is an opaque reference to a vector owned by a Registry.
// The zero Handle is never valid.
type Handle = handle.Handle

// Null is the handle returned when an operation cannot produce a vector.
const Null = handle.Null

// Re-exported lookup errors.
var (
	ErrInvalidHandle = handle.ErrInvalidHandle
	ErrStaleHandle   = handle.ErrStaleHandle
	ErrTableFull     = handle.ErrTableFull
)

// Option configures a Registry during creation.
type Option func(*config)

type config struct {
	table []handle.Option
}

// WithLimit caps the number of live vectors. Zero means unlimited.
func WithLimit(n int) Option {
	return func(c *config) {
		c.table = append(c.table, handle.WithLimit(n))
	}
}

// WithCapacity preallocates room for n vectors.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.table = append(c.table, handle.WithCapacity(n))
	}
}

// WithLogger sets a registry-specific logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.table = append(c.table, handle.WithLogger(l))
	}
}

// Registry owns heap vectors addressed by handles. The caller frees what it
// allocates with Destroy.
//
// Registry is safe for concurrent use. Concurrent mutation of the same
// handle is serialized by the registry but the resulting order is unspecified.
type Registry struct {
	vecs *handle.Table[vecmath.Vec2]
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &Registry{vecs: handle.New[vecmath.Vec2](c.table...)}
}

// Create stores v and returns its handle.
func (r *Registry) Create(v vecmath.Vec2) (Handle, error) {
	return r.vecs.Insert(v)
}

// Destroy releases the vector referenced by h.
func (r *Registry) Destroy(h Handle) error {
	return r.vecs.Remove(h)
}

// Get returns a copy of the vector referenced by h.
func (r *Registry) Get(h Handle) (vecmath.Vec2, error) {
	return r.vecs.Get(h)
}

// Set replaces the vector referenced by h.
func (r *Registry) Set(h Handle, v vecmath.Vec2) error {
	return r.vecs.Set(h, v)
}

// Derive creates a new vector fn(*h) and returns its handle.
func (r *Registry) Derive(h Handle, fn func(vecmath.Vec2) vecmath.Vec2) (Handle, error) {
	v, err := r.vecs.Get(h)
	if err != nil {
		return Null, err
	}
	return r.vecs.Insert(fn(v))
}

// Derive2 creates a new vector fn(*a, *b) and returns its handle.
func (r *Registry) Derive2(a, b Handle, fn func(vecmath.Vec2, vecmath.Vec2) vecmath.Vec2) (Handle, error) {
	va, err := r.vecs.Get(a)
	if err != nil {
		return Null, fmt.Errorf("first operand: %w", err)
	}
	vb, err := r.vecs.Get(b)
	if err != nil {
		return Null, fmt.Errorf("second operand: %w", err)
	}
	return r.vecs.Insert(fn(va, vb))
}

// Mutate applies fn to the vector referenced by h in place.
func (r *Registry) Mutate(h Handle, fn func(*vecmath.Vec2)) error {
	return r.vecs.Update(h, fn)
}

// Mutate2 applies fn(*a, *b) in place on a. The value of b is read first,
// so a and b may be the same handle.
func (r *Registry) Mutate2(a, b Handle, fn func(*vecmath.Vec2, vecmath.Vec2)) error {
	vb, err := r.vecs.Get(b)
	if err != nil {
		return fmt.Errorf("second operand: %w", err)
	}
	if err := r.vecs.Update(a, func(va *vecmath.Vec2) { fn(va, vb) }); err != nil {
		return fmt.Errorf("first operand: %w", err)
	}
	return nil
}

// Len returns the number of live vectors.
func (r *Registry) Len() int {
	return r.vecs.Len()
}

// Package handle provides an arena of values addressed by opaque integer
// handles with generation checks.
//
// It backs the flat C API: instead of handing raw pointers across the ABI,
// callers receive a [Handle] that encodes a slot index and the generation of
// the value stored there. Using a handle after [Table.Remove] is detected and
// reported as [ErrStaleHandle] rather than touching freed memory.
//
//	t := handle.New[vecmath.Vec2]()
//	h, _ := t.Insert(vecmath.V2(3, 4))
//	v, err := t.Get(h)
//	_ = t.Remove(h)
//	_, err = t.Get(h) // errors.Is(err, handle.ErrStaleHandle)
//
// # Layout
//
// A Handle packs (index+1) into its low 32 bits and the slot generation
// into its high 32 bits, so the zero Handle is never valid. Freed slots are
// reused LIFO; each reuse bumps the generation.
//
// # Thread Safety
//
// Table is safe for concurrent use. It must not be copied after creation.
package handle

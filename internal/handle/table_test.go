package handle

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestTableInsertGet(t *testing.T) {
	tbl := New[string]()

	h1, err := tbl.Insert("a")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	h2, err := tbl.Insert("b")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if h1 == Null || h2 == Null || h1 == h2 {
		t.Fatalf("unexpected handles %v %v", h1, h2)
	}

	for h, want := range map[Handle]string{h1: "a", h2: "b"} {
		got, err := tbl.Get(h)
		if err != nil || got != want {
			t.Errorf("Get(%v) = %q, %v; want %q", h, got, err, want)
		}
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
}

func TestTableInvalidHandles(t *testing.T) {
	tbl := New[int]()
	h, _ := tbl.Insert(1)

	tests := []struct {
		name string
		h    Handle
		want error
	}{
		{"null", Null, ErrInvalidHandle},
		{"out of range", makeHandle(5, 1), ErrInvalidHandle},
		{"wrong generation", makeHandle(0, 7), ErrStaleHandle},
		{"generation only", Handle(uint64(1) << 32), ErrInvalidHandle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tbl.Get(tt.h); !errors.Is(err, tt.want) {
				t.Errorf("Get(%v) error = %v, want %v", tt.h, err, tt.want)
			}
			if err := tbl.Set(tt.h, 5); !errors.Is(err, tt.want) {
				t.Errorf("Set(%v) error = %v, want %v", tt.h, err, tt.want)
			}
			if err := tbl.Remove(tt.h); !errors.Is(err, tt.want) {
				t.Errorf("Remove(%v) error = %v, want %v", tt.h, err, tt.want)
			}
		})
	}

	if v, err := tbl.Get(h); err != nil || v != 1 {
		t.Errorf("valid handle disturbed: %v, %v", v, err)
	}
}

func TestTableRemoveMakesHandleStale(t *testing.T) {
	tbl := New[int]()
	h, _ := tbl.Insert(42)

	if err := tbl.Remove(h); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := tbl.Get(h); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Get after Remove error = %v, want ErrStaleHandle", err)
	}
	if err := tbl.Remove(h); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("double Remove error = %v, want ErrStaleHandle", err)
	}

	// The slot is reused under a new generation; the old handle stays stale.
	h2, _ := tbl.Insert(7)
	if h2 == h {
		t.Fatalf("reused slot returned identical handle %v", h2)
	}
	idx1, _ := h.index()
	idx2, _ := h2.index()
	if idx1 != idx2 {
		t.Errorf("expected slot reuse, got indices %d and %d", idx1, idx2)
	}
	if _, err := tbl.Get(h); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("old handle after reuse error = %v, want ErrStaleHandle", err)
	}
	if v, _ := tbl.Get(h2); v != 7 {
		t.Errorf("Get(h2) = %d, want 7", v)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}

func TestTableSetUpdate(t *testing.T) {
	tbl := New[int]()
	h, _ := tbl.Insert(1)

	if err := tbl.Set(h, 10); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := tbl.Update(h, func(v *int) { *v *= 3 }); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if v, _ := tbl.Get(h); v != 30 {
		t.Errorf("Get = %d, want 30", v)
	}

	called := false
	err := tbl.Update(Null, func(*int) { called = true })
	if !errors.Is(err, ErrInvalidHandle) || called {
		t.Errorf("Update(Null) err = %v, called = %v", err, called)
	}
}

func TestTableLimit(t *testing.T) {
	tbl := New[int](WithLimit(2), WithCapacity(0))

	h1, _ := tbl.Insert(1)
	if _, err := tbl.Insert(2); err != nil {
		t.Fatalf("second Insert: %v", err)
	}
	if _, err := tbl.Insert(3); !errors.Is(err, ErrTableFull) {
		t.Errorf("third Insert error = %v, want ErrTableFull", err)
	}

	_ = tbl.Remove(h1)
	if _, err := tbl.Insert(3); err != nil {
		t.Errorf("Insert after Remove: %v", err)
	}
}

func TestTableLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tbl := New[int](WithLogger(l))
	h, _ := tbl.Insert(1)
	_ = tbl.Remove(h)

	out := buf.String()
	if !strings.Contains(out, "handle: insert") || !strings.Contains(out, "handle: remove") {
		t.Errorf("expected lifecycle log lines, got: %s", out)
	}
}

func TestTableConcurrent(t *testing.T) {
	tbl := New[int]()

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				h, err := tbl.Insert(w*perWorker + i)
				if err != nil {
					t.Errorf("Insert: %v", err)
					return
				}
				if err := tbl.Update(h, func(v *int) { *v++ }); err != nil {
					t.Errorf("Update: %v", err)
				}
				v, err := tbl.Get(h)
				if err != nil || v != w*perWorker+i+1 {
					t.Errorf("Get = %d, %v", v, err)
				}
				if i%2 == 0 {
					if err := tbl.Remove(h); err != nil {
						t.Errorf("Remove: %v", err)
					}
				}
			}
		}(w)
	}
	wg.Wait()

	if got, want := tbl.Len(), workers*perWorker/2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestHandleString(t *testing.T) {
	if got := makeHandle(3, 2).String(); got != "handle(3@2)" {
		t.Errorf("String() = %q", got)
	}
}

func BenchmarkTableGet(b *testing.B) {
	tbl := New[int]()
	h, _ := tbl.Insert(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tbl.Get(h)
	}
}

func BenchmarkTableInsertRemove(b *testing.B) {
	tbl := New[int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _ := tbl.Insert(i)
		_ = tbl.Remove(h)
	}
}

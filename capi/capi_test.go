package capi

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/vecmath"
)

func value(t *testing.T, h Handle) vecmath.Vec2 {
	t.Helper()
	v, err := Default().Get(h)
	if err != nil {
		t.Fatalf("Get(%v): %v", h, err)
	}
	return v
}

func TestCreateGetSetDestroy(t *testing.T) {
	before := Live()

	h := Create(3, 4)
	if h == Null {
		t.Fatal("Create returned Null")
	}
	if GetX(h) != 3 || GetY(h) != 4 || Length(h) != 5 {
		t.Errorf("GetX/GetY/Length = %v %v %v", GetX(h), GetY(h), Length(h))
	}

	SetX(h, -1)
	SetY(h, 2)
	if v := value(t, h); v != vecmath.V2(-1, 2) {
		t.Errorf("after SetX/SetY = %v", v)
	}

	if Live() != before+1 {
		t.Errorf("Live() = %d, want %d", Live(), before+1)
	}
	Destroy(h)
	if Live() != before {
		t.Errorf("Live() after Destroy = %d, want %d", Live(), before)
	}
}

func TestNewOperationsAllocate(t *testing.T) {
	a := Create(6, 8)
	b := Create(2, 4)
	t.Cleanup(func() { Destroy(a); Destroy(b) })

	tests := []struct {
		name   string
		h      Handle
		expect vecmath.Vec2
	}{
		{"NewSum", NewSum(a, b), vecmath.V2(8, 12)},
		{"NewSub", NewSub(a, b), vecmath.V2(4, 4)},
		{"NewMul", NewMul(a, 0.5), vecmath.V2(3, 4)},
		{"NewMulVector", NewMulVector(a, b), vecmath.V2(12, 32)},
		{"NewDiv", NewDiv(a, 2), vecmath.V2(3, 4)},
		{"NewDivVector", NewDivVector(a, b), vecmath.V2(3, 2)},
		{"Rotate", Rotate(b, 90), vecmath.V2(-4, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer Destroy(tt.h)
			if tt.h == Null || tt.h == a || tt.h == b {
				t.Fatalf("%s returned %v", tt.name, tt.h)
			}
			if got := value(t, tt.h); !got.Approx(tt.expect, 1e-10) {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.expect)
			}
		})
	}

	// Operands are untouched.
	if value(t, a) != vecmath.V2(6, 8) || value(t, b) != vecmath.V2(2, 4) {
		t.Errorf("operands changed: %v %v", value(t, a), value(t, b))
	}
}

func TestInPlaceOperations(t *testing.T) {
	tests := []struct {
		name   string
		apply  func(a, b Handle)
		expect vecmath.Vec2
	}{
		{"Sum", Sum, vecmath.V2(8, 12)},
		{"Sub", Sub, vecmath.V2(4, 4)},
		{"Mul", func(a, _ Handle) { Mul(a, 2) }, vecmath.V2(12, 16)},
		{"MulVector", MulVector, vecmath.V2(12, 32)},
		{"Div", func(a, _ Handle) { Div(a, 2) }, vecmath.V2(3, 4)},
		{"DivVector", DivVector, vecmath.V2(3, 2)},
		{"NormalizeAt", func(a, _ Handle) { NormalizeAt(a) }, vecmath.V2(0.6, 0.8)},
		{"RotateAt", func(a, _ Handle) { RotateAt(a, 180) }, vecmath.V2(-6, -8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := Create(6, 8), Create(2, 4)
			defer Destroy(a)
			defer Destroy(b)

			tt.apply(a, b)
			if got := value(t, a); !got.Approx(tt.expect, 1e-10) {
				t.Errorf("%s: receiver = %v, want %v", tt.name, got, tt.expect)
			}
			if got := value(t, b); got != vecmath.V2(2, 4) {
				t.Errorf("%s: operand changed to %v", tt.name, got)
			}
		})
	}
}

func TestSumSameHandle(t *testing.T) {
	h := Create(1, 2)
	defer Destroy(h)
	Sum(h, h)
	if got := value(t, h); got != vecmath.V2(2, 4) {
		t.Errorf("Sum(h, h) = %v, want (2, 4)", got)
	}
}

func TestDivByZeroThroughHandles(t *testing.T) {
	h := Create(1, -1)
	defer Destroy(h)
	Div(h, 0)
	if !math.IsInf(GetX(h), 1) || !math.IsInf(GetY(h), -1) {
		t.Errorf("Div(h, 0) = (%v, %v), want (+Inf, -Inf)", GetX(h), GetY(h))
	}

	z := Create(0, 0)
	defer Destroy(z)
	NormalizeAt(z)
	if GetX(z) != 0 || GetY(z) != 0 {
		t.Errorf("NormalizeAt(zero) = (%v, %v), want (0, 0)", GetX(z), GetY(z))
	}
}

func TestInvalidHandleFallbacks(t *testing.T) {
	orig := vecmath.Logger()
	t.Cleanup(func() { vecmath.SetLogger(orig) })
	var buf bytes.Buffer
	vecmath.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	stale := Create(1, 1)
	Destroy(stale)
	live := Create(1, 1)
	defer Destroy(live)
	before := Live()

	for _, h := range []Handle{Null, stale} {
		if got := NewSum(h, live); got != Null {
			t.Errorf("NewSum(%v, live) = %v, want Null", h, got)
		}
		if got := NewSum(live, h); got != Null {
			t.Errorf("NewSum(live, %v) = %v, want Null", h, got)
		}
		if got := Rotate(h, 10); got != Null {
			t.Errorf("Rotate(%v) = %v, want Null", h, got)
		}
		if !math.IsNaN(GetX(h)) || !math.IsNaN(GetY(h)) || !math.IsNaN(Length(h)) {
			t.Errorf("getters on %v should return NaN", h)
		}
		Sum(live, h)
		Sum(h, live)
		SetX(h, 5)
		Destroy(h)
	}

	if value(t, live) != vecmath.V2(1, 1) {
		t.Errorf("live vector changed: %v", value(t, live))
	}
	if Live() != before {
		t.Errorf("Live() = %d, want %d", Live(), before)
	}
	if !strings.Contains(buf.String(), "capi: call failed") {
		t.Errorf("expected warnings, got: %s", buf.String())
	}
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry(WithLimit(1), WithCapacity(1))

	h, err := r.Create(vecmath.V2(1, 2))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := r.Create(vecmath.V2(3, 4)); !errors.Is(err, ErrTableFull) {
		t.Errorf("Create over limit error = %v, want ErrTableFull", err)
	}
	if _, err := r.Derive(h, vecmath.Vec2.Neg); !errors.Is(err, ErrTableFull) {
		t.Errorf("Derive over limit error = %v, want ErrTableFull", err)
	}

	if err := r.Mutate2(h, Null, (*vecmath.Vec2).AddInPlace); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Mutate2 with Null operand error = %v", err)
	}
	if err := r.Destroy(h); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if _, err := r.Get(h); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Get after Destroy error = %v, want ErrStaleHandle", err)
	}
	if err := r.Set(h, vecmath.Zero()); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Set after Destroy error = %v, want ErrStaleHandle", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistryConcurrentDistinctHandles(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			h, err := r.Create(vecmath.V2(float64(w), 0))
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			for i := 0; i < 100; i++ {
				_ = r.Mutate(h, func(v *vecmath.Vec2) { v.AddInPlace(vecmath.V2(0, 1)) })
			}
			v, _ := r.Get(h)
			if v != vecmath.V2(float64(w), 100) {
				t.Errorf("worker %d: %v", w, v)
			}
			_ = r.Destroy(h)
		}(w)
	}
	wg.Wait()

	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

package vmath

import (
	"math"
	"testing"
)

func TestBoxMinMax(t *testing.T) {
	b := NewBoxMinMax(Vec3F{100, 0, 100}, Vec3F{-100, 0, -100})
	if b.Center != (Vec3F{}) {
		t.Errorf("Expected origin center, got %+v", b.Center)
	}
	if b.Min() != (Vec3F{-100, 0, -100}) || b.Max() != (Vec3F{100, 0, 100}) {
		t.Errorf("Unexpected corners min=%+v max=%+v", b.Min(), b.Max())
	}
	if b.Size() != (Vec3F{200, 0, 200}) {
		t.Errorf("Expected size 200x0x200, got %+v", b.Size())
	}
}

func TestBoxNegativeExtents(t *testing.T) {
	b := Box{Extents: Vec3F{-5, -5, -5}}
	if !b.Contains(Vec3F{4, -4, 0}) {
		t.Error("Negative extents should behave as absolute")
	}
}

func TestBoxClosestPoint(t *testing.T) {
	b := Box{Center: Vec3F{10, 0, 0}, Extents: Vec3F{5, 1, 5}}

	tests := []struct {
		name string
		in   Vec3F
		want Vec3F
	}{
		{"inside unchanged", Vec3F{12, 0.5, -3}, Vec3F{12, 0.5, -3}},
		{"on surface unchanged", Vec3F{15, 1, 5}, Vec3F{15, 1, 5}},
		{"left of box", Vec3F{-50, 0, 0}, Vec3F{5, 0, 0}},
		{"corner projection", Vec3F{100, 9, -100}, Vec3F{15, 1, -5}},
		{"below", Vec3F{10, -3, 2}, Vec3F{10, -1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.ClosestPoint(tt.in)
			if got != tt.want {
				t.Errorf("ClosestPoint(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
			if !b.Contains(got) {
				t.Errorf("Projected point %+v outside box", got)
			}
		})
	}
}

func TestClosestPointIdempotent(t *testing.T) {
	b := Box{Extents: Vec3F{3, 3, 3}}
	for _, p := range []Vec3F{{1, 2, 3}, {-9, 0, 7}, {0, 0, 0}, {math.MaxFloat64, -math.MaxFloat64, 2}} {
		once := b.ClosestPoint(p)
		twice := b.ClosestPoint(once)
		if once != twice {
			t.Errorf("Clamp not idempotent for %+v: %+v then %+v", p, once, twice)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(-4, 5, 20); got != 5 {
		t.Errorf("Expected 5, got %v", got)
	}
	if got := ClampF(25, 5, 20); got != 20 {
		t.Errorf("Expected 20, got %v", got)
	}
	if got := ClampF(8, 20, 5); got != 8 {
		t.Errorf("Swapped range should still contain 8, got %v", got)
	}
}

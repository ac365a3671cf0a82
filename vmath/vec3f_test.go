package vmath

import (
	"math"
	"testing"
)

func TestV3FNormalizeZero(t *testing.T) {
	if got := V3FNormalize(Vec3F{}); !V3FIsZero(got) {
		t.Errorf("Zero vector should stay zero, got %+v", got)
	}
}

func TestV3FNormalizeDiagonal(t *testing.T) {
	d := V3FNormalize(V3FAdd(V3FLeft, V3FBack))
	if math.Abs(V3FMag(d)-1) > 1e-12 {
		t.Errorf("Expected unit length, got %v", V3FMag(d))
	}
	want := -1 / math.Sqrt2
	if !V3FEqual(d, Vec3F{want, 0, want}, 1e-12) {
		t.Errorf("Unexpected diagonal %+v", d)
	}
}

func TestV3FArithmetic(t *testing.T) {
	a := Vec3F{1, 2, 3}
	b := Vec3F{4, 5, 6}
	if V3FAdd(a, b) != (Vec3F{5, 7, 9}) {
		t.Error("V3FAdd mismatch")
	}
	if V3FSub(b, a) != (Vec3F{3, 3, 3}) {
		t.Error("V3FSub mismatch")
	}
	if V3FScale(a, 2) != (Vec3F{2, 4, 6}) {
		t.Error("V3FScale mismatch")
	}
	if V3FMagSq(a) != 14 {
		t.Errorf("Expected 14, got %v", V3FMagSq(a))
	}
}

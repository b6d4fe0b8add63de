package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSignum(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	cases := []struct {
		in   float32
		want float32
	}{
		{3, 1},
		{0, 1},
		{negZero, -1},
		{-0.5, -1},
	}
	for _, tc := range cases {
		if got := Signum(tc.in); got != tc.want {
			t.Errorf("Signum(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 2); got != 2 {
		t.Errorf("Clamp(5, 0, 2) = %v", got)
	}
	if got := Clamp(-1, 0, 2); got != 0 {
		t.Errorf("Clamp(-1, 0, 2) = %v", got)
	}
	// Inverted bounds collapse to the upper bound.
	if got := Clamp(0, 3, 1); got != 1 {
		t.Errorf("Clamp(0, 3, 1) = %v, want 1", got)
	}
}

func TestNormalizeOrZero(t *testing.T) {
	if got := NormalizeOrZero(mgl32.Vec3{}); got != (mgl32.Vec3{}) {
		t.Errorf("zero vector normalized to %v", got)
	}
	inf := float32(math.Inf(1))
	if got := NormalizeOrZero(mgl32.Vec3{inf, 0, 0}); got != (mgl32.Vec3{}) {
		t.Errorf("infinite vector normalized to %v", got)
	}
	if got := NormalizeOrZero(mgl32.Vec3{0, 3, 4}); got != (mgl32.Vec3{0, 0.6, 0.8}) {
		t.Errorf("NormalizeOrZero = %v", got)
	}
}

func TestRect(t *testing.T) {
	r := NewRect(mgl32.Vec2{10, 20}, mgl32.Vec2{100, 50})
	if r.Size() != (mgl32.Vec2{100, 50}) || r.Width() != 100 || r.Height() != 50 {
		t.Errorf("rect %+v has wrong extents", r)
	}

	cases := []struct {
		p    mgl32.Vec2
		want bool
	}{
		{mgl32.Vec2{50, 40}, true},
		{mgl32.Vec2{10, 40}, false},
		{mgl32.Vec2{110, 40}, false},
		{mgl32.Vec2{50, 70}, false},
		{mgl32.Vec2{5, 5}, false},
	}
	for _, tc := range cases {
		if got := r.ContainsStrict(tc.p); got != tc.want {
			t.Errorf("ContainsStrict(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestCoalesceAndDeref(t *testing.T) {
	if got := Coalesce("", "", "b", "c"); got != "b" {
		t.Errorf("Coalesce = %q, want b", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("Coalesce of zeros = %v", got)
	}
	if got := Deref(nil, float32(2)); got != 2 {
		t.Errorf("Deref(nil) = %v", got)
	}
	if got := Deref(Ptr(float32(7)), 2); got != 7 {
		t.Errorf("Deref(7) = %v", got)
	}
}

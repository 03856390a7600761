package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	got := (Vec2{}).Normalize()
	if !got.IsZero() {
		t.Errorf("Vec2{}.Normalize() = %v, want zero vector", got)
	}
}

func TestMoveToward(t *testing.T) {
	tests := []struct {
		name                      string
		current, target, maxDelta float32
		want                      float32
	}{
		{"advance up", 0, 10, 4, 4},
		{"advance down", 10, 0, 3.5, 6.5},
		{"reach target", 9, 10, 4, 10},
		{"already there", 10, 10, 4, 10},
		{"negative target", 0, -10, 4, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveToward(tt.current, tt.target, tt.maxDelta)
			if got != tt.want {
				t.Errorf("MoveToward(%v, %v, %v) = %v, want %v",
					tt.current, tt.target, tt.maxDelta, got, tt.want)
			}
		})
	}
}

func TestMoveTowardNeverOvershoots(t *testing.T) {
	v := float32(0)
	for i := 0; i < 100; i++ {
		v = MoveToward(v, 10, 0.4)
		if v > 10 {
			t.Fatalf("overshoot at step %d: %v", i, v)
		}
	}
	if v != 10 {
		t.Errorf("did not converge, got %v", v)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Horizontal(t *testing.T) {
	v := Vec3{3, 4, 0}
	got := v.Horizontal()
	want := Vec3{3, 0, 0}
	if got != want {
		t.Errorf("Vec3.Horizontal() = %v, want %v", got, want)
	}
	// Projection must not renormalize.
	if got.Length() != 3 {
		t.Errorf("Horizontal().Length() = %v, want 3", got.Length())
	}
}

func TestVec3WithY(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := v.WithY(7)
	want := Vec3{1, 7, 3}
	if got != want {
		t.Errorf("Vec3.WithY() = %v, want %v", got, want)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := LookAt(Vec3{5, 10, 5}, Vec3{0, 0, 0}, Up)
	inv := m.Inverse()
	p := Vec4{1, 2, 3, 1}
	back := inv.MulVec4(m.MulVec4(p))
	for i := 0; i < 4; i++ {
		d := back[i] - p[i]
		if d < -0.001 || d > 0.001 {
			t.Fatalf("inverse round trip component %d = %v, want %v", i, back[i], p[i])
		}
	}
}

package geom

import (
	"errors"
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Sub(t *testing.T) {
	a := Vec3{4, 5, 6}
	b := Vec3{1, 2, 3}
	got := a.Sub(b)
	want := Vec3{3, 3, 3}
	if got != want {
		t.Errorf("Vec3.Sub() = %v, want %v", got, want)
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

func TestVec3Length(t *testing.T) {
	v := Vec3{3, 4, 0}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec3.Length() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n, err := v.Normalize()
	if err != nil {
		t.Fatalf("Vec3.Normalize() error = %v", err)
	}
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	_, err := Vec3{}.Normalize()
	if !errors.Is(err, ErrZeroLength) {
		t.Errorf("Vec3.Normalize() error = %v, want ErrZeroLength", err)
	}
}

func TestVec3NormalizeTiny(t *testing.T) {
	// The exact-zero rule: a very small but non-zero vector still normalizes.
	v := Vec3{1e-20, 0, 0}
	n, err := v.Normalize()
	if err != nil {
		t.Fatalf("Vec3.Normalize() error = %v", err)
	}
	if n.X < 0.999 {
		t.Errorf("Vec3.Normalize() = %v, want unit X", n)
	}
}

func TestVec3NormalizeTol(t *testing.T) {
	v := Vec3{1e-4, 0, 0}
	if _, err := v.NormalizeTol(1e-3); !errors.Is(err, ErrZeroLength) {
		t.Errorf("NormalizeTol(1e-3) error = %v, want ErrZeroLength", err)
	}
	if _, err := v.NormalizeTol(1e-5); err != nil {
		t.Errorf("NormalizeTol(1e-5) error = %v, want nil", err)
	}
}

func TestVec3Dot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Dot(b)
	want := float32(32)
	if got != want {
		t.Errorf("Vec3.Dot() = %v, want %v", got, want)
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{0, 3, 4}
	got := a.Distance(b)
	want := float32(5)
	if got != want {
		t.Errorf("Vec3.Distance() = %v, want %v", got, want)
	}
}

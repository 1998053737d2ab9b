package math

import (
	"testing"
)

func TestIdentityTransform(t *testing.T) {
	m := Identity()
	v := Vec3{1, 2, 3}
	if got := m.TransformPoint(v); got != v {
		t.Errorf("Identity().TransformPoint(%v) = %v", v, got)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(1, 2, 3)
	got := m.TransformPoint(Vec3{10, 20, 30})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("Translate().TransformPoint() = %v, want %v", got, want)
	}

	if m.Translation() != (Vec3{1, 2, 3}) {
		t.Errorf("Translation() = %v", m.Translation())
	}
}

func TestWithTranslation(t *testing.T) {
	m := Identity().WithTranslation(Vec3{4, 5, 6})
	if m.Translation() != (Vec3{4, 5, 6}) {
		t.Errorf("WithTranslation() translation = %v", m.Translation())
	}

	// Rotation part must be untouched.
	if got := m.TransformVector(Vec3{1, 0, 0}); got != (Vec3{1, 0, 0}) {
		t.Errorf("WithTranslation() changed rotation: %v", got)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	if got := m.Mul(Identity()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
}

func TestMat4MulComposesTranslations(t *testing.T) {
	a := Translate(1, 0, 0)
	b := Translate(0, 2, 0)
	got := a.Mul(b).TransformPoint(Vec3{})
	want := Vec3{1, 2, 0}
	if got != want {
		t.Errorf("(a*b).TransformPoint(0) = %v, want %v", got, want)
	}
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(5, 5, 5)
	got := m.TransformVector(Vec3{1, 2, 3})
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("TransformVector() = %v, want %v", got, want)
	}
}

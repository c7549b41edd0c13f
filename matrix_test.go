package arbor

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Matrix3) {
	t.Helper()
	if !got.ApproxEqual(want, epsilon) {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m != (Matrix3{M00: 1, M11: 1, M22: 1}) {
		t.Errorf("Identity = %+v", m)
	}
}

func TestConstructors(t *testing.T) {
	assertMatrix(t, "translation", NewTranslation(3, -4), Matrix3{
		1, 0, 3,
		0, 1, -4,
		0, 0, 1,
	})
	assertMatrix(t, "scale", NewScale(2, 5), Matrix3{
		2, 0, 0,
		0, 5, 0,
		0, 0, 1,
	})
	// cos(90)=0, sin(90)=1 → row0 uses +sin, row1 uses -sin
	assertMatrix(t, "rot90", NewRotation(math.Pi/2), Matrix3{
		0, 1, 0,
		-1, 0, 0,
		0, 0, 1,
	})
}

func TestAddSub(t *testing.T) {
	a := NewTranslation(1, 2)
	b := NewScale(3, 4)
	sum := a.Add(b)
	assertMatrix(t, "sum", sum, Matrix3{
		4, 0, 1,
		0, 5, 2,
		0, 0, 2,
	})
	assertMatrix(t, "sum-b", sum.Sub(b), a)
}

func TestMulIdentity(t *testing.T) {
	m := NewTranslation(5, 6).Mul(NewRotation(0.3)).Mul(NewScale(2, 3))
	assertMatrix(t, "I*m", Identity().Mul(m), m)
	assertMatrix(t, "m*I", m.Mul(Identity()), m)
}

func TestTranslationInverse(t *testing.T) {
	for _, p := range []Vec2{{10, 0}, {-3.5, 7.25}, {0, 0}, {1e6, -1e6}} {
		got := NewTranslation(p.X, p.Y).Mul(NewTranslation(-p.X, -p.Y))
		if got != Identity() {
			t.Errorf("T(%v)*T(-%v) = %+v, want identity", p, p, got)
		}
	}
}

func TestMulAssociative(t *testing.T) {
	a := NewTranslation(4, -2).Mul(NewRotation(0.7))
	b := NewScale(1.5, 0.25).Add(NewTranslation(3, 9))
	c := NewRotation(-1.1).Mul(NewScale(2, -3))

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	if !left.ApproxEqual(right, 1e-9) {
		t.Errorf("(AB)C = %+v, A(BC) = %+v", left, right)
	}
}

func TestMulNotCommutative(t *testing.T) {
	tr := NewTranslation(10, 0)
	rot := NewRotation(math.Pi / 2)
	if tr.Mul(rot).ApproxEqual(rot.Mul(tr), 1e-9) {
		t.Error("T*R should differ from R*T")
	}
}

func TestRotationComposition(t *testing.T) {
	got := NewRotation(0.4).Mul(NewRotation(1.3))
	assertMatrix(t, "R(a)R(b)", got, NewRotation(1.7))
}

func TestTransformPoint(t *testing.T) {
	m := NewTranslation(10, 20).Mul(NewScale(2, 3))
	assertVec(t, "point", m.TransformPoint(Vec2{1, 1}), Vec2{12, 23})
}

func TestInverse(t *testing.T) {
	m := NewTranslation(7, -3).Mul(NewRotation(0.9)).Mul(NewScale(2, 4))
	assertMatrix(t, "m*inv", m.Mul(m.Inverse()), Identity())

	singular := NewScale(0, 1)
	assertMatrix(t, "singular", singular.Inverse(), Identity())
}

func TestGeoM(t *testing.T) {
	m := NewTranslation(10, 20).Mul(NewRotation(0.5)).Mul(NewScale(2, 3))
	g := m.GeoM()
	want := m.TransformPoint(Vec2{4, -1})
	x, y := g.Apply(4, -1)
	assertVec(t, "GeoM.Apply", Vec2{x, y}, want)
}

package intr

import (
	"math"
	"testing"
)

func TestVec2_Add(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2[float64]
		expect Vec2[float64]
	}{
		{"zero+zero", V2(0.0, 0), V2(0.0, 0), V2(0.0, 0)},
		{"positive", V2(1.0, 2), V2(3.0, 4), V2(4.0, 6)},
		{"negative", V2(-1.0, -2), V2(-3.0, -4), V2(-4.0, -6)},
		{"mixed", V2(1.0, -2), V2(-3.0, 4), V2(-2.0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Add(tt.w)
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVec2_SubMulNeg(t *testing.T) {
	v := V2(5.0, 7)
	if got := v.Sub(V2(2.0, 3)); got != V2(3.0, 4) {
		t.Errorf("Sub = %v, want (3, 4)", got)
	}
	if got := v.Mul(-2); got != V2(-10.0, -14) {
		t.Errorf("Mul = %v, want (-10, -14)", got)
	}
	if got := v.Neg(); got != V2(-5.0, -7) {
		t.Errorf("Neg = %v, want (-5, -7)", got)
	}
}

func TestVec2_DotPerp(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2[float64]
		expect float64
	}{
		{"x cross y", V2(1.0, 0), V2(0.0, 1), 1},
		{"y cross x", V2(0.0, 1), V2(1.0, 0), -1},
		{"parallel", V2(1.0, 1), V2(2.0, 2), 0},
		{"antiparallel", V2(1.0, 2), V2(-2.0, -4), 0},
		{"zero", V2(0.0, 0), V2(3.0, 4), 0},
		{"area", V2(3.0, 0), V2(1.0, 2), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.DotPerp(tt.w); got != tt.expect {
				t.Errorf("%v.DotPerp(%v) = %v, want %v", tt.v, tt.w, got, tt.expect)
			}
			// DotPerp(v, w) == Dot(Perp(v), w) == -DotPerp(w, v)
			if got := tt.w.DotPerp(tt.v); got != -tt.expect {
				t.Errorf("%v.DotPerp(%v) = %v, want %v", tt.w, tt.v, got, -tt.expect)
			}
			if got := tt.v.Perp().Dot(tt.w); got != tt.expect {
				t.Errorf("%v.Perp().Dot(%v) = %v, want %v", tt.v, tt.w, got, tt.expect)
			}
		})
	}
}

func TestVec2_Length(t *testing.T) {
	v := V2(3.0, 4)
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := v.LengthSq(); got != 25 {
		t.Errorf("LengthSq = %v, want 25", got)
	}
}

func TestVec2_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2[float64]
		expect Vec2[float64]
	}{
		{"unit x", V2(5.0, 0), V2(1.0, 0)},
		{"unit y", V2(0.0, -2), V2(0.0, -1)},
		{"3-4-5", V2(3.0, 4), V2(0.6, 0.8)},
		{"zero", V2(0.0, 0), V2(0.0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Normalize()
			if !result.Approx(tt.expect, 1e-12) {
				t.Errorf("%v.Normalize() = %v, want %v", tt.v, result, tt.expect)
			}
		})
	}
}

func TestVec2_Float32(t *testing.T) {
	v := V2[float32](3, 4)
	n := v.Normalize()
	if math.Abs(float64(n.Length())-1) > 1e-6 {
		t.Errorf("float32 Normalize length = %v, want 1", n.Length())
	}
	if got := v.DotPerp(V2[float32](1, 0)); got != -4 {
		t.Errorf("float32 DotPerp = %v, want -4", got)
	}
}

func TestPoint_AddSub(t *testing.T) {
	p := Pt(1.0, 2)
	q := Pt(4.0, 6)
	if got := q.Sub(p); got != V2(3.0, 4) {
		t.Errorf("Sub = %v, want (3, 4)", got)
	}
	if got := p.Add(V2(3.0, 4)); got != q {
		t.Errorf("Add = %v, want %v", got, q)
	}
	if got := p.Distance(q); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if !p.Approx(Pt(1+1e-12, 2), 1e-9) {
		t.Error("Approx: nearby points should match")
	}
}

package tracker

import (
	"math"
	"testing"
)

// almostEqual checks if two float32 values are approximately equal
func almostEqual(a, b, tolerance float32) bool {
	return float32(math.Abs(float64(a)-float64(b))) <= tolerance
}

func TestCalcIoU(t *testing.T) {

	tests := []struct {
		name     string
		a, b     Rect
		expected float32
	}{
		{
			name:     "identical boxes",
			a:        NewRect(10, 10, 50, 50),
			b:        NewRect(10, 10, 50, 50),
			expected: 1.0,
		},
		{
			name:     "disjoint boxes",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(100, 100, 10, 10),
			expected: 0.0,
		},
		{
			name:     "touching edges",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: 0.0,
		},
		{
			// containing box has twice the area so the overlap ratio
			// is exactly one half
			name:     "contained half area box",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 0, 10, 5),
			expected: 0.5,
		},
		{
			name:     "quarter overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: 25.0 / 175.0,
		},
		{
			name:     "degenerate zero height",
			a:        NewRect(0, 0, 10, 0),
			b:        NewRect(0, 0, 10, 10),
			expected: 0.0,
		},
		{
			name:     "degenerate negative width",
			a:        NewRect(0, 0, -10, 10),
			b:        NewRect(0, 0, 10, 10),
			expected: 0.0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			got := tc.a.CalcIoU(tc.b)

			if !almostEqual(got, tc.expected, 1e-5) {
				t.Errorf("expected IoU %v, got %v", tc.expected, got)
			}

			// IoU must be symmetric
			if rev := tc.b.CalcIoU(tc.a); !almostEqual(got, rev, 1e-6) {
				t.Errorf("IoU not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestRectConversions(t *testing.T) {

	r := NewRect(10, 20, 40, 80)

	tlbr := r.GetTlbr()

	if !floatsEqual(tlbr, Tlbr{10, 20, 50, 100}, 1e-6) {
		t.Errorf("expected tlbr [10 20 50 100], got %v", tlbr)
	}

	back := GenerateRectByTlbr(tlbr)

	if !floatsEqual(back.Tlwh, r.Tlwh, 1e-6) {
		t.Errorf("tlbr round trip changed rect: %v vs %v", back.Tlwh, r.Tlwh)
	}

	xyah := r.GetXyah()

	if !floatsEqual(xyah, Xyah{30, 60, 0.5, 80}, 1e-6) {
		t.Errorf("expected xyah [30 60 0.5 80], got %v", xyah)
	}

	back = GenerateRectByXyah(xyah)

	if !floatsEqual(back.Tlwh, r.Tlwh, 1e-5) {
		t.Errorf("xyah round trip changed rect: %v vs %v", back.Tlwh, r.Tlwh)
	}
}

// TestXyahDegenerateHeight checks the aspect ratio guard for boxes whose
// height is zero or negative
func TestXyahDegenerateHeight(t *testing.T) {

	for _, h := range []float32{0, -5} {

		r := NewRect(10, 10, 40, h)
		xyah := r.GetXyah()

		if xyah[2] != 0 {
			t.Errorf("expected aspect 0 for height %v, got %v", h, xyah[2])
		}
	}
}

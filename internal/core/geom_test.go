package core

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func TestBetween(t *testing.T) {
	tests := []struct {
		name     string
		x, a, b  float64
		expected bool
	}{
		{"inside", 5, 0, 10, true},
		{"at low bound", 0, 0, 10, true},
		{"at high bound", 10, 0, 10, true},
		{"below", -0.5, 0, 10, false},
		{"above", 10.5, 0, 10, false},
		{"degenerate segment hit", 3, 3, 3, true},
		{"degenerate segment miss", 4, 3, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Between(tc.x, tc.a, tc.b)
			if err != nil {
				t.Fatalf("Between() error = %v", err)
			}
			if result != tc.expected {
				t.Errorf("Between(%v, %v, %v) = %v, expected %v", tc.x, tc.a, tc.b, result, tc.expected)
			}
			if want := tc.a <= tc.x && tc.x <= tc.b; result != want {
				t.Errorf("Between() disagrees with a<=x<=b")
			}
		})
	}
}

func TestBetweenInvalidRange(t *testing.T) {
	_, err := Between(1, 5, 2)
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestRestrictToSegment(t *testing.T) {
	tests := []struct {
		x, a, b, expected float64
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
		{7, 3, 3, 3},    // collapsed segment
	}

	for _, tc := range tests {
		result, err := RestrictToSegment(tc.x, tc.a, tc.b)
		if err != nil {
			t.Fatalf("RestrictToSegment(%v, %v, %v) error = %v", tc.x, tc.a, tc.b, err)
		}
		if result != tc.expected {
			t.Errorf("RestrictToSegment(%v, %v, %v) = %v, expected %v", tc.x, tc.a, tc.b, result, tc.expected)
		}
		if result < tc.a || result > tc.b {
			t.Errorf("RestrictToSegment(%v, %v, %v) = %v is outside the segment", tc.x, tc.a, tc.b, result)
		}
	}

	if _, err := RestrictToSegment(0, 10, 0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestClosenessInSegment(t *testing.T) {
	tests := []struct {
		x, a, b, expected float64
	}{
		{0, 0, 10, -1},
		{10, 0, 10, 1},
		{5, 0, 10, 0},
		{7.5, 0, 10, 0.5},
		{-3, -4, -2, 0},
	}

	for _, tc := range tests {
		result, err := ClosenessInSegment(tc.x, tc.a, tc.b)
		if err != nil {
			t.Fatalf("ClosenessInSegment() error = %v", err)
		}
		if math.Abs(result-tc.expected) > eps {
			t.Errorf("ClosenessInSegment(%v, %v, %v) = %v, expected %v", tc.x, tc.a, tc.b, result, tc.expected)
		}
	}

	for _, seg := range [][2]float64{{3, 3}, {5, 1}} {
		if _, err := ClosenessInSegment(2, seg[0], seg[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("ClosenessInSegment(2, %v, %v): expected ErrInvalidRange, got %v", seg[0], seg[1], err)
		}
	}
}

func TestAngleOfVectorRoundTrip(t *testing.T) {
	for i := 0; i < 72; i++ {
		theta := float64(i) * math.Pi / 36
		dx, dy := math.Cos(theta), math.Sin(theta)

		angle := AngleOfVector(dx, dy)
		if math.Abs(math.Cos(angle)-dx) > 1e-9 || math.Abs(math.Sin(angle)-dy) > 1e-9 {
			t.Errorf("AngleOfVector(%v, %v) = %v does not round-trip", dx, dy, angle)
		}
	}
}

func TestAngleOfVectorVertical(t *testing.T) {
	if got := AngleOfVector(0, 1); got != math.Pi/2 {
		t.Errorf("AngleOfVector(0, 1) = %v, expected pi/2", got)
	}
	if got := AngleOfVector(0, -1); got != -math.Pi/2 {
		t.Errorf("AngleOfVector(0, -1) = %v, expected -pi/2", got)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

package geom

import "testing"

func TestPoint_String(t *testing.T) {
	p := NewPoint(1, 2, 3)
	if got, want := p.String(), "(1,2,3)"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

func TestPoint_SameLayer(t *testing.T) {
	a := NewPoint(0, 0, 1)
	b := NewPoint(5, 5, 1)
	c := NewPoint(5, 5, 2)
	if !a.SameLayer(b) {
		t.Errorf("expected a and b to share a layer")
	}
	if a.SameLayer(c) {
		t.Errorf("expected a and c to differ in layer")
	}
}

func TestPoint_ManhattanDistance(t *testing.T) {
	cases := []struct {
		a, b Point
		want int
	}{
		{NewPoint(0, 0, 0), NewPoint(0, 0, 0), 0},
		{NewPoint(0, 0, 0), NewPoint(1, 1, 1), 3},
		{NewPoint(2, 2, 2), NewPoint(-1, 0, 5), 3 + 2 + 3},
	}
	for _, tc := range cases {
		if got := tc.a.ManhattanDistance(tc.b); got != tc.want {
			t.Errorf("ManhattanDistance(%v,%v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

package geom

import "testing"

func TestNewVia_BadRange(t *testing.T) {
	if _, err := NewVia("a", 0, 0, 3, 1); err != ErrBadVia {
		t.Errorf("expected ErrBadVia, got %v", err)
	}
}

func TestVia_Layers(t *testing.T) {
	v, err := NewVia("a", 1, 2, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := v.Layers()
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Layers() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Layers() = %v; want %v", got, want)
		}
	}
}

func TestVia_Contains(t *testing.T) {
	v, _ := NewVia("a", 0, 0, 2, 4)
	if v.Contains(1) || v.Contains(5) {
		t.Errorf("Contains should reject layers outside [2,4]")
	}
	if !v.Contains(2) || !v.Contains(3) || !v.Contains(4) {
		t.Errorf("Contains should accept layers inside [2,4]")
	}
}

func TestVia_String(t *testing.T) {
	v, _ := NewVia("a", 1, 2, 3, 4)
	if got, want := v.String(), "Via#a: (1,2,3)-(1,2,4)"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

package utils

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("unexpected value: %v", got)
	}
	if got := Clamp(-2, 0, 10); got != 0 {
		t.Fatalf("unexpected value: %v", got)
	}
	if got := Clamp(12, 0, 10); got != 10 {
		t.Fatalf("unexpected value: %v", got)
	}
	// min wins over max
	if got := Clamp(5, 8, 3); got != 8 {
		t.Fatalf("unexpected value: %v", got)
	}
	if got := Clamp(5, 0, Inf); got != 5 {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestSnapToPixelGrid(t *testing.T) {
	offset, size := Fl(0.3), Fl(10.2)
	SnapToPixelGrid(&offset, &size)
	if offset != 0 || size != 11 {
		t.Fatalf("got offset %v, size %v", offset, size)
	}

	offset, size = Fl(-0.6), Fl(2)
	SnapToPixelGrid(&offset, &size)
	if offset != -1 || size != 2 {
		t.Fatalf("got offset %v, size %v", offset, size)
	}

	// already on the grid
	offset, size = 4, 7
	SnapToPixelGrid(&offset, &size)
	if offset != 4 || size != 7 {
		t.Fatalf("got offset %v, size %v", offset, size)
	}
}

func TestSnapPreservesOuterEdge(t *testing.T) {
	for _, v := range [][2]Fl{{0.5, 9.7}, {12.3, 45.6}, {-3.2, 8.1}} {
		offset, size := v[0], v[1]
		SnapToPixelGrid(&offset, &size)
		edge := offset + size
		if edge != Fl(int(edge)) {
			t.Fatalf("outer edge %v not on the pixel grid", edge)
		}
		if AbsF(offset-v[0]) > 0.5 || AbsF((offset+size)-(v[0]+v[1])) > 0.5 {
			t.Fatalf("snapping moved an edge by more than half a pixel")
		}
	}
}

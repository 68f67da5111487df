package msdf

import "testing"

func TestShelfAllocatorBasic(t *testing.T) {
	a := NewShelfAllocator(100, 100, 0)

	x, y, ok := a.Allocate(30, 10)
	if !ok || x != 0 || y != 0 {
		t.Fatalf("first Allocate = (%d, %d, %v), want (0, 0, true)", x, y, ok)
	}
	x, y, ok = a.Allocate(30, 10)
	if !ok || x != 30 || y != 0 {
		t.Fatalf("second Allocate = (%d, %d, %v), want (30, 0, true)", x, y, ok)
	}
	if a.ShelfCount() != 1 {
		t.Errorf("ShelfCount = %d, want 1", a.ShelfCount())
	}
}

func TestShelfAllocatorNewShelf(t *testing.T) {
	a := NewShelfAllocator(100, 100, 0)
	a.Allocate(90, 10)

	// Doesn't fit beside the first item, opens a shelf below.
	x, y, ok := a.Allocate(50, 10)
	if !ok || x != 0 || y != 10 {
		t.Fatalf("Allocate = (%d, %d, %v), want (0, 10, true)", x, y, ok)
	}
	if a.ShelfCount() != 2 {
		t.Errorf("ShelfCount = %d, want 2", a.ShelfCount())
	}
}

func TestShelfAllocatorTallItemExtendsLastShelf(t *testing.T) {
	a := NewShelfAllocator(100, 100, 0)
	a.Allocate(10, 10)

	// Taller than the shelf but the shelf can still grow downward.
	x, y, ok := a.Allocate(10, 50)
	if !ok || x != 10 || y != 0 {
		t.Fatalf("Allocate = (%d, %d, %v), want (10, 0, true)", x, y, ok)
	}
}

func TestShelfAllocatorFull(t *testing.T) {
	a := NewShelfAllocator(20, 20, 0)
	if _, _, ok := a.Allocate(20, 20); !ok {
		t.Fatal("exact-fit Allocate failed")
	}
	if _, _, ok := a.Allocate(1, 1); ok {
		t.Error("Allocate succeeded on a full atlas")
	}
	if a.CanFit(1, 1) {
		t.Error("CanFit(1, 1) = true on a full atlas")
	}
	if got := a.Utilization(); got != 1 {
		t.Errorf("Utilization = %v, want 1", got)
	}

	a.Reset()
	if _, _, ok := a.Allocate(20, 20); !ok {
		t.Error("Allocate failed after Reset")
	}
}

func TestShelfAllocatorPadding(t *testing.T) {
	a := NewShelfAllocator(100, 100, 2)
	a.Allocate(10, 10)
	x, _, ok := a.Allocate(10, 10)
	if !ok || x != 12 {
		t.Errorf("padded Allocate x = %d, want 12", x)
	}
}

func TestShelfAllocatorCanFit(t *testing.T) {
	a := NewShelfAllocator(50, 50, 0)
	if !a.CanFit(50, 50) {
		t.Error("CanFit(50, 50) = false on empty allocator")
	}
	if a.CanFit(51, 10) {
		t.Error("CanFit wider than the atlas = true")
	}
	if a.CanFit(10, 51) {
		t.Error("CanFit taller than the atlas = true")
	}
}

func TestGridAllocator(t *testing.T) {
	g := NewGridAllocator(64, 64, 16, 0)
	if got := g.Capacity(); got != 16 {
		t.Fatalf("Capacity = %d, want 16", got)
	}

	seen := map[[2]int]bool{}
	for i := 0; i < 16; i++ {
		x, y, ok := g.Allocate()
		if !ok {
			t.Fatalf("Allocate %d failed", i)
		}
		if x%16 != 0 || y%16 != 0 || x >= 64 || y >= 64 {
			t.Fatalf("cell %d at (%d, %d) off grid", i, x, y)
		}
		key := [2]int{x, y}
		if seen[key] {
			t.Fatalf("cell (%d, %d) allocated twice", x, y)
		}
		seen[key] = true
	}

	if !g.IsFull() {
		t.Error("IsFull = false after filling the grid")
	}
	if _, _, ok := g.Allocate(); ok {
		t.Error("Allocate succeeded on a full grid")
	}
	if got := g.Remaining(); got != 0 {
		t.Errorf("Remaining = %d, want 0", got)
	}
	if got := g.Utilization(); got != 1 {
		t.Errorf("Utilization = %v, want 1", got)
	}

	g.Reset()
	if got := g.Remaining(); got != 16 {
		t.Errorf("Remaining after Reset = %d, want 16", got)
	}
}

func TestGridAllocatorPadding(t *testing.T) {
	g := NewGridAllocator(64, 64, 15, 1)
	// 64 / (15+1) = 4 columns and rows.
	if got := g.Capacity(); got != 16 {
		t.Errorf("Capacity = %d, want 16", got)
	}
	x, y, _ := g.Allocate()
	if x != 0 || y != 0 {
		t.Errorf("first cell = (%d, %d)", x, y)
	}
	x, _, _ = g.Allocate()
	if x != 16 {
		t.Errorf("second cell x = %d, want 16", x)
	}
}

package msdf

// ShelfAllocator packs rectangles into a fixed area using horizontal
// shelves. Items are placed left to right on the current shelf; when a
// row fills up a new shelf opens below. Fast and simple, with good
// utilization when item heights are similar.
type ShelfAllocator struct {
	width   int
	height  int
	padding int
	shelves []shelf

	usedArea int
}

type shelf struct {
	y      int // top of the shelf
	height int // tallest item placed so far
	x      int // next free slot
}

// NewShelfAllocator creates an allocator for the given area. padding is
// added around every item to prevent sampling bleed between neighbors.
func NewShelfAllocator(width, height, padding int) *ShelfAllocator {
	return &ShelfAllocator{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// Allocate finds space for a w-by-h rectangle. It returns the placement
// and true, or -1, -1 and false when nothing fits.
func (a *ShelfAllocator) Allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + a.padding
	paddedH := h + a.padding

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+paddedW > a.width {
			continue
		}
		if h > s.height {
			// Too tall for the shelf. The last shelf may grow downward
			// if there is still room below it.
			if i == len(a.shelves)-1 && s.y+paddedH <= a.height {
				s.height = h
				x, y = s.x, s.y
				s.x += paddedW
				a.usedArea += w * h
				return x, y, true
			}
			continue
		}
		x, y = s.x, s.y
		s.x += paddedW
		a.usedArea += w * h
		return x, y, true
	}

	newY := 0
	if len(a.shelves) > 0 {
		last := a.shelves[len(a.shelves)-1]
		newY = last.y + last.height + a.padding
	}
	if newY+paddedH > a.height {
		return -1, -1, false
	}
	a.shelves = append(a.shelves, shelf{y: newY, height: h, x: paddedW})
	a.usedArea += w * h
	return 0, newY, true
}

// CanFit reports whether a w-by-h rectangle could be allocated, without
// allocating it.
func (a *ShelfAllocator) CanFit(w, h int) bool {
	paddedW := w + a.padding
	paddedH := h + a.padding
	if paddedW > a.width || paddedH > a.height {
		return false
	}
	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+paddedW > a.width {
			continue
		}
		if h <= s.height {
			return true
		}
		if i == len(a.shelves)-1 && s.y+paddedH <= a.height {
			return true
		}
	}
	newY := 0
	if len(a.shelves) > 0 {
		last := a.shelves[len(a.shelves)-1]
		newY = last.y + last.height + a.padding
	}
	return newY+paddedH <= a.height
}

// Reset discards all allocations, keeping capacity.
func (a *ShelfAllocator) Reset() {
	a.shelves = a.shelves[:0]
	a.usedArea = 0
}

// Utilization returns the fraction of the area occupied by items.
func (a *ShelfAllocator) Utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.width*a.height)
}

// ShelfCount returns the number of open shelves.
func (a *ShelfAllocator) ShelfCount() int {
	return len(a.shelves)
}

// GridAllocator packs uniform square cells in row-major order. It beats
// ShelfAllocator when every item is the same size, which holds for fields
// generated with one Config.
type GridAllocator struct {
	cellSize int
	padding  int
	cols     int
	rows     int
	next     int
}

// NewGridAllocator creates a grid allocator over the given area.
func NewGridAllocator(width, height, cellSize, padding int) *GridAllocator {
	step := cellSize + padding
	cols := max(width/step, 1)
	rows := max(height/step, 1)
	return &GridAllocator{
		cellSize: cellSize,
		padding:  padding,
		cols:     cols,
		rows:     rows,
	}
}

// Allocate returns the next free cell position, or false when full.
func (g *GridAllocator) Allocate() (x, y int, ok bool) {
	if g.next >= g.cols*g.rows {
		return -1, -1, false
	}
	step := g.cellSize + g.padding
	x = (g.next % g.cols) * step
	y = (g.next / g.cols) * step
	g.next++
	return x, y, true
}

// Reset discards all allocations.
func (g *GridAllocator) Reset() {
	g.next = 0
}

// IsFull reports whether every cell is taken.
func (g *GridAllocator) IsFull() bool {
	return g.next >= g.cols*g.rows
}

// Capacity returns the total number of cells.
func (g *GridAllocator) Capacity() int {
	return g.cols * g.rows
}

// Remaining returns the number of free cells.
func (g *GridAllocator) Remaining() int {
	return g.Capacity() - g.next
}

// Utilization returns the fraction of cells taken.
func (g *GridAllocator) Utilization() float64 {
	if g.Capacity() == 0 {
		return 0
	}
	return float64(g.next) / float64(g.Capacity())
}

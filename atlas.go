package msdf

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// AtlasConfig holds field atlas parameters.
type AtlasConfig struct {
	// Size is the page texture size (width = height). Must be a power
	// of two.
	Size int

	// CellSize is the side length of each field cell.
	CellSize int

	// Padding between cells prevents bilinear bleed at render time.
	Padding int

	// MaxPages limits the number of pages the atlas may grow to.
	MaxPages int
}

// DefaultAtlasConfig returns a configuration suitable for caching
// glyph-sized fields.
func DefaultAtlasConfig() AtlasConfig {
	return AtlasConfig{
		Size:     1024,
		CellSize: 32,
		Padding:  2,
		MaxPages: 8,
	}
}

// Validate checks the configuration.
func (c *AtlasConfig) Validate() error {
	if c.Size < 64 {
		return &ConfigError{Field: "Size", Reason: "must be at least 64"}
	}
	if c.Size > 8192 {
		return &ConfigError{Field: "Size", Reason: "must be at most 8192"}
	}
	if c.Size&(c.Size-1) != 0 {
		return &ConfigError{Field: "Size", Reason: "must be a power of 2"}
	}
	if c.CellSize < 4 {
		return &ConfigError{Field: "CellSize", Reason: "must be at least 4"}
	}
	if c.CellSize > c.Size {
		return &ConfigError{Field: "CellSize", Reason: "must be at most Size"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.MaxPages < 1 {
		return &ConfigError{Field: "MaxPages", Reason: "must be at least 1"}
	}
	return nil
}

// Region describes a cached field's location within the atlas.
type Region struct {
	// Page is the index of the page holding the field.
	Page int

	// U0, V0, U1, V1 are texture coordinates in [0, 1].
	U0, V0, U1, V1 float32

	// X, Y, Width, Height are texel coordinates within the page.
	X, Y, Width, Height int
}

// AtlasPage is one texture's worth of packed fields. Data is row-major
// RGB float32, ready for upload as an RGB32F texture.
type AtlasPage struct {
	Data []float32
	Size int

	allocator *GridAllocator
	index     int
	count     int
	dirty     bool
}

func newAtlasPage(index, size, cellSize, padding int) *AtlasPage {
	return &AtlasPage{
		Data:      make([]float32, size*size*3),
		Size:      size,
		allocator: NewGridAllocator(size, size, cellSize, padding),
		index:     index,
	}
}

// blit copies a field into the page at (x, y), scaling by nearest
// neighbor when the field resolution differs from the cell size.
func (p *AtlasPage) blit(field *DistanceField, x, y, cellSize int) {
	for dy := 0; dy < cellSize; dy++ {
		srcY := min(dy*field.Height/cellSize, field.Height-1)
		for dx := 0; dx < cellSize; dx++ {
			srcX := min(dx*field.Width/cellSize, field.Width-1)
			src := field.texel(srcX, srcY)
			dst := ((y+dy)*p.Size + x + dx) * 3
			if field.Channels >= 3 {
				p.Data[dst] = src[0]
				p.Data[dst+1] = src[1]
				p.Data[dst+2] = src[2]
			} else {
				p.Data[dst] = src[0]
				p.Data[dst+1] = src[0]
				p.Data[dst+2] = src[0]
			}
		}
	}
	p.dirty = true
}

// IsDirty reports whether the page changed since the last MarkClean.
func (p *AtlasPage) IsDirty() bool {
	return p.dirty
}

// FieldCount returns the number of fields packed into the page.
func (p *AtlasPage) FieldCount() int {
	return p.count
}

// FieldAtlas caches generated distance fields in packed texture pages.
// Callers identify shapes by an opaque uint64 key of their choosing
// (a glyph id, an icon hash). Safe for concurrent use.
type FieldAtlas struct {
	mu        sync.RWMutex
	config    AtlasConfig
	generator *Generator
	pages     []*AtlasPage
	lookup    map[uint64]Region

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewFieldAtlas creates an atlas whose fields are produced by gen. A nil
// generator gets defaults sized to the atlas cell.
func NewFieldAtlas(config AtlasConfig, gen *Generator) (*FieldAtlas, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if gen == nil {
		gc := DefaultConfig()
		gc.Width = config.CellSize
		gc.Height = config.CellSize
		gen = NewGenerator(gc)
	}
	return &FieldAtlas{
		config:    config,
		generator: gen,
		pages:     make([]*AtlasPage, 0, config.MaxPages),
		lookup:    make(map[uint64]Region),
	}, nil
}

// Get returns the cached region for key, generating and packing the
// shape's field on a miss.
func (a *FieldAtlas) Get(key uint64, shape *Shape) (Region, error) {
	a.mu.RLock()
	if region, ok := a.lookup[key]; ok {
		a.mu.RUnlock()
		a.hits.Add(1)
		return region, nil
	}
	a.mu.RUnlock()
	a.misses.Add(1)

	a.mu.Lock()
	defer a.mu.Unlock()

	// Another goroutine may have filled the entry while we waited.
	if region, ok := a.lookup[key]; ok {
		return region, nil
	}

	field, err := a.generator.Generate(shape)
	if err != nil {
		return Region{}, fmt.Errorf("atlas key %d: %w", key, err)
	}

	page, err := a.findOrCreatePage()
	if err != nil {
		return Region{}, err
	}
	x, y, ok := page.allocator.Allocate()
	if !ok {
		return Region{}, ErrAtlasAllocation
	}
	page.blit(field, x, y, a.config.CellSize)
	page.count++

	cell := a.config.CellSize
	size := float32(a.config.Size)
	region := Region{
		Page:   page.index,
		X:      x,
		Y:      y,
		Width:  cell,
		Height: cell,
		U0:     float32(x) / size,
		V0:     float32(y) / size,
		U1:     float32(x+cell) / size,
		V1:     float32(y+cell) / size,
	}
	a.lookup[key] = region
	return region, nil
}

// Has reports whether key is cached.
func (a *FieldAtlas) Has(key uint64) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.lookup[key]
	return ok
}

// findOrCreatePage returns a page with free cells, growing the atlas up
// to MaxPages. Caller holds the write lock.
func (a *FieldAtlas) findOrCreatePage() (*AtlasPage, error) {
	for _, p := range a.pages {
		if !p.allocator.IsFull() {
			return p, nil
		}
	}
	if len(a.pages) >= a.config.MaxPages {
		return nil, fmt.Errorf("all %d pages full: %w", a.config.MaxPages, ErrAtlasAllocation)
	}
	p := newAtlasPage(len(a.pages), a.config.Size, a.config.CellSize, a.config.Padding)
	a.pages = append(a.pages, p)
	return p, nil
}

// Page returns a page for upload, or nil if the index is out of range.
func (a *FieldAtlas) Page(index int) *AtlasPage {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if index < 0 || index >= len(a.pages) {
		return nil
	}
	return a.pages[index]
}

// PageCount returns the number of pages in use.
func (a *FieldAtlas) PageCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.pages)
}

// FieldCount returns the number of cached fields.
func (a *FieldAtlas) FieldCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.lookup)
}

// DirtyPages returns the indices of pages modified since their last
// MarkClean call.
func (a *FieldAtlas) DirtyPages() []int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var dirty []int
	for i, p := range a.pages {
		if p.dirty {
			dirty = append(dirty, i)
		}
	}
	return dirty
}

// MarkClean records that a page has been uploaded.
func (a *FieldAtlas) MarkClean(index int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if index >= 0 && index < len(a.pages) {
		a.pages[index].dirty = false
	}
}

// Stats returns cache hit and miss counts and the page count.
func (a *FieldAtlas) Stats() (hits, misses uint64, pages int) {
	a.mu.RLock()
	pages = len(a.pages)
	a.mu.RUnlock()
	return a.hits.Load(), a.misses.Load(), pages
}

// Clear discards all pages and cached regions.
func (a *FieldAtlas) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pages = a.pages[:0]
	a.lookup = make(map[uint64]Region)
	a.hits.Store(0)
	a.misses.Store(0)
}

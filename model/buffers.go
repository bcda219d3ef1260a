package model

// Swap exchanges the grids referenced by a and b without copying cell data
func Swap(a, b **Grid) {
	*a, *b = *b, *a
}

// Buffers owns the current and next grids of a running simulation.
// Both are allocated once and reused for every generation.
type Buffers struct {
	current    *Grid
	next       *Grid
	generation int
}

// NewBuffers allocates two all-dead grids of identical dimensions
func NewBuffers(rows, cols int) *Buffers {
	return &Buffers{
		current: NewGrid(rows, cols),
		next:    NewGrid(rows, cols),
	}
}

// Current returns the grid holding the latest generation
func (b *Buffers) Current() *Grid {
	return b.current
}

// Next returns the scratch grid the following generation is written into
func (b *Buffers) Next() *Grid {
	return b.next
}

// Generation returns the number of ticks performed so far
func (b *Buffers) Generation() int {
	return b.generation
}

// Swap exchanges the roles of the current and next grids
func (b *Buffers) Swap() {
	Swap(&b.current, &b.next)
}

// Tick advances the simulation by one generation
func (b *Buffers) Tick() {
	Step(b.current, b.next)
	b.Swap()
	b.generation++
}

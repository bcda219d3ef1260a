package model

// History remembers the hashes of recently recorded grid states so that still
// lifes and short oscillators can be detected
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history holding at most size states
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{size: size}
}

// Record adds the state of g, dropping the oldest state once full
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Period returns the smallest k such that g matches the state recorded k
// generations ago, or 0 when g matches none of the recorded states.
// A still life reports 1.
func (h *History) Period(g *Grid) int {
	hash := g.Hash()
	for k := 1; k <= len(h.hashes); k++ {
		if h.hashes[len(h.hashes)-k] == hash {
			return k
		}
	}
	return 0
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}

package game

// Ring is a fixed-capacity ring buffer of field cells. The snake body
// lives in one: Pop removes the tail, Push appends the head, and a
// full ring means the snake covers every playable cell.
type Ring struct {
	cells []Cord
	start int
	end   int
	empty bool
}

func NewRing(capacity int) *Ring {
	return &Ring{cells: make([]Cord, capacity), empty: true}
}

func (r *Ring) Cap() int { return len(r.cells) }

func (r *Ring) Empty() bool { return r.empty }

func (r *Ring) Len() int {
	if r.empty {
		return 0
	}
	if r.end > r.start {
		return r.end - r.start
	}

	return r.end + r.Cap() - r.start
}

func (r *Ring) Full() bool { return r.Len() == r.Cap() }

func (r *Ring) inc(i int) int { return (i + 1) % r.Cap() }

// Push appends a cell at the head end. It reports false when the ring
// is full and leaves it unchanged.
func (r *Ring) Push(c Cord) bool {
	if r.end == r.start && !r.empty {
		return false
	}
	r.cells[r.end] = c
	r.end = r.inc(r.end)
	r.empty = false

	return true
}

// ForcePush appends a cell, evicting the tail when the ring is full.
func (r *Ring) ForcePush(c Cord) {
	if r.end == r.start && !r.empty {
		r.start = r.inc(r.start)
	}
	r.cells[r.end] = c
	r.end = r.inc(r.end)
	r.empty = false
}

// Pop removes and returns the tail cell.
func (r *Ring) Pop() (Cord, bool) {
	if r.empty {
		return Cord{}, false
	}
	c := r.cells[r.start]
	r.start = r.inc(r.start)
	r.empty = r.start == r.end

	return c, true
}

// Head is the most recently pushed cell. Only meaningful when the ring
// is not empty.
func (r *Ring) Head() Cord {
	i := r.end - 1
	if i < 0 {
		i += r.Cap()
	}

	return r.cells[i]
}

// Each visits every cell tail first, with i counting up from 0.
func (r *Ring) Each(visit func(i int, c Cord)) {
	n := r.Len()
	for i := 0; i < n; i++ {
		visit(i, r.cells[(r.start+i)%r.Cap()])
	}
}

func (r *Ring) Contains(c Cord) bool {
	found := false
	r.Each(func(_ int, cell Cord) {
		if cell == c {
			found = true
		}
	})

	return found
}

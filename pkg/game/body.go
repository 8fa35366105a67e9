package game

// Body holds the snake segments together with an occupancy index, so
// membership checks are O(1) no matter how long the snake gets.
// Segments are stored tail-first: PushHead appends and PopTail
// reslices the front, so a move costs amortized O(1) instead of
// shifting the whole body. The index counts occupants per cell rather
// than using a plain set: during a move the head may enter the cell
// the tail is about to leave, and both transiently occupy it.
//
// All mutation goes through PushHead and PopTail, which keep the
// segment list and the index in sync.
type Body struct {
	segs     []Point // tail-first; the head is the last element
	occupied map[Point]int
}

// NewBody creates a body from segments given head-first.
func NewBody(segs ...Point) *Body {
	b := &Body{
		segs:     make([]Point, 0, len(segs)+8),
		occupied: make(map[Point]int, len(segs)+8),
	}
	for i := len(segs) - 1; i >= 0; i-- {
		b.segs = append(b.segs, segs[i])
		b.occupied[segs[i]]++
	}
	return b
}

// Head returns the head segment.
func (b *Body) Head() Point {
	return b.segs[len(b.segs)-1]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segs)
}

// At returns the segment at index i, head-first.
func (b *Body) At(i int) Point {
	return b.segs[len(b.segs)-1-i]
}

// PushHead inserts a new head segment.
func (b *Body) PushHead(p Point) {
	b.segs = append(b.segs, p)
	b.occupied[p]++
}

// PopTail removes and returns the last segment. Reslicing strands the
// popped cell in the backing array until the next append reallocates,
// which copies only the live segments.
func (b *Body) PopTail() Point {
	tail := b.segs[0]
	b.segs = b.segs[1:]
	if b.occupied[tail] <= 1 {
		delete(b.occupied, tail)
	} else {
		b.occupied[tail]--
	}
	return tail
}

// Contains reports whether any segment occupies the cell.
func (b *Body) Contains(p Point) bool {
	return b.occupied[p] > 0
}

// SelfOverlap reports whether the head cell is occupied by another
// segment. Given the push/pop mutation pattern the head is the only
// segment that can ever be duplicated, so this is exactly "head appears
// at index >= 1".
func (b *Body) SelfOverlap() bool {
	return b.occupied[b.Head()] > 1
}

// Positions returns a head-first copy of the segments.
func (b *Body) Positions() []Point {
	out := make([]Point, len(b.segs))
	for i, p := range b.segs {
		out[len(b.segs)-1-i] = p
	}
	return out
}

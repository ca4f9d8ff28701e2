package invasion

// Group is an index-stable collection of entities. Removing an element only
// marks it dead, so removal is safe while iterating; Compact reclaims the
// slots once the caller is done with the phase.
type Group[T any] struct {
	items []T
	live  []bool
	count int
}

// Add appends an element and returns its index.
func (g *Group[T]) Add(v T) int {
	g.items = append(g.items, v)
	g.live = append(g.live, true)
	g.count++
	return len(g.items) - 1
}

// Len returns the number of live elements.
func (g *Group[T]) Len() int {
	return g.count
}

// Alive reports whether index i holds a live element.
func (g *Group[T]) Alive(i int) bool {
	return i >= 0 && i < len(g.live) && g.live[i]
}

// Remove marks the element at i dead. Reports false if it already was.
func (g *Group[T]) Remove(i int) bool {
	if !g.Alive(i) {
		return false
	}
	g.live[i] = false
	g.count--
	return true
}

// Each calls fn for every live element in insertion order. Elements removed
// during the walk are skipped from then on.
func (g *Group[T]) Each(fn func(i int, v *T)) {
	for i := range g.items {
		if g.live[i] {
			fn(i, &g.items[i])
		}
	}
}

// Any reports whether fn returns true for some live element. It stops at the
// first match.
func (g *Group[T]) Any(fn func(v *T) bool) bool {
	for i := range g.items {
		if g.live[i] && fn(&g.items[i]) {
			return true
		}
	}
	return false
}

// Compact drops dead slots, preserving the order of live elements.
// Indices handed out before the call are invalidated.
func (g *Group[T]) Compact() {
	if g.count == len(g.items) {
		return
	}
	n := 0
	for i := range g.items {
		if g.live[i] {
			g.items[n] = g.items[i]
			g.live[n] = true
			n++
		}
	}
	clear(g.items[n:])
	g.items = g.items[:n]
	g.live = g.live[:n]
}

// Clear removes every element, keeping capacity.
func (g *Group[T]) Clear() {
	clear(g.items)
	g.items = g.items[:0]
	g.live = g.live[:0]
	g.count = 0
}

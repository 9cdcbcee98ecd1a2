package tilemap

import "image"

// Direction is one of the four axis aligned neighbor directions. Local
// positions grow right (x) and down (y), so north is y-1.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// VisitOrder is the fixed order neighbors are collected and iterated in.
var VisitOrder = [4]Direction{North, West, South, East}

var offsets = [4]image.Point{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

func (d Direction) Offset() image.Point {
	return offsets[d]
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// Neighbors holds up to four values around one grid cell, one optional slot
// per direction.
type Neighbors[T any] struct {
	vals    [4]T
	present [4]bool
}

// NeighborsOf collects the tiles next to pos. Cells outside the grid are
// absent; nothing wraps or crosses into another chunk.
func NeighborsOf(pos image.Point, g *Grid) Neighbors[Tile] {
	var n Neighbors[Tile]
	for _, d := range VisitOrder {
		if t, ok := g.Get(pos.Add(d.Offset())); ok {
			n.Set(d, t)
		}
	}
	return n
}

func (n Neighbors[T]) Get(d Direction) (T, bool) {
	return n.vals[d], n.present[d]
}

func (n Neighbors[T]) Has(d Direction) bool {
	return n.present[d]
}

func (n *Neighbors[T]) Set(d Direction, v T) {
	n.vals[d] = v
	n.present[d] = true
}

func (n *Neighbors[T]) Clear(d Direction) {
	var zero T
	n.vals[d] = zero
	n.present[d] = false
}

// Filter drops every present value that fails pred.
func (n Neighbors[T]) Filter(pred func(T) bool) Neighbors[T] {
	for d := range n.vals {
		if n.present[d] && !pred(n.vals[d]) {
			n.Clear(Direction(d))
		}
	}
	return n
}

func (n Neighbors[T]) Count() int {
	c := 0
	for _, ok := range n.present {
		if ok {
			c++
		}
	}
	return c
}

func (n Neighbors[T]) IsEmpty() bool {
	return n.Count() == 0
}

// Each calls fn for every present value in VisitOrder.
func (n Neighbors[T]) Each(fn func(Direction, T)) {
	for _, d := range VisitOrder {
		if n.present[d] {
			fn(d, n.vals[d])
		}
	}
}

// MapNeighbors applies f to every present value of n.
func MapNeighbors[T, U any](n Neighbors[T], f func(T) U) Neighbors[U] {
	var out Neighbors[U]
	for d := range n.vals {
		if n.present[d] {
			out.Set(Direction(d), f(n.vals[d]))
		}
	}
	return out
}
